package main

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"log"
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	mandel "github.com/marben/mandelfield"
)

const (
	maxFrameWidth  = 1920
	maxFrameHeight = 1080
)

// navCommand is one client request: a navigation action plus the frame
// size the client wants back.
type navCommand struct {
	Action string `json:"action"` // left, right, up, down, in, out, reset, render
	Width  uint32 `json:"width"`
	Height uint32 `json:"height"`
}

// websocketHandler upgrades the connection and serves one view session
// on it. Each session owns its own controller, so concurrent viewers
// navigate independently.
func websocketHandler(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"}, // TODO: tighten in prod
	})
	if err != nil {
		log.Println(err)
		return
	}
	log.Printf("viewer connected: %s", r.RemoteAddr)
	if err := serveView(r.Context(), c); err != nil {
		log.Printf("viewer %s: %v", r.RemoteAddr, err)
	}
}

func serveView(ctx context.Context, c *websocket.Conn) error {
	defer c.Close(websocket.StatusNormalClosure, "")

	ctrl := mandel.NewController(mandel.Home)
	paint := mandel.PaletteTimes(mandel.ElectricBlue, 0)
	for {
		var cmd navCommand
		if err := wsjson.Read(ctx, c, &cmd); err != nil {
			// client went away
			return nil
		}
		apply(ctrl, cmd.Action)

		width := min(max(cmd.Width, 1), maxFrameWidth)
		height := min(max(cmd.Height, 1), maxFrameHeight)
		img := mandel.NewImage(width, height)
		if err := mandel.ParBuildImage(img, ctrl.Pos, paint, mandel.ParallelBuildOptions{}); err != nil {
			return fmt.Errorf("frame build: %w", err)
		}

		var buf bytes.Buffer
		if err := png.Encode(&buf, mandel.RGBAImage(img)); err != nil {
			return fmt.Errorf("encode png: %w", err)
		}
		if err := c.Write(ctx, websocket.MessageBinary, buf.Bytes()); err != nil {
			return fmt.Errorf("write frame: %w", err)
		}
	}
}

func apply(ctrl *mandel.PositionController, action string) {
	switch action {
	case "left":
		ctrl.Left()
	case "right":
		ctrl.Right()
	case "up":
		ctrl.Up()
	case "down":
		ctrl.Down()
	case "in":
		ctrl.IncreaseZoom()
		ctrl.UpdateLimit()
	case "out":
		ctrl.DecreaseZoom()
		ctrl.UpdateLimit()
	case "reset":
		ctrl.Pos = mandel.Home
	}
}
