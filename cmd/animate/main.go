// animate renders one escape-time field and cycles a palette over it,
// producing a looping GIF of pulsing colors at a fixed position.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/gif"
	"log"
	"os"

	mandel "github.com/marben/mandelfield"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	var (
		width  = flag.Uint("width", 960, "frame width in pixels")
		height = flag.Uint("height", 540, "frame height in pixels")
		out    = flag.String("out", "animation.gif", "output file")
	)
	flag.Parse()

	pos := mandel.JuliaIsland
	palette := mandel.ElectricBlue

	log.Printf("building %dx%d field at zoom %g, limit %d", *width, *height, pos.Zoom, pos.Limit)
	field := mandel.NewField(uint32(*width), uint32(*height))
	if err := mandel.ParBuild(field, pos, mandel.ParallelBuildOptions{}); err != nil {
		return fmt.Errorf("field build: %w", err)
	}

	// One field, many frames: only the palette offset changes per frame.
	const speed = 4
	framePalette := palette.Convert()
	bounds := image.Rect(0, 0, int(*width), int(*height))
	anim := gif.GIF{LoopCount: 0}
	for offset := uint32(0); offset < 256; offset += speed {
		frame := image.NewPaletted(bounds, framePalette)
		for index, it := range field.Pairs() {
			if count, ok := it.Count(); ok {
				frame.SetColorIndex(int(index.X), int(index.Y), uint8((count+offset)%256))
			} else {
				frame.SetColorIndex(int(index.X), int(index.Y), 0)
			}
		}
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, 4)
	}

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create %q: %w", *out, err)
	}
	defer f.Close()
	if err := gif.EncodeAll(f, &anim); err != nil {
		return fmt.Errorf("encode gif: %w", err)
	}

	log.Printf("animation with %d frames saved to %q", len(anim.Image), *out)
	return nil
}
