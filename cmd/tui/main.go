// tui is an interactive terminal navigator for the Mandelbrot set.
// hjkl or arrow keys pan, +/- zoom, digits jump to preset landmarks,
// tab switches palettes, q or Esc quits. Each terminal cell shows two
// vertical pixels through the upper-half-block glyph.
package main

import (
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"
	mandel "github.com/marben/mandelfield"
)

type viewer struct {
	screen  tcell.Screen
	ctrl    *mandel.PositionController
	img     *mandel.Image
	palette int
}

var palettes = []mandel.Palette{mandel.ElectricBlue, mandel.Ember, mandel.Aurora}

var presets = map[rune]mandel.Position{
	'1': mandel.Home,
	'2': mandel.SeahorseValley,
	'3': mandel.ElephantValley,
	'4': mandel.TripleSpiral,
	'5': mandel.ValleyOfTheDragon,
	'6': mandel.JuliaIsland,
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()

	v := &viewer{
		screen: screen,
		ctrl:   mandel.NewController(mandel.Home),
	}
	v.resize()
	return v.loop()
}

// resize matches the render target to the terminal: one pixel per cell
// horizontally, two vertically.
func (v *viewer) resize() {
	w, h := v.screen.Size()
	if w < 1 || h < 2 {
		w, h = 1, 2
	}
	v.img = mandel.NewImage(uint32(w), uint32(2*(h-1)))
}

func (v *viewer) loop() error {
	for {
		if err := v.render(); err != nil {
			return err
		}
		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventResize:
			v.resize()
			v.screen.Sync()
		case *tcell.EventKey:
			if !v.handleKey(ev) {
				return nil
			}
		}
	}
}

func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		v.ctrl.Left()
	case tcell.KeyRight:
		v.ctrl.Right()
	case tcell.KeyUp:
		v.ctrl.Up()
	case tcell.KeyDown:
		v.ctrl.Down()
	case tcell.KeyTab:
		v.palette = (v.palette + 1) % len(palettes)
	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case 'q':
			return false
		case 'h':
			v.ctrl.Left()
		case 'l':
			v.ctrl.Right()
		case 'k':
			v.ctrl.Up()
		case 'j':
			v.ctrl.Down()
		case '+', '=':
			v.ctrl.IncreaseZoom()
			v.ctrl.UpdateLimit()
		case '-', '_':
			v.ctrl.DecreaseZoom()
			v.ctrl.UpdateLimit()
		default:
			if pos, ok := presets[r]; ok {
				v.ctrl.Pos = pos
			}
		}
	}
	return true
}

func (v *viewer) render() error {
	paint := mandel.PaletteTimes(palettes[v.palette], 0)
	if err := mandel.ParBuildImage(v.img, v.ctrl.Pos, paint, mandel.ParallelBuildOptions{}); err != nil {
		return fmt.Errorf("build: %w", err)
	}

	for y := uint32(0); y+1 < v.img.Height(); y += 2 {
		for x := uint32(0); x < v.img.Width(); x++ {
			top := v.img.At(x, y)
			bottom := v.img.At(x, y+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			v.screen.SetContent(int(x), int(y/2), '▀', nil, style)
		}
	}
	v.status()
	v.screen.Show()
	return nil
}

func (v *viewer) status() {
	pos := v.ctrl.Pos
	text := fmt.Sprintf(" re %.12f  im %.12f  zoom %.0f  limit %d  [hjkl pan, +/- zoom, 1-6 presets, tab palette, q quit] ",
		pos.Point.X, pos.Point.Y, pos.Zoom, pos.Limit)
	w, h := v.screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for i := 0; i < w; i++ {
		r := ' '
		if i < len(text) {
			r = rune(text[i])
		}
		v.screen.SetContent(i, h-1, r, nil, style)
	}
}
