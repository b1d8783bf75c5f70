package mandel

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Rgb is a 3-channel color. The zero value is black.
type Rgb struct {
	R, G, B uint8
}

var (
	RgbBlack = Rgb{}
	RgbWhite = Rgb{R: 255, G: 255, B: 255}
)

func NewRgb(r, g, b uint8) Rgb {
	return Rgb{R: r, G: g, B: b}
}

// RgbFromRGBA unpacks a 0xRRGGBBAA value, dropping the alpha byte.
func RgbFromRGBA(value uint64) Rgb {
	return Rgb{
		R: uint8(value >> 24),
		G: uint8(value >> 16),
		B: uint8(value >> 8),
	}
}

// RGBA implements color.Color.
func (c Rgb) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}.RGBA()
}

// Image is a grid of colors, one per pixel.
type Image = Grid[Rgb]

// NewImage returns a black width x height image.
func NewImage(width, height uint32) *Image {
	return NewGrid[Rgb](width, height)
}

// RGBAImage copies img into a stdlib image for the encoders.
func RGBAImage(img *Image) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, int(img.Width()), int(img.Height())))
	for index, c := range img.Pairs() {
		out.SetRGBA(int(index.X), int(index.Y), color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
	}
	return out
}

// Palette is a lookup table of colors indexed by iteration count.
type Palette []Rgb

// Color returns the entry at index, wrapping around the table length.
func (p Palette) Color(index uint8) Rgb {
	return p[int(index)%len(p)]
}

// Convert returns the palette as a stdlib color.Palette, for paletted
// (GIF) frames.
func (p Palette) Convert() color.Palette {
	out := make(color.Palette, len(p))
	for i, c := range p {
		out[i] = color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
	}
	return out
}

// Preset 256-entry palettes. Entry 0 is always pure black so Infinite
// results can share the table.
var (
	// ElectricBlue – black into deep blue, cyan and white
	ElectricBlue = gradientPalette(
		colorful.Color{R: 0, G: 0, B: 0},
		colorful.Color{R: 0.02, G: 0.09, B: 0.38},
		colorful.Color{R: 0.11, G: 0.45, B: 0.95},
		colorful.Color{R: 0.55, G: 0.92, B: 1},
		colorful.Color{R: 1, G: 1, B: 1},
	)

	// Ember – black through red and orange into pale yellow
	Ember = gradientPalette(
		colorful.Color{R: 0, G: 0, B: 0},
		colorful.Color{R: 0.45, G: 0.05, B: 0.02},
		colorful.Color{R: 0.9, G: 0.35, B: 0.05},
		colorful.Color{R: 1, G: 0.75, B: 0.3},
		colorful.Color{R: 1, G: 0.98, B: 0.85},
	)

	// Aurora – black through green and teal into violet
	Aurora = gradientPalette(
		colorful.Color{R: 0, G: 0, B: 0},
		colorful.Color{R: 0.02, G: 0.35, B: 0.18},
		colorful.Color{R: 0.1, G: 0.8, B: 0.55},
		colorful.Color{R: 0.25, G: 0.55, B: 0.85},
		colorful.Color{R: 0.6, G: 0.3, B: 0.85},
	)
)

// gradientPalette blends the stops into a 256-entry table. Blending is
// done in Luv space, which keeps perceived brightness even across the
// ramp.
func gradientPalette(stops ...colorful.Color) Palette {
	p := make(Palette, 256)
	segments := len(stops) - 1
	for i := range p {
		t := float64(i) / float64(len(p)-1) * float64(segments)
		k := min(int(t), segments-1)
		c := stops[k].BlendLuv(stops[k+1], t-float64(k)).Clamped()
		r, g, b := c.RGB255()
		p[i] = Rgb{R: r, G: g, B: b}
	}
	return p
}

// PaletteTimes paints finite escape counts through the palette (offset
// shifts the table, for palette-cycling animation) and infinite ones
// black.
func PaletteTimes(p Palette, offset uint32) Painter[Rgb] {
	return func(it Iteration) Rgb {
		count, ok := it.Count()
		if !ok {
			return RgbBlack
		}
		return p.Color(uint8((count + offset) % 256))
	}
}
