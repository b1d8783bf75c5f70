package mandel

import (
	"image/color"
	"testing"
)

// Verify at compile time that Rgb implements color.Color.
var _ color.Color = Rgb{}

func TestRgbFromRGBA(t *testing.T) {
	got := RgbFromRGBA(0x11223344)
	if got != NewRgb(0x11, 0x22, 0x33) {
		t.Errorf("got %+v, want {11 22 33}", got)
	}
}

func TestRgbZeroValueIsBlack(t *testing.T) {
	var c Rgb
	if c != RgbBlack {
		t.Errorf("zero value %+v differs from black", c)
	}
}

func TestRgbColorInterface(t *testing.T) {
	r, g, b, a := RgbWhite.RGBA()
	if r != 65535 || g != 65535 || b != 65535 || a != 65535 {
		t.Errorf("white RGBA: got (%d, %d, %d, %d)", r, g, b, a)
	}
}

func TestPresetPalettesShape(t *testing.T) {
	for name, p := range map[string]Palette{
		"ElectricBlue": ElectricBlue,
		"Ember":        Ember,
		"Aurora":       Aurora,
	} {
		if len(p) != 256 {
			t.Errorf("%s: %d entries, want 256", name, len(p))
		}
		if p[0] != RgbBlack {
			t.Errorf("%s: entry 0 is %+v, want black", name, p[0])
		}
	}
}

func TestPaletteColorWraps(t *testing.T) {
	p := Palette{NewRgb(1, 0, 0), NewRgb(0, 2, 0), NewRgb(0, 0, 3)}
	if got := p.Color(4); got != NewRgb(0, 2, 0) {
		t.Errorf("got %+v, want entry 1", got)
	}
}

func TestPaletteConvert(t *testing.T) {
	cp := ElectricBlue.Convert()
	if len(cp) != 256 {
		t.Fatalf("%d entries, want 256", len(cp))
	}
	r, g, b, a := cp[0].RGBA()
	if r != 0 || g != 0 || b != 0 || a != 65535 {
		t.Errorf("entry 0: got (%d, %d, %d, %d), want opaque black", r, g, b, a)
	}
}

func TestPaletteTimes(t *testing.T) {
	p := ElectricBlue
	paint := PaletteTimes(p, 10)

	if got := paint(Infinite); got != RgbBlack {
		t.Errorf("infinite: got %+v, want black", got)
	}
	if got, want := paint(Finite(5)), p.Color(15); got != want {
		t.Errorf("finite 5 offset 10: got %+v, want %+v", got, want)
	}
	// counts wrap at the table size
	if got, want := paint(Finite(250)), p.Color(uint8((250+10)%256)); got != want {
		t.Errorf("wrap: got %+v, want %+v", got, want)
	}
}

func TestRGBAImage(t *testing.T) {
	img := NewImage(3, 2)
	img.Set(2, 1, NewRgb(10, 20, 30))

	out := RGBAImage(img)
	if got := out.Bounds(); got.Dx() != 3 || got.Dy() != 2 {
		t.Fatalf("bounds %v, want 3x2", got)
	}
	if got := out.RGBAAt(2, 1); got != (color.RGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("pixel (2,1): got %+v", got)
	}
	if got := out.RGBAAt(0, 0); got != (color.RGBA{A: 255}) {
		t.Errorf("pixel (0,0): got %+v, want opaque black", got)
	}
}
