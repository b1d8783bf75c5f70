package mandel

import (
	"math"
	"testing"
)

// Verify at compile time that the generators implement Wave.
var (
	_ Wave[float64] = Harmonic{}
	_ Wave[float64] = Polyharmonic{}
	_ Wave[uint8]   = WaveU8{}
	_ Wave[Rgb]     = RgbWave{}
)

func TestAngFreqFromPeriod(t *testing.T) {
	if got := AngFreqFromPeriod(2 * math.Pi); math.Abs(got-1) > 1e-12 {
		t.Errorf("got %v, want 1", got)
	}
}

func TestHarmonicWave(t *testing.T) {
	// period 4 puts a unit-amplitude fundamental at its crest at x = 1
	h := NewHarmonic(2.0, 1.0, AngFreqFromPeriod(4), 0)
	if got := h.Wave(1); math.Abs(got-2) > 1e-12 {
		t.Errorf("crest: got %v, want 2", got)
	}
	if got := h.Wave(0); math.Abs(got) > 1e-12 {
		t.Errorf("zero crossing: got %v, want 0", got)
	}

	// phase shifts the crest
	shifted := NewHarmonic(2.0, 1.0, AngFreqFromPeriod(4), math.Pi/2)
	if got := shifted.Wave(0); math.Abs(got-2) > 1e-12 {
		t.Errorf("phase crest: got %v, want 2", got)
	}

	// order multiplies the frequency
	second := NewHarmonic(1.0, 2.0, AngFreqFromPeriod(4), 0)
	if got := second.Wave(1); math.Abs(got) > 1e-12 {
		t.Errorf("second order at x=1: got %v, want 0", got)
	}
}

func TestPolyharmonicSums(t *testing.T) {
	angFreq := AngFreqFromPeriod(4)
	p := Polyharmonic{
		NewHarmonic(1.0, 1.0, angFreq, 0),
		NewHarmonic(0.5, 1.0, angFreq, 0),
	}
	if got := p.Wave(1); math.Abs(got-1.5) > 1e-12 {
		t.Errorf("got %v, want 1.5", got)
	}
}

func TestWaveU8Normalizes(t *testing.T) {
	h := NewHarmonic(1.0, 1.0, AngFreqFromPeriod(4), 0)
	w := NewWaveU8(h, -1, 1)

	if got := w.Wave(1); got != 255 {
		t.Errorf("crest: got %d, want 255", got)
	}
	if got := w.Wave(3); got != 0 {
		t.Errorf("trough: got %d, want 0", got)
	}
	if got := w.Wave(0); got != 128 {
		t.Errorf("midpoint: got %d, want 128", got)
	}
}

func TestWaveU8Clamps(t *testing.T) {
	h := NewHarmonic(10.0, 1.0, AngFreqFromPeriod(4), 0)
	w := NewWaveU8(h, -1, 1)
	if got := w.Wave(1); got != 255 {
		t.Errorf("above range: got %d, want 255", got)
	}
	if got := w.Wave(3); got != 0 {
		t.Errorf("below range: got %d, want 0", got)
	}
}

func TestRgbWaveCombines(t *testing.T) {
	angFreq := AngFreqFromPeriod(4)
	crest := NewWaveU8(NewHarmonic(1.0, 1.0, angFreq, math.Pi/2), -1, 1)
	trough := NewWaveU8(NewHarmonic(1.0, 1.0, angFreq, -math.Pi/2), -1, 1)
	w := NewRgbWave(crest, trough, crest)

	if got := w.Wave(0); got != NewRgb(255, 0, 255) {
		t.Errorf("got %+v, want {255 0 255}", got)
	}
}

func TestWaveTable(t *testing.T) {
	h := NewHarmonic(1.0, 1.0, AngFreqFromPeriod(8), 0)
	table := WaveTable[float64](8, 1, h)
	if len(table) != 8 {
		t.Fatalf("length %d, want 8", len(table))
	}
	for i, v := range table {
		want := h.Wave(float64(i))
		if math.Abs(v-want) > 1e-12 {
			t.Errorf("entry %d: got %v, want %v", i, v, want)
		}
	}
}
