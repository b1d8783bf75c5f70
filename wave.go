package mandel

import "math"

// Wave produces one sample per input coordinate. Harmonic waves feed
// color tables for the animation drivers.
type Wave[T any] interface {
	Wave(x float64) T
}

// Harmonic is one sinusoid: Amplitude * sin(Order*AngFreq*x + Phase).
type Harmonic struct {
	Amplitude float64
	Order     float64
	AngFreq   float64
	Phase     float64
}

func NewHarmonic(amplitude, order, angFreq, phase float64) Harmonic {
	return Harmonic{Amplitude: amplitude, Order: order, AngFreq: angFreq, Phase: phase}
}

// AngFreqFromPeriod converts a period length into an angular frequency.
func AngFreqFromPeriod(period float64) float64 {
	return 2 * math.Pi / period
}

func (h Harmonic) Wave(x float64) float64 {
	return h.Amplitude * math.Sin(h.Order*h.AngFreq*x+h.Phase)
}

// Polyharmonic sums its harmonics.
type Polyharmonic []Harmonic

func (p Polyharmonic) Wave(x float64) float64 {
	var sum float64
	for _, h := range p {
		sum += h.Wave(x)
	}
	return sum
}

// WaveU8 maps a float wave's [Min, Max] range onto a full byte, clamping
// values outside the range.
type WaveU8 struct {
	Source   Wave[float64]
	Min, Max float64
}

func NewWaveU8(source Wave[float64], minValue, maxValue float64) WaveU8 {
	return WaveU8{Source: source, Min: minValue, Max: maxValue}
}

func (w WaveU8) Wave(x float64) uint8 {
	v := (w.Source.Wave(x) - w.Min) / (w.Max - w.Min)
	v = min(max(v, 0), 1)
	return uint8(math.Round(v * 255))
}

// RgbWave combines three byte waves into a color per coordinate.
type RgbWave struct {
	R, G, B Wave[uint8]
}

func NewRgbWave(r, g, b Wave[uint8]) RgbWave {
	return RgbWave{R: r, G: g, B: b}
}

func (w RgbWave) Wave(x float64) Rgb {
	return Rgb{R: w.R.Wave(x), G: w.G.Wave(x), B: w.B.Wave(x)}
}

// WaveTable samples a wave into a lookup table: entry i holds
// wave(i*scale).
func WaveTable[T any](length uint32, scale float64, wave Wave[T]) []T {
	table := make([]T, length)
	for i := range table {
		table[i] = wave.Wave(float64(i) * scale)
	}
	return table
}
