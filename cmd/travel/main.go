// travel animates the camera from the whole-set view into a deep
// landmark, one controller step per GIF frame. Colors come from a
// polyharmonic wave table.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"log"
	"math"
	"os"

	mandel "github.com/marben/mandelfield"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func waveR(angFreq float64) mandel.WaveU8 {
	return mandel.NewWaveU8(mandel.Polyharmonic{
		mandel.NewHarmonic(1.0, 1.0, angFreq, 0.0),
		mandel.NewHarmonic(1.0, 2.0, angFreq, math.Pi/4),
		mandel.NewHarmonic(1.0, 3.0, angFreq, math.Pi/6),
		mandel.NewHarmonic(1.0, 4.0, angFreq, 2*math.Pi),
		mandel.NewHarmonic(1.0, 5.0, angFreq, math.Pi),
	}, -3.1, 2.7)
}

func waveG(angFreq float64) mandel.WaveU8 {
	return mandel.NewWaveU8(mandel.Polyharmonic{
		mandel.NewHarmonic(1.0, 1.0, angFreq, math.Pi/9),
		mandel.NewHarmonic(1.0, 2.0, angFreq, math.Pi/4),
		mandel.NewHarmonic(1.0, 3.0, angFreq, math.Pi/3),
		mandel.NewHarmonic(1.0, 4.0, angFreq, math.Pi/6),
		mandel.NewHarmonic(1.0, 5.0, angFreq, 0.0),
	}, -2.5, 4.5)
}

func waveB(angFreq float64) mandel.WaveU8 {
	return mandel.NewWaveU8(mandel.Polyharmonic{
		mandel.NewHarmonic(1.0, 1.0, angFreq, math.Pi/4),
		mandel.NewHarmonic(1.0, 2.0, angFreq, 3*math.Pi/4),
		mandel.NewHarmonic(1.0, 3.0, angFreq, 2*math.Pi/3),
		mandel.NewHarmonic(1.0, 4.0, angFreq, math.Pi/2),
		mandel.NewHarmonic(1.0, 5.0, angFreq, math.Pi/3),
	}, -2.6, 4.2)
}

func run() error {
	var (
		width  = flag.Uint("width", 640, "frame width in pixels")
		height = flag.Uint("height", 360, "frame height in pixels")
		out    = flag.String("out", "travel.gif", "output file")
	)
	flag.Parse()

	from, to := mandel.Home, mandel.TripleSpiral

	const period = 1024
	const colorScale = 16
	angFreq := mandel.AngFreqFromPeriod(period - 1)
	wave := mandel.NewRgbWave(waveR(angFreq), waveG(angFreq), waveB(angFreq))
	table := mandel.WaveTable[mandel.Rgb](period/colorScale, colorScale, wave)
	paint := func(it mandel.Iteration) mandel.Rgb {
		if count, ok := it.Count(); ok {
			return table[int(count)%len(table)]
		}
		return mandel.RgbBlack
	}

	// Frame palette: the wave table plus black for set interior.
	framePalette := color.Palette{color.Black}
	for _, c := range table {
		framePalette = append(framePalette, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
	}

	ctrl := mandel.NewController(from)
	img := mandel.NewImage(uint32(*width), uint32(*height))
	bounds := image.Rect(0, 0, int(*width), int(*height))
	anim := gif.GIF{}
	for !ctrl.MakeStep(to) {
		if err := mandel.ParBuildImage(img, ctrl.Pos, paint, mandel.ParallelBuildOptions{}); err != nil {
			return fmt.Errorf("frame %d build: %w", len(anim.Image), err)
		}
		frame := image.NewPaletted(bounds, framePalette)
		for index, c := range img.Pairs() {
			frame.Set(int(index.X), int(index.Y), color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, 4)
		if len(anim.Image)%25 == 0 {
			log.Printf("frame %d: zoom %.0f, limit %d", len(anim.Image), ctrl.Pos.Zoom, ctrl.Pos.Limit)
		}
	}

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create %q: %w", *out, err)
	}
	defer f.Close()
	if err := gif.EncodeAll(f, &anim); err != nil {
		return fmt.Errorf("encode gif: %w", err)
	}

	log.Printf("travel with %d frames saved to %q", len(anim.Image), *out)
	return nil
}
