package mandel

// Classic landmarks in the Mandelbrot set, with pre-tuned zoom and
// iteration limit. Use them to seed start or target positions; zoom is
// scaled so the landmark fills a viewport around 1920 pixels wide.
var (
	// Home – the whole set, centered between the main cardioid and the
	// period-2 bulb
	Home = Position{
		Point: Pt(-0.75, 0.0),
		Zoom:  300,
		Limit: 180,
	}

	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Position{
		Point: Pt(-0.75, 0.1),
		Zoom:  19200,
		Limit: 1200,
	}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Position{
		Point: Pt(-1.8, -0.06),
		Zoom:  19200,
		Limit: 1500,
	}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Position{
		Point: Pt(-0.74275, 0.13175),
		Zoom:  1280000,
		Limit: 3000,
	}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Position{
		Point: Pt(-0.7465, 0.0965),
		Zoom:  640000,
		Limit: 2500,
	}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Position{
		Point: Pt(-0.7375, 0.1825),
		Zoom:  384000,
		Limit: 2500,
	}

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a
	// spiral arm
	MinibrotInMiniSpiral = Position{
		Point: Pt(-1.73825, -0.02275),
		Zoom:  1280000,
		Limit: 3000,
	}

	// Julia Island – an embedded Julia-set field near the needle
	JuliaIsland = Position{
		Point: Pt(-1.768778833, -0.001738996),
		Zoom:  550000000,
		Limit: 6000,
	}
)
