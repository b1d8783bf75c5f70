package mandel

import (
	"iter"
	"runtime"
)

// Painter converts an escape-time result into a color (or any other cell
// value). Parallel builds call the painter concurrently from every
// worker, so it must not rely on shared mutable state.
type Painter[C any] func(Iteration) C

// BuildOptions configures a sequential build.
type BuildOptions struct {
	// ViewportOffsetScale positions the viewport relative to the plane
	// center as a fraction of the grid size. Nil centers the viewport,
	// i.e. (0.5, 0.5).
	ViewportOffsetScale *Point[float64]

	// Smooth enables block supersampling: the grid is partitioned into
	// Smooth.X x Smooth.Y pixel blocks and only one representative per
	// block is evaluated, its value broadcast across the block. Trades
	// fidelity for an X*Y-fold cost reduction.
	Smooth *Point[uint32]
}

// ParallelBuildOptions configures a concurrent build.
type ParallelBuildOptions struct {
	BuildOptions

	// Workers is the worker goroutine count. Zero or negative means one
	// less than the available CPUs, and at least one.
	Workers int
}

func (o ParallelBuildOptions) workerCount() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return max(runtime.NumCPU()-1, 1)
}

// planeMapper translates grid indexes into complex-plane coordinates for
// one build: plane = center + (offset + index) / zoom.
type planeMapper struct {
	center Point[float64]
	offset Point[float64]
	zoom   float64
	limit  uint32
}

func newPlaneMapper(width, height uint32, pos Position, opts BuildOptions) planeMapper {
	offsetScale := Pt(0.5, 0.5)
	if opts.ViewportOffsetScale != nil {
		offsetScale = *opts.ViewportOffsetScale
	}
	offset := offsetScale.Neg().Mul(Pt(float64(width), float64(height)))
	if opts.Smooth != nil {
		// nudge each block's sample toward its center; integer halving,
		// so a 1x1 block samples exactly like a non-smoothed build
		offset = offset.Add(ConvertPoint[float64](opts.Smooth.DivScalar(2)))
	}
	return planeMapper{
		center: pos.Point,
		offset: offset,
		zoom:   pos.Zoom,
		limit:  pos.Limit,
	}
}

func (m planeMapper) plane(index Point[uint32]) complex128 {
	return Complex(m.offset.Add(ConvertPoint[float64](index)).DivScalar(m.zoom).Add(m.center))
}

func (m planeMapper) escapeTime(index Point[uint32]) Iteration {
	return EscapeTime(m.plane(index), m.limit)
}

// Build sequentially fills the field with the escape time of every
// pixel's plane coordinate.
func Build(g *Field, pos Position, opts BuildOptions) {
	BuildImage(g, pos, func(it Iteration) Iteration { return it }, opts)
}

// BuildImage sequentially fills the grid with paint applied to every
// pixel's escape time.
func BuildImage[C any](g *Grid[C], pos Position, paint Painter[C], opts BuildOptions) {
	m := newPlaneMapper(g.Width(), g.Height(), pos, opts)
	if opts.Smooth == nil {
		for index, cell := range g.PairsMut() {
			*cell = paint(m.escapeTime(index))
		}
		return
	}
	for block := range smoothBlocks(g.Width(), g.Height(), *opts.Smooth) {
		value := paint(m.escapeTime(block.rep))
		for _, index := range block.members {
			g.Set(index.X, index.Y, value)
		}
	}
}

// ParBuild is Build across a worker pool. The grid is written only by
// the calling goroutine; do not run two builds against the same grid
// concurrently.
func ParBuild(g *Field, pos Position, opts ParallelBuildOptions) error {
	return ParBuildImage(g, pos, func(it Iteration) Iteration { return it }, opts)
}

// paintedCell addresses one parallel result: workers only produce
// values, the consumer writes them, so the destination index travels
// with the value.
type paintedCell[C any] struct {
	at    Point[uint32]
	value C
}

type paintedBlock[C any] struct {
	members []Point[uint32]
	value   C
}

// ParBuildImage is BuildImage across a worker pool. It fails as a whole
// if any worker faults; the grid contents are then unspecified.
func ParBuildImage[C any](g *Grid[C], pos Position, paint Painter[C], opts ParallelBuildOptions) error {
	m := newPlaneMapper(g.Width(), g.Height(), pos, opts.BuildOptions)
	workers := opts.workerCount()
	if opts.Smooth == nil {
		return Pipeline(g.Indexes(),
			func(index Point[uint32]) paintedCell[C] {
				return paintedCell[C]{at: index, value: paint(m.escapeTime(index))}
			},
			func(cell paintedCell[C]) {
				g.Set(cell.at.X, cell.at.Y, cell.value)
			},
			workers)
	}
	return Pipeline(smoothBlocks(g.Width(), g.Height(), *opts.Smooth),
		func(block smoothBlock) paintedBlock[C] {
			return paintedBlock[C]{members: block.members, value: paint(m.escapeTime(block.rep))}
		},
		func(block paintedBlock[C]) {
			for _, index := range block.members {
				g.Set(index.X, index.Y, block.value)
			}
		},
		workers)
}

// smoothBlock groups the member indexes sharing one representative
// sample. rep is the block's top-left index.
type smoothBlock struct {
	rep     Point[uint32]
	members []Point[uint32]
}

// smoothBlocks partitions the index domain into smooth.X x smooth.Y
// blocks in row-major block order. Edge blocks are clipped to the grid.
func smoothBlocks(width, height uint32, smooth Point[uint32]) iter.Seq[smoothBlock] {
	if smooth.X == 0 || smooth.Y == 0 {
		panic("smooth block dimensions must be positive")
	}
	return func(yield func(smoothBlock) bool) {
		for y := uint32(0); y < height; y += smooth.Y {
			for x := uint32(0); x < width; x += smooth.X {
				members := make([]Point[uint32], 0, int(smooth.X)*int(smooth.Y))
				for my := y; my < min(y+smooth.Y, height); my++ {
					for mx := x; mx < min(x+smooth.X, width); mx++ {
						members = append(members, Pt(mx, my))
					}
				}
				if !yield(smoothBlock{rep: Pt(x, y), members: members}) {
					return
				}
			}
		}
	}
}
