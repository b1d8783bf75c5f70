package mandel

import (
	"errors"
	"fmt"
	"iter"
)

// ErrSizeMismatch is reported when pre-sized storage does not match the
// requested grid dimensions.
var ErrSizeMismatch = errors.New("storage length does not match width*height")

// Grid is a fixed-size 2-D array over row-major linear storage. The
// invariant len(data) == width*height holds from construction on; only
// size-preserving in-place mutation is possible afterwards.
type Grid[T any] struct {
	width  uint32
	height uint32
	data   []T
}

// NewGrid returns a width x height grid filled with T's zero value.
func NewGrid[T any](width, height uint32) *Grid[T] {
	return &Grid[T]{
		width:  width,
		height: height,
		// 64-bit product: int would wrap on 32-bit platforms before
		// make could reject the oversized allocation
		data: make([]T, uint64(width)*uint64(height)),
	}
}

// NewGridWith returns a width x height grid with every cell produced by f.
func NewGridWith[T any](width, height uint32, f func() T) *Grid[T] {
	g := NewGrid[T](width, height)
	for i := range g.data {
		g.data[i] = f()
	}
	return g
}

// GridFromRaw adopts data as the grid's backing storage. It fails with
// ErrSizeMismatch when len(data) != width*height; the caller keeps
// ownership of data in that case.
func GridFromRaw[T any](width, height uint32, data []T) (*Grid[T], error) {
	if uint64(len(data)) != uint64(width)*uint64(height) {
		return nil, fmt.Errorf("grid %dx%d from %d elements: %w", width, height, len(data), ErrSizeMismatch)
	}
	return &Grid[T]{width: width, height: height, data: data}, nil
}

// IntoRaw releases the backing storage. The grid must not be used
// afterwards.
func (g *Grid[T]) IntoRaw() []T {
	data := g.data
	g.data = nil
	return data
}

func (g *Grid[T]) Width() uint32 {
	return g.width
}

func (g *Grid[T]) Height() uint32 {
	return g.height
}

func (g *Grid[T]) Size() (width, height uint32) {
	return g.width, g.height
}

// AsSlice exposes the backing storage in row-major order.
func (g *Grid[T]) AsSlice() []T {
	return g.data
}

// At returns the value at (x, y). It panics when the index is out of
// bounds: callers are expected to index only within a domain derived from
// Width/Height, so the panic guards a programming error. Use AtChecked
// for graceful bounds handling.
func (g *Grid[T]) At(x, y uint32) T {
	i, ok := g.indexChecked(x, y)
	if !ok {
		g.outOfBounds(x, y)
	}
	return g.data[i]
}

// Ptr returns a pointer to the cell at (x, y), panicking like At when out
// of bounds.
func (g *Grid[T]) Ptr(x, y uint32) *T {
	i, ok := g.indexChecked(x, y)
	if !ok {
		g.outOfBounds(x, y)
	}
	return &g.data[i]
}

func (g *Grid[T]) AtChecked(x, y uint32) (T, bool) {
	i, ok := g.indexChecked(x, y)
	if !ok {
		var zero T
		return zero, false
	}
	return g.data[i], true
}

func (g *Grid[T]) PtrChecked(x, y uint32) (*T, bool) {
	i, ok := g.indexChecked(x, y)
	if !ok {
		return nil, false
	}
	return &g.data[i], true
}

// Set writes the cell at (x, y), panicking like At when out of bounds.
func (g *Grid[T]) Set(x, y uint32, value T) {
	*g.Ptr(x, y) = value
}

// SetChecked writes the cell at (x, y) and reports whether the index was
// in bounds.
func (g *Grid[T]) SetChecked(x, y uint32, value T) bool {
	p, ok := g.PtrChecked(x, y)
	if ok {
		*p = value
	}
	return ok
}

// Indexes yields every (x, y) index exactly once in row-major order
// (y outer, x inner). The sequence is restartable.
func (g *Grid[T]) Indexes() iter.Seq[Point[uint32]] {
	width, height := g.width, g.height
	return func(yield func(Point[uint32]) bool) {
		for y := uint32(0); y < height; y++ {
			for x := uint32(0); x < width; x++ {
				if !yield(Pt(x, y)) {
					return
				}
			}
		}
	}
}

// Values yields every cell value in row-major order.
func (g *Grid[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range g.data {
			if !yield(g.data[i]) {
				return
			}
		}
	}
}

// Pairs yields every index together with its value. Indexes and storage
// are generated from the same width/height, so the two sequences stay in
// lockstep.
func (g *Grid[T]) Pairs() iter.Seq2[Point[uint32], T] {
	return func(yield func(Point[uint32], T) bool) {
		i := 0
		for y := uint32(0); y < g.height; y++ {
			for x := uint32(0); x < g.width; x++ {
				if !yield(Pt(x, y), g.data[i]) {
					return
				}
				i++
			}
		}
	}
}

// PairsMut yields every index together with a pointer to its cell.
func (g *Grid[T]) PairsMut() iter.Seq2[Point[uint32], *T] {
	return func(yield func(Point[uint32], *T) bool) {
		i := 0
		for y := uint32(0); y < g.height; y++ {
			for x := uint32(0); x < g.width; x++ {
				if !yield(Pt(x, y), &g.data[i]) {
					return
				}
				i++
			}
		}
	}
}

// Fill sets every cell to value.
func (g *Grid[T]) Fill(value T) {
	for i := range g.data {
		g.data[i] = value
	}
}

// Clear resets every cell to T's zero value.
func (g *Grid[T]) Clear() {
	var zero T
	g.Fill(zero)
}

func (g *Grid[T]) index(x, y uint32) int {
	return int(y)*int(g.width) + int(x)
}

func (g *Grid[T]) indexChecked(x, y uint32) (int, bool) {
	if x >= g.width || y >= g.height {
		return 0, false
	}
	return g.index(x, y), true
}

func (g *Grid[T]) outOfBounds(x, y uint32) {
	panic(fmt.Sprintf("grid index (%d, %d) out of bounds (%d, %d)", x, y, g.width, g.height))
}
