package mandel

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number covers the scalar types points and stepping work over.
type Number interface {
	constraints.Integer | constraints.Float
}

// Point is a 2-component vector used for both pixel indexes and
// complex-plane coordinates.
type Point[T Number] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{x, y}.
func Pt[T Number](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Splat returns a point with both components set to v.
func Splat[T Number](v T) Point[T] {
	return Point[T]{X: v, Y: v}
}

// MapPoint applies f to both components, producing a point of another
// numeric type.
func MapPoint[T, R Number](p Point[T], f func(T) R) Point[R] {
	return Point[R]{X: f(p.X), Y: f(p.Y)}
}

// ConvertPoint converts both components to another numeric type.
func ConvertPoint[R, T Number](p Point[T]) Point[R] {
	return Point[R]{X: R(p.X), Y: R(p.Y)}
}

// Complex interprets a float point as a complex-plane coordinate.
func Complex(p Point[float64]) complex128 {
	return complex(p.X, p.Y)
}

// XY returns the components as a pair.
func (p Point[T]) XY() (T, T) {
	return p.X, p.Y
}

func (p Point[T]) Neg() Point[T] {
	return Point[T]{X: -p.X, Y: -p.Y}
}

func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point[T]) Mul(q Point[T]) Point[T] {
	return Point[T]{X: p.X * q.X, Y: p.Y * q.Y}
}

func (p Point[T]) Div(q Point[T]) Point[T] {
	return Point[T]{X: p.X / q.X, Y: p.Y / q.Y}
}

// Scalar forms broadcast the operand to both components.

func (p Point[T]) AddScalar(v T) Point[T] {
	return p.Add(Splat(v))
}

func (p Point[T]) SubScalar(v T) Point[T] {
	return p.Sub(Splat(v))
}

func (p Point[T]) MulScalar(v T) Point[T] {
	return p.Mul(Splat(v))
}

func (p Point[T]) DivScalar(v T) Point[T] {
	return p.Div(Splat(v))
}

// ModPoint reduces each component of p modulo the matching component of
// q. Package functions rather than methods: % does not instantiate over
// the float members of Number, so the integer and float forms carry
// their own constraints. Float points use FmodPoint.
func ModPoint[T constraints.Integer](p, q Point[T]) Point[T] {
	return Point[T]{X: p.X % q.X, Y: p.Y % q.Y}
}

// ModPointScalar broadcasts the modulus to both components.
func ModPointScalar[T constraints.Integer](p Point[T], v T) Point[T] {
	return ModPoint(p, Splat(v))
}

// FmodPoint is ModPoint for float points, through math.Mod.
func FmodPoint[T constraints.Float](p, q Point[T]) Point[T] {
	return Point[T]{
		X: T(math.Mod(float64(p.X), float64(q.X))),
		Y: T(math.Mod(float64(p.Y), float64(q.Y))),
	}
}

// FmodPointScalar broadcasts the modulus to both components.
func FmodPointScalar[T constraints.Float](p Point[T], v T) Point[T] {
	return FmodPoint(p, Splat(v))
}
