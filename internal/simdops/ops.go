// Package simdops provides SIMD-accelerated vector operations for float32 and
// float64 sample buffers.
package simdops

import (
	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"
)

// Float is the type constraint for supported floating-point types.
type Float interface {
	float32 | float64
}

// Ops provides SIMD-accelerated operations for type F.
type Ops[F Float] struct {
	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []F, s F)

	// Sum returns the sum of all elements.
	Sum func(a []F) F

	// DotProduct returns the dot product of a and b.
	DotProduct func(a, b []F) F
}

var (
	ops32 = Ops[float32]{
		Scale:      f32.Scale,
		Sum:        f32.Sum,
		DotProduct: f32.DotProduct,
	}
	ops64 = Ops[float64]{
		Scale:      f64.Scale,
		Sum:        f64.Sum,
		DotProduct: f64.DotProduct,
	}
)

// For returns the Ops instance for type F.
func For[F Float]() *Ops[F] {
	var zero F
	switch any(zero).(type) {
	case float32:
		ops, ok := any(&ops32).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float32")
		}
		return ops
	case float64:
		ops, ok := any(&ops64).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float64")
		}
		return ops
	default:
		panic("simdops: unsupported float type")
	}
}

// Float64Ops returns the float64 SIMD operations.
func Float64Ops() *Ops[float64] {
	return &ops64
}

// MeanSquare returns the mean of the squared elements, or 0 for an empty slice.
func MeanSquare[F Float](a []F) F {
	if len(a) == 0 {
		return 0
	}
	return For[F]().DotProduct(a, a) / F(len(a))
}
