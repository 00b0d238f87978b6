// Package simdops wraps the SIMD float64 kernels used by table generation and
// audition rendering.
package simdops

import "github.com/tphakala/simd/f64"

// Ops provides SIMD-accelerated float64 operations.
type Ops struct {
	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []float64, s float64)

	// Interleave2 interleaves two slices: dst[0]=a[0], dst[1]=b[0], dst[2]=a[1], ...
	Interleave2 func(dst, a, b []float64)

	// Sum returns the sum of all elements.
	Sum func(a []float64) float64
}

var ops = Ops{
	Scale:       f64.Scale,
	Interleave2: f64.Interleave2,
	Sum:         f64.Sum,
}

// ScaleTo returns a new slice holding a scaled by s.
func ScaleTo(a []float64, s float64) []float64 {
	dst := make([]float64, len(a))
	ops.Scale(dst, a, s)
	return dst
}

// Interleave returns a new slice holding a and b interleaved.
// Both inputs must have the same length.
func Interleave(a, b []float64) []float64 {
	dst := make([]float64, len(a)*2)
	ops.Interleave2(dst, a, b)
	return dst
}

// Sum returns the sum of a.
func Sum(a []float64) float64 {
	return ops.Sum(a)
}
