package simd

import "math"

// rsqrt returns an approximation of 1/sqrt(x) for x > 0.
//
// Bit-pattern seed followed by two Newton-Raphson refinement steps.
// Maximum relative error is below 1e-5 across the normal float32 range,
// which keeps cosine distances well inside the documented 1e-3 bound.
func rsqrt(x float32) float32 {
	y := math.Float32frombits(0x5f375a86 - math.Float32bits(x)>>1)
	y *= 1.5 - 0.5*x*y*y
	y *= 1.5 - 0.5*x*y*y
	return y
}

// cosineFromParts turns the fused reductions of a cosine kernel into a
// bounded distance: 1 - dot/(|a|*|b|), clamped to [0, 2] to absorb
// rounding past the exact bounds.
//
// A zero-magnitude side makes the distance undefined; the fixed convention
// is to return 1 (the midpoint, "no correlation") instead of dividing by
// zero. Tests pin this sentinel.
func cosineFromParts(dot, na, nb float32) float64 {
	if na == 0 || nb == 0 {
		return 1
	}
	d := 1 - float64(dot*rsqrt(na)*rsqrt(nb))
	if d < 0 {
		return 0
	}
	if d > 2 {
		return 2
	}
	return d
}
