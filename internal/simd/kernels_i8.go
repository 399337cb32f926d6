package simd

import "unsafe"

// int8 kernels.
//
// Products of int8 values need at most 15 bits, so int32 lane accumulators
// are wide enough for any embedding-scale dimension without overflow.
// Integer addition is associative, which makes the lane kernels bit-exact
// against the scalar fallback for inner and squared L2.
//
// One widened implementation serves every vector tier: the reduction is
// int32-bound, so wider registers only change how many chunks the compiler
// fuses, not the arithmetic.

func init() {
	register(OpInner, I8, Scalar, innerI8Scalar)
	register(OpSqEuclidean, I8, Scalar, sqeuclideanI8Scalar)
	register(OpCosine, I8, Scalar, cosineI8Scalar)

	for _, isa := range []ISA{NEON, AVX2, AVX512} {
		register(OpInner, I8, isa, innerI8x8)
		register(OpSqEuclidean, I8, isa, sqeuclideanI8x8)
		register(OpCosine, I8, isa, cosineI8x8)
	}
}

// ============================================================================
// Scalar fallbacks
// ============================================================================

func innerI8Scalar(a, b unsafe.Pointer, n int) float64 {
	x, y := i8s(a, n), i8s(b, n)
	var dot int32
	for i := range x {
		dot += int32(x[i]) * int32(y[i])
	}
	return float64(dot)
}

func sqeuclideanI8Scalar(a, b unsafe.Pointer, n int) float64 {
	x, y := i8s(a, n), i8s(b, n)
	var sum int32
	for i := range x {
		d := int32(x[i]) - int32(y[i])
		sum += d * d
	}
	return float64(sum)
}

func cosineI8Scalar(a, b unsafe.Pointer, n int) float64 {
	x, y := i8s(a, n), i8s(b, n)
	var dot, na, nb int32
	for i := range x {
		xv, yv := int32(x[i]), int32(y[i])
		dot += xv * yv
		na += xv * xv
		nb += yv * yv
	}
	return cosineFromParts(float32(dot), float32(na), float32(nb))
}

// ============================================================================
// 8-lane kernels (all vector tiers)
// ============================================================================

func innerI8x8(a, b unsafe.Pointer, n int) float64 {
	x, y := i8s(a, n), i8s(b, n)
	var acc [8]int32
	i := 0
	for ; i+8 <= n; i += 8 {
		xa := (*[8]int8)(unsafe.Pointer(&x[i]))
		yb := (*[8]int8)(unsafe.Pointer(&y[i]))
		for l := 0; l < 8; l++ {
			acc[l] += int32(xa[l]) * int32(yb[l])
		}
	}
	if i < n {
		var xt, yt [8]int8
		copy(xt[:], x[i:])
		copy(yt[:], y[i:])
		for l := 0; l < 8; l++ {
			acc[l] += int32(xt[l]) * int32(yt[l])
		}
	}
	return float64(sumI32x8(&acc))
}

func sqeuclideanI8x8(a, b unsafe.Pointer, n int) float64 {
	x, y := i8s(a, n), i8s(b, n)
	var acc [8]int32
	i := 0
	for ; i+8 <= n; i += 8 {
		xa := (*[8]int8)(unsafe.Pointer(&x[i]))
		yb := (*[8]int8)(unsafe.Pointer(&y[i]))
		for l := 0; l < 8; l++ {
			d := int32(xa[l]) - int32(yb[l])
			acc[l] += d * d
		}
	}
	if i < n {
		var xt, yt [8]int8
		copy(xt[:], x[i:])
		copy(yt[:], y[i:])
		for l := 0; l < 8; l++ {
			d := int32(xt[l]) - int32(yt[l])
			acc[l] += d * d
		}
	}
	return float64(sumI32x8(&acc))
}

func cosineI8x8(a, b unsafe.Pointer, n int) float64 {
	x, y := i8s(a, n), i8s(b, n)
	var dot, na, nb [8]int32
	i := 0
	for ; i+8 <= n; i += 8 {
		xa := (*[8]int8)(unsafe.Pointer(&x[i]))
		yb := (*[8]int8)(unsafe.Pointer(&y[i]))
		for l := 0; l < 8; l++ {
			xv, yv := int32(xa[l]), int32(yb[l])
			dot[l] += xv * yv
			na[l] += xv * xv
			nb[l] += yv * yv
		}
	}
	if i < n {
		var xt, yt [8]int8
		copy(xt[:], x[i:])
		copy(yt[:], y[i:])
		for l := 0; l < 8; l++ {
			xv, yv := int32(xt[l]), int32(yt[l])
			dot[l] += xv * yv
			na[l] += xv * xv
			nb[l] += yv * yv
		}
	}
	return cosineFromParts(float32(sumI32x8(&dot)), float32(sumI32x8(&na)), float32(sumI32x8(&nb)))
}

func sumI32x8(v *[8]int32) int32 {
	return ((v[0] + v[4]) + (v[2] + v[6])) + ((v[1] + v[5]) + (v[3] + v[7]))
}
