package simd

import "unsafe"

// float32 kernels.
//
// The vectorized tiers keep one accumulator per lane so the compiler can
// hold the reduction in vector registers, and fold the lanes pairwise at
// the end. A vector-length tail that does not fill a register is copied
// into a zeroed lane buffer and reduced at full width: zero lanes
// contribute nothing to any reduction used here, so no scalar tail loop
// is needed.

func init() {
	register(OpInner, F32, Scalar, innerF32Scalar)
	register(OpSqEuclidean, F32, Scalar, sqeuclideanF32Scalar)
	register(OpCosine, F32, Scalar, cosineF32Scalar)

	register(OpInner, F32, NEON, innerF32x4)
	register(OpSqEuclidean, F32, NEON, sqeuclideanF32x4)
	register(OpCosine, F32, NEON, cosineF32x4)

	register(OpInner, F32, AVX2, innerF32x8)
	register(OpSqEuclidean, F32, AVX2, sqeuclideanF32x8)
	register(OpCosine, F32, AVX2, cosineF32x8)

	register(OpInner, F32, AVX512, innerF32x16)
	register(OpSqEuclidean, F32, AVX512, sqeuclideanF32x16)
	register(OpCosine, F32, AVX512, cosineF32x16)
}

// ============================================================================
// Scalar fallbacks (correctness oracle for the lane kernels)
// ============================================================================

func innerF32Scalar(a, b unsafe.Pointer, n int) float64 {
	x, y := f32s(a, n), f32s(b, n)
	var dot float32
	for i := range x {
		dot += x[i] * y[i]
	}
	return float64(dot)
}

func sqeuclideanF32Scalar(a, b unsafe.Pointer, n int) float64 {
	x, y := f32s(a, n), f32s(b, n)
	var sum float32
	for i := range x {
		d := x[i] - y[i]
		sum += d * d
	}
	return float64(sum)
}

func cosineF32Scalar(a, b unsafe.Pointer, n int) float64 {
	x, y := f32s(a, n), f32s(b, n)
	var dot, na, nb float32
	for i := range x {
		dot += x[i] * y[i]
		na += x[i] * x[i]
		nb += y[i] * y[i]
	}
	return cosineFromParts(dot, na, nb)
}

// ============================================================================
// 4-lane kernels (NEON)
// ============================================================================

func innerF32x4(a, b unsafe.Pointer, n int) float64 {
	x, y := f32s(a, n), f32s(b, n)
	var acc [4]float32
	i := 0
	for ; i+4 <= n; i += 4 {
		xa := (*[4]float32)(unsafe.Pointer(&x[i]))
		yb := (*[4]float32)(unsafe.Pointer(&y[i]))
		for l := 0; l < 4; l++ {
			acc[l] += xa[l] * yb[l]
		}
	}
	if i < n {
		var xt, yt [4]float32
		copy(xt[:], x[i:])
		copy(yt[:], y[i:])
		for l := 0; l < 4; l++ {
			acc[l] += xt[l] * yt[l]
		}
	}
	return float64(sum4(&acc))
}

func sqeuclideanF32x4(a, b unsafe.Pointer, n int) float64 {
	x, y := f32s(a, n), f32s(b, n)
	var acc [4]float32
	i := 0
	for ; i+4 <= n; i += 4 {
		xa := (*[4]float32)(unsafe.Pointer(&x[i]))
		yb := (*[4]float32)(unsafe.Pointer(&y[i]))
		for l := 0; l < 4; l++ {
			d := xa[l] - yb[l]
			acc[l] += d * d
		}
	}
	if i < n {
		var xt, yt [4]float32
		copy(xt[:], x[i:])
		copy(yt[:], y[i:])
		for l := 0; l < 4; l++ {
			d := xt[l] - yt[l]
			acc[l] += d * d
		}
	}
	return float64(sum4(&acc))
}

func cosineF32x4(a, b unsafe.Pointer, n int) float64 {
	x, y := f32s(a, n), f32s(b, n)
	var dot, na, nb [4]float32
	i := 0
	for ; i+4 <= n; i += 4 {
		xa := (*[4]float32)(unsafe.Pointer(&x[i]))
		yb := (*[4]float32)(unsafe.Pointer(&y[i]))
		for l := 0; l < 4; l++ {
			dot[l] += xa[l] * yb[l]
			na[l] += xa[l] * xa[l]
			nb[l] += yb[l] * yb[l]
		}
	}
	if i < n {
		var xt, yt [4]float32
		copy(xt[:], x[i:])
		copy(yt[:], y[i:])
		for l := 0; l < 4; l++ {
			dot[l] += xt[l] * yt[l]
			na[l] += xt[l] * xt[l]
			nb[l] += yt[l] * yt[l]
		}
	}
	return cosineFromParts(sum4(&dot), sum4(&na), sum4(&nb))
}

// ============================================================================
// 8-lane kernels (AVX2)
// ============================================================================

func innerF32x8(a, b unsafe.Pointer, n int) float64 {
	x, y := f32s(a, n), f32s(b, n)
	var acc [8]float32
	i := 0
	for ; i+8 <= n; i += 8 {
		xa := (*[8]float32)(unsafe.Pointer(&x[i]))
		yb := (*[8]float32)(unsafe.Pointer(&y[i]))
		for l := 0; l < 8; l++ {
			acc[l] += xa[l] * yb[l]
		}
	}
	if i < n {
		var xt, yt [8]float32
		copy(xt[:], x[i:])
		copy(yt[:], y[i:])
		for l := 0; l < 8; l++ {
			acc[l] += xt[l] * yt[l]
		}
	}
	return float64(sum8(&acc))
}

func sqeuclideanF32x8(a, b unsafe.Pointer, n int) float64 {
	x, y := f32s(a, n), f32s(b, n)
	var acc [8]float32
	i := 0
	for ; i+8 <= n; i += 8 {
		xa := (*[8]float32)(unsafe.Pointer(&x[i]))
		yb := (*[8]float32)(unsafe.Pointer(&y[i]))
		for l := 0; l < 8; l++ {
			d := xa[l] - yb[l]
			acc[l] += d * d
		}
	}
	if i < n {
		var xt, yt [8]float32
		copy(xt[:], x[i:])
		copy(yt[:], y[i:])
		for l := 0; l < 8; l++ {
			d := xt[l] - yt[l]
			acc[l] += d * d
		}
	}
	return float64(sum8(&acc))
}

func cosineF32x8(a, b unsafe.Pointer, n int) float64 {
	x, y := f32s(a, n), f32s(b, n)
	var dot, na, nb [8]float32
	i := 0
	for ; i+8 <= n; i += 8 {
		xa := (*[8]float32)(unsafe.Pointer(&x[i]))
		yb := (*[8]float32)(unsafe.Pointer(&y[i]))
		for l := 0; l < 8; l++ {
			dot[l] += xa[l] * yb[l]
			na[l] += xa[l] * xa[l]
			nb[l] += yb[l] * yb[l]
		}
	}
	if i < n {
		var xt, yt [8]float32
		copy(xt[:], x[i:])
		copy(yt[:], y[i:])
		for l := 0; l < 8; l++ {
			dot[l] += xt[l] * yt[l]
			na[l] += xt[l] * xt[l]
			nb[l] += yt[l] * yt[l]
		}
	}
	return cosineFromParts(sum8(&dot), sum8(&na), sum8(&nb))
}

// ============================================================================
// 16-lane kernels (AVX-512)
// ============================================================================

func innerF32x16(a, b unsafe.Pointer, n int) float64 {
	x, y := f32s(a, n), f32s(b, n)
	var acc [16]float32
	i := 0
	for ; i+16 <= n; i += 16 {
		xa := (*[16]float32)(unsafe.Pointer(&x[i]))
		yb := (*[16]float32)(unsafe.Pointer(&y[i]))
		for l := 0; l < 16; l++ {
			acc[l] += xa[l] * yb[l]
		}
	}
	if i < n {
		var xt, yt [16]float32
		copy(xt[:], x[i:])
		copy(yt[:], y[i:])
		for l := 0; l < 16; l++ {
			acc[l] += xt[l] * yt[l]
		}
	}
	return float64(sum16(&acc))
}

func sqeuclideanF32x16(a, b unsafe.Pointer, n int) float64 {
	x, y := f32s(a, n), f32s(b, n)
	var acc [16]float32
	i := 0
	for ; i+16 <= n; i += 16 {
		xa := (*[16]float32)(unsafe.Pointer(&x[i]))
		yb := (*[16]float32)(unsafe.Pointer(&y[i]))
		for l := 0; l < 16; l++ {
			d := xa[l] - yb[l]
			acc[l] += d * d
		}
	}
	if i < n {
		var xt, yt [16]float32
		copy(xt[:], x[i:])
		copy(yt[:], y[i:])
		for l := 0; l < 16; l++ {
			d := xt[l] - yt[l]
			acc[l] += d * d
		}
	}
	return float64(sum16(&acc))
}

func cosineF32x16(a, b unsafe.Pointer, n int) float64 {
	x, y := f32s(a, n), f32s(b, n)
	var dot, na, nb [16]float32
	i := 0
	for ; i+16 <= n; i += 16 {
		xa := (*[16]float32)(unsafe.Pointer(&x[i]))
		yb := (*[16]float32)(unsafe.Pointer(&y[i]))
		for l := 0; l < 16; l++ {
			dot[l] += xa[l] * yb[l]
			na[l] += xa[l] * xa[l]
			nb[l] += yb[l] * yb[l]
		}
	}
	if i < n {
		var xt, yt [16]float32
		copy(xt[:], x[i:])
		copy(yt[:], y[i:])
		for l := 0; l < 16; l++ {
			dot[l] += xt[l] * yt[l]
			na[l] += xt[l] * xt[l]
			nb[l] += yt[l] * yt[l]
		}
	}
	return cosineFromParts(sum16(&dot), sum16(&na), sum16(&nb))
}

// ============================================================================
// Horizontal lane folds (pairwise, matching hardware hadd trees)
// ============================================================================

func sum4(v *[4]float32) float32 {
	return (v[0] + v[2]) + (v[1] + v[3])
}

func sum8(v *[8]float32) float32 {
	return ((v[0] + v[4]) + (v[2] + v[6])) + ((v[1] + v[5]) + (v[3] + v[7]))
}

func sum16(v *[16]float32) float32 {
	var lo, hi [8]float32
	for l := 0; l < 8; l++ {
		lo[l] = v[l]
		hi[l] = v[l+8]
	}
	for l := 0; l < 8; l++ {
		lo[l] += hi[l]
	}
	return sum8(&lo)
}
