package simd

import (
	"unsafe"

	"github.com/hupe1980/simdvec/internal/f16"
)

// float16 kernels.
//
// binary16 is a storage encoding only: each chunk is widened to float32
// lanes before reducing, so accumulation precision matches the f32
// kernels. The widened tiers share one 8-lane implementation; on AVX-512
// the conversion is the bottleneck, not the reduction width, so a 16-lane
// variant buys nothing.

func init() {
	register(OpInner, F16, Scalar, innerF16Scalar)
	register(OpSqEuclidean, F16, Scalar, sqeuclideanF16Scalar)
	register(OpCosine, F16, Scalar, cosineF16Scalar)

	for _, isa := range []ISA{NEON, AVX2, AVX512} {
		register(OpInner, F16, isa, innerF16x8)
		register(OpSqEuclidean, F16, isa, sqeuclideanF16x8)
		register(OpCosine, F16, isa, cosineF16x8)
	}
}

func f16s(p unsafe.Pointer, n int) []f16.Bits { return unsafe.Slice((*f16.Bits)(p), n) }

// ============================================================================
// Scalar fallbacks
// ============================================================================

func innerF16Scalar(a, b unsafe.Pointer, n int) float64 {
	x, y := f16s(a, n), f16s(b, n)
	var dot float32
	for i := range x {
		dot += f16.ToFloat32(x[i]) * f16.ToFloat32(y[i])
	}
	return float64(dot)
}

func sqeuclideanF16Scalar(a, b unsafe.Pointer, n int) float64 {
	x, y := f16s(a, n), f16s(b, n)
	var sum float32
	for i := range x {
		d := f16.ToFloat32(x[i]) - f16.ToFloat32(y[i])
		sum += d * d
	}
	return float64(sum)
}

func cosineF16Scalar(a, b unsafe.Pointer, n int) float64 {
	x, y := f16s(a, n), f16s(b, n)
	var dot, na, nb float32
	for i := range x {
		xv := f16.ToFloat32(x[i])
		yv := f16.ToFloat32(y[i])
		dot += xv * yv
		na += xv * xv
		nb += yv * yv
	}
	return cosineFromParts(dot, na, nb)
}

// ============================================================================
// 8-lane kernels (all vector tiers)
// ============================================================================

// loadF16x8 widens the chunk at x[i:] into lanes, zero-padding past n.
// A zero bit-pattern decodes to +0, which is inert in every reduction here.
func loadF16x8(dst *[8]float32, x []f16.Bits, i, n int) {
	if i+8 <= n {
		f16.Decode8(dst, (*[8]f16.Bits)(unsafe.Pointer(&x[i])))
		return
	}
	var raw [8]f16.Bits
	copy(raw[:], x[i:])
	f16.Decode8(dst, &raw)
}

func innerF16x8(a, b unsafe.Pointer, n int) float64 {
	x, y := f16s(a, n), f16s(b, n)
	var acc, xw, yw [8]float32
	for i := 0; i < n; i += 8 {
		loadF16x8(&xw, x, i, n)
		loadF16x8(&yw, y, i, n)
		for l := 0; l < 8; l++ {
			acc[l] += xw[l] * yw[l]
		}
	}
	return float64(sum8(&acc))
}

func sqeuclideanF16x8(a, b unsafe.Pointer, n int) float64 {
	x, y := f16s(a, n), f16s(b, n)
	var acc, xw, yw [8]float32
	for i := 0; i < n; i += 8 {
		loadF16x8(&xw, x, i, n)
		loadF16x8(&yw, y, i, n)
		for l := 0; l < 8; l++ {
			d := xw[l] - yw[l]
			acc[l] += d * d
		}
	}
	return float64(sum8(&acc))
}

func cosineF16x8(a, b unsafe.Pointer, n int) float64 {
	x, y := f16s(a, n), f16s(b, n)
	var dot, na, nb, xw, yw [8]float32
	for i := 0; i < n; i += 8 {
		loadF16x8(&xw, x, i, n)
		loadF16x8(&yw, y, i, n)
		for l := 0; l < 8; l++ {
			dot[l] += xw[l] * yw[l]
			na[l] += xw[l] * xw[l]
			nb[l] += yw[l] * yw[l]
		}
	}
	return cosineFromParts(sum8(&dot), sum8(&na), sum8(&nb))
}
