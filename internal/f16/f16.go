// Package f16 implements IEEE-754 binary16 (float16) encoding/decoding.
//
// binary16 is a storage format here: kernels widen to float32 before
// reducing, so this package only converts, it never computes.
package f16

import "math"

// Bits is the raw IEEE-754 binary16 bit-pattern.
//
// Layout:
//
//	sign: 1 bit
//	exp:  5 bits (bias 15)
//	frac: 10 bits
type Bits uint16

const (
	// subnormalUnit is 2^-24, the value of the least significant
	// binary16 fraction bit when the exponent field is zero.
	subnormalUnit = float32(5.9604645e-08)
)

// ToFloat32 converts a binary16 bit-pattern to float32.
// The conversion is exact: every binary16 value is representable.
func ToFloat32(h Bits) float32 {
	sign := uint32(h>>15) << 31
	exp := uint32(h>>10) & 0x1F
	frac := uint32(h) & 0x3FF

	switch exp {
	case 0:
		// Zero or subnormal: value = frac * 2^-24.
		f := float32(frac) * subnormalUnit
		if sign != 0 {
			f = -f
		}
		return f
	case 0x1F:
		// Inf / NaN: widen the payload into the float32 fraction field.
		return math.Float32frombits(sign | 0x7F800000 | frac<<13)
	default:
		// Normal: re-bias exponent from 15 to 127.
		return math.Float32frombits(sign | (exp+112)<<23 | frac<<13)
	}
}

// FromFloat32 converts a float32 value into a binary16 bit-pattern.
//
// Rounding mode: round-to-nearest, ties-to-even. Values above the
// binary16 range become infinity; NaN payloads collapse to a canonical
// quiet NaN.
func FromFloat32(f float32) Bits {
	x := math.Float32bits(f)
	sign := Bits(x>>16) & 0x8000
	x &= 0x7FFFFFFF

	// 0x47800000 is 2^16, the first float32 past the binary16 range.
	if x >= 0x47800000 {
		if x > 0x7F800000 {
			return sign | 0x7E00 // NaN
		}
		return sign | 0x7C00 // Inf (and overflow)
	}

	// 0x38800000 is 2^-14, the smallest normal binary16.
	if x < 0x38800000 {
		// 0x33000000 is 2^-25; anything below rounds to zero, and
		// 2^-25 itself ties to even (zero) inside the subnormal path.
		if x < 0x33000000 {
			return sign
		}
		exp := x >> 23
		mant := x&0x7FFFFF | 0x800000
		shift := 126 - exp // target unit is 2^-24
		h := mant >> shift
		rem := mant & (1<<shift - 1)
		half := uint32(1) << (shift - 1)
		if rem > half || (rem == half && h&1 == 1) {
			h++
		}
		return sign | Bits(h)
	}

	// Normal range: the rebias and fraction narrowing collapse into one
	// subtraction because both fields shift together; a rounding carry
	// propagates from fraction into exponent (and to Inf) for free.
	h := Bits((x - 0x38000000) >> 13)
	rem := x & 0x1FFF
	if rem > 0x1000 || (rem == 0x1000 && h&1 == 1) {
		h++
	}
	return sign | h
}

// Decode converts binary16 bit-patterns to float32.
// dst must have length >= len(src).
func Decode(dst []float32, src []Bits) {
	for i := range src {
		dst[i] = ToFloat32(src[i])
	}
}

// Encode converts float32 values to binary16.
// dst must have length >= len(src).
func Encode(dst []Bits, src []float32) {
	for i := range src {
		dst[i] = FromFloat32(src[i])
	}
}

// Decode8 widens one 8-element chunk into a lane buffer.
// Kernel hot loops use this to keep the reduction at full width.
func Decode8(dst *[8]float32, src *[8]Bits) {
	for i := 0; i < 8; i++ {
		dst[i] = ToFloat32(src[i])
	}
}
