package f16

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToFloat32(t *testing.T) {
	tests := []struct {
		name string
		h    Bits
		want float32
	}{
		{"zero", 0x0000, 0},
		{"one", 0x3C00, 1},
		{"two", 0x4000, 2},
		{"neg two", 0xC000, -2},
		{"half", 0x3800, 0.5},
		{"max", 0x7BFF, 65504},
		{"smallest normal", 0x0400, 6.103515625e-05},
		{"smallest subnormal", 0x0001, 5.9604645e-08},
		{"largest subnormal", 0x03FF, 6.097555160522461e-05},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ToFloat32(tc.h))
		})
	}
}

func TestToFloat32Special(t *testing.T) {
	assert.True(t, math.IsInf(float64(ToFloat32(0x7C00)), 1))
	assert.True(t, math.IsInf(float64(ToFloat32(0xFC00)), -1))
	assert.True(t, math.IsNaN(float64(ToFloat32(0x7E00))))
	assert.Equal(t, uint32(0x80000000), math.Float32bits(ToFloat32(0x8000)), "negative zero")
}

func TestFromFloat32(t *testing.T) {
	tests := []struct {
		name string
		f    float32
		want Bits
	}{
		{"zero", 0, 0x0000},
		{"one", 1, 0x3C00},
		{"neg two", -2, 0xC000},
		{"max", 65504, 0x7BFF},
		{"overflow to inf", 70000, 0x7C00},
		{"tiny to zero", 1e-9, 0x0000},
		{"smallest subnormal", 5.9604645e-08, 0x0001},
		{"subnormal", 3.0e-05, 0x01F7},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FromFloat32(tc.f))
		})
	}
}

func TestFromFloat32Special(t *testing.T) {
	assert.Equal(t, Bits(0x7C00), FromFloat32(float32(math.Inf(1))))
	assert.Equal(t, Bits(0xFC00), FromFloat32(float32(math.Inf(-1))))
	nan := FromFloat32(float32(math.NaN()))
	assert.Equal(t, Bits(0x7C00), nan&0x7C00)
	assert.NotZero(t, nan&0x03FF, "NaN must stay NaN")
	assert.Equal(t, Bits(0x8000), FromFloat32(float32(math.Copysign(0, -1))), "negative zero")
}

func TestRoundTiesToEven(t *testing.T) {
	// 1 + 2^-11 sits exactly between 0x3C00 and 0x3C01: ties go to the
	// even pattern.
	assert.Equal(t, Bits(0x3C00), FromFloat32(1.00048828125))
	// 1 + 3*2^-11 sits between 0x3C01 and 0x3C02.
	assert.Equal(t, Bits(0x3C02), FromFloat32(1.00146484375))
	// Just above the tie rounds up.
	assert.Equal(t, Bits(0x3C01), FromFloat32(1.0005))
	// 65520 ties between 65504 (0x7BFF, odd) and 2^16: overflow to Inf.
	assert.Equal(t, Bits(0x7C00), FromFloat32(65520))
}

func TestRoundTripExhaustive(t *testing.T) {
	// Every binary16 value is exactly representable in float32, so the
	// round trip must restore the identical bit-pattern. NaNs are
	// excluded: payloads collapse to the canonical quiet NaN.
	for i := 0; i <= 0xFFFF; i++ {
		h := Bits(i)
		if h&0x7C00 == 0x7C00 && h&0x03FF != 0 {
			continue
		}
		assert.Equal(t, h, FromFloat32(ToFloat32(h)), "bits %#04x", i)
	}
}

func TestEncodeDecode(t *testing.T) {
	src := []float32{0, 1, -1, 0.5, 1024, -0.25}
	enc := make([]Bits, len(src))
	Encode(enc, src)
	dec := make([]float32, len(src))
	Decode(dec, enc)
	assert.Equal(t, src, dec)
}

func TestDecode8(t *testing.T) {
	var src [8]Bits
	for i := range src {
		src[i] = FromFloat32(float32(i))
	}
	var dst [8]float32
	Decode8(&dst, &src)
	for i := range dst {
		assert.Equal(t, float32(i), dst[i])
	}
}
