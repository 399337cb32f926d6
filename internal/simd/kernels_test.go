package simd

import (
	"math"
	"math/rand"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/simdvec/internal/f16"
)

func p32(v []float32) unsafe.Pointer  { return unsafe.Pointer(unsafe.SliceData(v)) }
func p16(v []f16.Bits) unsafe.Pointer { return unsafe.Pointer(unsafe.SliceData(v)) }
func p8(v []int8) unsafe.Pointer      { return unsafe.Pointer(unsafe.SliceData(v)) }
func pb(v []byte) unsafe.Pointer      { return unsafe.Pointer(unsafe.SliceData(v)) }

// Sizes straddle every lane width and its tail cases.
var testSizes = []int{0, 1, 2, 3, 4, 5, 7, 8, 9, 15, 16, 17, 31, 32, 33, 63, 64, 65, 100, 127, 128, 129, 768}

func randF32(rng *rand.Rand, n int) []float32 {
	v := make([]float32, n)
	for i := range v {
		v[i] = rng.Float32()*2 - 1
	}
	return v
}

func randF16(rng *rand.Rand, n int) []f16.Bits {
	v := make([]f16.Bits, n)
	for i := range v {
		v[i] = f16.FromFloat32(rng.Float32()*2 - 1)
	}
	return v
}

func randI8(rng *rand.Rand, n int) []int8 {
	v := make([]int8, n)
	for i := range v {
		v[i] = int8(rng.Intn(256) - 128)
	}
	return v
}

func randBytes(rng *rand.Rand, n int) []byte {
	v := make([]byte, n)
	rng.Read(v)
	return v
}

// assertClose checks got against want with a relative tolerance floored
// at the same magnitude in absolute terms, so near-zero reductions do not
// blow up the relative test.
func assertClose(t *testing.T, want, got, tol float64, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, want, got, tol*math.Max(1, math.Abs(want)), msgAndArgs...)
}

func TestTierEquivalenceF32(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, op := range []Op{OpInner, OpSqEuclidean, OpCosine} {
		scalar := kernels[op][F32][Scalar]
		require.NotNil(t, scalar)
		for isa := Scalar + 1; isa < numISAs; isa++ {
			k := kernels[op][F32][isa]
			if k == nil {
				continue
			}
			for _, n := range testSizes {
				a, b := randF32(rng, n), randF32(rng, n)
				want := scalar(p32(a), p32(b), n)
				got := k(p32(a), p32(b), n)
				assertClose(t, want, got, 1e-3, "%s f32 %s n=%d", op, isa, n)
			}
		}
	}
}

func TestTierEquivalenceF16(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for _, op := range []Op{OpInner, OpSqEuclidean, OpCosine} {
		scalar := kernels[op][F16][Scalar]
		require.NotNil(t, scalar)
		for isa := Scalar + 1; isa < numISAs; isa++ {
			k := kernels[op][F16][isa]
			if k == nil {
				continue
			}
			for _, n := range testSizes {
				a, b := randF16(rng, n), randF16(rng, n)
				want := scalar(p16(a), p16(b), n)
				got := k(p16(a), p16(b), n)
				assertClose(t, want, got, 1e-3, "%s f16 %s n=%d", op, isa, n)
			}
		}
	}
}

func TestTierEquivalenceI8(t *testing.T) {
	// Integer accumulation is associative: the lane kernels must agree
	// with the scalar fallback bit for bit, cosine included (both sides
	// derive from identical integer reductions).
	rng := rand.New(rand.NewSource(3))
	for _, op := range []Op{OpInner, OpSqEuclidean, OpCosine, OpHamming, OpJaccard} {
		scalar := kernels[op][I8][Scalar]
		require.NotNil(t, scalar)
		for isa := Scalar + 1; isa < numISAs; isa++ {
			k := kernels[op][I8][isa]
			if k == nil {
				continue
			}
			for _, n := range testSizes {
				a, b := randI8(rng, n), randI8(rng, n)
				want := scalar(p8(a), p8(b), n)
				got := k(p8(a), p8(b), n)
				assert.Equal(t, want, got, "%s i8 %s n=%d", op, isa, n)
			}
		}
	}
}

func TestTierEquivalenceB1(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for _, op := range []Op{OpHamming, OpJaccard} {
		scalar := kernels[op][B1][Scalar]
		require.NotNil(t, scalar)
		for isa := Scalar + 1; isa < numISAs; isa++ {
			k := kernels[op][B1][isa]
			if k == nil {
				continue
			}
			for _, n := range testSizes {
				a, b := randBytes(rng, n), randBytes(rng, n)
				want := scalar(pb(a), pb(b), n)
				got := k(pb(a), pb(b), n)
				assert.Equal(t, want, got, "%s b1 %s n=%d", op, isa, n)
			}
		}
	}
}

func TestFloatScenarios(t *testing.T) {
	a := []float32{1, 0, 0, 0}
	b := []float32{0, 1, 0, 0}

	for isa := Scalar; isa < numISAs; isa++ {
		if k := kernels[OpCosine][F32][isa]; k != nil {
			assert.Equal(t, 1.0, k(p32(a), p32(b), 4), "cosine %s", isa)
		}
		if k := kernels[OpSqEuclidean][F32][isa]; k != nil {
			assert.Equal(t, 2.0, k(p32(a), p32(b), 4), "sqeuclidean %s", isa)
		}
		if k := kernels[OpInner][F32][isa]; k != nil {
			assert.Equal(t, 0.0, k(p32(a), p32(b), 4), "inner %s", isa)
		}
	}
}

func TestBitScenarios(t *testing.T) {
	tests := []struct {
		name             string
		a, b             byte
		hamming, jaccard float64
	}{
		{"two diff, half overlap", 0b11110000, 0b10100000, 2, 0.5},
		{"two diff, third overlap", 0b11000000, 0b01100000, 2, 1 - 1.0/3.0},
		{"identical", 0b10101010, 0b10101010, 0, 0},
		{"disjoint", 0b11110000, 0b00001111, 8, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, b := []byte{tc.a}, []byte{tc.b}
			for isa := Scalar; isa < numISAs; isa++ {
				if k := kernels[OpHamming][B1][isa]; k != nil {
					assert.Equal(t, tc.hamming, k(pb(a), pb(b), 1), "hamming %s", isa)
				}
				if k := kernels[OpJaccard][B1][isa]; k != nil {
					assert.InDelta(t, tc.jaccard, k(pb(a), pb(b), 1), 1e-12, "jaccard %s", isa)
				}
			}
		})
	}
}

func TestCosineZeroVectorSentinel(t *testing.T) {
	// Degenerate zero-magnitude input resolves to the fixed sentinel 1,
	// never a division by zero. Pinned here for every tier and encoding.
	zero32 := make([]float32, 17)
	some32 := randF32(rand.New(rand.NewSource(5)), 17)
	zero16 := make([]f16.Bits, 17)
	some16 := randF16(rand.New(rand.NewSource(6)), 17)
	zero8 := make([]int8, 17)
	some8 := randI8(rand.New(rand.NewSource(7)), 17)

	for isa := Scalar; isa < numISAs; isa++ {
		if k := kernels[OpCosine][F32][isa]; k != nil {
			assert.Equal(t, 1.0, k(p32(zero32), p32(some32), 17), "f32 %s", isa)
			assert.Equal(t, 1.0, k(p32(some32), p32(zero32), 17), "f32 %s", isa)
			assert.Equal(t, 1.0, k(p32(zero32), p32(zero32), 17), "f32 %s", isa)
		}
		if k := kernels[OpCosine][F16][isa]; k != nil {
			assert.Equal(t, 1.0, k(p16(zero16), p16(some16), 17), "f16 %s", isa)
		}
		if k := kernels[OpCosine][I8][isa]; k != nil {
			assert.Equal(t, 1.0, k(p8(zero8), p8(some8), 17), "i8 %s", isa)
		}
	}
}

func TestCosineBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.Intn(300)
		a, b := randF32(rng, n), randF32(rng, n)
		for isa := Scalar; isa < numISAs; isa++ {
			k := kernels[OpCosine][F32][isa]
			if k == nil {
				continue
			}
			d := k(p32(a), p32(b), n)
			assert.GreaterOrEqual(t, d, 0.0)
			assert.LessOrEqual(t, d, 2.0)
		}
	}
}

func TestCosineSelfDistance(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	a := randF32(rng, 256)
	for isa := Scalar; isa < numISAs; isa++ {
		if k := kernels[OpCosine][F32][isa]; k != nil {
			// Not exactly zero: the approximate inverse sqrt carries a
			// bounded relative error.
			assert.InDelta(t, 0.0, k(p32(a), p32(a), 256), 1e-4, "%s", isa)
		}
	}
}

func TestJaccardBothEmpty(t *testing.T) {
	zero := make([]byte, 9)
	for isa := Scalar; isa < numISAs; isa++ {
		if k := kernels[OpJaccard][B1][isa]; k != nil {
			assert.Equal(t, 0.0, k(pb(zero), pb(zero), 9), "%s", isa)
		}
	}
}

func TestTailWord(t *testing.T) {
	assert.Equal(t, uint64(0), tailWord(nil))
	assert.Equal(t, uint64(0xAB), tailWord([]byte{0xAB}))
	assert.Equal(t, uint64(0x0302_01), tailWord([]byte{0x01, 0x02, 0x03}))
	assert.Equal(t, uint64(0x0706_0504_0302_01), tailWord([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}))
}

func TestPopcount(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	for _, n := range testSizes {
		b := randBytes(rng, n)
		want := 0
		for _, v := range b {
			for ; v != 0; v &= v - 1 {
				want++
			}
		}
		assert.Equal(t, want, Popcount(b), "n=%d", n)
	}
}

// BenchmarkCosineF32 measures the resolved cosine kernel at a typical
// embedding dimension.
func BenchmarkCosineF32(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	va := randF32(rng, 1536)
	vb := randF32(rng, 1536)
	k, _ := Resolve(OpCosine, F32)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = k(p32(va), p32(vb), 1536)
	}
}

func BenchmarkHammingB1(b *testing.B) {
	rng := rand.New(rand.NewSource(2))
	va := randBytes(rng, 192) // 1536 bits
	vb := randBytes(rng, 192)
	k, _ := Resolve(OpHamming, B1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = k(pb(va), pb(vb), 192)
	}
}
