// Package simd implements the capability-dispatched distance kernels.
//
// # Supported tiers
//
//   - x86-64: AVX-512, AVX2
//   - ARM64: SVE2 (resolved through the NEON kernels), NEON
//   - any: scalar fallback
//
// CPU features are probed once at init. Kernels register themselves per
// (op, dtype, ISA) and the registry resolves each (op, dtype) pair to the
// best available routine, walking the ISA preference order down to scalar.
// Set SIMDVEC_ISA to pin a tier (e.g. SIMDVEC_ISA=scalar) for debugging.
//
// # Kernels
//
//   - float32 / float16: inner product, squared L2, cosine distance
//   - int8: same, with int32 accumulation
//   - bit-packed: Hamming, Jaccard (also usable over int8 buffers)
//
// All kernels share the punned calling convention
// (ptrA, ptrB, n) -> float64 so a resolved kernel can be embedded directly
// as a hot-path comparator.
package simd
