// Package simdvec computes distance and similarity metrics between
// fixed-length numeric vectors, selecting at runtime the fastest
// hardware-vectorized kernel available on the executing CPU.
//
// # Metrics and encodings
//
//   - cosine, inner, sqeuclidean over float32, float16 and int8 vectors
//   - hamming, jaccard over bit-packed vectors (and int8 read as bitsets)
//
// # Usage
//
// Single pair:
//
//	d, err := simdvec.Distance(simdvec.F32Vector(a), simdvec.F32Vector(b), simdvec.Cosine)
//
// Batches with broadcast, and all-pairs tables, optionally parallel:
//
//	out, err := simdvec.Batch(queries, targets, simdvec.SqEuclidean, 0) // 0 = all cores
//	tab, err := simdvec.Cross(ma, mb, simdvec.Inner, 4)
//
// External indexes can embed the resolved routine directly via Kernel,
// skipping per-call validation.
//
// Hardware capability gaps are never errors: kernels silently fall back
// down to the portable scalar tier. Capabilities reports what was
// detected; set SIMDVEC_ISA to pin a tier.
package simdvec
