// Package matrix provides the square integer matrices used by the
// loop-order multiplication benchmark: flat row-major storage, seeded
// deterministic fill, in-place zeroing, and a bounded prefix checksum.
//
// ✨ Key properties:
//   - Dense stores n×n int64 values in one contiguous slice, row-major,
//     so every traversal order maps to a predictable memory-access pattern.
//   - FillRand consumes a caller-seeded *rand.Rand; the same seed and the
//     same fill sequence always reproduce bit-identical contents, which is
//     what makes checksums comparable across orders and across runs.
//   - Checksum sums a fixed-size prefix of the storage (at most 10000
//     elements) — a cheap correctness proxy, not an equality check.
//   - Storage is never reallocated after creation: Zero clears in place so
//     repeated trials reuse the same memory (and the same cache footprint).
//
// ⚙️ Usage:
//
//	rng := matrix.NewRand(0)
//	a, _ := matrix.NewDense(100)
//	b, _ := matrix.NewDense(100)
//	a.FillRand(rng)
//	b.FillRand(rng)
//
// All operations are single-goroutine; Dense carries no locks by design.
package matrix
