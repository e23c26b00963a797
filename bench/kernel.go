// Package bench: the six ordered multiply kernels.
//
// Every kernel computes the identical accumulation
//
//	C[i][j] += A[i][k] * B[k][j]   for all (i, j, k) in [0, n)³
//
// over flat row-major storage; they differ ONLY in which index role runs at
// which nesting position. Order selection happens once, before timing
// starts, via a fixed function table — there is no branch, map lookup or
// interface call inside any loop, because a hot-loop branch would distort
// the very cache behavior the benchmark exists to measure.
//
// Only loop-invariant index bases (row offsets like i*n) are hoisted, and
// uniformly so across all six nests: no kernel caches element values or
// restructures the arithmetic, keeping the six orders mathematically and
// structurally equivalent.

package bench

import (
	"fmt"
	"time"

	"github.com/katalvlaran/matbench/matrix"
)

// kernelFunc is one fully-ordered loop nest over flat n×n slices.
type kernelFunc func(a, b, c []int64, n int)

// kernels maps each Order to its dedicated loop nest. Indexed by the enum,
// resolved exactly once per Multiply call, outside the timed region.
var kernels = [numOrders]kernelFunc{
	IJK: multiplyIJK,
	IKJ: multiplyIKJ,
	JIK: multiplyJIK,
	JKI: multiplyJKI,
	KIJ: multiplyKIJ,
	KJI: multiplyKJI,
}

// Multiply accumulates a×b into c using the loop nesting selected by o and
// returns the wall-clock duration of the loop nest alone (validation and
// kernel lookup are excluded, as is any allocation — there is none).
//
// c is NOT zeroed here: the caller owns the pre-zeroing discipline, which
// lets the trial runner reuse one output matrix across trials and orders.
// n == 0 is legal and completes with no meaningful work.
//
// Errors:
//   - ErrUnknownOrder     — o is outside the six known permutations.
//   - ErrSizeMismatch     — a, b and c do not share one size.
//
// Complexity: O(n³) time, O(1) extra space.
func Multiply(o Order, a, b, c *matrix.Dense) (time.Duration, error) {
	if !o.valid() {
		return 0, fmt.Errorf("order %d: %w", int(o), ErrUnknownOrder)
	}

	n := a.Size()
	if b.Size() != n || c.Size() != n {
		return 0, fmt.Errorf("a=%d b=%d c=%d: %w", a.Size(), b.Size(), c.Size(), ErrSizeMismatch)
	}

	kern := kernels[o]
	ad, bd, cd := a.Data(), b.Data(), c.Data()

	start := time.Now()
	kern(ad, bd, cd, n)

	return time.Since(start), nil
}

// multiplyIJK: rows outer, columns middle, contraction inner.
// Inner loop streams a row of A and walks a column of B.
func multiplyIJK(a, b, c []int64, n int) {
	var i, j, k, in, ij int
	for i = 0; i < n; i++ {
		in = i * n
		for j = 0; j < n; j++ {
			ij = in + j
			for k = 0; k < n; k++ {
				c[ij] += a[in+k] * b[k*n+j]
			}
		}
	}
}

// multiplyIKJ: rows outer, contraction middle, columns inner.
// Inner loop streams rows of B and C — the row-major-friendly nest.
func multiplyIKJ(a, b, c []int64, n int) {
	var i, j, k, in, kn int
	for i = 0; i < n; i++ {
		in = i * n
		for k = 0; k < n; k++ {
			kn = k * n
			for j = 0; j < n; j++ {
				c[in+j] += a[in+k] * b[kn+j]
			}
		}
	}
}

// multiplyJIK: columns outer, rows middle, contraction inner.
func multiplyJIK(a, b, c []int64, n int) {
	var i, j, k, in, ij int
	for j = 0; j < n; j++ {
		for i = 0; i < n; i++ {
			in = i * n
			ij = in + j
			for k = 0; k < n; k++ {
				c[ij] += a[in+k] * b[k*n+j]
			}
		}
	}
}

// multiplyJKI: columns outer, contraction middle, rows inner.
// Inner loop walks columns of A and C — cache-hostile on row-major storage.
func multiplyJKI(a, b, c []int64, n int) {
	var i, j, k, in, kn int
	for j = 0; j < n; j++ {
		for k = 0; k < n; k++ {
			kn = k * n
			for i = 0; i < n; i++ {
				in = i * n
				c[in+j] += a[in+k] * b[kn+j]
			}
		}
	}
}

// multiplyKIJ: contraction outer, rows middle, columns inner.
// Inner loop streams rows of B and C like IKJ, but revisits all of C per k.
func multiplyKIJ(a, b, c []int64, n int) {
	var i, j, k, in, kn int
	for k = 0; k < n; k++ {
		kn = k * n
		for i = 0; i < n; i++ {
			in = i * n
			for j = 0; j < n; j++ {
				c[in+j] += a[in+k] * b[kn+j]
			}
		}
	}
}

// multiplyKJI: contraction outer, columns middle, rows inner.
// The fully reversed nest; inner loop walks columns of A and C.
func multiplyKJI(a, b, c []int64, n int) {
	var i, j, k, in, kn int
	for k = 0; k < n; k++ {
		kn = k * n
		for j = 0; j < n; j++ {
			for i = 0; i < n; i++ {
				in = i * n
				c[in+j] += a[in+k] * b[kn+j]
			}
		}
	}
}
