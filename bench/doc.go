// Package bench is the core of the loop-order multiplication benchmark:
// the six permuted triple-loop kernels, the timing/trial harness, and the
// (size, order) results table behind the printed reports.
//
// 🚀 What does it measure?
//
//	The naive product C[i][j] += A[i][k]*B[k][j] performs the same n³
//	multiply-adds under every nesting of the loops over i (row), j (column)
//	and k (contraction). What changes is the memory-access pattern: whether
//	A, B and C are walked along rows or down columns of the row-major
//	storage. bench times each of the six nestings on identical inputs.
//
// ✨ Key properties:
//   - Order is a closed enum of exactly six permutations; each maps to its
//     own dedicated loop nest, so there is zero branching inside the hot
//     loop (a branch there would itself distort the cache behavior under
//     measurement).
//   - The trial runner re-zeroes a reused output matrix before every trial,
//     averages elapsed time over the trials and checksums the final output.
//   - All orders must agree on the checksum for identical inputs — they
//     differ only in measured time, never in computed values.
//   - Everything is strictly sequential: sizes, orders and trials run one
//     after another so nothing contends for the caches being observed.
//
// ⚙️ Usage:
//
//	opts := bench.DefaultOptions()
//	table, err := bench.Sweep([]int{100, 200}, bench.Orders(), &opts, nil)
//	if err != nil { ... }
//	fmt.Print(table.RenderTimes())
//	fmt.Print(table.RenderSums())
//
// Complexity: one (size, order) pair costs O(Trials · n³); the sweep is the
// cross product of the size and order lists.
package bench
