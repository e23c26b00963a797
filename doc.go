// Package matbench benchmarks dense square matrix multiplication under all
// six orderings of the three nested index loops, to expose how memory-access
// pattern (row-major vs. column-major vs. mixed traversal) drives wall-clock
// performance on a given machine.
//
// 🚀 What is matbench?
//
//	A small, deterministic benchmarking engine plus a thin CLI:
//		• matrix/ — square int64 matrices with seeded, reproducible fill
//		• bench/  — the six permuted triple-loop kernels, the trial runner,
//		            and the (size, order) results table with fixed-width reports
//		• cmd/matbench — flag-driven or interactive driver
//
// ✨ Why measure this?
//
//   - The naive multiply C[i][j] += A[i][k]*B[k][j] does identical arithmetic
//     under every loop nesting, yet the nesting decides whether A, B and C are
//     walked along rows (cache-friendly) or down columns (cache-hostile).
//   - Fixed seeds and a prefix checksum make every order's output directly
//     comparable: orders may differ only in time, never in the product.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/matbench/bench"
//
//	opts := bench.DefaultOptions()
//	table, err := bench.Sweep([]int{100, 200}, bench.Orders(), &opts, nil)
//	if err != nil { ... }
//	fmt.Print(table.RenderTimes())
//	fmt.Print(table.RenderSums())
//
// Or run the CLI:
//
//	matbench -all                # 100..500 × all six orders
//	matbench -N 64,128 -t ijk,kji
//	matbench                     # interactive single pair
//
// Everything is single-threaded on purpose: concurrent work would contend for
// the very caches the benchmark exists to observe.
package matbench
