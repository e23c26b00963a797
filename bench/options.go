// Package bench: run configuration.

package bench

// Default configuration values; DefaultOptions is the single source of truth
// consumed by the runner and the sweep.
const (
	// DefaultTrials is the number of kernel executions averaged per
	// (size, order) pair.
	DefaultTrials = 5

	// DefaultSeed feeds the matrix generator; seed 0 is meaningful and
	// stable, not a request for entropy.
	DefaultSeed = 0
)

// Options configures the trial runner and the sweep.
//
// Fields:
//   - Trials — kernel executions per (size, order) pair; must be >= 1.
//     Each trial re-zeroes the shared output matrix, then the elapsed times
//     are averaged. More trials smooth scheduler and timer noise.
//   - Seed   — seed for the deterministic input generator, used verbatim.
//     The same seed and size list always reproduce bit-identical inputs,
//     which is what makes checksums comparable across orders and runs.
//
// Options is a plain value: copy it freely, pass nil to mean defaults.
// There is no global state; a test harness can sweep seeds within one
// process by passing varied Options values.
//
// Example:
//
//	opts := bench.DefaultOptions()
//	opts.Trials = 3
//	res, err := bench.Run(bench.IKJ, a, b, c, &opts)
type Options struct {
	Trials int
	Seed   int64
}

// DefaultOptions returns the documented defaults: Trials=5, Seed=0.
func DefaultOptions() Options {
	return Options{Trials: DefaultTrials, Seed: DefaultSeed}
}
