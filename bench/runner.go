// Package bench: the trial runner reducing repeated kernel executions to one
// averaged time and one checksum per (size, order) pair.

package bench

import "github.com/katalvlaran/matbench/matrix"

// Result is the outcome of one (size, order) evaluation.
//
// Fields:
//   - TimeUS — elapsed wall-clock time of the multiply loop, in microseconds,
//     averaged over the configured trial count.
//   - Sum    — checksum of the output matrix after the final trial: the sum
//     of its first min(10000, n²) elements in storage order.
//
// Every trial over the same inputs produces an identical output matrix, so
// which trial feeds the checksum is unobservable; the final one is used.
// For a fixed seed and size, all six orders must report the same Sum — they
// may differ only in TimeUS.
type Result struct {
	TimeUS float64
	Sum    int64
}

// Run executes opts.Trials timed multiplications of a×b under order o,
// zeroing c in place before each trial (the storage is reused, never
// reallocated), and reduces them to one Result.
//
// A nil opts means DefaultOptions. Trials < 1 is rejected with ErrZeroTrials
// before any kernel work runs.
//
// Per-trial durations are truncated to whole microseconds before averaging,
// matching the resolution the report prints.
//
// Complexity: O(Trials · n³) time, O(1) extra space.
func Run(o Order, a, b, c *matrix.Dense, opts *Options) (Result, error) {
	cfg := DefaultOptions()
	if opts != nil {
		cfg = *opts
	}
	if cfg.Trials < 1 {
		return Result{}, ErrZeroTrials
	}

	var sumUS int64
	var trial int
	for trial = 0; trial < cfg.Trials; trial++ {
		c.Zero()
		elapsed, err := Multiply(o, a, b, c)
		if err != nil {
			return Result{}, err
		}
		sumUS += elapsed.Microseconds()
	}

	return Result{
		TimeUS: float64(sumUS) / float64(cfg.Trials),
		Sum:    c.Checksum(),
	}, nil
}
