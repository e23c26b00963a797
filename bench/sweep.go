// Package bench: the sweep driver evaluating the full (sizes × orders) grid.

package bench

import (
	"github.com/katalvlaran/matbench/matrix"
)

// Observer receives each (size, order) result as soon as it is computed,
// before the next combination starts. The presentation layer uses it for
// progress lines or immediate per-pair output; a nil Observer is skipped.
// Observers must not mutate benchmark state.
type Observer func(Key, Result)

// Sweep evaluates every (size, order) combination — sizes outer, orders
// inner — and accumulates the results into a fresh Table.
//
// Input discipline, required for cross-order comparability:
//   - One seeded RNG stream (opts.Seed) generates all inputs; per size, the
//     A and B matrices are filled once and then reused, unchanged, across
//     every order at that size, so all orders multiply identical data.
//   - One output matrix per size is reused across orders and trials; the
//     trial runner re-zeroes it in place before each trial.
//
// Execution is strictly sequential with no goroutines: concurrent work
// would contend for the CPU caches whose behavior is being measured.
//
// Fail-fast: the first error (negative size, invalid order, zero trials,
// duplicate key) aborts the sweep with no partial table returned.
//
// Complexity: O(Σ over sizes of |orders| · Trials · n³).
func Sweep(sizes []int, orders []Order, opts *Options, observe Observer) (*Table, error) {
	cfg := DefaultOptions()
	if opts != nil {
		cfg = *opts
	}
	if cfg.Trials < 1 {
		return nil, ErrZeroTrials
	}

	rng := matrix.NewRand(cfg.Seed)
	table := NewTable()

	for _, n := range sizes {
		a, err := matrix.NewDense(n)
		if err != nil {
			return nil, err
		}
		b, err := matrix.NewDense(n)
		if err != nil {
			return nil, err
		}
		c, err := matrix.NewDense(n)
		if err != nil {
			return nil, err
		}

		// Fill order (A then B) is part of the reproducibility contract.
		a.FillRand(rng)
		b.FillRand(rng)

		for _, o := range orders {
			res, err := Run(o, a, b, c, &cfg)
			if err != nil {
				return nil, err
			}

			k := Key{Size: n, Order: o}
			if err = table.Add(k, res); err != nil {
				return nil, err
			}
			if observe != nil {
				observe(k, res)
			}
		}
	}

	return table, nil
}
