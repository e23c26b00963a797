// Package bench: sentinel error set.
// All failures here are fatal to a run (fail-fast): the kernels are pure
// computation with no I/O and no partial failure modes, so nothing is
// retried. Tests match these via errors.Is; context (the offending order
// name, the duplicate key) is attached with fmt.Errorf("...: %w") at the
// point of detection.

package bench

import "errors"

var (
	// ErrUnknownOrder is returned when an order name is not one of the six
	// known permutations. The run must abort, not fall back to a default.
	ErrUnknownOrder = errors.New("bench: unknown traversal order")

	// ErrZeroTrials rejects a trial count of zero before any kernel work:
	// averaging over zero trials is a configuration error, not a division.
	ErrZeroTrials = errors.New("bench: trial count must be >= 1")

	// ErrSizeMismatch indicates that A, B and C do not share one size n.
	ErrSizeMismatch = errors.New("bench: matrices must share one square size")

	// ErrDuplicateResult indicates an insertion under an already-present
	// (size, order) key; the sweep never produces one, so this flags a
	// driver bug rather than a malformed table entry.
	ErrDuplicateResult = errors.New("bench: duplicate result key")
)
