// Package matrix: sentinel error set.
// All public entry points return these sentinels and tests match them via
// errors.Is. No function panics on a user-triggered condition. If context is
// essential, wrap with fmt.Errorf("ctx: %w", ErrX) at the outer boundary.

package matrix

import "errors"

var (
	// ErrNegativeSize is returned when a matrix is requested with n < 0.
	// n == 0 is legal: a zero-size matrix holds no elements and checksums to 0.
	ErrNegativeSize = errors.New("matrix: size must be >= 0")

	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")
)
