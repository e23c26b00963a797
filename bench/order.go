// Package bench: the closed enumeration of loop traversal orders.

package bench

import "fmt"

// Order selects which of the three multiply-loop index roles — i (row),
// j (column), k (contraction) — occupies each nesting position. The name
// reads (outer, middle, inner): KIJ runs k outermost, then i, then j inner.
//
// Exactly one role occupies each position; the six constants below are the
// whole universe and order selection happens before the hot loop starts.
type Order int

const (
	// IJK - rows outer, columns middle, contraction inner (the textbook nest).
	IJK Order = iota

	// IKJ - contraction middle; inner loop streams a row of B and a row of C.
	IKJ

	// JIK - columns outer; the inner dot product is unchanged from IJK.
	JIK

	// JKI - inner loop walks columns of A and C (cache-hostile on row-major).
	JKI

	// KIJ - contraction outer, rows middle; inner loop streams rows of B and C.
	KIJ

	// KJI - fully reversed; inner loop walks columns of A and C.
	KJI

	numOrders // sentinel for table sizing; not a valid Order
)

// orderNames holds the canonical lowercase names, indexed by Order.
var orderNames = [numOrders]string{"ijk", "ikj", "jik", "jki", "kij", "kji"}

// String returns the canonical three-letter name ("ijk" ... "kji").
func (o Order) String() string {
	if !o.valid() {
		return fmt.Sprintf("Order(%d)", int(o))
	}

	return orderNames[o]
}

// valid reports whether o is one of the six known permutations.
func (o Order) valid() bool {
	return o >= IJK && o < numOrders
}

// ParseOrder resolves a three-letter order name to its Order value.
// Any name outside the known six yields ErrUnknownOrder wrapped with the
// offending name; callers must treat that as fatal for the whole run, never
// as a silent fallback.
//
// Complexity: O(1) over a six-entry scan.
func ParseOrder(name string) (Order, error) {
	var o Order
	for o = IJK; o < numOrders; o++ {
		if orderNames[o] == name {
			return o, nil
		}
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnknownOrder)
}

// Orders returns all six traversal orders in canonical (lexicographic by
// name) order. The slice is freshly allocated; callers may reorder it.
func Orders() []Order {
	return []Order{IJK, IKJ, JIK, JKI, KIJ, KJI}
}
