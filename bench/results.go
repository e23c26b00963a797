// Package bench: the (size, order) → Result table behind the reports.

package bench

import "fmt"

// Key identifies one evaluated (size, order) combination.
type Key struct {
	Size  int
	Order Order
}

// Table accumulates one Result per (size, order) pair, built by repeated
// single-key insertion as the sweep evaluates combinations. It remembers the
// order in which sizes and orders were first seen, so the rendered grids lay
// out rows and columns exactly as the run proceeded.
//
// Table is not safe for concurrent use; the whole benchmark is sequential.
type Table struct {
	entries map[Key]Result
	sizes   []int   // row order: sizes by first insertion
	orders  []Order // column order: orders by first insertion
}

// NewTable returns an empty results table.
func NewTable() *Table {
	return &Table{entries: make(map[Key]Result)}
}

// Add inserts the result for key k. Inserting under an existing key is a
// driver bug, not data: it fails with ErrDuplicateResult wrapped with the
// offending key, leaving the table unchanged.
//
// Complexity: O(rows + cols) worst case for first-seen tracking.
func (t *Table) Add(k Key, r Result) error {
	if _, dup := t.entries[k]; dup {
		return fmt.Errorf("n=%d order=%s: %w", k.Size, k.Order, ErrDuplicateResult)
	}
	t.entries[k] = r

	if !containsInt(t.sizes, k.Size) {
		t.sizes = append(t.sizes, k.Size)
	}
	if !containsOrder(t.orders, k.Order) {
		t.orders = append(t.orders, k.Order)
	}

	return nil
}

// Get looks up the result for key k.
func (t *Table) Get(k Key) (Result, bool) {
	r, ok := t.entries[k]

	return r, ok
}

// Len returns the number of stored (size, order) entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Sizes returns the sizes in first-insertion order (a copy).
func (t *Table) Sizes() []int {
	out := make([]int, len(t.sizes))
	copy(out, t.sizes)

	return out
}

// Orders returns the orders in first-insertion order (a copy).
func (t *Table) Orders() []Order {
	out := make([]Order, len(t.orders))
	copy(out, t.orders)

	return out
}

// containsInt reports whether xs contains x. The lists here hold at most a
// handful of entries, so a scan beats map bookkeeping.
func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}

	return false
}

// containsOrder reports whether xs contains x.
func containsOrder(xs []Order, x Order) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}

	return false
}
