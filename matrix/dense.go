// Package matrix: Dense is the concrete square matrix used by the benchmark.
// Elements live in a flat slice in row-major order for performance and cache
// friendliness; the benchmark's whole subject is how the six loop orders walk
// this one layout.

package matrix

import (
	"fmt"
	"strings"
)

// Dense is a square, row-major matrix of int64 values.
// n is the side length and data holds n*n elements in row-major order.
type Dense struct {
	n    int     // side length, n >= 0
	data []int64 // flat backing storage, length == n*n
}

// NewDense creates an n×n Dense matrix initialized to zeros.
// Stage 1 (Validate): reject n < 0 (n == 0 is a legal empty matrix).
// Stage 2 (Prepare): allocate the flat backing slice once; it is never
// reallocated afterwards — callers reuse it across trials via Zero.
// Complexity: O(n²) time and memory.
func NewDense(n int) (*Dense, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}

	return &Dense{n: n, data: make([]int64, n*n)}, nil
}

// Size returns the side length n.
// Complexity: O(1).
func (m *Dense) Size() int {
	return m.n
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.n {
		return 0, fmt.Errorf("Dense(%d,%d): %w", row, col, ErrOutOfRange)
	}
	if col < 0 || col >= m.n {
		return 0, fmt.Errorf("Dense(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return row*m.n + col, nil
}

// At retrieves the element at (row, col), bounds-checked.
// Complexity: O(1).
func (m *Dense) At(row, col int) (int64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col), bounds-checked.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v int64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Data returns the flat row-major backing slice.
// The kernels and the checksum iterate this slice directly: bounds-checked
// At/Set inside the hot loop would distort the very access pattern the
// benchmark measures. Callers must not resize the slice.
// Complexity: O(1).
func (m *Dense) Data() []int64 {
	return m.data
}

// Zero clears every element in place without reallocating.
// The trial runner calls this before each trial so the accumulating multiply
// starts from zeros while the storage (and its cache footprint) is reused.
// Complexity: O(n²).
func (m *Dense) Zero() {
	clear(m.data)
}

// Clone returns a deep copy of the matrix.
// Complexity: O(n²) time and memory.
func (m *Dense) Clone() *Dense {
	cp := make([]int64, len(m.data))
	copy(cp, m.data)

	return &Dense{n: m.n, data: cp}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(n²) for string construction.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.n; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", m.data[i*m.n+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
