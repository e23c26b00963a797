package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matbench/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDense_NegativeSize verifies that a negative size is rejected with
// ErrNegativeSize.
func TestNewDense_NegativeSize(t *testing.T) {
	_, err := matrix.NewDense(-1)
	assert.ErrorIs(t, err, matrix.ErrNegativeSize, "n=-1 must error")
}

// TestNewDense_ZeroSize verifies that n=0 is a legal empty matrix.
func TestNewDense_ZeroSize(t *testing.T) {
	m, err := matrix.NewDense(0)
	require.NoError(t, err, "n=0 must be legal")
	assert.Equal(t, 0, m.Size())
	assert.Empty(t, m.Data(), "zero-size matrix holds no elements")
}

// TestDense_AtSet verifies bounds-checked element access and row-major
// placement in the flat backing slice.
func TestDense_AtSet(t *testing.T) {
	m, err := matrix.NewDense(3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 42))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)

	// Row-major: (1,2) lands at flat index 1*3+2.
	assert.Equal(t, int64(42), m.Data()[5], "storage must be row-major")

	// Out-of-range indices error, never panic.
	_, err = m.At(3, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	err = m.Set(-1, 0, 1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestDense_ZeroReusesStorage verifies that Zero clears every element in
// place without swapping out the backing slice.
func TestDense_ZeroReusesStorage(t *testing.T) {
	m, err := matrix.NewDense(4)
	require.NoError(t, err)
	m.FillRand(matrix.NewRand(7))

	before := m.Data()
	m.Zero()
	after := m.Data()

	require.Len(t, after, 16)
	assert.Same(t, &before[0], &after[0], "Zero must reuse the same storage")
	for i, v := range after {
		assert.Zerof(t, v, "element %d not cleared", i)
	}
}

// TestDense_Clone verifies deep copy: mutating the clone leaves the original
// untouched.
func TestDense_Clone(t *testing.T) {
	m, err := matrix.NewDense(2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 9))

	cp := m.Clone()
	require.NoError(t, cp.Set(0, 1, -1))

	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(9), v, "original must not see clone mutations")
}

// TestDense_String spot-checks the debug rendering.
func TestDense_String(t *testing.T) {
	m, err := matrix.NewDense(2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1))
	require.NoError(t, m.Set(1, 1, 2))

	assert.Equal(t, "[1, 0]\n[0, 2]\n", m.String())
}
