package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matbench/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestChecksum_SmallMatrix verifies the checksum equals the full element sum
// when n² <= ChecksumMax.
func TestChecksum_SmallMatrix(t *testing.T) {
	m, err := matrix.NewDense(3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.NoError(t, m.Set(i, j, int64(i*3+j)))
		}
	}

	// 0+1+...+8 = 36
	assert.Equal(t, int64(36), m.Checksum())
}

// TestChecksum_ZeroSize verifies the n=0 boundary: sum of zero elements is 0.
func TestChecksum_ZeroSize(t *testing.T) {
	m, err := matrix.NewDense(0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), m.Checksum())
}

// TestChecksum_Truncation verifies that for n² > ChecksumMax only the first
// ChecksumMax elements in storage order contribute: two matrices differing
// only beyond flat index ChecksumMax must checksum identically.
func TestChecksum_Truncation(t *testing.T) {
	const n = 101 // n² = 10201 > ChecksumMax
	a, err := matrix.NewDense(n)
	require.NoError(t, err)
	a.FillRand(matrix.NewRand(5))

	b := a.Clone()
	for i := matrix.ChecksumMax; i < n*n; i++ {
		b.Data()[i] += 1000
	}

	assert.Equal(t, a.Checksum(), b.Checksum(),
		"elements beyond index %d must not affect the checksum", matrix.ChecksumMax)

	// And a difference inside the prefix must be visible.
	c := a.Clone()
	c.Data()[matrix.ChecksumMax-1]++
	assert.Equal(t, a.Checksum()+1, c.Checksum())
}
