package bench_test

import (
	"testing"

	"github.com/katalvlaran/matbench/bench"
	"github.com/katalvlaran/matbench/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runInputs builds A, B and a reusable C of size n from the seed-0 stream.
func runInputs(t *testing.T, n int) (*matrix.Dense, *matrix.Dense, *matrix.Dense) {
	t.Helper()
	a, b := seededInputs(t, n, 0)
	c, err := matrix.NewDense(n)
	require.NoError(t, err)

	return a, b, c
}

// TestRun_ZeroTrials verifies that Trials=0 is rejected with ErrZeroTrials
// before any kernel work, leaving C untouched.
func TestRun_ZeroTrials(t *testing.T) {
	a, b, c := runInputs(t, 8)
	require.NoError(t, c.Set(0, 0, 123)) // canary

	opts := bench.Options{Trials: 0, Seed: 0}
	_, err := bench.Run(bench.IJK, a, b, c, &opts)
	assert.ErrorIs(t, err, bench.ErrZeroTrials)

	v, err := c.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(123), v, "rejected run must not touch C")
}

// TestRun_TrialCountInvariantChecksum verifies that T=1 and T=5 on identical
// inputs report the same checksum (time may differ, the sum must not).
func TestRun_TrialCountInvariantChecksum(t *testing.T) {
	a, b, c := runInputs(t, 16)

	opts1 := bench.Options{Trials: 1, Seed: 0}
	res1, err := bench.Run(bench.IKJ, a, b, c, &opts1)
	require.NoError(t, err)

	opts5 := bench.Options{Trials: 5, Seed: 0}
	res5, err := bench.Run(bench.IKJ, a, b, c, &opts5)
	require.NoError(t, err)

	assert.Equal(t, res1.Sum, res5.Sum, "checksum must be trial-count invariant")
}

// TestRun_ZeroesBetweenTrials verifies there is no accumulation carry-over:
// a dirty C and a repeat run both land on the single-product checksum.
func TestRun_ZeroesBetweenTrials(t *testing.T) {
	a, b, c := runInputs(t, 12)

	opts := bench.DefaultOptions()
	first, err := bench.Run(bench.JKI, a, b, c, &opts)
	require.NoError(t, err)

	// C now holds the product; a second run must re-zero it per trial and
	// land on the identical checksum, not a doubled one.
	second, err := bench.Run(bench.JKI, a, b, c, &opts)
	require.NoError(t, err)
	assert.Equal(t, first.Sum, second.Sum, "trials must start from a zeroed C")
}

// TestRun_OrderInvarianceViaRunner verifies the six orders agree on the
// checksum when run through the full trial harness on shared inputs.
func TestRun_OrderInvarianceViaRunner(t *testing.T) {
	a, b, c := runInputs(t, 50)
	opts := bench.Options{Trials: 2, Seed: 0}

	var want int64
	for idx, o := range bench.Orders() {
		res, err := bench.Run(o, a, b, c, &opts)
		require.NoErrorf(t, err, "order %s", o)
		assert.GreaterOrEqual(t, res.TimeUS, 0.0)

		if idx == 0 {
			want = res.Sum
			continue
		}
		assert.Equalf(t, want, res.Sum, "order %s checksum diverged", o)
	}
}

// TestRun_NilOptionsMeansDefaults verifies nil opts behaves as
// DefaultOptions (5 trials) rather than erroring.
func TestRun_NilOptionsMeansDefaults(t *testing.T) {
	a, b, c := runInputs(t, 8)

	res, err := bench.Run(bench.KJI, a, b, c, nil)
	require.NoError(t, err)
	assert.Equal(t, c.Checksum(), res.Sum)
}

// TestRun_ZeroSize verifies N=0 through the runner: checksum 0 and a
// non-negative (possibly zero) average time for every order.
func TestRun_ZeroSize(t *testing.T) {
	a, b, c := runInputs(t, 0)
	opts := bench.Options{Trials: 3, Seed: 0}

	for _, o := range bench.Orders() {
		res, err := bench.Run(o, a, b, c, &opts)
		require.NoErrorf(t, err, "order %s", o)
		assert.Equal(t, int64(0), res.Sum)
		assert.GreaterOrEqual(t, res.TimeUS, 0.0)
	}
}
