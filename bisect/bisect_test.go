package bisect_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/coneproj/bisect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFindRoot_SqrtTwo locates √2 as the root of x²-2 on a finite bracket.
func TestFindRoot_SqrtTwo(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }

	root, err := bisect.FindRoot(f, 0, 2, nil)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, root, 1e-9)
}

// TestFindRoot_ExactEndpoint verifies that an exact zero at an endpoint is
// returned immediately.
func TestFindRoot_ExactEndpoint(t *testing.T) {
	f := func(x float64) float64 { return x - 1 }

	root, err := bisect.FindRoot(f, 1, 5, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, root)

	root, err = bisect.FindRoot(f, -5, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, root)
}

// TestFindRoot_ExpandsUpperBound checks geometric expansion of a +Inf upper
// endpoint: the root at 100 is far beyond the initial unit step.
func TestFindRoot_ExpandsUpperBound(t *testing.T) {
	f := func(x float64) float64 { return x - 100 }

	root, err := bisect.FindRoot(f, 0, math.Inf(1), nil)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, root, 1e-9)
}

// TestFindRoot_ExpandsLowerBound mirrors the expansion test on a -Inf lower
// endpoint.
func TestFindRoot_ExpandsLowerBound(t *testing.T) {
	f := func(x float64) float64 { return x + 100 }

	root, err := bisect.FindRoot(f, math.Inf(-1), 0, nil)
	require.NoError(t, err)
	assert.InDelta(t, -100.0, root, 1e-9)
}

// TestFindRoot_ExpansionBudget verifies that a root beyond the reachable
// expansion range fails with ErrNoSignChange rather than looping.
func TestFindRoot_ExpansionBudget(t *testing.T) {
	f := func(x float64) float64 { return x - 1e9 }
	opts := bisect.DefaultOptions()
	opts.MaxExpand = 3

	_, err := bisect.FindRoot(f, 0, math.Inf(1), &opts)
	assert.ErrorIs(t, err, bisect.ErrNoSignChange)
}

// TestFindRoot_NoSignChange verifies rejection of a bracket that never
// crosses zero.
func TestFindRoot_NoSignChange(t *testing.T) {
	f := func(x float64) float64 { return x*x + 1 }

	_, err := bisect.FindRoot(f, -1, 1, nil)
	assert.ErrorIs(t, err, bisect.ErrNoSignChange)
}

// TestFindRoot_InvalidBracket covers the malformed-bracket cases: reversed,
// NaN, and doubly infinite.
func TestFindRoot_InvalidBracket(t *testing.T) {
	f := func(x float64) float64 { return x }

	_, err := bisect.FindRoot(f, 2, 1, nil)
	assert.ErrorIs(t, err, bisect.ErrInvalidBracket, "lo >= hi")

	_, err = bisect.FindRoot(f, math.NaN(), 1, nil)
	assert.ErrorIs(t, err, bisect.ErrInvalidBracket, "NaN endpoint")

	_, err = bisect.FindRoot(f, math.Inf(-1), math.Inf(1), nil)
	assert.ErrorIs(t, err, bisect.ErrInvalidBracket, "both endpoints infinite")
}

// TestFindRoot_NilFunction verifies the nil-function guard.
func TestFindRoot_NilFunction(t *testing.T) {
	_, err := bisect.FindRoot(nil, 0, 1, nil)
	assert.ErrorIs(t, err, bisect.ErrNilFunction)
}

// TestFindRoot_IterationCap verifies that an unreachable tolerance under a
// tiny iteration budget fails with ErrMaxIterations.
func TestFindRoot_IterationCap(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }
	opts := bisect.Options{Tol: 0, MaxIter: 3, MaxExpand: 10}

	_, err := bisect.FindRoot(f, 0, 2, &opts)
	assert.ErrorIs(t, err, bisect.ErrMaxIterations)
}

// TestFindRoot_SteepTranscendental exercises the solver on the kind of
// exponential residual the projection code feeds it.
func TestFindRoot_SteepTranscendental(t *testing.T) {
	f := func(x float64) float64 { return math.Exp(x) - 5 }

	root, err := bisect.FindRoot(f, 0, math.Inf(1), nil)
	require.NoError(t, err)
	assert.InDelta(t, math.Log(5), root, 1e-9)
}
