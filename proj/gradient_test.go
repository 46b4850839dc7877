package proj_test

import (
	"testing"

	"github.com/katalvlaran/coneproj/cones"
	"github.com/katalvlaran/coneproj/matrix"
	"github.com/katalvlaran/coneproj/proj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jacData(t *testing.T, s cones.Set, v []float64) []float64 {
	t.Helper()
	jac, err := proj.Gradient(s, v, nil)
	require.NoError(t, err)

	out := make([]float64, 0, jac.Rows()*jac.Cols())
	for i := 0; i < jac.Rows(); i++ {
		row, err := jac.Row(i)
		require.NoError(t, err)
		out = append(out, row...)
	}

	return out
}

// TestGradient_ZerosAndReals checks the two trivial Jacobians.
func TestGradient_ZerosAndReals(t *testing.T) {
	v := []float64{1, -2}

	assert.Equal(t, []float64{0, 0, 0, 0}, jacData(t, cones.Zeros{N: 2}, v))
	assert.Equal(t, []float64{1, 0, 0, 1}, jacData(t, cones.Reals{N: 2}, v))
}

// TestGradient_Orthants verifies the diagonal step Jacobians, including the
// subgradient midpoint 0.5 at the kink vᵢ = 0.
func TestGradient_Orthants(t *testing.T) {
	v := []float64{2, 0, -3}

	assert.Equal(t, []float64{
		1, 0, 0,
		0, 0.5, 0,
		0, 0, 0,
	}, jacData(t, cones.Nonnegatives{N: 3}, v))

	assert.Equal(t, []float64{
		0, 0, 0,
		0, 0.5, 0,
		0, 0, 1,
	}, jacData(t, cones.Nonpositives{N: 3}, v))
}

// TestGradient_ScalarSets verifies the 1×1 Jacobians of the scalar sets on
// both sides of their thresholds.
func TestGradient_ScalarSets(t *testing.T) {
	assert.Equal(t, []float64{1}, jacData(t, cones.LessThan{Upper: 2}, []float64{1}))
	assert.Equal(t, []float64{0}, jacData(t, cones.LessThan{Upper: 2}, []float64{3}))
	assert.Equal(t, []float64{1}, jacData(t, cones.LessThan{Upper: 2}, []float64{2}), "boundary is feasible")

	assert.Equal(t, []float64{1}, jacData(t, cones.GreaterThan{Lower: 0}, []float64{4}))
	assert.Equal(t, []float64{0}, jacData(t, cones.GreaterThan{Lower: 0}, []float64{-4}))

	assert.Equal(t, []float64{0}, jacData(t, cones.EqualTo{Value: 5}, []float64{5}), "singleton has zero derivative")
}

// TestGradient_MatchesFiniteDifferences_Orthants cross-checks the analytic
// Jacobians against central differences at smooth points, across dimensions.
func TestGradient_MatchesFiniteDifferences_Orthants(t *testing.T) {
	cases := []struct {
		set cones.Set
		v   []float64
	}{
		{cones.Nonnegatives{N: 1}, []float64{0.7}},
		{cones.Nonnegatives{N: 3}, []float64{-1.5, 0.3, 2}},
		{cones.Nonnegatives{N: 10}, []float64{1, -1, 2, -2, 3, -3, 4, -4, 5, -5}},
		{cones.Nonpositives{N: 3}, []float64{-1.5, 0.3, 2}},
		{cones.LessThan{Upper: 1}, []float64{3}},
		{cones.GreaterThan{Lower: -1}, []float64{2}},
		{cones.EqualTo{Value: 0}, []float64{2}},
		{cones.Reals{N: 4}, []float64{1, 2, 3, 4}},
		{cones.Zeros{N: 3}, []float64{1, -2, 3}},
	}
	for _, tc := range cases {
		assertGradientMatchesFD(t, tc.set, tc.v, nil, fdStep, fdTol)
	}
}

// TestGradient_ZeroDimensional verifies the empty Jacobians.
func TestGradient_ZeroDimensional(t *testing.T) {
	for _, s := range []cones.Set{cones.Zeros{N: 0}, cones.PSDTriangle{Side: 0}} {
		jac, err := proj.Gradient(s, []float64{}, nil)
		require.NoError(t, err, "%v", s)
		assert.Equal(t, 0, jac.Rows(), "%v", s)
		assert.Equal(t, 0, jac.Cols(), "%v", s)
	}
}

// TestGradient_SquareShape verifies that every Jacobian is square of order
// len(v).
func TestGradient_SquareShape(t *testing.T) {
	cases := []struct {
		set cones.Set
		v   []float64
	}{
		{cones.Nonnegatives{N: 5}, []float64{1, -1, 0, 2, -2}},
		{cones.SecondOrderCone{N: 4}, []float64{0.1, 1, 2, 3}},
		{cones.PSDTriangle{Side: 2}, []float64{1, 3, -1}},
		{cones.Exponential{}, []float64{1, 1, 0}},
	}
	for _, tc := range cases {
		jac, err := proj.Gradient(tc.set, tc.v, nil)
		require.NoError(t, err, "%v", tc.set)
		assert.Equal(t, len(tc.v), jac.Rows(), "%v", tc.set)
		assert.Equal(t, len(tc.v), jac.Cols(), "%v", tc.set)
	}
}

// TestGradient_ReturnsDense documents that the per-cone Jacobian is a plain
// Dense usable with every matrix kernel.
func TestGradient_ReturnsDense(t *testing.T) {
	jac, err := proj.Gradient(cones.Nonnegatives{N: 2}, []float64{1, -1}, nil)
	require.NoError(t, err)

	y, err := matrix.MatVec(jac, []float64{3, 4})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 0}, y)
}
