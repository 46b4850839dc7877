package proj_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/coneproj/cones"
	"github.com/katalvlaran/coneproj/matrix"
	"github.com/katalvlaran/coneproj/proj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestProjectPSD_PositiveDefiniteIsFixed verifies that a PD matrix projects
// to itself and has the identity Jacobian.
func TestProjectPSD_PositiveDefiniteIsFixed(t *testing.T) {
	// [[2,1],[1,2]]: eigenvalues 1 and 3.
	v := []float64{2, 1, 2}
	psd := cones.PSDTriangle{Side: 2}

	p, err := proj.Project(psd, v, nil)
	require.NoError(t, err)
	assertVecNear(t, v, p, 1e-10)

	assertVecNear(t, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}, jacData(t, psd, v), 1e-12)
}

// TestProjectPSD_NegativeDefiniteCollapses verifies that an ND matrix
// projects to zero with a zero Jacobian.
func TestProjectPSD_NegativeDefiniteCollapses(t *testing.T) {
	// [[-2,1],[1,-2]]: eigenvalues -3 and -1.
	v := []float64{-2, 1, -2}
	psd := cones.PSDTriangle{Side: 2}

	p, err := proj.Project(psd, v, nil)
	require.NoError(t, err)
	assertVecNear(t, []float64{0, 0, 0}, p, 1e-10)

	assertVecNear(t, make([]float64, 9), jacData(t, psd, v), 1e-10)
}

// TestProjectPSD_IndefiniteKnownResult pins the projection of the indefinite
// [[0,1],[1,0]] (eigenvalues ±1): clamping the negative eigenvalue leaves
// 0.5·[[1,1],[1,1]].
func TestProjectPSD_IndefiniteKnownResult(t *testing.T) {
	v := []float64{0, 1, 0}

	p, err := proj.Project(cones.PSDTriangle{Side: 2}, v, nil)
	require.NoError(t, err)
	assertVecNear(t, []float64{0.5, 0.5, 0.5}, p, 1e-10)
}

// TestProjectPSD_OutputIsPSD verifies that projected eigenvalues are
// non-negative for an indefinite 3×3 input.
func TestProjectPSD_OutputIsPSD(t *testing.T) {
	v := []float64{1, 2, -1, 0.5, 1, -2}

	p, err := proj.Project(cones.PSDTriangle{Side: 3}, v, nil)
	require.NoError(t, err)

	m, err := matrix.UnpackSym(p, 3)
	require.NoError(t, err)
	vals, _, err := matrix.EigenSym(m, 1e-12, 10000)
	require.NoError(t, err)
	for i, l := range vals {
		assert.GreaterOrEqual(t, l, -1e-10, "eigenvalue %d", i)
	}
}

// TestGradientPSD_IndefiniteDirectionalDerivatives cross-checks the analytic
// Jacobian of the indefinite 2×2 case against central-difference directional
// derivatives along 50 fixed-seed random directions.
func TestGradientPSD_IndefiniteDirectionalDerivatives(t *testing.T) {
	psd := cones.PSDTriangle{Side: 2}
	v := []float64{0, 1, 0} // eigenvalues ±1, far from the bucket threshold

	jac, err := proj.Gradient(psd, v, nil)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	work := make([]float64, len(v))
	for trial := 0; trial < 50; trial++ {
		d := []float64{rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()}

		for i := range v {
			work[i] = v[i] + fdStep*d[i]
		}
		plus, err := proj.Project(psd, work, nil)
		require.NoError(t, err)
		for i := range v {
			work[i] = v[i] - fdStep*d[i]
		}
		minus, err := proj.Project(psd, work, nil)
		require.NoError(t, err)

		want := make([]float64, len(v))
		for i := range want {
			want[i] = (plus[i] - minus[i]) / (2 * fdStep)
		}
		got, err := matrix.MatVec(jac, d)
		require.NoError(t, err)
		assertVecNear(t, want, got, fdTol)
	}
}

// TestGradientPSD_MatchesFiniteDifferences cross-checks full Jacobians on
// indefinite 2×2 and 3×3 inputs with well-separated spectra.
func TestGradientPSD_MatchesFiniteDifferences(t *testing.T) {
	cases := []struct {
		side int
		v    []float64
	}{
		{2, []float64{2, 1, 2}},   // positive definite: J = I
		{2, []float64{-2, 1, -2}}, // negative definite: J = 0
		{2, []float64{0, 1, 0}},
		{2, []float64{1, 2, -1}},
		{3, []float64{1, 2, -1, 0.5, 1, -2}},
	}
	for _, tc := range cases {
		assertGradientMatchesFD(t, cones.PSDTriangle{Side: tc.side}, tc.v, nil, fdStep, fdTol)
	}
}

// TestGradientPSD_KnownJacobian pins the analytic Jacobian of the indefinite
// [[0,1],[1,0]] against the hand-computed eigenbasis result. The packed
// Jacobian is deliberately asymmetric: the off-diagonal coordinate moves
// both mirror entries of the matrix at once.
func TestGradientPSD_KnownJacobian(t *testing.T) {
	assertVecNear(t, []float64{
		0.5, 0.5, 0,
		0.25, 0.5, 0.25,
		0, 0.5, 0.5,
	}, jacData(t, cones.PSDTriangle{Side: 2}, []float64{0, 1, 0}), 1e-10)
}

// TestPSD_LargerOrderRoundTrip runs projection and idempotence on a 5×5
// indefinite matrix, exercising the eigen solver beyond toy sizes.
func TestPSD_LargerOrderRoundTrip(t *testing.T) {
	side := 5
	n := matrix.SymPackedLen(side)
	rng := rand.New(rand.NewSource(7))
	v := make([]float64, n)
	for i := range v {
		v[i] = rng.NormFloat64()
	}

	psd := cones.PSDTriangle{Side: side}
	once, err := proj.Project(psd, v, nil)
	require.NoError(t, err)
	twice, err := proj.Project(psd, once, nil)
	require.NoError(t, err)
	assertVecNear(t, once, twice, 1e-8)
}
