package proj_test

import (
	"testing"

	"github.com/katalvlaran/coneproj/cones"
	"github.com/katalvlaran/coneproj/matrix"
	"github.com/katalvlaran/coneproj/proj"
	"github.com/stretchr/testify/require"
)

// Central-difference defaults for closed-form projections. Cones whose
// projection runs an inner iterative solve (the exponential boundary case)
// need a larger step so the solver tolerance stays far below the quotient.
const (
	fdStep = 1e-6
	fdTol  = 1e-5
)

// numericJacobian estimates the Jacobian of the projection onto s at v by
// central differences with the given step. Valid only at points strictly
// inside one smooth piece of the projection map; callers choose such points.
func numericJacobian(t *testing.T, s cones.Set, v []float64, opts *proj.Options, step float64) *matrix.Dense {
	t.Helper()
	n := len(v)
	jac, err := matrix.NewDense(n, n)
	require.NoError(t, err)

	work := make([]float64, n)
	for j := 0; j < n; j++ {
		copy(work, v)
		work[j] = v[j] + step
		plus, err := proj.Project(s, work, opts)
		require.NoError(t, err)

		work[j] = v[j] - step
		minus, err := proj.Project(s, work, opts)
		require.NoError(t, err)

		for i := 0; i < n; i++ {
			require.NoError(t, jac.Set(i, j, (plus[i]-minus[i])/(2*step)))
		}
	}

	return jac
}

// assertMatrixNear asserts entrywise agreement of two matrices within tol.
func assertMatrixNear(t *testing.T, want, got matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "row count")
	require.Equal(t, want.Cols(), got.Cols(), "col count")
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			w, err := want.At(i, j)
			require.NoError(t, err)
			g, err := got.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, w, g, tol, "entry (%d,%d)", i, j)
		}
	}
}

// assertGradientMatchesFD cross-checks the analytic Jacobian against the
// central-difference estimate at v.
func assertGradientMatchesFD(t *testing.T, s cones.Set, v []float64, opts *proj.Options, step, tol float64) {
	t.Helper()
	jac, err := proj.Gradient(s, v, opts)
	require.NoError(t, err)
	assertMatrixNear(t, numericJacobian(t, s, v, opts, step), jac, tol)
}

// assertVecNear asserts elementwise agreement of two vectors within tol.
func assertVecNear(t *testing.T, want, got []float64, tol float64) {
	t.Helper()
	require.Equal(t, len(want), len(got), "length")
	for i := range want {
		require.InDelta(t, want[i], got[i], tol, "element %d", i)
	}
}
