package proj

import (
	"github.com/katalvlaran/coneproj/cones"
	"github.com/katalvlaran/coneproj/matrix"
)

// Gradient returns the Jacobian J of the projection map onto s, evaluated
// at v: J[i][j] = ∂Project(v)[i] / ∂v[j].
//
// The projection map is piecewise smooth. J is the derivative of whichever
// piece v falls in — the same case split, thresholds and tolerances as
// Project — and is discontinuous at piece boundaries; callers must not
// average across them. At the kinks of the scalar and orthant maps the
// subgradient midpoint convention applies (entry 0.5 at vᵢ = 0).
//
// The result is a square Dense of order len(v). Errors are those of
// Project; no unsupported combination ever degrades to a silent zero or
// identity matrix.
func Gradient(s cones.Set, v []float64, opts *Options) (*matrix.Dense, error) {
	o, err := opts.resolve()
	if err != nil {
		return nil, err
	}
	if err = checkSet(s, v); err != nil {
		return nil, err
	}

	switch c := s.(type) {
	case cones.Zeros:
		return matrix.NewDense(len(v), len(v))

	case cones.Reals:
		return matrix.Identity(len(v))

	case cones.Nonnegatives:
		return diagDense(v, func(x float64) float64 { return (sign(x) + 1) / 2 })

	case cones.Nonpositives:
		return diagDense(v, func(x float64) float64 { return (1 - sign(x)) / 2 })

	case cones.LessThan:
		if v[0] <= c.Upper {
			return matrix.Identity(1)
		}

		return matrix.NewDense(1, 1)

	case cones.GreaterThan:
		if v[0] >= c.Lower {
			return matrix.Identity(1)
		}

		return matrix.NewDense(1, 1)

	case cones.EqualTo:
		return matrix.NewDense(1, 1)

	case cones.SecondOrderCone:
		return gradSOC(v, o.Norm)

	case cones.PSDTriangle:
		return gradPSD(v, c.Side)

	case cones.Exponential:
		return gradExp(v)

	case cones.DualExponential:
		return gradExpDual(v)

	default:
		return nil, ErrUnknownSet
	}
}

// sign returns -1, 0 or +1. The zero case carries the subgradient midpoint
// convention through (sign(0)+1)/2 = 0.5.
func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// diagDense builds diag(f(v₀), ..., f(vₙ₋₁)).
func diagDense(v []float64, f func(float64) float64) (*matrix.Dense, error) {
	n := len(v)
	data := make([]float64, n*n)
	for i, x := range v {
		data[i*n+i] = f(x)
	}

	return matrix.NewDenseFromData(n, n, data)
}
