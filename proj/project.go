package proj

import (
	"math"

	"github.com/katalvlaran/coneproj/cones"
)

// Project returns the closest point of the set s to v.
//
// The result always has the same length as v (scalar sets operate on
// 1-element slices); v itself is never mutated. A nil opts selects
// DefaultOptions; Options.Norm affects only the second-order cone.
//
// Errors:
//   - ErrBadCone            — negative dimension field, or a malformed
//     descriptor (e.g. SecondOrderCone with N = 0).
//   - ErrDimensionMismatch  — len(v) differs from s.Dim().
//   - ErrBadNorm            — Options.Norm < 1.
//   - ErrNoConvergence      — exponential-cone root search failed.
//   - ErrUnknownSet         — a Set outside the fixed catalog.
//
// Complexity: O(n) for pointwise cones, O(n) for the second-order cone,
// O(side³) per eigen-sweep for the PSD cone, O(log(1/tol)) residual
// evaluations for the exponential cone's hard case.
func Project(s cones.Set, v []float64, opts *Options) ([]float64, error) {
	o, err := opts.resolve()
	if err != nil {
		return nil, err
	}
	if err = checkSet(s, v); err != nil {
		return nil, err
	}

	switch c := s.(type) {
	case cones.Zeros:
		return make([]float64, len(v)), nil

	case cones.Reals:
		out := make([]float64, len(v))
		copy(out, v)

		return out, nil

	case cones.Nonnegatives:
		out := make([]float64, len(v))
		for i, x := range v {
			out[i] = math.Max(x, 0)
		}

		return out, nil

	case cones.Nonpositives:
		out := make([]float64, len(v))
		for i, x := range v {
			out[i] = math.Min(x, 0)
		}

		return out, nil

	case cones.LessThan:
		return []float64{math.Min(v[0], c.Upper)}, nil

	case cones.GreaterThan:
		return []float64{math.Max(v[0], c.Lower)}, nil

	case cones.EqualTo:
		return []float64{c.Value}, nil

	case cones.SecondOrderCone:
		return projSOC(v, o.Norm)

	case cones.PSDTriangle:
		return projPSD(v, c.Side)

	case cones.Exponential:
		return projExp(v)

	case cones.DualExponential:
		return projExpDual(v)

	default:
		return nil, ErrUnknownSet
	}
}
