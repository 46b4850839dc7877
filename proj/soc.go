package proj

import (
	"math"

	"github.com/katalvlaran/coneproj/matrix"
)

// Second-order (Lorentz) cone operators over v = (t, x) with the epigraph
// test ‖x‖_p ≤ t. Three regimes, tested in order:
//
//	(1) ‖x‖_p ≤  t — v already in the cone: identity.
//	(2) ‖x‖_p ≤ -t — v in the negative polar cone: projects to the origin.
//	(3) otherwise   — the closest boundary point, a positive multiple of
//	    (1, x/‖x‖_p). The degenerate x = 0 never reaches (3): a zero norm
//	    is always caught by (1) or (2).

// pnorm computes ‖x‖_p for p ≥ 1, with dedicated branches for the three
// norms that dominate in practice (p = 1, 2, +Inf).
func pnorm(x []float64, p float64) float64 {
	switch {
	case p == 2:
		var ss float64
		for _, xi := range x {
			ss += xi * xi
		}

		return math.Sqrt(ss)
	case p == 1:
		var s float64
		for _, xi := range x {
			s += math.Abs(xi)
		}

		return s
	case math.IsInf(p, 1):
		var m float64
		for _, xi := range x {
			m = math.Max(m, math.Abs(xi))
		}

		return m
	default:
		var s float64
		for _, xi := range x {
			s += math.Pow(math.Abs(xi), p)
		}

		return math.Pow(s, 1/p)
	}
}

func projSOC(v []float64, p float64) ([]float64, error) {
	if len(v) < 1 {
		return nil, ErrBadCone
	}
	t, x := v[0], v[1:]
	norm := pnorm(x, p)

	switch {
	case norm <= t:
		out := make([]float64, len(v))
		copy(out, v)

		return out, nil
	case norm <= -t:
		return make([]float64, len(v)), nil
	}

	// Closest boundary point: ((norm+t)/2)·(1, x/norm). norm > 0 here.
	scale := (norm + t) / 2
	out := make([]float64, len(v))
	out[0] = scale
	for i, xi := range x {
		out[i+1] = scale * xi / norm
	}

	return out, nil
}

func gradSOC(v []float64, p float64) (*matrix.Dense, error) {
	if len(v) < 1 {
		return nil, ErrBadCone
	}
	n := len(v)
	t, x := v[0], v[1:]
	norm := pnorm(x, p)

	switch {
	case norm <= t:
		return matrix.Identity(n)
	case norm <= -t:
		return matrix.NewDense(n, n)
	}

	// Boundary-crossing regime. The Jacobian of the boundary map is the
	// symmetric block matrix
	//
	//	(1/(2‖x‖)) · [[‖x‖, xᵀ], [x, (‖x‖+t)·I − (t/‖x‖²)·x·xᵀ]]
	//
	// with ‖x‖ = pnorm(x, p) matching the projection's norm choice.
	data := make([]float64, n*n)
	inv := 1 / (2 * norm)
	data[0] = 0.5 // ‖x‖/(2‖x‖)
	for i, xi := range x {
		data[i+1] = xi * inv     // top row: xᵀ/(2‖x‖)
		data[(i+1)*n] = xi * inv // left column: x/(2‖x‖)
	}
	for i, xi := range x {
		for j, xj := range x {
			val := -t * xi * xj / (norm * norm)
			if i == j {
				val += norm + t
			}
			data[(i+1)*n+(j+1)] = val * inv
		}
	}

	return matrix.NewDenseFromData(n, n, data)
}
