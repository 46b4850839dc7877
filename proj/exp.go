package proj

import (
	"fmt"
	"math"

	"github.com/katalvlaran/coneproj/bisect"
	"github.com/katalvlaran/coneproj/matrix"
)

// Exponential-cone operators over v = (x, y, z) ∈ ℝ³.
//
// Primal cone: cl{ y·e^(x/y) ≤ z, y > 0 }. Dual cone (up to the sign
// convention used here): cl{ -x·e^(y/x) ≤ e·z, x < 0 }.
//
// The projection follows the standard four-case analysis:
//
//	(i)   v in the cone                      → v itself.
//	(ii)  -v in the dual cone                → the origin (polar case).
//	(iii) x ≤ 0 and y ≤ 0                    → (x, 0, max(z, 0)).
//	(iv)  otherwise                          → the unique boundary point,
//	      found by a one-dimensional root search in the parameter ξ.
//
// Membership tests use the absolute tolerance ExpConeTol. The case order is
// part of the contract: on overlap the earlier case wins, and the gradient
// resolves the same branch as the projection.

// inExpCone reports membership of v in the primal exponential cone within
// ExpConeTol. The first disjunct is the closure ray {x ≤ 0, y = 0, z ≥ 0}.
func inExpCone(v []float64) bool {
	if v[0] <= ExpConeTol && math.Abs(v[1]) <= ExpConeTol && v[2] >= -ExpConeTol {
		return true
	}

	return v[1] > 0 && v[1]*math.Exp(v[0]/v[1]) <= v[2]+ExpConeTol
}

// inExpDualCone reports membership of u in the dual exponential cone within
// ExpConeTol. The first disjunct is the closure face {x = 0, y ≥ 0, z ≥ 0}.
func inExpDualCone(u []float64) bool {
	if math.Abs(u[0]) <= ExpConeTol && u[1] >= -ExpConeTol && u[2] >= -ExpConeTol {
		return true
	}

	return u[0] < 0 && -u[0]*math.Exp(u[1]/u[0]) <= math.E*u[2]+ExpConeTol
}

// expResidual is the scalar optimality condition of the boundary case (iv).
// Its unique root ξ* parameterizes the projection of (r, s, t) onto the
// cone's boundary. φ(ξ) = ξ² - ξ + 1 is strictly positive everywhere.
func expResidual(r, s, t float64) func(float64) float64 {
	return func(xi float64) float64 {
		phi := xi*xi - xi + 1

		return (((xi-1)*r+s)*math.Exp(xi) - (r-xi*s)*math.Exp(-xi)) / phi - t
	}
}

// expBracket returns the root bracket (lo, hi) for ξ*. Either side may be
// infinite; bisect.FindRoot expands infinite ends geometrically.
func expBracket(r, s float64) (lo, hi float64) {
	lo, hi = math.Inf(-1), math.Inf(1)
	if r > 0 {
		lo = 1 - s/r
	}
	if s > 0 {
		hi = r / s
	}

	return lo, hi
}

// expBoundaryPoint maps the root ξ back to the boundary point
// α·(ξ, 1, e^ξ) with α = ((ξ-1)r + s)/φ(ξ).
func expBoundaryPoint(xi, r, s float64) []float64 {
	phi := xi*xi - xi + 1
	alpha := ((xi-1)*r + s) / phi

	return []float64{alpha * xi, alpha, alpha * math.Exp(xi)}
}

func projExp(v []float64) ([]float64, error) {
	switch {
	case inExpCone(v):
		out := make([]float64, 3)
		copy(out, v)

		return out, nil

	case inExpDualCone([]float64{-v[0], -v[1], -v[2]}):
		return make([]float64, 3), nil

	case v[0] <= 0 && v[1] <= 0:
		return []float64{v[0], 0, math.Max(v[2], 0)}, nil
	}

	r, s, t := v[0], v[1], v[2]
	lo, hi := expBracket(r, s)
	xi, err := bisect.FindRoot(expResidual(r, s, t), lo, hi, nil)
	if err != nil {
		return nil, fmt.Errorf("proj: exponential-cone root search: %w", ErrNoConvergence)
	}

	return expBoundaryPoint(xi, r, s), nil
}

// projExpDual projects onto the dual cone via the Moreau decomposition
// v = P_K(v) + P_{-K*}(v), i.e. P_{K*}(v) = v + P_K(-v).
func projExpDual(v []float64) ([]float64, error) {
	p, err := projExp([]float64{-v[0], -v[1], -v[2]})
	if err != nil {
		return nil, err
	}

	return []float64{v[0] + p[0], v[1] + p[1], v[2] + p[2]}, nil
}

func gradExp(v []float64) (*matrix.Dense, error) {
	switch {
	case inExpCone(v):
		return matrix.Identity(3)

	case inExpDualCone([]float64{-v[0], -v[1], -v[2]}):
		return matrix.NewDense(3, 3)

	case v[0] <= 0 && v[1] <= 0:
		// (x, y, z) ↦ (x, 0, max(z, 0)): diagonal with the midpoint
		// convention at z = 0.
		return matrix.NewDenseFromData(3, 3, []float64{
			1, 0, 0,
			0, 0, 0,
			0, 0, (sign(v[2]) + 1) / 2,
		})
	}

	r, s, t := v[0], v[1], v[2]
	lo, hi := expBracket(r, s)
	xi, err := bisect.FindRoot(expResidual(r, s, t), lo, hi, nil)
	if err != nil {
		return nil, fmt.Errorf("proj: exponential-cone root search: %w", ErrNoConvergence)
	}

	return gradExpBoundary(xi, r, s), nil
}

// gradExpBoundary differentiates the boundary map implicitly. With
// h(ξ; r, s, t) the residual and p(ξ; r, s) the boundary point, the chain
// rule gives
//
//	∂p/∂v_j = (∂p/∂v_j)|ξ + (∂p/∂ξ)·(∂ξ/∂v_j),  ∂ξ/∂v_j = -h_{v_j}/h_ξ.
func gradExpBoundary(xi, r, s float64) *matrix.Dense {
	var (
		phi  = xi*xi - xi + 1
		dphi = 2*xi - 1
		ep   = math.Exp(xi)
		em   = math.Exp(-xi)

		// Numerator N(ξ) of the residual and its ξ-derivative.
		num  = ((xi-1)*r+s)*ep - (r-xi*s)*em
		dnum = (xi*r+s)*ep + (r+(1-xi)*s)*em
	)

	// Partials of h. h = N/φ - t.
	hXi := (dnum*phi - num*dphi) / (phi * phi)
	hR := ((xi-1)*ep - em) / phi
	hS := (ep + xi*em) / phi
	// h_t = -1.
	dXi := []float64{-hR / hXi, -hS / hXi, 1 / hXi}

	// α and its partials. α = ((ξ-1)r + s)/φ.
	alpha := ((xi-1)*r + s) / phi
	dAlphaXi := (r*phi - ((xi-1)*r+s)*dphi) / (phi * phi)

	// ∂p/∂ξ at fixed (r, s): p = α·(ξ, 1, e^ξ).
	dPdXi := []float64{dAlphaXi*xi + alpha, dAlphaXi, (dAlphaXi + alpha) * ep}

	// ∂p/∂r and ∂p/∂s at fixed ξ; ∂p/∂t at fixed ξ is zero.
	dPdR := []float64{xi * (xi - 1) / phi, (xi - 1) / phi, (xi - 1) * ep / phi}
	dPdS := []float64{xi / phi, 1 / phi, ep / phi}

	data := make([]float64, 9)
	for i := 0; i < 3; i++ {
		data[i*3+0] = dPdR[i] + dPdXi[i]*dXi[0]
		data[i*3+1] = dPdS[i] + dPdXi[i]*dXi[1]
		data[i*3+2] = dPdXi[i] * dXi[2]
	}
	out, _ := matrix.NewDenseFromData(3, 3, data) // fixed 3×3 shape; cannot fail

	return out
}

// gradExpDual differentiates the Moreau identity: J_{K*}(v) = I - J_K(-v).
func gradExpDual(v []float64) (*matrix.Dense, error) {
	j, err := gradExp([]float64{-v[0], -v[1], -v[2]})
	if err != nil {
		return nil, err
	}

	data := make([]float64, 9)
	for i := 0; i < 3; i++ {
		row, err := j.Row(i)
		if err != nil {
			return nil, err
		}
		for k, val := range row {
			data[i*3+k] = -val
		}
		data[i*3+i]++
	}

	return matrix.NewDenseFromData(3, 3, data)
}
