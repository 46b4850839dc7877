// Package proj computes projections onto the cones of the cones package
// and the Jacobians of those projection maps.
//
// 🚀 What does proj offer?
//
//	Two single-cone operators and their product-cone composers:
//	  • Project(set, v, opts)  — the closest point of set to v
//	  • Gradient(set, v, opts) — J with J[i][j] = ∂Project(v)[i]/∂v[j]
//	  • ProjectProduct / GradientProduct — slice-wise application over a
//	    Cartesian product of cones, with block-diagonal gradient structure
//	    kept explicit (off-block entries are structural zeros, never stored)
//
// ✨ Semantics worth knowing:
//
//   - The projection map is piecewise smooth; Gradient returns the
//     derivative of whichever piece v falls in and is discontinuous at
//     piece boundaries. At kinks of the scalar/orthant maps the subgradient
//     midpoint convention applies (0.5 at vᵢ = 0).
//   - The second-order cone accepts a norm order p ≥ 1 (Options.Norm,
//     default 2) defining the epigraph test ‖x‖_p ≤ t.
//   - The PSD-cone projection clamps eigenvalues at exactly 0, while its
//     gradient buckets eigenvalues below PSDNegEigTol (1e-4) as negative —
//     a deliberate stability choice that can disagree with finite
//     differences on near-singular inputs.
//   - Exponential-cone membership uses the absolute tolerance ExpConeTol
//     (1e-8); the hard case solves a scalar optimality equation via bisect,
//     and its gradient comes from implicit differentiation of the same
//     equation. The dual cone is served exclusively through the Moreau
//     identity Project(v, dual) = v + Project(-v, primal).
//
// All operators are pure functions: no shared state, no I/O, safe for
// concurrent use. Errors are sentinels matched with errors.Is; no failure
// is ever replaced by a default value.
package proj
