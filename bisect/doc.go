// Package bisect finds roots of scalar functions by bisection, with
// geometric bracket expansion for half-open search domains.
//
// 🚀 What is bisect?
//
//	A single entry point, FindRoot, that accepts a continuous function f
//	and a bracket [lo, hi] where either endpoint may be ±Inf:
//	  • finite bracket  — requires a sign change of f between lo and hi
//	  • half-open bracket — the infinite side is grown geometrically away
//	    from the finite bound (step doubling) until f changes sign, capped
//	    at a fixed number of expansions
//
// ✨ Guarantees:
//
//   - Bounded: both the expansion loop and the bisection loop carry hard
//     iteration caps and fail with a sentinel error instead of spinning.
//   - Deterministic: fixed expansion schedule and midpoint rule; identical
//     inputs converge to identical roots.
//   - Pure: no state survives a call; safe for concurrent use.
//
// Usage:
//
//	root, err := bisect.FindRoot(func(x float64) float64 { return x*x - 2 },
//		0, math.Inf(1), nil)
//	// root ≈ √2
//
// The solver is the numerical backend of the exponential-cone projection in
// proj, which supplies a sign-changing residual and a half-open bracket.
package bisect
