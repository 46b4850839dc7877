// Package coneproj is your toolbox for Euclidean projections onto convex
// cones — and for the Jacobians of those projections — the two primitives
// at the heart of operator-splitting conic solvers and differentiable
// optimization pipelines.
//
// 🚀 What is coneproj?
//
//	A pure-Go library that brings together:
//		• Cone catalog: zero, free, orthants, scalar bounds, second-order,
//		  positive-semidefinite (triangle-packed) and exponential cones
//		• Projections: closed-form per-cone operators, p-norm SOC variant
//		• Derivatives: exact Jacobians, including the PSD-cone gradient via
//		  eigen-decomposition and Hadamard scaling, and the exponential-cone
//		  gradient via implicit differentiation of a scalar root
//		• Products: Cartesian products of heterogeneous cones with
//		  block-diagonal derivative structure
//		• Linear algebra: dense kernels and a Jacobi eigen-solver
//		• Root finding: a bounded, bracket-adaptive bisection solver
//
// ✨ Why choose coneproj?
//
//   - Deterministic – fixed loop orders, named tolerances, stable output
//   - Rock-solid contracts – sentinel errors, no silent truncation, no panics
//   - Pure Go – no cgo, no hidden deps
//   - Thread-friendly – every operator is a pure function, safe to call
//     concurrently with no synchronization
//
// Everything is organized under four subpackages:
//
//	cones/  — cone descriptors (the closed catalog of Set types)
//	proj/   — projection + gradient operators and the product composer
//	matrix/ — Dense matrices, kernels, Jacobi EigenSym, symmetric codec
//	bisect/ — scalar root finding with geometric bracket expansion
//
// Quick example:
//
//	v := []float64{-0.5, 1.0, 2.0}
//	p, _ := proj.Project(cones.Nonnegatives{N: 3}, v, nil)
//	// p == [0, 1, 2]
//	J, _ := proj.Gradient(cones.Nonnegatives{N: 3}, v, nil)
//	// J == diag(0, 1, 1)
//
// Dive into proj/example_test.go for product-cone walkthroughs and
// examples/ for end-to-end demos.
package coneproj
