// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra kernels behind the
// projection and gradient operators: a row-major Dense type, element-wise
// and multiplicative kernels, a Jacobi eigen-solver for symmetric matrices,
// and the triangle-packed symmetric codec.
//
// 🚀 What is matrix?
//
//	A small, deterministic, allocation-disciplined toolkit:
//	  • Dense        — flat row-major float64 storage, bounds-checked At/Set
//	  • Kernels      — Add, Sub, Mul, Transpose, Scale, Hadamard, MatVec
//	  • EigenSym     — Jacobi rotations with max-pivot selection; eigenpairs
//	    returned in ascending eigenvalue order
//	  • PackSym / UnpackSym — bidirectional symmetric ↔ packed-vector codec
//
// ✨ Conventions:
//
//   - Fail-fast validation with package sentinel errors; callers match via
//     errors.Is. Kernels never mutate their operands and never panic on
//     user input.
//   - Deterministic loop orders everywhere: identical inputs produce
//     bit-identical outputs across runs.
//   - Fast paths for *Dense operands; every kernel also accepts any Matrix
//     implementation through the bounds-checked interface fallback.
//
// Complexity: element-wise kernels are O(r·c); Mul is O(r·n·c); EigenSym is
// O(maxIter·n²) per rotation scan with O(n²) workspace.
package matrix
