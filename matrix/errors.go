// SPDX-License-Identifier: MIT

// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Kernels return these
// sentinels (optionally wrapped with an operation tag via %w) and tests match
// them with errors.Is. No kernel panics on user-triggered conditions.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (negative rows or cols, or backing data of the wrong length).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set) return this, they never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands: Add/Sub/Hadamard with different shapes, Mul with
	// a.Cols != b.Rows, MatVec with len(x) != cols, or a packed vector
	// whose length is not d(d+1)/2 for any integer d.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the given tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within tol")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) or a
	// nil vector was passed where a value is required.
	ErrNilMatrix = errors.New("matrix: nil matrix or vector")

	// ErrNaNInf signals a NaN or ±Inf where a finite value is required:
	// eigen-solver tolerances and the entries of matrices fed to EigenSym.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrEigenFailed indicates that the Jacobi eigen-solver did not reduce
	// the maximum off-diagonal entry below tol within maxIter rotations.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")
)
