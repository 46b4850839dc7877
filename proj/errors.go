// Package proj: sentinel error set.
// Operators return these sentinels (wrapped with context via %w where it
// helps) and never swallow a failure into a default value.

package proj

import "errors"

var (
	// ErrDimensionMismatch indicates that a value's length does not match
	// the cone's declared dimension, or that a product's value count does
	// not match its cone count. Nothing is truncated or padded.
	ErrDimensionMismatch = errors.New("proj: dimension mismatch")

	// ErrBadCone indicates a descriptor with a negative dimension field.
	ErrBadCone = errors.New("proj: invalid cone descriptor")

	// ErrBadNorm indicates a norm order p < 1 in Options.Norm.
	ErrBadNorm = errors.New("proj: norm order must be >= 1")

	// ErrNoConvergence indicates that the exponential-cone root search
	// failed (no bracket, or iteration budget exceeded). This is fatal for
	// the call and is never retried: it means the membership pre-tests
	// failed to catch a case they should have.
	ErrNoConvergence = errors.New("proj: root search failed to converge")

	// ErrUnknownSet indicates a cones.Set implementation outside the fixed
	// catalog. Failing loudly here keeps an unexpected set from silently
	// corrupting downstream differentiation.
	ErrUnknownSet = errors.New("proj: unknown cone type")

	// ErrOffBlockWrite indicates an attempt to write a structurally zero
	// off-block entry of a BlockDiag matrix.
	ErrOffBlockWrite = errors.New("proj: off-block entries of a block-diagonal matrix are structurally zero")
)
