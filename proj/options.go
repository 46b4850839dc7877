package proj

import (
	"math"

	"github.com/katalvlaran/coneproj/cones"
)

// Numeric thresholds. Both are deliberate stability knobs inherited from
// the projection literature; defaults are part of the observable contract
// and keep results bit-for-bit reproducible across implementations.
const (
	// ExpConeTol is the absolute tolerance on the exponential-cone
	// membership inequalities (primal and dual).
	ExpConeTol = 1e-8

	// PSDNegEigTol is the eigenvalue threshold below which the PSD-cone
	// gradient assigns an eigenvalue to the negative bucket. It is
	// intentionally larger than zero, which can disagree with
	// finite-difference checks on near-singular matrices.
	PSDNegEigTol = 1e-4
)

// Jacobi eigen-solver parameters used by the PSD-cone operators. The
// rotation cap grows quadratically with the matrix order because classical
// Jacobi needs O(n² log(1/tol)) rotations.
const (
	eigenTol         = 1e-12
	eigenIterPerCell = 60
)

func eigenMaxIter(side int) int {
	return eigenIterPerCell*side*side + 100
}

// Options configures the projection and gradient operators.
//
// Fields:
//   - Norm — the order p of the norm used by the second-order-cone
//     epigraph test ‖x‖_p ≤ t. Must be ≥ 1; +Inf selects the max norm.
//     All other cones ignore it. The zero value of Options is invalid;
//     use DefaultOptions (or pass nil to the operators) for p = 2.
type Options struct {
	Norm float64
}

// DefaultOptions returns the Euclidean configuration (p = 2).
func DefaultOptions() Options {
	return Options{Norm: 2}
}

// resolve applies the nil-means-default convention and validates fields.
func (o *Options) resolve() (Options, error) {
	if o == nil {
		return DefaultOptions(), nil
	}
	if math.IsNaN(o.Norm) || o.Norm < 1 {
		return Options{}, ErrBadNorm
	}

	return *o, nil
}

// checkSet validates a descriptor against a value vector: dimension fields
// must be non-negative and the vector length must equal the declared
// dimension exactly. Mismatches are contract violations, never truncated.
func checkSet(s cones.Set, v []float64) error {
	if s == nil {
		return ErrBadCone
	}
	d := s.Dim()
	if d < 0 {
		return ErrBadCone
	}
	if len(v) != d {
		return ErrDimensionMismatch
	}

	return nil
}
