package proj

import (
	"math"

	"github.com/katalvlaran/coneproj/matrix"
)

// PSD-cone operators over triangle-packed symmetric matrices.
//
// Projection: unpack, eigen-decompose X = U·Λ·Uᵀ, clamp Λ at exactly 0,
// repack U·Λ₊·Uᵀ. Gradient: the directional-derivative formula of spectral
// functions. Each packed basis direction is rotated into the eigenbasis,
// scaled entrywise by the eigenvalue-bucket matrix B, and rotated back.
// Both operators share one eigen-decomposition convention (EigenSym,
// ascending eigenvalues), so the same U and ordering hold within an
// evaluation.

// eigenPSD validates the packed length against the declared side and runs
// the Jacobi solver.
func eigenPSD(v []float64, side int) ([]float64, *matrix.Dense, error) {
	if side < 0 {
		return nil, nil, ErrBadCone
	}
	if len(v) != matrix.SymPackedLen(side) {
		return nil, nil, ErrDimensionMismatch
	}
	x, err := matrix.UnpackSym(v, side)
	if err != nil {
		return nil, nil, err
	}
	vals, u, err := matrix.EigenSym(x, eigenTol, eigenMaxIter(side))
	if err != nil {
		return nil, nil, err
	}

	return vals, u, nil
}

func projPSD(v []float64, side int) ([]float64, error) {
	if side == 0 {
		return []float64{}, nil
	}
	vals, u, err := eigenPSD(v, side)
	if err != nil {
		return nil, err
	}

	// Rebuild U·Λ₊·Uᵀ through the dense kernels.
	lambda, err := matrix.NewDense(side, side)
	if err != nil {
		return nil, err
	}
	for i, l := range vals {
		if err = lambda.Set(i, i, math.Max(l, 0)); err != nil {
			return nil, err
		}
	}
	ut, err := matrix.Transpose(u)
	if err != nil {
		return nil, err
	}
	m, err := matrix.Mul(u, lambda)
	if err != nil {
		return nil, err
	}
	if m, err = matrix.Mul(m, ut); err != nil {
		return nil, err
	}

	return matrix.PackSym(m)
}

func gradPSD(v []float64, side int) (*matrix.Dense, error) {
	n := len(v)
	if side == 0 {
		return matrix.NewDense(0, 0)
	}
	vals, u, err := eigenPSD(v, side)
	if err != nil {
		return nil, err
	}

	// All eigenvalues non-negative: the projection is locally the identity.
	if vals[0] >= 0 {
		return matrix.Identity(n)
	}

	// k = size of the "negative bucket". Eigenvalues are ascending, so the
	// bucket is the prefix vals[0:k]. The threshold is PSDNegEigTol, not 0:
	// a deliberate stability choice (see package doc).
	k := 0
	for k < side && vals[k] < PSDNegEigTol {
		k++
	}

	// Hadamard scaling matrix B in the eigenbasis:
	//   both indices negative  → 0
	//   both indices positive  → 1
	//   mixed (i<k ≤ j)        → λ₊/(λ₊+λ₋) with λ₊ = max(vals[j],0),
	//                            λ₋ = max(-vals[i],0)
	bData := make([]float64, side*side)
	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			switch {
			case i < k && j < k:
				// structural zero
			case i >= k && j >= k:
				bData[i*side+j] = 1
			default:
				neg, pos := i, j
				if j < k {
					neg, pos = j, i
				}
				lp := math.Max(vals[pos], 0)
				ln := math.Max(-vals[neg], 0)
				if lp+ln > 0 {
					bData[i*side+j] = lp / (lp + ln)
				}
			}
		}
	}
	b, err := matrix.NewDenseFromData(side, side, bData)
	if err != nil {
		return nil, err
	}
	ut, err := matrix.Transpose(u)
	if err != nil {
		return nil, err
	}

	// Column idx of J is the directional derivative along the idx-th packed
	// basis direction: pack(U·(B ⊙ (Uᵀ·unpack(e_idx)·U))·Uᵀ). The packed
	// Jacobian is not symmetric (off-diagonal coordinates carry weight 2 in
	// matrix space), so rows and columns must not be swapped.
	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	basis := make([]float64, n)
	for idx := 0; idx < n; idx++ {
		basis[idx] = 1
		e, err := matrix.UnpackSym(basis, side)
		basis[idx] = 0
		if err != nil {
			return nil, err
		}

		w, err := matrix.Mul(ut, e)
		if err != nil {
			return nil, err
		}
		if w, err = matrix.Mul(w, u); err != nil {
			return nil, err
		}
		if w, err = matrix.Hadamard(w, b); err != nil {
			return nil, err
		}
		if w, err = matrix.Mul(u, w); err != nil {
			return nil, err
		}
		if w, err = matrix.Mul(w, ut); err != nil {
			return nil, err
		}
		col, err := matrix.PackSym(w)
		if err != nil {
			return nil, err
		}
		for i, val := range col {
			if err = out.Set(i, idx, val); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
