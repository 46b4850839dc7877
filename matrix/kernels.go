// SPDX-License-Identifier: MIT

// Package matrix: dense linear-algebra kernels.
// All kernels validate through the central validators, allocate exactly one
// result, never mutate operands, and keep fixed loop orders for determinism.
// Each has a flat fast path for *Dense operands and a bounds-checked
// interface fallback for any other Matrix implementation.

package matrix

import "fmt"

// Operation tags for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opHadamard  = "Hadamard"
	opMatVec    = "MatVec"
	opEigen     = "EigenSym"
	opPack      = "PackSym"
	opUnpack    = "UnpackSym"
)

// kernelErrorf wraps err with an operation tag, preserving the underlying
// sentinel for errors.Is/As. Call only with err != nil.
func kernelErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Shared by Add and Sub to keep validation and the fast path in one place.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, kernelErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, kernelErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := 0; idx < rows*cols; idx++ {
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			av, err := a.At(i, j)
			if err != nil {
				return nil, kernelErrorf(opTag, err)
			}
			bv, err := b.At(i, j)
			if err != nil {
				return nil, kernelErrorf(opTag, err)
			}
			if err = res.Set(i, j, av+sign*bv); err != nil {
				return nil, kernelErrorf(opTag, err)
			}
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B into a fresh Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r·c).
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A − B into a fresh Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r·c).
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul performs matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: validate non-nil inputs and a.Cols == b.Rows.
//   - Stage 2: *Dense×*Dense runs i→k→j with row-major strides and a
//     zero-skip on A[i,k]; the generic path runs i→j→k via At.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r·n·c), Space O(r·c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, kernelErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, kernelErrorf(opMul, err)
	}

	// Fast path for two Dense matrices: accumulate row blocks.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for i := 0; i < aRows; i++ {
				rowA, rowR := i*aCols, i*bCols
				for k := 0; k < aCols; k++ {
					av := da.data[rowA+k]
					if av == 0 {
						continue // skip zero multiplier
					}
					rowB := k * bCols
					for j := 0; j < bCols; j++ {
						res.data[rowR+j] += av * db.data[rowB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple loop (i→j→k).
	for i := 0; i < aRows; i++ {
		for j := 0; j < bCols; j++ {
			var acc float64
			for k := 0; k < aCols; k++ {
				av, err := a.At(i, k)
				if err != nil {
					return nil, kernelErrorf(opMul, err)
				}
				if av == 0 {
					continue
				}
				bv, err := b.At(k, j)
				if err != nil {
					return nil, kernelErrorf(opMul, err)
				}
				acc += av * bv
			}
			if err = res.Set(i, j, acc); err != nil {
				return nil, kernelErrorf(opMul, err)
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Errors: ErrNilMatrix. Complexity: O(r·c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, kernelErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, kernelErrorf(opTranspose, err)
	}

	if dm, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			base := i * cols
			for j := 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[base+j]
			}
		}

		return res, nil
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, kernelErrorf(opTranspose, err)
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, kernelErrorf(opTranspose, err)
			}
		}
	}

	return res, nil
}

// Scale returns a new matrix with elements alpha*m[i,j].
// NaN/Inf in alpha propagate into the result.
// Errors: ErrNilMatrix. Complexity: O(r·c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, kernelErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, kernelErrorf(opScale, err)
	}

	if dm, ok := m.(*Dense); ok {
		for idx := 0; idx < rows*cols; idx++ {
			res.data[idx] = dm.data[idx] * alpha
		}

		return res, nil
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, kernelErrorf(opScale, err)
			}
			if err = res.Set(i, j, v*alpha); err != nil {
				return nil, kernelErrorf(opScale, err)
			}
		}
	}

	return res, nil
}

// Hadamard computes the elementwise product a ⊙ b into a fresh Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r·c).
func Hadamard(a, b Matrix) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, kernelErrorf(opHadamard, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, kernelErrorf(opHadamard, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := 0; idx < rows*cols; idx++ {
				res.data[idx] = da.data[idx] * db.data[idx]
			}

			return res, nil
		}
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			av, err := a.At(i, j)
			if err != nil {
				return nil, kernelErrorf(opHadamard, err)
			}
			bv, err := b.At(i, j)
			if err != nil {
				return nil, kernelErrorf(opHadamard, err)
			}
			if err = res.Set(i, j, av*bv); err != nil {
				return nil, kernelErrorf(opHadamard, err)
			}
		}
	}

	return res, nil
}

// MatVec computes y = m·x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r·c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, kernelErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, kernelErrorf(opMatVec, err)
	}

	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast path: one flat pass per row, skipping zero x entries.
	if d, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			var acc float64
			base := i * cols
			for j := 0; j < cols; j++ {
				if xv := x[j]; xv != 0 {
					acc += d.data[base+j] * xv
				}
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: bounds-checked dot products via At.
	for i := 0; i < rows; i++ {
		var acc float64
		for j := 0; j < cols; j++ {
			mv, err := m.At(i, j)
			if err != nil {
				return nil, kernelErrorf(opMatVec, err)
			}
			acc += mv * x[j]
		}
		y[i] = acc
	}

	return y, nil
}
