// SPDX-License-Identifier: MIT

package matrix

import "math"

// SymPackedLen returns the packed-vector length d(d+1)/2 for a symmetric
// matrix of order d. Negative d yields 0.
func SymPackedLen(d int) int {
	if d < 0 {
		return 0
	}

	return d * (d + 1) / 2
}

// symOrderOf infers the matrix order d from a packed length n, requiring
// n == d(d+1)/2 exactly. The inverse of the triangle number is
// d = floor(sqrt(2n)); the exactness check rejects every other length.
func symOrderOf(n int) (int, error) {
	d := int(math.Floor(math.Sqrt(2 * float64(n))))
	if SymPackedLen(d) != n {
		return 0, kernelErrorf(opUnpack, ErrDimensionMismatch)
	}

	return d, nil
}

// PackSym encodes the upper triangle of a square matrix, diagonal included,
// into a compact vector of length d(d+1)/2.
//
// Entry order is column-by-column: for each column i = 0..d-1, rows
// j = 0..i, taking X[j,i]. The lower triangle is never read, so no symmetry
// validation is performed. Off-diagonal entries are stored with scale
// factor 1: dot products are NOT preserved across the packed encoding.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square input).
// Complexity: O(d²).
func PackSym(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, kernelErrorf(opPack, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, kernelErrorf(opPack, err)
	}

	d := m.Rows()
	out := make([]float64, 0, SymPackedLen(d))
	for i := 0; i < d; i++ {
		for j := 0; j <= i; j++ {
			v, err := m.At(j, i)
			if err != nil {
				return nil, kernelErrorf(opPack, err)
			}
			out = append(out, v)
		}
	}

	return out, nil
}

// UnpackSym decodes a packed vector back into the full symmetric matrix,
// writing both X[j,i] and X[i,j] from each packed entry. It is the exact
// inverse of PackSym: unpack∘pack and pack∘unpack are both identities.
//
// When d > 0 it must satisfy len(v) == d(d+1)/2; when d <= 0 the order is
// inferred as floor(sqrt(2·len(v))) and verified exact. Either violation
// fails with ErrDimensionMismatch.
//
// Complexity: O(d²).
func UnpackSym(v []float64, d int) (*Dense, error) {
	if v == nil {
		return nil, kernelErrorf(opUnpack, ErrNilMatrix)
	}
	if d <= 0 {
		var err error
		if d, err = symOrderOf(len(v)); err != nil {
			return nil, err
		}
	} else if SymPackedLen(d) != len(v) {
		return nil, kernelErrorf(opUnpack, ErrDimensionMismatch)
	}

	m, err := NewDense(d, d)
	if err != nil {
		return nil, kernelErrorf(opUnpack, err)
	}
	k := 0
	for i := 0; i < d; i++ {
		for j := 0; j <= i; j++ {
			m.data[j*d+i] = v[k]
			m.data[i*d+j] = v[k]
			k++
		}
	}

	return m, nil
}
