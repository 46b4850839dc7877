// SPDX-License-Identifier: MIT

package matrix

import "math"

// EigenSym computes the full eigen-decomposition A = Q·diag(λ)·Qᵀ of a
// symmetric matrix via Jacobi rotations with max-pivot selection.
//
// Implementation:
//   - Stage 1: validate (non-nil, square, symmetric within tol) and copy m
//     into a Dense working matrix; initialize Q as identity.
//   - Stage 2: repeatedly find the largest |A[p,q]| over the strict upper
//     triangle in fixed i→j order and annihilate it with a Jacobi rotation,
//     accumulating the rotation into Q; stop when the pivot drops below tol.
//   - Stage 3: sort eigenpairs by ascending eigenvalue (stable selection
//     order), permuting the columns of Q accordingly.
//
// Inputs:
//   - m: symmetric Matrix (within tol), order n = m.Rows().
//   - tol: convergence and symmetry threshold (typ. 1e-10..1e-12).
//   - maxIter: hard cap on rotations; the solver never loops indefinitely.
//
// Returns:
//   - []float64: eigenvalues in ascending order.
//   - *Dense: orthogonal Q whose i-th column is the eigenvector of λ[i].
//
// Errors:
//   - ErrNilMatrix / ErrDimensionMismatch / ErrAsymmetry / ErrNaNInf from
//     validation; ErrEigenFailed when the pivot is still ≥ tol after
//     maxIter rotations.
//
// Determinism: fixed pivot scan and update order give stable results,
// including the ordering of equal eigenvalues.
// Complexity: O(maxIter·n²) pivot scans plus O(n) work per rotation;
// O(n²) workspace.
func EigenSym(m Matrix, tol float64, maxIter int) ([]float64, *Dense, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, kernelErrorf(opEigen, err)
	}

	// Copy the input into a Dense working matrix a.
	n := m.Rows()
	a, err := NewDense(n, n)
	if err != nil {
		return nil, nil, kernelErrorf(opEigen, err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, _ := m.At(i, j) // shape validated; At cannot fail
			a.data[i*n+j] = v
		}
	}

	// Q starts as identity and accumulates every rotation.
	q, err := Identity(n)
	if err != nil {
		return nil, nil, kernelErrorf(opEigen, err)
	}

	converged := n <= 1 // a 1×1 matrix is already diagonal
	for iter := 0; iter < maxIter && !converged; iter++ {
		// Find pivot (p,q) maximizing |A[p,q]| over the upper triangle.
		var p, r int
		maxOff := 0.0
		for i := 0; i < n; i++ {
			base := i * n
			for j := i + 1; j < n; j++ {
				if off := math.Abs(a.data[base+j]); off > maxOff {
					maxOff, p, r = off, i, j
				}
			}
		}
		if maxOff < tol {
			converged = true
			break
		}

		app := a.data[p*n+p]
		arr := a.data[r*n+r]
		apr := a.data[p*n+r]

		// Rotation parameters: θ = (A[r,r]−A[p,p]) / (2·A[p,r]),
		// t = sign(θ)/(|θ|+√(θ²+1)), c = 1/√(1+t²), s = t·c.
		theta := (arr - app) / (2 * apr)
		t := math.Copysign(1/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c := 1 / math.Sqrt(t*t+1)
		s := t * c

		// Apply the rotation to A symmetrically.
		for i := 0; i < n; i++ {
			if i == p || i == r {
				continue
			}
			aip := a.data[i*n+p]
			air := a.data[i*n+r]
			newIP := c*aip - s*air
			newIR := s*aip + c*air
			a.data[i*n+p], a.data[p*n+i] = newIP, newIP
			a.data[i*n+r], a.data[r*n+i] = newIR, newIR
		}
		a.data[p*n+p] = c*c*app - 2*c*s*apr + s*s*arr
		a.data[r*n+r] = s*s*app + 2*c*s*apr + c*c*arr
		a.data[p*n+r], a.data[r*n+p] = 0, 0

		// Accumulate the rotation into Q (columns p and r).
		for i := 0; i < n; i++ {
			qip := q.data[i*n+p]
			qir := q.data[i*n+r]
			q.data[i*n+p] = c*qip - s*qir
			q.data[i*n+r] = s*qip + c*qir
		}
	}

	if !converged {
		// Re-check: maxIter may have landed exactly on convergence.
		maxOff := 0.0
		for i := 0; i < n; i++ {
			base := i * n
			for j := i + 1; j < n; j++ {
				if off := math.Abs(a.data[base+j]); off > maxOff {
					maxOff = off
				}
			}
		}
		if maxOff >= tol {
			return nil, nil, kernelErrorf(opEigen, ErrEigenFailed)
		}
	}

	// Extract the diagonal and sort eigenpairs ascending, permuting the
	// columns of Q in lockstep (selection sort keeps the order stable).
	eigs := make([]float64, n)
	for i := 0; i < n; i++ {
		eigs[i] = a.data[i*n+i]
	}
	for i := 0; i < n-1; i++ {
		minAt := i
		for j := i + 1; j < n; j++ {
			if eigs[j] < eigs[minAt] {
				minAt = j
			}
		}
		if minAt == i {
			continue
		}
		eigs[i], eigs[minAt] = eigs[minAt], eigs[i]
		for row := 0; row < n; row++ {
			base := row * n
			q.data[base+i], q.data[base+minAt] = q.data[base+minAt], q.data[base+i]
		}
	}

	return eigs, q, nil
}
