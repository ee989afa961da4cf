// SPDX-License-Identifier: MIT
// Package matrix: symmetric eigendecomposition (classical Jacobi).

package matrix

import (
	"fmt"
	"math"
)

// toDense copies any Matrix into a fresh *Dense working buffer.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}
	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via
// classical Jacobi rotations.
//
// Each sweep picks the off-diagonal pivot (p,q) with the largest |A[p,q]|
// in fixed i→j scan order and applies one rotation, accumulating the
// rotations into Q. Convergence is declared when the largest off-diagonal
// magnitude drops below tol; exceeding maxIter rotations without reaching
// tol yields ErrMatrixEigenFailed.
//
// Inputs:
//   - m: symmetric matrix (within tol); asymmetry yields ErrAsymmetry.
//   - tol: off-diagonal convergence threshold (typ. 1e-10..1e-12).
//   - maxIter: rotation budget; a few n² rotations suffice in practice.
//
// Returns the eigenvalues (diagonal of the rotated matrix, in storage
// order, not sorted) and the matrix Q whose columns are eigenvectors, so
// m ≈ Q · diag(eig) · Qᵗ.
//
// Determinism: fixed pivot scan and update order give stable results.
// Complexity: O(maxIter · n²) scan plus O(n) per rotation, O(n²) space.
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, *Dense, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	n := m.Rows()
	a, err := toDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	q, err := Identity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	var (
		p, r        int
		maxOff, off float64
		app, aqq    float64
		apq         float64
		theta, t    float64
		c, s        float64
	)
	for iter := 0; iter < maxIter; iter++ {
		// Pivot search: largest |A[p,r]| above the diagonal.
		maxOff = ZeroSum
		for i := 0; i < n; i++ {
			base := i * n
			for j := i + 1; j < n; j++ {
				off = math.Abs(a.data[base+j])
				if off > maxOff {
					maxOff, p, r = off, i, j
				}
			}
		}

		if maxOff < tol {
			break
		}

		app = a.data[p*n+p]
		aqq = a.data[r*n+r]
		apq = a.data[p*n+r]

		// θ = (aqq−app)/(2·apq); t = sign(θ)/(|θ|+√(θ²+1))
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// Rotate rows/columns p and r of A.
		for i := 0; i < n; i++ {
			if i == p || i == r {
				continue
			}
			aip := a.data[i*n+p]
			aiq := a.data[i*n+r]
			nip := c*aip - s*aiq
			niq := s*aip + c*aiq
			a.data[i*n+p], a.data[p*n+i] = nip, nip
			a.data[i*n+r], a.data[r*n+i] = niq, niq
		}
		a.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		a.data[r*n+r] = s*s*app + 2*c*s*apq + c*c*aqq
		a.data[p*n+r], a.data[r*n+p] = 0, 0

		// Accumulate rotation into Q.
		for i := 0; i < n; i++ {
			qip := q.data[i*n+p]
			qiq := q.data[i*n+r]
			q.data[i*n+p] = c*qip - s*qiq
			q.data[i*n+r] = s*qip + c*qiq
		}
	}

	// Final convergence check over the upper triangle.
	maxOff = ZeroSum
	for i := 0; i < n; i++ {
		base := i * n
		for j := i + 1; j < n; j++ {
			if off = math.Abs(a.data[base+j]); off > maxOff {
				maxOff = off
			}
		}
	}
	if maxOff >= tol {
		return nil, nil, matrixErrorf(opEigen, ErrMatrixEigenFailed)
	}

	eigs := make([]float64, n)
	for i := 0; i < n; i++ {
		eigs[i] = a.data[i*n+i]
	}

	return eigs, q, nil
}
