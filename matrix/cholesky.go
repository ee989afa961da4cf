// SPDX-License-Identifier: MIT
// Package matrix: Cholesky factorization and triangular solves.

package matrix

import (
	"fmt"
	"math"
)

// choleskySymEps is the symmetry tolerance accepted by Cholesky. The factor
// consumes only the lower triangle, but a visibly asymmetric input is a
// caller bug and is rejected.
const choleskySymEps = 1e-9

// Cholesky computes the lower-triangular factor L with L·Lᵗ = m for a
// symmetric positive-definite matrix m.
//
// A non-positive pivot means m is not positive definite (within floating
// point) and yields ErrNotPositiveDefinite. The input is never mutated;
// the strictly-upper triangle of the result is zero.
//
// Determinism: fixed j→i→k loop order. Complexity: O(n³), O(n²) space.
func Cholesky(m Matrix) (*Dense, error) {
	if err := ValidateSymmetric(m, choleskySymEps); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}

	n := m.Rows()
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	l, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}

	for j := 0; j < n; j++ {
		// Diagonal entry: sqrt(m[j,j] - Σ_k L[j,k]²).
		acc := src.data[j*n+j]
		for k := 0; k < j; k++ {
			ljk := l.data[j*n+k]
			acc -= ljk * ljk
		}
		if acc <= 0 {
			return nil, matrixErrorf(opCholesky, fmt.Errorf("pivot %d: %w", j, ErrNotPositiveDefinite))
		}
		l.data[j*n+j] = math.Sqrt(acc)

		// Column below the diagonal.
		inv := 1.0 / l.data[j*n+j]
		for i := j + 1; i < n; i++ {
			acc = src.data[i*n+j]
			for k := 0; k < j; k++ {
				acc -= l.data[i*n+k] * l.data[j*n+k]
			}
			l.data[i*n+j] = acc * inv
		}
	}

	return l, nil
}

// SolveLower solves L·x = b by forward substitution for a lower-triangular
// L (as produced by Cholesky). A zero diagonal entry yields
// ErrNotPositiveDefinite since it cannot arise from a valid factor.
//
// Contract: L non-nil and square, len(b) == L.Rows(). O(n²).
func SolveLower(l Matrix, b []float64) ([]float64, error) {
	if err := ValidateNotNil(l); err != nil {
		return nil, matrixErrorf(opSolveLower, err)
	}
	if err := ValidateSquare(l); err != nil {
		return nil, matrixErrorf(opSolveLower, err)
	}
	n := l.Rows()
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolveLower, err)
	}

	ld, err := toDense(l)
	if err != nil {
		return nil, matrixErrorf(opSolveLower, err)
	}

	x := make([]float64, n)
	for i := 0; i < n; i++ {
		acc := b[i]
		base := i * n
		for k := 0; k < i; k++ {
			acc -= ld.data[base+k] * x[k]
		}
		piv := ld.data[base+i]
		if piv == 0 {
			return nil, matrixErrorf(opSolveLower, fmt.Errorf("pivot %d: %w", i, ErrNotPositiveDefinite))
		}
		x[i] = acc / piv
	}

	return x, nil
}
