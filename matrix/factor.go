// SPDX-License-Identifier: MIT
// Package matrix: positive-semidefinite factorization.

package matrix

import (
	"errors"
	"fmt"
	"math"
)

// Jacobi budget for the eigen fallback in FactorPSD.
const (
	factorEigenTol      = 1e-13
	factorEigenIterCell = 100 // rotations per matrix cell
)

// factorNegEps bounds how far below zero an eigenvalue may sit, relative
// to the largest eigenvalue, before the input counts as indefinite.
const factorNegEps = 1e-8

// FactorPSD computes a factor B with B·Bᵗ = m for a symmetric
// positive-semidefinite matrix m.
//
// A positive-definite input yields its lower-triangular Cholesky factor.
// When Cholesky meets a non-positive pivot — m sits on the boundary of the
// PSD cone, e.g. a repaired correlation matrix with a zero eigenvalue —
// the factor is rebuilt as Q·diag(√max(λ,0)) from the Jacobi
// eigendecomposition. The fallback factor is dense, not triangular.
// An eigenvalue below -factorNegEps·max(1,λmax) means m is indefinite
// and yields ErrNotPositiveDefinite.
//
// Determinism: both paths use fixed loop orders, so equal inputs give
// equal factors. Complexity: O(n³) for the Cholesky path plus the Eigen
// budget on the fallback, O(n²) space.
func FactorPSD(m Matrix) (*Dense, error) {
	l, err := Cholesky(m)
	if err == nil {
		return l, nil
	}
	if !errors.Is(err, ErrNotPositiveDefinite) {
		return nil, err
	}

	n := m.Rows()
	eig, q, err := Eigen(m, factorEigenTol, factorEigenIterCell*n*n)
	if err != nil {
		return nil, matrixErrorf(opFactorPSD, err)
	}

	maxEig := 1.0
	for _, v := range eig {
		if v > maxEig {
			maxEig = v
		}
	}
	for k, v := range eig {
		if v < -factorNegEps*maxEig {
			return nil, matrixErrorf(opFactorPSD,
				fmt.Errorf("eigenvalue %d is %g: %w", k, v, ErrNotPositiveDefinite))
		}
	}

	b, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opFactorPSD, err)
	}
	for k := 0; k < n; k++ {
		if eig[k] <= 0 {
			continue
		}
		s := math.Sqrt(eig[k])
		for i := 0; i < n; i++ {
			b.data[i*n+k] = q.data[i*n+k] * s
		}
	}

	return b, nil
}
