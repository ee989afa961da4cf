// SPDX-License-Identifier: MIT
// Package matrix_test: unit tests for the PSD factorization.

package matrix_test

import (
	"errors"
	"testing"

	"github.com/fjordtools/designkit/matrix"
)

// reconstructs checks B·Bᵗ against m elementwise.
func reconstructs(t *testing.T, b, m *matrix.Dense, tol float64) {
	t.Helper()
	n := m.Rows()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			acc := 0.0
			for k := 0; k < n; k++ {
				acc += MustAt(t, b, i, k) * MustAt(t, b, j, k)
			}
			if !approxEqual(acc, MustAt(t, m, i, j), tol) {
				t.Fatalf("BBᵗ[%d,%d] = %g, want %g", i, j, acc, MustAt(t, m, i, j))
			}
		}
	}
}

func TestFactorPSDMatchesCholeskyWhenDefinite(t *testing.T) {
	m := MustFromRows(t, [][]float64{
		{4, 12, -16},
		{12, 37, -43},
		{-16, -43, 98},
	})
	b, err := matrix.FactorPSD(m)
	if err != nil {
		t.Fatalf("FactorPSD: %v", err)
	}
	l, err := matrix.Cholesky(m)
	if err != nil {
		t.Fatalf("Cholesky: %v", err)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if MustAt(t, b, i, j) != MustAt(t, l, i, j) {
				t.Fatalf("B[%d,%d] = %g, want Cholesky %g", i, j, MustAt(t, b, i, j), MustAt(t, l, i, j))
			}
		}
	}
}

func TestFactorPSDSingularRankOne(t *testing.T) {
	// Rank-1 matrix: Cholesky fails on the second pivot, the eigen
	// fallback still factors it.
	m := MustFromRows(t, [][]float64{{1, 1}, {1, 1}})
	if _, err := matrix.Cholesky(m); !errors.Is(err, matrix.ErrNotPositiveDefinite) {
		t.Fatalf("Cholesky should reject the singular input, got %v", err)
	}
	b, err := matrix.FactorPSD(m)
	if err != nil {
		t.Fatalf("FactorPSD: %v", err)
	}
	reconstructs(t, b, m, 1e-10)
}

func TestFactorPSDSingularRankTwo(t *testing.T) {
	// vvᵗ + wwᵗ for v = (1,1,1), w = (1,0,-1): rank 2, zero third pivot.
	m := MustFromRows(t, [][]float64{
		{2, 1, 0},
		{1, 1, 1},
		{0, 1, 2},
	})
	b, err := matrix.FactorPSD(m)
	if err != nil {
		t.Fatalf("FactorPSD: %v", err)
	}
	reconstructs(t, b, m, 1e-10)
}

func TestFactorPSDRejectsIndefinite(t *testing.T) {
	// Eigenvalues 2.5 and -0.5: far below the clamp tolerance.
	m := MustFromRows(t, [][]float64{{1, 1.5}, {1.5, 1}})
	if _, err := matrix.FactorPSD(m); !errors.Is(err, matrix.ErrNotPositiveDefinite) {
		t.Fatalf("want ErrNotPositiveDefinite, got %v", err)
	}
}

func TestFactorPSDRejectsAsymmetry(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 0.5}, {0.1, 1}})
	if _, err := matrix.FactorPSD(m); !errors.Is(err, matrix.ErrAsymmetry) {
		t.Fatalf("want ErrAsymmetry, got %v", err)
	}
}
