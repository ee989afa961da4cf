// SPDX-License-Identifier: MIT
// Package matrix_test: unit tests for Cholesky and triangular solves.

package matrix_test

import (
	"errors"
	"testing"

	"github.com/fjordtools/designkit/matrix"
)

func TestCholeskyKnownFactor(t *testing.T) {
	// Classic SPD example: [[4,12,-16],[12,37,-43],[-16,-43,98]]
	// factors into L = [[2,0,0],[6,1,0],[-8,5,3]].
	m := MustFromRows(t, [][]float64{
		{4, 12, -16},
		{12, 37, -43},
		{-16, -43, 98},
	})
	l, err := matrix.Cholesky(m)
	if err != nil {
		t.Fatalf("Cholesky: %v", err)
	}
	want := [][]float64{
		{2, 0, 0},
		{6, 1, 0},
		{-8, 5, 3},
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !approxEqual(MustAt(t, l, i, j), want[i][j], 1e-12) {
				t.Fatalf("L[%d,%d] = %g, want %g", i, j, MustAt(t, l, i, j), want[i][j])
			}
		}
	}
}

func TestCholeskyReconstruction(t *testing.T) {
	m := MustFromRows(t, [][]float64{
		{1.0, 0.4, 0.2},
		{0.4, 1.0, 0.6},
		{0.2, 0.6, 1.0},
	})
	l, err := matrix.Cholesky(m)
	if err != nil {
		t.Fatalf("Cholesky: %v", err)
	}
	// L·Lᵗ must reproduce m.
	n := m.Rows()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			acc := 0.0
			for k := 0; k < n; k++ {
				acc += MustAt(t, l, i, k) * MustAt(t, l, j, k)
			}
			if !approxEqual(acc, MustAt(t, m, i, j), 1e-12) {
				t.Fatalf("LLᵗ[%d,%d] = %g, want %g", i, j, acc, MustAt(t, m, i, j))
			}
		}
	}
}

func TestCholeskyRejectsIndefinite(t *testing.T) {
	// Eigenvalues 2 and -... : off-diagonal dominates the diagonal.
	m := MustFromRows(t, [][]float64{{1, 2}, {2, 1}})
	if _, err := matrix.Cholesky(m); !errors.Is(err, matrix.ErrNotPositiveDefinite) {
		t.Fatalf("want ErrNotPositiveDefinite, got %v", err)
	}
}

func TestCholeskyRejectsAsymmetry(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 0.5}, {0.1, 1}})
	if _, err := matrix.Cholesky(m); !errors.Is(err, matrix.ErrAsymmetry) {
		t.Fatalf("want ErrAsymmetry, got %v", err)
	}
}

func TestSolveLower(t *testing.T) {
	l := MustFromRows(t, [][]float64{
		{2, 0},
		{1, 3},
	})
	x, err := matrix.SolveLower(l, []float64{4, 11})
	if err != nil {
		t.Fatalf("SolveLower: %v", err)
	}
	// 2x0 = 4 → x0 = 2; x0 + 3x1 = 11 → x1 = 3.
	if !approxEqual(x[0], 2, 1e-12) || !approxEqual(x[1], 3, 1e-12) {
		t.Fatalf("x = %v, want [2 3]", x)
	}

	bad := MustFromRows(t, [][]float64{{0, 0}, {1, 1}})
	if _, err = matrix.SolveLower(bad, []float64{1, 1}); !errors.Is(err, matrix.ErrNotPositiveDefinite) {
		t.Fatalf("zero pivot: want ErrNotPositiveDefinite, got %v", err)
	}
}
