// SPDX-License-Identifier: MIT
// Package matrix_test: shared helpers for kernel tests.

package matrix_test

import (
	"math"
	"testing"

	"github.com/fjordtools/designkit/matrix"
)

// MustDense builds an r×c Dense or fails the test.
func MustDense(t *testing.T, rows, cols int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", rows, cols, err)
	}
	return m
}

// MustFromRows builds a Dense from row data or fails the test.
func MustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("NewDenseFromRows: %v", err)
	}
	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}
	return v
}

// MustSet writes (i,j) or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d): %v", i, j, err)
	}
}

// approxEqual reports |a-b| <= tol.
func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// hide wraps a Dense behind the plain Matrix interface so kernels take
// their generic fallback path.
type hide struct{ matrix.Matrix }
