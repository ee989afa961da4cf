// SPDX-License-Identifier: MIT
// Package matrix_test: unit tests for Dense storage.

package matrix_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fjordtools/designkit/matrix"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 3},
		{2, 5},
	} {
		name := fmt.Sprintf("%dx%d", tc.rows, tc.cols)
		t.Run(name, func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			for i := 0; i < tc.rows; i++ {
				for j := 0; j < tc.cols; j++ {
					if v := MustAt(t, m, i, j); v != 0.0 {
						t.Fatalf("element [%d,%d] of a new Dense must be 0, got %g", i, j, v)
					}
				}
			}
		})
	}
}

func TestNewDenseRejectsBadShape(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{0, 3},
		{3, 0},
		{-1, 2},
	} {
		if _, err := matrix.NewDense(tc.rows, tc.cols); !errors.Is(err, matrix.ErrBadShape) {
			t.Fatalf("NewDense(%d,%d): want ErrBadShape, got %v", tc.rows, tc.cols, err)
		}
	}
}

func TestNewDenseFromRows(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	if m.Rows() != 2 || m.Cols() != 2 {
		t.Fatalf("shape: got %dx%d", m.Rows(), m.Cols())
	}
	if v := MustAt(t, m, 1, 0); v != 3 {
		t.Fatalf("At(1,0): got %g, want 3", v)
	}

	// Ragged input must fail.
	if _, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3}}); !errors.Is(err, matrix.ErrBadShape) {
		t.Fatalf("ragged rows: want ErrBadShape, got %v", err)
	}
}

func TestAtSetOutOfRange(t *testing.T) {
	m := MustDense(t, 2, 2)
	if _, err := m.At(2, 0); !errors.Is(err, matrix.ErrOutOfRange) {
		t.Fatalf("At(2,0): want ErrOutOfRange, got %v", err)
	}
	if err := m.Set(0, -1, 1); !errors.Is(err, matrix.ErrOutOfRange) {
		t.Fatalf("Set(0,-1): want ErrOutOfRange, got %v", err)
	}
}

func TestCloneIsDeep(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	cp := m.Clone()
	MustSet(t, m, 0, 0, 99)
	if v := MustAt(t, cp, 0, 0); v != 1 {
		t.Fatalf("clone aliased original: got %g, want 1", v)
	}
}

func TestIdentity(t *testing.T) {
	id, err := matrix.Identity(3)
	if err != nil {
		t.Fatalf("Identity(3): %v", err)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if v := MustAt(t, id, i, j); v != want {
				t.Fatalf("Identity[%d,%d] = %g, want %g", i, j, v, want)
			}
		}
	}
}

func TestRowCopies(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	row, err := m.Row(1)
	if err != nil {
		t.Fatalf("Row(1): %v", err)
	}
	row[0] = -1
	if v := MustAt(t, m, 1, 0); v != 3 {
		t.Fatalf("Row must copy, original mutated to %g", v)
	}
	if _, err = m.Row(5); !errors.Is(err, matrix.ErrOutOfRange) {
		t.Fatalf("Row(5): want ErrOutOfRange, got %v", err)
	}
}
