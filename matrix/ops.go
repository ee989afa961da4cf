// SPDX-License-Identifier: MIT
// Package matrix: elementwise kernels and vector helpers.
//
// All kernels validate through the central validators, allocate exactly one
// result, never mutate operands (except FillDiagonal, which is documented as
// in-place), and keep fixed loop orders. *Dense operands unlock a flat-slice
// fast path; any other Matrix implementation falls back to At/Set.

package matrix

import "fmt"

// ZeroSum is the initial value for accumulation loops.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opHadamard    = "Hadamard"
	opHadamardDiv = "HadamardDiv"
	opScale       = "Scale"
	opMatVec      = "MatVec"
	opOuter       = "Outer"
	opFillDiag    = "FillDiagonal"
	opEigen       = "Eigen"
	opCholesky    = "Cholesky"
	opFactorPSD   = "FactorPSD"
	opSolveLower  = "SolveLower"
	opFrobenius   = "FrobeniusNorm"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Shared by Add and Sub to keep validation and the fast path in one place.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: both *Dense, single flat loop 0..n-1.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := 0; idx < rows*cols; idx++ {
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var av, bv float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the elementwise sum C = A + B into a fresh Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch. O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the elementwise difference C = A - B into a fresh Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch. O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// mulDiv backs Hadamard and HadamardDiv; div toggles division with a
// zero-divisor guard.
func mulDiv(a, b Matrix, div bool, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	var av, bv float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if div {
				if bv == 0 {
					return nil, matrixErrorf(opTag, fmt.Errorf("cell (%d,%d): %w", i, j, ErrDivideByZero))
				}
				res.data[i*cols+j] = av / bv
			} else {
				res.data[i*cols+j] = av * bv
			}
		}
	}

	return res, nil
}

// Hadamard computes the elementwise product a[i,j] * b[i,j].
// Errors: ErrNilMatrix, ErrDimensionMismatch. O(r*c).
func Hadamard(a, b Matrix) (*Dense, error) {
	// Fast path first; mulDiv covers the generic case.
	if da, okA := a.(*Dense); okA && da != nil {
		if db, okB := b.(*Dense); okB && db != nil {
			if err := ValidateSameShape(a, b); err != nil {
				return nil, matrixErrorf(opHadamard, err)
			}
			res, err := NewDense(da.r, da.c)
			if err != nil {
				return nil, matrixErrorf(opHadamard, err)
			}
			for idx := range da.data {
				res.data[idx] = da.data[idx] * db.data[idx]
			}

			return res, nil
		}
	}

	return mulDiv(a, b, false, opHadamard)
}

// HadamardDiv computes the elementwise quotient a[i,j] / b[i,j].
// A zero divisor cell yields ErrDivideByZero naming the cell.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrDivideByZero. O(r*c).
func HadamardDiv(a, b Matrix) (*Dense, error) { return mulDiv(a, b, true, opHadamardDiv) }

// Scale returns a new matrix whose elements are alpha * m[i,j].
// NaN/Inf alpha propagate; the input is never mutated. O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	if dm, ok := m.(*Dense); ok {
		for idx := range dm.data {
			res.data[idx] = dm.data[idx] * alpha
		}

		return res, nil
	}

	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = v * alpha
		}
	}

	return res, nil
}

// Outer computes the outer product u vᵗ as a len(u)×len(v) Dense.
// Errors: ErrNilMatrix on a nil vector, ErrBadShape on empty input.
func Outer(u, v []float64) (*Dense, error) {
	if u == nil || v == nil {
		return nil, matrixErrorf(opOuter, ErrNilMatrix)
	}
	res, err := NewDense(len(u), len(v))
	if err != nil {
		return nil, matrixErrorf(opOuter, err)
	}
	for i, ui := range u {
		base := i * len(v)
		for j, vj := range v {
			res.data[base+j] = ui * vj
		}
	}

	return res, nil
}

// FillDiagonal sets every diagonal element of the square matrix m to v,
// in place. Errors: ErrNilMatrix, ErrNonSquare.
func FillDiagonal(m Matrix, v float64) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opFillDiag, err)
	}
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opFillDiag, err)
	}
	n := m.Rows()

	if d, ok := m.(*Dense); ok {
		for i := 0; i < n; i++ {
			d.data[i*n+i] = v
		}

		return nil
	}

	for i := 0; i < n; i++ {
		if err := m.Set(i, i, v); err != nil {
			return matrixErrorf(opFillDiag, fmt.Errorf("Set(%d,%d): %w", i, i, err))
		}
	}

	return nil
}

// MatVec computes y = m * x for a column vector x.
// Contract: m non-nil, len(x) == m.Cols(). Fixed i→j order. O(r*c).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			acc := ZeroSum
			base := i * cols
			for j := 0; j < cols; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	var mv float64
	var err error
	for i := 0; i < rows; i++ {
		acc := ZeroSum
		for j := 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			acc += mv * x[j]
		}
		y[i] = acc
	}

	return y, nil
}
