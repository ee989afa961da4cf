// SPDX-License-Identifier: MIT
// Package matrix: Frobenius norms.

package matrix

import (
	"fmt"
	"math"
)

// FrobeniusNorm returns sqrt(Σ m[i,j]²).
// Deterministic accumulation in fixed i→j order. O(r*c).
func FrobeniusNorm(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opFrobenius, err)
	}

	if d, ok := m.(*Dense); ok {
		acc := ZeroSum
		for _, v := range d.data {
			acc += v * v
		}

		return math.Sqrt(acc), nil
	}

	rows, cols := m.Rows(), m.Cols()
	acc := ZeroSum
	var v float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return 0, matrixErrorf(opFrobenius, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			acc += v * v
		}
	}

	return math.Sqrt(acc), nil
}

// FrobeniusDistance returns ‖a - b‖_F without materializing the difference
// when both operands are *Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch. O(r*c).
func FrobeniusDistance(a, b Matrix) (float64, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return 0, matrixErrorf(opFrobenius, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			acc := ZeroSum
			for idx := range da.data {
				d := da.data[idx] - db.data[idx]
				acc += d * d
			}

			return math.Sqrt(acc), nil
		}
	}

	diff, err := Sub(a, b)
	if err != nil {
		return 0, err
	}

	return FrobeniusNorm(diff)
}
