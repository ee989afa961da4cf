// SPDX-License-Identifier: MIT
// Package dist: triangular family.

package dist

import (
	"fmt"
	"math"
)

// Triangular is the triangular distribution on [low, high] with the given
// mode.
type Triangular struct {
	low, mode, high float64
}

// NewTriangular validates low <= mode <= high and low < high.
func NewTriangular(low, mode, high float64) (Triangular, error) {
	if !(low <= mode && mode <= high && low < high) {
		return Triangular{}, fmt.Errorf("low/mode/high %v/%v/%v: %w", low, mode, high, ErrBadParams)
	}

	return Triangular{low: low, mode: mode, high: high}, nil
}

// Quantile inverts the piecewise-quadratic triangular CDF: the left branch
// applies while p is below the mode's CDF mass (mode-low)/(high-low).
func (t Triangular) Quantile(p float64) (float64, error) {
	if err := checkProbability(p); err != nil {
		return 0, err
	}

	span := t.high - t.low
	fc := (t.mode - t.low) / span
	if p < fc {
		return t.low + math.Sqrt(p*span*(t.mode-t.low)), nil
	}

	return t.high - math.Sqrt((1-p)*span*(t.high-t.mode)), nil
}

// Family returns "triang".
func (t Triangular) Family() string { return FamilyTriang }
