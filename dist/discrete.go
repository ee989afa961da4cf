// SPDX-License-Identifier: MIT
// Package dist: finite weighted discrete choice.

package dist

import (
	"fmt"
	"math"
)

// Discrete is a finite weighted choice over a fixed value list. Values keep
// their declaration order; the quantile walks the cumulative weights, so a
// uniform draw selects value i with probability weight_i / Σ weights.
type Discrete struct {
	values []float64
	cum    []float64 // cumulative weights, cum[len-1] == total
	total  float64
}

// NewDiscrete validates the value/weight lists and precomputes cumulative
// weights. A nil weights slice means equal weighting. Weights must be
// non-negative with a positive sum; lists must be equally long.
func NewDiscrete(values, weights []float64) (Discrete, error) {
	if len(values) == 0 {
		return Discrete{}, fmt.Errorf("empty value list: %w", ErrBadParams)
	}
	if weights == nil {
		weights = make([]float64, len(values))
		for i := range weights {
			weights[i] = 1
		}
	}
	if len(weights) != len(values) {
		return Discrete{}, fmt.Errorf("%d values vs %d weights: %w", len(values), len(weights), ErrBadParams)
	}

	d := Discrete{
		values: append([]float64(nil), values...),
		cum:    make([]float64, len(values)),
	}
	acc := 0.0
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return Discrete{}, fmt.Errorf("weight[%d]=%v: %w", i, w, ErrBadParams)
		}
		acc += w
		d.cum[i] = acc
	}
	if acc <= 0 {
		return Discrete{}, fmt.Errorf("weights sum to %v: %w", acc, ErrBadParams)
	}
	d.total = acc

	return d, nil
}

// Quantile returns the first value whose cumulative weight covers p·total.
func (d Discrete) Quantile(p float64) (float64, error) {
	if err := checkProbability(p); err != nil {
		return 0, err
	}

	target := p * d.total
	for i, c := range d.cum {
		if target <= c {
			return d.values[i], nil
		}
	}

	// p == 1 with rounding can overshoot the last cumulative weight.
	return d.values[len(d.values)-1], nil
}

// Family returns "discrete".
func (d Discrete) Family() string { return FamilyDiscrete }

// Len returns the number of declared values.
func (d Discrete) Len() int { return len(d.values) }
