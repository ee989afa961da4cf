// SPDX-License-Identifier: MIT
// Package dist: uniform and loguniform families.

package dist

import (
	"fmt"
	"math"
)

// Uniform is the continuous uniform distribution on [low, high].
type Uniform struct {
	low, high float64
}

// NewUniform validates low < high.
func NewUniform(low, high float64) (Uniform, error) {
	if !(low < high) || math.IsNaN(low) || math.IsNaN(high) {
		return Uniform{}, fmt.Errorf("bounds [%v,%v]: %w", low, high, ErrBadParams)
	}

	return Uniform{low: low, high: high}, nil
}

// Quantile returns low + p·(high-low).
func (u Uniform) Quantile(p float64) (float64, error) {
	if err := checkProbability(p); err != nil {
		return 0, err
	}

	return u.low + p*(u.high-u.low), nil
}

// Family returns "uniform".
func (u Uniform) Family() string { return FamilyUniform }

// LogUniform is uniform in log space on [low, high], low > 0. Useful for
// scale parameters spanning orders of magnitude (e.g. permeability).
type LogUniform struct {
	logLow, logHigh float64
}

// NewLogUniform validates 0 < low < high.
func NewLogUniform(low, high float64) (LogUniform, error) {
	if !(0 < low && low < high) || math.IsNaN(low) || math.IsNaN(high) {
		return LogUniform{}, fmt.Errorf("bounds [%v,%v]: %w", low, high, ErrBadParams)
	}

	return LogUniform{logLow: math.Log(low), logHigh: math.Log(high)}, nil
}

// Quantile returns exp(logLow + p·(logHigh-logLow)).
func (l LogUniform) Quantile(p float64) (float64, error) {
	if err := checkProbability(p); err != nil {
		return 0, err
	}

	return math.Exp(l.logLow + p*(l.logHigh-l.logLow)), nil
}

// Family returns "logunif".
func (l LogUniform) Family() string { return FamilyLogUnif }
