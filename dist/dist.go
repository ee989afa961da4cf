// SPDX-License-Identifier: MIT
// Package dist: the Distribution surface and the family-name factory.

package dist

import (
	"fmt"
	"strings"
)

// Distribution maps probabilities to sample values through the inverse CDF.
// Implementations are immutable after construction and safe for concurrent
// use.
type Distribution interface {
	// Quantile returns the value at probability p ∈ [0,1].
	// Returns ErrBadProbability outside that range.
	Quantile(p float64) (float64, error)
	// Family returns the canonical family name ("normal", "triang", ...).
	Family() string
}

// Canonical family names accepted by New. These follow the naming of the
// original experiment-design configurations.
const (
	FamilyConst     = "const"
	FamilyUniform   = "uniform"
	FamilyLogUnif   = "logunif"
	FamilyNormal    = "normal"
	FamilyLogNormal = "lognormal"
	FamilyTriang    = "triang"
	FamilyPERT      = "pert"
	FamilyDiscrete  = "discrete"
)

// checkProbability gates every Quantile implementation.
func checkProbability(p float64) error {
	if p < 0 || p > 1 || p != p { // p != p catches NaN
		return fmt.Errorf("p=%v: %w", p, ErrBadProbability)
	}

	return nil
}

// Constant is the degenerate single-value distribution.
type Constant struct{ value float64 }

// NewConstant returns the distribution that always yields v.
func NewConstant(v float64) Constant { return Constant{value: v} }

// Quantile returns the constant value for any valid p.
func (c Constant) Quantile(p float64) (float64, error) {
	if err := checkProbability(p); err != nil {
		return 0, err
	}

	return c.value, nil
}

// Family returns "const".
func (c Constant) Family() string { return FamilyConst }

// New builds a Distribution from a family name and its positional numeric
// parameters, matching the declarative configuration format:
//
//	const     value
//	uniform   low, high
//	logunif   low, high            (low > 0)
//	normal    mean, stddev         or mean, stddev, low, high (truncated)
//	lognormal mu, sigma            (parameters of the underlying normal)
//	triang    low, mode, high
//	pert      low, mode, high      or low, mode, high, scale
//
// Discrete distributions carry two parallel lists and are built with
// NewDiscrete instead. Unknown family names yield ErrUnknownDist; a wrong
// parameter count or invalid values yield ErrBadParams.
func New(family string, params []float64) (Distribution, error) {
	switch strings.ToLower(strings.TrimSpace(family)) {
	case FamilyConst:
		if len(params) != 1 {
			return nil, fmt.Errorf("const wants 1 parameter, got %d: %w", len(params), ErrBadParams)
		}
		return NewConstant(params[0]), nil

	case FamilyUniform:
		if len(params) != 2 {
			return nil, fmt.Errorf("uniform wants 2 parameters, got %d: %w", len(params), ErrBadParams)
		}
		return NewUniform(params[0], params[1])

	case FamilyLogUnif:
		if len(params) != 2 {
			return nil, fmt.Errorf("logunif wants 2 parameters, got %d: %w", len(params), ErrBadParams)
		}
		return NewLogUniform(params[0], params[1])

	case FamilyNormal:
		switch len(params) {
		case 2:
			return NewNormal(params[0], params[1])
		case 4:
			return NewTruncNormal(params[0], params[1], params[2], params[3])
		default:
			return nil, fmt.Errorf("normal wants 2 or 4 parameters, got %d: %w", len(params), ErrBadParams)
		}

	case FamilyLogNormal:
		if len(params) != 2 {
			return nil, fmt.Errorf("lognormal wants 2 parameters, got %d: %w", len(params), ErrBadParams)
		}
		return NewLogNormal(params[0], params[1])

	case FamilyTriang:
		if len(params) != 3 {
			return nil, fmt.Errorf("triang wants 3 parameters, got %d: %w", len(params), ErrBadParams)
		}
		return NewTriangular(params[0], params[1], params[2])

	case FamilyPERT:
		switch len(params) {
		case 3:
			return NewPERT(params[0], params[1], params[2], DefaultPERTScale)
		case 4:
			return NewPERT(params[0], params[1], params[2], params[3])
		default:
			return nil, fmt.Errorf("pert wants 3 or 4 parameters, got %d: %w", len(params), ErrBadParams)
		}

	case FamilyDiscrete:
		return nil, fmt.Errorf("discrete distributions carry value/weight lists, use NewDiscrete: %w", ErrBadParams)

	default:
		return nil, fmt.Errorf("family %q: %w", family, ErrUnknownDist)
	}
}
