// SPDX-License-Identifier: MIT
// Package nearcorr: functional configuration.
//
// Design goals (mirrors the rest of the repository):
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on nonsensical option values
//     (programmer error); data-dependent failures surface as errors.
//   - Options fields are unexported; the public API consumes ...Option.

package nearcorr

import "math"

// Method selects the projection onto the positive-semidefinite cone.
type Method int

const (
	// MethodFullEigen projects via a full symmetric eigendecomposition with
	// negative eigenvalues clamped to zero. This is the supported default.
	MethodFullEigen Method = iota

	// MethodNewton is the Newton-based variant of Higham's method. It is part
	// of the documented interface surface but not implemented; selecting it
	// yields ErrMethodNotImplemented.
	MethodNewton
)

// DefaultMaxIterations caps the alternating-projection loop.
const DefaultMaxIterations = 100

// epsilon is the float64 machine epsilon; the default tolerance is
// epsilon scaled by the matrix dimension and by tolEpsScale.
const epsilon = 2.220446049250313e-16

// tolEpsScale lifts the default tolerance above the accuracy floor of the
// iterative Jacobi projection (successive iterates cannot contract below
// the eigensolver's reconstruction error, so a bare eps*n target would
// spin until the iteration cap).
const tolEpsScale = 1e5

// Internal panic messages (no magic strings).
const (
	panicTolInvalid     = "nearcorr: WithTol: tol must be finite and positive"
	panicMaxIterInvalid = "nearcorr: WithMaxIterations: n must be >= 1"
	panicWeightInvalid  = "nearcorr: WithWeights: weights must be finite and positive"
)

// Option mutates the internal options. Safe to apply repeatedly.
type Option func(*options)

type options struct {
	tol     float64 // 0 means "derive from epsilon and dimension"
	maxIter int
	weights []float64 // nil means all ones
	method  Method
}

func defaultOptions() options {
	return options{
		tol:     0,
		maxIter: DefaultMaxIterations,
		method:  MethodFullEigen,
	}
}

// WithTol overrides the convergence tolerance.
// Panics if tol is not finite and positive (programmer error).
func WithTol(tol float64) Option {
	if tol <= 0 || math.IsInf(tol, 0) || math.IsNaN(tol) {
		panic(panicTolInvalid)
	}
	return func(o *options) { o.tol = tol }
}

// WithMaxIterations overrides the iteration budget (default 100).
// Panics if n < 1 (programmer error).
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicMaxIterInvalid)
	}
	return func(o *options) { o.maxIter = n }
}

// WithWeights supplies the per-variable weight vector defining the weighted
// Frobenius norm. Length must match the matrix dimension (checked at call
// time). Panics on a non-finite or non-positive weight (programmer error).
func WithWeights(w []float64) Option {
	for _, v := range w {
		if v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
			panic(panicWeightInvalid)
		}
	}
	cp := make([]float64, len(w))
	copy(cp, w)
	return func(o *options) { o.weights = cp }
}

// WithMethod selects the SPD projection method. MethodNewton is reported as
// unsupported at call time, not here, so the interface surface stays
// visible to callers probing for it.
func WithMethod(m Method) Option {
	return func(o *options) { o.method = m }
}
