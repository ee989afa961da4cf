// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
//
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Do not %w-wrap these sentinels at definition
// site; attach context with fmt.Errorf("ctx: %w", ErrX) at the call boundary
// so callers can still match with errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0),
	// or when row data of uneven length is supplied to NewDenseFromRows.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set) return this, they never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub on different shapes, or a vector length that disagrees with
	// the matrix dimension.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input
	// was rectangular.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the requested tolerance (exact when eps == 0).
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrMatrixEigenFailed indicates that the Jacobi routine failed to reduce
	// the off-diagonal mass under the given tolerance within maxIter sweeps.
	ErrMatrixEigenFailed = errors.New("matrix: eigen decomposition failed")

	// ErrNotPositiveDefinite is returned by Cholesky when a non-positive pivot
	// is encountered, i.e. the input is not symmetric positive definite.
	ErrNotPositiveDefinite = errors.New("matrix: matrix is not positive definite")

	// ErrDivideByZero is returned by HadamardDiv when a divisor cell is zero.
	ErrDivideByZero = errors.New("matrix: elementwise division by zero")
)
