// SPDX-License-Identifier: MIT
// Package nearcorr: Higham alternating projections.

package nearcorr

import (
	"fmt"
	"math"

	"github.com/fjordtools/designkit/matrix"
)

// Jacobi parameters for the inner SPD projection. The off-diagonal target
// is well below the outer tolerance so the eigen step never dominates the
// error budget; the rotation cap scales with the matrix size.
const (
	jacobiTol         = 1e-13
	jacobiIterPerCell = 100
)

// Nearest computes the nearest correlation matrix to the symmetric matrix a
// under the (optionally weighted) Frobenius norm.
//
// The input must be square and exactly symmetric; asymmetric input yields
// ErrNotSymmetric before any iteration runs. The default tolerance is the
// float64 machine epsilon scaled by the matrix dimension and the
// eigensolver accuracy floor (see tolEpsScale); the default
// weight vector is all ones; the default iteration cap is 100.
//
// On success the returned matrix is symmetric, has unit diagonal, and is
// positive semidefinite up to floating tolerance. The input is not mutated.
//
// Errors: ErrNotSymmetric, ErrNoConvergence, ErrMethodNotImplemented, plus
// matrix sentinels for nil input or a weight-vector length mismatch.
func Nearest(a *matrix.Dense, opts ...Option) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("Nearest: %w", err)
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("Nearest: %w", err)
	}
	// Strict symmetry gate: exact equality, no tolerance.
	if err := matrix.ValidateSymmetric(a, 0); err != nil {
		return nil, fmt.Errorf("Nearest: %w", ErrNotSymmetric)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.method == MethodNewton {
		return nil, fmt.Errorf("Nearest: %w", ErrMethodNotImplemented)
	}

	n := a.Rows()
	tol := o.tol
	if tol == 0 {
		tol = epsilon * tolEpsScale * float64(n)
	}
	weights := o.weights
	if weights == nil {
		weights = make([]float64, n)
		for i := range weights {
			weights[i] = 1.0
		}
	}
	if err := matrix.ValidateVecLen(weights, n); err != nil {
		return nil, fmt.Errorf("Nearest: weights: %w", err)
	}

	// Whalf[i,j] = sqrt(w_i * w_j): the two-sided diagonal weighting applied
	// elementwise before the SPD projection, undone elementwise after.
	wroot := make([]float64, n)
	for i, w := range weights {
		wroot[i] = math.Sqrt(w)
	}
	whalf, err := matrix.Outer(wroot, wroot)
	if err != nil {
		return nil, fmt.Errorf("Nearest: %w", err)
	}

	x := a.Clone().(*matrix.Dense)
	y := a.Clone().(*matrix.Dense)
	ds, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Nearest: %w", err)
	}

	relX := math.Inf(1)
	relY := math.Inf(1)
	relXY := math.Inf(1)

	for iteration := 0; math.Max(relX, math.Max(relY, relXY)) > tol; {
		iteration++
		if iteration > o.maxIter {
			return nil, fmt.Errorf("after %d iterations: %w", o.maxIter, ErrNoConvergence)
		}

		xold := x

		// Dykstra correction, then weighted projection onto the SPD cone.
		r, err := matrix.Sub(x, ds)
		if err != nil {
			return nil, fmt.Errorf("Nearest: %w", err)
		}
		rwtd, err := matrix.Hadamard(whalf, r)
		if err != nil {
			return nil, fmt.Errorf("Nearest: %w", err)
		}
		proj, err := projectSPD(rwtd)
		if err != nil {
			return nil, fmt.Errorf("Nearest: %w", err)
		}
		x, err = matrix.HadamardDiv(proj, whalf)
		if err != nil {
			return nil, fmt.Errorf("Nearest: %w", err)
		}

		// ds tracks the correction applied by the SPD projection.
		ds, err = matrix.Sub(x, r)
		if err != nil {
			return nil, fmt.Errorf("Nearest: %w", err)
		}

		// Projection onto the unit-diagonal constraint set.
		yold := y
		y = x.Clone().(*matrix.Dense)
		if err = matrix.FillDiagonal(y, 1.0); err != nil {
			return nil, fmt.Errorf("Nearest: %w", err)
		}

		normX, err := matrix.FrobeniusNorm(x)
		if err != nil {
			return nil, fmt.Errorf("Nearest: %w", err)
		}
		normY, err := matrix.FrobeniusNorm(y)
		if err != nil {
			return nil, fmt.Errorf("Nearest: %w", err)
		}
		dX, err := matrix.FrobeniusDistance(x, xold)
		if err != nil {
			return nil, fmt.Errorf("Nearest: %w", err)
		}
		dY, err := matrix.FrobeniusDistance(y, yold)
		if err != nil {
			return nil, fmt.Errorf("Nearest: %w", err)
		}
		dXY, err := matrix.FrobeniusDistance(y, x)
		if err != nil {
			return nil, fmt.Errorf("Nearest: %w", err)
		}
		relX = dX / normX
		relY = dY / normY
		relXY = dXY / normY

		x = y.Clone().(*matrix.Dense)
	}

	return x, nil
}

// projectSPD projects a symmetric matrix onto the cone of symmetric
// positive-semidefinite matrices: eigendecompose, clamp negative
// eigenvalues to zero, reconstruct. The result is symmetrized explicitly
// to counter floating-point asymmetry from the eigendecomposition
// round-trip.
func projectSPD(m *matrix.Dense) (*matrix.Dense, error) {
	n := m.Rows()
	eigs, q, err := matrix.Eigen(m, jacobiTol, jacobiIterPerCell*n*n)
	if err != nil {
		return nil, err
	}

	clamped := make([]float64, n)
	for i, d := range eigs {
		clamped[i] = math.Max(d, 0)
	}

	// out = Q · diag(clamped) · Qᵗ, built on the upper triangle and
	// mirrored, which keeps the result exactly symmetric.
	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			acc := 0.0
			for k := 0; k < n; k++ {
				qik, aerr := q.At(i, k)
				if aerr != nil {
					return nil, aerr
				}
				qjk, aerr := q.At(j, k)
				if aerr != nil {
					return nil, aerr
				}
				acc += qik * clamped[k] * qjk
			}
			if err = out.Set(i, j, acc); err != nil {
				return nil, err
			}
			if err = out.Set(j, i, acc); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
