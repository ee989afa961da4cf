// SPDX-License-Identifier: MIT

// Package nearcorr computes the nearest correlation matrix to a symmetric
// input matrix, in the (optionally weighted) Frobenius norm, using Higham's
// alternating-projections algorithm (IMA J. Numer. Anal. 22, 2002).
//
// A user-declared correlation matrix is often not a valid one: hand-edited
// pairwise entries or numerical noise easily break positive
// semidefiniteness. Nearest repairs such a matrix into the closest valid
// correlation matrix (symmetric, positive semidefinite, unit diagonal)
// before it is handed to a Cholesky-based sampler.
//
// The algorithm alternates between two projections: onto the cone of
// symmetric positive-semidefinite matrices (via eigendecomposition with
// negative eigenvalues clamped to zero) and onto the set of matrices with
// unit diagonal, with a Dykstra-style correction term carried between
// iterations. Convergence is declared when three relative Frobenius
// differences all drop below the tolerance.
//
// The input symmetry check is exact, not tolerance-based: callers rely on
// catching asymmetric input early, before any expensive iteration runs.
//
//	repaired, err := nearcorr.Nearest(m)
//	if errors.Is(err, nearcorr.ErrNoConvergence) {
//	    // loosen tol or raise the iteration cap
//	}
package nearcorr
