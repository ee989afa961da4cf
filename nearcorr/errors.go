// SPDX-License-Identifier: MIT
// Package nearcorr: sentinel errors.
//
// Error policy (explicit and strict):
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Sentinels are never wrapped with formatted strings at definition site;
//     context is attached with %w at the call boundary.
//   - The algorithm never panics at runtime; validation panics are confined
//     to option constructors (WithX...) on programmer error.

package nearcorr

import "errors"

// ErrNotSymmetric indicates the input matrix failed the exact symmetry
// check. The projector refuses asymmetric input outright instead of
// symmetrizing silently.
// Usage: if errors.Is(err, ErrNotSymmetric) { /* fix the input matrix */ }.
var ErrNotSymmetric = errors.New("nearcorr: input matrix is not symmetric")

// ErrNoConvergence indicates the alternating projections did not reach the
// tolerance within the iteration budget. Callers should loosen the
// tolerance, raise the cap, or treat the correlation request as infeasible.
var ErrNoConvergence = errors.New("nearcorr: no convergence")

// ErrMethodNotImplemented marks the alternative projection method that
// exists on the interface surface but is intentionally unsupported.
var ErrMethodNotImplemented = errors.New("nearcorr: projection method not implemented")
