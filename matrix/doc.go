// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra primitives used by the
// design-matrix engine and the nearest-correlation projector.
//
// The package offers:
//
//   - Dense, a row-major float64 matrix with a flat backing slice.
//   - Elementwise kernels (Add, Sub, Hadamard, HadamardDiv, Scale) with
//     strict fail-fast shape validation.
//   - A symmetric Jacobi eigendecomposition (Eigen) used for projecting a
//     matrix onto the positive-semidefinite cone.
//   - A Cholesky factorization (Cholesky) and forward substitution
//     (SolveLower) used for correlated Monte Carlo sampling.
//   - Frobenius norms and small helpers (Outer, FillDiagonal, MatVec).
//
// Every kernel is deterministic: fixed loop orders, no data-dependent
// branching in accumulation, no global state. Identical inputs always yield
// bit-identical outputs, which the sampling engine depends on.
//
// All user-triggered failures are reported through package sentinel errors
// and matched with errors.Is; kernels never panic on bad input.
package matrix
