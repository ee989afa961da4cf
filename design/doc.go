// SPDX-License-Identifier: MIT

// Package design turns a declarative experiment configuration into a design
// matrix: one row per realization, one column per declared parameter, plus
// the REAL / SENSNAME / SENSCASE bookkeeping columns downstream ensemble
// tooling depends on.
//
// Two design types are supported:
//
//   - OneByOne varies one sensitivity at a time while holding everything
//     else at its default value (tornado-style designs). Row order follows
//     sensitivity declaration order.
//   - FullMonteCarlo samples all declared dist sensitivities jointly over a
//     shared set of rows.
//
// Sampling is fully deterministic: every drawn value comes from a
// pseudo-random stream keyed by (seed, sensitivity, parameter, repeat), so
// regenerating from the same Config reproduces the table bit for bit and no
// process entropy is ever consulted. Correlated groups are repaired through
// nearcorr before sampling and induced either by Cholesky transformation of
// standard normals or by the rank-based Iman-Conover transform.
//
// Generate never returns a partial result: configuration problems surface
// as ErrConfig before any sampling, and numerical failures propagate from
// the matrix and nearcorr packages unmodified.
package design
