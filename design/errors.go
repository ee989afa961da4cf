// SPDX-License-Identifier: MIT
// Package design: sentinel errors.
//
// Error policy (same contract as the numeric packages):
//   - Callers branch with errors.Is; context is attached with %w at the
//     call boundary, never baked into the sentinel.
//   - Numerical failures (nearcorr.ErrNoConvergence, nearcorr.ErrNotSymmetric,
//     matrix.ErrNotPositiveDefinite) propagate unmodified through Generate;
//     they are not re-tagged as configuration errors.

package design

import (
	"errors"
	"fmt"
)

// ErrConfig indicates a malformed or inconsistent configuration: empty
// sensitivity list, unknown design or sensitivity type, a correlation
// matrix whose dimension disagrees with its parameter list, a duplicate
// default key, or a parameter left with neither a sampled value nor a
// default. Recoverable by fixing the configuration; never retried here.
var ErrConfig = errors.New("design: invalid configuration")

// ErrTable indicates a design table that violates the output contract,
// e.g. an empty result handed to Summarize or a scalar sensitivity with
// more than two cases.
var ErrTable = errors.New("design: malformed design table")

// configErrorf builds an ErrConfig with call-site context.
func configErrorf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrConfig)
}

// tableErrorf builds an ErrTable with call-site context.
func tableErrorf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrTable)
}
