// SPDX-License-Identifier: MIT
// Package dist: sentinel errors.

package dist

import "errors"

// ErrBadParams indicates distribution parameters that violate the family's
// constraints (e.g. high <= low, non-positive standard deviation, negative
// weight). Wrapped with the offending detail at the call boundary.
var ErrBadParams = errors.New("dist: invalid distribution parameters")

// ErrBadProbability indicates a quantile argument outside [0,1].
var ErrBadProbability = errors.New("dist: probability outside [0,1]")

// ErrUnknownDist indicates an unrecognized distribution family name.
var ErrUnknownDist = errors.New("dist: unknown distribution")
