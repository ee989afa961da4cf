// SPDX-License-Identifier: MIT

// Package dist provides the quantile (inverse CDF) side of the probability
// distributions the design engine samples from: constant, uniform,
// loguniform, normal, truncated normal, lognormal, triangular, PERT and
// finite weighted discrete choice.
//
// Every distribution validates its parameters at construction and exposes
// Quantile(p), mapping a probability p ∈ [0,1] to a sample value. Sampling
// is therefore always "draw a uniform, push it through the quantile", which
// is what makes correlated sampling work: correlated standard normals are
// mapped through Φ to correlated uniforms and then through each parameter's
// own quantile, preserving the intended correlation structure while keeping
// the declared marginals.
//
// All numeric kernels (normal quantile, regularized incomplete beta and its
// inverse) are deterministic pure-Go implementations; identical inputs give
// bit-identical outputs on every run.
//
// This is intentionally not a general-purpose statistics package: only the
// families and operations the design engine needs are present.
package dist
