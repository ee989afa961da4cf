// SPDX-License-Identifier: MIT

// Package designio is the boundary layer around the design engine: a YAML
// loader for the declarative configuration and CSV serialization of the
// generated design matrix.
//
// The YAML loader walks raw document nodes instead of decoding into maps,
// because sensitivity (and parameter, and case) declaration order is part
// of the engine's output contract and Go map decoding would destroy it.
//
// No business logic lives here: structural validation beyond basic syntax
// is design.Validate's job.
package designio
