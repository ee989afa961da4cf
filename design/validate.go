// SPDX-License-Identifier: MIT
// Package design: configuration validation.
//
// Validate runs in full before any sampling, so Generate fails fast with
// ErrConfig naming the offending key and never returns a partial result.

package design

import "github.com/fjordtools/designkit/matrix"

// Validate checks a Config for structural consistency: known design and
// sensitivity types, non-empty sensitivity list, constructible
// distributions, correlation groups whose matrix dimension matches their
// parameter list, and no duplicate default keys between the main and
// background configurations. All failures wrap ErrConfig.
func Validate(cfg Config) error {
	switch cfg.DesignType {
	case OneByOne, FullMonteCarlo:
	default:
		return configErrorf("designtype %q unknown", cfg.DesignType)
	}
	if cfg.Repeats < 0 {
		return configErrorf("repeats %d must not be negative", cfg.Repeats)
	}
	if len(cfg.Sensitivities) == 0 {
		return configErrorf("sensitivities: at least one sensitivity required")
	}

	switch cfg.Seeds.Mode {
	case SeedNone, SeedDefault:
	case SeedExplicit:
		if len(cfg.Seeds.Values) == 0 {
			return configErrorf("seeds: explicit mode without values")
		}
	default:
		return configErrorf("seeds: mode %q unknown", cfg.Seeds.Mode)
	}

	seen := make(map[string]bool, len(cfg.Sensitivities))
	for _, s := range cfg.Sensitivities {
		if s.Name == "" {
			return configErrorf("sensitivity with empty name")
		}
		if seen[s.Name] {
			return configErrorf("sensitivity %q declared twice", s.Name)
		}
		seen[s.Name] = true

		if err := validateSensitivity(cfg, s); err != nil {
			return err
		}
	}

	if cfg.Background != nil {
		if err := validateParameters("background", cfg.Background.Parameters, cfg.Background.Correlations); err != nil {
			return err
		}
		for key := range cfg.Background.DefaultValues {
			if _, dup := cfg.DefaultValues[key]; dup {
				return configErrorf("defaultvalues: key %q declared in both main and background configuration", key)
			}
		}
	}

	return nil
}

func validateSensitivity(cfg Config, s Sensitivity) error {
	switch s.Type {
	case SensRef:
		return nil

	case SensSeed:
		if cfg.Seeds.Mode == SeedExplicit && len(cfg.Seeds.Values) < s.rowCount(cfg.repeats()) {
			return configErrorf("sensitivity %q: %d explicit seeds for %d rows",
				s.Name, len(cfg.Seeds.Values), s.rowCount(cfg.repeats()))
		}
		return nil

	case SensScenario:
		if len(s.Cases) == 0 {
			return configErrorf("sensitivity %q: scenario without cases", s.Name)
		}
		for _, c := range s.Cases {
			if c.Name == "" {
				return configErrorf("sensitivity %q: case with empty name", s.Name)
			}
			if len(c.Values) == 0 {
				return configErrorf("sensitivity %q: case %q has no overrides", s.Name, c.Name)
			}
		}
		return nil

	case SensDist:
		if len(s.Parameters) == 0 {
			return configErrorf("sensitivity %q: dist without parameters", s.Name)
		}
		return validateParameters(s.Name, s.Parameters, s.Correlations)

	case SensBackground:
		if cfg.Background == nil {
			return configErrorf("sensitivity %q: background senstype without a background configuration", s.Name)
		}
		return nil

	default:
		return configErrorf("sensitivity %q: senstype %q unknown", s.Name, s.Type)
	}
}

// validateParameters checks a parameter list and its correlation groups:
// every distribution must be constructible, group members must be declared
// parameters appearing in at most one group, and every group matrix must be
// square with dimension equal to its member count.
func validateParameters(owner string, params []Parameter, groups []CorrGroup) error {
	declared := make(map[string]bool, len(params))
	for _, p := range params {
		if p.Name == "" {
			return configErrorf("%s: parameter with empty name", owner)
		}
		if declared[p.Name] {
			return configErrorf("%s: parameter %q declared twice", owner, p.Name)
		}
		declared[p.Name] = true

		if _, err := p.distribution(); err != nil {
			return configErrorf("%s: parameter %q: %v", owner, p.Name, err)
		}
	}

	grouped := make(map[string]string, len(params))
	for _, g := range groups {
		if g.Name == "" {
			return configErrorf("%s: correlation group with empty name", owner)
		}
		if g.Matrix == nil {
			return configErrorf("%s: correlation group %q has no matrix", owner, g.Name)
		}
		if err := matrix.ValidateSquare(g.Matrix); err != nil {
			return configErrorf("%s: correlation group %q: %v", owner, g.Name, err)
		}
		if g.Matrix.Rows() != len(g.Parameters) {
			return configErrorf("%s: correlation group %q: %dx%d matrix for %d parameters",
				owner, g.Name, g.Matrix.Rows(), g.Matrix.Cols(), len(g.Parameters))
		}
		for _, name := range g.Parameters {
			if !declared[name] {
				return configErrorf("%s: correlation group %q references undeclared parameter %q", owner, g.Name, name)
			}
			if prev, ok := grouped[name]; ok {
				return configErrorf("%s: parameter %q in both correlation groups %q and %q", owner, name, prev, g.Name)
			}
			grouped[name] = g.Name
		}
	}

	return nil
}
