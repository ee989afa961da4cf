// SPDX-License-Identifier: MIT
// Package design: the generation engine.
//
// Generate is the single entry point. It validates the whole configuration
// first, emits rows per sensitivity in declaration order (or one shared
// block for montecarlo designs), assigns the seed column, merges background
// values, fills defaults, and renumbers REAL into the contiguous 0..n-1
// sequence the output contract requires. Generation is all-or-nothing: any
// failure returns a nil result.

package design

import "sort"

// Generate turns a Config into a DesignResult.
//
// Configuration problems yield ErrConfig before any sampling; numerical
// failures (nearcorr.ErrNotSymmetric, nearcorr.ErrNoConvergence,
// matrix.ErrNotPositiveDefinite) propagate unmodified.
func Generate(cfg Config) (*DesignResult, error) {
	if err := Validate(cfg); err != nil {
		return nil, err
	}

	defaults, err := mergeDefaults(cfg)
	if err != nil {
		return nil, err
	}

	// Rows grouped per sensitivity; the per-group Sensitivity drives the
	// seed and background merge rules below.
	var (
		groups [][]Realization
		owners []Sensitivity
	)
	if cfg.DesignType == FullMonteCarlo {
		rows, mcErr := emitMonteCarlo(cfg)
		if mcErr != nil {
			return nil, mcErr
		}
		groups = [][]Realization{rows}
		owners = []Sensitivity{{}}
	} else {
		for _, s := range cfg.Sensitivities {
			rows, sErr := emitSensitivity(cfg, s)
			if sErr != nil {
				return nil, sErr
			}
			groups = append(groups, rows)
			owners = append(owners, s)
		}
	}

	// Seed column: every row gets the seed for its within-sensitivity
	// index, unless a seed sweep already set it.
	if cfg.Seeds.Mode != SeedNone {
		name := cfg.Seeds.columnName()
		for _, rows := range groups {
			for i := range rows {
				if _, ok := rows[i].Values[name]; ok {
					continue
				}
				v, sErr := cfg.Seeds.seedAt(i)
				if sErr != nil {
					return nil, sErr
				}
				rows[i].Values[name] = float64(v)
			}
		}
	}

	// Background values: identical per within-sensitivity index across all
	// groups; only an explicit scenario override shadows them.
	if cfg.Background != nil {
		maxRows := 0
		for _, rows := range groups {
			if len(rows) > maxRows {
				maxRows = len(rows)
			}
		}
		bg, bgErr := resolveBackground(cfg, maxRows)
		if bgErr != nil {
			return nil, bgErr
		}
		for gi, rows := range groups {
			owner := owners[gi]
			for i := range rows {
				for name, col := range bg {
					if owner.Type == SensScenario && caseOverrides(owner, rows[i].SensCase, name) {
						continue
					}
					rows[i].Values[name] = col[i]
				}
			}
		}
	}

	columns := collectColumns(cfg, defaults)

	var all []Realization
	for _, rows := range groups {
		all = append(all, rows...)
	}
	for i := range all {
		all[i].Real = i
		for _, name := range columns[3:] {
			if _, ok := all[i].Values[name]; ok {
				continue
			}
			dv, ok := defaults[name]
			if !ok {
				return nil, configErrorf("row %d: parameter %q has neither a sampled value nor a default", i, name)
			}
			all[i].Values[name] = dv
		}
	}

	return &DesignResult{Rows: all, Columns: columns, DefaultValues: defaults}, nil
}

// emitSensitivity produces one sensitivity's rows for a one-by-one design.
// REAL indices are assigned later, after all groups are emitted.
func emitSensitivity(cfg Config, s Sensitivity) ([]Realization, error) {
	switch s.Type {
	case SensRef:
		return newRows(s.rowCount(cfg.repeats()), s.Name, CaseRef), nil

	case SensBackground:
		return newRows(s.rowCount(cfg.repeats()), s.Name, CaseBackground), nil

	case SensSeed:
		rows := newRows(s.rowCount(cfg.repeats()), s.Name, CaseMonteCarlo)
		name := seedColumn(cfg, s)
		for i := range rows {
			v, err := cfg.Seeds.seedAt(i)
			if err != nil {
				return nil, err
			}
			rows[i].Values[name] = float64(v)
		}
		return rows, nil

	case SensScenario:
		rows := make([]Realization, 0, len(s.Cases))
		for _, c := range s.Cases {
			r := Realization{
				SensName: s.Name,
				SensCase: c.Name,
				Values:   make(map[string]float64, len(c.Values)),
			}
			for k, v := range c.Values {
				r.Values[k] = v
			}
			rows = append(rows, r)
		}
		return rows, nil

	case SensDist:
		rows := newRows(s.rowCount(cfg.repeats()), s.Name, CaseMonteCarlo)
		if err := sampleInto(cfg, s, rows); err != nil {
			return nil, err
		}
		return rows, nil

	default:
		// Unreachable after Validate.
		return nil, configErrorf("sensitivity %q: senstype %q unknown", s.Name, s.Type)
	}
}

// emitMonteCarlo produces the single shared row block of a montecarlo
// design: every dist sensitivity samples its columns into the same rows.
// SENSNAME is taken from the first declared sensitivity.
func emitMonteCarlo(cfg Config) ([]Realization, error) {
	claimed := make(map[string]string)
	for _, s := range cfg.Sensitivities {
		if s.Type != SensDist {
			return nil, configErrorf("sensitivity %q: senstype %q not allowed in a montecarlo design", s.Name, s.Type)
		}
		for _, p := range s.Parameters {
			if prev, dup := claimed[p.Name]; dup {
				return nil, configErrorf("parameter %q declared in both sensitivities %q and %q", p.Name, prev, s.Name)
			}
			claimed[p.Name] = s.Name
		}
	}

	rows := newRows(cfg.repeats(), cfg.Sensitivities[0].Name, CaseMonteCarlo)
	for _, s := range cfg.Sensitivities {
		if err := sampleInto(cfg, s, rows); err != nil {
			return nil, err
		}
	}
	return rows, nil
}

// sampleInto draws all of a dist sensitivity's columns into rows:
// correlated groups first, then every ungrouped parameter independently.
func sampleInto(cfg Config, s Sensitivity, rows []Realization) error {
	n := len(rows)
	grouped := make(map[string]bool)
	for _, g := range s.Correlations {
		cols, err := sampleGroup(cfg.DistSeed, s.Name, s.Parameters, g, n)
		if err != nil {
			return err
		}
		for name, col := range cols {
			grouped[name] = true
			for i := range rows {
				rows[i].Values[name] = col[i]
			}
		}
	}
	for _, p := range s.Parameters {
		if grouped[p.Name] {
			continue
		}
		col, err := sampleIndependent(cfg.DistSeed, s.Name, p, n)
		if err != nil {
			return err
		}
		for i := range rows {
			rows[i].Values[p.Name] = col[i]
		}
	}
	return nil
}

// resolveBackground samples every background parameter to n values, so row
// index i carries the same background values in every sensitivity.
func resolveBackground(cfg Config, n int) (map[string][]float64, error) {
	bg := cfg.Background
	out := make(map[string][]float64)

	grouped := make(map[string]bool)
	for _, g := range bg.Correlations {
		cols, err := sampleGroup(cfg.DistSeed, backgroundScope, bg.Parameters, g, n)
		if err != nil {
			return nil, err
		}
		for name, col := range cols {
			grouped[name] = true
			out[name] = col
		}
	}
	for _, p := range bg.Parameters {
		if grouped[p.Name] {
			continue
		}
		col, err := sampleIndependent(cfg.DistSeed, backgroundScope, p, n)
		if err != nil {
			return nil, err
		}
		out[p.Name] = col
	}

	return out, nil
}

// mergeDefaults unions the main and background default mappings; a key in
// both is a configuration error, never a silent overwrite.
func mergeDefaults(cfg Config) (map[string]float64, error) {
	out := make(map[string]float64, len(cfg.DefaultValues))
	for k, v := range cfg.DefaultValues {
		out[k] = v
	}
	if cfg.Background != nil {
		for k, v := range cfg.Background.DefaultValues {
			if _, dup := out[k]; dup {
				return nil, configErrorf("defaultvalues: key %q declared in both main and background configuration", k)
			}
			out[k] = v
		}
	}
	return out, nil
}

// collectColumns assembles the ordered column list: bookkeeping columns,
// the seed column, parameters in declaration order (scenario case keys
// sorted within a case), background parameters, then default-only
// parameters sorted by name.
func collectColumns(cfg Config, defaults map[string]float64) []string {
	cols := []string{ColReal, ColSensName, ColSensCase}
	seen := make(map[string]bool)
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			cols = append(cols, name)
		}
	}

	if cfg.Seeds.Mode != SeedNone {
		add(cfg.Seeds.columnName())
	}
	for _, s := range cfg.Sensitivities {
		switch s.Type {
		case SensSeed:
			add(seedColumn(cfg, s))
		case SensScenario:
			for _, c := range s.Cases {
				for _, name := range c.paramNames() {
					add(name)
				}
			}
		case SensDist:
			for _, p := range s.Parameters {
				add(p.Name)
			}
		}
	}
	if cfg.Background != nil {
		for _, p := range cfg.Background.Parameters {
			add(p.Name)
		}
	}

	rest := make([]string, 0, len(defaults))
	for name := range defaults {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		add(name)
	}

	return cols
}

// seedColumn resolves the column name a seed sweep writes to.
func seedColumn(cfg Config, s Sensitivity) string {
	if s.SeedName != "" {
		return s.SeedName
	}
	return cfg.Seeds.columnName()
}

// caseOverrides reports whether the named scenario case explicitly sets
// the parameter, shadowing any background value.
func caseOverrides(s Sensitivity, caseName, param string) bool {
	for _, c := range s.Cases {
		if c.Name == caseName {
			_, ok := c.Values[param]
			return ok
		}
	}
	return false
}

func newRows(n int, sensName, sensCase string) []Realization {
	rows := make([]Realization, n)
	for i := range rows {
		rows[i] = Realization{
			SensName: sensName,
			SensCase: sensCase,
			Values:   make(map[string]float64),
		}
	}
	return rows
}
