// SPDX-License-Identifier: MIT
// Package design: configuration and result model.
//
// Config and everything it contains is treated as immutable once built:
// Generate never mutates its input, and a DesignResult is constructed
// wholesale per call, so independent Generate calls never interfere.

package design

import (
	"sort"
	"strings"

	"github.com/fjordtools/designkit/dist"
	"github.com/fjordtools/designkit/matrix"
)

// DesignType selects how declared sensitivities turn into rows.
type DesignType string

const (
	// OneByOne emits each sensitivity's rows in declaration order, all
	// other parameters held at default.
	OneByOne DesignType = "onebyone"

	// FullMonteCarlo samples all dist sensitivities jointly over one shared
	// set of rows.
	FullMonteCarlo DesignType = "montecarlo"
)

// SensType classifies a sensitivity.
type SensType string

const (
	// SensRef is the reference case: defaults only, no variation.
	SensRef SensType = "ref"

	// SensSeed sweeps the seed column through a deterministic sequence.
	SensSeed SensType = "seed"

	// SensScenario emits one row per named case with explicit overrides.
	SensScenario SensType = "scenario"

	// SensDist samples its parameters from declared distributions,
	// independently or under a correlation group.
	SensDist SensType = "dist"

	// SensBackground emits rows whose only variation comes from the
	// background configuration.
	SensBackground SensType = "background"
)

// SeedMode controls the reproducibility-seed column.
type SeedMode string

const (
	// SeedNone omits the seed column entirely.
	SeedNone SeedMode = ""

	// SeedDefault derives seed values as Origin plus the within-sensitivity
	// row index.
	SeedDefault SeedMode = "default"

	// SeedExplicit takes seed values verbatim from SeedPolicy.Values.
	SeedExplicit SeedMode = "explicit"
)

// Defaults for the seed column.
const (
	DefaultSeedName   = "RMS_SEED"
	DefaultSeedOrigin = 1000
)

// SeedPolicy describes the seed column added to every realization when
// Mode is not SeedNone. Values are indexed by the row's position within
// its sensitivity, so every sensitivity sees the same seed sequence.
type SeedPolicy struct {
	Mode   SeedMode
	Name   string // column name; DefaultSeedName when empty
	Origin int    // first derived seed; DefaultSeedOrigin when 0
	Values []int  // explicit seeds, SeedExplicit only
}

func (p SeedPolicy) columnName() string {
	if p.Name == "" {
		return DefaultSeedName
	}
	return p.Name
}

func (p SeedPolicy) origin() int {
	if p.Origin == 0 {
		return DefaultSeedOrigin
	}
	return p.Origin
}

// seedAt returns the seed for within-sensitivity row index i.
func (p SeedPolicy) seedAt(i int) (int, error) {
	if p.Mode == SeedExplicit {
		if i >= len(p.Values) {
			return 0, configErrorf("seeds: %d explicit values cover fewer rows than requested", len(p.Values))
		}
		return p.Values[i], nil
	}
	return p.origin() + i, nil
}

// Parameter declares one uncertain parameter and its marginal distribution.
// Family and Params follow the dist.New contract; discrete parameters carry
// Values/Weights instead of Params.
type Parameter struct {
	Name    string
	Family  string
	Params  []float64
	Values  []float64 // discrete family only
	Weights []float64 // discrete family only; nil means equal
}

// distribution builds the marginal from the declared family.
func (p Parameter) distribution() (dist.Distribution, error) {
	if strings.EqualFold(strings.TrimSpace(p.Family), dist.FamilyDiscrete) {
		return dist.NewDiscrete(p.Values, p.Weights)
	}
	return dist.New(p.Family, p.Params)
}

// ScenarioCase is one named case of a scenario sensitivity: explicit
// parameter overrides, no sampling.
type ScenarioCase struct {
	Name   string
	Values map[string]float64
}

// paramNames returns the case's parameter names in sorted order, so the
// resulting column layout is deterministic.
func (c ScenarioCase) paramNames() []string {
	names := make([]string, 0, len(c.Values))
	for name := range c.Values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CorrGroup declares a joint correlation structure over a subset of a
// sensitivity's parameters. Invariant: Matrix is square with dimension
// len(Parameters); row/column i corresponds to Parameters[i].
type CorrGroup struct {
	Name       string
	Parameters []string
	Matrix     *matrix.Dense
	Seed       int64 // distribution seed; falls back to Config.DistSeed when 0

	// RankCorr switches correlation induction from the Cholesky transform
	// of standard normals to the rank-based Iman-Conover refinement, which
	// preserves marginals exactly.
	RankCorr bool
}

func (g CorrGroup) seed(fallback int64) int64 {
	if g.Seed != 0 {
		return g.Seed
	}
	return fallback
}

// Sensitivity is one named group of realizations sharing a sampling or
// override rule. Which fields apply depends on Type:
//
//	SensRef        — none (defaults only)
//	SensSeed       — SeedName (optional column-name override)
//	SensScenario   — Cases
//	SensDist       — Parameters, Correlations
//	SensBackground — none (background config supplies the variation)
type Sensitivity struct {
	Name         string
	Type         SensType
	SeedName     string
	Parameters   []Parameter
	Cases        []ScenarioCase
	Correlations []CorrGroup

	// Repeats overrides Config.Repeats for this sensitivity when > 0.
	Repeats int
}

// rowCount is the number of rows this sensitivity emits in a one-by-one
// design, given the effective global repeat count.
func (s Sensitivity) rowCount(globalRepeats int) int {
	n := globalRepeats
	if s.Repeats > 0 {
		n = s.Repeats
	}
	switch s.Type {
	case SensRef:
		if s.Repeats > 0 {
			return s.Repeats
		}
		return 1
	case SensScenario:
		return len(s.Cases)
	default:
		return n
	}
}

// parameter looks up a declared parameter by name.
func (s Sensitivity) parameter(name string) (Parameter, bool) {
	for _, p := range s.Parameters {
		if p.Name == name {
			return p, true
		}
	}
	return Parameter{}, false
}

// Background declares parameters varied identically across all
// realizations regardless of which sensitivity produced them (shared
// geological seeds and the like). Rows at the same within-sensitivity
// index receive the same background values.
type Background struct {
	Parameters    []Parameter
	Correlations  []CorrGroup
	DefaultValues map[string]float64
}

// Config is the complete declarative input to Generate.
type Config struct {
	DesignType    DesignType
	Seeds         SeedPolicy
	Repeats       int // rows per seed/dist sensitivity; 0 means 1
	DistSeed      int64
	DefaultValues map[string]float64
	Sensitivities []Sensitivity // declaration order is part of the contract
	Background    *Background
}

func (c Config) repeats() int {
	if c.Repeats < 1 {
		return 1
	}
	return c.Repeats
}

// Reserved bookkeeping column names, in fixed leading positions.
const (
	ColReal     = "REAL"
	ColSensName = "SENSNAME"
	ColSensCase = "SENSCASE"
)

// SENSCASE labels attached by the engine. CaseBackground marks rows that
// carry only shared background variation; Summarize skips them, whatever
// the sensitivity is named, and the marker survives a CSV round trip.
const (
	CaseRef        = "ref"
	CaseMonteCarlo = "p10_p90"
	CaseBackground = "skip"
)

// Realization is one output row.
type Realization struct {
	Real     int
	SensName string
	SensCase string
	Values   map[string]float64
}

// DesignResult is the assembled design matrix. Constructed once per
// Generate call and immutable afterward.
type DesignResult struct {
	// Rows in emission order; Rows[i].Real == i.
	Rows []Realization

	// Columns is the full ordered column list: REAL, SENSNAME, SENSCASE,
	// then parameter columns in first-declared order.
	Columns []string

	// DefaultValues is the merged default mapping, retained for audit and
	// export.
	DefaultValues map[string]float64
}

// ParamColumns returns the parameter columns, i.e. Columns without the
// three bookkeeping columns.
func (r *DesignResult) ParamColumns() []string {
	if len(r.Columns) <= 3 {
		return nil
	}
	return r.Columns[3:]
}

// Column extracts one parameter column in row order.
func (r *DesignResult) Column(name string) ([]float64, error) {
	out := make([]float64, len(r.Rows))
	for i, row := range r.Rows {
		v, ok := row.Values[name]
		if !ok {
			return nil, tableErrorf("row %d has no value for %q", i, name)
		}
		out[i] = v
	}
	return out, nil
}
