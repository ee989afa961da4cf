// SPDX-License-Identifier: MIT
// Package design: one-by-one design summaries.
//
// Summarize condenses a generated (or re-read) design table into one entry
// per sensitivity: its kind and the REAL ranges of its cases. The summary
// is what tornado post-processing keys on to pair low/high cases.

package design

// Summary sensitivity kinds.
const (
	SummaryMC     = "mc"     // Monte Carlo style rows (SENSCASE "p10_p90")
	SummaryRef    = "ref"    // reference case
	SummaryScalar = "scalar" // scenario cases, at most two
)

// SummaryCase is one case of a summarized sensitivity and its contiguous
// REAL range.
type SummaryCase struct {
	Name      string
	StartReal int
	EndReal   int
}

// SummaryRow summarizes one sensitivity.
type SummaryRow struct {
	SensNo   int // 1-based position among summarized sensitivities
	SensName string
	SensType string
	Cases    []SummaryCase
}

// Summarize walks a design table in row order and produces one SummaryRow
// per sensitivity. Sensitivities whose rows carry the CaseBackground
// SENSCASE are skipped regardless of their name: they hold shared
// background variation, not a rankable sensitivity. A scalar sensitivity
// with more than two cases fails with ErrTable, since tornado pairing is
// only defined for low/high case pairs.
func Summarize(res *DesignResult) ([]SummaryRow, error) {
	if res == nil || len(res.Rows) == 0 {
		return nil, tableErrorf("empty design table")
	}

	var out []SummaryRow
	i := 0
	for i < len(res.Rows) {
		name := res.Rows[i].SensName

		var cases []SummaryCase
		for i < len(res.Rows) && res.Rows[i].SensName == name {
			caseName := res.Rows[i].SensCase
			start := res.Rows[i].Real
			end := start
			for i < len(res.Rows) && res.Rows[i].SensName == name && res.Rows[i].SensCase == caseName {
				end = res.Rows[i].Real
				i++
			}
			cases = append(cases, SummaryCase{Name: caseName, StartReal: start, EndReal: end})
		}

		if hasCase(cases, CaseBackground) {
			continue
		}

		kind := SummaryScalar
		switch {
		case hasCase(cases, CaseMonteCarlo):
			kind = SummaryMC
		case name == CaseRef || hasCase(cases, CaseRef):
			kind = SummaryRef
		}
		if kind == SummaryScalar && len(cases) > 2 {
			return nil, tableErrorf("sensitivity %q has %d cases, at most two supported", name, len(cases))
		}

		out = append(out, SummaryRow{
			SensNo:   len(out) + 1,
			SensName: name,
			SensType: kind,
			Cases:    cases,
		})
	}

	return out, nil
}

func hasCase(cases []SummaryCase, name string) bool {
	for _, c := range cases {
		if c.Name == name {
			return true
		}
	}
	return false
}
