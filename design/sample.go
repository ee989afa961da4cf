// SPDX-License-Identifier: MIT
// Package design: deterministic sampling kernels.
//
// Independent parameters draw one standard normal per (parameter, repeat)
// stream and map it through Φ and the parameter's quantile, so a value
// never depends on how many other parameters exist or in which order they
// are evaluated. Correlated groups draw one normal vector per repeat from
// the group's stream and induce correlation either through a PSD factor
// of the repaired matrix or through the Iman-Conover transform.

package design

import (
	"github.com/fjordtools/designkit/dist"
	"github.com/fjordtools/designkit/matrix"
	"github.com/fjordtools/designkit/nearcorr"
)

// backgroundScope keys background streams apart from sensitivity streams.
const backgroundScope = "background"

// sampleIndependent draws n values for one parameter within the given
// scope (sensitivity name or backgroundScope).
func sampleIndependent(seed int64, scope string, p Parameter, n int) ([]float64, error) {
	d, err := p.distribution()
	if err != nil {
		return nil, configErrorf("parameter %q: %v", p.Name, err)
	}

	out := make([]float64, n)
	for r := 0; r < n; r++ {
		z := newStream(seed, scope, p.Name, repeatKey(r)).NormFloat64()
		v, qerr := d.Quantile(dist.NormCDF(z))
		if qerr != nil {
			return nil, qerr
		}
		out[r] = v
	}

	return out, nil
}

// sampleGroup draws n jointly correlated values for every member of a
// correlation group. The declared target matrix is repaired through
// nearcorr first; nearcorr and matrix failures propagate unmodified.
func sampleGroup(distSeed int64, scope string, params []Parameter, g CorrGroup, n int) (map[string][]float64, error) {
	repaired, err := nearcorr.Nearest(g.Matrix)
	if err != nil {
		return nil, err
	}

	dists := make([]dist.Distribution, len(g.Parameters))
	for i, name := range g.Parameters {
		p, ok := lookupParameter(params, name)
		if !ok {
			return nil, configErrorf("correlation group %q references undeclared parameter %q", g.Name, name)
		}
		if dists[i], err = p.distribution(); err != nil {
			return nil, configErrorf("parameter %q: %v", name, err)
		}
	}

	if g.RankCorr {
		return sampleGroupRank(distSeed, scope, g, repaired, dists, n)
	}

	// The repaired matrix may sit on the PSD cone boundary, so the factor
	// must tolerate zero eigenvalues; it is not necessarily triangular.
	b, err := matrix.FactorPSD(repaired)
	if err != nil {
		return nil, err
	}
	k := len(g.Parameters)
	brows := make([][]float64, k)
	for i := range brows {
		if brows[i], err = b.Row(i); err != nil {
			return nil, err
		}
	}

	cols := make(map[string][]float64, k)
	for _, name := range g.Parameters {
		cols[name] = make([]float64, n)
	}

	z := make([]float64, k)
	for r := 0; r < n; r++ {
		st := newStream(g.seed(distSeed), scope, g.Name, repeatKey(r))
		for i := range z {
			z[i] = st.NormFloat64()
		}
		for i := 0; i < k; i++ {
			y := 0.0
			for j := 0; j < k; j++ {
				y += brows[i][j] * z[j]
			}
			v, qerr := dists[i].Quantile(dist.NormCDF(y))
			if qerr != nil {
				return nil, qerr
			}
			cols[g.Parameters[i]][r] = v
		}
	}

	return cols, nil
}

// sampleGroupRank samples every group member independently and then
// induces the repaired correlation with the rank-preserving Iman-Conover
// transform, keeping each marginal exactly as drawn.
func sampleGroupRank(distSeed int64, scope string, g CorrGroup, target *matrix.Dense, dists []dist.Distribution, n int) (map[string][]float64, error) {
	k := len(g.Parameters)
	data, err := matrix.NewDense(n, k)
	if err != nil {
		return nil, err
	}
	for i, name := range g.Parameters {
		for r := 0; r < n; r++ {
			z := newStream(g.seed(distSeed), scope, g.Name, name, repeatKey(r)).NormFloat64()
			v, qerr := dists[i].Quantile(dist.NormCDF(z))
			if qerr != nil {
				return nil, qerr
			}
			if err = data.Set(r, i, v); err != nil {
				return nil, err
			}
		}
	}

	transformed, err := ImanConover(data, target)
	if err != nil {
		return nil, err
	}

	cols := make(map[string][]float64, k)
	for i, name := range g.Parameters {
		col := make([]float64, n)
		for r := 0; r < n; r++ {
			if col[r], err = transformed.At(r, i); err != nil {
				return nil, err
			}
		}
		cols[name] = col
	}

	return cols, nil
}

func lookupParameter(params []Parameter, name string) (Parameter, bool) {
	for _, p := range params {
		if p.Name == name {
			return p, true
		}
	}
	return Parameter{}, false
}
