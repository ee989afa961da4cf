// SPDX-License-Identifier: MIT
// Package design: rank-based correlation induction.
//
// The Iman-Conover transform reorders each column of a sample matrix so
// the joint rank correlation approaches a target correlation matrix while
// every marginal distribution is preserved exactly (the output columns are
// permutations of the input columns). The engine uses it for RankCorr
// correlation groups; it is exported for standalone use on any sample set.

package design

import (
	"fmt"
	"math"
	"sort"

	"github.com/fjordtools/designkit/dist"
	"github.com/fjordtools/designkit/matrix"
)

// ImanConover returns a row-reordered copy of data (n×k samples, one
// column per variable) whose rank correlation approximates target (k×k).
//
// The method builds a van der Waerden score matrix ordered by the ranks of
// data, decorrelates it with the Cholesky factor of its own sample
// correlation, re-correlates with a PSD factor of target, and finally
// remaps each data column onto the ranks of the transformed scores. The
// score permutation is derived from the input ranks, so the transform is
// fully deterministic. A singular positive-semidefinite target is
// accepted; an indefinite one fails with matrix.ErrNotPositiveDefinite,
// as does a score correlation admitting no Cholesky factor.
func ImanConover(data, target *matrix.Dense) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(data); err != nil {
		return nil, err
	}
	if err := matrix.ValidateNotNil(target); err != nil {
		return nil, err
	}
	n, k := data.Rows(), data.Cols()
	if n < 2 {
		return nil, fmt.Errorf("ImanConover: need at least 2 rows, got %d: %w", n, matrix.ErrBadShape)
	}
	if target.Rows() != k || target.Cols() != k {
		return nil, fmt.Errorf("ImanConover: %dx%d target for %d columns: %w",
			target.Rows(), target.Cols(), k, matrix.ErrDimensionMismatch)
	}

	// Van der Waerden scores for ranks 0..n-1.
	scores := make([]float64, n)
	for i := range scores {
		scores[i] = dist.NormQuantile(float64(i+1) / float64(n+1))
	}

	// Score matrix M: column j carries the scores permuted by the ranks of
	// data's column j.
	m, err := matrix.NewDense(n, k)
	if err != nil {
		return nil, err
	}
	dataCols := make([][]float64, k)
	for j := 0; j < k; j++ {
		col := make([]float64, n)
		for i := 0; i < n; i++ {
			if col[i], err = data.At(i, j); err != nil {
				return nil, err
			}
		}
		dataCols[j] = col
		for i, r := range rankOrder(col) {
			if err = m.Set(i, j, scores[r]); err != nil {
				return nil, err
			}
		}
	}

	e, err := corrMatrix(m)
	if err != nil {
		return nil, err
	}
	f, err := matrix.Cholesky(e)
	if err != nil {
		return nil, fmt.Errorf("ImanConover: score correlation: %w", err)
	}
	p, err := matrix.FactorPSD(target)
	if err != nil {
		return nil, fmt.Errorf("ImanConover: target correlation: %w", err)
	}

	// T = M·F⁻ᵀ·Pᵀ, row by row: solve F·w = mᵢ, then tᵢ = P·w.
	tcols := make([][]float64, k)
	for j := range tcols {
		tcols[j] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		mi, rerr := m.Row(i)
		if rerr != nil {
			return nil, rerr
		}
		w, serr := matrix.SolveLower(f, mi)
		if serr != nil {
			return nil, serr
		}
		t, merr := matrix.MatVec(p, w)
		if merr != nil {
			return nil, merr
		}
		for j := 0; j < k; j++ {
			tcols[j][i] = t[j]
		}
	}

	// Remap: each output column is the sorted data column arranged by the
	// ranks of the transformed scores.
	out, err := matrix.NewDense(n, k)
	if err != nil {
		return nil, err
	}
	for j := 0; j < k; j++ {
		sorted := append([]float64(nil), dataCols[j]...)
		sort.Float64s(sorted)
		for i, r := range rankOrder(tcols[j]) {
			if err = out.Set(i, j, sorted[r]); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// rankOrder returns the 0-based rank of every element, ties broken by
// original position (stable).
func rankOrder(x []float64) []int {
	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return x[idx[a]] < x[idx[b]] })

	rk := make([]int, len(x))
	for r, i := range idx {
		rk[i] = r
	}
	return rk
}

// corrMatrix computes the sample Pearson correlation of m's columns.
func corrMatrix(m *matrix.Dense) (*matrix.Dense, error) {
	n, k := m.Rows(), m.Cols()

	cols := make([][]float64, k)
	means := make([]float64, k)
	for j := 0; j < k; j++ {
		col := make([]float64, n)
		sum := 0.0
		for i := 0; i < n; i++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			col[i] = v
			sum += v
		}
		cols[j] = col
		means[j] = sum / float64(n)
	}

	sd := make([]float64, k)
	for j := 0; j < k; j++ {
		acc := 0.0
		for i := 0; i < n; i++ {
			d := cols[j][i] - means[j]
			acc += d * d
		}
		if acc == 0 {
			return nil, fmt.Errorf("corrMatrix: column %d has zero variance: %w", j, matrix.ErrDivideByZero)
		}
		sd[j] = math.Sqrt(acc)
	}

	out, err := matrix.NewDense(k, k)
	if err != nil {
		return nil, err
	}
	for a := 0; a < k; a++ {
		for b := a; b < k; b++ {
			acc := 0.0
			for i := 0; i < n; i++ {
				acc += (cols[a][i] - means[a]) * (cols[b][i] - means[b])
			}
			r := acc / (sd[a] * sd[b])
			if a == b {
				r = 1
			}
			if err = out.Set(a, b, r); err != nil {
				return nil, err
			}
			if err = out.Set(b, a, r); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
