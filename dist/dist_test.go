// SPDX-License-Identifier: MIT
// Package dist_test exercises quantile correctness for every family and the
// factory's error contract.

package dist_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fjordtools/designkit/dist"
)

func TestNormQuantileReferenceValues(t *testing.T) {
	// Standard normal reference quantiles.
	for _, tc := range []struct{ p, want float64 }{
		{0.5, 0},
		{0.975, 1.959963984540054},
		{0.025, -1.959963984540054},
		{0.8413447460685429, 1.0}, // Φ(1)
		{0.99, 2.3263478740408408},
		{0.001, -3.090232306167813},
	} {
		require.InDelta(t, tc.want, dist.NormQuantile(tc.p), 1e-9, "p=%v", tc.p)
	}

	require.True(t, math.IsInf(dist.NormQuantile(0), -1))
	require.True(t, math.IsInf(dist.NormQuantile(1), 1))
	require.True(t, math.IsNaN(dist.NormQuantile(-0.1)))
}

func TestNormQuantileRoundTrip(t *testing.T) {
	for _, p := range []float64{1e-6, 0.01, 0.2, 0.5, 0.73, 0.99, 1 - 1e-6} {
		require.InDelta(t, p, dist.NormCDF(dist.NormQuantile(p)), 1e-12, "p=%v", p)
	}
}

func TestUniformQuantile(t *testing.T) {
	u, err := dist.NewUniform(10, 20)
	require.NoError(t, err)

	for _, tc := range []struct{ p, want float64 }{
		{0, 10}, {0.5, 15}, {1, 20},
	} {
		v, qerr := u.Quantile(tc.p)
		require.NoError(t, qerr)
		require.Equal(t, tc.want, v)
	}

	_, err = dist.NewUniform(5, 5)
	require.ErrorIs(t, err, dist.ErrBadParams)
}

func TestLogUniformQuantile(t *testing.T) {
	l, err := dist.NewLogUniform(1, 100)
	require.NoError(t, err)

	v, err := l.Quantile(0.5)
	require.NoError(t, err)
	require.InDelta(t, 10, v, 1e-12) // geometric midpoint

	_, err = dist.NewLogUniform(0, 1)
	require.ErrorIs(t, err, dist.ErrBadParams)
}

func TestNormalQuantile(t *testing.T) {
	n, err := dist.NewNormal(100, 10)
	require.NoError(t, err)

	v, err := n.Quantile(0.975)
	require.NoError(t, err)
	require.InDelta(t, 119.59963984540054, v, 1e-7)

	_, err = dist.NewNormal(0, 0)
	require.ErrorIs(t, err, dist.ErrBadParams)
}

func TestTruncNormalQuantile(t *testing.T) {
	tn, err := dist.NewTruncNormal(0, 1, -1, 1)
	require.NoError(t, err)

	// Symmetric truncation keeps the median at the mean.
	mid, err := tn.Quantile(0.5)
	require.NoError(t, err)
	require.InDelta(t, 0, mid, 1e-12)

	lo, err := tn.Quantile(0)
	require.NoError(t, err)
	require.InDelta(t, -1, lo, 1e-9)

	hi, err := tn.Quantile(1)
	require.NoError(t, err)
	require.InDelta(t, 1, hi, 1e-9)

	_, err = dist.NewTruncNormal(0, 1, 2, 1)
	require.ErrorIs(t, err, dist.ErrBadParams)
}

func TestLogNormalQuantile(t *testing.T) {
	l, err := dist.NewLogNormal(2, 0.5)
	require.NoError(t, err)

	med, err := l.Quantile(0.5)
	require.NoError(t, err)
	require.InDelta(t, math.Exp(2), med, 1e-9)
}

func TestTriangularQuantile(t *testing.T) {
	tr, err := dist.NewTriangular(0, 0.5, 1)
	require.NoError(t, err)

	for _, tc := range []struct{ p, want float64 }{
		{0, 0},
		{0.125, 0.25}, // left branch: sqrt(0.125*1*0.5)
		{0.5, 0.5},
		{0.875, 0.75}, // right branch, by symmetry
		{1, 1},
	} {
		v, qerr := tr.Quantile(tc.p)
		require.NoError(t, qerr)
		require.InDelta(t, tc.want, v, 1e-12, "p=%v", tc.p)
	}

	// Skewed mode still hits the exact mode at its CDF mass.
	sk, err := dist.NewTriangular(0, 0.2, 1)
	require.NoError(t, err)
	v, err := sk.Quantile(0.2)
	require.NoError(t, err)
	require.InDelta(t, 0.2, v, 1e-12)

	_, err = dist.NewTriangular(0, 2, 1)
	require.ErrorIs(t, err, dist.ErrBadParams)
}

func TestRegIncBeta(t *testing.T) {
	// I_x(1,1) is the identity.
	for _, x := range []float64{0, 0.25, 0.5, 0.75, 1} {
		require.InDelta(t, x, dist.RegIncBeta(1, 1, x), 1e-12, "x=%v", x)
	}
	// Symmetric case: I_0.5(a,a) = 0.5.
	require.InDelta(t, 0.5, dist.RegIncBeta(3, 3, 0.5), 1e-12)
	// I_x(1,b) = 1-(1-x)^b.
	require.InDelta(t, 1-math.Pow(0.7, 5), dist.RegIncBeta(1, 5, 0.3), 1e-12)
}

func TestBetaQuantileInvertsCDF(t *testing.T) {
	for _, tc := range []struct{ a, b float64 }{
		{1, 1}, {3, 3}, {2, 5}, {0.5, 0.5},
	} {
		for _, p := range []float64{0.05, 0.3, 0.5, 0.9} {
			x := dist.BetaQuantile(p, tc.a, tc.b)
			require.InDelta(t, p, dist.RegIncBeta(tc.a, tc.b, x), 1e-10,
				"a=%v b=%v p=%v", tc.a, tc.b, p)
		}
	}
}

func TestPERTQuantile(t *testing.T) {
	// Symmetric PERT keeps its median at the mode.
	p, err := dist.NewPERT(0, 0.5, 1, dist.DefaultPERTScale)
	require.NoError(t, err)
	v, err := p.Quantile(0.5)
	require.NoError(t, err)
	require.InDelta(t, 0.5, v, 1e-10)

	lo, err := p.Quantile(0)
	require.NoError(t, err)
	require.Equal(t, 0.0, lo)
	hi, err := p.Quantile(1)
	require.NoError(t, err)
	require.Equal(t, 1.0, hi)

	_, err = dist.NewPERT(0, 0.5, 1, -1)
	require.ErrorIs(t, err, dist.ErrBadParams)
}

func TestDiscreteQuantile(t *testing.T) {
	d, err := dist.NewDiscrete([]float64{1, 2, 3}, nil)
	require.NoError(t, err)

	for _, tc := range []struct{ p, want float64 }{
		{0, 1}, {0.2, 1}, {0.34, 2}, {0.66, 2}, {0.99, 3}, {1, 3},
	} {
		v, qerr := d.Quantile(tc.p)
		require.NoError(t, qerr)
		require.Equal(t, tc.want, v, "p=%v", tc.p)
	}

	// Heavily weighted first value.
	w, err := dist.NewDiscrete([]float64{10, 20}, []float64{3, 1})
	require.NoError(t, err)
	v, err := w.Quantile(0.7)
	require.NoError(t, err)
	require.Equal(t, 10.0, v)

	_, err = dist.NewDiscrete(nil, nil)
	require.ErrorIs(t, err, dist.ErrBadParams)
	_, err = dist.NewDiscrete([]float64{1}, []float64{-1})
	require.ErrorIs(t, err, dist.ErrBadParams)
}

func TestFactoryDispatch(t *testing.T) {
	for _, tc := range []struct {
		family string
		params []float64
	}{
		{"const", []float64{7}},
		{"uniform", []float64{0, 1}},
		{"logunif", []float64{0.1, 10}},
		{"normal", []float64{0, 1}},
		{"normal", []float64{0, 1, -2, 2}},
		{"lognormal", []float64{0, 1}},
		{"triang", []float64{0, 0.5, 1}},
		{"pert", []float64{0, 0.5, 1}},
		{"PERT", []float64{0, 0.5, 1, 3}}, // family names are case-insensitive
	} {
		d, err := dist.New(tc.family, tc.params)
		require.NoError(t, err, "family %q", tc.family)
		v, err := d.Quantile(0.5)
		require.NoError(t, err)
		require.False(t, math.IsNaN(v))
	}

	_, err := dist.New("cauchy", []float64{0, 1})
	require.ErrorIs(t, err, dist.ErrUnknownDist)
	_, err = dist.New("uniform", []float64{1})
	require.ErrorIs(t, err, dist.ErrBadParams)
	_, err = dist.New("discrete", nil)
	require.ErrorIs(t, err, dist.ErrBadParams)
}

func TestQuantileRejectsBadProbability(t *testing.T) {
	u, err := dist.NewUniform(0, 1)
	require.NoError(t, err)
	_, err = u.Quantile(-0.01)
	require.ErrorIs(t, err, dist.ErrBadProbability)
	_, err = u.Quantile(1.01)
	require.ErrorIs(t, err, dist.ErrBadProbability)
	_, err = u.Quantile(math.NaN())
	require.ErrorIs(t, err, dist.ErrBadProbability)
}
