// SPDX-License-Identifier: MIT
// Package nearcorr_test exercises the Higham projector against the
// published reference results and the package error contract.

package nearcorr_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/fjordtools/designkit/matrix"
	"github.com/fjordtools/designkit/nearcorr"
)

// References:
// [1] Higham, "Computing the nearest correlation matrix - a problem from
//     finance", IMA Journal of Numerical Analysis (2002) 22, 329-343.

type NearestSuite struct {
	suite.Suite
}

func (s *NearestSuite) mustDense(rows [][]float64) *matrix.Dense {
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(s.T(), err)
	return m
}

func (s *NearestSuite) requireClose(got *matrix.Dense, want [][]float64, tol float64) {
	s.T().Helper()
	require.Equal(s.T(), len(want), got.Rows())
	for i := range want {
		for j := range want[i] {
			v, err := got.At(i, j)
			require.NoError(s.T(), err)
			require.InDelta(s.T(), want[i][j], v, tol, "cell (%d,%d)", i, j)
		}
	}
}

// TestNAGExample reproduces the NAG Mark 24 g02aa example, originally from [1].
func (s *NearestSuite) TestNAGExample() {
	a := s.mustDense([][]float64{
		{2, -1, 0, 0},
		{-1, 2, -1, 0},
		{0, -1, 2, -1},
		{0, 0, -1, 2},
	})

	x, err := nearcorr.Nearest(a)
	require.NoError(s.T(), err)

	s.requireClose(x, [][]float64{
		{1.0, -0.8084125, 0.1915875, 0.10677505},
		{-0.8084125, 1.0, -0.65623269, 0.1915875},
		{0.1915875, -0.65623269, 1.0, -0.8084125},
		{0.10677505, 0.1915875, -0.8084125, 1.0},
	}, 1e-8)
}

// TestHighamExample2002 reproduces the 3x3 example from [1].
func (s *NearestSuite) TestHighamExample2002() {
	a := s.mustDense([][]float64{
		{1, 1, 0},
		{1, 1, 1},
		{0, 1, 1},
	})

	x, err := nearcorr.Nearest(a)
	require.NoError(s.T(), err)

	s.requireClose(x, [][]float64{
		{1.0, 0.76068985, 0.15729811},
		{0.76068985, 1.0, 0.76068985},
		{0.15729811, 0.76068985, 1.0},
	}, 1e-8)
}

// TestWeights checks the weighted norm against the documented example from
// the reference implementation.
func (s *NearestSuite) TestWeights() {
	a := s.mustDense([][]float64{
		{1, 1, 0},
		{1, 1, 1},
		{0, 1, 1},
	})

	x, err := nearcorr.Nearest(a, nearcorr.WithWeights([]float64{1, 2, 3}))
	require.NoError(s.T(), err)

	s.requireClose(x, [][]float64{
		{1.0, 0.66774961, 0.16723692},
		{0.66774961, 1.0, 0.84557496},
		{0.16723692, 0.84557496, 1.0},
	}, 1e-8)
}

// TestIdempotence: a valid correlation matrix projects to itself.
func (s *NearestSuite) TestIdempotence() {
	a := s.mustDense([][]float64{
		{1.0, 0.4, 0.2},
		{0.4, 1.0, 0.6},
		{0.2, 0.6, 1.0},
	})

	x, err := nearcorr.Nearest(a)
	require.NoError(s.T(), err)
	s.requireClose(x, [][]float64{
		{1.0, 0.4, 0.2},
		{0.4, 1.0, 0.6},
		{0.2, 0.6, 1.0},
	}, 1e-7)
}

// TestOutputIsValidCorrelation: repaired matrix has eigenvalues >= -tol and
// a diagonal of exactly 1.
func (s *NearestSuite) TestOutputIsValidCorrelation() {
	a := s.mustDense([][]float64{
		{1, 0.9, 0.9},
		{0.9, 1, -0.9},
		{0.9, -0.9, 1},
	})

	x, err := nearcorr.Nearest(a)
	require.NoError(s.T(), err)

	for i := 0; i < x.Rows(); i++ {
		v, aerr := x.At(i, i)
		require.NoError(s.T(), aerr)
		require.Equal(s.T(), 1.0, v, "diagonal must be exactly 1")
	}

	eigs, _, err := matrix.Eigen(x, 1e-12, 10000)
	require.NoError(s.T(), err)
	for _, e := range eigs {
		require.GreaterOrEqual(s.T(), e, -1e-8, "eigenvalue must be non-negative up to tolerance")
	}
}

func (s *NearestSuite) TestAssertSymmetric() {
	a := s.mustDense([][]float64{
		{1, 1, 0},
		{1, 1, 1},
		{1, 1, 1},
	})

	_, err := nearcorr.Nearest(a)
	require.ErrorIs(s.T(), err, nearcorr.ErrNotSymmetric)
}

func (s *NearestSuite) TestExceededMaxIterations() {
	a := s.mustDense([][]float64{
		{1, 1, 0},
		{1, 1, 1},
		{0, 1, 1},
	})

	_, err := nearcorr.Nearest(a, nearcorr.WithTol(1e-14), nearcorr.WithMaxIterations(10))
	require.ErrorIs(s.T(), err, nearcorr.ErrNoConvergence)
}

func (s *NearestSuite) TestNewtonMethodUnsupported() {
	a := s.mustDense([][]float64{{1, 0}, {0, 1}})

	_, err := nearcorr.Nearest(a, nearcorr.WithMethod(nearcorr.MethodNewton))
	require.ErrorIs(s.T(), err, nearcorr.ErrMethodNotImplemented)
}

func (s *NearestSuite) TestWeightLengthMismatch() {
	a := s.mustDense([][]float64{{1, 0}, {0, 1}})

	_, err := nearcorr.Nearest(a, nearcorr.WithWeights([]float64{1, 2, 3}))
	require.ErrorIs(s.T(), err, matrix.ErrDimensionMismatch)
}

func (s *NearestSuite) TestOptionPanics() {
	require.Panics(s.T(), func() { nearcorr.WithTol(0) })
	require.Panics(s.T(), func() { nearcorr.WithTol(math.NaN()) })
	require.Panics(s.T(), func() { nearcorr.WithMaxIterations(0) })
	require.Panics(s.T(), func() { nearcorr.WithWeights([]float64{1, -1}) })
}

func TestNearestSuite(t *testing.T) {
	suite.Run(t, new(NearestSuite))
}
