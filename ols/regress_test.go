// SPDX-License-Identifier: MIT
package ols_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/ols"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

func TestRegress_ExactLine(t *testing.T) {
	// Y = 1 + 2·X1
	data := mustRows(t, [][]float64{{3, 1}, {5, 2}, {7, 3}, {9, 4}})
	res, err := ols.Regress(data)
	require.NoError(t, err)

	require.Len(t, res.Coefficients, 2)
	assert.InDelta(t, 1, res.Coefficients[0], tol)
	assert.InDelta(t, 2, res.Coefficients[1], tol)
	assert.InDelta(t, 1, res.RSquared, tol)
	assert.InDelta(t, 20, res.TSS, tol)
	assert.InDelta(t, 0, res.RSS, tol)

	stats := res.Stats()
	assert.Equal(t, res.RSquared, stats[0])
	assert.Equal(t, res.TSS, stats[1])
	assert.Equal(t, res.RSS, stats[2])

	// Input is untouched.
	assert.Equal(t, [][]float64{{3, 1}, {5, 2}, {7, 3}, {9, 4}}, data.ToRows())
}

func TestRegress_TwoRegressors(t *testing.T) {
	// Y = 2 - X1 + 0.5·X2
	rows := [][]float64{}
	for _, x := range [][2]float64{{0, 0}, {1, 0}, {0, 2}, {3, 1}, {2, 4}, {5, 3}} {
		rows = append(rows, []float64{2 - x[0] + 0.5*x[1], x[0], x[1]})
	}
	res, err := ols.Regress(mustRows(t, rows))
	require.NoError(t, err)

	require.Len(t, res.Coefficients, 3)
	assert.InDelta(t, 2, res.Coefficients[0], tol)
	assert.InDelta(t, -1, res.Coefficients[1], tol)
	assert.InDelta(t, 0.5, res.Coefficients[2], tol)
	assert.InDelta(t, 1, res.RSquared, tol)

	y, err := res.Predict([]float64{4, 6})
	require.NoError(t, err)
	assert.InDelta(t, 1, y, tol)

	_, err = res.Predict([]float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestRegress_Noisy(t *testing.T) {
	// Same data as the noisy trend line: Y over t = 0..3.
	res, err := ols.RegressColumns([]float64{1, 3, 2, 4}, []float64{0, 1, 2, 3})
	require.NoError(t, err)

	assert.InDelta(t, 1.3, res.Coefficients[0], tol)
	assert.InDelta(t, 0.8, res.Coefficients[1], tol)
	assert.InDelta(t, 5, res.TSS, tol)
	assert.InDelta(t, 1.8, res.RSS, tol)
	assert.InDelta(t, 0.64, res.RSquared, tol)
}

func TestRegress_ForeignMatrix(t *testing.T) {
	type hide struct{ matrix.Matrix }
	res, err := ols.Regress(hide{mustRows(t, [][]float64{{3, 1}, {5, 2}, {7, 3}})})
	require.NoError(t, err)
	assert.InDelta(t, 2, res.Coefficients[1], tol)
}

func TestRegress_ConstantResponse(t *testing.T) {
	// TSS = 0 is not special-cased: R² = 1 − RSS/0.
	res, err := ols.Regress(mustRows(t, [][]float64{{4, 1}, {4, 2}, {4, 3}}))
	require.NoError(t, err)

	assert.Equal(t, 0.0, res.TSS)
	assert.InDelta(t, 4, res.Coefficients[0], tol)
	assert.True(t, math.IsNaN(res.RSquared) || math.IsInf(res.RSquared, -1), "R²=%v", res.RSquared)
}

func TestRegress_Errors(t *testing.T) {
	_, err := ols.Regress(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	// k = n: two regressors, two observations.
	_, err = ols.Regress(mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}))
	require.ErrorIs(t, err, ols.ErrOverdetermined)
	_, err = ols.Regress(mustRows(t, [][]float64{{1, 2, 3, 4}}))
	require.ErrorIs(t, err, ols.ErrOverdetermined)

	// A regressor with no variation beyond zero cannot be separated.
	_, err = ols.Regress(mustRows(t, [][]float64{{1, 1, 0}, {2, 2, 0}, {3, 3, 0}, {5, 4, 0}}))
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = ols.RegressColumns([]float64{1, 2, 3}, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// flaky fails reads from one column.
type flaky struct {
	matrix.Matrix
	badCol int
}

var errRead = errors.New("read failed")

func (f flaky) At(i, j int) (float64, error) {
	if j == f.badCol {
		return 0, errRead
	}

	return f.Matrix.At(i, j)
}

func TestRegress_ReadErrorsPropagate(t *testing.T) {
	data := mustRows(t, [][]float64{{3, 1}, {5, 2}, {7, 3}})
	for col := 0; col < 2; col++ {
		_, err := ols.Regress(flaky{Matrix: data, badCol: col})
		require.ErrorIs(t, err, errRead, "column %d", col)
	}
}
