// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCenterColumns(t *testing.T) {
	X := MustRows(t, [][]float64{{1, 10}, {3, 20}, {5, 30}})
	Xc, means, err := matrix.CenterColumns(X)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{3, 20}, means, testTol)
	RequireClose(t, MustRows(t, [][]float64{{-2, -10}, {0, 0}, {2, 10}}), Xc)

	// fallback path agrees
	Xc2, _, err := matrix.CenterColumns(hide{X})
	require.NoError(t, err)
	assert.True(t, Xc.Equal(Xc2))

	_, _, err = matrix.CenterColumns(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestFitLeastSquares(t *testing.T) {
	t.Run("exact line", func(t *testing.T) {
		X := MustRows(t, [][]float64{{1, 0}, {1, 1}, {1, 2}})
		fit, err := matrix.FitLeastSquares(X, []float64{2, 4, 6})
		require.NoError(t, err)
		assert.InDeltaSlice(t, []float64{2, 2}, fit.Coefficients, testTol)
		assert.InDeltaSlice(t, []float64{2, 4, 6}, fit.Fitted, testTol)
		assert.InDelta(t, 8.0, fit.TSS, testTol)
		assert.InDelta(t, 0.0, fit.RSS, testTol)
		assert.InDelta(t, 1.0, fit.RSquared(), testTol)
	})

	t.Run("noisy line", func(t *testing.T) {
		X := MustRows(t, [][]float64{{1, 0}, {1, 1}, {1, 2}, {1, 3}})
		y := []float64{1, 3, 2, 4}
		fit, err := matrix.FitLeastSquares(X, y)
		require.NoError(t, err)
		// slope = Sxy/Sxx = 4/5, intercept = ȳ - slope*t̄
		assert.InDeltaSlice(t, []float64{1.3, 0.8}, fit.Coefficients, testTol)
		assert.InDelta(t, 5.0, fit.TSS, testTol)
		assert.InDelta(t, 1.8, fit.RSS, testTol)
		assert.InDelta(t, 0.64, fit.RSquared(), testTol)
	})

	t.Run("constant series leaves R² undefined", func(t *testing.T) {
		X := MustRows(t, [][]float64{{1, 0}, {1, 1}, {1, 2}})
		fit, err := matrix.FitLeastSquares(X, []float64{5, 5, 5})
		require.NoError(t, err)
		assert.Equal(t, 0.0, fit.TSS)
		r2 := fit.RSquared()
		assert.True(t, math.IsNaN(r2) || math.IsInf(r2, -1), "got %g", r2)
	})

	t.Run("errors", func(t *testing.T) {
		X := MustRows(t, [][]float64{{1, 0}, {1, 1}})
		_, err := matrix.FitLeastSquares(X, []float64{1})
		require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

		collinear := MustRows(t, [][]float64{{1, 2}, {1, 2}, {1, 2}})
		_, err = matrix.FitLeastSquares(collinear, []float64{1, 2, 3})
		require.ErrorIs(t, err, matrix.ErrSingular)
	})
}

func TestEwAllClose_WhiteBox(t *testing.T) {
	a := MustRows(t, [][]float64{{1, math.Inf(1)}})
	b := MustRows(t, [][]float64{{1 + 1e-12, math.Inf(1)}})

	ok, err := matrix.ExportedEwAllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = matrix.ExportedEwAllClose(a, hide{b}, 0, 1e-15)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = matrix.ExportedEwAllClose(a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	n := MustRows(t, [][]float64{{math.NaN()}})
	ok, err = matrix.AllClose(n, n, 1, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = matrix.AllCloseDefault(a, b)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEwBroadcastSubCols_WhiteBox(t *testing.T) {
	X := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	out, err := matrix.ExportedEwBroadcastSubCols(X, []float64{1, 2})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0, 0}, {2, 2}}, out)

	_, err = matrix.ExportedEwBroadcastSubCols(X, []float64{1})
	require.ErrorIs(t, err, matrix.ErrBadShape)
}
