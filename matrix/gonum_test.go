// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestGonumBridge(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	for _, in := range []matrix.Matrix{m, hide{m}} {
		g, err := matrix.ToGonum(in)
		require.NoError(t, err)
		r, c := g.Dims()
		assert.Equal(t, 2, r)
		assert.Equal(t, 3, c)
		assert.Equal(t, 6.0, g.At(1, 2))

		// copies, never aliases
		g.Set(0, 0, 100)
		CompareExact(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m)
	}

	// a strided view exercises the row-by-row copy
	big := mat.NewDense(3, 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	view := big.Slice(1, 3, 1, 3).(*mat.Dense)
	back, err := matrix.FromGonum(view)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{5, 6}, {8, 9}}, back)

	// non-Dense gonum types go through At
	tr, err := matrix.FromGonum(big.T())
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 4, 7}, {2, 5, 8}, {3, 6, 9}}, tr)

	_, err = matrix.ToGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
