// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1) TestDefaultOptions_Documented verifies that resolved defaults equal the documented constants.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly()
	assert.Equal(t, matrix.DefaultEpsilon, o.Eps)
	assert.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf)
	assert.Equal(t, matrix.DefaultRankTolerance, o.RankTol)

	pub := matrix.NewMatrixOptions()
	assert.Equal(t, matrix.DefaultEpsilon, pub.Epsilon())
	assert.Equal(t, matrix.DefaultValidateNaNInf, pub.ValidateNaNInf())
	assert.Equal(t, matrix.DefaultRankTolerance, pub.RankTolerance())
}

// 2) TestOptions_LastWriterWins ensures each Option toggles exactly its intended field.
func TestOptions_LastWriterWins(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly(matrix.WithValidateNaNInf(), matrix.WithNoValidateNaNInf())
	assert.False(t, o.ValidateNaNInf)

	o = matrix.GatherOptionsSnapshot_TestOnly(matrix.WithEpsilon(1e-3), nil, matrix.WithEpsilon(1e-6))
	assert.Equal(t, 1e-6, o.Eps)
	assert.Equal(t, matrix.DefaultRankTolerance, o.RankTol, "untouched field keeps its default")

	o = matrix.GatherOptionsSnapshot_TestOnly(matrix.WithRankTolerance(0))
	assert.Equal(t, 0.0, o.RankTol)
}

// 3) TestOptions_PanicOnNonsense verifies the option constructors reject programmer errors.
func TestOptions_PanicOnNonsense(t *testing.T) {
	for _, bad := range []float64{-1, math.NaN(), math.Inf(1)} {
		require.Panics(t, func() { matrix.WithEpsilon(bad) }, "eps=%v", bad)
		require.Panics(t, func() { matrix.WithRankTolerance(bad) }, "tol=%v", bad)
	}
	require.NotPanics(t, func() { matrix.WithEpsilon(0) })
}
