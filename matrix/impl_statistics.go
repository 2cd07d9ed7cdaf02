// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the statistical building blocks shared by the trend and ols packages:
//     column centering and a least-squares fit with its sums of squares.
//   - Keep tight loops centralized in ew* where it improves reuse and consistency.
//
// Exposed API:
//   - CenterColumns(X)        -> (Xc, means)  // subtract per-column mean
//   - FitLeastSquares(X, y)   -> *LeastSquaresFit
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths avoid At/Set and operate on row-major flat buffers.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const opCenterColumns = "CenterColumns"

// centerColumns subtracts the per-column mean from every element (column-wise centering).
// Implementation:
//   - Stage 1: Validate X (non-nil).
//   - Stage 2: Compute column means with stat.Mean over each column.
//   - Stage 3: Apply ewBroadcastSubCols to produce a centered copy.
//
// Returns:
//   - *Dense: centered copy (r×c).
//   - []float64: column means (len=c).
//
// Errors:
//   - ErrNilMatrix from validation; wrapped At errors from fallback paths.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for output (+ O(c) means).
func centerColumns(X Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	r, c := X.Rows(), X.Cols()
	means := make([]float64, c)
	col := make([]float64, r) // reused column buffer
	var err error
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			if col[i], err = X.At(i, j); err != nil {
				return nil, nil, matrixErrorf(opCenterColumns, err)
			}
		}
		means[j] = stat.Mean(col, nil)
	}

	Xc, err := ewBroadcastSubCols(X, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	return Xc, means, nil
}

// LeastSquaresFit is the outcome of fitting y ≈ X·β by ordinary least squares.
//
//   - Coefficients: β, one entry per column of X.
//   - Fitted:       X·β, one entry per observation.
//   - TSS:          Σ (y_i - ȳ)², the total sum of squares.
//   - RSS:          Σ (y_i - ŷ_i)², the residual sum of squares.
type LeastSquaresFit struct {
	Coefficients []float64
	Fitted       []float64
	TSS          float64
	RSS          float64
}

// RSquared returns 1 - RSS/TSS with no special case: TSS = 0 yields NaN or -Inf.
// Callers that need a convention for constant series apply it themselves.
func (f *LeastSquaresFit) RSquared() float64 {
	return 1 - f.RSS/f.TSS
}

// FitLeastSquares solves X·β ≈ y in the least-squares sense and reports the fit.
//
// Implementation:
//   - Stage 1: Validate X (non-nil) and len(y) == X.Rows().
//   - Stage 2: Solve via QR (tall X) or LU (square X).
//   - Stage 3: Fitted = X·β; TSS from the centered y column; RSS from the residuals.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(y) != rows).
//   - ErrSingular when X lacks full column rank.
//
// Complexity:
//   - Time O(r*c²), Space O(r*c).
func FitLeastSquares(X Matrix, y []float64) (*LeastSquaresFit, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opFit, err)
	}
	if len(y) != X.Rows() {
		return nil, matrixErrorf(opFit,
			fmt.Errorf("%d observations for %d rows: %w", len(y), X.Rows(), ErrDimensionMismatch))
	}

	yCol, err := NewFromColumns([][]float64{y})
	if err != nil {
		return nil, matrixErrorf(opFit, err)
	}
	beta, err := Solve(X, yCol)
	if err != nil {
		return nil, matrixErrorf(opFit, err)
	}
	coeffs := beta.data // Solve returned a fresh c×1 buffer

	fitted, err := MatVec(X, coeffs)
	if err != nil {
		return nil, matrixErrorf(opFit, err)
	}

	centered, _, err := centerColumns(yCol)
	if err != nil {
		return nil, matrixErrorf(opFit, err)
	}
	residuals := make([]float64, len(y))
	floats.SubTo(residuals, y, fitted)

	return &LeastSquaresFit{
		Coefficients: coeffs,
		Fitted:       fitted,
		TSS:          floats.Dot(centered.data, centered.data),
		RSS:          floats.Dot(residuals, residuals),
	}, nil
}
