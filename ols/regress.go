// SPDX-License-Identifier: MIT

package ols

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/matrix"
	"gonum.org/v1/gonum/floats"
)

// Result is a fitted linear model y = b0 + b1·x1 + ... + bk·xk.
type Result struct {
	Coefficients []float64 // intercept first, then one per regressor
	RSquared     float64
	TSS          float64 // total sum of squares of y about its mean
	RSS          float64 // residual sum of squares
}

// Stats returns [R², TSS, RSS].
func (r *Result) Stats() [3]float64 {
	return [3]float64{r.RSquared, r.TSS, r.RSS}
}

// Predict evaluates the model at one observation x = (x1..xk).
// Returns matrix.ErrDimensionMismatch when len(x) != k.
func (r *Result) Predict(x []float64) (float64, error) {
	if len(x) != len(r.Coefficients)-1 {
		return 0, fmt.Errorf("Predict: %d values for %d regressors: %w",
			len(x), len(r.Coefficients)-1, matrix.ErrDimensionMismatch)
	}

	return r.Coefficients[0] + floats.Dot(r.Coefficients[1:], x), nil
}

// Regress fits Y on X for data laid out as [Y | X1 .. Xk].
//
// Implementation:
//   - Stage 1: validate k < n (k regressors, n observations).
//   - Stage 2: copy the data and overwrite column 0 with ones; that copy is the design.
//   - Stage 3: least squares of the design against the original column 0.
//
// Errors:
//   - matrix.ErrNilMatrix for nil input.
//   - ErrOverdetermined when k ≥ n.
//   - matrix.ErrSingular when the regressors are collinear.
//
// Complexity: O(n·k²) for the QR-based solve (O(k³) when n = k+1).
func Regress(m matrix.Matrix) (*Result, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("Regress: %w", err)
	}
	n, k := m.Rows(), m.Cols()-1
	if k >= n {
		return nil, fmt.Errorf("Regress: %d regressors over %d observations: %w", k, n, ErrOverdetermined)
	}

	design, y, err := splitDesign(m)
	if err != nil {
		return nil, fmt.Errorf("Regress: %w", err)
	}

	fit, err := matrix.FitLeastSquares(design, y)
	if err != nil {
		return nil, fmt.Errorf("Regress: %w", err)
	}

	return &Result{
		Coefficients: fit.Coefficients,
		RSquared:     fit.RSquared(),
		TSS:          fit.TSS,
		RSS:          fit.RSS,
	}, nil
}

// splitDesign copies m with column 0 replaced by ones and returns the
// replaced column as the response.
func splitDesign(m matrix.Matrix) (*matrix.Dense, []float64, error) {
	n, c := m.Rows(), m.Cols()
	rows := make([][]float64, n)
	y := make([]float64, n)
	var err error
	for i := range rows {
		rows[i] = make([]float64, c)
		if y[i], err = m.At(i, 0); err != nil {
			return nil, nil, err
		}
		rows[i][0] = 1
		for j := 1; j < c; j++ {
			if rows[i][j], err = m.At(i, j); err != nil {
				return nil, nil, err
			}
		}
	}
	design, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, nil, err
	}

	return design, y, nil
}

// RegressColumns is Regress for data held as separate vectors: y and one
// slice per regressor, all of the same length.
func RegressColumns(y []float64, xs ...[]float64) (*Result, error) {
	cols := make([][]float64, 0, len(xs)+1)
	cols = append(cols, y)
	cols = append(cols, xs...)
	data, err := matrix.NewFromColumns(cols)
	if err != nil {
		return nil, fmt.Errorf("RegressColumns: %w", err)
	}

	return Regress(data)
}
