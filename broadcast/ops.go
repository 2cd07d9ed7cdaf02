// SPDX-License-Identifier: MIT

package broadcast

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// Predefined operators.
var (
	// Plus adds; matrices must share a shape.
	Plus = NewOperator("Plus", func(a, b float64) float64 { return a + b })

	// Minus subtracts left to right; matrices must share a shape.
	Minus = NewOperator("Minus", func(a, b float64) float64 { return a - b })

	// Times multiplies; two matrices combine with the matrix product (a.Cols == b.Rows).
	Times = NewOperator("Times", func(a, b float64) float64 { return a * b },
		WithCombine(func(a, b *matrix.Dense) (*matrix.Dense, error) { return matrix.Mul(a, b) }),
		WithPrecedence(MultiplicativePrecedence))

	// TimesElementwise multiplies entry by entry (Hadamard product for two matrices).
	TimesElementwise = NewOperator("TimesElementwise", func(a, b float64) float64 { return a * b },
		WithPrecedence(MultiplicativePrecedence))
)

// PlusScalar returns m + s as a new matrix.
func PlusScalar(m matrix.Matrix, s float64) (*matrix.Dense, error) {
	return matrix.AddScalar(m, s)
}

// TimesScalar returns s·m as a new matrix.
func TimesScalar(m matrix.Matrix, s float64) (*matrix.Dense, error) {
	return matrix.Scale(m, s)
}

// RequireMatrix unwraps a matrix result. Hosts whose operator slots only
// accept matrices use it to reject all-scalar reductions.
func RequireMatrix(o Operand) (*matrix.Dense, error) {
	if o.kind != KindMatrix {
		return nil, fmt.Errorf("got scalar %v: %w", o.scalar, ErrMatrixRequired)
	}

	return o.m, nil
}

// Map evaluates fn entry by entry over one or more same-shape matrices:
// out[i,j] = fn(ms[0][i,j], ms[1][i,j], …). The inputs are not modified.
//
// Errors:
//   - ErrEmptyOperands when ms is empty.
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
func Map(fn func(args ...float64) float64, ms ...*matrix.Dense) (*matrix.Dense, error) {
	if len(ms) == 0 {
		return nil, fmt.Errorf("Map: %w", ErrEmptyOperands)
	}
	for k, m := range ms {
		if err := matrix.ValidateNotNil(m); err != nil {
			return nil, fmt.Errorf("Map: matrix %d: %w", k, err)
		}
		if err := matrix.ValidateSameShape(ms[0], m); err != nil {
			return nil, fmt.Errorf("Map: matrix %d: %w", k, err)
		}
	}

	out := ms[0].Copy()
	others := make([][]float64, len(ms))
	for k := 1; k < len(ms); k++ {
		others[k] = ms[k].RawData()
	}
	cols := out.Cols()
	args := make([]float64, len(ms))
	err := out.Apply(func(i, j int, v float64) float64 {
		args[0] = v
		for k := 1; k < len(ms); k++ {
			args[k] = others[k][i*cols+j]
		}

		return fn(args...)
	})
	if err != nil {
		return nil, fmt.Errorf("Map: %w", err)
	}

	return out, nil
}
