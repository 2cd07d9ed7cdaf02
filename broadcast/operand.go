// SPDX-License-Identifier: MIT

package broadcast

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// Kind tells which member of the Operand union is set.
type Kind uint8

const (
	// KindScalar marks a float64 operand.
	KindScalar Kind = iota
	// KindMatrix marks a *matrix.Dense operand.
	KindMatrix
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindMatrix:
		return "matrix"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operand is a tagged union of a scalar and a matrix.
// The zero value is the scalar 0.
type Operand struct {
	kind   Kind
	scalar float64
	m      *matrix.Dense
}

// Scalar wraps v as an operand.
func Scalar(v float64) Operand { return Operand{kind: KindScalar, scalar: v} }

// Matrix wraps m as an operand. The matrix is referenced, not copied;
// operators copy before they write.
func Matrix(m *matrix.Dense) Operand { return Operand{kind: KindMatrix, m: m} }

// Kind reports which member is set.
func (o Operand) Kind() Kind { return o.kind }

// IsScalar reports whether o holds a scalar.
func (o Operand) IsScalar() bool { return o.kind == KindScalar }

// IsMatrix reports whether o holds a matrix.
func (o Operand) IsMatrix() bool { return o.kind == KindMatrix }

// Value returns the scalar member (0 for matrix operands).
func (o Operand) Value() float64 { return o.scalar }

// Dense returns the matrix member (nil for scalar operands).
func (o Operand) Dense() *matrix.Dense { return o.m }

// String renders the operand for diagnostics.
func (o Operand) String() string {
	if o.kind == KindMatrix {
		if o.m == nil {
			return "<nil matrix>"
		}

		return o.m.String()
	}

	return strconv.FormatFloat(o.scalar, 'g', -1, 64)
}

// FromValue converts a host value into an Operand.
//
// Accepted: every Go integer and float kind, *matrix.Dense, any other
// matrix.Matrix (copied into a Dense) and Operand itself.
//
// Errors:
//   - ErrTypeViolation for anything else, including nil and typed-nil matrices.
func FromValue(v any) (Operand, error) {
	switch x := v.(type) {
	case Operand:
		return x, nil
	case float64:
		return Scalar(x), nil
	case float32:
		return Scalar(float64(x)), nil
	case int:
		return Scalar(float64(x)), nil
	case int8:
		return Scalar(float64(x)), nil
	case int16:
		return Scalar(float64(x)), nil
	case int32:
		return Scalar(float64(x)), nil
	case int64:
		return Scalar(float64(x)), nil
	case uint:
		return Scalar(float64(x)), nil
	case uint8:
		return Scalar(float64(x)), nil
	case uint16:
		return Scalar(float64(x)), nil
	case uint32:
		return Scalar(float64(x)), nil
	case uint64:
		return Scalar(float64(x)), nil
	case *matrix.Dense:
		if x == nil {
			return Operand{}, fmt.Errorf("FromValue(nil *matrix.Dense): %w", ErrTypeViolation)
		}

		return Matrix(x), nil
	case matrix.Matrix:
		d, err := toDense(x)
		if err != nil {
			return Operand{}, fmt.Errorf("FromValue(%T): %w", v, err)
		}

		return Matrix(d), nil
	default:
		return Operand{}, fmt.Errorf("FromValue(%T): %w", v, ErrTypeViolation)
	}
}

// FromValues converts each value with FromValue, stopping at the first failure.
func FromValues(values ...any) ([]Operand, error) {
	out := make([]Operand, len(values))
	var err error
	for i, v := range values {
		if out[i], err = FromValue(v); err != nil {
			return nil, fmt.Errorf("operand %d: %w", i, err)
		}
	}

	return out, nil
}

// toDense copies a foreign Matrix implementation into a Dense.
func toDense(m matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, ErrTypeViolation
	}
	d, err := matrix.NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			if err = d.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}
