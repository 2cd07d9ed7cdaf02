// SPDX-License-Identifier: MIT

package broadcast

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// ScalarRule is the scalar definition of a binary operator.
type ScalarRule func(a, b float64) float64

// Operator is a binary arithmetic operator lifted to scalars and matrices.
// An Operator is immutable after construction and safe for concurrent use.
type Operator struct {
	name       string
	scalar     ScalarRule
	combine    CombineRule // nil ⇒ same-shape elementwise
	precedence int
}

// NewOperator builds an operator from its scalar rule.
// Panics if rule is nil (programmer error).
func NewOperator(name string, rule ScalarRule, opts ...Option) *Operator {
	if rule == nil {
		panic(panicNilScalarRule)
	}
	op := &Operator{name: name, scalar: rule, precedence: AdditivePrecedence}
	for _, set := range opts {
		if set != nil {
			set(op)
		}
	}

	return op
}

// Name returns the operator's display name.
func (op *Operator) Name() string { return op.name }

// Precedence returns the operator's precedence offset.
func (op *Operator) Precedence() int { return op.precedence }

// Scalar applies the scalar rule directly.
func (op *Operator) Scalar(a, b float64) float64 { return op.scalar(a, b) }

// Apply is the infix form: exactly two operands, neither of which is mutated.
func (op *Operator) Apply(a, b Operand) (Operand, error) {
	return op.Reduce(a, b)
}

// Reduce folds the operator left over the operands:
// ((o₀ ⊕ o₁) ⊕ o₂) ⊕ …
//
// Behavior highlights:
//   - A single operand is returned as is (a matrix operand is copied).
//   - The accumulator is a private copy, so no operand is ever mutated.
//   - All-scalar input yields a scalar.
//
// Errors:
//   - ErrEmptyOperands when called with nothing.
//   - matrix.ErrNilMatrix for a matrix operand holding nil.
//   - matrix.ErrDimensionMismatch when two matrices cannot be combined.
//   - matrix.ErrNaNInf when a strict-policy accumulator receives a non-finite value.
//
// Complexity:
//   - O(Σ r*c) for elementwise operators; the combine rule's cost otherwise.
func (op *Operator) Reduce(operands ...Operand) (Operand, error) {
	if len(operands) == 0 {
		return Operand{}, fmt.Errorf("%s: %w", op.name, ErrEmptyOperands)
	}
	for i, o := range operands {
		if o.kind == KindMatrix && o.m == nil {
			return Operand{}, fmt.Errorf("%s: operand %d: %w", op.name, i, matrix.ErrNilMatrix)
		}
	}

	acc := operands[0]
	if acc.kind == KindMatrix {
		acc = Matrix(acc.m.Copy())
	}
	var err error
	for i := 1; i < len(operands); i++ {
		if acc, err = op.step(acc, operands[i]); err != nil {
			return Operand{}, fmt.Errorf("%s: operand %d: %w", op.name, i, err)
		}
	}

	return acc, nil
}

// ReduceValues converts host values with FromValue and reduces them.
func (op *Operator) ReduceValues(values ...any) (Operand, error) {
	operands, err := FromValues(values...)
	if err != nil {
		return Operand{}, fmt.Errorf("%s: %w", op.name, err)
	}

	return op.Reduce(operands...)
}

// step combines the accumulator with the next operand. acc, when a matrix,
// is owned by the reduction and may be updated in place; next is read only.
func (op *Operator) step(acc, next Operand) (Operand, error) {
	f := op.scalar
	switch {
	case acc.kind == KindScalar && next.kind == KindScalar:
		return Scalar(f(acc.scalar, next.scalar)), nil

	case acc.kind == KindScalar:
		s := acc.scalar
		out := next.m.Copy()
		if err := out.Apply(func(_, _ int, v float64) float64 { return f(s, v) }); err != nil {
			return Operand{}, err
		}

		return Matrix(out), nil

	case next.kind == KindScalar:
		s := next.scalar
		if err := acc.m.Apply(func(_, _ int, v float64) float64 { return f(v, s) }); err != nil {
			return Operand{}, err
		}

		return acc, nil

	case op.combine != nil:
		out, err := op.combine(acc.m, next.m)
		if err != nil {
			return Operand{}, err
		}

		return Matrix(out), nil

	default:
		if err := acc.m.Combine(next.m, f); err != nil {
			return Operand{}, err
		}

		return acc, nil
	}
}

// String implements fmt.Stringer.
func (op *Operator) String() string { return op.name }
