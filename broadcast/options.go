// SPDX-License-Identifier: MIT

package broadcast

import "github.com/katalvlaran/lvlinalg/matrix"

// Precedence offsets relative to a host parser's normal precedence.
// Multiplicative operators bind tighter than additive ones.
const (
	AdditivePrecedence       = -3
	MultiplicativePrecedence = -2
)

const panicNilScalarRule = "broadcast: NewOperator: scalar rule must not be nil"

// CombineRule replaces the elementwise matrix⊕matrix case with a dedicated
// matrix operation (Times uses the matrix product). The rule must not mutate
// its arguments and must return a fresh matrix.
type CombineRule func(a, b *matrix.Dense) (*matrix.Dense, error)

// Option configures an Operator at construction time.
type Option func(*Operator)

// WithCombine installs a matrix⊕matrix combine rule.
func WithCombine(rule CombineRule) Option {
	return func(op *Operator) { op.combine = rule }
}

// WithPrecedence sets the operator's precedence (default AdditivePrecedence).
func WithPrecedence(p int) Option {
	return func(op *Operator) { op.precedence = p }
}
