// SPDX-License-Identifier: MIT

// Package broadcast applies binary arithmetic operators uniformly across
// operand lists that mix scalars and matrices.
//
// An Operator is defined by its scalar rule f(a, b). Broadcasting lifts the
// rule to matrices:
//
//   - scalar ⊕ scalar  → scalar f(a, b)
//   - scalar ⊕ matrix  → matrix with entries f(s, m[i,j])
//   - matrix ⊕ scalar  → matrix with entries f(m[i,j], s)
//   - matrix ⊕ matrix  → same-shape elementwise f(a[i,j], b[i,j]), unless the
//     operator carries a combine rule (Times uses the matrix product).
//
// Reduce folds left over any number of operands. Operands are never mutated:
// the accumulator is a private copy of the first matrix it meets.
//
//	sum, err := broadcast.Plus.Reduce(broadcast.Scalar(1), broadcast.Matrix(m), broadcast.Scalar(2))
//
// Errors are sentinels: ErrEmptyOperands, ErrTypeViolation, ErrMatrixRequired,
// plus matrix.ErrDimensionMismatch for incompatible shapes.
package broadcast
