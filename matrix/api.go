// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid logic duplication; each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - FromArray / MakeConstant / MakeIdentity mirror the constructor names used by
//     hosts that think in "lists of rows".

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int, opts ...Option) (*Dense, error) {
	return NewDense(rows, cols, opts...)
}

// FromArray builds a matrix from a rectangular row-major 2-D array (alias of NewFromRows).
func FromArray(data [][]float64, opts ...Option) (*Dense, error) {
	return NewFromRows(data, opts...)
}

// FromColumnList builds a matrix whose columns are the given lists (alias of NewFromColumns).
func FromColumnList(columns [][]float64, opts ...Option) (*Dense, error) {
	return NewFromColumns(columns, opts...)
}

// MakeConstant returns a rows×cols matrix filled with v (alias of NewConstant).
func MakeConstant(rows, cols int, v float64, opts ...Option) (*Dense, error) {
	return NewConstant(rows, cols, v, opts...)
}

// MakeIdentity returns I_n (alias of NewIdentity).
func MakeIdentity(n int, opts ...Option) (*Dense, error) {
	return NewIdentity(n, opts...)
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// Thin wrapper over Matrix.Clone for API discoverability.
// Complexity: O(r*c) copy for dense; implementation-defined otherwise.
func CloneMatrix(m Matrix) Matrix {
	if m == nil {
		return nil
	}

	return m.Clone()
}

// ZerosLike returns a zero matrix with the shape of m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return newDense(m.Rows(), m.Cols(), policyOf(m)), nil
}

// ---------- Algebra aliases ----------

// Product is an alias of Mul (matrix product).
func Product(a, b Matrix) (*Dense, error) { return Mul(a, b) }

// HadamardProd is an alias of Hadamard (elementwise product).
func HadamardProd(a, b Matrix) (*Dense, error) { return Hadamard(a, b) }

// T is a short alias of Transpose.
func T(m Matrix) (*Dense, error) { return Transpose(m) }

// ScaleBy is an alias of Scale.
func ScaleBy(m Matrix, alpha float64) (*Dense, error) { return Scale(m, alpha) }

// MatVecMul is an alias of MatVec.
func MatVecMul(m Matrix, x []float64) ([]float64, error) { return MatVec(m, x) }

// InverseOf is an alias of Inverse.
func InverseOf(m Matrix) (*Dense, error) { return Inverse(m) }

// ---------- Comparison ----------

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf. Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
//
// AI-Hints:
//   - AllClose with small atol/rtol is ideal for invariance tests in unit tests.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// AllCloseDefault is AllClose with rtol = 0 and atol = DefaultEpsilon
// (or the epsilon given through WithEpsilon).
func AllCloseDefault(a, b Matrix, opts ...Option) (bool, error) {
	o := gatherOptions(opts...)

	return ewAllClose(a, b, 0, o.eps)
}

// ---------- Statistics ----------

// CenterColumns returns a centered copy: Xc = X − mean(X, by columns) and the column means.
// Time: O(r*c). Space: O(r*c).
//
// AI-Hints: feed means into regression; reuse for z-scoring.
func CenterColumns(X Matrix) (*Dense, []float64, error) { return centerColumns(X) }
