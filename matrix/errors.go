// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// call-site context) and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Detection sites wrap with coordinates or shapes,
// e.g. fmt.Errorf("Dense.At(%d,%d): %w", r, c, ErrOutOfRange); callers still
// match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> dimension mismatch -> numeric policy -> factorization.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive
	// (zero rows, zero columns, or an empty submatrix range).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrBadShape is returned when supplied data does not fit the matrix shape:
	// ragged rows in NewFromRows, or a SetRow/SetColumn slice of the wrong length.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row/Column/Swap*/Submatrix) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub of different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	// It matches ErrDimensionMismatch as well, see nonSquareError.
	ErrNonSquare error = nonSquareError{}

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (WithValidateNaNInf).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned when a factorization detects an exactly or
	// numerically singular matrix (inverse, square solve, rank-deficient least squares).
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrEigenFailed indicates that the Hessenberg/QR eigen iteration did not converge.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")

	// ErrFactorization indicates that a factorization (SVD) could not be computed.
	ErrFactorization = errors.New("matrix: factorization failed")
)

// nonSquareError is the dynamic type of ErrNonSquare. A non-square operand is a
// special case of a dimension mismatch, so errors.Is(err, ErrDimensionMismatch)
// also holds for it.
type nonSquareError struct{}

func (nonSquareError) Error() string { return "matrix: matrix is not square" }

func (nonSquareError) Is(target error) bool { return target == ErrDimensionMismatch }
