// SPDX-License-Identifier: MIT

// Package matrix offers a dense float64 matrix type and the linear algebra built on it.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix with bounds-checked accessors and mutators
//     (Set, SetRow, SetColumn, SwapRows, SwapColumns) that validate every
//     precondition before the first write.
//   - Kernels over the Matrix interface: Add, Sub, Mul, Hadamard, Scale,
//     AddScalar, Transpose, MatVec and Trace. Each returns a fresh *Dense.
//   - Decomposition-backed reads: Det, Rank, Cond, Inverse, Eigen and Solve,
//     computed with gonum's LAPACK routines.
//   - FitLeastSquares, the shared least-squares fit used by the trend and ols packages.
//
// Errors are package-level sentinels (ErrOutOfRange, ErrBadShape,
// ErrDimensionMismatch, ErrSingular, ...) wrapped with call-site context;
// match them with errors.Is. Nothing in the package panics on bad input,
// except option constructors given nonsensical values.
//
// Numeric policy: NaN and ±Inf are ordinary values unless a matrix is built
// with WithValidateNaNInf, in which case Set, SetRow, SetColumn, Apply, Combine
// and the elementwise kernels (Add, Sub, Hadamard, Scale, AddScalar) reject them.
// Rank, Cond, Eigen and non-square Solve need finite input under either policy
// and report ErrNaNInf otherwise.
package matrix
