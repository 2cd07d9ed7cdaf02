// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Decomposition-backed read-only operations: determinant, rank, condition
//     number, inverse, eigendecomposition and the general A·X = B solve.
//   - Delegate the numerics to gonum/mat, keep validation and error surfaces here.
//
// Contract shared by every function in this file:
//   - Inputs are validated first (nil → shape → square) with the package validators,
//     so gonum never sees a shape it would panic on.
//   - Inputs are never mutated; outputs are freshly allocated and inherit the
//     numeric policy of the first operand.
//
// Factorizations used:
//   - Det, Inverse, square Solve: LU with partial pivoting (mat.LU).
//   - Over/under-determined Solve: Householder QR / LQ (mat.Dense.Solve).
//   - Rank, Cond: singular value decomposition (mat.SVD, values only).
//   - Eigen: symmetric input → mat.EigenSym; otherwise Hessenberg reduction and
//     shifted QR (mat.Eigen).

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Det returns the determinant of a square matrix.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil.
//   - Stage 2: LU with partial pivoting; det = sign(P) * Π U[i,i].
//
// Behavior highlights:
//   - A singular matrix yields 0 (or a value within rounding of 0), never an error.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Det(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	g, err := ToGonum(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	var lu mat.LU
	lu.Factorize(g)

	return lu.Det(), nil
}

// singularValues returns σ_1 ≥ … ≥ σ_min(r,c) of m.
func singularValues(m Matrix, tag string) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	g, err := ToGonum(m)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err = validateFinite(g.RawMatrix().Data); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	var svd mat.SVD
	if ok := svd.Factorize(g, mat.SVDNone); !ok {
		return nil, matrixErrorf(tag, ErrFactorization)
	}

	return svd.Values(nil), nil
}

// Rank returns the numerical rank of m: the number of singular values strictly
// above the cut-off. The cut-off defaults to max(r,c) * MachineEpsilon * σ_max
// and can be fixed with WithRankTolerance.
//
// Errors:
//   - ErrNilMatrix, ErrFactorization (SVD did not converge).
//   - ErrNaNInf for non-finite entries (no meaningful singular values exist).
//
// Complexity:
//   - Time O(r*c*min(r,c)), Space O(r*c).
func Rank(m Matrix, opts ...Option) (int, error) {
	sv, err := singularValues(m, opRank)
	if err != nil {
		return 0, err
	}
	o := gatherOptions(opts...)
	tol := o.rankTol
	if tol < 0 {
		r, c := m.Rows(), m.Cols()
		tol = float64(max(r, c)) * MachineEpsilon * sv[0]
	}
	rank := 0
	for _, s := range sv {
		if s > tol {
			rank++
		}
	}

	return rank, nil
}

// Cond returns the 2-norm condition number σ_max / σ_min.
// A zero smallest singular value yields +Inf (a value, not an error);
// non-finite entries give ErrNaNInf.
func Cond(m Matrix) (float64, error) {
	sv, err := singularValues(m, opCond)
	if err != nil {
		return 0, err
	}
	sMin := sv[len(sv)-1]
	if sMin == 0 {
		return math.Inf(1), nil
	}

	return sv[0] / sMin, nil
}

// Inverse computes A⁻¹ via LU with partial pivoting (solving A·X = I).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrSingular when A is exactly or numerically singular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Inverse(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	g, err := ToGonum(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	var inv mat.Dense
	if err = inv.Inverse(g); err != nil {
		return nil, matrixErrorf(opInverse, asSingular(err))
	}

	return fromGonum(&inv, policyOf(m)), nil
}

// Solve returns X such that A·X = B (or the least-squares / minimum-norm
// solution when A is not square). A and B must share the row count.
//
// Implementation:
//   - square A: LU with partial pivoting.
//   - tall A (r > c): Householder QR least squares; A must have full column rank.
//   - wide A (r < c): LQ minimum-norm solution; A must have full row rank.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (row counts differ).
//   - ErrSingular when the required factor is singular or numerically so.
//   - ErrNaNInf for non-square A with non-finite entries (from the rank check).
//
// Complexity:
//   - Time O(max(r,c)·min(r,c)² + r·c·k) for B with k columns.
func Solve(a, b Matrix) (*Dense, error) {
	if err := ValidateSolveCompatible(a, b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	ga, err := ToGonum(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	gb, err := ToGonum(b)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if r, c := ga.Dims(); r != c {
		// QR/LQ only flag exact zeros on the triangular diagonal; use the SVD rank instead.
		rank, err := Rank(a)
		if err != nil {
			return nil, matrixErrorf(opSolve, err)
		}
		if rank < min(r, c) {
			return nil, matrixErrorf(opSolve,
				fmt.Errorf("rank %d of %dx%d system: %w", rank, r, c, ErrSingular))
		}
	}
	var x mat.Dense
	if err = x.Solve(ga, gb); err != nil {
		return nil, matrixErrorf(opSolve, asSingular(err))
	}

	return fromGonum(&x, policyOf(a)), nil
}

// EigenDecomposition holds the eigenvalues and eigenvectors of a real square matrix.
//
//   - Real[k], Imag[k] are the real and imaginary parts of eigenvalue k;
//     complex conjugate pairs occupy adjacent positions.
//   - Column k of Vectors holds the real part of the eigenvector for eigenvalue k.
//   - For symmetric input the eigenvalues are real and ascending, and Vectors is orthonormal.
type EigenDecomposition struct {
	Real    []float64
	Imag    []float64
	Vectors *Dense
}

// Eigen computes the eigendecomposition of a square matrix.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil.
//   - Stage 2: symmetric input (exact equality A == Aᵀ) → symmetric tridiagonal QL solver;
//     otherwise Hessenberg reduction + shifted QR on the general matrix.
//   - Stage 3: split eigenvalues into real/imaginary parts, take the real part
//     of each right eigenvector.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrEigenFailed (no convergence).
//   - ErrNaNInf when any entry is NaN or ±Inf, under either numeric policy.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Eigen(m Matrix) (*EigenDecomposition, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	g, err := ToGonum(m)
	if err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	// LAPACK's shifted QR iteration does not terminate on NaN entries.
	if err = validateFinite(g.RawMatrix().Data); err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	n, _ := g.Dims()
	policy := policyOf(m)

	if isSymmetric(g) {
		var es mat.EigenSym
		if ok := es.Factorize(mat.NewSymDense(n, g.RawMatrix().Data), true); !ok {
			return nil, matrixErrorf(opEigen, ErrEigenFailed)
		}
		var vecs mat.Dense
		es.VectorsTo(&vecs)

		return &EigenDecomposition{
			Real:    es.Values(nil),
			Imag:    make([]float64, n),
			Vectors: fromGonum(&vecs, policy),
		}, nil
	}

	var eig mat.Eigen
	if ok := eig.Factorize(g, mat.EigenRight); !ok {
		return nil, matrixErrorf(opEigen, ErrEigenFailed)
	}
	values := eig.Values(nil)
	var cv mat.CDense
	eig.VectorsTo(&cv)

	res := &EigenDecomposition{
		Real:    make([]float64, n),
		Imag:    make([]float64, n),
		Vectors: newDense(n, n, policy),
	}
	for k, v := range values {
		res.Real[k] = real(v)
		res.Imag[k] = imag(v)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			res.Vectors.data[i*n+j] = real(cv.At(i, j))
		}
	}

	return res, nil
}

// isSymmetric reports exact symmetry of a square gonum matrix.
func isSymmetric(g *mat.Dense) bool {
	n, _ := g.Dims()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if g.At(i, j) != g.At(j, i) {
				return false
			}
		}
	}

	return true
}

// RealEigenvalues returns the real parts of the eigenvalues of m.
func RealEigenvalues(m Matrix) ([]float64, error) {
	ed, err := Eigen(m)
	if err != nil {
		return nil, err
	}

	return ed.Real, nil
}

// ImaginaryEigenvalues returns the imaginary parts of the eigenvalues of m.
func ImaginaryEigenvalues(m Matrix) ([]float64, error) {
	ed, err := Eigen(m)
	if err != nil {
		return nil, err
	}

	return ed.Imag, nil
}

// Eigenvectors returns the matrix whose columns are the (real parts of the)
// eigenvectors of m, in the same order as RealEigenvalues.
func Eigenvectors(m Matrix) (*Dense, error) {
	ed, err := Eigen(m)
	if err != nil {
		return nil, err
	}

	return ed.Vectors, nil
}

// Det returns the determinant of the receiver. See the package-level Det.
func (m *Dense) Det() (float64, error) { return Det(m) }

// Rank returns the numerical rank of the receiver. See the package-level Rank.
func (m *Dense) Rank(opts ...Option) (int, error) { return Rank(m, opts...) }

// Cond returns the 2-norm condition number of the receiver.
func (m *Dense) Cond() (float64, error) { return Cond(m) }

// Trace returns the diagonal sum of the receiver (square only).
func (m *Dense) Trace() (float64, error) { return Trace(m) }

// Inverse returns the inverse of the receiver.
func (m *Dense) Inverse() (*Dense, error) { return Inverse(m) }

// Solve returns X with m·X = b.
func (m *Dense) Solve(b Matrix) (*Dense, error) { return Solve(m, b) }

// Eigen returns the eigendecomposition of the receiver.
func (m *Dense) Eigen() (*EigenDecomposition, error) { return Eigen(m) }

// String renders the decomposition for diagnostics.
func (e *EigenDecomposition) String() string {
	return fmt.Sprintf("real=%v imag=%v\nvectors=\n%s", e.Real, e.Imag, e.Vectors)
}
