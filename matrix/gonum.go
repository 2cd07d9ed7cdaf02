// SPDX-License-Identifier: MIT

// Package matrix: bridges between Dense and gonum's mat types.
// Decompositions are delegated to gonum/mat (LAPACK-grade pivoted LU, QR/LQ,
// SVD and Hessenberg-QR eigen solvers). Every bridge copies, so gonum never
// aliases Dense storage.
package matrix

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToGonum copies m into a freshly allocated *mat.Dense.
//
// Errors:
//   - ErrNilMatrix; wrapped At errors on the fallback path.
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	r, c := m.Rows(), m.Cols()
	buf := make([]float64, r*c)
	if d, ok := m.(*Dense); ok {
		copy(buf, d.data)

		return mat.NewDense(r, c, buf), nil
	}
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if buf[i*c+j], err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
		}
	}

	return mat.NewDense(r, c, buf), nil
}

// FromGonum copies any gonum matrix into a new Dense with default options.
func FromGonum(g mat.Matrix, opts ...Option) (*Dense, error) {
	r, c := g.Dims()
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("FromGonum(%d,%d): %w", r, c, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	return fromGonum(g, o.validateNaNInf), nil
}

// fromGonum copies g into a new Dense; callers guarantee non-empty dims.
func fromGonum(g mat.Matrix, validateNaNInf bool) *Dense {
	r, c := g.Dims()
	res := newDense(r, c, validateNaNInf)
	if gd, ok := g.(*mat.Dense); ok {
		raw := gd.RawMatrix()
		for i := 0; i < r; i++ {
			copy(res.data[i*c:(i+1)*c], raw.Data[i*raw.Stride:i*raw.Stride+c])
		}

		return res
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			res.data[i*c+j] = g.At(i, j)
		}
	}

	return res
}

// asSingular maps gonum's singularity reports onto ErrSingular.
// mat.Condition signals a matrix too ill-conditioned for a trustworthy
// result (exact singularity reports an infinite condition number).
func asSingular(err error) error {
	if err == nil {
		return nil
	}
	var cond mat.Condition
	if errors.As(err, &cond) || errors.Is(err, mat.ErrSingular) {
		return fmt.Errorf("%w (%v)", ErrSingular, err)
	}

	return fmt.Errorf("%w: %v", ErrFactorization, err)
}
