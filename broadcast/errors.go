// SPDX-License-Identifier: MIT

package broadcast

import "errors"

var (
	// ErrEmptyOperands is returned by Reduce and Map when given no operands.
	ErrEmptyOperands = errors.New("broadcast: no operands")

	// ErrTypeViolation is returned by FromValue for values that are neither
	// numbers nor matrices.
	ErrTypeViolation = errors.New("broadcast: operand is neither a number nor a matrix")

	// ErrMatrixRequired is returned by RequireMatrix when a reduction produced a scalar.
	ErrMatrixRequired = errors.New("broadcast: matrix result required")
)
