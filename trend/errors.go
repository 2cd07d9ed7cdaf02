// SPDX-License-Identifier: MIT

package trend

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when the series has no observations.
	ErrEmptyInput = errors.New("trend: input series is empty")

	// ErrNonPositiveInput matches every *NonPositiveError.
	ErrNonPositiveInput = errors.New("trend: input series has a zero or negative item")

	// ErrUnknownKind is returned by Forecast for a Kind outside Linear..Continuous.
	ErrUnknownKind = errors.New("trend: unknown forecast kind")
)

// NonPositiveError identifies the first observation that rules out a
// log-domain fit (compound or continuous growth).
type NonPositiveError struct {
	Index int
	Value float64
}

func (e *NonPositiveError) Error() string {
	return fmt.Sprintf("trend: item %d of the input series is zero or negative (%g)", e.Index, e.Value)
}

// Is reports ErrNonPositiveInput, or another *NonPositiveError at the same index.
func (e *NonPositiveError) Is(target error) bool {
	if target == ErrNonPositiveInput {
		return true
	}
	if other, ok := target.(*NonPositiveError); ok {
		return other.Index == e.Index
	}

	return false
}
