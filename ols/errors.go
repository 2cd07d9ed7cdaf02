// SPDX-License-Identifier: MIT

package ols

import "errors"

// ErrOverdetermined is returned when the data has no more observations than
// regressors, leaving no degrees of freedom for the intercept.
var ErrOverdetermined = errors.New("ols: regressors must be fewer than observations")
