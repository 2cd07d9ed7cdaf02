// SPDX-License-Identifier: MIT

// Package ols fits multi-variable ordinary least squares models.
//
// Regress takes one matrix in Y|X layout: column 0 holds the dependent
// variable and columns 1..k the regressors, one observation per row. The
// design [1 | X] adds an intercept, so a fit needs more observations than
// regressors (k < n).
//
//	res, err := ols.Regress(data)
//	// res.Coefficients = [intercept, b1, ..., bk]
//	// res.Stats()      = [R², TSS, RSS]
//
// R² is reported as 1 − RSS/TSS without a special case for a constant
// dependent variable: TSS = 0 yields NaN (exact fit) or −Inf.
package ols
