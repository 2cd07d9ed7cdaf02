// Package lvlinalg is a dense matrix toolkit for numeric host applications:
// build and mutate matrices, combine them with broadcasting operators,
// factor and solve them, and fit trends and regressions on top.
//
// 🚀 What is inside?
//
//	• matrix:    Dense type, arithmetic kernels, Det/Rank/Cond/Inverse/Eigen/Solve
//	• broadcast: Plus, Minus, Times, TimesElementwise over scalar/matrix operand lists
//	• trend:     linear, compound and continuous growth forecasts (+ fit charts)
//	• ols:       multi-variable ordinary least squares with R², TSS, RSS
//
// ✨ Why choose lvlinalg?
//
//   - Explicit errors: every failure is a sentinel you can match with errors.Is
//   - No partial writes: mutators validate everything before touching data
//   - Proven numerics: factorizations run on gonum's LAPACK routines
//
// Dependency direction:
//
//	matrix ← broadcast
//	matrix ← trend
//	matrix ← ols
//
// Quick example:
//
//	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
//	inv, _ := a.Inverse()          // [[-2, 1], [1.5, -0.5]]
//	res, _ := trend.LinearTrend([]float64{1, 2, 3, 4}) // res.Forecast == 5
//
// Runnable scenarios live in examples/:
//
//	go run ./examples
package lvlinalg
