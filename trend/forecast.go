// SPDX-License-Identifier: MIT

package trend

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// Kind selects the functional form of the growth curve.
type Kind int

const (
	// Linear fits y = c + s·t.
	Linear Kind = iota
	// Compound fits y = c·(1+r)^t.
	Compound
	// Continuous fits y = c·e^(r·t).
	Continuous
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Linear:
		return "linear"
	case Compound:
		return "compound"
	case Continuous:
		return "continuous"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// logDomain reports whether the kind fits the log-transformed series.
func (k Kind) logDomain() bool { return k == Compound || k == Continuous }

// Result describes a fitted growth curve and its one-step-ahead forecast.
//
// Rate depends on Kind: the slope s for Linear, the growth factor (1+r) for
// Compound (below 1 for a declining series) and the continuous rate r for
// Continuous. RSquared is measured on the fitted series, which is ln(y) for
// the two log-domain kinds.
type Result struct {
	Kind     Kind
	Forecast float64 // curve value at t = N
	Constant float64
	Rate     float64
	RSquared float64
	N        int // number of observations
}

// At evaluates the fitted curve at time t (observations sit at t = 0..N-1).
func (r Result) At(t float64) float64 {
	switch r.Kind {
	case Compound:
		return r.Constant * math.Pow(r.Rate, t)
	case Continuous:
		return r.Constant * math.Exp(r.Rate*t)
	default:
		return r.Constant + r.Rate*t
	}
}

// Tuple returns (forecast, constant, rate, R²) in that order.
func (r Result) Tuple() [4]float64 {
	return [4]float64{r.Forecast, r.Constant, r.Rate, r.RSquared}
}

// LinearTrend fits y = c + s·t to ys and forecasts t = len(ys).
func LinearTrend(ys []float64) (Result, error) { return Forecast(Linear, ys) }

// CompoundTrend fits y = c·(1+r)^t to ys. Every item must be positive.
func CompoundTrend(ys []float64) (Result, error) { return Forecast(Compound, ys) }

// ContinuousTrend fits y = c·e^(r·t) to ys. Every item must be positive.
func ContinuousTrend(ys []float64) (Result, error) { return Forecast(Continuous, ys) }

// Forecast fits the growth curve of the given kind to ys by least squares on
// the design X = [1, t] and forecasts the next period t = len(ys).
//
// Behavior highlights:
//   - One observation: no trend is fittable; forecast and constant are ys[0],
//     the rate is neutral (0, or 1 for Compound) and R² is 0.
//   - A constant series (TSS = 0) reports R² = 1.
//
// Errors:
//   - ErrEmptyInput for an empty series.
//   - *NonPositiveError (matching ErrNonPositiveInput) for Compound/Continuous
//     when an item is ≤ 0; the first offending index is reported.
//   - ErrUnknownKind for an invalid kind.
func Forecast(kind Kind, ys []float64) (Result, error) {
	if kind < Linear || kind > Continuous {
		return Result{}, fmt.Errorf("Forecast(%v): %w", kind, ErrUnknownKind)
	}
	n := len(ys)
	if n == 0 {
		return Result{}, fmt.Errorf("Forecast(%v): %w", kind, ErrEmptyInput)
	}
	if kind.logDomain() {
		for i, y := range ys {
			if y <= 0 {
				return Result{}, fmt.Errorf("Forecast(%v): %w", kind, &NonPositiveError{Index: i, Value: y})
			}
		}
	}

	if n == 1 {
		res := Result{Kind: kind, Forecast: ys[0], Constant: ys[0], N: 1}
		if kind == Compound {
			res.Rate = 1
		}

		return res, nil
	}

	target := ys
	if kind.logDomain() {
		target = make([]float64, n)
		for i, y := range ys {
			target[i] = math.Log(y)
		}
	}

	X, err := timeDesign(n)
	if err != nil {
		return Result{}, fmt.Errorf("Forecast(%v): %w", kind, err)
	}
	fit, err := matrix.FitLeastSquares(X, target)
	if err != nil {
		return Result{}, fmt.Errorf("Forecast(%v): %w", kind, err)
	}

	res := Result{Kind: kind, N: n, RSquared: 1}
	if fit.TSS > 0 {
		res.RSquared = fit.RSquared()
	}
	intercept, slope := fit.Coefficients[0], fit.Coefficients[1]
	switch kind {
	case Linear:
		res.Constant, res.Rate = intercept, slope
	case Compound:
		res.Constant, res.Rate = math.Exp(intercept), math.Exp(slope)
	case Continuous:
		res.Constant, res.Rate = math.Exp(intercept), slope
	}
	res.Forecast = res.At(float64(n))

	return res, nil
}

// timeDesign builds the n×2 design matrix [1, t] for t = 0..n-1.
func timeDesign(n int) (*matrix.Dense, error) {
	ones := make([]float64, n)
	ts := make([]float64, n)
	for i := range ts {
		ones[i] = 1
		ts[i] = float64(i)
	}

	return matrix.NewFromColumns([][]float64{ones, ts})
}
