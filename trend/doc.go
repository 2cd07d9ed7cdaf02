// SPDX-License-Identifier: MIT

// Package trend forecasts the next value of an evenly spaced series.
//
// Three growth curves are fitted by ordinary least squares on t = 0..N-1:
//
//   - Linear:     y = c + s·t
//   - Compound:   y = c·(1+r)^t, fitted as ln y = ln c + t·ln(1+r)
//   - Continuous: y = c·e^(r·t), fitted as ln y = ln c + r·t
//
// Forecast returns a Result carrying the value at t = N, the curve constant,
// the rate and R². The log-domain curves require strictly positive input and
// report the first offending item through *NonPositiveError.
//
// NewPlot, SavePlot and WritePlot render a series together with its fitted
// curve using gonum/plot.
package trend
