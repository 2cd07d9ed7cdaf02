// SPDX-License-Identifier: MIT
package trend_test

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/trend"
)

// ExampleLinearTrend forecasts the next item of a straight line.
func ExampleLinearTrend() {
	res, err := trend.LinearTrend([]float64{1, 2, 3, 4})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("next=%.2f constant=%.2f slope=%.2f r2=%.2f\n", res.Forecast, res.Constant, res.Rate, res.RSquared)

	// Output:
	// next=5.00 constant=1.00 slope=1.00 r2=1.00
}

// ExampleCompoundTrend reports the growth factor 1+r of a doubling series.
func ExampleCompoundTrend() {
	res, err := trend.CompoundTrend([]float64{1, 2, 4, 8})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("next=%.2f factor=%.2f\n", res.Forecast, res.Rate)

	_, err = trend.CompoundTrend([]float64{-1, 2, 3})
	fmt.Println(err)

	// Output:
	// next=16.00 factor=2.00
	// Forecast(compound): trend: item 0 of the input series is zero or negative (-1)
}
