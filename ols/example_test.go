// SPDX-License-Identifier: MIT
package ols_test

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/ols"
)

// ExampleRegress recovers Y = 1 + 2·X from exact data.
func ExampleRegress() {
	data, _ := matrix.NewFromRows([][]float64{{3, 1}, {5, 2}, {7, 3}, {9, 4}})

	res, err := ols.Regress(data)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("b0=%.2f b1=%.2f r2=%.2f\n", res.Coefficients[0], res.Coefficients[1], res.RSquared)

	// Output:
	// b0=1.00 b1=2.00 r2=1.00
}
