// SPDX-License-Identifier: MIT
package broadcast_test

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/broadcast"
	"github.com/katalvlaran/lvlinalg/matrix"
)

// ExampleOperator_Reduce adds a scalar to every entry while summing two matrices.
func ExampleOperator_Reduce() {
	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.NewIdentity(2)

	sum, err := broadcast.Plus.Reduce(broadcast.Matrix(a), broadcast.Scalar(10), broadcast.Matrix(b))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(sum)

	// Output:
	// [12, 12]
	// [13, 15]
}

// ExampleTimes contrasts the matrix product with the elementwise product.
func ExampleTimes() {
	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})

	prod, _ := broadcast.Times.Apply(broadcast.Matrix(a), broadcast.Matrix(a))
	had, _ := broadcast.TimesElementwise.Apply(broadcast.Matrix(a), broadcast.Matrix(a))
	fmt.Print(prod)
	fmt.Print(had)

	// Output:
	// [7, 10]
	// [15, 22]
	// [1, 4]
	// [9, 16]
}
