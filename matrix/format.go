// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Pretty renders m as aligned rows, one line per row, for human reading.
// Columns are padded to a common width; use String for a compact dump.
func (m *Dense) Pretty() string {
	// The gonum view shares m's buffer; Formatted only reads it.
	g := mat.NewDense(m.r, m.c, m.data)

	return fmt.Sprintf("%v", mat.Formatted(g, mat.Squeeze()))
}

// PrettyPrint renders any Matrix the way (*Dense).Pretty does.
func PrettyPrint(m Matrix) (string, error) {
	g, err := ToGonum(m)
	if err != nil {
		return "", matrixErrorf("PrettyPrint", err)
	}

	return fmt.Sprintf("%v", mat.Formatted(g, mat.Squeeze())), nil
}
