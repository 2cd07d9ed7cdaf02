// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private kernels and the options snapshot.
//
// Purpose:
//   - Expose UNEXPORTED ew* micro-kernels and resolved options to matrix_test ONLY.
//   - The _test.go suffix keeps the bridge out of production builds.

var (
	// ExportedEwBroadcastSubCols exposes ewBroadcastSubCols for white-box tests.
	ExportedEwBroadcastSubCols = ewBroadcastSubCols
	// ExportedEwAllClose exposes ewAllClose for white-box tests.
	ExportedEwAllClose = ewAllClose
)

// OptionsSnapshot is a read-only view of the resolved Options.
type OptionsSnapshot struct {
	Eps            float64
	ValidateNaNInf bool
	RankTol        float64
}

// GatherOptionsSnapshot_TestOnly resolves setters against defaults and snapshots the result.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Eps: o.eps, ValidateNaNInf: o.validateNaNInf, RankTol: o.rankTol}
}
