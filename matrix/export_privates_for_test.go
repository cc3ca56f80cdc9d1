// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private helpers and the options snapshot.
//
// Purpose:
//   - Expose UNEXPORTED kernels and the resolved Options to matrix_test ONLY.
//   - The file name ends in _test.go, so none of this reaches production builds.

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicEpsilonInvalid_TestOnly   = panicEpsilonInvalid
	PanicRelTolInvalid_TestOnly    = panicRelTolInvalid
	PanicPrecisionInvalid_TestOnly = panicPrecisionInvalid
)

// IsIntegral_TestOnly forwards to isIntegral.
func IsIntegral_TestOnly[T Number]() bool { return isIntegral[T]() }

// EwAllClose_TestOnly forwards to ewAllClose.
func EwAllClose_TestOnly(a, b []float64, eps, rtol float64) bool {
	return ewAllClose(a, b, eps, rtol)
}

// EwClone_TestOnly forwards to ewClone.
func EwClone_TestOnly(src []float64) []float64 { return ewClone(src) }

// SkipIndex_TestOnly forwards to skipIndex.
func SkipIndex_TestOnly(n, k int) []int { return skipIndex(n, k) }

// OptionsSnapshot is a stable, test-facing copy of internal Options fields.
type OptionsSnapshot struct {
	Precision int
	Eps       float64
	RelTol    float64
}

// GatherOptionsSnapshot_TestOnly returns the options resolved from opts.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		Precision: o.precision,
		Eps:       o.eps,
		RelTol:    o.rtol,
	}
}
