// SPDX-License-Identifier: MIT

// Package matrix - shared flat-slice kernels (ew*).
//
// Purpose:
//   - Both Dense and Vector own a single contiguous buffer, so every
//     element-wise operation reduces to a loop over two flat slices.
//   - These unexported kernels are the one place those loops live; Dense and
//     Vector methods validate shapes, allocate, and delegate here.
//
// Determinism:
//   - Fixed 0..n-1 loop order; no allocation inside kernels except ewClone.

package matrix

import (
	"gonum.org/v1/gonum/floats/scalar"
)

// ewClone returns an independent copy of src (nil for an empty src).
// Complexity: O(n).
func ewClone[T Number](src []T) []T {
	if len(src) == 0 {
		return nil
	}
	dst := make([]T, len(src))
	copy(dst, src)

	return dst
}

// ewFill allocates n elements set to fill (nil when n == 0).
func ewFill[T Number](n int, fill T) []T {
	if n == 0 {
		return nil
	}
	buf := make([]T, n)
	if fill != 0 {
		for i := range buf {
			buf[i] = fill
		}
	}

	return buf
}

// ewAddScaled computes dst[i] += sign*src[i]; sign is +1 (add) or -1 (sub).
// Keeping sign as T avoids a branch inside the loop.
func ewAddScaled[T Number](dst, src []T, sign T) {
	for i := range dst {
		dst[i] += sign * src[i]
	}
}

// ewScale computes dst[i] *= a.
func ewScale[T Number](dst []T, a T) {
	for i := range dst {
		dst[i] *= a
	}
}

// ewDiv computes dst[i] /= a. Callers must run divisionGuard first.
func ewDiv[T Number](dst []T, a T) {
	for i := range dst {
		dst[i] /= a
	}
}

// ewNeg computes dst[i] = -dst[i].
func ewNeg[T Number](dst []T) {
	for i := range dst {
		dst[i] = -dst[i]
	}
}

// ewEqual reports exact element-wise equality of equal-length slices.
// NaN never equals NaN, matching the element type's == operator.
func ewEqual[T Number](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// ewDot returns Σ a[i]*b[i] accumulated in T, starting from the zero value.
func ewDot[T Number](a, b []T) T {
	var sum T
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}

// ewAllClose checks element-wise closeness of equal-length slices.
// Each pair passes when |a-b| ≤ eps or the relative difference ≤ rtol
// (gonum scalar.EqualWithinAbsOrRel). Early-exits on the first violation.
// Complexity: O(n) time, O(1) extra space.
func ewAllClose[T Number](a, b []T, eps, rtol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !scalar.EqualWithinAbsOrRel(float64(a[i]), float64(b[i]), eps, rtol) {
			return false
		}
	}

	return true
}
