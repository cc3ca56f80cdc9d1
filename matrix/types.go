// SPDX-License-Identifier: MIT

// Package matrix: element types shared by Dense and Vector.
// This file contains ONLY the numeric constraint and tiny generic helpers that
// both containers rely on (integral detection, float64 bridging). Errors and
// options live in dedicated files (errors.go, options.go).
package matrix

// Number is the set of element types accepted by Dense and Vector.
// Integer kinds use truncating Go arithmetic; float kinds follow IEEE-754.
// Unsigned kinds are excluded because Neg and the cofactor sign alternation
// have no meaning for them.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// isIntegral reports whether T is one of the integer kinds.
// 1/2 truncates to 0 only under integer division.
// Complexity: O(1).
func isIntegral[T Number]() bool {
	one, two := T(1), T(2)

	return one/two == 0
}

// divisionGuard returns ErrDivisionByZero when dividing by a is undefined for T.
// Floating T never fails here: x/0 yields ±Inf or NaN by IEEE rules.
func divisionGuard[T Number](a T) error {
	if a == 0 && isIntegral[T]() {
		return ErrDivisionByZero
	}

	return nil
}

// toFloat64 widens v for helpers that need float math (sqrt, tolerance checks).
func toFloat64[T Number](v T) float64 { return float64(v) }
