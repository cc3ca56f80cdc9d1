// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation should panic on user-triggered error conditions.
// Panics are reserved for programmer errors in option constructors.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Operations wrap these sentinels with an operation
// tag, fmt.Errorf("Op: %w", ErrX); callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// shape/dimension -> index range -> conversion shape -> arithmetic domain.

var (
	// ErrInvalidDimensions indicates that requested dimensions are negative
	// (or non-positive where a non-empty result is required, e.g. NewIdentity).
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// e.g. Add on different shapes, Mul where a.Cols != b.Rows, or stacking
	// along an unequal orthogonal dimension.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square (and non-empty) matrix was required.
	// It wraps ErrDimensionMismatch, so errors.Is matches both.
	ErrNonSquare = fmt.Errorf("matrix is not square: %w", ErrDimensionMismatch)

	// ErrOutOfRange indicates that an index or a requested sub-region lies
	// outside valid bounds (checked access, Block, Cofactor, Induced).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrShapeConversion indicates a conversion whose shape precondition does
	// not hold: Dense->Vector with cols != 1, Dense->scalar when not 1x1,
	// Vector->scalar when size != 1.
	ErrShapeConversion = errors.New("matrix: shape does not allow conversion")

	// ErrMalformedLiteral indicates a nested row literal whose inner rows do
	// not all share the same length.
	ErrMalformedLiteral = errors.New("matrix: malformed literal")

	// ErrDivisionByZero is returned when an integral element type is divided
	// by zero. Floating element types propagate ±Inf/NaN instead.
	ErrDivisionByZero = errors.New("matrix: integer division by zero")

	// ErrNilMatrix indicates that a nil *Dense or *Vector operand was passed.
	ErrNilMatrix = errors.New("matrix: nil operand")

	// ErrSingular is returned by Inverse (integral element types only) when the
	// determinant is zero, and by Normal when an integral vector has zero norm.
	ErrSingular = errors.New("matrix: singular operand")
)
