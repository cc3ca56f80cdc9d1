// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape and index checks.
//  - Keep kernels minimal by delegating precondition checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly
//    with their operation tag via matrixErrorf.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing.

package matrix

// ValidateSameShape ensures a and b have identical rows and cols.
// Returns ErrNilMatrix for nil operands, ErrDimensionMismatch otherwise.
// Complexity: O(1).
func ValidateSameShape[T Number](a, b *Dense[T]) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.r != b.r || a.c != b.c {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateSquare ensures m is square and non-empty.
// The empty 0×0 matrix has no determinant, so it is rejected as well.
// Returns ErrNonSquare (which matches ErrDimensionMismatch).
func ValidateSquare[T Number](m *Dense[T]) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.r != m.c || m.r == 0 {
		return ErrNonSquare
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows.
// Complexity: O(1).
func ValidateMulCompatible[T Number](a, b *Dense[T]) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.c != b.r {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateVecLen ensures v has exactly n elements.
// Use for MatVec-like and stacking operations instead of ad hoc length code.
func ValidateVecLen[T Number](v *Vector[T], n int) error {
	if v == nil {
		return ErrNilMatrix
	}
	if v.n != n {
		return ErrDimensionMismatch
	}

	return nil
}

// validateSameLen ensures two vectors have equal length.
func validateSameLen[T Number](a, b *Vector[T]) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.n != b.n {
		return ErrDimensionMismatch
	}

	return nil
}

// validateIndex checks 0 ≤ i < n.
func validateIndex(i, n int) error {
	if i < 0 || i >= n {
		return ErrOutOfRange
	}

	return nil
}

// validateDims rejects negative dimensions.
func validateDims(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return ErrInvalidDimensions
	}

	return nil
}

// validateMatrixBlock checks a Dense block window:
// row,col ≥ 0; h,w > 0; row+h ≤ rows; col+w ≤ cols.
func validateMatrixBlock(row, col, h, w, rows, cols int) error {
	if row < 0 || col < 0 || h <= 0 || w <= 0 || row+h > rows || col+w > cols {
		return ErrOutOfRange
	}

	return nil
}

// validateVectorBlock checks a Vector block window:
// head ≥ 0; length ≥ 0; head+length < n.
// The upper bound is strict, so a block ending exactly at n is rejected.
func validateVectorBlock(head, length, n int) error {
	if head < 0 || length < 0 || head+length >= n {
		return ErrOutOfRange
	}

	return nil
}
