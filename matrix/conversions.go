// SPDX-License-Identifier: MIT

// Package matrix - explicit conversions between Dense, Vector and scalars.
//
// Every conversion is a named method returning (value, error) so the shape
// precondition is visible at the call site. Every conversion allocates a new
// buffer; Dense and Vector never share storage.

package matrix

import "fmt"

const (
	ctxToVector = "ToVector"
	ctxToScalar = "ToScalar"
)

// ToVector converts a single-column matrix (rows×1) to a Vector of length rows.
// The empty matrix converts to the empty vector, so the Vector→Dense→Vector
// round-trip also holds for empty values. This is the one exception to the
// Cols() == 1 rule: a 0×0 matrix has no column yet still converts.
// Errors: ErrShapeConversion when Cols() != 1.
// Complexity: O(rows).
func (m *Dense[T]) ToVector() (*Vector[T], error) {
	if m.IsEmpty() {
		return &Vector[T]{}, nil
	}
	if m.c != 1 {
		return nil, fmt.Errorf("Dense.%s: shape %dx%d: %w", ctxToVector, m.r, m.c, ErrShapeConversion)
	}

	return &Vector[T]{n: m.r, data: ewClone(m.data)}, nil
}

// ToScalar returns the sole element of a 1×1 matrix.
// Errors: ErrShapeConversion for any other shape.
func (m *Dense[T]) ToScalar() (T, error) {
	if m.r != 1 || m.c != 1 {
		return 0, fmt.Errorf("Dense.%s: shape %dx%d: %w", ctxToScalar, m.r, m.c, ErrShapeConversion)
	}

	return m.data[0], nil
}

// ToMatrix converts v to a Len()×1 column matrix.
// Always defined; the empty vector yields the empty matrix.
func (v *Vector[T]) ToMatrix() *Dense[T] {
	if v.n == 0 {
		return &Dense[T]{}
	}

	return &Dense[T]{r: v.n, c: 1, data: ewClone(v.data)}
}

// ToScalar returns the sole element of a length-1 vector.
// Errors: ErrShapeConversion when Len() != 1.
func (v *Vector[T]) ToScalar() (T, error) {
	if v.n != 1 {
		return 0, fmt.Errorf("Vector.%s: size %d: %w", ctxToScalar, v.n, ErrShapeConversion)
	}

	return v.data[0], nil
}

// Transpose returns v as a 1×Len() row matrix with identical element order.
func (v *Vector[T]) Transpose() *Dense[T] {
	if v.n == 0 {
		return &Dense[T]{}
	}

	return &Dense[T]{r: 1, c: v.n, data: ewClone(v.data)}
}

// Diagonal returns the Len()×Len() matrix with v on the main diagonal and
// zeros elsewhere.
// Complexity: O(n^2) zeroing + O(n) writes.
func (v *Vector[T]) Diagonal() *Dense[T] {
	d := newDense[T](v.n, v.n, 0)
	for i := 0; i < v.n; i++ {
		d.data[i*v.n+i] = v.data[i]
	}

	return d
}
