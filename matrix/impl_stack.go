// SPDX-License-Identifier: MIT

// Package matrix - stacking and block extraction for Dense and Vector.
// All results are fresh copies; operands are never mutated.

package matrix

import "fmt"

// Vstack returns m with b's rows appended below (self's rows first).
// Errors: ErrDimensionMismatch when column counts differ.
// Complexity: O((r_m + r_b)·c).
func (m *Dense[T]) Vstack(b *Dense[T]) (*Dense[T], error) {
	if b == nil || m.c != b.c {
		return nil, matrixErrorf(opVstack, fmt.Errorf("%s over %s: %w", shapeOf(m), shapeOf(b), ErrDimensionMismatch))
	}

	res := newDense[T](m.r+b.r, m.c, 0)
	copy(res.data, m.data)               // rows of m
	copy(res.data[len(m.data):], b.data) // rows of b

	return res, nil
}

// Hstack returns m with b's columns appended on the right (self's columns first).
// Errors: ErrDimensionMismatch when row counts differ.
// Complexity: O(r·(c_m + c_b)).
func (m *Dense[T]) Hstack(b *Dense[T]) (*Dense[T], error) {
	if b == nil || m.r != b.r {
		return nil, matrixErrorf(opHstack, fmt.Errorf("%s beside %s: %w", shapeOf(m), shapeOf(b), ErrDimensionMismatch))
	}

	cols := m.c + b.c
	res := newDense[T](m.r, cols, 0)
	if res.IsEmpty() {
		return res, nil
	}
	for i := 0; i < m.r; i++ {
		copy(res.data[i*cols:], m.data[i*m.c:(i+1)*m.c])
		copy(res.data[i*cols+m.c:], b.data[i*b.c:(i+1)*b.c])
	}

	return res, nil
}

// HstackVector appends v as a trailing column; shorthand for m.Hstack(v.ToMatrix()).
func (m *Dense[T]) HstackVector(v *Vector[T]) (*Dense[T], error) {
	if err := ValidateVecLen(v, m.r); err != nil {
		return nil, matrixErrorf(opHstack, fmt.Errorf("%s beside len %d: %w", shapeOf(m), vecLen(v), err))
	}

	return m.Hstack(v.ToMatrix())
}

// Block returns the h×w submatrix whose top-left corner is (row, col).
// Requires row,col ≥ 0; h,w > 0; row+h ≤ Rows(); col+w ≤ Cols().
// Errors: ErrOutOfRange.
// Complexity: O(h·w).
func (m *Dense[T]) Block(row, col, h, w int) (*Dense[T], error) {
	if err := validateMatrixBlock(row, col, h, w, m.r, m.c); err != nil {
		return nil, matrixErrorf(opBlock, fmt.Errorf("(%d,%d,%d,%d) in %s: %w", row, col, h, w, shapeOf(m), err))
	}

	res := newDense[T](h, w, 0)
	var i, src int
	for i = 0; i < h; i++ {
		src = (row+i)*m.c + col
		copy(res.data[i*w:(i+1)*w], m.data[src:src+w])
	}

	return res, nil
}

// Vstack returns the concatenation of v and w (v's elements first).
// Errors: ErrNilMatrix when w is nil. Complexity: O(n_v + n_w).
func (v *Vector[T]) Vstack(w *Vector[T]) (*Vector[T], error) {
	if w == nil {
		return nil, matrixErrorf(opVstack, fmt.Errorf("len %d over <nil>: %w", v.n, ErrNilMatrix))
	}

	res := newVector[T](v.n+w.n, 0)
	copy(res.data, v.data)
	copy(res.data[v.n:], w.data)

	return res, nil
}

// Hstack returns a matrix whose first column is v followed by m's columns.
// Errors: ErrDimensionMismatch when Len() != m.Rows().
func (v *Vector[T]) Hstack(m *Dense[T]) (*Dense[T], error) {
	if m == nil || v.n != m.r {
		return nil, matrixErrorf(opHstack, fmt.Errorf("len %d beside %s: %w", v.n, shapeOf(m), ErrDimensionMismatch))
	}

	return v.ToMatrix().Hstack(m)
}

// Block returns the sub-vector [head, head+length).
// Requires head ≥ 0, length ≥ 0 and head+length < Len(). The upper bound is
// strict: a block that ends exactly at Len() is rejected.
// Errors: ErrOutOfRange.
func (v *Vector[T]) Block(head, length int) (*Vector[T], error) {
	if err := validateVectorBlock(head, length, v.n); err != nil {
		return nil, matrixErrorf(opBlock, fmt.Errorf("(%d,%d) in len %d: %w", head, length, v.n, err))
	}

	res := newVector[T](length, 0)
	copy(res.data, v.data[head:head+length])

	return res, nil
}
