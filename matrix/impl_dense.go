// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide an owned row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the checked surface: At/Set return errors instead of panicking.
//   - Offer an unchecked row accessor (Row) for callers that already validated indices.
//   - Keep value semantics: every constructor, Clone and Assign produces a buffer
//     that no other Dense or Vector references.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Row: O(1); Clone/Assign: O(r*c); Induced: O(r'*c').

package matrix

import (
	"fmt"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"      // method tag used in error wrappers
	ctxSet      = "Set"     // method tag used in error wrappers
	ctxInduce   = "Induced" // ctor/tag for Dense.Induced
	ctxFromRows = "NewDenseFromRows"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Produces "Dense.<method>(row,col): <sentinel>"; the sentinel survives %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of T.
//   - r,c hold dimensions (rows, cols); both are 0 for the empty matrix.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j),
//     nil exactly when r*c == 0.
//
// The zero value is the empty 0×0 matrix and is ready to use.
type Dense[T Number] struct {
	r, c int // row and column counts
	data []T // contiguous row-major storage (len == r*c)
}

// NewDense creates an r×c zero matrix.
// MAIN DESCRIPTION:
//   - Public constructor with shape validation.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: normalize any zero-area request to the canonical empty 0×0 matrix.
//   - Stage 3: allocate a zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (negative dimension).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Number](rows, cols int) (*Dense[T], error) {
	return NewDenseFilled[T](rows, cols, 0)
}

// NewDenseFilled creates an r×c matrix with every element equal to fill.
// Same shape rules as NewDense.
func NewDenseFilled[T Number](rows, cols int, fill T) (*Dense[T], error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, err)
	}

	return newDense(rows, cols, fill), nil
}

// newDense is the unchecked internal allocator; callers guarantee rows,cols >= 0.
func newDense[T Number](rows, cols int, fill T) *Dense[T] {
	if rows*cols == 0 {
		return &Dense[T]{}
	}

	return &Dense[T]{r: rows, c: cols, data: ewFill(rows*cols, fill)}
}

// NewDenseFromRows builds a matrix from a nested row literal such as
// [][]float64{{1, 2, 3}, {4, 5, 6}}.
// Implementation:
//   - Stage 1: cols is taken from the first row; every row must match it.
//   - Stage 2: copy rows into a fresh row-major buffer.
//
// Behavior highlights:
//   - The literal is copied; later mutation of rows does not affect the result.
//   - An empty outer list, or rows that are all empty, yields the empty matrix.
//
// Errors:
//   - ErrMalformedLiteral when inner lengths differ (reports the first offending row).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromRows[T Number](rows [][]T) (*Dense[T], error) {
	r := len(rows)
	if r == 0 {
		return &Dense[T]{}, nil
	}
	c := len(rows[0])
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d elements, want %d: %w",
				ctxFromRows, i, len(rows[i]), c, ErrMalformedLiteral)
		}
	}
	if c == 0 {
		return &Dense[T]{}, nil
	}

	m := newDense[T](r, c, 0)
	for i, row := range rows {
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports rows == cols (true for the empty matrix).
func (m *Dense[T]) IsSquare() bool { return m.r == m.c }

// IsEmpty reports whether m holds no elements.
func (m *Dense[T]) IsEmpty() bool { return m.r*m.c == 0 }

// Row returns the storage of row i without bounds validation.
// The returned slice aliases m; writes through it mutate m. Indexing outside
// [0, Rows()) or past Cols() panics like any out-of-range slice access.
// Use At/Set when the index is not already known to be valid.
func (m *Dense[T]) Row(i int) []T {
	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c]
}

// Raw exposes the row-major backing slice (nil for the empty matrix).
// The slice aliases m; it is meant for hot loops and interop, not for sharing.
func (m *Dense[T]) Raw() []T { return m.data }

// indexOf bounds-checks (row,col) and computes the row-major offset.
// Returns a bare ErrOutOfRange; At/Set wrap it with coordinates.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; the error carries the coordinates.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same shape).
// Mutations of the clone never affect m and vice versa.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	return &Dense[T]{r: m.r, c: m.c, data: ewClone(m.data)}
}

// Assign replaces the contents of m with a deep copy of src and returns m.
// Self-assignment (m.Assign(m)) is detected and leaves m untouched; the old
// buffer is dropped only after the copy is taken.
// Complexity: O(r*c).
func (m *Dense[T]) Assign(src *Dense[T]) *Dense[T] {
	if m == src {
		return m
	}
	m.r, m.c, m.data = src.r, src.c, ewClone(src.data)

	return m
}

// Equal reports element-wise equality. Different shapes are simply unequal.
// Complexity: O(r*c).
func (m *Dense[T]) Equal(o *Dense[T]) bool {
	if o == nil || m.r != o.r || m.c != o.c {
		return false
	}

	return ewEqual(m.data, o.data)
}

// Induced materializes a copy submatrix using explicit index sets.
// MAIN DESCRIPTION:
//   - Copy rows/cols at the given index lists (duplicates allowed).
//
// Implementation:
//   - Stage 1: zero-sized result is legal and returns the empty matrix.
//   - Stage 2: nested loops with direct offset math; bounds-check each index.
//
// Errors:
//   - ErrOutOfRange (index outside bounds).
//
// Complexity:
//   - Time O(rp*cp), Space O(rp*cp).
func (m *Dense[T]) Induced(rowsIdx, colsIdx []int) (*Dense[T], error) {
	rp := len(rowsIdx) // result rows
	cp := len(colsIdx) // result cols
	for _, ri := range rowsIdx {
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
	}
	for _, cj := range colsIdx {
		if cj < 0 || cj >= m.c {
			return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
		}
	}

	res := newDense[T](rp, cp, 0)
	if res.IsEmpty() {
		return res, nil
	}

	var i, j, base int
	for i = 0; i < rp; i++ {
		base = rowsIdx[i] * m.c // source row offset in base
		for j = 0; j < cp; j++ {
			res.data[i*cp+j] = m.data[base+colsIdx[j]]
		}
	}

	return res, nil
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. No allocations.
// Complexity: O(r*c).
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place, in row-major order.
// Complexity: O(r*c).
func (m *Dense[T]) Apply(f func(i, j int, v T) T) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}
}
