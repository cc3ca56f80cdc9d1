// SPDX-License-Identifier: MIT

// Package matrix - Vector storage & safe accessors.
//
// Vector mirrors Dense: one owned contiguous buffer, checked At/Set,
// unchecked Elem/Raw for hot loops, deep Clone/Assign.

package matrix

import "fmt"

// vectorErrorf wraps err with a Vector method tag and index.
func vectorErrorf(method string, i int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, i, err)
}

// Vector is a dense vector of T.
// data has length n and is nil exactly when n == 0.
// The zero value is the empty vector and is ready to use.
type Vector[T Number] struct {
	n    int // number of elements
	data []T // contiguous storage (len == n)
}

// NewVector creates a zero vector of the given size.
// size == 0 yields the empty vector; negative sizes return ErrInvalidDimensions.
func NewVector[T Number](size int) (*Vector[T], error) {
	return NewVectorFilled[T](size, 0)
}

// NewVectorFilled creates a vector of size elements all equal to fill.
// Complexity: O(size).
func NewVectorFilled[T Number](size int, fill T) (*Vector[T], error) {
	if size < 0 {
		return nil, fmt.Errorf("NewVector(%d): %w", size, ErrInvalidDimensions)
	}

	return newVector(size, fill), nil
}

// newVector is the unchecked internal allocator; callers guarantee size >= 0.
func newVector[T Number](size int, fill T) *Vector[T] {
	return &Vector[T]{n: size, data: ewFill(size, fill)}
}

// VectorOf builds a vector from a literal list, e.g. VectorOf(1.0, 2, 3).
// The values are copied; the result never aliases the argument slice.
func VectorOf[T Number](values ...T) *Vector[T] {
	return &Vector[T]{n: len(values), data: ewClone(values)}
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return v.n }

// IsEmpty reports whether v holds no elements.
func (v *Vector[T]) IsEmpty() bool { return v.n == 0 }

// Elem returns element i without bounds validation; out-of-range i panics.
func (v *Vector[T]) Elem(i int) T { return v.data[i] }

// Raw exposes the backing slice (nil for the empty vector). It aliases v.
func (v *Vector[T]) Raw() []T { return v.data }

// At returns element i or ErrOutOfRange when i is outside [0, Len()).
func (v *Vector[T]) At(i int) (T, error) {
	if err := validateIndex(i, v.n); err != nil {
		return 0, vectorErrorf(ctxAt, i, err)
	}

	return v.data[i], nil
}

// Set stores x at i or returns ErrOutOfRange.
func (v *Vector[T]) Set(i int, x T) error {
	if err := validateIndex(i, v.n); err != nil {
		return vectorErrorf(ctxSet, i, err)
	}
	v.data[i] = x

	return nil
}

// Clone returns a deep copy.
func (v *Vector[T]) Clone() *Vector[T] {
	return &Vector[T]{n: v.n, data: ewClone(v.data)}
}

// Assign replaces v's contents with a deep copy of src and returns v.
// v.Assign(v) is a no-op.
func (v *Vector[T]) Assign(src *Vector[T]) *Vector[T] {
	if v == src {
		return v
	}
	v.n, v.data = src.n, ewClone(src.data)

	return v
}

// Equal reports element-wise equality; vectors of different sizes are unequal.
func (v *Vector[T]) Equal(w *Vector[T]) bool {
	if w == nil || v.n != w.n {
		return false
	}

	return ewEqual(v.data, w.data)
}
