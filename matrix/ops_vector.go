// SPDX-License-Identifier: MIT

// Package matrix - Vector arithmetic and geometry.
//
// Binary element-wise operations require equal sizes and return
// ErrDimensionMismatch otherwise; they never truncate or pad.
// Compound forms (XxxInPlace) validate first and leave the receiver
// untouched on error.

package matrix

import (
	"fmt"
	"math"
)

// addSubInPlace computes v += sign*w after validating sizes.
func (v *Vector[T]) addSubInPlace(w *Vector[T], sign T, opTag string) error {
	if err := validateSameLen(v, w); err != nil {
		return matrixErrorf(opTag, fmt.Errorf("len %d vs len %d: %w", v.n, vecLen(w), err))
	}
	ewAddScaled(v.data, w.data, sign)

	return nil
}

// Add returns v + w.
func (v *Vector[T]) Add(w *Vector[T]) (*Vector[T], error) {
	res := v.Clone()
	if err := res.addSubInPlace(w, 1, opAdd); err != nil {
		return nil, err
	}

	return res, nil
}

// Sub returns v - w.
func (v *Vector[T]) Sub(w *Vector[T]) (*Vector[T], error) {
	res := v.Clone()
	if err := res.addSubInPlace(w, -1, opSub); err != nil {
		return nil, err
	}

	return res, nil
}

// AddInPlace performs v += w and returns v.
func (v *Vector[T]) AddInPlace(w *Vector[T]) (*Vector[T], error) {
	if err := v.addSubInPlace(w, 1, opAdd); err != nil {
		return nil, err
	}

	return v, nil
}

// SubInPlace performs v -= w and returns v.
func (v *Vector[T]) SubInPlace(w *Vector[T]) (*Vector[T], error) {
	if err := v.addSubInPlace(w, -1, opSub); err != nil {
		return nil, err
	}

	return v, nil
}

// Neg returns -v.
func (v *Vector[T]) Neg() *Vector[T] {
	res := v.Clone()
	ewNeg(res.data)

	return res
}

// Scale returns a*v.
func (v *Vector[T]) Scale(a T) *Vector[T] { return v.Clone().ScaleInPlace(a) }

// ScaleInPlace performs v *= a and returns v.
func (v *Vector[T]) ScaleInPlace(a T) *Vector[T] {
	ewScale(v.data, a)

	return v
}

// Div returns v/a. Integral T with a == 0 returns ErrDivisionByZero;
// floating T yields ±Inf/NaN elements.
func (v *Vector[T]) Div(a T) (*Vector[T], error) { return v.Clone().DivInPlace(a) }

// DivInPlace performs v /= a and returns v.
func (v *Vector[T]) DivInPlace(a T) (*Vector[T], error) {
	if err := divisionGuard(a); err != nil {
		return nil, matrixErrorf(opDiv, err)
	}
	ewDiv(v.data, a)

	return v, nil
}

// Dot returns Σ v[i]·w[i].
// Errors: ErrDimensionMismatch when sizes differ.
// Complexity: O(n).
func (v *Vector[T]) Dot(w *Vector[T]) (T, error) {
	if err := validateSameLen(v, w); err != nil {
		return 0, matrixErrorf(opDot, fmt.Errorf("len %d vs len %d: %w", v.n, vecLen(w), err))
	}

	return ewDot(v.data, w.data), nil
}

// Cross returns the vector product v×w of two 3-element vectors:
//
//	(v1·w2 − v2·w1, v2·w0 − v0·w2, v0·w1 − v1·w0)
//
// Errors: ErrDimensionMismatch unless both sizes are 3.
func (v *Vector[T]) Cross(w *Vector[T]) (*Vector[T], error) {
	if w == nil || v.n != 3 || w.n != 3 {
		return nil, matrixErrorf(opCross, fmt.Errorf("len %d × len %d, want 3: %w", v.n, vecLen(w), ErrDimensionMismatch))
	}

	a, b := v.data, w.data

	return &Vector[T]{n: 3, data: []T{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}}, nil
}

// Norm returns the Euclidean norm sqrt(v·v).
// The square root is taken in float64 and converted back to T, so integral T
// truncates (Norm of (1,1) is 1 for int).
func (v *Vector[T]) Norm() T {
	return T(math.Sqrt(toFloat64(ewDot(v.data, v.data))))
}

// Normal returns v / Norm().
// Floating T: the zero vector yields NaN elements (0/0), no error.
// Integral T: a zero norm returns ErrSingular.
func (v *Vector[T]) Normal() (*Vector[T], error) {
	norm := v.Norm()
	if divisionGuard(norm) != nil {
		return nil, matrixErrorf(opNormal, ErrSingular)
	}

	return v.Div(norm)
}

// MulMatrix returns the outer product of v with a single-row matrix m:
// result(i,j) = v[i]·m(0,j), shape Len()×m.Cols().
// Errors: ErrDimensionMismatch when m.Rows() != 1.
func (v *Vector[T]) MulMatrix(m *Dense[T]) (*Dense[T], error) {
	if m == nil || m.r != 1 {
		return nil, matrixErrorf(opMul, fmt.Errorf("len %d × %s, want one row: %w", v.n, shapeOf(m), ErrDimensionMismatch))
	}

	res := newDense[T](v.n, m.c, 0)
	var i, j int
	for i = 0; i < res.r; i++ {
		for j = 0; j < res.c; j++ {
			res.data[i*res.c+j] = v.data[i] * m.data[j]
		}
	}

	return res, nil
}
