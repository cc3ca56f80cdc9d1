// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels of Dense: element-wise
// addition and subtraction, negation, scalar scaling and division, the
// matrix product, the matrix-vector product, and transpose. All functions
// perform strict fail-fast validation and return clear errors on dimension
// mismatches.
//
// Purpose:
//   - Declare canonical operation tags used for error wrapping.
//   - Keep the non-compound form (new result) and the compound form
//     (XxxInPlace, mutates the receiver) on one code path each.
//
// Notes:
//   - Compound forms validate before touching the receiver; on error the
//     receiver is unchanged.

package matrix

import (
	"fmt"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd      = "Add"
	opSub      = "Sub"
	opMul      = "Mul"
	opMulVec   = "MulVec"
	opDiv      = "Div"
	opDet      = "Determinant"
	opInverse  = "Inverse"
	opCofactor = "Cofactor"
	opVstack   = "Vstack"
	opHstack   = "Hstack"
	opBlock    = "Block"
	opIdentity = "Identity"
	opDot      = "Dot"
	opCross    = "Cross"
	opNormal   = "Normal"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSubInPlace computes m += sign*b after validating shapes.
// Internal helper for Add/Sub/AddInPlace/SubInPlace to share validation.
func (m *Dense[T]) addSubInPlace(b *Dense[T], sign T, opTag string) error {
	if err := ValidateSameShape(m, b); err != nil {
		return matrixErrorf(opTag, fmt.Errorf("%dx%d vs %s: %w", m.r, m.c, shapeOf(b), err))
	}
	ewAddScaled(m.data, b.data, sign)

	return nil
}

// shapeOf renders "RxC" for error messages; tolerates nil.
func shapeOf[T Number](m *Dense[T]) string {
	if m == nil {
		return "<nil>"
	}

	return fmt.Sprintf("%dx%d", m.r, m.c)
}

// Add returns m + b as a new matrix.
// Errors: ErrDimensionMismatch when shapes differ.
// Complexity: O(r*c).
func (m *Dense[T]) Add(b *Dense[T]) (*Dense[T], error) {
	res := m.Clone()
	if err := res.addSubInPlace(b, 1, opAdd); err != nil {
		return nil, err
	}

	return res, nil
}

// Sub returns m - b as a new matrix.
// Errors: ErrDimensionMismatch when shapes differ.
func (m *Dense[T]) Sub(b *Dense[T]) (*Dense[T], error) {
	res := m.Clone()
	if err := res.addSubInPlace(b, -1, opSub); err != nil {
		return nil, err
	}

	return res, nil
}

// AddInPlace performs m += b and returns m for chaining.
func (m *Dense[T]) AddInPlace(b *Dense[T]) (*Dense[T], error) {
	if err := m.addSubInPlace(b, 1, opAdd); err != nil {
		return nil, err
	}

	return m, nil
}

// SubInPlace performs m -= b and returns m for chaining.
func (m *Dense[T]) SubInPlace(b *Dense[T]) (*Dense[T], error) {
	if err := m.addSubInPlace(b, -1, opSub); err != nil {
		return nil, err
	}

	return m, nil
}

// Neg returns -m. Always defined.
func (m *Dense[T]) Neg() *Dense[T] {
	res := m.Clone()
	ewNeg(res.data)

	return res
}

// Scale returns a*m. Always defined.
// Complexity: O(r*c).
func (m *Dense[T]) Scale(a T) *Dense[T] {
	return m.Clone().ScaleInPlace(a)
}

// ScaleInPlace performs m *= a and returns m.
func (m *Dense[T]) ScaleInPlace(a T) *Dense[T] {
	ewScale(m.data, a)

	return m
}

// Div returns m/a.
// Floating T follows IEEE rules (a == 0 yields ±Inf/NaN entries).
// Errors: ErrDivisionByZero for integral T when a == 0.
func (m *Dense[T]) Div(a T) (*Dense[T], error) {
	return m.Clone().DivInPlace(a)
}

// DivInPlace performs m /= a and returns m.
// Errors: ErrDivisionByZero for integral T when a == 0 (m is untouched).
func (m *Dense[T]) DivInPlace(a T) (*Dense[T], error) {
	if err := divisionGuard(a); err != nil {
		return nil, matrixErrorf(opDiv, err)
	}
	ewDiv(m.data, a)

	return m, nil
}

// Mul returns the matrix product m×b.
// MAIN DESCRIPTION:
//   - Standard i→j→k triple loop; result(i,j) = Σ_k m(i,k)·b(k,j).
//
// Errors:
//   - ErrDimensionMismatch when m.Cols() != b.Rows().
//
// Complexity:
//   - Time O(r*c*inner), Space O(r*c) for the result.
func (m *Dense[T]) Mul(b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(m, b); err != nil {
		return nil, matrixErrorf(opMul, fmt.Errorf("%dx%d × %s: %w", m.r, m.c, shapeOf(b), err))
	}

	res := newDense[T](m.r, b.c, 0)
	if res.IsEmpty() {
		return res, nil
	}
	inner, cols := m.c, b.c
	var (
		i, j, k    int
		rowA, rowR int
		sum        T
	)
	for i = 0; i < m.r; i++ {
		rowA = i * inner
		rowR = i * cols
		for j = 0; j < cols; j++ {
			sum = 0
			for k = 0; k < inner; k++ {
				sum += m.data[rowA+k] * b.data[k*cols+j]
			}
			res.data[rowR+j] = sum
		}
	}

	return res, nil
}

// MulInPlace replaces m with the product m×b and returns m.
// The product is computed into a fresh buffer first, so b may be m itself.
func (m *Dense[T]) MulInPlace(b *Dense[T]) (*Dense[T], error) {
	res, err := m.Mul(b)
	if err != nil {
		return nil, err
	}
	m.r, m.c, m.data = res.r, res.c, res.data

	return m, nil
}

// MulVec returns the matrix-vector product y = m·x, a vector of length Rows().
// Errors: ErrDimensionMismatch when Cols() != x.Len().
// Complexity: O(r*c).
func (m *Dense[T]) MulVec(x *Vector[T]) (*Vector[T], error) {
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMulVec, fmt.Errorf("%dx%d · len %d: %w", m.r, m.c, vecLen(x), err))
	}

	y := newVector[T](m.r, 0)
	var i, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		y.data[i] = ewDot(m.data[base:base+m.c], x.data)
	}

	return y, nil
}

// vecLen tolerates nil for error messages.
func vecLen[T Number](v *Vector[T]) int {
	if v == nil {
		return -1
	}

	return v.n
}

// Transpose returns mᵀ (Cols()×Rows()), result(j,i) = m(i,j).
// Complexity: O(r*c).
func (m *Dense[T]) Transpose() *Dense[T] {
	res := newDense[T](m.c, m.r, 0)
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[base+j]
		}
	}

	return res
}
