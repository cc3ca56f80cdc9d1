// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense arithmetic and products.
package matrix_test

import (
	"math"
	"testing"

	"github.com/PANFACTORY/vectormatrix/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestAddSub covers the happy path, the mismatch path and receiver safety.
func TestAddSub(t *testing.T) {
	a := mustRows(t, [][]int{{1, 2}, {3, 4}})
	b := mustRows(t, [][]int{{10, 20}, {30, 40}})

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, []int{11, 22, 33, 44}, sum.Raw())
	require.Equal(t, []int{1, 2, 3, 4}, a.Raw()) // operands untouched

	diff, err := b.Sub(a)
	require.NoError(t, err)
	require.Equal(t, []int{9, 18, 27, 36}, diff.Raw())

	_, err = a.Add(mustRows(t, [][]int{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = a.Sub(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestAddSubInPlace checks compound forms mutate only on success.
func TestAddSubInPlace(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustRows(t, [][]float64{{1, 1}, {1, 1}})

	got, err := a.AddInPlace(b)
	require.NoError(t, err)
	require.Same(t, a, got)
	require.Equal(t, []float64{2, 3, 4, 5}, a.Raw())

	_, err = a.SubInPlace(b)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3, 4}, a.Raw())

	_, err = a.AddInPlace(mustRows(t, [][]float64{{1}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Equal(t, []float64{1, 2, 3, 4}, a.Raw()) // unchanged on error
}

// TestNegScale covers negation and both scalar-multiplication orders.
func TestNegScale(t *testing.T) {
	a := mustRows(t, [][]int{{1, -2}, {0, 4}})

	require.Equal(t, []int{-1, 2, 0, -4}, a.Neg().Raw())
	require.True(t, a.Scale(3).Equal(matrix.ScaleMatrix(3, a)))
	require.Equal(t, []int{3, -6, 0, 12}, a.Scale(3).Raw())

	a.ScaleInPlace(-1)
	require.Equal(t, []int{-1, 2, 0, -4}, a.Raw())
}

// TestDiv covers scalar division and the per-type zero-divisor policy.
func TestDiv(t *testing.T) {
	f := mustRows(t, [][]float64{{1, -2}, {0, 4}})
	q, err := f.Div(2)
	require.NoError(t, err)
	require.Equal(t, []float64{0.5, -1, 0, 2}, q.Raw())

	inf, err := f.Div(0)
	require.NoError(t, err) // IEEE: no error for floating T
	require.True(t, math.IsInf(inf.Raw()[0], 1))
	require.True(t, math.IsInf(inf.Raw()[1], -1))
	require.True(t, math.IsNaN(inf.Raw()[2]))

	i := mustRows(t, [][]int{{7, -7}})
	iq, err := i.Div(2)
	require.NoError(t, err)
	require.Equal(t, []int{3, -3}, iq.Raw()) // truncating division

	_, err = i.DivInPlace(0)
	require.ErrorIs(t, err, matrix.ErrDivisionByZero)
	require.Equal(t, []int{7, -7}, i.Raw())
}

// TestMulScenario is the literal product {{1,2},{3,4}}·{{5,6},{7,8}}.
func TestMulScenario(t *testing.T) {
	a := mustRows(t, [][]int{{1, 2}, {3, 4}})
	b := mustRows(t, [][]int{{5, 6}, {7, 8}})

	p, err := a.Mul(b)
	require.NoError(t, err)
	require.True(t, p.Equal(mustRows(t, [][]int{{19, 22}, {43, 50}})))
}

// TestMulShapes checks rectangular products and the mismatch error.
func TestMulShapes(t *testing.T) {
	a := mustRows(t, [][]int{{1, 2, 3}})     // 1x3
	b := mustRows(t, [][]int{{1}, {2}, {3}}) // 3x1

	inner, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, []int{14}, inner.Raw())

	outer, err := b.Mul(a)
	require.NoError(t, err)
	require.Equal(t, 3, outer.Rows())
	require.Equal(t, 3, outer.Cols())
	require.Equal(t, []int{1, 2, 3, 2, 4, 6, 3, 6, 9}, outer.Raw())

	_, err = a.Mul(a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMulAgainstGonum compares random products with gonum/mat.
func TestMulAgainstGonum(t *testing.T) {
	a := randDense(t, 4, 6, 11)
	b := randDense(t, 6, 3, 12)

	got, err := a.Mul(b)
	require.NoError(t, err)

	var want mat.Dense
	want.Mul(toGonum(a), toGonum(b))
	require.True(t, got.ApproxEqual(fromGonum(t, &want)))
}

// TestMulInPlace squares a matrix in place, using itself as the right operand.
func TestMulInPlace(t *testing.T) {
	a := mustRows(t, [][]int{{1, 1}, {0, 1}})

	_, err := a.MulInPlace(a)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 0, 1}, a.Raw())

	_, err = a.MulInPlace(mustRows(t, [][]int{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMulVec checks y = A·x and the length check.
func TestMulVec(t *testing.T) {
	a := mustRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})

	y, err := a.MulVec(matrix.VectorOf(1, 0, -1))
	require.NoError(t, err)
	require.Equal(t, []int{-2, -2}, y.Raw())

	_, err = a.MulVec(matrix.VectorOf(1, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestTranspose checks shape swap, element mapping and involution.
func TestTranspose(t *testing.T) {
	a := mustRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})

	at := a.Transpose()
	require.Equal(t, 3, at.Rows())
	require.Equal(t, 2, at.Cols())
	require.Equal(t, []int{1, 4, 2, 5, 3, 6}, at.Raw())
	require.True(t, at.Transpose().Equal(a))

	require.True(t, mustDense[int](t, 0, 0).Transpose().IsEmpty())
}

// TestIdentity covers NewIdentity, IdentityLike and ZerosLike.
func TestIdentity(t *testing.T) {
	id := mustIdentity[int](t, 3)
	require.Equal(t, []int{1, 0, 0, 0, 1, 0, 0, 0, 1}, id.Raw())

	_, err := matrix.NewIdentity[int](0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	a := mustRows(t, [][]float64{{2, 3}, {4, 5}})
	p, err := a.Mul(mustIdentity[float64](t, 2))
	require.NoError(t, err)
	require.True(t, p.Equal(a))

	like, err := matrix.IdentityLike(a)
	require.NoError(t, err)
	require.True(t, like.Equal(mustIdentity[float64](t, 2)))

	_, err = matrix.IdentityLike(mustRows(t, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	z := matrix.ZerosLike(a)
	require.Equal(t, []float64{0, 0, 0, 0}, z.Raw())
}
