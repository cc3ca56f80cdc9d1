// SPDX-License-Identifier: MIT
// Package matrix_test verifies explicit conversions between Dense, Vector and scalars.
package matrix_test

import (
	"testing"

	"github.com/PANFACTORY/vectormatrix/matrix"
	"github.com/stretchr/testify/require"
)

// TestToVector covers the single-column precondition and copy semantics.
func TestToVector(t *testing.T) {
	col := mustRows(t, [][]int{{1}, {2}, {3}})
	v, err := col.ToVector()
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, v.Raw())

	require.NoError(t, v.Set(0, 100)) // vector owns a fresh buffer
	x, _ := col.At(0, 0)
	require.Equal(t, 1, x)

	_, err = mustRows(t, [][]int{{1, 2}}).ToVector()
	require.ErrorIs(t, err, matrix.ErrShapeConversion)
}

// TestToScalar covers 1×1 and length-1 reads and their failures.
func TestToScalar(t *testing.T) {
	s, err := mustRows(t, [][]float64{{4.5}}).ToScalar()
	require.NoError(t, err)
	require.Equal(t, 4.5, s)

	_, err = mustRows(t, [][]float64{{1, 2}}).ToScalar()
	require.ErrorIs(t, err, matrix.ErrShapeConversion)

	_, err = mustDense[float64](t, 0, 0).ToScalar()
	require.ErrorIs(t, err, matrix.ErrShapeConversion)

	vs, err := matrix.VectorOf(int8(-3)).ToScalar()
	require.NoError(t, err)
	require.Equal(t, int8(-3), vs)

	_, err = matrix.VectorOf(1, 2).ToScalar()
	require.ErrorIs(t, err, matrix.ErrShapeConversion)
}

// TestVectorMatrixRoundTrip checks Vector(Matrix(v)) == v and Matrix(Vector(M)) == M.
func TestVectorMatrixRoundTrip(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		v := randVector(int(seed), seed)
		m := v.ToMatrix()
		require.Equal(t, v.Len(), m.Rows())
		require.Equal(t, 1, m.Cols())

		back, err := m.ToVector()
		require.NoError(t, err)
		require.True(t, back.Equal(v))

		col := randDense(t, int(seed), 1, seed)
		cv, err := col.ToVector()
		require.NoError(t, err)
		require.True(t, cv.ToMatrix().Equal(col))
	}

	// The empty values round-trip as well.
	empty := matrix.VectorOf[float64]()
	back, err := empty.ToMatrix().ToVector()
	require.NoError(t, err)
	require.True(t, back.Equal(empty))
}

// TestVectorTranspose checks the 1×n row shape and element order.
func TestVectorTranspose(t *testing.T) {
	v := matrix.VectorOf(1, 2, 3)
	row := v.Transpose()
	require.Equal(t, 1, row.Rows())
	require.Equal(t, 3, row.Cols())
	require.Equal(t, []int{1, 2, 3}, row.Raw())

	require.True(t, row.Transpose().Equal(v.ToMatrix()))
}

// TestVectorDiagonal checks diag(v).
func TestVectorDiagonal(t *testing.T) {
	d := matrix.VectorOf(1, 2, 3).Diagonal()
	want := mustRows(t, [][]int{
		{1, 0, 0},
		{0, 2, 0},
		{0, 0, 3},
	})
	require.True(t, d.Equal(want))

	require.True(t, matrix.VectorOf[int]().Diagonal().IsEmpty())
}
