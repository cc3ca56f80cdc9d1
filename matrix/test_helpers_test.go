// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for Dense and Vector tests.
//   • Bridge to gonum/mat so determinant and inverse have an independent oracle.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/PANFACTORY/vectormatrix/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// mustRows builds a Dense from a row literal or fails the test.
func mustRows[T matrix.Number](tb testing.TB, rows [][]T) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(tb, err)

	return m
}

// mustDense allocates an r×c zero Dense or fails the test.
func mustDense[T matrix.Number](tb testing.TB, r, c int) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.NewDense[T](r, c)
	require.NoError(tb, err)

	return m
}

// mustIdentity builds I_n or fails the test.
func mustIdentity[T matrix.Number](tb testing.TB, n int) *matrix.Dense[T] {
	tb.Helper()
	id, err := matrix.NewIdentity[T](n)
	require.NoError(tb, err)

	return id
}

// randDense returns an r×c float64 matrix with entries in [-1, 1) drawn from seed.
func randDense(tb testing.TB, r, c int, seed int64) *matrix.Dense[float64] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := mustDense[float64](tb, r, c)
	m.Apply(func(_, _ int, _ float64) float64 { return rng.Float64()*2 - 1 })

	return m
}

// randVector returns a float64 vector of length n with entries in [-1, 1).
func randVector(n int, seed int64) *matrix.Vector[float64] {
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = rng.Float64()*2 - 1
	}

	return matrix.VectorOf(vals...)
}

// randIntVector returns an int vector of length n with entries in [-9, 9].
func randIntVector(n int, seed int64) *matrix.Vector[int] {
	rng := rand.New(rand.NewSource(seed))
	vals := make([]int, n)
	for i := range vals {
		vals[i] = rng.Intn(19) - 9
	}

	return matrix.VectorOf(vals...)
}

// toGonum copies m into a gonum mat.Dense (oracle side).
func toGonum(m *matrix.Dense[float64]) *mat.Dense {
	return mat.NewDense(m.Rows(), m.Cols(), append([]float64(nil), m.Raw()...))
}

// fromGonum copies a gonum matrix back into a Dense.
func fromGonum(tb testing.TB, g mat.Matrix) *matrix.Dense[float64] {
	tb.Helper()
	r, c := g.Dims()
	m := mustDense[float64](tb, r, c)
	m.Apply(func(i, j int, _ float64) float64 { return g.At(i, j) })

	return m
}
