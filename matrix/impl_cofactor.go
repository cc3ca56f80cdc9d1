// SPDX-License-Identifier: MIT

// Package matrix - determinant, cofactor submatrix and inverse.
//
// Purpose:
//   - Determinant: closed forms for n ≤ 3, first-column cofactor expansion for n ≥ 4.
//   - Inverse: adjugate (transposed cofactor matrix) divided by the determinant.
//
// Complexity:
//   - Determinant is O(n!) for n ≥ 4 and Inverse is O(n²·n!). Both are exact
//     for integral T and intended for small matrices; the expansion is the
//     algorithm, not a placeholder for a factorization.
//
// Numeric policy:
//   - Floating T: a singular matrix yields ±Inf/NaN entries from Inverse, no error.
//   - Integral T: Inverse returns ErrSingular when the determinant is zero.

package matrix

import "fmt"

// Determinant returns det(m).
// Implementation:
//   - Stage 1: ValidateSquare (square, rows > 0).
//   - Stage 2: closed forms for 1×1, 2×2, 3×3; cofactor expansion along the
//     first column otherwise: det = Σ_i (-1)^i · a(i,0) · det(Cofactor(i,0)).
//
// Errors:
//   - ErrNonSquare (matches ErrDimensionMismatch).
func (m *Dense[T]) Determinant() (T, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, fmt.Errorf("shape %s: %w", shapeOf(m), err))
	}

	return m.det(), nil
}

// det is the unchecked recursive kernel; m must be square and non-empty.
func (m *Dense[T]) det() T {
	v := m.data
	switch m.r {
	case 1:
		return v[0]
	case 2:
		return v[0]*v[3] - v[1]*v[2]
	case 3:
		// Rule of Sarrus; term order is fixed so floating results are reproducible.
		return -v[8]*v[1]*v[3] -
			v[7]*v[5]*v[0] -
			v[2]*v[4]*v[6] +
			v[6]*v[1]*v[5] +
			v[7]*v[3]*v[2] +
			v[0]*v[4]*v[8]
	}

	var sum T
	for i := 0; i < m.r; i++ {
		term := v[m.c*i] * m.cofactor(i, 0).det()
		if i%2 == 0 {
			sum += term
		} else {
			sum -= term
		}
	}

	return sum
}

// Cofactor returns the (rows-1)×(cols-1) submatrix obtained by deleting row i
// and column j. Deleting from a 1×1 matrix yields the empty matrix.
// Errors: ErrOutOfRange unless 0 ≤ i < Rows() and 0 ≤ j < Cols().
// Complexity: O(r*c).
func (m *Dense[T]) Cofactor(i, j int) (*Dense[T], error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return nil, matrixErrorf(opCofactor, fmt.Errorf("(%d,%d) in %s: %w", i, j, shapeOf(m), ErrOutOfRange))
	}

	return m.cofactor(i, j), nil
}

// cofactor builds the submatrix through Induced with every index except i / j.
func (m *Dense[T]) cofactor(i, j int) *Dense[T] {
	sub, _ := m.Induced(skipIndex(m.r, i), skipIndex(m.c, j)) // indices in range by construction

	return sub
}

// skipIndex returns [0, n) without k.
func skipIndex(n, k int) []int {
	idx := make([]int, 0, n-1)
	for x := 0; x < n; x++ {
		if x != k {
			idx = append(idx, x)
		}
	}

	return idx
}

// Inverse returns m⁻¹ by the adjugate construction.
// Implementation:
//   - Stage 1: ValidateSquare.
//   - Stage 2: 1×1 → reciprocal of the sole element.
//   - Stage 3: det(m) first; integral T with det == 0 stops here.
//   - Stage 4: adj(i,j) = (-1)^(i+j) · det(Cofactor(j,i)); result = adj / det(m).
//
// Behavior highlights:
//   - No singularity check for floating T: division by a zero determinant
//     produces ±Inf/NaN entries, exactly as scalar division would.
//   - Integral T divides with truncation; a zero determinant is ErrSingular.
//
// Errors:
//   - ErrNonSquare, ErrSingular (integral T only).
func (m *Dense[T]) Inverse() (*Dense[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, fmt.Errorf("shape %s: %w", shapeOf(m), err))
	}

	n := m.r
	if n == 1 {
		if divisionGuard(m.data[0]) != nil {
			return nil, matrixErrorf(opInverse, ErrSingular)
		}
		return &Dense[T]{r: 1, c: 1, data: []T{1 / m.data[0]}}, nil
	}

	det := m.det()
	if divisionGuard(det) != nil {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	adj := newDense[T](n, n, 0)
	var i, j int
	var d T
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			d = m.cofactor(j, i).det()
			if (i+j)%2 != 0 {
				d = -d
			}
			adj.data[i*n+j] = d
		}
	}

	ewDiv(adj.data, det)

	return adj, nil
}
