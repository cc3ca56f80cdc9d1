// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points that compose the
//     canonical methods (no loop duplication).
//   - Host the scalar-left forms (a*m, a*v) so call sites can keep the
//     commutative reading of scalar multiplication.
//   - Host tolerance-based comparison (ApproxEqual) for floating results such
//     as M·M⁻¹ ≈ I.

package matrix

import "fmt"

// ---------- Constructors & Utilities ----------

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Errors: ErrInvalidDimensions when n <= 0.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity[T Number](n int) (*Dense[T], error) {
	if n <= 0 {
		return nil, matrixErrorf(opIdentity, fmt.Errorf("n=%d: %w", n, ErrInvalidDimensions))
	}
	id := newDense[T](n, n, 0)
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1
	}

	return id, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike[T Number](m *Dense[T]) *Dense[T] {
	return newDense[T](m.r, m.c, 0)
}

// IdentityLike returns I with dimension Rows(m); requires a square, non-empty m.
func IdentityLike[T Number](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity[T](m.r)
}

// ---------- Scalar-left forms ----------

// ScaleMatrix returns a*m; identical to m.Scale(a).
func ScaleMatrix[T Number](a T, m *Dense[T]) *Dense[T] { return m.Scale(a) }

// ScaleVector returns a*v; identical to v.Scale(a).
func ScaleVector[T Number](a T, v *Vector[T]) *Vector[T] { return v.Scale(a) }

// ---------- Tolerance comparison ----------

// ApproxEqual reports whether m and o have the same shape and every pair of
// elements is within WithEpsilon (absolute) or WithRelTol (relative).
// Shape mismatch is simply false. NaN is never close to anything.
// Complexity: O(r*c).
func (m *Dense[T]) ApproxEqual(o *Dense[T], opts ...Option) bool {
	if o == nil || m.r != o.r || m.c != o.c {
		return false
	}
	cfg := gatherOptions(opts...)

	return ewAllClose(m.data, o.data, cfg.eps, cfg.rtol)
}

// ApproxEqual is the Vector counterpart of Dense.ApproxEqual.
func (v *Vector[T]) ApproxEqual(w *Vector[T], opts ...Option) bool {
	if w == nil || v.n != w.n {
		return false
	}
	cfg := gatherOptions(opts...)

	return ewAllClose(v.data, w.data, cfg.eps, cfg.rtol)
}
