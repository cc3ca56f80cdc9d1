// Package vectormatrix is a compact dense linear-algebra toolkit: a matrix and
// a vector type with value semantics and the classical small-matrix
// algorithms.
//
// What is inside?
//
//	A pure-Go library, generic over integer and floating element types:
//		• Dense matrices: arithmetic, products, transpose, stacking, blocks
//		• Cofactor algorithms: determinant, cofactor submatrix, inverse (adjugate)
//		• Vectors: arithmetic, dot/cross product, norm, blocks, diagonal
//		• Explicit conversions: column matrix ↔ vector ↔ scalar
//		• Text rendering: tab-separated rows as a lazy iterator
//
// Everything lives in one package so the two types can convert into each
// other without exposing their storage:
//
//	matrix/: Dense[T], Vector[T], conversions, rendering, options
//
// Quick example:
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
//	inv, _ := a.Inverse()
//	fmt.Print(inv) // -2	1	\n1.5	-0.5	\n
//
//	go get github.com/PANFACTORY/vectormatrix
package vectormatrix
