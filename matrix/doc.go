// Package matrix offers small dense linear algebra over generic numeric elements.
//
// The matrix package provides:
//
//   - Dense[T]: an owned row-major R×C buffer with arithmetic, matrix and
//     matrix-vector products, transpose, determinant, inverse, cofactor
//     submatrices, stacking, block extraction and identity construction.
//   - Vector[T]: an owned length-N buffer with arithmetic, dot and cross
//     products, norm, stacking, block slicing, transpose and diagonal matrices.
//   - Explicit conversions between the two (column matrix ↔ vector, 1×1 or
//     length-1 ↔ scalar) that always copy.
//   - A stable text rendering (tab-separated rows, one value per line for
//     vectors) exposed as a lazy iterator.
//
// Value semantics: no two values ever share a buffer. Clone and Assign deep
// copy; every operation returns a fresh result unless its name ends in
// InPlace. The only aliasing accessors are Row and Raw, which hand out the
// receiver's own storage for hot loops.
//
// Determinant and Inverse use cofactor expansion (O(n!)); they are exact for
// integer element types and intended for small matrices.
//
// Errors are package sentinels (ErrDimensionMismatch, ErrOutOfRange,
// ErrShapeConversion, ErrMalformedLiteral, ...) wrapped with the operation
// name; match them with errors.Is.
//
// Runnable Example functions in this package show typical usage.
package matrix
