// Package matrix is the linear-algebra engine of matcalc.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with a fixed shape and safe accessors.
//   - FrobeniusNorm, Transpose, Mul and Product (which swaps operands when only
//     the reversed order is conformable).
//   - Determinant by recursive cofactor (Laplace) expansion along the first row,
//     Minor, Cofactor, Adjoint and the adjoint-based Inverse.
//
// Every operation accepts the Matrix interface, never mutates its inputs and
// returns a freshly allocated *Dense. Failures are reported with the sentinel
// errors in errors.go, wrapped with the operation name.
//
// The determinant is the O(n!) textbook expansion; results for large or
// ill-conditioned matrices carry that algorithm's rounding.
package matrix
