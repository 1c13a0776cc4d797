// Package matrix implements exact linear algebra over integers and
// rationals.
//
// The package provides:
//
//   - Entry, a tagged number (integer | rational.Rational) with explicit
//     promotion: integer arithmetic stays integral, anything touching a
//     Rational yields a simplified Rational, and Narrow turns integral
//     Rationals back into integers.
//   - Dense, a row-major grid of entries with structural predicates
//     (InRowEchelonForm, InReducedRowEchelonForm, IsDiagonal, ...),
//     in-place Gaussian elimination (RowReduce, ReducedRowReduce) and
//     derived operations (Rank, Determinant, Inverse, Pow, Mul, Transpose).
//   - AugmentedMatrix, a Dense whose last column holds the constants of a
//     linear system, answering consistency and uniqueness questions.
//   - Vector, an n×1 column wrapper used for constants and candidate solutions.
//
// No value ever passes through floating point during computation; Float64
// and WithDecimals exist for display only. Determinant uses cofactor
// expansion and is exponential in the dimension.
//
// Instances are not safe for concurrent mutation; callers own each matrix
// and serialize access to it.
package matrix
