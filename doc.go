// Package linalg is a small exact linear algebra toolkit: integer and
// rational matrices, Gaussian elimination, and linear systems, with no
// floating point anywhere in the arithmetic.
//
// What is inside?
//
//	A pure-Go, zero-cgo library split into two subpackages:
//		• rational/: arbitrary-precision Rational numbers in lowest terms
//		• matrix/  : Dense matrices of integer|Rational entries, row echelon
//		              and reduced row echelon forms, rank, determinant,
//		              inverse, powers, products, augmented systems and vectors
//
// Why exact?
//
//   - Row reduction over floats drifts; here 1/3 stays 1/3.
//   - Integral results are narrowed back to integers, so an all-integer
//     input that stays integral prints as integers.
//   - Predicates (InRowEchelonForm, InReducedRowEchelonForm) are checked by
//     exact equality, never by an epsilon.
//
// Quick example:
//
//	m, _ := matrix.NewInts(2, 2, []int64{1, 2, 3, 4})
//	inv, _ := m.Inverse()
//	fmt.Println(inv)
//	// |-2 1|
//	// |3/2 -1/2|
//
// Arithmetic never overflows: integer entries live in an int64 while they
// fit and move to math/big when they do not; Rationals are math/big pairs.
//
//	go get github.com/burtnash/Matrix-Linear-Algebra/matrix
package linalg
