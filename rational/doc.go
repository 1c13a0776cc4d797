// SPDX-License-Identifier: MIT

// Package rational provides an exact fraction type for integer-valued
// linear algebra.
//
// A Rational is an immutable pair (p, q) of math/big integers with q != 0;
// the zero value is 0/1. The stored representation is kept exactly as
// constructed until Simplify is called, so New(4, 6) prints as "4/6" while New(4, 6).Simplify() prints as "2/3".
// Equality, comparison and every arithmetic result work on values:
//
//   - Equal/EqualInt compare lowest-term forms.
//   - Add/Sub/Mul/Div always return a simplified Rational with q > 0.
//   - Cmp cross-multiplies simplified operands; no floating point is involved.
//
// Errors:
//   - ErrZeroDenominator: New with q == 0.
//   - ErrDivisionByZero : Div/Inverse with a zero-valued Rational.
//   - ErrNonIntegral    : Int64/BigInt on a value whose simplified q != 1.
//   - ErrRange          : Int64 on an integer outside the int64 range.
//
// Precision is unbounded: sums, products and comparisons never overflow.
package rational
