// SPDX-License-Identifier: MIT

package rational

import "errors"

var (
	// ErrZeroDenominator is returned when a Rational is constructed with q == 0.
	ErrZeroDenominator = errors.New("rational: zero denominator")

	// ErrDivisionByZero is returned when dividing by (or inverting) a zero-valued Rational.
	ErrDivisionByZero = errors.New("rational: division by zero")

	// ErrNonIntegral is returned when a non-integral Rational is coerced to an integer.
	ErrNonIntegral = errors.New("rational: value is not an integer")

	// ErrRange is returned when an integral value does not fit the requested
	// fixed-width integer type.
	ErrRange = errors.New("rational: value out of range")
)
