// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped
// with an operation tag) and tests MUST check them via errors.Is. No
// operation panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Kernels
// wrap with matrixErrorf(opTag, ErrX); callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> dimension mismatch -> square -> singular -> domain.

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (negative dimensions, or a fixed-size routine such as Inverse2 applied
	// to the wrong size).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrEntryCount is returned when a flat entry list does not hold exactly
	// rows*cols values, or a row list does not match the matrix rows.
	ErrEntryCount = errors.New("matrix: entry count does not match shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub on different shapes or a bulk setter with the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotMultipliable: a.Cols != b.Rows and b × a is not defined either.
	ErrNotMultipliable = fmt.Errorf("%w: matrices are not multipliable", ErrDimensionMismatch)

	// ErrReverseOrder: a × b is not defined but b × a is.
	ErrReverseOrder = fmt.Errorf("%w: matrices are only multipliable in the reverse order", ErrDimensionMismatch)

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when an inverse is requested for a matrix whose
	// determinant is zero.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrInvalidExponent is returned by Pow for negative exponents.
	ErrInvalidExponent = errors.New("matrix: invalid exponent")

	// ErrInvalidAugmented is returned when an augmented matrix has fewer than
	// two columns (at least one coefficient and the constants column).
	ErrInvalidAugmented = errors.New("matrix: augmented matrix needs at least 2 columns")

	// ErrSolutionLength is returned when a candidate solution does not hold
	// exactly one value per unknown.
	ErrSolutionLength = errors.New("matrix: solution length does not match unknowns")
)
