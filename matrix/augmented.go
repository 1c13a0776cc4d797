// SPDX-License-Identifier: MIT

// Package matrix - AugmentedMatrix: linear systems over a Dense grid.
//
// An augmented matrix [A | b] stores the coefficients A in columns
// 0..n-2 and the constants b in column n-1. The distinction is purely
// interpretive: the wrapper holds a *Dense and the system semantics live in
// the methods below (consistency, candidate checking, uniqueness).
//
// Mutation policy mirrors Dense: RowReduce/ReducedRowReduce and the setters
// work in place; ExistsValidSolution, HasUniqueSolution and Rank reduce a
// private copy.
package matrix

import (
	"fmt"
	"strings"
)

const (
	opNewAugmented    = "NewAugmented"
	opSetCoefficients = "SetCoefficients"
	opSetConstants    = "SetConstants"
	opIsValidSolution = "IsValidSolution"
)

// AugmentedMatrix wraps an m×n Dense (n ≥ 2) whose last column holds the
// constants of a linear system with n-1 unknowns.
type AugmentedMatrix struct {
	mat *Dense // underlying m×n storage
}

// compile-time interface check
var _ Matrix = (*AugmentedMatrix)(nil)

// NewAugmented builds an m×n augmented matrix from an optional row-major
// entry list (nil → zeros).
//
// Errors:
//   - ErrInvalidAugmented if cols < 2.
//   - ErrBadShape / ErrEntryCount from NewDense.
func NewAugmented(rows, cols int, entries []Entry) (*AugmentedMatrix, error) {
	if cols < 2 {
		return nil, matrixErrorf(opNewAugmented, fmt.Errorf("cols=%d: %w", cols, ErrInvalidAugmented))
	}
	mat, err := NewDense(rows, cols, entries)
	if err != nil {
		return nil, matrixErrorf(opNewAugmented, err)
	}

	return &AugmentedMatrix{mat: mat}, nil
}

// NewAugmentedInts is NewAugmented for integer literals.
func NewAugmentedInts(rows, cols int, values []int64) (*AugmentedMatrix, error) {
	var entries []Entry
	if values != nil {
		entries = Ints(values...)
	}

	return NewAugmented(rows, cols, entries)
}

// Augment builds [coeffs | constants].
// Errors: ErrNilMatrix, ErrDimensionMismatch when constants.Len() != coeffs.Rows().
func Augment(coeffs Matrix, constants *Vector) (*AugmentedMatrix, error) {
	if err := ValidateNotNil(coeffs); err != nil {
		return nil, matrixErrorf(opNewAugmented, err)
	}
	if constants == nil {
		return nil, matrixErrorf(opNewAugmented, ErrNilMatrix)
	}
	a, err := NewAugmented(coeffs.Rows(), coeffs.Cols()+1, nil)
	if err != nil {
		return nil, err
	}
	dc, err := asDense(coeffs)
	if err != nil {
		return nil, matrixErrorf(opNewAugmented, err)
	}
	if err = a.SetConstants(constants.Values()); err != nil {
		return nil, err
	}
	for i := 0; i < dc.r; i++ {
		copy(a.mat.row(i)[:dc.c], dc.row(i))
	}

	return a, nil
}

// Rows returns the number of equations.
func (a *AugmentedMatrix) Rows() int { return a.mat.r }

// Cols returns the number of columns including the constants column.
func (a *AugmentedMatrix) Cols() int { return a.mat.c }

// Unknowns returns the number of coefficient columns (Cols()-1).
func (a *AugmentedMatrix) Unknowns() int { return a.mat.c - 1 }

// At retrieves the entry at (i, j).
func (a *AugmentedMatrix) At(i, j int) (Entry, error) { return a.mat.At(i, j) }

// Set assigns v at (i, j).
func (a *AugmentedMatrix) Set(i, j int, v Entry) error { return a.mat.Set(i, j, v) }

// SetEntries replaces every entry from a row-major list.
func (a *AugmentedMatrix) SetEntries(entries []Entry) error { return a.mat.SetEntries(entries) }

// SetCoefficients replaces columns 0..n-2 from Rows() rows of Unknowns() entries.
// Errors: ErrDimensionMismatch on any length mismatch; nothing is written then.
func (a *AugmentedMatrix) SetCoefficients(rows [][]Entry) error {
	if len(rows) != a.mat.r {
		return matrixErrorf(opSetCoefficients, ErrDimensionMismatch)
	}
	for i, src := range rows {
		if err := ValidateVecLen(src, a.Unknowns()); err != nil {
			return matrixErrorf(opSetCoefficients, fmt.Errorf("row %d: %w", i, err))
		}
	}
	for i, src := range rows {
		copy(a.mat.row(i)[:a.Unknowns()], src)
	}

	return nil
}

// SetConstants replaces column n-1 from exactly Rows() values.
// Errors: ErrDimensionMismatch.
func (a *AugmentedMatrix) SetConstants(values []Entry) error {
	if err := ValidateVecLen(values, a.mat.r); err != nil {
		return matrixErrorf(opSetConstants, err)
	}
	last := a.Unknowns()
	for i, v := range values {
		a.mat.set(i, last, v)
	}

	return nil
}

// Coefficients returns a copy of columns 0..n-2.
func (a *AugmentedMatrix) Coefficients() *Dense {
	out, _ := NewDense(a.mat.r, a.Unknowns(), nil) // shape derived from a valid matrix
	for i := 0; i < a.mat.r; i++ {
		copy(out.row(i), a.mat.row(i)[:a.Unknowns()])
	}

	return out
}

// Constants returns a copy of column n-1.
func (a *AugmentedMatrix) Constants() *Vector {
	v, _ := NewVector(a.mat.r, nil) // size derived from a valid matrix
	last := a.Unknowns()
	for i := 0; i < a.mat.r; i++ {
		v.mat.set(i, 0, a.mat.at(i, last))
	}

	return v
}

// Dense returns a copy of the underlying grid.
func (a *AugmentedMatrix) Dense() *Dense { return a.mat.Clone() }

// Clone returns an independent copy.
func (a *AugmentedMatrix) Clone() *AugmentedMatrix { return &AugmentedMatrix{mat: a.mat.Clone()} }

// Equal reports same shape and value-equal entries.
func (a *AugmentedMatrix) Equal(o Matrix) bool { return Equal(a, o) }

// RowReduce drives the system to row echelon form in place.
func (a *AugmentedMatrix) RowReduce() { a.mat.RowReduce() }

// ReducedRowReduce drives a system in row echelon form to reduced form in place.
func (a *AugmentedMatrix) ReducedRowReduce() { a.mat.ReducedRowReduce() }

// Rank returns the rank of the full augmented grid.
func (a *AugmentedMatrix) Rank() int { return a.mat.Rank() }

// IsInvalidRow reports whether row reads "0 = nonzero": every entry but the
// last is zero and the last is not. Rows shorter than one entry are valid.
func IsInvalidRow(row []Entry) bool {
	if len(row) == 0 {
		return false
	}
	last := len(row) - 1

	return IsZeroRow(row[:last]) && !row[last].IsZero()
}

// ExistsValidSolution reports whether the system is consistent: after
// row-reducing a copy no row is invalid.
func (a *AugmentedMatrix) ExistsValidSolution() bool {
	work := a.mat.Clone()
	work.RowReduce()
	for i := 0; i < work.r; i++ {
		if IsInvalidRow(work.row(i)) {
			return false
		}
	}

	return true
}

// IsValidSolution substitutes candidate into every row of the original
// (unreduced) system and reports whether each dot product equals the
// row's constant.
//
// Errors: ErrSolutionLength when len(candidate) != Unknowns().
func (a *AugmentedMatrix) IsValidSolution(candidate []Entry) (bool, error) {
	if len(candidate) != a.Unknowns() {
		return false, matrixErrorf(opIsValidSolution,
			fmt.Errorf("got %d values for %d unknowns: %w", len(candidate), a.Unknowns(), ErrSolutionLength))
	}
	x, err := NewVector(len(candidate), candidate)
	if err != nil {
		return false, matrixErrorf(opIsValidSolution, err)
	}
	lhs, err := a.Coefficients().MulVec(x)
	if err != nil {
		return false, matrixErrorf(opIsValidSolution, err)
	}

	return lhs.Equal(a.Constants()), nil
}

// HasUniqueSolution reports whether the system is consistent and its rank
// equals the number of unknowns, so every unknown is pinned by a pivot.
func (a *AugmentedMatrix) HasUniqueSolution() bool {
	if !a.ExistsValidSolution() {
		return false
	}

	return a.Rank() == a.Unknowns()
}

// String renders each equation with a bar before the constant, e.g.
// "|1 1 |2|".
func (a *AugmentedMatrix) String() string { return a.Format() }

// Format renders like Dense.Format with the border repeated before the
// constants column.
func (a *AugmentedMatrix) Format(opts ...Option) string {
	o := gatherOptions(opts...)
	last := a.Unknowns()

	var sb strings.Builder
	for i := 0; i < a.mat.r; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		row := a.mat.row(i)
		sb.WriteString(o.border)
		writeEntries(&sb, row[:last], o)
		sb.WriteString(o.separator)
		sb.WriteString(o.border)
		sb.WriteString(formatEntry(row[last], o))
		sb.WriteString(o.border)
	}

	return sb.String()
}
