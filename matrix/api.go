// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points that accept any Matrix and never mutate it.
//   - Avoid logic duplication; each facade delegates to the canonical kernel.
//
// Mutation cheat-sheet:
//   - In place:       (*Dense).RowReduce, ReducedRowReduce, Scale, SwapRows,
//     ScaleRow, AddScaledRow, Set*, and the AugmentedMatrix equivalents.
//   - Value-returning: everything else, including every facade below.

package matrix

// NewZeros returns a rows×cols zero matrix.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols, nil)
}

// ZerosLike returns a zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.Rows(), m.Cols(), nil)
}

// IdentityLike returns I with dimension Rows(m); requires a square m.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return Identity(m.Rows())
}

// copyOf returns an independent *Dense copy of m.
func copyOf(tag string, m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return d.Clone(), nil
}

// Echelon returns a row echelon form of m; m is left untouched.
func Echelon(m Matrix) (*Dense, error) {
	work, err := copyOf("Echelon", m)
	if err != nil {
		return nil, err
	}
	work.RowReduce()

	return work, nil
}

// ReducedEchelon returns the reduced row echelon form of m; m is left untouched.
func ReducedEchelon(m Matrix) (*Dense, error) {
	work, err := copyOf("ReducedEchelon", m)
	if err != nil {
		return nil, err
	}
	work.RowReduce()
	work.ReducedRowReduce()

	return work, nil
}

// Rank returns the rank of m.
func Rank(m Matrix) (int, error) {
	work, err := copyOf("Rank", m)
	if err != nil {
		return 0, err
	}

	return work.Rank(), nil
}

// Determinant returns det(m). Errors: ErrNilMatrix, ErrNonSquare.
func Determinant(m Matrix) (Entry, error) {
	work, err := copyOf(opDeterminant, m)
	if err != nil {
		return Entry{}, err
	}

	return work.Determinant()
}

// InverseOf returns m⁻¹. Errors: ErrNilMatrix, ErrNonSquare, ErrSingular.
func InverseOf(m Matrix) (*Dense, error) {
	work, err := copyOf(opInverse, m)
	if err != nil {
		return nil, err
	}

	return work.Inverse()
}
