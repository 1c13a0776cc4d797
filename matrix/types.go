// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by Dense, AugmentedMatrix and the kernels.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

// Matrix is the read/write capability set every rectangular grid of entries
// offers. Kernels (Add, Sub, Mul, Transpose, Equal) accept any Matrix and
// take a fast path when handed a *Dense.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the entry at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (Entry, error)

	// Set assigns v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v Entry) error
}

// Position addresses a single cell by zero-based row and column.
type Position struct {
	Row int
	Col int
}
