// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep row storage private so Clone and every value-returning kernel
//     produce structurally independent matrices.
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set: O(1); Clone: O(r*c); Equal: O(r*c).

package matrix

import (
	"fmt"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxRow     = "Row"
	ctxSetRows = "SetRows"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of entries.
// r is rows, c is columns, and data holds r*c entries in row-major order.
// Zero rows or zero columns are legal shapes.
type Dense struct {
	r, c int     // number of rows and columns
	data []Entry // flat backing storage, length == r*c
}

// compile-time interface check
var _ Matrix = (*Dense)(nil)

// NewDense creates an r×c matrix from an optional row-major entry list.
// A nil list yields the zero matrix.
//
// Errors:
//   - ErrBadShape   if rows < 0 or cols < 0.
//   - ErrEntryCount if entries != nil and len(entries) != rows*cols.
//
// The entries slice is copied; the caller keeps ownership of it.
func NewDense(rows, cols int, entries []Entry) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}
	if entries != nil {
		if err := ValidateEntryCount(len(entries), rows, cols); err != nil {
			return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, err)
		}
	}

	data := make([]Entry, rows*cols)
	copy(data, entries)

	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewInts is NewDense for integer literals.
func NewInts(rows, cols int, values []int64) (*Dense, error) {
	var entries []Entry
	if values != nil {
		entries = Ints(values...)
	}

	return NewDense(rows, cols, entries)
}

// NewFromRows builds a matrix from a slice of equal-length rows.
// Returns ErrEntryCount when the rows are ragged.
func NewFromRows(rows [][]Entry) (*Dense, error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	m, err := NewDense(len(rows), cols, nil)
	if err != nil {
		return nil, err
	}
	if err = m.SetRows(rows); err != nil {
		return nil, err
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// at reads (i, j) without bounds checks; callers iterate inside the shape.
func (m *Dense) at(i, j int) Entry { return m.data[i*m.c+j] }

// set writes (i, j) without bounds checks.
func (m *Dense) set(i, j int, v Entry) { m.data[i*m.c+j] = v }

// row returns the live storage of row i (aliases m.data; internal only).
func (m *Dense) row(i int) []Entry { return m.data[i*m.c : (i+1)*m.c] }

// At retrieves the entry at (row, col).
func (m *Dense) At(row, col int) (Entry, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return Entry{}, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
func (m *Dense) Set(row, col int, v Entry) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]Entry, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]Entry, m.c)
	copy(out, m.row(i))

	return out, nil
}

// SetEntries replaces every entry from a row-major list of exactly r*c values.
func (m *Dense) SetEntries(entries []Entry) error {
	if err := ValidateEntryCount(len(entries), m.r, m.c); err != nil {
		return fmt.Errorf("Dense.SetEntries: %w", err)
	}
	copy(m.data, entries)

	return nil
}

// SetRows replaces every entry from m.Rows() rows of m.Cols() entries each.
func (m *Dense) SetRows(rows [][]Entry) error {
	if len(rows) != m.r {
		return denseErrorf(ctxSetRows, len(rows), m.c, ErrEntryCount)
	}
	for i, src := range rows {
		if len(src) != m.c {
			return denseErrorf(ctxSetRows, i, len(src), ErrEntryCount)
		}
	}
	for i, src := range rows {
		copy(m.row(i), src)
	}

	return nil
}

// Clone returns a deep copy that shares no storage with m.
func (m *Dense) Clone() *Dense {
	data := make([]Entry, len(m.data))
	copy(data, m.data)

	return &Dense{r: m.r, c: m.c, data: data}
}

// Equal reports whether o has the same shape and value-equal entries.
func (m *Dense) Equal(o Matrix) bool {
	return Equal(m, o)
}

// String renders the matrix one row per line, e.g. "|1 2|\n|3 4|".
func (m *Dense) String() string {
	return m.Format()
}

// narrow converts every integral Rational entry back to an integer.
func (m *Dense) narrow() {
	for k := range m.data {
		m.data[k] = m.data[k].Narrow()
	}
}

// widen promotes every entry to Rational representation.
func (m *Dense) widen() {
	for k := range m.data {
		m.data[k] = m.data[k].Widen()
	}
}
