// SPDX-License-Identifier: MIT
// Package matrix - Gaussian elimination kernels (in place).
//
// Purpose:
//   - Elementary row operations (swap, scale, add a scaled row).
//   - RowReduce: forward elimination to row echelon form.
//   - ReducedRowReduce: back elimination from REF to reduced REF.
//   - Rank on a private copy.
//
// Numeric policy:
//   - Every entry is widened to Rational for the duration of a pass and
//     integral results are narrowed back to integers at the end, so an
//     all-integer input that stays integral keeps integer entries.
//   - Pivot choice is the first nonzero entry at or below the cursor; there
//     is no magnitude-based pivoting.
//
// Determinism:
//   - Fixed top-down pivot search and fixed row order; identical inputs give
//     identical outputs.

package matrix

import "fmt"

const (
	opSwapRows     = "SwapRows"
	opScaleRow     = "ScaleRow"
	opAddScaledRow = "AddScaledRow"
)

// ---------- elementary row operations ----------

// swapRows exchanges rows i and k without bounds checks.
func (m *Dense) swapRows(i, k int) {
	if i == k {
		return
	}
	ri, rk := m.row(i), m.row(k)
	for j := range ri {
		ri[j], rk[j] = rk[j], ri[j]
	}
}

// scaleRow multiplies row i by s without bounds checks.
func (m *Dense) scaleRow(i int, s Entry) {
	r := m.row(i)
	for j := range r {
		r[j] = r[j].Mul(s)
	}
}

// addScaledRow performs row[dst] += s*row[src] without bounds checks.
func (m *Dense) addScaledRow(dst, src int, s Entry) {
	d, r := m.row(dst), m.row(src)
	for j := range d {
		d[j] = d[j].Add(r[j].Mul(s))
	}
}

func (m *Dense) checkRow(op string, i int) error {
	if i < 0 || i >= m.r {
		return matrixErrorf(op, fmt.Errorf("row %d: %w", i, ErrOutOfRange))
	}

	return nil
}

// SwapRows exchanges rows i and k in place.
func (m *Dense) SwapRows(i, k int) error {
	if err := m.checkRow(opSwapRows, i); err != nil {
		return err
	}
	if err := m.checkRow(opSwapRows, k); err != nil {
		return err
	}
	m.swapRows(i, k)

	return nil
}

// ScaleRow multiplies every entry of row i by s in place.
func (m *Dense) ScaleRow(i int, s Entry) error {
	if err := m.checkRow(opScaleRow, i); err != nil {
		return err
	}
	m.scaleRow(i, s)

	return nil
}

// AddScaledRow adds s times row src to row dst in place.
func (m *Dense) AddScaledRow(dst, src int, s Entry) error {
	if err := m.checkRow(opAddScaledRow, dst); err != nil {
		return err
	}
	if err := m.checkRow(opAddScaledRow, src); err != nil {
		return err
	}
	m.addScaledRow(dst, src, s)

	return nil
}

// ---------- elimination ----------

// RowReduce drives m to row echelon form by forward Gaussian elimination.
//
// Implementation:
//   - Cursor (row, col) starts at (0,0).
//   - Find the first nonzero entry in column col at or below row. None:
//     advance col only. Found: swap it into row, scale row so the pivot is 1,
//     subtract multiples of row from every row below, advance both.
//   - Stop when row passes the last row or col passes the last column.
//
// Postcondition: m.InRowEchelonForm().
//
// Complexity:
//   - Time O(r*c*min(r,c)), Space O(1) beyond the entries.
func (m *Dense) RowReduce() {
	m.widen()
	defer m.narrow()

	row, col := 0, 0
	for row < m.r && col < m.c {
		pivot := -1
		for i := row; i < m.r; i++ {
			if !m.at(i, col).IsZero() {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			col++
			continue
		}

		m.swapRows(row, pivot)
		inv, _ := m.at(row, col).Inverse() // nonzero by selection
		m.scaleRow(row, inv)

		for i := row + 1; i < m.r; i++ {
			f := m.at(i, col)
			if !f.IsZero() {
				m.addScaledRow(i, row, f.Neg())
			}
		}
		row++
		col++
	}
}

// ReducedRowReduce clears the entries above every leading one, processing
// leading ones from the bottom row up.
//
// Precondition: m.InRowEchelonForm(). Postcondition:
// m.InReducedRowEchelonForm(). Applying it twice equals applying it once.
//
// Complexity:
//   - Time O(r^2*c), Space O(r) for the leading-one list.
func (m *Dense) ReducedRowReduce() {
	m.widen()
	defer m.narrow()

	leads := m.LeadingOnes()
	for k := len(leads) - 1; k >= 0; k-- {
		p := leads[k]
		for i := 0; i < p.Row; i++ {
			f := m.at(i, p.Col)
			if !f.IsZero() {
				m.addScaledRow(i, p.Row, f.Neg())
			}
		}
	}
}

// Rank returns the number of nonzero rows after row-reducing a copy of m.
// m itself is not modified.
func (m *Dense) Rank() int {
	work := m.Clone()
	work.RowReduce()

	zero := 0
	for i := 0; i < work.r; i++ {
		if IsZeroRow(work.row(i)) {
			zero++
		}
	}

	return work.r - zero
}
