// SPDX-License-Identifier: MIT
// Package matrix - structural predicates.
//
// Purpose:
//   - Read-only checks over the entry grid: zero rows, square/zero/diagonal
//     shape classes, and the row echelon (REF) / reduced row echelon (RREF)
//     predicates the elimination kernels are verified against.
//
// Determinism:
//   - Fixed i→j scans; the first failing condition short-circuits.
//
// Complexity:
//   - O(r*c) for every predicate.

package matrix

// IsZeroRow reports whether every entry of row equals zero.
// An empty row is a zero row.
func IsZeroRow(row []Entry) bool {
	for _, e := range row {
		if !e.IsZero() {
			return false
		}
	}

	return true
}

// IsZeroRow reports whether row i of m is all zeros.
// Returns ErrOutOfRange for an invalid row index.
func (m *Dense) IsZeroRow(i int) (bool, error) {
	if i < 0 || i >= m.r {
		return false, denseErrorf("IsZeroRow", i, 0, ErrOutOfRange)
	}

	return IsZeroRow(m.row(i)), nil
}

// IsSquare reports Rows == Cols.
func (m *Dense) IsSquare() bool { return m.r == m.c }

// IsZero reports whether every entry is zero.
func (m *Dense) IsZero() bool {
	return IsZeroRow(m.data)
}

// IsDiagonal reports whether m is square and every off-diagonal entry is zero.
func (m *Dense) IsDiagonal() bool {
	if !m.IsSquare() {
		return false
	}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if i != j && !m.at(i, j).IsZero() {
				return false
			}
		}
	}

	return true
}

// IsIdentity reports whether m is diagonal with ones on the diagonal.
func (m *Dense) IsIdentity() bool {
	if !m.IsDiagonal() {
		return false
	}
	for i := 0; i < m.r; i++ {
		if !m.at(i, i).IsOne() {
			return false
		}
	}

	return true
}

// leadingOnes scans each row left to right and collects the first nonzero
// entry when it equals 1. With strict set, a first nonzero entry that is
// not 1 aborts the scan and ok is false.
func (m *Dense) leadingOnes(strict bool) (leads []Position, ok bool) {
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			e := m.at(i, j)
			if e.IsZero() {
				continue
			}
			if e.IsOne() {
				leads = append(leads, Position{Row: i, Col: j})
			} else if strict {
				return nil, false
			}
			break
		}
	}

	return leads, true
}

// LeadingOnes returns, in row order, the position of each row's first
// nonzero entry when that entry equals 1.
//
// Precondition: m is in row echelon form. On other input the result is
// meaningless but well-defined.
func (m *Dense) LeadingOnes() []Position {
	leads, _ := m.leadingOnes(false)

	return leads
}

// InRowEchelonForm reports whether m is in row echelon form. The checks run
// in order and the first failure short-circuits:
//  1. the first nonzero entry of every row is exactly 1 (a leading one);
//  2. every entry below a leading one is zero;
//  3. leading-one columns strictly increase with the row index;
//  4. all zero rows are contiguous at the bottom.
func (m *Dense) InRowEchelonForm() bool {
	// 1. leading ones
	leads, ok := m.leadingOnes(true)
	if !ok {
		return false
	}

	// 2. zeros below each leading one
	for _, p := range leads {
		for i := p.Row + 1; i < m.r; i++ {
			if !m.at(i, p.Col).IsZero() {
				return false
			}
		}
	}

	// 3. staircase moves strictly right
	for k := 1; k < len(leads); k++ {
		if leads[k].Col <= leads[k-1].Col {
			return false
		}
	}

	// 4. zero rows at the bottom
	zeroSeen := false
	for i := 0; i < m.r; i++ {
		if IsZeroRow(m.row(i)) {
			zeroSeen = true
		} else if zeroSeen {
			return false
		}
	}

	return true
}

// InReducedRowEchelonForm reports row echelon form plus zeros above every
// leading one.
func (m *Dense) InReducedRowEchelonForm() bool {
	if !m.InRowEchelonForm() {
		return false
	}
	for _, p := range m.LeadingOnes() {
		for i := 0; i < p.Row; i++ {
			if !m.at(i, p.Col).IsZero() {
				return false
			}
		}
	}

	return true
}
