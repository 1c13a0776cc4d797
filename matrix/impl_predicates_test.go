// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/burtnash/Matrix-Linear-Algebra/matrix"
	"github.com/stretchr/testify/require"
)

func TestInRowEchelonForm_Table(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int64
		want bool
	}{
		{"upper unit triangle", [][]int64{{1, 2, 3}, {0, 1, 2}, {0, 0, 1}}, true},
		{"leading entry not one", [][]int64{{2, 2, 3}, {0, 1, 2}, {0, 0, 1}}, false},
		{"zero row in the middle", [][]int64{{1, 2, 3}, {0, 0, 0}, {0, 0, 1}}, false},
		{"nonzero below leading one", [][]int64{{1, 2, 3}, {1, 1, 2}, {0, 0, 1}}, false},
		{"staircase not moving right", [][]int64{{0, 1, 3}, {0, 1, 2}, {0, 0, 0}}, false},
		{"zero matrix", [][]int64{{0, 0}, {0, 0}}, true},
		{"trailing zero rows", [][]int64{{1, 5, 0}, {0, 0, 1}, {0, 0, 0}}, true},
		{"wide", [][]int64{{0, 1, 4, 2}, {0, 0, 0, 1}}, true},
		{"negative one leading", [][]int64{{-1, 0}, {0, 1}}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := MustRows(t, tc.rows...)
			require.Equal(t, tc.want, m.InRowEchelonForm())
		})
	}
}

func TestInRowEchelonForm_RationalOne(t *testing.T) {
	m, err := matrix.NewDense(2, 2, []matrix.Entry{R(3, 3), matrix.Int(2), matrix.Int(0), R(-2, -2)})
	require.NoError(t, err)
	require.True(t, m.InRowEchelonForm())
}

func TestInReducedRowEchelonForm_Table(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int64
		want bool
	}{
		{"identity", [][]int64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, true},
		{"free column", [][]int64{{1, 2, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}, {0, 0, 0, 0}}, true},
		{"entry above leading one", [][]int64{{1, 2, 3}, {0, 1, 2}, {0, 0, 1}}, false},
		{"not REF", [][]int64{{0, 1}, {1, 0}}, false},
		{"zero", [][]int64{{0, 0, 0}}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := MustRows(t, tc.rows...)
			require.Equal(t, tc.want, m.InReducedRowEchelonForm())
			if tc.want {
				require.True(t, m.InRowEchelonForm(), "RREF implies REF")
			}
		})
	}
}

func TestLeadingOnes(t *testing.T) {
	m := MustRows(t, []int64{1, 2, 0, 0}, []int64{0, 0, 1, 0}, []int64{0, 0, 0, 1}, []int64{0, 0, 0, 0})
	require.Equal(t, []matrix.Position{{Row: 0, Col: 0}, {Row: 1, Col: 2}, {Row: 2, Col: 3}}, m.LeadingOnes())
	require.Empty(t, MustInts(t, 2, 2, 0, 0, 0, 0).LeadingOnes())
}

func TestIsZeroRow(t *testing.T) {
	require.True(t, matrix.IsZeroRow(nil))
	require.True(t, matrix.IsZeroRow([]matrix.Entry{matrix.Int(0), R(0, 7)}))
	require.False(t, matrix.IsZeroRow(matrix.Ints(0, 0, 1)))

	m := MustRows(t, []int64{0, 0}, []int64{0, 3})
	ok, err := m.IsZeroRow(0)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = m.IsZeroRow(1)
	require.NoError(t, err)
	require.False(t, ok)
	_, err = m.IsZeroRow(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestShapeClasses(t *testing.T) {
	require.True(t, MustIdentity(t, 3).IsIdentity())
	require.True(t, MustIdentity(t, 3).IsDiagonal())

	d := MustRows(t, []int64{2, 0}, []int64{0, 5})
	require.True(t, d.IsDiagonal())
	require.False(t, d.IsIdentity())

	require.False(t, MustRows(t, []int64{1, 1}, []int64{0, 1}).IsDiagonal())
	require.False(t, MustInts(t, 1, 2, 1, 0).IsDiagonal(), "non-square")
	require.False(t, MustInts(t, 1, 2, 1, 0).IsSquare())
	require.True(t, MustInts(t, 2, 3, 0, 0, 0, 0, 0, 0).IsZero())
}
