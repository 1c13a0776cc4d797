// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for kernels and predicates.
//   • Compare matrices by value so integer/Rational representation never
//     makes a test flaky.

package matrix_test

import (
	"math/big"
	"testing"

	"github.com/burtnash/Matrix-Linear-Algebra/matrix"
	"github.com/burtnash/Matrix-Linear-Algebra/rational"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type switches,
// forcing the At-based fallback path in kernels.
type hide struct{ matrix.Matrix }

// MustInts builds an r×c *Dense from integer literals or fails the test.
func MustInts(t testing.TB, r, c int, values ...int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewInts(r, c, values)
	require.NoError(t, err, "NewInts(%d,%d)", r, c)

	return m
}

// MustRows builds a *Dense from integer rows or fails the test.
func MustRows(t testing.TB, rows ...[]int64) *matrix.Dense {
	t.Helper()
	entries := make([][]matrix.Entry, len(rows))
	for i, r := range rows {
		entries[i] = matrix.Ints(r...)
	}
	m, err := matrix.NewFromRows(entries)
	require.NoError(t, err)

	return m
}

// MustAugmented builds an r×c augmented matrix from integer literals.
func MustAugmented(t testing.TB, r, c int, values ...int64) *matrix.AugmentedMatrix {
	t.Helper()
	a, err := matrix.NewAugmentedInts(r, c, values)
	require.NoError(t, err, "NewAugmentedInts(%d,%d)", r, c)

	return a
}

// MustIdentity returns I_n or fails the test.
func MustIdentity(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	id, err := matrix.Identity(n)
	require.NoError(t, err)

	return id
}

// R returns the Rational entry p/q.
func R(p, q int64) matrix.Entry {
	return matrix.Frac(rational.MustNew(p, q))
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) matrix.Entry {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// RequireEntry asserts value equality of two entries.
func RequireEntry(t testing.TB, want, got matrix.Entry) {
	t.Helper()
	require.True(t, want.Equal(got), "want %s, got %s", want, got)
}

// RequireMatrix asserts shape and value equality, printing both on failure.
func RequireMatrix(t testing.TB, want, got matrix.Matrix) {
	t.Helper()
	require.True(t, matrix.Equal(want, got), "want\n%v\ngot\n%v", want, got)
}

// RequireIntegral asserts every entry of m is carried as an integer.
func RequireIntegral(t testing.TB, m matrix.Matrix) {
	t.Helper()
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			require.False(t, MustAt(t, m, i, j).IsRational(), "entry (%d,%d) not narrowed", i, j)
		}
	}
}

// mustBigRatio parses decimal p and q into a Rational or fails the test.
func mustBigRatio(t testing.TB, p, q string) rational.Rational {
	t.Helper()
	num, ok := new(big.Int).SetString(p, 10)
	require.True(t, ok, "numerator %q", p)
	den, ok := new(big.Int).SetString(q, 10)
	require.True(t, ok, "denominator %q", q)
	r, err := rational.NewBig(num, den)
	require.NoError(t, err)

	return r
}
