// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/burtnash/Matrix-Linear-Algebra/matrix"
	"github.com/stretchr/testify/require"
)

// TestDefaultOptions_Documented verifies that NewFormatOptions() equals documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.NewFormatOptions()
	require.Equal(t, matrix.DefaultSeparator, o.Separator())
	require.Equal(t, matrix.DefaultBorder, o.Border())
	require.Equal(t, matrix.DefaultDecimals, o.Decimals())
}

// TestOptions_LastWins checks ordering and nil tolerance.
func TestOptions_LastWins(t *testing.T) {
	o := matrix.NewFormatOptions(matrix.WithDecimals(2), nil, matrix.WithExact(), matrix.WithSeparator("\t"))
	require.Equal(t, matrix.DefaultDecimals, o.Decimals())
	require.Equal(t, "\t", o.Separator())

	o = matrix.NewFormatOptions(matrix.WithExact(), matrix.WithDecimals(0))
	require.Equal(t, 0, o.Decimals())
}

func TestWithDecimals_PanicsOnNegative(t *testing.T) {
	require.PanicsWithValue(t, "matrix: WithDecimals: decimals must be non-negative", func() {
		_ = matrix.WithDecimals(-1)
	})
}

func TestFormat_Options(t *testing.T) {
	m, err := matrix.NewDense(2, 2, []matrix.Entry{matrix.Int(1), R(2, 3), matrix.Int(-3), R(1, 4)})
	require.NoError(t, err)

	require.Equal(t, "|1 2/3|\n|-3 1/4|", m.Format())
	require.Equal(t, "|1.00 0.67|\n|-3.00 0.25|", m.Format(matrix.WithDecimals(2)))
	require.Equal(t, "1, 2/3\n-3, 1/4", m.Format(matrix.WithBorder(""), matrix.WithSeparator(", ")))

	// rendering never alters the values
	RequireEntry(t, R(2, 3), MustAt(t, m, 0, 1))
}
