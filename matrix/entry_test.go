package matrix_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/burtnash/Matrix-Linear-Algebra/matrix"
	"github.com/burtnash/Matrix-Linear-Algebra/rational"
	"github.com/stretchr/testify/require"
)

// TestEntry_Promotion checks the dispatch table: int∘int stays int,
// anything touching a Rational becomes a simplified Rational.
func TestEntry_Promotion(t *testing.T) {
	sum := matrix.Int(2).Add(matrix.Int(3))
	require.False(t, sum.IsRational())
	require.Equal(t, "5", sum.String())

	mixed := matrix.Int(2).Add(R(1, 2))
	require.True(t, mixed.IsRational())
	require.Equal(t, "5/2", mixed.String())

	prod := R(2, 3).Mul(matrix.Int(3))
	require.True(t, prod.IsRational())
	require.Equal(t, "2/1", prod.String())
	require.False(t, prod.Narrow().IsRational())
	require.Equal(t, "2", prod.Narrow().String())

	diff := R(1, 3).Sub(R(1, 3))
	require.True(t, diff.IsZero())
}

func TestEntry_Division(t *testing.T) {
	q, err := matrix.Int(6).Div(matrix.Int(4))
	require.NoError(t, err)
	require.Equal(t, "3/2", q.String())

	_, err = matrix.Int(1).Div(matrix.Int(0))
	require.ErrorIs(t, err, rational.ErrDivisionByZero)

	_, err = R(0, 5).Inverse()
	require.ErrorIs(t, err, rational.ErrDivisionByZero)

	_, err = matrix.Ratio(1, 0)
	require.ErrorIs(t, err, rational.ErrZeroDenominator)
}

// TestEntry_EqualAcrossRepresentations: 2 == 4/2 and 1 == 3/3.
func TestEntry_EqualAcrossRepresentations(t *testing.T) {
	require.True(t, matrix.Int(2).Equal(R(4, 2)))
	require.True(t, R(3, 3).IsOne())
	require.True(t, R(-1, -1).IsOne())
	require.False(t, matrix.Int(2).Equal(R(5, 2)))
	require.Equal(t, 0, matrix.Int(1).Cmp(R(2, 2)))
	require.Equal(t, -1, R(1, 3).Cmp(R(1, 2)))
	require.Equal(t, 1, matrix.Int(4).Cmp(matrix.Int(-4)))
}

func TestEntry_Conversions(t *testing.T) {
	v, err := R(9, 3).Int64()
	require.NoError(t, err)
	require.Equal(t, int64(3), v)

	_, err = R(9, 4).Int64()
	require.ErrorIs(t, err, rational.ErrNonIntegral)

	require.InDelta(t, 2.25, R(9, 4).Float64(), 1e-15)
	require.Equal(t, "-7", matrix.Int(7).Neg().String())
	require.Equal(t, "3/-4", R(3, -4).String(), "representation is preserved until arithmetic")
	require.Equal(t, "0", matrix.Entry{}.String())
}

// TestEntry_IntegerOverflowPromotes checks that int64 overflow moves to
// math/big and shrinks back once the value fits again.
func TestEntry_IntegerOverflowPromotes(t *testing.T) {
	maxInt := matrix.Int(math.MaxInt64)

	sum := maxInt.Add(matrix.Int(1))
	require.False(t, sum.IsRational())
	require.Equal(t, "9223372036854775808", sum.String())
	require.Equal(t, 1, sum.Cmp(maxInt))

	back := sum.Sub(matrix.Int(1))
	require.True(t, back.Equal(maxInt))
	v, err := back.Int64()
	require.NoError(t, err)
	require.Equal(t, int64(math.MaxInt64), v)

	_, err = sum.Int64()
	require.ErrorIs(t, err, rational.ErrRange)

	require.Equal(t, "-9223372036854775809", matrix.Int(math.MinInt64).Sub(matrix.Int(1)).String())
	require.Equal(t, "9223372036854775808", matrix.Int(math.MinInt64).Neg().String())
	require.Equal(t, "9223372036854775808", matrix.Int(math.MinInt64).Mul(matrix.Int(-1)).String())

	sq := matrix.Int(4000000000).Mul(matrix.Int(4000000000))
	require.Equal(t, "16000000000000000000", sq.String())
	require.True(t, sq.Sub(matrix.Int(1)).Equal(R(-1, 1).Add(sq)))
	require.InDelta(t, 1.6e19, sq.Float64(), 1e4)

	big20, _ := new(big.Int).SetString("100000000000000000000", 10)
	e := matrix.BigInt(big20)
	big20.SetInt64(0) // BigInt copies its argument
	require.Equal(t, "100000000000000000000", e.String())
	require.False(t, e.IsZero())
	require.False(t, e.IsOne())
	require.True(t, e.Widen().IsRational())
	require.Equal(t, "100000000000000000000", e.Widen().Narrow().String())

	require.False(t, matrix.BigInt(big.NewInt(7)).IsRational())
	require.True(t, matrix.BigInt(big.NewInt(1)).IsOne())
}

// TestEntry_ZeroValueRational checks that wrapping Rational{} yields zero.
func TestEntry_ZeroValueRational(t *testing.T) {
	z := matrix.Frac(rational.Rational{})
	require.True(t, z.Equal(matrix.Int(0)))
	require.True(t, z.IsZero())
	require.Equal(t, 0, z.Cmp(matrix.Int(0)))
	require.True(t, z.Add(matrix.Int(5)).Equal(matrix.Int(5)))
	require.Equal(t, "0", z.Narrow().String())

	_, err := matrix.Int(1).Div(z)
	require.ErrorIs(t, err, rational.ErrDivisionByZero)
}
