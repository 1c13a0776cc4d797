// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/burtnash/Matrix-Linear-Algebra/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)

	var typedNilAug *matrix.AugmentedMatrix
	require.ErrorIs(t, matrix.ValidateNotNil(typedNilAug), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateNotNil(MustIdentity(t, 1)))
	require.NoError(t, matrix.ValidateNotNil(hide{MustIdentity(t, 1)}))
}

func TestValidateShapes(t *testing.T) {
	a := MustInts(t, 2, 3, 1, 2, 3, 4, 5, 6)
	b := MustInts(t, 3, 2, 1, 2, 3, 4, 5, 6)

	require.NoError(t, matrix.ValidateSameShape(a, a.Clone()))
	require.ErrorIs(t, matrix.ValidateSameShape(a, b), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSameShape(a, MustInts(t, 2, 2, 0, 0, 0, 0)), matrix.ErrDimensionMismatch)

	require.ErrorIs(t, matrix.ValidateBinarySameShape(nil, a), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(a, nil), matrix.ErrNilMatrix)

	require.ErrorIs(t, matrix.ValidateSquare(a), matrix.ErrNonSquare)
	require.NoError(t, matrix.ValidateSquare(MustIdentity(t, 2)))
}

func TestValidateMulCompatible(t *testing.T) {
	a := MustInts(t, 2, 3, 1, 2, 3, 4, 5, 6)
	b := MustInts(t, 3, 2, 1, 2, 3, 4, 5, 6)
	c := MustInts(t, 3, 4)

	require.NoError(t, matrix.ValidateMulCompatible(a, b))
	require.NoError(t, matrix.ValidateMulCompatible(b, a))
	require.ErrorIs(t, matrix.ValidateMulCompatible(c, a), matrix.ErrReverseOrder)
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, a), matrix.ErrNotMultipliable)
	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, a), matrix.ErrNilMatrix)
}

func TestValidateCounts(t *testing.T) {
	require.NoError(t, matrix.ValidateEntryCount(6, 2, 3))
	require.ErrorIs(t, matrix.ValidateEntryCount(5, 2, 3), matrix.ErrEntryCount)
	require.NoError(t, matrix.ValidateEntryCount(0, 0, 4))

	require.NoError(t, matrix.ValidateVecLen(matrix.Ints(1, 2), 2))
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 1), matrix.ErrDimensionMismatch)
}
