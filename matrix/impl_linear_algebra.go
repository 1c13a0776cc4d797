// SPDX-License-Identifier: MIT
// Package matrix provides exact operations on any Matrix implementation:
// element-wise addition and subtraction, multiplication, transpose, powers,
// minors, determinants, inverses and eigenvalue checks. All functions
// perform strict fail-fast validation and return sentinel errors wrapped
// with an operation tag.
//
// Purpose:
//   - Value-returning kernels: every result is a fresh *Dense; operands are
//     never mutated. Scale is the documented in-place exception.
//   - Results are narrowed: integral Rational entries come back as integers.
//
// Notes:
//   - Binary kernels take a *Dense fast path and fall back to At for any
//     other Matrix implementation.

package matrix

import (
	"fmt"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd          = "Add"
	opSub          = "Sub"
	opMul          = "Mul"
	opMulVec       = "MulVec"
	opTranspose    = "Transpose"
	opPow          = "Pow"
	opMinor        = "Minor"
	opDeterminant  = "Determinant"
	opInverse      = "Inverse"
	opInverse2     = "Inverse2"
	opIsEigenvalue = "IsEigenvalue"
	opIdentity     = "Identity"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns a *Dense view of m: the value itself for *Dense, the
// wrapped storage for *AugmentedMatrix, otherwise a copy read through At.
// Callers treat the result as read-only.
func asDense(m Matrix) (*Dense, error) {
	switch v := m.(type) {
	case *Dense:
		return v, nil
	case *AugmentedMatrix:
		return v.mat, nil
	}

	out, err := NewDense(m.Rows(), m.Cols(), nil)
	if err != nil {
		return nil, err
	}
	var e Entry
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			if e, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.set(i, j, e)
		}
	}

	return out, nil
}

// Equal reports whether a and b have the same shape and value-equal entries.
// Integer and Rational representations of the same value compare equal.
// nil inputs or read failures compare unequal.
func Equal(a, b Matrix) bool {
	if ValidateBinarySameShape(a, b) != nil {
		return false
	}
	da, err := asDense(a)
	if err != nil {
		return false
	}
	db, err := asDense(b)
	if err != nil {
		return false
	}
	for k := range da.data {
		if !da.data[k].Equal(db.data[k]) {
			return false
		}
	}

	return true
}

// addSub computes out = a + b or a - b into a fresh Dense.
func addSub(a, b Matrix, op entryOp, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res, err := NewDense(da.r, da.c, nil)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	for k := range res.data {
		res.data[k] = op.apply(da.data[k], db.data[k]).Narrow()
	}

	return res, nil
}

// Add returns the element-wise sum a + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, opAddEntries, opAdd) }

// Sub returns the element-wise difference a - b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, opSubEntries, opSub) }

// Mul returns the matrix product a × b (r×n times n×c).
//
// Errors:
//   - ErrNilMatrix.
//   - ErrReverseOrder    when a.Cols != b.Rows but b.Cols == a.Rows.
//   - ErrNotMultipliable when neither order is defined.
//
// Both mismatch errors match ErrDimensionMismatch.
//
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	res, err := NewDense(da.r, db.c, nil)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var sum, av Entry
	for i := 0; i < da.r; i++ {
		for j := 0; j < db.c; j++ {
			sum = Int(0)
			for k := 0; k < da.c; k++ {
				av = da.at(i, k)
				if av.IsZero() {
					continue // skip zero products
				}
				sum = sum.Add(av.Mul(db.at(k, j)))
			}
			res.set(i, j, sum.Narrow())
		}
	}

	return res, nil
}

// Mul is the method form of Mul(m, o).
func (m *Dense) Mul(o Matrix) (*Dense, error) { return Mul(m, o) }

// MulVec returns m·v as a new Vector of length m.Rows().
// Errors: ErrNilMatrix, ErrDimensionMismatch when v.Len() != m.Cols().
func (m *Dense) MulVec(v *Vector) (*Vector, error) {
	if v == nil {
		return nil, matrixErrorf(opMulVec, ErrNilMatrix)
	}
	if v.Len() != m.c {
		return nil, matrixErrorf(opMulVec, ErrDimensionMismatch)
	}
	prod, err := Mul(m, v.mat)
	if err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}

	return &Vector{mat: prod}, nil
}

// Transpose returns a new c×r matrix with entry (j,i) = m(i,j).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	res, err := NewDense(dm.c, dm.r, nil)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	for i := 0; i < dm.r; i++ {
		for j := 0; j < dm.c; j++ {
			res.set(j, i, dm.at(i, j))
		}
	}

	return res, nil
}

// Transpose is the method form of Transpose(m).
func (m *Dense) Transpose() *Dense {
	t, _ := Transpose(m) // non-nil *Dense cannot fail

	return t
}

// Scale multiplies every entry by k in place and narrows the result.
func (m *Dense) Scale(k Entry) {
	for idx := range m.data {
		m.data[idx] = m.data[idx].Mul(k).Narrow()
	}
}

// Identity returns the n×n identity matrix.
// Returns ErrBadShape for n < 0.
func Identity(n int) (*Dense, error) {
	id, err := NewDense(n, n, nil)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		id.set(i, i, Int(1))
	}

	return id, nil
}

// Pow returns m multiplied by itself k times.
//
// Policy:
//   - k < 0            → ErrInvalidExponent.
//   - k == 1           → a copy of m (any shape).
//   - non-square, k≠1  → ErrNonSquare.
//   - k == 0           → the identity of matching size.
//
// Complexity: Time O((k-1)*n^3).
func (m *Dense) Pow(k int) (*Dense, error) {
	if k < 0 {
		return nil, matrixErrorf(opPow, fmt.Errorf("exponent %d: %w", k, ErrInvalidExponent))
	}
	if k == 1 {
		return m.Clone(), nil
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	if k == 0 {
		return Identity(m.r)
	}

	acc := m.Clone()
	var err error
	for step := 1; step < k; step++ {
		if acc, err = Mul(m, acc); err != nil {
			return nil, matrixErrorf(opPow, err)
		}
	}

	return acc, nil
}

// Minor returns m with row r and column c removed.
// Returns ErrOutOfRange for an invalid row or column.
func (m *Dense) Minor(r, c int) (*Dense, error) {
	if r < 0 || r >= m.r || c < 0 || c >= m.c {
		return nil, matrixErrorf(opMinor, denseErrorf(opMinor, r, c, ErrOutOfRange))
	}

	res, err := NewDense(m.r-1, m.c-1, nil)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	di := 0
	for i := 0; i < m.r; i++ {
		if i == r {
			continue
		}
		dj := 0
		for j := 0; j < m.c; j++ {
			if j == c {
				continue
			}
			res.set(di, dj, m.at(i, j))
			dj++
		}
		di++
	}

	return res, nil
}

// Determinant returns det(m) by cofactor (Laplace) expansion along row 0:
//
//	det = Σ_j (-1)^j · m[0][j] · det(Minor(0, j))
//
// 1×1 returns the sole entry and 2×2 returns ad − bc directly; the empty
// 0×0 matrix has determinant 1.
//
// Errors: ErrNonSquare.
//
// Complexity: Time O(n!).
func (m *Dense) Determinant() (Entry, error) {
	if err := ValidateSquare(m); err != nil {
		return Entry{}, matrixErrorf(opDeterminant, err)
	}

	return m.det().Narrow(), nil
}

// det is the recursive kernel; m is square.
func (m *Dense) det() Entry {
	switch m.r {
	case 0:
		return Int(1)
	case 1:
		return m.at(0, 0)
	case 2:
		return m.at(0, 0).Mul(m.at(1, 1)).Sub(m.at(0, 1).Mul(m.at(1, 0)))
	}

	sum := Int(0)
	for j := 0; j < m.c; j++ {
		a := m.at(0, j)
		if a.IsZero() {
			continue // zero cofactor term
		}
		minor, _ := m.Minor(0, j) // indices in range
		term := a.Mul(minor.det())
		if j%2 == 1 {
			term = term.Neg()
		}
		sum = sum.Add(term)
	}

	return sum
}

// IsInvertible reports whether m is square with a nonzero determinant.
func (m *Dense) IsInvertible() bool {
	d, err := m.Determinant()

	return err == nil && !d.IsZero()
}

// Inverse returns m⁻¹ by Gauss–Jordan elimination on [m | I].
//
// Implementation:
//   - Stage 1: require IsInvertible (square and det ≠ 0).
//   - Stage 2: build the n×2n block [m | I], RowReduce then ReducedRowReduce.
//   - Stage 3: copy the right half out.
//
// Errors: ErrNonSquare, ErrSingular.
func (m *Dense) Inverse() (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if !m.IsInvertible() {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	n := m.r
	block, err := NewDense(n, 2*n, nil)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	for i := 0; i < n; i++ {
		copy(block.row(i)[:n], m.row(i))
		block.set(i, n+i, Int(1))
	}

	block.RowReduce()
	block.ReducedRowReduce()

	inv, err := NewDense(n, n, nil)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	for i := 0; i < n; i++ {
		copy(inv.row(i), block.row(i)[n:])
	}

	return inv, nil
}

// Inverse2 returns the inverse of a 2×2 matrix by the closed form
//
//	[a b; c d]⁻¹ = 1/(ad − bc) · [d −b; −c a]
//
// and agrees exactly with Inverse on 2×2 input.
//
// Errors: ErrBadShape (not 2×2), ErrSingular (ad − bc == 0).
func (m *Dense) Inverse2() (*Dense, error) {
	if m.r != 2 || m.c != 2 {
		return nil, matrixErrorf(opInverse2, fmt.Errorf("%dx%d: %w", m.r, m.c, ErrBadShape))
	}
	d := m.det()
	if d.IsZero() {
		return nil, matrixErrorf(opInverse2, ErrSingular)
	}

	adj := []Entry{
		m.at(1, 1), m.at(0, 1).Neg(),
		m.at(1, 0).Neg(), m.at(0, 0),
	}
	inv, err := NewDense(2, 2, nil)
	if err != nil {
		return nil, matrixErrorf(opInverse2, err)
	}
	for k, e := range adj {
		q, _ := e.Div(d) // d is nonzero
		inv.data[k] = q.Narrow()
	}

	return inv, nil
}

// IsEigenvalue reports whether det(m − λI) == 0.
// Errors: ErrNonSquare.
func (m *Dense) IsEigenvalue(lambda Entry) (bool, error) {
	if err := ValidateSquare(m); err != nil {
		return false, matrixErrorf(opIsEigenvalue, err)
	}

	shifted := m.Clone()
	for i := 0; i < m.r; i++ {
		shifted.set(i, i, shifted.at(i, i).Sub(lambda))
	}
	d, err := shifted.Determinant()
	if err != nil {
		return false, matrixErrorf(opIsEigenvalue, err)
	}

	return d.IsZero(), nil
}
