// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// Vector is an n×1 column matrix addressed by a single row index.
// It wraps a *Dense with exactly one column; it has no elimination logic
// of its own.
type Vector struct {
	mat *Dense // n×1 storage
}

// NewVector returns a vector of the given size from optional values
// (nil → zeros).
// Errors: ErrBadShape for size < 0, ErrEntryCount when len(values) != size.
func NewVector(size int, values []Entry) (*Vector, error) {
	mat, err := NewDense(size, 1, values)
	if err != nil {
		return nil, fmt.Errorf("NewVector: %w", err)
	}

	return &Vector{mat: mat}, nil
}

// NewVectorInts builds a vector from integer literals.
func NewVectorInts(values ...int64) *Vector {
	v, _ := NewVector(len(values), Ints(values...)) // length matches by construction

	return v
}

// Len returns the number of entries.
func (v *Vector) Len() int { return v.mat.r }

// At returns entry i.
func (v *Vector) At(i int) (Entry, error) { return v.mat.At(i, 0) }

// Set assigns entry i.
func (v *Vector) Set(i int, e Entry) error { return v.mat.Set(i, 0, e) }

// SetValues replaces every entry; len(values) must equal Len().
func (v *Vector) SetValues(values []Entry) error {
	if err := ValidateVecLen(values, v.Len()); err != nil {
		return fmt.Errorf("Vector.SetValues: %w", err)
	}
	copy(v.mat.data, values)

	return nil
}

// Values returns a copy of the entries.
func (v *Vector) Values() []Entry {
	out := make([]Entry, v.Len())
	copy(out, v.mat.data)

	return out
}

// IsZero reports whether every entry is zero.
func (v *Vector) IsZero() bool { return v.mat.IsZero() }

// Equal reports same length and value-equal entries.
func (v *Vector) Equal(o *Vector) bool {
	if v == nil || o == nil {
		return v == o
	}

	return Equal(v.mat, o.mat)
}

// Clone returns an independent copy.
func (v *Vector) Clone() *Vector { return &Vector{mat: v.mat.Clone()} }

// Dense returns a copy of v as an n×1 matrix.
func (v *Vector) Dense() *Dense { return v.mat.Clone() }

// String renders the entries as "[1, 2, 3]".
func (v *Vector) String() string {
	parts := make([]string, v.Len())
	for i, e := range v.mat.data {
		parts[i] = e.String()
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
