// SPDX-License-Identifier: MIT

// Package matrix - Entry: the tagged numeric cell value.
//
// Purpose:
//   - Carry either an integer or a rational.Rational in one value type.
//   - Make promotion explicit: int ∘ int stays int for +, −, ×; any operand
//     that is Rational promotes the other and the result is a simplified Rational.
//   - Narrow integral Rationals back to integers when no information is lost.
//
// Precision:
//   - Integers live in an int64 while they fit. An overflowing +, − or ×
//     is redone in math/big and the result shrinks back to int64 as soon as
//     it fits again, so integer arithmetic never wraps.
//
// Determinism:
//   - Pure value semantics; no operation mutates its receiver or argument.

package matrix

import (
	"math"
	"math/big"
	"strconv"

	"github.com/burtnash/Matrix-Linear-Algebra/rational"
)

// Entry is a matrix cell: an integer, or an exact Rational when frac is set.
// The zero value is the integer 0.
type Entry struct {
	i    int64             // integer payload while it fits (frac == false, b == nil)
	b    *big.Int          // integer payload beyond int64; never mutated
	r    rational.Rational // rational payload (frac == true)
	frac bool              // representation tag
}

// Int returns the integer entry v.
func Int(v int64) Entry { return Entry{i: v} }

// BigInt returns the integer entry v. v is copied.
func BigInt(v *big.Int) Entry { return shrink(new(big.Int).Set(v)) }

// shrink returns v as an int64 entry when it fits. v must not be shared.
func shrink(v *big.Int) Entry {
	if v.IsInt64() {
		return Int(v.Int64())
	}

	return Entry{b: v}
}

// Frac returns r as a Rational entry (representation preserved).
func Frac(r rational.Rational) Entry { return Entry{r: r, frac: true} }

// Ratio returns p/q as a Rational entry.
// Returns rational.ErrZeroDenominator if q == 0.
func Ratio(p, q int64) (Entry, error) {
	r, err := rational.New(p, q)
	if err != nil {
		return Entry{}, err
	}

	return Frac(r), nil
}

// Ints converts integer literals to entries.
func Ints(values ...int64) []Entry {
	out := make([]Entry, len(values))
	for k, v := range values {
		out[k] = Int(v)
	}

	return out
}

// IsRational reports whether e is carried as a Rational.
func (e Entry) IsRational() bool { return e.frac }

// bigInt returns the integer payload in math/big form. Read-only.
func (e Entry) bigInt() *big.Int {
	if e.b != nil {
		return e.b
	}

	return big.NewInt(e.i)
}

// Rat returns e promoted to a Rational (integers become v/1).
func (e Entry) Rat() rational.Rational {
	switch {
	case e.frac:
		return e.r
	case e.b != nil:
		return rational.FromBigInt(e.b)
	}

	return rational.FromInt(e.i)
}

// Widen returns e in Rational representation.
func (e Entry) Widen() Entry {
	if e.frac {
		return e
	}

	return Frac(e.Rat())
}

// Narrow returns e as an integer when it is an integral Rational, else e.
func (e Entry) Narrow() Entry {
	if !e.frac {
		return e
	}
	v, err := e.r.BigInt()
	if err != nil {
		return e
	}

	return shrink(v)
}

// ---------- arithmetic dispatch ----------

// entryOp is one row of the dispatch table: the int64 kernel runs when both
// operands are small integers and reports false on overflow, the big kernel
// runs for any other integer pair, the rational kernel otherwise.
type entryOp struct {
	onInts func(a, b int64) (int64, bool)
	onBigs func(z, a, b *big.Int) *big.Int
	onRats func(a, b rational.Rational) rational.Rational
}

var (
	opAddEntries = entryOp{
		onInts: func(a, b int64) (int64, bool) {
			c := a + b
			return c, (c > a) == (b > 0)
		},
		onBigs: (*big.Int).Add,
		onRats: rational.Rational.Add,
	}
	opSubEntries = entryOp{
		onInts: func(a, b int64) (int64, bool) {
			c := a - b
			return c, (c < a) == (b > 0)
		},
		onBigs: (*big.Int).Sub,
		onRats: rational.Rational.Sub,
	}
	opMulEntries = entryOp{
		onInts: func(a, b int64) (int64, bool) {
			if a == 0 || b == 0 {
				return 0, true
			}
			if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
				return 0, false
			}
			c := a * b
			return c, c/b == a
		},
		onBigs: (*big.Int).Mul,
		onRats: rational.Rational.Mul,
	}
)

func (op entryOp) apply(a, b Entry) Entry {
	if a.frac || b.frac {
		return Frac(op.onRats(a.Rat(), b.Rat()))
	}
	if a.b == nil && b.b == nil {
		if c, ok := op.onInts(a.i, b.i); ok {
			return Int(c)
		}
	}

	return shrink(op.onBigs(new(big.Int), a.bigInt(), b.bigInt()))
}

// Add returns e + o.
func (e Entry) Add(o Entry) Entry { return opAddEntries.apply(e, o) }

// Sub returns e - o.
func (e Entry) Sub(o Entry) Entry { return opSubEntries.apply(e, o) }

// Mul returns e * o.
func (e Entry) Mul(o Entry) Entry { return opMulEntries.apply(e, o) }

// Neg returns -e in the same representation.
func (e Entry) Neg() Entry {
	switch {
	case e.frac:
		return Frac(e.r.Neg())
	case e.b != nil || e.i == math.MinInt64:
		return shrink(new(big.Int).Neg(e.bigInt()))
	}

	return Int(-e.i)
}

// Div returns e / o as a simplified Rational entry.
// Returns rational.ErrDivisionByZero if o is zero.
func (e Entry) Div(o Entry) (Entry, error) {
	q, err := e.Rat().Div(o.Rat())
	if err != nil {
		return Entry{}, err
	}

	return Frac(q), nil
}

// Inverse returns 1/e as a simplified Rational entry.
// Returns rational.ErrDivisionByZero if e is zero.
func (e Entry) Inverse() (Entry, error) {
	inv, err := e.Rat().Inverse()
	if err != nil {
		return Entry{}, err
	}

	return Frac(inv), nil
}

// ---------- comparison ----------

// Equal reports value equality across representations.
func (e Entry) Equal(o Entry) bool {
	return e.Cmp(o) == 0
}

// Cmp returns -1, 0 or +1 comparing e with o.
func (e Entry) Cmp(o Entry) int {
	switch {
	case e.frac || o.frac:
		return e.Rat().Cmp(o.Rat())
	case e.b != nil || o.b != nil:
		return e.bigInt().Cmp(o.bigInt())
	case e.i < o.i:
		return -1
	case e.i > o.i:
		return 1
	}

	return 0
}

// IsZero reports e == 0.
func (e Entry) IsZero() bool {
	switch {
	case e.frac:
		return e.r.IsZero()
	case e.b != nil:
		return e.b.Sign() == 0
	}

	return e.i == 0
}

// IsOne reports e == 1.
func (e Entry) IsOne() bool {
	switch {
	case e.frac:
		return e.r.EqualInt(1)
	case e.b != nil:
		return e.b.IsInt64() && e.b.Int64() == 1
	}

	return e.i == 1
}

// ---------- conversion & formatting ----------

// Int64 returns e as an integer.
// Returns rational.ErrNonIntegral for non-integral Rationals and
// rational.ErrRange for integers outside the int64 range.
func (e Entry) Int64() (int64, error) {
	switch {
	case e.frac:
		return e.r.Int64()
	case e.b != nil:
		return e.Rat().Int64()
	}

	return e.i, nil
}

// Float64 returns the nearest float64. Display only.
func (e Entry) Float64() float64 {
	switch {
	case e.frac:
		return e.r.Float64()
	case e.b != nil:
		f, _ := new(big.Float).SetInt(e.b).Float64()
		return f
	}

	return float64(e.i)
}

// String renders integers in decimal and Rationals as "p/q".
func (e Entry) String() string {
	switch {
	case e.frac:
		return e.r.String()
	case e.b != nil:
		return e.b.String()
	}

	return strconv.FormatInt(e.i, 10)
}
