// SPDX-License-Identifier: MIT

package rational

import (
	"fmt"
	"math/big"
)

// Rational is an exact fraction p/q with q != 0.
// Numerator and denominator are arbitrary precision and never mutated after
// construction, so values can be copied and shared freely.
// The zero value is 0/1.
type Rational struct {
	p *big.Int // numerator; nil means 0
	q *big.Int // denominator, never 0; nil means 1
}

// shared read-only constants; never passed to a mutating big.Int method
// as the receiver.
var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
)

// Zero and One are the additive and multiplicative identities.
var (
	Zero = Rational{}
	One  = Rational{p: big.NewInt(1)}
)

// New returns num/denom exactly as given (no simplification).
// Returns ErrZeroDenominator if denom == 0.
func New(num, denom int64) (Rational, error) {
	if denom == 0 {
		return Rational{}, fmt.Errorf("New(%d,%d): %w", num, denom, ErrZeroDenominator)
	}

	return Rational{p: big.NewInt(num), q: big.NewInt(denom)}, nil
}

// NewBig is New for arbitrary-precision components. Both are copied.
// Returns ErrZeroDenominator if denom is nil or zero.
func NewBig(num, denom *big.Int) (Rational, error) {
	if denom == nil || denom.Sign() == 0 {
		return Rational{}, fmt.Errorf("NewBig(%v,%v): %w", num, denom, ErrZeroDenominator)
	}
	p := new(big.Int)
	if num != nil {
		p.Set(num)
	}

	return Rational{p: p, q: new(big.Int).Set(denom)}, nil
}

// MustNew is like New but panics on a zero denominator.
// Intended for literals in tests and examples.
func MustNew(num, denom int64) Rational {
	r, err := New(num, denom)
	if err != nil {
		panic(err)
	}

	return r
}

// FromInt promotes v to v/1.
func FromInt(v int64) Rational {
	return Rational{p: big.NewInt(v), q: big.NewInt(1)}
}

// FromBigInt promotes v to v/1. v is copied.
func FromBigInt(v *big.Int) Rational {
	return Rational{p: new(big.Int).Set(v), q: big.NewInt(1)}
}

// GCD returns the greatest common divisor of a and b by Euclidean recursion.
// GCD(0, b) == b and GCD(a, 0) == a. The sign of the result follows the
// remainder chain; Simplify normalizes it. The arguments are not modified.
func GCD(a, b *big.Int) *big.Int {
	if a.Sign() == 0 {
		return new(big.Int).Set(b)
	}
	if b.Sign() == 0 {
		return new(big.Int).Set(a)
	}

	return GCD(b, new(big.Int).Rem(a, b))
}

func (r Rational) num() *big.Int {
	if r.p == nil {
		return bigZero
	}

	return r.p
}

func (r Rational) den() *big.Int {
	if r.q == nil {
		return bigOne
	}

	return r.q
}

// Num returns a copy of the stored numerator.
func (r Rational) Num() *big.Int { return new(big.Int).Set(r.num()) }

// Denom returns a copy of the stored denominator.
func (r Rational) Denom() *big.Int { return new(big.Int).Set(r.den()) }

// Simplify returns the lowest-terms form of r with a positive denominator.
func (r Rational) Simplify() Rational {
	g := GCD(r.num(), r.den())
	g.Abs(g)
	p := new(big.Int).Quo(r.num(), g)
	q := new(big.Int).Quo(r.den(), g)
	if q.Sign() < 0 {
		p.Neg(p)
		q.Neg(q)
	}

	return Rational{p: p, q: q}
}

// scale multiplies both components by k, keeping the value unchanged.
func (r Rational) scale(k *big.Int) Rational {
	return Rational{
		p: new(big.Int).Mul(r.num(), k),
		q: new(big.Int).Mul(r.den(), k),
	}
}

// Equal reports whether r and o denote the same value.
func (r Rational) Equal(o Rational) bool {
	a, b := r.Simplify(), o.Simplify()
	return a.p.Cmp(b.p) == 0 && a.q.Cmp(b.q) == 0
}

// EqualInt reports whether r is the integer v.
func (r Rational) EqualInt(v int64) bool {
	s := r.Simplify()
	return s.q.Cmp(bigOne) == 0 && s.p.IsInt64() && s.p.Int64() == v
}

// IsInteger reports whether the simplified denominator is 1.
func (r Rational) IsInteger() bool {
	return r.Simplify().q.Cmp(bigOne) == 0
}

// IsZero reports whether r == 0.
func (r Rational) IsZero() bool { return r.num().Sign() == 0 }

// Sign returns -1, 0 or +1.
func (r Rational) Sign() int {
	return r.num().Sign() * r.den().Sign()
}

// Add returns r + o in lowest terms.
// Both operands are brought to the common denominator r.q*o.q first.
func (r Rational) Add(o Rational) Rational {
	a := r.scale(o.den())
	b := o.scale(r.den())

	return Rational{p: a.p.Add(a.p, b.p), q: a.q}.Simplify()
}

// Sub returns r - o in lowest terms.
func (r Rational) Sub(o Rational) Rational {
	return r.Add(o.Neg())
}

// Mul returns r * o in lowest terms.
func (r Rational) Mul(o Rational) Rational {
	return Rational{
		p: new(big.Int).Mul(r.num(), o.num()),
		q: new(big.Int).Mul(r.den(), o.den()),
	}.Simplify()
}

// Div returns r / o in lowest terms.
// Returns ErrDivisionByZero if o is zero.
func (r Rational) Div(o Rational) (Rational, error) {
	inv, err := o.Inverse()
	if err != nil {
		return Rational{}, fmt.Errorf("Div(%s,%s): %w", r, o, err)
	}

	return r.Mul(inv), nil
}

// Neg returns -r (representation preserved).
func (r Rational) Neg() Rational {
	return Rational{p: new(big.Int).Neg(r.num()), q: r.Denom()}
}

// Inverse returns 1/r in lowest terms.
// Returns ErrDivisionByZero if r is zero.
func (r Rational) Inverse() (Rational, error) {
	if r.IsZero() {
		return Rational{}, ErrDivisionByZero
	}

	return Rational{p: r.Denom(), q: r.Num()}.Simplify(), nil
}

// Cmp compares r and o and returns -1, 0 or +1.
// Operands are simplified first so both denominators are positive and the
// cross products keep their order.
func (r Rational) Cmp(o Rational) int {
	a, b := r.Simplify(), o.Simplify()
	lhs := new(big.Int).Mul(a.p, b.q)
	rhs := new(big.Int).Mul(b.p, a.q)

	return lhs.Cmp(rhs)
}

// Less reports r < o.
func (r Rational) Less(o Rational) bool { return r.Cmp(o) < 0 }

// LessOrEqual reports r <= o.
func (r Rational) LessOrEqual(o Rational) bool { return r.Cmp(o) <= 0 }

// Greater reports r > o.
func (r Rational) Greater(o Rational) bool { return r.Cmp(o) > 0 }

// GreaterOrEqual reports r >= o.
func (r Rational) GreaterOrEqual(o Rational) bool { return r.Cmp(o) >= 0 }

// Float64 returns the nearest float64. Display only; never used in arithmetic.
func (r Rational) Float64() float64 {
	f, _ := new(big.Rat).SetFrac(r.num(), r.den()).Float64()

	return f
}

// BigInt returns r as an arbitrary-precision integer.
// Returns ErrNonIntegral unless IsInteger holds.
func (r Rational) BigInt() (*big.Int, error) {
	s := r.Simplify()
	if s.q.Cmp(bigOne) != 0 {
		return nil, fmt.Errorf("BigInt(%s): %w", r, ErrNonIntegral)
	}

	return s.p, nil
}

// Int64 returns r as an integer.
// Returns ErrNonIntegral unless IsInteger holds, and ErrRange when the
// integer does not fit in an int64.
func (r Rational) Int64() (int64, error) {
	v, err := r.BigInt()
	if err != nil {
		return 0, err
	}
	if !v.IsInt64() {
		return 0, fmt.Errorf("Int64(%s): %w", r, ErrRange)
	}

	return v.Int64(), nil
}

// String renders the stored representation as "p/q".
func (r Rational) String() string {
	return r.num().String() + "/" + r.den().String()
}
