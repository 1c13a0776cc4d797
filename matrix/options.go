// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for text rendering.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts Format output and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Rendering never feeds back into arithmetic; decimals are display only.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSeparator separates entries inside a row.
	DefaultSeparator = " "

	// DefaultBorder opens and closes each row and, for augmented matrices,
	// precedes the constants column.
	DefaultBorder = "|"

	// DefaultDecimals < 0 renders entries exactly ("3", "2/3").
	DefaultDecimals = -1
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicDecimalsInvalid = "matrix: WithDecimals: decimals must be non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	separator string // DefaultSeparator
	border    string // DefaultBorder
	decimals  int    // DefaultDecimals; >= 0 switches to fixed-point rendering
}

// WithSeparator sets the string placed between entries of a row.
func WithSeparator(sep string) Option {
	return func(o *Options) { o.separator = sep }
}

// WithBorder sets the row delimiter (default "|").
func WithBorder(border string) Option {
	return func(o *Options) { o.border = border }
}

// WithDecimals renders every entry as a fixed-point decimal with n digits.
// Panics with a stable message when n < 0.
func WithDecimals(n int) Option {
	if n < 0 {
		panic(panicDecimalsInvalid)
	}

	return func(o *Options) { o.decimals = n }
}

// WithExact restores exact rendering (integers and "p/q").
func WithExact() Option {
	return func(o *Options) { o.decimals = DefaultDecimals }
}

// NewFormatOptions resolves opts over the defaults.
func NewFormatOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		separator: DefaultSeparator,
		border:    DefaultBorder,
		decimals:  DefaultDecimals,
	}
}

// gatherOptions applies user setters in order; nil setters are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// Separator returns the resolved entry separator.
func (o Options) Separator() string { return o.separator }

// Border returns the resolved row delimiter.
func (o Options) Border() string { return o.border }

// Decimals returns the resolved decimal count (< 0 means exact).
func (o Options) Decimals() int { return o.decimals }
