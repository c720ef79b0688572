// SPDX-License-Identifier: MIT

// Package matfile: functional configuration for the reader, parser and writer.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
package matfile

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxRowsCols bounds both declared dimensions of a matrix file.
	DefaultMaxRowsCols = 2000

	// DefaultMaxLineLength bounds a single physical line, in bytes, newline included.
	DefaultMaxLineLength = 40000

	// DefaultPrecision is the number of significant digits written per value.
	DefaultPrecision = 12

	// DefaultAllowNonFinite rejects NaN and ±Inf matrix elements when false.
	DefaultAllowNonFinite = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxRowsColsInvalid   = "matfile: WithMaxRowsCols: limit must be in [1, 2000]"
	panicMaxLineLengthInvalid = "matfile: WithMaxLineLength: length must be positive"
	panicPrecisionInvalid     = "matfile: WithPrecision: precision must be in [1, 17]"
)

// maxPrecision is the largest number of significant digits that is still meaningful for float64.
const maxPrecision = 17

// Option mutates internal options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	maxRowsCols    int  // DefaultMaxRowsCols
	maxLineLength  int  // DefaultMaxLineLength
	precision      int  // DefaultPrecision
	allowNonFinite bool // DefaultAllowNonFinite
}

// WithMaxRowsCols sets the largest accepted value for the declared rows and cols.
// The limit cannot exceed DefaultMaxRowsCols because the engine caps allocations
// at matrix.MaxElements.
func WithMaxRowsCols(n int) Option {
	if n < 1 || n > DefaultMaxRowsCols {
		panic(panicMaxRowsColsInvalid)
	}

	return func(o *Options) { o.maxRowsCols = n }
}

// WithMaxLineLength sets the maximum length of a physical line in bytes.
func WithMaxLineLength(n int) Option {
	if n < 1 {
		panic(panicMaxLineLengthInvalid)
	}

	return func(o *Options) { o.maxLineLength = n }
}

// WithPrecision sets the significant digits the Writer prints per value.
func WithPrecision(digits int) Option {
	if digits < 1 || digits > maxPrecision {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = digits }
}

// WithNonFinite accepts NaN and ±Inf element tokens (e.g. "nan", "inf", "1e999").
func WithNonFinite() Option {
	return func(o *Options) { o.allowNonFinite = true }
}

// gatherOptions applies setters on top of the defaults, last-writer-wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		maxRowsCols:    DefaultMaxRowsCols,
		maxLineLength:  DefaultMaxLineLength,
		precision:      DefaultPrecision,
		allowNonFinite: DefaultAllowNonFinite,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
