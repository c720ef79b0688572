// SPDX-License-Identifier: MIT
// Package matfile: sentinel errors and the positional ParseError.
// Every grammar violation is a *ParseError that matches ErrInvalidFile via errors.Is.

package matfile

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFile matches every grammar violation reported by Parse.
	ErrInvalidFile = errors.New("matfile: invalid matrix file")

	// ErrFileOpen is returned when a named file cannot be opened for reading or writing.
	ErrFileOpen = errors.New("matfile: cannot open file")
)

// Reasons attached to ParseError. Stable strings; tests compare against them.
const (
	ReasonEndOfFile      = "file ended before the matrix was complete"
	ReasonLineTooLong    = "line exceeds the maximum length"
	ReasonReadFailed     = "read failed"
	ReasonHeader         = "first line must be 'matrix <rows> <cols>'"
	ReasonBadDimension   = "stated rows or columns are invalid"
	ReasonDimensionLimit = "rows or columns of the matrix are bigger than the maximum value allowed"
	ReasonUnexpected     = "unexpected characters in the file"
	ReasonColumns        = "number of stated columns does not match file"
	ReasonRows           = "number of stated rows does not match file"
	ReasonElement        = "matrix element is invalid"
	ReasonNoEnd          = "could not find the end of the file"
)

// ParseError describes where and why a matrix file was rejected.
type ParseError struct {
	File   string // name used for diagnostics
	Line   int    // 1-based physical line number
	Token  string // offending token; empty when the line or file ended early
	Reason string // one of the Reason* constants
	Err    error  // underlying I/O error, if any
}

// Error renders the diagnostic on a single line.
func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%s is an invalid matrix file: %s (line %d, token %q)", e.File, e.Reason, e.Line, e.Token)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Is makes every ParseError match ErrInvalidFile.
func (e *ParseError) Is(target error) bool { return target == ErrInvalidFile }

// Unwrap exposes the underlying I/O error, if any.
func (e *ParseError) Unwrap() error { return e.Err }

// openErrorf wraps an os-level open/create failure with ErrFileOpen.
func openErrorf(name string, err error) error {
	return fmt.Errorf("%w %s: %w", ErrFileOpen, name, err)
}
