// SPDX-License-Identifier: MIT
// Package calc: error taxonomy of the calculator and its exit statuses.
// Every failure class maps to exactly one process exit status so scripts can
// tell them apart; ExitCode is the single place that mapping lives.

package calc

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matcalc/matfile"
	"github.com/katalvlaran/matcalc/matrix"
)

var (
	// ErrArguments marks a malformed invocation (unknown operation, wrong operand count).
	ErrArguments = errors.New("calc: incorrect arguments")

	// ErrInvalidMatrix marks a well-formed matrix the requested operation cannot accept:
	// non-square input, non-conformable product, or a zero determinant for inverse.
	ErrInvalidMatrix = errors.New("calc: invalid matrix")
)

// Exit statuses, one per error class.
const (
	ExitOK            = 0
	ExitArguments     = 1
	ExitMemory        = 2
	ExitFileOpen      = 3
	ExitInvalidFile   = 4
	ExitInvalidMatrix = 5
	ExitFailure       = 6 // anything else, e.g. a failed write to an open sink
)

// ExitCode maps an error returned by this module to its exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrArguments):
		return ExitArguments
	case errors.Is(err, matrix.ErrTooLarge):
		return ExitMemory
	case errors.Is(err, ErrInvalidMatrix):
		return ExitInvalidMatrix
	case errors.Is(err, matfile.ErrInvalidFile):
		return ExitInvalidFile
	case errors.Is(err, matfile.ErrFileOpen):
		return ExitFileOpen
	default:
		return ExitFailure
	}
}

// invalidMatrixf wraps cause as an ErrInvalidMatrix with a user-facing explanation.
func invalidMatrixf(cause error, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %w", ErrInvalidMatrix, fmt.Sprintf(format, args...), cause)
}

// argumentsf builds an ErrArguments error.
func argumentsf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrArguments, fmt.Sprintf(format, args...))
}
