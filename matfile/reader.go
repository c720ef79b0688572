// SPDX-License-Identifier: MIT

// Package matfile - line-oriented tokenizer (the parse cursor).
//
// Purpose:
//   - Turn any io.Reader into whitespace-delimited tokens, one physical line at a time.
//   - Skip blank lines and comment lines while still counting them.
//   - Remember the current line number and the last token for diagnostics.
//
// Notes:
//   - The Reader is forward-only; it cannot be rewound or restarted.

package matfile

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// commentPrefix starts a comment token; the rest of the line is ignored.
const commentPrefix = "#"

// initialBufferSize is the scanner's starting buffer; it grows up to maxLineLength.
const initialBufferSize = 4096

// isSeparator reports whether r separates tokens: space, tab, CR or LF only.
func isSeparator(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

// Reader is the parse cursor over one matrix source.
type Reader struct {
	sc     *bufio.Scanner
	name   string   // file name used in diagnostics
	line   int      // physical lines consumed so far (1-based once reading starts)
	token  string   // most recently extracted token
	fields []string // tokens not yet consumed on the current line
}

// NewReader returns a Reader over src. name labels diagnostics; opts may set
// the maximum line length (WithMaxLineLength).
func NewReader(src io.Reader, name string, opts ...Option) *Reader {
	o := gatherOptions(opts...)

	sc := bufio.NewScanner(src)
	sc.Buffer(make([]byte, 0, min(initialBufferSize, o.maxLineLength)), o.maxLineLength)

	return &Reader{sc: sc, name: name}
}

// Name returns the diagnostic name of the source.
func (r *Reader) Name() string { return r.name }

// Line returns the number of physical lines consumed so far.
func (r *Reader) Line() int { return r.line }

// Token returns the most recently extracted token ("" after a line or the input ran out).
func (r *Reader) Token() string { return r.token }

// ReadLine advances to the next significant line and returns its first token.
//
// Implementation:
//   - Stage 1: consume a physical line, incrementing the line counter.
//   - Stage 2: split on separators; blank lines and lines whose first token starts
//     with '#' are skipped (and counted).
//   - Stage 3: keep the remaining tokens for NextToken.
//
// Errors:
//   - *ParseError with ReasonEndOfFile when the input ends (line = last line + 1, token "").
//   - *ParseError with ReasonLineTooLong when a line exceeds the configured maximum.
//   - *ParseError with ReasonReadFailed wrapping any other read error.
func (r *Reader) ReadLine() (string, error) {
	for {
		r.line++
		if !r.sc.Scan() {
			r.token, r.fields = "", nil
			return "", r.scanError()
		}

		fields := strings.FieldsFunc(r.sc.Text(), isSeparator)
		if len(fields) == 0 || strings.HasPrefix(fields[0], commentPrefix) {
			continue // blank or comment line
		}

		r.token, r.fields = fields[0], fields[1:]
		return r.token, nil
	}
}

// NextToken returns the next token on the current line.
// ok is false when the line has no more tokens, or when the next token starts a
// trailing comment; in the latter case the comment token is returned and recorded.
func (r *Reader) NextToken() (tok string, ok bool) {
	if len(r.fields) == 0 {
		r.token = ""
		return "", false
	}

	tok = r.fields[0]
	r.token = tok
	if strings.HasPrefix(tok, commentPrefix) {
		r.fields = nil // the comment runs to the end of the line
		return tok, false
	}
	r.fields = r.fields[1:]

	return tok, true
}

// Reject builds a ParseError at the current position with the given reason.
func (r *Reader) Reject(reason string) *ParseError {
	return &ParseError{File: r.name, Line: r.line, Token: r.token, Reason: reason}
}

// scanError classifies a failed Scan.
func (r *Reader) scanError() error {
	err := r.sc.Err()
	switch {
	case err == nil:
		return r.Reject(ReasonEndOfFile)
	case errors.Is(err, bufio.ErrTooLong):
		return r.Reject(ReasonLineTooLong)
	default:
		pe := r.Reject(ReasonReadFailed)
		pe.Err = err
		return pe
	}
}
