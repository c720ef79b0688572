// SPDX-License-Identifier: MIT

// Package matfile - matrix file parser.
//
// Grammar (comments and blank lines allowed anywhere, trailing comments allowed):
//
//	matrix <rows> <cols>
//	<cols values>      (exactly <rows> lines)
//	end
//
// The first violation is fatal and reported as a *ParseError; no partial matrix
// is ever returned.

package matfile

import (
	"errors"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/matcalc/matrix"
)

// Grammar keywords.
const (
	keywordMatrix = "matrix"
	keywordEnd    = "end"
)

// ParseFile opens path and parses the single matrix it contains.
//
// Errors:
//   - ErrFileOpen (wrapping the *os.PathError) when the file cannot be opened.
//   - *ParseError (matches ErrInvalidFile) for any grammar violation.
func ParseFile(path string, opts ...Option) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, openErrorf(path, err)
	}
	defer f.Close()

	klog.V(1).InfoS("Processing file", "file", path)

	return Parse(f, path, opts...)
}

// Parse reads one matrix from src. name is used only for diagnostics.
//
// Implementation:
//   - Stage 1: header line, declared shape within [1, max rows/cols].
//   - Stage 2: exactly rows data lines of exactly cols values.
//   - Stage 3: closing "end" line.
func Parse(src io.Reader, name string, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)
	r := NewReader(src, name, opts...)

	rows, cols, err := readHeader(r, o)
	if err != nil {
		return nil, err
	}

	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if err = readValues(r, m, o); err != nil {
		return nil, err // m is dropped here
	}
	if err = readEnd(r); err != nil {
		return nil, err
	}

	klog.V(2).InfoS("Parsed matrix file", "file", name, "rows", rows, "cols", cols, "lines", r.Line())

	return m, nil
}

// readHeader consumes "matrix <rows> <cols>" and checks nothing else follows.
func readHeader(r *Reader, o Options) (rows, cols int, err error) {
	tok, err := r.ReadLine()
	if err != nil {
		return 0, 0, err
	}
	if tok != keywordMatrix {
		return 0, 0, r.Reject(ReasonHeader)
	}

	if rows, err = readDimension(r, o); err != nil {
		return 0, 0, err
	}
	if cols, err = readDimension(r, o); err != nil {
		return 0, 0, err
	}
	if err = expectLineEnd(r); err != nil {
		return 0, 0, err
	}

	return rows, cols, nil
}

// readDimension parses the next token as a base-10 integer in [1, maxRowsCols].
func readDimension(r *Reader, o Options) (int, error) {
	tok, ok := r.NextToken()
	if !ok {
		return 0, r.Reject(ReasonBadDimension)
	}

	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) && !strings.HasPrefix(tok, "-") {
			return 0, r.Reject(ReasonDimensionLimit)
		}
		return 0, r.Reject(ReasonBadDimension)
	}
	if v < 1 {
		return 0, r.Reject(ReasonBadDimension)
	}
	if v > int64(o.maxRowsCols) {
		return 0, r.Reject(ReasonDimensionLimit)
	}

	return int(v), nil
}

// readValues fills m row by row from the data lines.
//
// Behavior highlights:
//   - "end" where a value is expected means the declared rows do not match.
//   - Running out of tokens on a line means the declared cols do not match.
func readValues(r *Reader, m *matrix.Dense, o Options) error {
	rows, cols := m.Rows(), m.Cols()

	var i, j int
	for i = 0; i < rows; i++ {
		tok, err := r.ReadLine()
		if err != nil {
			return err
		}

		ok := true
		for j = 0; j < cols; j++ {
			if !ok {
				return r.Reject(ReasonColumns)
			}
			if tok == keywordEnd {
				return r.Reject(ReasonRows)
			}

			v, err := parseElement(tok, o)
			if err != nil {
				return r.Reject(ReasonElement)
			}
			if err = m.Set(i, j, v); err != nil {
				return err
			}

			tok, ok = r.NextToken()
		}
		if ok {
			return r.Reject(ReasonUnexpected)
		}
	}

	return nil
}

var (
	// errNonFinite marks NaN/±Inf tokens rejected by the numeric policy.
	errNonFinite = errors.New("non-finite value")

	// errDigitSeparator marks Go-style '_' digit separators, which are not part of the format.
	errDigitSeparator = errors.New("digit separator")
)

// digitSeparator is accepted by strconv.ParseFloat in Go literal syntax only.
const digitSeparator = "_"

// parseElement converts one value token with full-token consumption.
// Out-of-range literals parse to ±Inf and follow the non-finite policy.
func parseElement(tok string, o Options) (float64, error) {
	if strings.Contains(tok, digitSeparator) {
		return 0, errDigitSeparator
	}

	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		var numErr *strconv.NumError
		if !errors.As(err, &numErr) || !errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, err
		}
	}
	if !o.allowNonFinite && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return 0, errNonFinite
	}

	return v, nil
}

// readEnd consumes the closing "end" line.
func readEnd(r *Reader) error {
	tok, err := r.ReadLine()
	if err != nil {
		return err
	}
	if tok != keywordEnd {
		return r.Reject(ReasonNoEnd)
	}

	return expectLineEnd(r)
}

// expectLineEnd fails unless the current line is exhausted or only a comment remains.
func expectLineEnd(r *Reader) error {
	if _, ok := r.NextToken(); ok {
		return r.Reject(ReasonUnexpected)
	}

	return nil
}
