// SPDX-License-Identifier: MIT

// Package matfile - writer for the matrix file grammar.
// Output parses back with Parse; values round-trip to the configured precision.

package matfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/matcalc/matrix"
)

// valueSeparator separates values on a data line.
const valueSeparator = '\t'

// Writer serializes matrices, with optional leading comment lines.
type Writer struct {
	w io.Writer
	o Options
}

// NewWriter returns a Writer emitting to w; WithPrecision sets the digits per value.
func NewWriter(w io.Writer, opts ...Option) *Writer {
	return &Writer{w: w, o: gatherOptions(opts...)}
}

// WriteMatrix emits each comment as "# ..." lines, then the header, the rows
// and the closing "end". Multi-line comments become one comment line each.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil m; any write error from the underlying writer.
func (w *Writer) WriteMatrix(m matrix.Matrix, comments ...string) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return err
	}

	bw := bufio.NewWriter(w.w)
	for _, c := range comments {
		for _, line := range strings.Split(c, "\n") {
			fmt.Fprintf(bw, "%s %s\n", commentPrefix, line)
		}
	}

	rows, cols := m.Rows(), m.Cols()
	fmt.Fprintf(bw, "%s %d %d\n", keywordMatrix, rows, cols)

	var buf []byte
	var i, j int
	for i = 0; i < rows; i++ {
		buf = buf[:0]
		for j = 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return err
			}
			if j > 0 {
				buf = append(buf, valueSeparator)
			}
			buf = strconv.AppendFloat(buf, v, 'g', w.o.precision, 64)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	fmt.Fprintf(bw, "%s\n", keywordEnd)

	return bw.Flush()
}

// WriteFile creates (or truncates) path and writes m to it.
//
// Errors:
//   - ErrFileOpen when the file cannot be created.
//   - write or close errors.
func WriteFile(path string, m matrix.Matrix, comments []string, opts ...Option) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return openErrorf(path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err = NewWriter(f, opts...).WriteMatrix(m, comments...); err != nil {
		return err
	}
	klog.V(2).InfoS("Wrote matrix file", "file", path, "rows", m.Rows(), "cols", m.Cols())

	return nil
}
