// SPDX-License-Identifier: MIT

package calc

import (
	"errors"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/matcalc/matfile"
	"github.com/katalvlaran/matcalc/matrix"
)

// Result is the outcome of Run: a scalar for Frobenius/Determinant, a matrix otherwise.
type Result struct {
	Op      Operation
	Scalar  float64
	Matrix  *matrix.Dense
	Swapped bool // product computed as second × first
}

// Calculator loads operand files with a fixed set of matfile options and
// applies one operation. The zero value uses matfile defaults.
type Calculator struct {
	opts []matfile.Option
}

// New returns a Calculator that parses every input with opts.
func New(opts ...matfile.Option) *Calculator {
	return &Calculator{opts: opts}
}

// Run dispatches op over the given input paths.
// The number of inputs must equal op.Inputs(); otherwise ErrArguments.
func (c *Calculator) Run(op Operation, inputs ...string) (Result, error) {
	if !op.Valid() {
		return Result{}, argumentsf("unknown operation %d", int(op))
	}
	if len(inputs) != op.Inputs() {
		return Result{}, argumentsf("%s takes %d input file(s), got %d", op.Name(), op.Inputs(), len(inputs))
	}

	res := Result{Op: op}
	var err error
	switch op {
	case OpFrobenius:
		res.Scalar, err = c.FrobeniusNorm(inputs[0])
	case OpTranspose:
		res.Matrix, err = c.Transpose(inputs[0])
	case OpProduct:
		res.Matrix, res.Swapped, err = c.Product(inputs[0], inputs[1])
	case OpDeterminant:
		res.Scalar, err = c.Determinant(inputs[0])
	case OpAdjoint:
		res.Matrix, err = c.Adjoint(inputs[0])
	case OpInverse:
		res.Matrix, err = c.Inverse(inputs[0])
	}
	if err != nil {
		return Result{}, err
	}

	klog.V(2).InfoS("Operation finished", "operation", op, "inputs", inputs, "swapped", res.Swapped)

	return res, nil
}

func (c *Calculator) load(path string) (*matrix.Dense, error) {
	return matfile.ParseFile(path, c.opts...)
}

// FrobeniusNorm parses path and returns the Frobenius norm of its matrix.
func (c *Calculator) FrobeniusNorm(path string) (float64, error) {
	m, err := c.load(path)
	if err != nil {
		return 0, err
	}

	return matrix.FrobeniusNorm(m)
}

// Transpose parses path and returns the transpose of its matrix.
func (c *Calculator) Transpose(path string) (*matrix.Dense, error) {
	m, err := c.load(path)
	if err != nil {
		return nil, err
	}

	return matrix.Transpose(m)
}

// Product parses both files and multiplies them, first × second when the shapes
// allow it, else second × first (swapped == true).
//
// Both files are parsed before any shape check, so a malformed second file is
// reported even when the shapes would not conform.
func (c *Calculator) Product(first, second string) (*matrix.Dense, bool, error) {
	a, err := c.load(first)
	if err != nil {
		return nil, false, err
	}
	b, err := c.load(second)
	if err != nil {
		return nil, false, err
	}

	if !matrix.Conformable(a, b) && !matrix.Conformable(b, a) {
		return nil, false, invalidMatrixf(matrix.ErrDimensionMismatch,
			"it is not possible to find the matrix product of a %dx%d and a %dx%d matrix",
			a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}

	out, swapped, err := matrix.Product(a, b)
	if err != nil {
		return nil, false, err
	}
	if swapped {
		klog.V(1).InfoS("Operands swapped for product", "first", first, "second", second)
	}

	return out, swapped, nil
}

// Determinant parses path and returns the determinant of its (square) matrix.
func (c *Calculator) Determinant(path string) (float64, error) {
	m, err := c.loadSquare(path, "determinant")
	if err != nil {
		return 0, err
	}

	return matrix.Determinant(m)
}

// Adjoint parses path and returns the adjoint of its (square) matrix.
func (c *Calculator) Adjoint(path string) (*matrix.Dense, error) {
	m, err := c.loadSquare(path, "adjoint")
	if err != nil {
		return nil, err
	}

	return matrix.Adjoint(m)
}

// Inverse parses path and returns the inverse of its (square, non-singular) matrix.
// A zero determinant is detected before any adjoint work is done.
func (c *Calculator) Inverse(path string) (*matrix.Dense, error) {
	m, err := c.loadSquare(path, "inverse")
	if err != nil {
		return nil, err
	}

	inv, err := matrix.Inverse(m)
	if errors.Is(err, matrix.ErrSingular) {
		return nil, invalidMatrixf(err, "the determinant is 0, so the inverse of the matrix could not be found")
	}

	return inv, err
}

// loadSquare parses path and rejects non-square matrices as ErrInvalidMatrix.
func (c *Calculator) loadSquare(path, what string) (*matrix.Dense, error) {
	m, err := c.load(path)
	if err != nil {
		return nil, err
	}
	if err = matrix.ValidateSquare(m); err != nil {
		return nil, invalidMatrixf(err, "the matrix is %dx%d and not square, so the %s cannot be found",
			m.Rows(), m.Cols(), what)
	}

	return m, nil
}
