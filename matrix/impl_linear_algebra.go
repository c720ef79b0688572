// SPDX-License-Identifier: MIT
// Package matrix provides the calculator's linear-algebra kernels over any Matrix
// implementation: Frobenius norm, transpose, matrix product (with operand-order
// correction), determinant by cofactor expansion, cofactor and adjoint matrices,
// and the adjoint-based inverse. All functions perform strict fail-fast validation
// and return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare canonical kernels and the operation tags used for error reporting.
//   - Keep every kernel pure: inputs are never mutated, results are freshly allocated.
//
// Notes:
//   - The cofactor family lives in impl_cofactor.go.

package matrix

import (
	"fmt"
	"math"
)

// NormZero is the additive identity for norm accumulation.
const NormZero = 0.0

// ZeroSum is the initial value of every product and expansion accumulator.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opFrobenius   = "FrobeniusNorm"
	opTranspose   = "Transpose"
	opMul         = "Mul"
	opProduct     = "Product"
	opDeterminant = "Determinant"
	opMinor       = "Minor"
	opCofactor    = "Cofactor"
	opAdjoint     = "Adjoint"
	opInverse     = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Inputs:
//   - tag: operation name (use package-level op* constants; no magic strings).
//   - err: underlying non-nil error to wrap.
//
// Returns:
//   - error: formats as "<tag>: <underlying>" and still matches errors.Is/As.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// FrobeniusNorm returns sqrt(Σ m[i,j]²) over every element of m.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m) (through asDense).
//   - Stage 2: single flat walk 0..r*c-1 accumulating squares; position is irrelevant.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(1) for *Dense input.
func FrobeniusNorm(m Matrix) (float64, error) {
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opFrobenius, err)
	}

	sum := NormZero
	for _, v := range d.data { // deterministic 0..n-1
		sum += v * v
	}

	return math.Sqrt(sum), nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Input is validated non-nil; the original matrix is never mutated.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(cols, rows).
//   - Stage 2: data[i*cols + j] → res.data[j*rows + i].
//
// Returns:
//   - *Dense: newly allocated c×r matrix.
//
// Errors:
//   - ErrNilMatrix, allocation errors from NewDense.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
func Transpose(m Matrix) (*Dense, error) {
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := d.r, d.c
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j, baseSrc int // loop iterators
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = d.data[baseSrc+j]
		}
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b) (A.Cols == B.Rows).
//   - Stage 2: triple loop k→i→j, C[k,i] = Σ_j A[k,j]·B[j,i], with the accumulator
//     reset to ZeroSum for every output element.
//
// Behavior highlights:
//   - No zero-skipping: every term is accumulated in index order so NaN/Inf propagate
//     and summation order is fixed.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, allocation errors.
//
// Complexity:
//   - Time O(r·n·c), Space O(r·c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	res, err := NewDense(da.r, db.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		k, i, j int // loop iterators
		sum     float64
		inner   = da.c
	)
	for k = 0; k < res.r; k++ {
		for i = 0; i < res.c; i++ {
			sum = ZeroSum
			for j = 0; j < inner; j++ {
				sum += da.data[k*da.c+j] * db.data[j*db.c+i]
			}
			res.data[k*res.c+i] = sum
		}
	}

	return res, nil
}

// Product multiplies a and b, tolerating operands given in the wrong order.
//
// Implementation:
//   - Stage 1: if a.Cols == b.Rows, return a×b (swapped=false).
//   - Stage 2: else if b.Cols == a.Rows, return b×a (swapped=true).
//   - Stage 3: otherwise fail with ErrDimensionMismatch.
//
// Behavior highlights:
//   - The direct orientation always wins when both are conformable (e.g. two n×n).
//
// Returns:
//   - *Dense: the product.
//   - bool: whether the operands were swapped.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, allocation errors.
func Product(a, b Matrix) (*Dense, bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, false, matrixErrorf(opProduct, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, false, matrixErrorf(opProduct, err)
	}

	if Conformable(a, b) {
		res, err := Mul(a, b)
		if err != nil {
			return nil, false, matrixErrorf(opProduct, err)
		}
		return res, false, nil
	}
	if Conformable(b, a) {
		res, err := Mul(b, a)
		if err != nil {
			return nil, false, matrixErrorf(opProduct, err)
		}
		return res, true, nil
	}

	return nil, false, matrixErrorf(opProduct,
		fmt.Errorf("%dx%d and %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
}

// divideBy returns a new matrix whose elements are m[i,j] / divisor.
// Each element is divided, never multiplied by the reciprocal.
func divideBy(m *Dense, divisor float64) *Dense {
	res := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	for idx, v := range m.data {
		res.data[idx] = v / divisor
	}

	return res
}
