// SPDX-License-Identifier: MIT

// Package matrix - cofactor family: minors, determinant, cofactor, adjoint, inverse.
//
// Purpose:
//   - Compute the determinant by recursive Laplace expansion along the first row.
//   - Build cofactor and adjoint matrices from minor determinants.
//   - Invert through adjoint / determinant.
//
// Determinism:
//   - The expansion is the textbook O(n!) recursion with no pivoting. Results,
//     including rounding error, depend on this exact evaluation order:
//     det += (−1)^col · a[0,col] · det(minor(0,col)), col = 0..n-1.
//   - Every recursive call owns its minor buffer; nothing is shared across calls.

package matrix

import "fmt"

// minorInto copies src without row skipRow and column skipCol into dst.
// dst must be (n-1)×(n-1) for an n×n src; the caller guarantees shapes.
func minorInto(dst, src *Dense, skipRow, skipCol int) {
	var i, j int
	k := 0
	for i = 0; i < src.r; i++ {
		if i == skipRow {
			continue
		}
		for j = 0; j < src.c; j++ {
			if j == skipCol {
				continue
			}
			dst.data[k] = src.data[i*src.c+j]
			k++
		}
	}
}

// newMinorBuffer allocates an (n-1)×(n-1) buffer for the minors of an n×n matrix.
func newMinorBuffer(n int) *Dense {
	return &Dense{r: n - 1, c: n - 1, data: make([]float64, (n-1)*(n-1))}
}

// Minor returns the sub-matrix of m obtained by deleting row and col.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrOutOfRange for invalid row/col.
//   - ErrInvalidDimensions for a 1×1 input (its minor is empty).
func Minor(m Matrix, row, col int) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if row < 0 || row >= d.r || col < 0 || col >= d.c {
		return nil, matrixErrorf(opMinor, fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfRange))
	}
	if d.r == 1 {
		return nil, matrixErrorf(opMinor, ErrInvalidDimensions)
	}

	dst := newMinorBuffer(d.r)
	minorInto(dst, d, row, col)

	return dst, nil
}

// determinant is the recursive kernel behind Determinant. d must be square.
//
// Implementation:
//   - 1×1: the sole element.
//   - 2×2: a·d − b·c.
//   - n×n: one (n-1)×(n-1) buffer per call, refilled for each column of row 0.
func determinant(d *Dense) float64 {
	n := d.r
	switch n {
	case 1:
		return d.data[0]
	case 2:
		return d.data[0]*d.data[3] - d.data[1]*d.data[2]
	}

	sub := newMinorBuffer(n) // owned by this call only
	det := ZeroSum
	sign := 1.0 // (−1)^col
	for col := 0; col < n; col++ {
		minorInto(sub, d, 0, col)
		det += sign * d.data[col] * determinant(sub)
		sign = -sign
	}

	return det
}

// Determinant returns det(m) by cofactor expansion along the first row.
//
// Implementation:
//   - Stage 1: ValidateSquare(m).
//   - Stage 2: recursive expansion (see determinant).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n!), Space O(n²) across the recursion stack.
//
// Notes:
//   - No pivoting or decomposition; output matches the expansion order above.
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return determinant(d), nil
}

// cofactorSign returns (−1)^(i+j).
func cofactorSign(i, j int) float64 {
	if (i+j)%2 == 0 {
		return 1
	}

	return -1
}

// Cofactor returns the cofactor matrix C with C[i,j] = (−1)^(i+j) · det(minor(i,j)).
//
// Implementation:
//   - Stage 1: ValidateSquare(m); allocate n×n result.
//   - Stage 2: for each (i,j), build a fresh minor and take its determinant.
//
// Behavior highlights:
//   - A 1×1 input yields [[1]]: the determinant of the empty minor is 1.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n² · (n-1)!), Space O(n²).
func Cofactor(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}

	n := d.r
	res, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}
	if n == 1 {
		res.data[0] = 1
		return res, nil
	}

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			minor := newMinorBuffer(n)
			minorInto(minor, d, i, j)
			res.data[i*n+j] = cofactorSign(i, j) * determinant(minor)
		}
	}

	return res, nil
}

// Adjoint returns the adjugate of m: the transpose of its cofactor matrix.
// The adjoint of a 1×1 matrix is [[1]] regardless of its value.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
func Adjoint(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}
	if m.Rows() == 1 {
		res, err := NewDense(1, 1)
		if err != nil {
			return nil, matrixErrorf(opAdjoint, err)
		}
		res.data[0] = 1
		return res, nil
	}

	cof, err := Cofactor(m)
	if err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}
	adj, err := Transpose(cof)
	if err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}

	return adj, nil
}

// Inverse computes A⁻¹ = adj(A) / det(A).
//
// Implementation:
//   - Stage 1: ValidateSquare(m).
//   - Stage 2: det(m); exactly zero ⇒ ErrSingular (checked before building the adjoint).
//   - Stage 3: divide every adjoint element by det.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Notes:
//   - Near-singular matrices are inverted as-is; only an exact zero is rejected.
func Inverse(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	det, err := Determinant(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if det == 0 {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	adj, err := Adjoint(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return divideBy(adj, det), nil
}
