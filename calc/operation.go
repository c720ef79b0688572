// SPDX-License-Identifier: MIT

package calc

// Operation identifies one of the calculator's six operations.
type Operation int

// The operations, in the order the help text lists them.
const (
	OpFrobenius Operation = iota + 1
	OpTranspose
	OpProduct
	OpDeterminant
	OpAdjoint
	OpInverse
)

// opInfo is the static description of an Operation.
type opInfo struct {
	flag   string // single-letter command-line flag
	name   string // long flag and human name
	title  string // used in help and result messages
	inputs int    // number of input matrix files
	matrix bool   // true when the result is a matrix (and may go to an output file)
}

var opTable = map[Operation]opInfo{
	OpFrobenius:   {flag: "f", name: "frobenius", title: "Frobenius Norm", inputs: 1},
	OpTranspose:   {flag: "t", name: "transpose", title: "Transpose", inputs: 1, matrix: true},
	OpProduct:     {flag: "m", name: "product", title: "Matrix Product", inputs: 2, matrix: true},
	OpDeterminant: {flag: "d", name: "determinant", title: "Determinant", inputs: 1},
	OpAdjoint:     {flag: "a", name: "adjoint", title: "Adjoint", inputs: 1, matrix: true},
	OpInverse:     {flag: "i", name: "inverse", title: "Inverse", inputs: 1, matrix: true},
}

// Operations returns every operation in help-text order.
func Operations() []Operation {
	return []Operation{OpFrobenius, OpTranspose, OpProduct, OpDeterminant, OpAdjoint, OpInverse}
}

// Flag returns the single-letter flag ("f", "t", ...).
func (op Operation) Flag() string { return opTable[op].flag }

// Name returns the long flag name ("frobenius", "transpose", ...).
func (op Operation) Name() string { return opTable[op].name }

// Title returns the human-readable operation name.
func (op Operation) Title() string { return opTable[op].title }

// Inputs returns the number of input files the operation reads.
func (op Operation) Inputs() int { return opTable[op].inputs }

// MatrixResult reports whether the operation produces a matrix rather than a scalar.
func (op Operation) MatrixResult() bool { return opTable[op].matrix }

// MaxArgs is the largest operand count: inputs plus an optional output file for matrix results.
func (op Operation) MaxArgs() int {
	if op.MatrixResult() {
		return op.Inputs() + 1
	}

	return op.Inputs()
}

// Valid reports whether op is one of the six operations.
func (op Operation) Valid() bool {
	_, ok := opTable[op]
	return ok
}

func (op Operation) String() string {
	if !op.Valid() {
		return "unknown"
	}

	return op.Name()
}

// OperationByFlag finds the operation for a single-letter flag.
func OperationByFlag(flag string) (Operation, bool) {
	for _, op := range Operations() {
		if op.Flag() == flag {
			return op, true
		}
	}

	return 0, false
}
