// Package calc ties matrix files to the matrix engine.
//
// A Calculator parses operand files with matfile, checks the preconditions an
// operation needs (square input, conformable shapes, non-zero determinant) and
// then calls into package matrix. Every error it returns belongs to exactly one
// class that ExitCode turns into a process exit status:
//
//	ErrArguments             -> 1
//	matrix.ErrTooLarge       -> 2
//	matfile.ErrFileOpen      -> 3
//	matfile.ErrInvalidFile   -> 4
//	ErrInvalidMatrix         -> 5
//	anything else            -> 6
//
// Example:
//
//	c := calc.New(matfile.WithMaxRowsCols(100))
//	res, err := c.Run(calc.OpInverse, "a.txt")
//	if err != nil {
//		os.Exit(calc.ExitCode(err))
//	}
//	fmt.Print(res.Matrix)
package calc
