// Package matfile reads and writes the plain-text matrix file format.
//
// A matrix file looks like:
//
//	# optional comment lines, anywhere, ignored
//	matrix 2 3
//	1   2.5  -3e2   # trailing comments are allowed
//	4   5     6
//	end
//
// Tokens are separated by spaces, tabs, carriage returns and newlines. Parse
// enforces the grammar end to end and reports the first violation as a
// *ParseError carrying the file name, the 1-based line number and the
// offending token. Writer produces files that Parse accepts.
package matfile
