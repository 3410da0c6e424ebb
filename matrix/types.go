// SPDX-License-Identifier: MIT

// Package matrix: public element-access contract shared by Dense, Grid and
// any caller-supplied implementation.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Kernels in this package only READ their operands through this interface
// and always return a freshly allocated *Dense.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	// For row grids this is the length of the first row.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrIndexOutOfBounds if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrIndexOutOfBounds if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}

// rowLengther is implemented by matrices whose rows may differ in length
// (Grid). Validators use it to detect jagged input; rectangular-by-construction
// types such as Dense do not need it.
type rowLengther interface {
	RowLen(i int) int
}
