// SPDX-License-Identifier: MIT

// Package matrix: Dense is the concrete, row-major implementation of the
// Matrix interface, storing elements in a flat slice for cache friendliness.
// Every kernel of the package returns *Dense.
package matrix

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// A Dense is rectangular and non-empty by construction.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return newDense(rows, cols), nil
}

// newDense allocates without validation; callers guarantee rows, cols > 0.
func newDense(rows, cols int) *Dense {
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
}

// NewDenseFromRows copies a row grid into a new Dense.
// Implementation:
//   - Stage 1: validate the grid is non-empty and rectangular (ValidateRectangular on Grid).
//   - Stage 2: copy rows into one flat buffer.
//
// Errors:
//   - ErrEmptyMatrix (no rows or empty first row), ErrJagged (row lengths differ).
//     Both match ErrInvalidShape.
//
// Notes:
//   - The caller's slices are never retained.
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if err := ValidateRectangular(Grid(rows)); err != nil {
		return nil, err
	}
	r, c := len(rows), len(rows[0])
	d := newDense(r, c)
	for i := 0; i < r; i++ {
		copy(d.data[i*c:(i+1)*c], rows[i])
	}

	return d, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int {
	return m.c
}

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
// method is the caller name used in the error context.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() Matrix {
	return m.clone()
}

// clone is the typed form of Clone used by kernels.
func (m *Dense) clone() *Dense {
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// RawRows returns the contents as a freshly allocated row grid.
// It is the inverse of NewDenseFromRows; mutating the result does not
// affect m.
func (m *Dense) RawRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// String implements fmt.Stringer for easy debugging.
// Format: one bracketed, comma-separated line per row.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ { // iterate over columns
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
