// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Grid is a zero-copy Matrix view over a caller-owned row grid.
//
// Unlike Dense, a Grid may be empty or jagged: it mirrors arbitrary
// two-dimensional input as it arrives from callers. Every kernel validates
// its operands with ValidateRectangular, so such grids are rejected with an
// error matching ErrInvalidShape before any arithmetic happens.
//
// Cols reports the length of row 0 (0 for an empty grid). At and Set check
// indices against the actual length of the addressed row.
type Grid [][]float64

// Rows returns the number of rows.
func (g Grid) Rows() int { return len(g) }

// Cols returns the length of the first row, or 0 when there are no rows.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}

	return len(g[0])
}

// RowLen returns the length of row i, or -1 when i is out of range.
func (g Grid) RowLen(i int) int {
	if i < 0 || i >= len(g) {
		return -1
	}

	return len(g[i])
}

// At retrieves g[i][j] or ErrIndexOutOfBounds.
func (g Grid) At(i, j int) (float64, error) {
	if i < 0 || i >= len(g) || j < 0 || j >= len(g[i]) {
		return 0, fmt.Errorf("Grid.At(%d,%d): %w", i, j, ErrIndexOutOfBounds)
	}

	return g[i][j], nil
}

// Set writes v into g[i][j]; the caller's backing rows are modified.
func (g Grid) Set(i, j int, v float64) error {
	if i < 0 || i >= len(g) || j < 0 || j >= len(g[i]) {
		return fmt.Errorf("Grid.Set(%d,%d): %w", i, j, ErrIndexOutOfBounds)
	}
	g[i][j] = v

	return nil
}

// Clone returns a deep copy, preserving the shape (jagged rows stay jagged).
func (g Grid) Clone() Matrix {
	if g == nil {
		return Grid(nil)
	}
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = append([]float64(nil), row...)
	}

	return out
}
