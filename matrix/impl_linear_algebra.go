// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition, subtraction and scalar scaling here, matrix
// multiplication, determinant and inversion in their dedicated kernel files.
// All functions perform strict fail-fast validation and return clear errors
// on shape violations.
//
// Purpose:
//   - Define operation tags and the shared error wrapper for uniform reporting.
//   - Host the element-wise facades (Add, Sub, Scale).
//
// Notes:
//   - All kernels use the central validators and wrap via matrixErrorf.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opScale       = "Scale"
	opMultiply    = "Multiply"
	opDeterminant = "Determinant"
	opInvert      = "Invert"
	opAllClose    = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Behavior highlights:
//   - Preserves the underlying sentinel for errors.Is (including the ErrInvalidShape root).
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b) (covers nil, empty and jagged operands).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrJagged, ErrDimensionMismatch (all ErrInvalidShape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
//
// Notes:
//   - Keeping `sign` as a float avoids an extra branch inside the hot loop.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res := newDense(rows, cols)

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			length := rows * cols
			for idx := 0; idx < length; idx++ { // deterministic 0..n-1
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Implementation:
//   - Stage 1: Validate both operands are rectangular and identically shaped.
//   - Stage 2: If both are *Dense, run a single flat loop; otherwise fall back to i→j.
//
// Inputs:
//   - a, b: any Matrix of identical shape.
//
// Returns:
//   - *Dense with C[i,j] = A[i,j] + B[i,j].
//
// Errors:
//   - errors.Is(err, ErrInvalidShape) for nil, empty, jagged or mismatched operands.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Inputs are never mutated; the result never shares storage with them.
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Same validation, paths and errors as Add.
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale returns a fresh Dense with every entry of m multiplied by k.
// Implementation:
//   - Stage 1: ValidateRectangular(m).
//   - Stage 2: flat loop for *Dense, At-based i→j loop otherwise.
//
// Errors:
//   - errors.Is(err, ErrInvalidShape) for nil, empty or jagged input.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, k float64) (*Dense, error) {
	if err := ValidateRectangular(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res := newDense(rows, cols)

	// Fast-path for Dense → Dense
	if dm, ok := m.(*Dense); ok {
		ewScale(res.data, dm.data, k)

		return res, nil
	}

	// Fallback: generic interface loop
	var v float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = v * k
		}
	}

	return res, nil
}
