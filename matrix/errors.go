// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (possibly wrapped) and tests
// MUST check them via errors.Is. Kernels never panic on user-triggered errors.
// Panics are reserved for programmer errors in option constructors.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & HIERARCHY
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency.
// All shape failures share ONE root kind, ErrInvalidShape. The specific
// sentinels below wrap it, so callers may match either the precise cause
// (errors.Is(err, ErrJagged)) or the whole family (errors.Is(err, ErrInvalidShape)).
// Numeric degeneracy (singular input) is NOT an error: NaN/±Inf propagate.

// ErrInvalidShape is the root of every shape-related failure: nil, empty,
// jagged, non-square or dimensionally incompatible operands.
var ErrInvalidShape = errors.New("matrix: invalid shape")

var (
	// ErrNilMatrix indicates that a nil Matrix (or a nil *Dense) was passed.
	ErrNilMatrix = fmt.Errorf("%w: nil matrix", ErrInvalidShape)

	// ErrEmptyMatrix indicates a matrix with zero rows or zero columns.
	ErrEmptyMatrix = fmt.Errorf("%w: matrix has no rows or no columns", ErrInvalidShape)

	// ErrJagged indicates a row grid whose rows have different lengths.
	ErrJagged = fmt.Errorf("%w: rows have different lengths", ErrInvalidShape)

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Multiply where a.Cols != b.Rows.
	ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrInvalidShape)

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrInvalidShape)

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = fmt.Errorf("%w: dimensions must be > 0", ErrInvalidShape)
)

var (
	// ErrIndexOutOfBounds indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required
	// (tolerances of AllClose).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
