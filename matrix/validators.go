// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape checks.
//  - Keep kernels minimal by delegating nil/empty/jagged/shape checks here.
//  - Offer two forms: boolean predicates (IsRectangular, IsSquare,
//    CompatibleForAddSub, CompatibleForMultiply) and error-returning
//    validators (Validate*) that kernels wrap with their operation tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//  - Rectangularity is O(1) for Dense and O(rows) for Grid-like inputs.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Empty → Jagged → Shape).
//  - Predicates never panic, including on nil input.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNil reports both an untyped nil and a typed nil *Dense.
func isNil(m Matrix) bool {
	if m == nil {
		return true
	}
	d, ok := m.(*Dense)

	return ok && d == nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m is nil or a nil *Dense.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if isNil(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateRectangular ensures m is non-nil, has at least one row and one
// column, and that every row has the same length.
//
// Implementation:
//   - Stage 1: nil check (ErrNilMatrix).
//   - Stage 2: Rows() ≥ 1 and Cols() ≥ 1 (ErrEmptyMatrix).
//   - Stage 3: when m exposes per-row lengths (Grid), every row must match row 0 (ErrJagged).
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrJagged; all match ErrInvalidShape.
//
// Complexity:
//   - O(1) for Dense, O(rows) for Grid.
func ValidateRectangular(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	r, c := m.Rows(), m.Cols()
	if r < 1 || c < 1 {
		return validatorErrorf("ValidateRectangular", ErrEmptyMatrix)
	}
	if rl, ok := m.(rowLengther); ok {
		for i := 1; i < r; i++ {
			if rl.RowLen(i) != c {
				return validatorErrorf(fmt.Sprintf("ValidateRectangular: row %d", i), ErrJagged)
			}
		}
	}

	return nil
}

// ValidateSameShape ensures a and b are both rectangular with equal dimensions.
//
// Errors: rectangularity errors of either operand, or ErrDimensionMismatch.
// Complexity: O(1) for Dense operands.
// AI-Hints: Use for Add/Sub kernels and AllClose.
func ValidateSameShape(a, b Matrix) error {
	if err := ValidateRectangular(a); err != nil {
		return err
	}
	if err := ValidateRectangular(b); err != nil {
		return err
	}
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is rectangular and Rows == Cols.
//
// Errors: rectangularity errors, or ErrNonSquare.
// Complexity: O(1) for Dense.
func ValidateSquare(m Matrix) error {
	if err := ValidateRectangular(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible checks a and b are rectangular and a.Cols == b.Rows.
//
// Errors: rectangularity errors of either operand, or ErrDimensionMismatch.
// Complexity: O(1) for Dense.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateRectangular(a); err != nil {
		return err
	}
	if err := ValidateRectangular(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// IsRectangular reports whether m is non-nil, non-empty and not jagged.
func IsRectangular(m Matrix) bool { return ValidateRectangular(m) == nil }

// IsSquare reports whether m is rectangular with equal row and column counts.
func IsSquare(m Matrix) bool { return ValidateSquare(m) == nil }

// CompatibleForAddSub reports whether a and b are rectangular and equally shaped.
func CompatibleForAddSub(a, b Matrix) bool { return ValidateSameShape(a, b) == nil }

// CompatibleForMultiply reports whether a and b are rectangular and a.Cols == b.Rows.
func CompatibleForMultiply(a, b Matrix) bool { return ValidateMulCompatible(a, b) == nil }
