// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for one-off calls that do not need a long-lived Kernel.
//   - Avoid logic duplication; each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades build a fresh Kernel from opts per call; there is no shared,
//     process-wide cutoff. Hold a *Kernel to tune the cutoff at runtime.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Prefer passing *Dense to skip the At-based copy of foreign Matrix types.
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and neutral elements.

package matrix

// ---------- Constructors ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Returns ErrInvalidDimensions for non-positive sizes.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
//
// AI-Hints: Use as the reference for A·A⁻¹ round-trip checks.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1
	}

	return I, nil
}

// ---------- One-shot kernels ----------

// Multiply returns A × B with a Kernel built from opts (default cutoff 257).
func Multiply(a, b Matrix, opts ...Option) (*Dense, error) {
	return NewKernel(opts...).Multiply(a, b)
}

// Determinant returns det(m) with a Kernel built from opts (default diagonal pivoting).
func Determinant(m Matrix, opts ...Option) (float64, error) {
	return NewKernel(opts...).Determinant(m)
}

// Invert returns m⁻¹ with a Kernel built from opts.
func Invert(m Matrix, opts ...Option) (*Dense, error) {
	return NewKernel(opts...).Invert(m)
}
