// Package matrix is a dense float64 matrix kernel.
//
// The matrix package provides:
//
//   - Element-wise Add, Sub and Scale.
//   - Multiply with an adaptive switch between the naive triple loop and
//     Strassen's seven-product recursion (zero padding to a power of two,
//     trimmed result). The switch-over side length is the Strassen cutoff.
//   - Determinant: closed forms up to 3×3, LU with row pivoting beyond.
//   - Invert: closed forms up to 2×2, blockwise Schur-complement recursion
//     beyond, built on the adaptive multiplier.
//
// Tunables live on a Kernel value (NewKernel, WithStrassenCutoff,
// WithParallelDepth, WithPivot) rather than in package state. The package
// level Multiply, Determinant and Invert build a Kernel per call.
//
// Inputs are any Matrix: *Dense (row-major, always rectangular) or Grid
// (a view over [][]float64 that may be jagged or empty). Shape violations
// return errors matching ErrInvalidShape; numerically singular input is not
// an error and yields NaN or ±Inf values instead.
//
// FromGonum and ToGonum convert to and from gonum's mat.Dense.
package matrix
