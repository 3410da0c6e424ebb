// Package matcalc is a dense float64 matrix kernel: element-wise arithmetic,
// adaptive Strassen multiplication, LU determinants and blockwise inversion.
//
// What is inside?
//
//	matrix/        Dense and Grid types, shape validators, the Kernel with
//	               Multiply, Determinant and Invert, gonum interop
//	cmd/matbench/  CLI that times Multiply and Invert across Strassen cutoffs
//	examples/      runnable walkthrough (covariance → precision matrix)
//
// Quick example:
//
//	k := matrix.NewKernel(matrix.WithStrassenCutoff(128))
//	c, err := k.Multiply(a, b)
//	det, err := k.Determinant(c)
//	inv, err := k.Invert(c)
//
// The Strassen cutoff is the side length at which Multiply stops recursing
// and falls back to the naive triple loop. It defaults to 257 and is tunable
// per Kernel at runtime; values below 3 are ignored.
//
//	go get github.com/katalvlaran/matcalc/matrix
package matcalc
