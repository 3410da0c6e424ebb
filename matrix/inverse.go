// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Matrix inverse by blockwise Schur-complement recursion whose products
//     all go through the adaptive multiplier.
//
// Block layout for n ≥ 3, h = n/2 (the top-left block is the larger one when n is odd):
//
//	A = | a11 (n-h)×(n-h)   a12 (n-h)×h |
//	    | a21 h×(n-h)       a22 h×h     |
//
//	a22⁻¹ = inv(a22)        t = a12·a22⁻¹        u = a22⁻¹·a21
//	c11   = inv(a11 − t·a21)
//	c12   = −c11·t          c21 = −u·c11         c22 = a22⁻¹ + (u·c11)·t
//
// Numeric policy:
//   - No invertibility pre-check. Singular input yields NaN/±Inf entries.

package matrix

// Invert returns m⁻¹ as a new matrix.
//
// Implementation:
//   - Stage 1: ValidateSquare(m).
//   - Stage 2: read the cutoff once; every product in the recursion uses it.
//   - Stage 3: n=1 → 1/x; n=2 → adjugate/det; n≥3 → blockwise recursion.
//
// Errors:
//   - errors.Is(err, ErrInvalidShape) for nil, empty, jagged or non-square input.
//
// Complexity:
//   - Dominated by the products: O(M(n)) where M is the multiplier cost.
//
// Notes:
//   - The result never shares storage with m, including for 1×1 input.
//
// AI-Hints:
//   - Check A·A⁻¹ against the identity with AllClose when the input may be
//     ill-conditioned; blockwise inversion has no pivoting.
func (k *Kernel) Invert(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInvert, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opInvert, err)
	}

	return k.snapshot().invert(d, 0), nil
}

// invert dispatches on size; depth drives the fork-join budget.
func (p plan) invert(a *Dense, depth int) *Dense {
	if a.r <= 2 {
		return invertSmall(a)
	}

	return p.invertBlockwise(a, depth)
}

// invertSmall handles the closed forms for 1×1 and 2×2.
func invertSmall(a *Dense) *Dense {
	if a.r == 1 {
		out := newDense(1, 1)
		out.data[0] = 1 / a.data[0]

		return out
	}

	x := a.data
	det := x[0]*x[3] - x[1]*x[2]
	out := newDense(2, 2)
	out.data[0] = x[3] / det
	out.data[1] = -x[1] / det
	out.data[2] = -x[2] / det
	out.data[3] = x[0] / det

	return out
}

// invertBlockwise applies the Schur-complement formulas to the quadrants of a.
func (p plan) invertBlockwise(a *Dense, depth int) *Dense {
	n := a.r
	h := n / 2
	top := n - h

	a11, a12, a21, a22 := quadrants(a, top, top)

	a22inv := p.invert(a22, depth+1)

	var t, u *Dense
	p.runTasks(depth,
		func() { t = p.mul(a12, a22inv, depth+1) },
		func() { u = p.mul(a22inv, a21, depth+1) },
	)

	c11 := p.invert(denseSub(a11, p.mul(t, a21, depth+1)), depth+1)

	var c12, c21, c22 *Dense
	p.runTasks(depth,
		func() { c12 = denseNeg(p.mul(c11, t, depth+1)) },
		func() {
			uc11 := p.mul(u, c11, depth+1)
			c21 = denseNeg(uc11)
			c22 = denseAdd(a22inv, p.mul(uc11, t, depth+1))
		},
	)

	return join(c11, c12, c21, c22)
}
