// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* element-wise kernels (ew*) over flat row-major
//     buffers so Strassen combination steps and inversion quadrants share one
//     tight loop instead of duplicating it.
//   - Host AllClose, the tolerance comparison used by callers and tests.
//
// Determinism & Performance:
//   - Fixed loop order (flat 0..n-1).
//   - ew* write into a caller-provided destination; no hidden allocations.

package matrix

import (
	"fmt"
	"math"
)

// ewAdd writes dst[i] = a[i] + b[i]. All slices have equal length.
func ewAdd(dst, a, b []float64) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// ewSub writes dst[i] = a[i] - b[i].
func ewSub(dst, a, b []float64) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// ewScale writes dst[i] = a[i] * k.
func ewScale(dst, a []float64, k float64) {
	for i := range dst {
		dst[i] = a[i] * k
	}
}

// denseAdd returns a+b for equally shaped Dense operands.
func denseAdd(a, b *Dense) *Dense {
	out := newDense(a.r, a.c)
	ewAdd(out.data, a.data, b.data)

	return out
}

// denseSub returns a-b for equally shaped Dense operands.
func denseSub(a, b *Dense) *Dense {
	out := newDense(a.r, a.c)
	ewSub(out.data, a.data, b.data)

	return out
}

// denseNeg returns -a.
func denseNeg(a *Dense) *Dense {
	out := newDense(a.r, a.c)
	ewScale(out.data, a.data, -1)

	return out
}

// AllClose reports whether |a[i,j] - b[i,j]| ≤ atol + rtol*|b[i,j]| holds
// for every cell.
//
// Implementation:
//   - Stage 1: reject non-finite tolerances (ErrNaNInf); negative tolerances are abs-ed.
//   - Stage 2: ValidateSameShape(a, b).
//   - Stage 3: flat scan for *Dense pairs, At-based i→j scan otherwise; early exit on
//     the first violation.
//
// Behavior highlights:
//   - Any NaN cell compares false (NaN never satisfies ≤).
//   - Asymmetric in a and b, like the classic numpy definition.
//
// Errors:
//   - ErrNaNInf for non-finite tolerances.
//   - errors.Is(err, ErrInvalidShape) for nil, empty, jagged or mismatched operands.
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// AI-Hints:
//   - For A·A⁻¹ ≈ I checks on well-conditioned inputs, rtol=0 with atol≈1e-9·n works well.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	// Dense fast-path: operate over flat slices when both are *Dense.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !withinTol(da.data[idx], db.data[idx], rtol, atol) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	// Generic fallback via At.
	r, c := a.Rows(), a.Cols()
	var av, bv float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if !withinTol(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// withinTol checks |a-b| ≤ atol + rtol*|b|.
func withinTol(a, b, rtol, atol float64) bool {
	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}
