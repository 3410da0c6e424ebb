// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Determinant of a square matrix: closed forms for n ≤ 3, in-place
//     Doolittle LU with row swaps and a sign accumulator for n ≥ 4.
//
// Numeric policy:
//   - Singular input is not an error. The diagonal pivot rule can divide by
//     zero; a NaN quotient ends the factorization and NaN is returned.

package matrix

import "math"

// Determinant returns det(m).
//
// Implementation:
//   - Stage 1: ValidateSquare(m).
//   - Stage 2: n=1 → m00; n=2 → ad−bc; n=3 → rule of Sarrus.
//   - Stage 3: n≥4 → LU on a private copy, pivot rows chosen by k.Pivot().
//
// Returns:
//   - det(m); NaN (or ±Inf/0 from the arithmetic) for singular or
//     ill-conditioned input.
//
// Errors:
//   - errors.Is(err, ErrInvalidShape) for nil, empty, jagged or non-square input.
//
// Complexity:
//   - Time O(n³), Space O(n²) for the working copy.
//
// Notes:
//   - The caller's matrix is never modified.
func (k *Kernel) Determinant(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	switch n, x := d.r, d.data; n {
	case 1:
		return x[0], nil
	case 2:
		return x[0]*x[3] - x[1]*x[2], nil
	case 3:
		return x[0]*x[4]*x[8] + x[1]*x[5]*x[6] + x[2]*x[3]*x[7] -
			x[2]*x[4]*x[6] - x[1]*x[3]*x[8] - x[0]*x[5]*x[7], nil
	}

	return luDeterminant(d.clone(), k.pivot), nil
}

// luDeterminant factors a (n×n, owned by the caller of this helper) in place
// into unit-lower L and upper U and returns Π diag(U) × sign.
//
// For each column i:
//   - choose the pivot row per policy, swap it into row i and flip the sign;
//   - U row i:    a[i][j] -= Σ_{k<i} a[i][k]·a[k][j]          for j ≥ i;
//   - L column i: a[j][i] = (a[j][i] − Σ_{k<i} a[j][k]·a[k][i]) / a[i][i]  for j > i.
func luDeterminant(a *Dense, policy PivotPolicy) float64 {
	n := a.r
	x := a.data
	sign := 1.0

	for i := 0; i < n; i++ {
		var p int
		switch policy {
		case PivotPartial:
			p = partialPivotRow(a, i)
			if p < 0 {
				return 0 // the whole remaining column is zero
			}
		default:
			p = diagonalPivotRow(a, i)
		}
		if p != i {
			swapRows(a, i, p)
			sign = -sign
		}

		row := i * n
		for j := i; j < n; j++ {
			sum := 0.0
			for k := 0; k < i; k++ {
				sum += x[row+k] * x[k*n+j]
			}
			x[row+j] -= sum
		}

		pivot := x[row+i]
		for j := i + 1; j < n; j++ {
			sum := 0.0
			for k := 0; k < i; k++ {
				sum += x[j*n+k] * x[k*n+i]
			}
			q := (x[j*n+i] - sum) / pivot
			if math.IsNaN(q) {
				return math.NaN()
			}
			x[j*n+i] = q
		}
	}

	det := sign
	for i := 0; i < n; i++ {
		det *= x[i*n+i]
	}

	return det
}

// diagonalPivotRow scans rows i..n-1 and returns the last row r whose raw
// column-i entry exceeds the CURRENT diagonal a[i][i] (signed comparison,
// not against the best candidate so far). Returns i when none qualifies.
func diagonalPivotRow(a *Dense, i int) int {
	n, x := a.r, a.data
	p := i
	diag := x[i*n+i]
	for r := i; r < n; r++ {
		if x[r*n+i] > diag {
			p = r
		}
	}

	return p
}

// partialPivotRow returns the row r ≥ i maximizing |a[r][i] − Σ_{k<i} a[r][k]·a[k][i]|,
// i.e. the magnitude of the value that would land on the diagonal after
// reduction. Returns -1 when every candidate is exactly zero.
func partialPivotRow(a *Dense, i int) int {
	n, x := a.r, a.data
	p, best := -1, 0.0
	for r := i; r < n; r++ {
		v := x[r*n+i]
		for k := 0; k < i; k++ {
			v -= x[r*n+k] * x[k*n+i]
		}
		if v = math.Abs(v); v > best {
			p, best = r, v
		}
	}

	return p
}

// swapRows exchanges rows i and j of a in place.
func swapRows(a *Dense, i, j int) {
	c := a.c
	ri := a.data[i*c : (i+1)*c]
	rj := a.data[j*c : (j+1)*c]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}
