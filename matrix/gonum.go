// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opFromGonum = "FromGonum"
	opToGonum   = "ToGonum"
)

// FromGonum copies any gonum matrix into a new Dense.
// A nil source or one with a zero dimension fails with ErrInvalidShape.
func FromGonum(src mat.Matrix) (*Dense, error) {
	if src == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := src.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = src.At(i, j)
		}
	}

	return out, nil
}

// ToGonum copies m into a new *mat.Dense so results can be handed to gonum
// routines (factorizations, norms, solvers) that this package does not offer.
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateRectangular(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opToGonum, fmt.Errorf("copy: %w", err))
	}
	data := make([]float64, len(d.data))
	copy(data, d.data)

	return mat.NewDense(d.r, d.c, data), nil
}
