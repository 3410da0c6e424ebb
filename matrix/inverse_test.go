// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// invFixture has an integral inverse (invFixtureInverse).
var invFixture = [][]float64{
	{2, 3, 1, 5},
	{1, 0, 3, 1},
	{0, 2, -3, 2},
	{0, 2, 3, 1},
}

var invFixtureInverse = [][]float64{
	{18, -35, -28, 1},
	{9, -18, -14, 1},
	{-2, 4, 3, 0},
	{-12, 24, 19, -1},
}

func TestInvert_FourByFourFixture(t *testing.T) {
	t.Parallel()

	for _, cutoff := range []int{3, matrix.DefaultStrassenCutoff} {
		got, err := matrix.Invert(MustRows(t, invFixture), matrix.WithStrassenCutoff(cutoff))
		require.NoError(t, err)
		CompareClose(t, got, MustRows(t, invFixtureInverse), 0, 1e-3)
	}
}

func TestInvert_SmallClosedForms(t *testing.T) {
	t.Parallel()

	one, err := matrix.Invert(MustRows(t, [][]float64{{4}}))
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0.25}}, one)

	two, err := matrix.Invert(MustRows(t, [][]float64{{4, 7}, {2, 6}}))
	require.NoError(t, err)
	CompareClose(t, two, MustRows(t, [][]float64{{0.6, -0.7}, {-0.2, 0.4}}), 0, 1e-12)
}

// TestInvert_OneByOneIsFresh: the result must not share storage with the input.
func TestInvert_OneByOneIsFresh(t *testing.T) {
	t.Parallel()

	in := MustRows(t, [][]float64{{2}})
	out, err := matrix.Invert(in)
	require.NoError(t, err)

	MustSet(t, out, 0, 0, 99)
	require.Equal(t, 2.0, MustAt(t, in, 0, 0))

	g := matrix.Grid{{8}}
	_, err = matrix.Invert(g)
	require.NoError(t, err)
	require.Equal(t, 8.0, g[0][0])
}

// TestInvert_RoundTrip checks A·A⁻¹ ≈ I over odd and even sizes, which
// exercises both block layouts and both multiplier branches.
func TestInvert_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, n := range []int{3, 4, 5, 7, 8, 13, 32} {
		for _, cutoff := range []int{3, 8, matrix.DefaultStrassenCutoff} {
			t.Run(fmt.Sprintf("n=%d/cutoff=%d", n, cutoff), func(t *testing.T) {
				a := DiagDominant(t, n, int64(n*cutoff))
				k := matrix.NewKernel(matrix.WithStrassenCutoff(cutoff))

				inv, err := k.Invert(a)
				require.NoError(t, err)
				prod, err := k.Multiply(a, inv)
				require.NoError(t, err)

				id, err := matrix.NewIdentity(n)
				require.NoError(t, err)
				CompareClose(t, prod, id, 0, 1e-9)
			})
		}
	}
}

func TestInvert_GonumOracle(t *testing.T) {
	t.Parallel()

	a := DiagDominant(t, 11, 77)
	var oracle mat.Dense
	require.NoError(t, oracle.Inverse(GonumOf(t, a)))
	want, err := matrix.FromGonum(&oracle)
	require.NoError(t, err)

	got, err := matrix.Invert(a, matrix.WithStrassenCutoff(3))
	require.NoError(t, err)
	CompareClose(t, got, want, 1e-9, 1e-12)
}

func TestInvert_ParallelMatchesSequential(t *testing.T) {
	t.Parallel()

	a := DiagDominant(t, 21, 5)
	seq, err := matrix.Invert(a, matrix.WithStrassenCutoff(4))
	require.NoError(t, err)
	par, err := matrix.Invert(a, matrix.WithStrassenCutoff(4), matrix.WithParallelDepth(3))
	require.NoError(t, err)
	CompareClose(t, par, seq, 0, 0)
}

// TestParallelDepth_SharedBudget: products nested in an inversion continue the
// inversion's depth, so no fan-out happens at or below the configured depth.
func TestParallelDepth_SharedBudget(t *testing.T) {
	t.Parallel()

	a := RandFilledDense(t, 16, 16, 31)
	b := RandFilledDense(t, 16, 16, 32)
	inv := DiagDominant(t, 16, 33)

	tests := []struct {
		name        string
		depth       int
		a, b        *matrix.Dense
		wantForks   int
		wantDeepest int
	}{
		{"multiply/depth=0", 0, a, b, 0, -1},
		{"multiply/depth=1", 1, a, b, 1, 0},
		{"multiply/depth=2", 2, a, b, 1 + 7, 1},
		{"invert/depth=0", 0, inv, nil, 0, -1},
		// top level: the (t, u) and (c12, c21/c22) pairs only.
		{"invert/depth=1", 1, inv, nil, 2, 0},
		// + two nested inversions with two pairs each + six 8×8 Strassen products.
		{"invert/depth=2", 2, inv, nil, 2 + 2*2 + 6, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			forks, deepest := matrix.ForkDepths_TestOnly(3, tc.depth, tc.a, tc.b)
			require.Equal(t, tc.wantForks, forks)
			require.Equal(t, tc.wantDeepest, deepest)
		})
	}
}

// TestInvert_SingularPropagates: no pre-check, non-finite values come out.
func TestInvert_SingularPropagates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows [][]float64
	}{
		{"1x1 zero", [][]float64{{0}}},
		{"2x2 rank one", [][]float64{{1, 2}, {2, 4}}},
		{"3x3 zero", [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			inv, err := matrix.Invert(MustRows(t, tc.rows))
			require.NoError(t, err)
			require.True(t, hasNonFinite(inv), "want NaN/Inf, got\n%v", inv)
		})
	}
}

func TestInvert_InputUntouched(t *testing.T) {
	t.Parallel()

	a := DiagDominant(t, 9, 3)
	before := a.RawRows()
	_, err := matrix.Invert(a, matrix.WithStrassenCutoff(3))
	require.NoError(t, err)
	require.Equal(t, before, a.RawRows())
}

func TestInvert_ShapeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		m       matrix.Matrix
		wantErr error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"empty", matrix.Grid{}, matrix.ErrEmptyMatrix},
		{"jagged", jaggedGrid(), matrix.ErrJagged},
		{"non-square", MustDense(t, 3, 2), matrix.ErrNonSquare},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.Invert(tc.m)
			require.ErrorIs(t, err, tc.wantErr)
			require.ErrorIs(t, err, matrix.ErrInvalidShape)
			require.Contains(t, err.Error(), "Invert:")
		})
	}
}

func hasNonFinite(m *matrix.Dense) bool {
	for _, row := range m.RawRows() {
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return true
			}
		}
	}

	return false
}
