// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed unless a test is about degeneracy.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/matcalc/matrix"
	"gonum.org/v1/gonum/mat"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Implementation:
//   - Stage 1: Embed matrix.Matrix to forward all methods.
//   - Stage 2: Use hide{X} in tests to force non-*Dense (fallback) paths.
//
// Behavior highlights:
//   - Prevents "*Dense" fast-path via type switch in code under test.
//
// AI-Hints:
//   - Prefer wrapping ONLY the operand you want to de-opt; keep the other one *Dense to isolate path differences.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustRows BUILDS a *Dense from a literal row grid or fails the test.
// Implementation:
//   - Stage 1: matrix.NewDenseFromRows(rows).
//   - Stage 2: t.Fatalf on error.
//
// Notes:
//   - Literal grids keep expected values readable next to the assertion.
func MustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// RandFilledDense RETURNS a new r×c Dense filled with deterministic U(-1,1).
// Implementation:
//   - Stage 1: Allocate Dense.
//   - Stage 2: Fill via seeded RNG, row-major.
//
// Determinism:
//   - Deterministic per seed.
//
// AI-Hints:
//   - Use identical seeds across fast vs fallback to isolate path differences.
func RandFilledDense(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, m, i, j, rng.Float64()*2-1)
		}
	}

	return m
}

// DiagDominant RETURNS a random n×n matrix with |a_ii| > Σ_{j≠i} |a_ij|.
// Such matrices are well conditioned and every leading block is invertible,
// which blockwise inversion relies on.
func DiagDominant(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	m := RandFilledDense(t, n, n, seed)
	for i := 0; i < n; i++ {
		MustSet(t, m, i, i, float64(n)+1)
	}

	return m
}

// MustSet WRITES v to m[i,j] or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareExact ASSERTS m equals want cell by cell (==).
//
// Notes:
//   - Use only for integer-like or carefully crafted small matrices.
//
// AI-Hints:
//   - For floats use CompareClose instead.
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	if len(want) != r {
		t.Fatalf("CompareExact: Rows = %d; want %d", r, len(want))
	}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		if len(want[i]) != c {
			t.Fatalf("CompareExact: Cols[%d] = %d; want %d", i, c, len(want[i]))
		}
		for j = 0; j < c; j++ {
			if v = MustAt(t, m, i, j); v != want[i][j] {
				t.Fatalf("m[%d,%d]=%v; want %v", i, j, v, want[i][j])
			}
		}
	}
}

// CompareClose ASSERTS AllClose(a,b) under (rtol, atol).
func CompareClose(t *testing.T, a, b matrix.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, rtol, atol)
	if err != nil {
		t.Fatalf("AllClose err: %v", err)
	}
	if !ok {
		t.Fatalf("AllClose=false (rtol=%g, atol=%g)\n got:\n%v\nwant:\n%v", rtol, atol, a, b)
	}
}

// ExpectPanic ASSERTS that fn() panics (any value).
func ExpectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got nil")
		}
	}()
	fn()
}

// NaiveProduct is the definition of the matrix product, used as reference.
func NaiveProduct(t *testing.T, a, b matrix.Matrix) *matrix.Dense {
	t.Helper()
	out := MustDense(t, a.Rows(), b.Cols())
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < b.Cols(); j++ {
			sum := 0.0
			for k := 0; k < a.Cols(); k++ {
				sum += MustAt(t, a, i, k) * MustAt(t, b, k, j)
			}
			MustSet(t, out, i, j, sum)
		}
	}

	return out
}

// GonumOf COPIES m into a gonum *mat.Dense for oracle computations.
func GonumOf(t *testing.T, m matrix.Matrix) *mat.Dense {
	t.Helper()
	g, err := matrix.ToGonum(m)
	if err != nil {
		t.Fatalf("ToGonum: %v", err)
	}

	return g
}

// ---------- bench helpers ----------

func mustDense(b *testing.B, r, c int) *matrix.Dense {
	d, err := matrix.NewZeros(r, c)
	if err != nil {
		b.Fatalf("NewZeros(%d,%d): %v", r, c, err)
	}
	return d
}

func fillDenseRand(b *testing.B, d *matrix.Dense, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	rows, cols := d.Rows(), d.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			_ = d.Set(i, j, rng.Float64()*2-1) // [-1,1]
		}
	}
}

func fillDiagDominant(b *testing.B, d *matrix.Dense, seed int64) {
	fillDenseRand(b, d, seed)
	n := d.Rows()
	for i := 0; i < n; i++ {
		_ = d.Set(i, i, float64(n)+1)
	}
}
