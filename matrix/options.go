// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the computation kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves setters against defaults.
//
// Design goals:
//   - Deterministic behavior: no process-wide state, no implicit randomness.
//   - No dead switches: each option changes kernel behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "fmt"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultStrassenCutoff is the side length from which Multiply switches
	// from the naive triple loop to Strassen recursion.
	DefaultStrassenCutoff = 257

	// MinStrassenCutoff is the smallest accepted cutoff. Below 3 the
	// recursion would bottom out on 1×1 blocks and never terminate usefully.
	MinStrassenCutoff = 3

	// DefaultParallelDepth disables fork-join: every product runs on the
	// calling goroutine.
	DefaultParallelDepth = 0

	// DefaultPivot keeps the diagonal-comparison pivot rule of Determinant.
	DefaultPivot = PivotDiagonal
)

// PivotPolicy selects how Determinant chooses the pivot row during its LU
// factorization (n ≥ 4).
type PivotPolicy int

const (
	// PivotDiagonal scans rows i..n-1 and takes row r whenever its raw
	// column-i entry is greater than the current diagonal entry a[i][i].
	// Signed values are compared and the last qualifying row wins.
	PivotDiagonal PivotPolicy = iota

	// PivotPartial takes the row with the largest magnitude of the partially
	// reduced column-i value (textbook partial pivoting). An all-zero column
	// yields a determinant of exactly 0.
	PivotPartial
)

// String returns the policy name used by the benchmark driver.
func (p PivotPolicy) String() string {
	switch p {
	case PivotDiagonal:
		return "diagonal"
	case PivotPartial:
		return "partial"
	default:
		return fmt.Sprintf("PivotPolicy(%d)", int(p))
	}
}

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicCutoffInvalid        = "matrix: WithStrassenCutoff: cutoff must be >= 3"
	panicParallelDepthInvalid = "matrix: WithParallelDepth: depth must be >= 0"
	panicPivotInvalid         = "matrix: WithPivot: unknown pivot policy"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last-writer-wins).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	cutoff        int         // ≥ MinStrassenCutoff
	parallelDepth int         // ≥ 0; 0 = sequential
	pivot         PivotPolicy // PivotDiagonal | PivotPartial
}

// ---------- Constructors (WithX) ----------

// WithStrassenCutoff sets the initial Strassen cutoff of a Kernel.
// Implementation:
//   - Stage 1: validate cutoff ≥ MinStrassenCutoff.
//   - Stage 2: return a setter that writes the cutoff into Options.
//
// Behavior highlights:
//   - Strict in the constructor: panics on values below 3. The runtime
//     setter Kernel.SetStrassenCutoff instead ignores such values silently.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Small cutoffs (3..16) exercise the recursion in tests; production sizes
//     usually peak between 64 and 512 depending on the cache hierarchy.
func WithStrassenCutoff(cutoff int) Option {
	if cutoff < MinStrassenCutoff {
		panic(panicCutoffInvalid)
	}

	return func(o *Options) { o.cutoff = cutoff }
}

// WithParallelDepth enables fork-join evaluation for the top depth levels of
// recursion in a single call. A Strassen level (seven concurrent products) and
// a blockwise-inversion level (two concurrent product pairs) each consume one
// level; products nested inside an inversion continue from the inversion's
// depth rather than starting a fresh budget.
//
// Behavior highlights:
//   - depth 0 keeps everything sequential (default).
//   - depth d spawns at most 7^d goroutines for a single multiplication.
//   - Results are bitwise identical to the sequential path: the same
//     products are combined in the same order after all siblings finish.
//
// Errors:
//   - Panics when depth < 0.
func WithParallelDepth(depth int) Option {
	if depth < 0 {
		panic(panicParallelDepthInvalid)
	}

	return func(o *Options) { o.parallelDepth = depth }
}

// WithPivot selects the Determinant pivot policy.
// Panics on values other than PivotDiagonal and PivotPartial.
func WithPivot(p PivotPolicy) Option {
	if p != PivotDiagonal && p != PivotPartial {
		panic(panicPivotInvalid)
	}

	return func(o *Options) { o.pivot = p }
}

// ---------- Option resolution ----------

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		cutoff:        DefaultStrassenCutoff,
		parallelDepth: DefaultParallelDepth,
		pivot:         DefaultPivot,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Setters run in order (last-writer-wins). Nil setters are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
