// SPDX-License-Identifier: MIT

package matrix

import "sync/atomic"

// Test-Bridge (White-Box) for Private Kernels and Options Snapshot
//
// Purpose:
//   - Expose UNEXPORTED helpers and the internal options snapshot to matrix_test ONLY.
//   - Enable white-box verification of the cutoff rule and of option resolution
//     without widening the production API.
//
// Build Policy:
//   - Compiled only by `go test` (the _test.go suffix), so it never ships.
//
// AI-Hints:
//   - If a private helper changes signature, mirror the change here once, not across many tests.

// LongestSide_TestOnly forwards to longestSide.
func LongestSide_TestOnly(aR, aC, bC int) int { return longestSide(aR, aC, bC) }

// NextPowerOfTwo_TestOnly forwards to nextPowerOfTwo.
func NextPowerOfTwo_TestOnly(n int) int { return nextPowerOfTwo(n) }

// NaiveMul_TestOnly runs the naive kernel on two Dense operands, bypassing the cutoff rule.
func NaiveMul_TestOnly(a, b *Dense) *Dense { return naiveMul(a, b) }

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicCutoffInvalid_TestOnly        = panicCutoffInvalid
	PanicParallelDepthInvalid_TestOnly = panicParallelDepthInvalid
	PanicPivotInvalid_TestOnly         = panicPivotInvalid
)

// OptionsSnapshot is a read-only copy of the resolved Options.
type OptionsSnapshot struct {
	Cutoff        int
	ParallelDepth int
	Pivot         PivotPolicy
}

// GatherOptionsSnapshot_TestOnly resolves opts exactly like NewKernel does.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Cutoff: o.cutoff, ParallelDepth: o.parallelDepth, Pivot: o.pivot}
}

// ForkDepths_TestOnly runs Multiply (b != nil) or Invert (b == nil) with the given
// cutoff and parallel depth and returns how many concurrent fan-outs happened
// and the deepest recursion level that forked.
func ForkDepths_TestOnly(cutoff, parallelDepth int, a, b *Dense) (forks, deepest int) {
	var count, maxDepth atomic.Int64
	maxDepth.Store(-1)
	p := plan{cutoff: cutoff, parallelDepth: parallelDepth, onFork: func(depth int) {
		count.Add(1)
		for {
			cur := maxDepth.Load()
			if int64(depth) <= cur || maxDepth.CompareAndSwap(cur, int64(depth)) {
				break
			}
		}
	}}
	if b != nil {
		p.mul(a, b, 0)
	} else {
		p.invert(a, 0)
	}

	return int(count.Load()), int(maxDepth.Load())
}
