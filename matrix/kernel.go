// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"sync/atomic"
)

// Kernel owns the tunables of the computation kernels: the Strassen cutoff,
// the fork-join depth and the determinant pivot policy.
//
// A Kernel is safe for concurrent use. The cutoff is the only mutable field;
// it is stored atomically and each Multiply/Invert call reads it once at
// entry, so one call never mixes two cutoffs even while another goroutine
// calls SetStrassenCutoff.
//
// The zero Kernel is not usable; construct with NewKernel.
type Kernel struct {
	cutoff        atomic.Int64
	parallelDepth int
	pivot         PivotPolicy
}

// NewKernel returns a Kernel configured by opts on top of the documented
// defaults (cutoff 257, sequential, diagonal pivoting).
func NewKernel(opts ...Option) *Kernel {
	o := gatherOptions(opts...)
	k := &Kernel{parallelDepth: o.parallelDepth, pivot: o.pivot}
	k.cutoff.Store(int64(o.cutoff))

	return k
}

// SetStrassenCutoff replaces the cutoff. Values below MinStrassenCutoff are
// ignored and the previous cutoff stays in effect.
func (k *Kernel) SetStrassenCutoff(n int) {
	if n < MinStrassenCutoff {
		return
	}
	k.cutoff.Store(int64(n))
}

// StrassenCutoff returns the current cutoff.
func (k *Kernel) StrassenCutoff() int { return int(k.cutoff.Load()) }

// ParallelDepth returns the configured fork-join depth (0 = sequential).
func (k *Kernel) ParallelDepth() int { return k.parallelDepth }

// Pivot returns the determinant pivot policy.
func (k *Kernel) Pivot() PivotPolicy { return k.pivot }

// plan is the immutable per-call snapshot of the kernel tunables threaded
// through Strassen and blockwise-inversion recursion.
type plan struct {
	cutoff        int
	parallelDepth int
	onFork        func(depth int) // observes each concurrent fan-out; nil outside tests
}

// snapshot reads the cutoff once for the duration of a single call.
func (k *Kernel) snapshot() plan {
	return plan{cutoff: k.StrassenCutoff(), parallelDepth: k.parallelDepth}
}

// asDense returns a *Dense view of an already validated rectangular m.
// A *Dense operand is returned as is and must be treated as read-only;
// any other implementation is copied through At.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	r, c := m.Rows(), m.Cols()
	out := newDense(r, c)
	var v float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}
