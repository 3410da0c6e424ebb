// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/montanaflynn/stats"
)

// Tolerances for --verify and the inversion residual check.
const (
	verifyRTol = 1e-9
	verifyATol = 1e-6
)

// errMismatch reports a Strassen product that disagrees with the naive kernel.
var errMismatch = errors.New("product differs from the naive kernel")

// summary is the statistics of one series of timed runs, in milliseconds.
type summary struct {
	mean, median, min, stddev float64
}

func summarize(samples []float64) (summary, error) {
	var (
		s   summary
		err error
	)
	if s.mean, err = stats.Mean(samples); err != nil {
		return s, err
	}
	if s.median, err = stats.Median(samples); err != nil {
		return s, err
	}
	if s.min, err = stats.Min(samples); err != nil {
		return s, err
	}
	if s.stddev, err = stats.StandardDeviation(samples); err != nil {
		return s, err
	}

	return s, nil
}

func (s summary) String() string {
	return fmt.Sprintf("mean=%.2fms median=%.2fms min=%.2fms stddev=%.2fms",
		s.mean, s.median, s.min, s.stddev)
}

// randomDense fills an n×n matrix with values in [-1, 1).
func randomDense(n int, rng *rand.Rand) (*matrix.Dense, error) {
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err = m.Set(i, j, 2*rng.Float64()-1); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// diagDominant returns a random matrix with a diagonal of n+1, which keeps
// every leading block and Schur complement invertible.
func diagDominant(n int, rng *rand.Rand) (*matrix.Dense, error) {
	m, err := randomDense(n, rng)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if err = m.Set(i, i, float64(n+1)); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// timeRuns calls fn runs times and returns the wall time of each call in
// milliseconds. The context is checked between runs.
func timeRuns(ctx context.Context, runs int, fn func() error) ([]float64, error) {
	samples := make([]float64, 0, runs)
	for i := 0; i < runs; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		start := time.Now()
		if err := fn(); err != nil {
			return nil, err
		}
		samples = append(samples, float64(time.Since(start).Microseconds())/1000)
	}

	return samples, nil
}

func printRuns(out io.Writer, samples []float64) {
	for i, ms := range samples {
		fmt.Fprintf(out, "  run %d: %.2fms\n", i+1, ms)
	}
}

// benchMultiply times A·B once per configured cutoff on the same operands.
func benchMultiply(ctx context.Context, cfg benchConfig, out io.Writer) error {
	rng := rand.New(rand.NewSource(cfg.seed))
	a, err := randomDense(cfg.size, rng)
	if err != nil {
		return err
	}
	b, err := randomDense(cfg.size, rng)
	if err != nil {
		return err
	}

	var want *matrix.Dense
	if cfg.verify {
		naive := matrix.NewKernel(matrix.WithStrassenCutoff(max(cfg.size+1, matrix.MinStrassenCutoff)))
		if want, err = naive.Multiply(a, b); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "multiply %dx%d, %d runs\n", cfg.size, cfg.size, cfg.runs)
	k := matrix.NewKernel(matrix.WithParallelDepth(cfg.parallelDepth))
	for _, cutoff := range cfg.cutoffs {
		k.SetStrassenCutoff(cutoff)

		var got *matrix.Dense
		samples, err := timeRuns(ctx, cfg.runs, func() error {
			var mulErr error
			got, mulErr = k.Multiply(a, b)
			return mulErr
		})
		if err != nil {
			return err
		}
		printRuns(out, samples)
		s, err := summarize(samples)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "cutoff=%d %s\n", cutoff, s)

		if want != nil {
			ok, err := matrix.AllClose(got, want, verifyRTol, verifyATol)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("cutoff %d: %w", cutoff, errMismatch)
			}
			fmt.Fprintf(out, "cutoff=%d verified\n", cutoff)
		}
	}

	return nil
}

// benchInvert times blockwise inversion of a diagonally dominant matrix and
// reports max|A·A⁻¹ - I| of the last result.
func benchInvert(ctx context.Context, cfg benchConfig, out io.Writer) error {
	rng := rand.New(rand.NewSource(cfg.seed))
	a, err := diagDominant(cfg.size, rng)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "invert %dx%d, %d runs\n", cfg.size, cfg.size, cfg.runs)
	k := matrix.NewKernel(matrix.WithParallelDepth(cfg.parallelDepth))
	for _, cutoff := range cfg.cutoffs {
		k.SetStrassenCutoff(cutoff)

		var inv *matrix.Dense
		samples, err := timeRuns(ctx, cfg.runs, func() error {
			var invErr error
			inv, invErr = k.Invert(a)
			return invErr
		})
		if err != nil {
			return err
		}
		printRuns(out, samples)
		s, err := summarize(samples)
		if err != nil {
			return err
		}
		res, err := residual(k, a, inv)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "cutoff=%d %s residual=%.3g\n", cutoff, s, res)
	}

	return nil
}

// residual returns max|A·inv - I|.
func residual(k *matrix.Kernel, a, inv *matrix.Dense) (float64, error) {
	p, err := k.Multiply(a, inv)
	if err != nil {
		return 0, err
	}

	var worst float64
	for i, row := range p.RawRows() {
		for j, v := range row {
			if i == j {
				v--
			}
			worst = math.Max(worst, math.Abs(v))
		}
	}

	return worst, nil
}
