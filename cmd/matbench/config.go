// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/katalvlaran/matcalc/matrix"
)

// Environment variables consulted for defaults. Command-line flags win.
const (
	envSize          = "MATBENCH_SIZE"
	envRuns          = "MATBENCH_RUNS"
	envCutoffs       = "MATBENCH_CUTOFFS"
	envSeed          = "MATBENCH_SEED"
	envParallelDepth = "MATBENCH_PARALLEL_DEPTH"
)

// envSearchDepth bounds the .env lookup: the working directory and its parents.
const envSearchDepth = 5

// benchConfig is the resolved configuration of one matbench invocation.
type benchConfig struct {
	size          int   // side length of the random square operands
	runs          int   // timed repetitions per cutoff
	cutoffs       []int // Strassen cutoffs to compare
	seed          int64 // RNG seed for the operands
	parallelDepth int   // fork-join depth handed to the kernel
	verify        bool  // compare every product with the naive kernel
}

// defaultConfig mirrors the historical tuning run: 2500×2500 operands,
// cutoffs 513/257/129, five runs each.
func defaultConfig() benchConfig {
	return benchConfig{
		size:          2500,
		runs:          5,
		cutoffs:       []int{513, 257, 129},
		seed:          1,
		parallelDepth: matrix.DefaultParallelDepth,
	}
}

// loadConfig starts from defaultConfig, loads a .env file if one is found
// and applies the MATBENCH_* environment variables. A missing .env is fine;
// one that exists but does not parse is an error.
func loadConfig() (benchConfig, error) {
	cfg := defaultConfig()
	if err := loadEnvFile(); err != nil {
		return cfg, err
	}

	var err error
	if cfg.size, err = envInt(envSize, cfg.size); err != nil {
		return cfg, err
	}
	if cfg.runs, err = envInt(envRuns, cfg.runs); err != nil {
		return cfg, err
	}
	if cfg.parallelDepth, err = envInt(envParallelDepth, cfg.parallelDepth); err != nil {
		return cfg, err
	}
	if v := os.Getenv(envSeed); v != "" {
		if cfg.seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return cfg, fmt.Errorf("%s: %w", envSeed, err)
		}
	}
	if v := os.Getenv(envCutoffs); v != "" {
		if cfg.cutoffs, err = parseCutoffs(v); err != nil {
			return cfg, fmt.Errorf("%s: %w", envCutoffs, err)
		}
	}

	return cfg, nil
}

// validate rejects settings the kernels would panic on or that make no run.
func (c benchConfig) validate() error {
	if c.size < 1 {
		return fmt.Errorf("size must be >= 1, got %d", c.size)
	}
	if c.runs < 1 {
		return fmt.Errorf("runs must be >= 1, got %d", c.runs)
	}
	if c.parallelDepth < 0 {
		return fmt.Errorf("parallel-depth must be >= 0, got %d", c.parallelDepth)
	}
	if len(c.cutoffs) == 0 {
		return fmt.Errorf("at least one cutoff is required")
	}
	for _, cutoff := range c.cutoffs {
		if cutoff < matrix.MinStrassenCutoff {
			return fmt.Errorf("cutoff must be >= %d, got %d", matrix.MinStrassenCutoff, cutoff)
		}
	}

	return nil
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}

	return n, nil
}

// parseCutoffs reads a comma-separated integer list such as "513,257,129".
func parseCutoffs(s string) ([]int, error) {
	var out []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}

	return out, nil
}

// loadEnvFile walks up from the working directory until it finds a .env file.
// Variables already present in the environment are not overridden. Finding no
// file is not an error.
func loadEnvFile() error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}

	for i := 0; i < envSearchDepth; i++ {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("%s: %w", envPath, err)
			}

			return nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return nil
}
