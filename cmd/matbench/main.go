// SPDX-License-Identifier: MIT

// Command matbench times the matcalc kernels on random square matrices and
// compares Strassen cutoffs side by side.
//
//	matbench multiply --size 1024 --cutoffs 513,257,129 --verify
//	matbench invert --size 512 --runs 3
//
// Defaults come from MATBENCH_* variables, optionally set in a .env file in
// the working directory or one of its parents. Flags override them.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// Exit codes.
const (
	ExitSuccess       = 0
	ExitErrorGeneric  = 1
	ExitErrorMismatch = 3
	ExitErrorCanceled = 130 // SIGINT
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one matbench invocation and maps its outcome to an exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: config: %v\n", err)
		return ExitErrorGeneric
	}

	cmd := makeMatbenchCommand(&cfg)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err = cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(stderr, "canceled")
		return ExitErrorCanceled
	case errors.Is(err, errMismatch):
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return ExitErrorMismatch
	default:
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return ExitErrorGeneric
	}
}

func makeMatbenchCommand(cfg *benchConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "matbench",
		Short:         "matbench times dense matrix kernels",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.validate()
		},
	}

	flags := cmd.PersistentFlags()
	flags.IntVar(&cfg.size, "size", cfg.size, "side length of the random square operands")
	flags.IntVar(&cfg.runs, "runs", cfg.runs, "timed runs per cutoff")
	flags.IntSliceVar(&cfg.cutoffs, "cutoffs", cfg.cutoffs, "Strassen cutoffs to compare")
	flags.Int64Var(&cfg.seed, "seed", cfg.seed, "random seed for the operands")
	flags.IntVar(&cfg.parallelDepth, "parallel-depth", cfg.parallelDepth, "recursion depth that forks goroutines")

	cmd.AddCommand(makeMultiplyCommand(cfg), makeInvertCommand(cfg))

	return cmd
}

func makeMultiplyCommand(cfg *benchConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "multiply",
		Short: "time A·B for each cutoff",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return benchMultiply(cmd.Context(), *cfg, cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&cfg.verify, "verify", cfg.verify, "check every product against the naive kernel")

	return cmd
}

func makeInvertCommand(cfg *benchConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "invert",
		Short: "time blockwise inversion for each cutoff and report the residual",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return benchInvert(cmd.Context(), *cfg, cmd.OutOrStdout())
		},
	}
}
