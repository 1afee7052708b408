package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"svw.info/sudoku-dlx/internal/harness"
	"svw.info/sudoku-dlx/internal/solver"
)

var (
	harnessKind    string
	harnessProfile bool
)

func init() {
	harnessCmd := &cobra.Command{
		Use:   "harness",
		Short: "Run the fixed regression battery",
		RunE:  runHarness,
	}
	harnessCmd.Flags().StringVar(&harnessKind, "solver", "dlx", "solver backend: dlx|backtrack")
	harnessCmd.Flags().BoolVar(&harnessProfile, "profile", false, "wrap the run in a CPU profile")
	rootCmd.AddCommand(harnessCmd)
}

func runHarness(cmd *cobra.Command, args []string) error {
	if harnessProfile {
		defer profile.Start().Stop()
	}

	ctx := context.Background()
	cases := append(append([]harness.Case{}, harness.Cases9x9...), harness.Cases16x16...)

	var rep harness.Report
	if strings.EqualFold(harnessKind, "backtrack") || strings.EqualFold(harnessKind, "backtracking") {
		rep = harness.Run(ctx, solver.NewBacktrackingSolver(), cases)
	} else {
		rep = harness.Run(ctx, solver.NewDLXSolver(), cases)
	}

	w := cmd.OutOrStdout()
	for _, r := range rep.Results {
		status := "PASS"
		if !r.Passed {
			status = "FAIL"
		}
		fmt.Fprintf(w, "%-4s %-30s %v\n", status, r.Case.Title, r.Duration)
	}
	fmt.Fprintf(w, "\n%d passed, %d failed, average %v\n", rep.Passed, rep.Failed, rep.Average)
	if rep.Failed > 0 {
		return fmt.Errorf("harness: %d case(s) failed", rep.Failed)
	}
	return nil
}
