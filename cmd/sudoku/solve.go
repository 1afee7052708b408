package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"svw.info/sudoku-dlx/internal/grid"
	"svw.info/sudoku-dlx/internal/solver"
	"svw.info/sudoku-dlx/internal/usecase"
	"svw.info/sudoku-dlx/internal/validator"
)

var (
	solveSize   int
	solveKind   string
	solveUnique bool
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve [grid string]",
		Short: "Solve a single Sudoku grid",
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve,
	}
	solveCmd.Flags().IntVarP(&solveSize, "size", "s", 9, "grid side length (perfect square, e.g. 4, 9, 16, 25)")
	solveCmd.Flags().StringVar(&solveKind, "solver", "dlx", "solver backend: dlx|backtrack")
	solveCmd.Flags().BoolVar(&solveUnique, "unique", false, "also print the backend's Unique result (dlx: a solution exists; backtrack: exactly one solution exists)")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	g, err := grid.LoadString(args[0], solveSize)
	if err != nil {
		return fmt.Errorf("parse grid: %w", err)
	}

	var s = solver.NewDLXSolver()
	svc := usecase.NewService(s, validator.New())
	if strings.EqualFold(solveKind, "backtrack") || strings.EqualFold(solveKind, "backtracking") {
		svc.Solver = solver.NewBacktrackingSolver()
	}

	ctx := context.Background()
	out, stats, err := svc.SolveTimed(ctx, g)
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), "unsolvable")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), out.String())
	fmt.Fprintf(cmd.OutOrStdout(), "solved in %v\n", stats.Duration)

	if solveUnique {
		unique, _, err := svc.Unique(ctx, g)
		if err != nil {
			return fmt.Errorf("uniqueness check: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "unique: %v\n", unique)
	}
	return nil
}
