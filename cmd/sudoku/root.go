package main

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "sudoku",
	Short: "Sudoku solving via Dancing Links",
	Long: `sudoku solves Sudoku puzzles of any perfect-square side length
using Knuth's Dancing Links over the Sudoku-as-exact-cover reduction.

Examples:
  sudoku solve "..............3.85..1.2.......5.7.....4...1...9.......5......73..2.1........4...9"
  sudoku harness --profile`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		lvl, err := logrus.ParseLevel(strings.ToLower(logLevel))
		if err != nil {
			return err
		}
		logrus.SetLevel(lvl)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
	logrus.SetOutput(os.Stdout)
}
