// Command sudoku solves Sudoku puzzles via Dancing Links and runs the
// fixed regression battery against either solver backend.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("command failed")
		os.Exit(1)
	}
}
