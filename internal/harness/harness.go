// Package harness runs a fixed battery of Sudoku test vectors against
// a solver and classifies each result, the Go-native counterpart to
// the Qt front-end's runTests/runTest.
package harness

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"svw.info/sudoku-dlx/internal/grid"
	"svw.info/sudoku-dlx/internal/ports"
	"svw.info/sudoku-dlx/internal/validator"
)

var log = logrus.New()

// Case is one (title, input, expected) test vector. Expected is either
// a literal solution string, "any" (accept any valid completion), or
// "none" (solver must report no solution).
type Case struct {
	Title    string
	Size     int
	Input    string
	Expected string
}

const (
	expectAny  = "any"
	expectNone = "none"
)

// Result is one case's outcome.
type Result struct {
	Case     Case
	Passed   bool
	Got      string
	Duration time.Duration
	Err      error
}

// Report aggregates a full run.
type Report struct {
	Results []Result
	Passed  int
	Failed  int
	Average time.Duration
}

// Run solves every case with solver, classifies each against its
// Expected field, and returns the aggregate report. A case whose Input
// fails to parse counts as a failure rather than aborting the run.
func Run(ctx context.Context, solver ports.Solver, cases []Case) Report {
	var rep Report
	var total time.Duration
	v := validator.New()

	for _, tc := range cases {
		g, err := grid.LoadString(tc.Input, tc.Size)
		if err != nil {
			rep.Results = append(rep.Results, Result{Case: tc, Passed: false, Err: err})
			rep.Failed++
			log.WithFields(logrus.Fields{"case": tc.Title, "err": err}).Warn("harness: parse failed")
			continue
		}

		start := time.Now()
		out, _, solveErr := solver.Solve(ctx, g)
		elapsed := time.Since(start)
		total += elapsed

		res := Result{Case: tc, Duration: elapsed}
		switch {
		case solveErr != nil && tc.Expected == expectNone:
			res.Passed = true
		case solveErr != nil:
			res.Passed = false
			res.Err = solveErr
		case tc.Expected == expectNone:
			res.Passed = false
		case tc.Expected == expectAny:
			res.Got = out.String()
			ok, _, vErr := v.Validate(ctx, out)
			res.Passed = vErr == nil && ok && givensPreserved(g, out)
		default:
			res.Got = out.String()
			res.Passed = res.Got == tc.Expected
		}

		if !res.Passed {
			rep.Failed++
			log.WithFields(logrus.Fields{"case": tc.Title, "got": res.Got, "want": tc.Expected}).Warn("harness: case failed")
		} else {
			rep.Passed++
		}
		rep.Results = append(rep.Results, res)
	}

	if len(cases) > 0 {
		rep.Average = total / time.Duration(len(cases))
	}
	return rep
}

// givensPreserved checks every non-empty cell of in survives unchanged
// in out, used for the "any" classification.
func givensPreserved(in, out *grid.Grid) bool {
	for r := 0; r < in.N; r++ {
		for c := 0; c < in.N; c++ {
			if v := in.Get(r, c); v != 0 && v != out.Get(r, c) {
				return false
			}
		}
	}
	return true
}
