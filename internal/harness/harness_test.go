package harness

import (
	"context"
	"strings"
	"testing"

	"svw.info/sudoku-dlx/internal/solver"
)

func conflictInput() string {
	return "11" + strings.Repeat(".", 81-2)
}

func TestRunFixedBatteryAllPass(t *testing.T) {
	rep := Run(context.Background(), solver.NewDLXSolver(), Cases9x9)
	if rep.Failed != 0 {
		for _, r := range rep.Results {
			if !r.Passed {
				t.Logf("FAILED %q: got=%q want=%q err=%v", r.Case.Title, r.Got, r.Case.Expected, r.Err)
			}
		}
		t.Fatalf("expected all 9x9 cases to pass, got %d failures out of %d", rep.Failed, len(rep.Results))
	}
	if rep.Passed != len(Cases9x9) {
		t.Fatalf("passed=%d, want %d", rep.Passed, len(Cases9x9))
	}
}

func TestRun16x16BatteryAllPass(t *testing.T) {
	rep := Run(context.Background(), solver.NewDLXSolver(), Cases16x16)
	if rep.Failed != 0 {
		for _, r := range rep.Results {
			if !r.Passed {
				t.Logf("FAILED %q: err=%v", r.Case.Title, r.Err)
			}
		}
		t.Fatalf("expected all 16x16 cases to pass, got %d failures", rep.Failed)
	}
}

func TestRunClassifiesNoneCase(t *testing.T) {
	cases := []Case{
		{Title: "conflict", Size: 9, Input: conflictInput(), Expected: expectNone},
	}
	rep := Run(context.Background(), solver.NewDLXSolver(), cases)
	if rep.Passed != 1 || rep.Failed != 0 {
		t.Fatalf("expected the none-case to pass, got passed=%d failed=%d", rep.Passed, rep.Failed)
	}
}

func TestRunFlagsUnexpectedNone(t *testing.T) {
	cases := []Case{
		{Title: "bad expectation", Size: 9, Input: conflictInput(), Expected: "974236158638591742125487936316754289742918563589362417867125394253649871491873625"},
	}
	rep := Run(context.Background(), solver.NewDLXSolver(), cases)
	if rep.Passed != 0 || rep.Failed != 1 {
		t.Fatalf("expected a failure, got passed=%d failed=%d", rep.Passed, rep.Failed)
	}
}
