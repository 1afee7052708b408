package solver

import (
	"context"
	"testing"
	"time"

	"svw.info/sudoku-dlx/internal/grid"
	"svw.info/sudoku-dlx/internal/validator"
)

// A classic, solvable 9x9 Sudoku ('.' = empty).
const sample = "53..7...." +
	"6..195..." +
	".98....6." +
	"8...6...3" +
	"4..8.3..1" +
	"7...2...6" +
	".6....28." +
	"...419..5" +
	"....8..79"

func TestBacktrackingSolveUnder1s(t *testing.T) {
	in, err := grid.LoadString(sample, 9)
	if err != nil {
		t.Fatalf("LoadString failed: %v", err)
	}
	s := NewBacktrackingSolver()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	out, st, err := s.Solve(ctx, in)
	if err != nil {
		t.Fatalf("Solve failed: %v (nodes=%d dur=%v)", err, st.Nodes, st.Duration)
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if out.Get(r, c) == 0 {
				t.Fatalf("unsolved cell at r=%d c=%d", r, c)
			}
		}
	}
	ok, conf, err := validator.New().Validate(ctx, out)
	if err != nil || !ok {
		t.Fatalf("invalid solution: err=%v conflicts=%v", err, conf)
	}
	if st.Duration > time.Second {
		t.Fatalf("took too long: %v (>1s)", st.Duration)
	}
	t.Logf("Solved in %v, nodes=%d", st.Duration, st.Nodes)
}

func TestBacktrackingAgreesWithDLX(t *testing.T) {
	in, err := grid.LoadString(sample, 9)
	if err != nil {
		t.Fatalf("LoadString failed: %v", err)
	}
	ctx := context.Background()

	btOut, _, err := NewBacktrackingSolver().Solve(ctx, in)
	if err != nil {
		t.Fatalf("backtracking Solve failed: %v", err)
	}
	dlxOut, _, err := NewDLXSolver().Solve(ctx, in)
	if err != nil {
		t.Fatalf("dlx Solve failed: %v", err)
	}
	if btOut.String() != dlxOut.String() {
		t.Fatalf("solvers disagree:\nbacktrack=%s\ndlx=     %s", btOut.String(), dlxOut.String())
	}
}
