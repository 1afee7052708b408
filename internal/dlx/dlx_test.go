package dlx

import (
	"testing"

	"svw.info/sudoku-dlx/internal/cover"
	"svw.info/sudoku-dlx/internal/grid"
)

func solve4x4(t *testing.T, s string) (string, bool) {
	t.Helper()
	g, err := grid.LoadString(s, 4)
	if err != nil {
		t.Fatalf("LoadString failed: %v", err)
	}
	numCols, region, cands := cover.Build(g)
	m := Build(4, region, numCols, cands)
	if !m.Search() {
		return "", false
	}
	out, err := grid.New(4)
	if err != nil {
		t.Fatalf("grid.New failed: %v", err)
	}
	for _, id := range m.Solution() {
		r, c, d := cover.DecodeID(4, id)
		if err := out.Set(r, c, d); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
	}
	return out.String(), true
}

func TestSolve4x4Complete(t *testing.T) {
	// A valid, fully solved 4x4 Sudoku (2x2 regions).
	solved := "1234341221434321"
	got, ok := solve4x4(t, solved)
	if !ok {
		t.Fatalf("expected solved")
	}
	if got != solved {
		t.Fatalf("got %s, want %s", got, solved)
	}
}

func TestSolve4x4Partial(t *testing.T) {
	partial := "12.43.122.4.4321"
	got, ok := solve4x4(t, partial)
	if !ok {
		t.Fatalf("expected a solution")
	}
	// given preservation (property 3)
	in, _ := grid.LoadString(partial, 4)
	out, _ := grid.LoadString(got, 4)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if v := in.Get(r, c); v != 0 && v != out.Get(r, c) {
				t.Fatalf("given at (%d,%d) not preserved: %d -> %d", r, c, v, out.Get(r, c))
			}
		}
	}
}

func TestSolveUnsolvable4x4(t *testing.T) {
	// Two 1s in the same row: no valid completion.
	bad := "11.............."
	_, ok := solve4x4(t, bad)
	if ok {
		t.Fatalf("expected unsolvable")
	}
}

func TestBalanceAfterFullSolve(t *testing.T) {
	g, err := grid.LoadString("12.43.122.4.4321", 4)
	if err != nil {
		t.Fatalf("LoadString failed: %v", err)
	}
	numCols, region, cands := cover.Build(g)
	m := Build(4, region, numCols, cands)
	if err := CheckBalance(m); err != nil {
		t.Fatalf("balance check failed pre-solve: %v", err)
	}
	if !m.Search() {
		t.Fatalf("expected a solution")
	}
	if err := CheckBalance(m); err != nil {
		t.Fatalf("balance check failed post-solve: %v", err)
	}
}

func TestDeterminism(t *testing.T) {
	puzzle := "12.43.122.4.4321"
	first, ok := solve4x4(t, puzzle)
	if !ok {
		t.Fatalf("expected a solution")
	}
	for i := 0; i < 5; i++ {
		got, ok := solve4x4(t, puzzle)
		if !ok || got != first {
			t.Fatalf("solve not deterministic: run %d got %q, want %q", i, got, first)
		}
	}
}
