package cover

import (
	"testing"

	"svw.info/sudoku-dlx/internal/grid"
)

func TestBuildEmptyGridEmitsAllCandidates(t *testing.T) {
	g, err := grid.New(9)
	if err != nil {
		t.Fatalf("grid.New failed: %v", err)
	}
	numCols, region, cands := Build(g)
	if numCols != 4*81 {
		t.Fatalf("numCols = %d, want %d", numCols, 4*81)
	}
	if region != 3 {
		t.Fatalf("region = %d, want 3", region)
	}
	if len(cands) != 9*9*9 {
		t.Fatalf("len(candidates) = %d, want %d", len(cands), 9*9*9)
	}
}

func TestBuildGivenCollapsesToOneCandidate(t *testing.T) {
	g, err := grid.New(9)
	if err != nil {
		t.Fatalf("grid.New failed: %v", err)
	}
	if err := g.Set(0, 0, 5); err != nil {
		t.Fatal(err)
	}
	_, _, cands := Build(g)
	count := 0
	for _, c := range cands {
		if c.Row == 0 && c.Col == 0 {
			count++
			if c.Digit != 5 {
				t.Fatalf("given collapsed to wrong digit: %d", c.Digit)
			}
		}
	}
	if count != 1 {
		t.Fatalf("given cell should emit exactly 1 candidate, got %d", count)
	}
}

func TestEncodeDecodeIDRoundTrip(t *testing.T) {
	n := 9
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			for d := 1; d <= n; d++ {
				id := EncodeID(n, r, c, d)
				gr, gc, gd := DecodeID(n, id)
				if gr != r || gc != c || gd != d {
					t.Fatalf("DecodeID(EncodeID(%d,%d,%d)) = (%d,%d,%d)", r, c, d, gr, gc, gd)
				}
			}
		}
	}
}

func TestColumnsTouchesFourDistinctColumns(t *testing.T) {
	cols := Columns(9, 3, 0, 0, 1)
	seen := map[int]bool{}
	for _, c := range cols {
		if seen[c] {
			t.Fatalf("duplicate column index %d in %v", c, cols)
		}
		seen[c] = true
	}
}
