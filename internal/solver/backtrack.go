package solver

import "svw.info/sudoku-dlx/internal/grid"

// BacktrackingSolver is a straightforward recursive solver used as a
// cross-check oracle against DLXSolver. On a grid with exactly one
// solution any disagreement between the two is a bug; on a grid with
// several solutions they can return different ones, since this solver
// fills cells in row-major order while DLX picks the column with the
// fewest remaining candidates.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

// isValid reports whether placing v at (r,c) keeps the row, column,
// and box it belongs to free of duplicates, generalized from a fixed
// 9x9/3x3 version to g.N/g.R.
func isValid(g *grid.Grid, r, c int, v uint8) bool {
	n, region := g.N, g.R
	for i := 0; i < n; i++ {
		if g.Get(r, i) == v || g.Get(i, c) == v {
			return false
		}
	}
	br, bc := (r/region)*region, (c/region)*region
	for dr := 0; dr < region; dr++ {
		for dc := 0; dc < region; dc++ {
			if g.Get(br+dr, bc+dc) == v {
				return false
			}
		}
	}
	return true
}

func findEmpty(g *grid.Grid) (int, int, bool) {
	n := g.N
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if g.Get(r, c) == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// The implementations for Solve and Unique live in backtrack_solve.go
// and backtrack_unique.go, and use the helpers above.
