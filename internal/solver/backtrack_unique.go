package solver

import (
	"context"
	"time"

	"svw.info/sudoku-dlx/internal/grid"
	"svw.info/sudoku-dlx/internal/ports"
)

// Unique counts solutions up to 2 and reports whether exactly one
// exists, unlike DLXSolver.Unique, which only confirms a first
// solution exists.
func (s *BacktrackingSolver) Unique(ctx context.Context, g *grid.Grid) (bool, ports.Stats, error) {
	start := time.Now()
	work := g.Clone()
	nodes := 0
	count := 0

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil || count >= 2 {
			return true
		}
		r, c, ok := findEmpty(work)
		if !ok {
			count++
			return count >= 2
		}
		for v := uint8(1); v <= uint8(work.N); v++ {
			nodes++
			if isValid(work, r, c, v) {
				work.Set(r, c, int(v))
				if dfs() {
					return true
				}
				work.Set(r, c, 0)
			}
		}
		return false
	}
	_ = dfs()
	return count == 1, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
