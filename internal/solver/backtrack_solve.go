package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/sudoku-dlx/internal/grid"
	"svw.info/sudoku-dlx/internal/ports"
)

func (s *BacktrackingSolver) Solve(ctx context.Context, g *grid.Grid) (*grid.Grid, ports.Stats, error) {
	start := time.Now()
	work := g.Clone()
	nodes := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := findEmpty(work)
		if !ok {
			return true
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
	if !dfs() {
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, errors.New("solver: unsolvable or canceled")
	}
	return work, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
