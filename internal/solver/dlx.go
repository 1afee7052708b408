// Package solver provides ports.Solver implementations: DLXSolver,
// the primary Dancing-Links solver, and BacktrackingSolver, a plain
// recursive cross-check oracle used by tests and the harness to
// confirm the two backends agree.
package solver

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"svw.info/sudoku-dlx/internal/cover"
	"svw.info/sudoku-dlx/internal/dlx"
	"svw.info/sudoku-dlx/internal/grid"
	"svw.info/sudoku-dlx/internal/ports"
)

var log = logrus.New()

// ErrNoSolution is returned when DLX search exhausts the matrix
// without finding an exact cover.
var ErrNoSolution = errors.New("solver: no solution")

// DLXSolver implements Algorithm X / Dancing Links for Sudoku, wired
// through the grid -> cover -> dlx pipeline. Unlike the fixed-9x9
// predecessor this replaces, it runs at whatever N the given Grid
// carries.
type DLXSolver struct{}

func NewDLXSolver() *DLXSolver { return &DLXSolver{} }

// Solve builds the exact-cover matrix for g, runs the DLX search, and
// decodes the first solution found back into a fresh Grid. Stats.Duration
// covers only the search, not matrix construction.
func (s *DLXSolver) Solve(ctx context.Context, g *grid.Grid) (*grid.Grid, ports.Stats, error) {
	if err := ctx.Err(); err != nil {
		return nil, ports.Stats{}, err
	}
	numCols, region, candidates := cover.Build(g)
	m := dlx.Build(g.N, region, numCols, candidates)

	start := time.Now()
	found := m.Search()
	elapsed := time.Since(start)

	if !found {
		log.WithFields(logrus.Fields{"n": g.N, "duration": elapsed}).Debug("dlx: no solution")
		return nil, ports.Stats{Duration: elapsed}, ErrNoSolution
	}

	out, err := grid.New(g.N)
	if err != nil {
		return nil, ports.Stats{Duration: elapsed}, err
	}
	ids := m.Solution()
	for _, id := range ids {
		r, c, d := cover.DecodeID(g.N, id)
		if err := out.Set(r, c, d); err != nil {
			return nil, ports.Stats{Duration: elapsed}, err
		}
	}
	log.WithFields(logrus.Fields{"n": g.N, "duration": elapsed, "rows": len(ids)}).Debug("dlx: solved")
	return out, ports.Stats{Nodes: len(ids), Duration: elapsed}, nil
}

// Unique reports whether g has at least one solution reachable by
// DLX's deterministic MRV search. It does not look for a second,
// distinct solution, so it also returns true for puzzles with several
// solutions; BacktrackingSolver.Unique is the implementation that tells
// "exactly one" from "more than one". DLXSolver itself never enumerates
// past the first solution found.
func (s *DLXSolver) Unique(ctx context.Context, g *grid.Grid) (bool, ports.Stats, error) {
	if err := ctx.Err(); err != nil {
		return false, ports.Stats{}, err
	}
	numCols, region, candidates := cover.Build(g)
	m := dlx.Build(g.N, region, numCols, candidates)

	start := time.Now()
	found := m.Search()
	return found, ports.Stats{Duration: time.Since(start)}, nil
}
