// Package ports defines the interfaces the usecase facade is wired
// against, in a hexagonal style. Generator, Hinter, and Storage are
// dropped: puzzle generation, human-style hinting, and persistence
// are all out of scope here (see DESIGN.md).
package ports

import (
	"context"
	"time"

	"svw.info/sudoku-dlx/internal/grid"
)

// Stats captures performance characteristics of a solve.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver solves a Grid and runs a Unique check; what Unique reports
// depends on the implementation (DLXSolver only confirms a solution
// exists, BacktrackingSolver checks for exactly one).
type Solver interface {
	Solve(ctx context.Context, g *grid.Grid) (*grid.Grid, Stats, error)
	Unique(ctx context.Context, g *grid.Grid) (bool, Stats, error)
}

// CellCoord identifies a cell on the grid.
type CellCoord struct {
	Row, Col int
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, g *grid.Grid) (ok bool, conflicts []CellCoord, err error)
}
