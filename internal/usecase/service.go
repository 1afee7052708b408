// Package usecase provides the thin facade the CLI and harness call
// through, wrapping a ports.Solver and a ports.Validator.
// Generate/Hint/Save/Load/List are dropped: puzzle generation,
// human-style hinting, and persistence are all out of scope here
// (see DESIGN.md).
package usecase

import (
	"context"
	"errors"

	"svw.info/sudoku-dlx/internal/grid"
	"svw.info/sudoku-dlx/internal/ports"
)

var errNotConfigured = errors.New("usecase: dependency not configured")

// Service wires a Solver and Validator behind a small facade.
type Service struct {
	Solver    ports.Solver
	Validator ports.Validator
}

func NewService(s ports.Solver, v ports.Validator) *Service {
	return &Service{Solver: s, Validator: v}
}

// Solve delegates to the configured Solver without additional timing.
func (u *Service) Solve(ctx context.Context, g *grid.Grid) (*grid.Grid, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, g)
}

// SolveTimed delegates to the configured Solver and returns the
// Stats.Duration the solver measured with its own monotonic clock. For
// DLXSolver that duration covers only the DLX search, not matrix
// construction.
func (u *Service) SolveTimed(ctx context.Context, g *grid.Grid) (*grid.Grid, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, g)
}

// Unique delegates to the configured Solver's uniqueness check.
func (u *Service) Unique(ctx context.Context, g *grid.Grid) (bool, ports.Stats, error) {
	if u.Solver == nil {
		return false, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Unique(ctx, g)
}

// Validate delegates to the configured Validator.
func (u *Service) Validate(ctx context.Context, g *grid.Grid) (bool, []ports.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, g)
}
