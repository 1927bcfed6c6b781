// Package solver implements the MILP Solver Driver of spec §4.5 (C9): a
// pluggable MILPSolver interface plus a default in-process branch-and-bound
// backend, grounded in the backtracking-with-pruning search of
// leanlp-BTC-coinjoin's internal/heuristics/cpsat_solver.go, generalised
// from a fixed two-array assignment problem to an arbitrary binary ILP.
package solver

import (
	"context"

	"github.com/qhato/promoengine/internal/ilp"
	apperrors "github.com/qhato/promoengine/pkg/errors"
)

// Status is the outcome of a solve attempt.
type Status int

const (
	Optimal Status = iota
	Infeasible
	Unbounded
)

// Assignment maps each variable to its solved 0/1 value.
type Assignment []int8

// Value returns the solved value of v as a bool.
func (a Assignment) Value(v ilp.VarID) bool {
	return a[v] != 0
}

// Result is the outcome of Solve.
type Result struct {
	Status     Status
	Assignment Assignment
	Objective  int64
}

// MILPSolver solves a binary integer program. Implementations may be exact
// (branch-and-bound, an external MILP library) or approximate, provided they
// honour the Optimal/Infeasible/Unbounded contract.
type MILPSolver interface {
	Solve(ctx context.Context, problem *ilp.Problem) (Result, error)
}

// AsError converts a non-optimal Result into the taxonomy's SolverError
// cases; returns nil for an Optimal result.
func AsError(result Result) error {
	switch result.Status {
	case Optimal:
		return nil
	case Infeasible:
		return apperrors.Infeasible("solver reported no feasible assignment")
	case Unbounded:
		return apperrors.Unbounded("solver reported an unbounded objective; every variable is binary so this indicates a builder defect, such as a promotion variable missing its settling or mutual-exclusion constraints")
	default:
		return apperrors.SolverBackend(nil, "solver returned an unrecognised status")
	}
}
