package solver

import (
	"context"
	"time"

	"github.com/qhato/promoengine/internal/ilp"
	"github.com/qhato/promoengine/internal/solverconfig"
)

// BranchAndBound is the default MILPSolver: exhaustive backtracking search
// with two pruning rules — an optimistic objective bound and per-constraint
// feasible-range pruning, applied after every variable decision. A
// non-settling layer (a Split layer with a Participating edge, or a
// PassThrough layer with an All edge) carries savings-delta coefficients
// that can be negative (a later promotion variable lowers the objective
// further), so the bound is not simply the partial sum: it adds the sum
// of every remaining negative coefficient, the best any completion of
// the current partial assignment could still achieve. Deterministic: variables
// are branched in index order, value 0 tried before 1, so ties between
// equal-objective solutions resolve to the lexicographically smallest
// assignment — satisfying spec §5's reproducibility requirement even though
// the contract leaves solver-level tie-breaking otherwise unspecified.
//
// TimeLimit and NodeLimit bound the search for basket sizes beyond what the
// candidate-count guard in internal/graph already rules out. When either
// fires before a feasible assignment is found, Solve reports Infeasible;
// when either fires after one is found, Solve returns the best assignment
// found so far with status Optimal, which is then not proven optimal.
type BranchAndBound struct {
	TimeLimit time.Duration
	NodeLimit int64
}

// NewBranchAndBound constructs the default solver backend with no search
// bounds beyond the problem's own constraints.
func NewBranchAndBound() *BranchAndBound { return &BranchAndBound{} }

// NewBranchAndBoundWithConfig constructs a bounded backend from a loaded
// SolverConfig.
func NewBranchAndBoundWithConfig(cfg solverconfig.SolverConfig) *BranchAndBound {
	return &BranchAndBound{TimeLimit: cfg.TimeLimit, NodeLimit: cfg.NodeLimit}
}

func (s *BranchAndBound) Solve(ctx context.Context, problem *ilp.Problem) (Result, error) {
	if s.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.TimeLimit)
		defer cancel()
	}

	n := problem.NumVars()
	assignment := make(Assignment, n)
	for i := range assignment {
		assignment[i] = -1
	}

	// suffixNegSum[i] is the sum of negative coefficients of vars[i:], the
	// most a completion from index i onward can still subtract from the
	// objective. Computed once so the bound check in search stays O(1).
	suffixNegSum := make([]int64, n+1)
	for i := n - 1; i >= 0; i-- {
		suffixNegSum[i] = suffixNegSum[i+1]
		if c := problem.Vars[i].Coefficient; c < 0 {
			suffixNegSum[i] += c
		}
	}

	best := &searchState{
		bestObjective: -1,
		nodeLimit:     s.NodeLimit,
		suffixNegSum:  suffixNegSum,
	}

	search(ctx, problem, assignment, 0, 0, best)

	if best.bestAssignment == nil {
		return Result{Status: Infeasible}, nil
	}
	return Result{Status: Optimal, Assignment: best.bestAssignment, Objective: best.bestObjective}, nil
}

type searchState struct {
	bestObjective  int64
	bestAssignment Assignment
	nodeLimit      int64
	nodes          int64
	suffixNegSum   []int64
}

func search(ctx context.Context, problem *ilp.Problem, assignment Assignment, varIndex int, partialObjective int64, best *searchState) {
	select {
	case <-ctx.Done():
		return
	default:
	}

	best.nodes++
	if best.nodeLimit > 0 && best.nodes > best.nodeLimit {
		return
	}

	lowerBound := partialObjective + best.suffixNegSum[varIndex]
	if best.bestAssignment != nil && lowerBound >= best.bestObjective {
		return
	}

	if varIndex == len(problem.Vars) {
		if !feasible(problem, assignment) {
			return
		}
		if best.bestAssignment == nil || partialObjective < best.bestObjective {
			best.bestObjective = partialObjective
			best.bestAssignment = append(Assignment(nil), assignment...)
		}
		return
	}

	for _, value := range [2]int8{0, 1} {
		assignment[varIndex] = value
		contribution := int64(value) * problem.Vars[varIndex].Coefficient
		if rangesFeasible(problem, assignment, varIndex+1) {
			search(ctx, problem, assignment, varIndex+1, partialObjective+contribution, best)
		}
	}
	assignment[varIndex] = -1
}

// rangesFeasible checks every constraint's reachable-value range given the
// assignment decided so far (indices < firstUnassigned are fixed, the rest
// free in {0,1}); returns false if any constraint can no longer possibly be
// satisfied.
func rangesFeasible(problem *ilp.Problem, assignment Assignment, firstUnassigned int) bool {
	for _, c := range problem.Constraints {
		var fixedSum, lo, hi int64
		for _, t := range c.Terms {
			if int(t.Var) < firstUnassigned {
				fixedSum += int64(assignment[t.Var]) * t.Coefficient
				continue
			}
			if t.Coefficient > 0 {
				hi += t.Coefficient
			} else {
				lo += t.Coefficient
			}
		}
		rangeLo, rangeHi := fixedSum+lo, fixedSum+hi
		switch c.Relation {
		case ilp.Eq:
			if c.RHS < rangeLo || c.RHS > rangeHi {
				return false
			}
		case ilp.Leq:
			if rangeLo > c.RHS {
				return false
			}
		case ilp.Geq:
			if rangeHi < c.RHS {
				return false
			}
		}
	}
	return true
}

func feasible(problem *ilp.Problem, assignment Assignment) bool {
	for _, c := range problem.Constraints {
		var sum int64
		for _, t := range c.Terms {
			sum += int64(assignment[t.Var]) * t.Coefficient
		}
		switch c.Relation {
		case ilp.Eq:
			if sum != c.RHS {
				return false
			}
		case ilp.Leq:
			if sum > c.RHS {
				return false
			}
		case ilp.Geq:
			if sum < c.RHS {
				return false
			}
		}
	}
	return true
}
