// SPDX-License-Identifier: MIT
//
// File: solver.go
// Role: The black-box solver surface consumed by heuristic evaluators.
// Policy:
//   - lvlplan never implements a solver; wrap your binding (GLPK,
//     CPLEX, SoPlex, …) behind this interface.
//   - Solver outcomes (infeasible/unbounded/numerical failure) are
//     propagated unchanged by all lvlplan code — never masked or
//     retried internally.

package lp

// Status classifies the outcome of a Solve call.
type Status int

const (
	// StatusOptimal means the solver proved an optimal objective value.
	StatusOptimal Status = iota

	// StatusInfeasible means the model admits no feasible point.
	StatusInfeasible

	// StatusUnbounded means the objective is unbounded below.
	StatusUnbounded

	// StatusError means the solver failed numerically or internally.
	StatusError
)

// String renders the status for logs and test output.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is the outcome of one Solve call. Objective is meaningful
// only when Status == StatusOptimal.
type Result struct {
	Status    Status
	Objective float64
}

// Solver is the black-box LP/MIP solver surface.
//
// The expected call sequence per heuristic instance is: one Load at
// setup, then a strict alternation of bound patches and Solve calls,
// one pair per evaluated state. Bound patches mutate scalars of an
// already-loaded row; they never add or remove rows or columns, so a
// warm start from the previous basis stays valid.
//
// A Solver handle is exclusively owned by one evaluating goroutine;
// implementations need no internal locking.
type Solver interface {
	// Load hands the structurally complete program to the solver.
	Load(p *Program) error

	// SetConstraintLowerBound patches the lower bound of row id.
	SetConstraintLowerBound(id int, bound float64)

	// SetConstraintUpperBound patches the upper bound of row id.
	SetConstraintUpperBound(id int, bound float64)

	// Solve optimizes the loaded model and reports the outcome.
	Solve() (Result, error)
}
