package solver

import "errors"

// Sentinel errors. SolverError results always wrap ErrSolver; use errors.Is.
var (
	// ErrSolver marks a failure of the solve itself, as opposed to an
	// infeasible or unbounded model.
	ErrSolver = errors.New("solver: engine failure")

	// ErrLimitReached is returned when a time or node limit fires before
	// any feasible assignment is known.
	ErrLimitReached = errors.New("solver: limit reached without incumbent")

	// ErrNilModel is returned for a nil *model.Model.
	ErrNilModel = errors.New("solver: nil model")
)
