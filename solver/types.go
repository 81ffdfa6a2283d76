package solver

import (
	"context"
	"strconv"
	"time"

	"github.com/katalvlaran/rwa/model"
)

// Status is the terminal state of a solve.
type Status uint8

// Statuses.
const (
	Optimal Status = iota
	Infeasible
	Unbounded
	SolverError
)

var statusNames = [...]string{
	Optimal:     "OPTIMAL",
	Infeasible:  "INFEASIBLE",
	Unbounded:   "UNBOUNDED",
	SolverError: "SOLVER_ERROR",
}

// String returns the upper-case status name, e.g. "OPTIMAL".
func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}

	return "STATUS" + strconv.Itoa(int(s))
}

// Result is the outcome of a solve.
type Result struct {
	Status    Status
	Objective float64
	// Values is indexed by model.VarID; nil unless Status == Optimal.
	Values []float64
	// Truncated marks an Optimal result returned because a limit fired;
	// the assignment is feasible but optimality is not proven.
	Truncated bool
	Nodes     int
	Elapsed   time.Duration
}

// Value returns the value of column id, or 0 when there is none.
func (r *Result) Value(id model.VarID) float64 {
	if r == nil || id < 0 || int(id) >= len(r.Values) {
		return 0
	}

	return r.Values[id]
}

// ByName maps every column name of m to its value. Returns nil unless the
// result carries values.
func (r *Result) ByName(m *model.Model) map[string]float64 {
	if r == nil || r.Values == nil {
		return nil
	}
	out := make(map[string]float64, len(r.Values))
	for k, v := range r.Values {
		out[m.Name(model.VarID(k))] = v
	}

	return out
}

// Solver solves a model. The call blocks until a terminal status, a limit
// or ctx cancellation.
type Solver interface {
	Solve(ctx context.Context, m *model.Model) (*Result, error)
}
