package solver

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/rwa/logging"
	"github.com/katalvlaran/rwa/model"
)

// BranchAndBound solves models in process with LP-based branch and bound.
// It is stateless between calls and safe for concurrent use.
type BranchAndBound struct {
	opts options

	// lp replaces (*problem).relax when set.
	lp func(p *problem, lo, hi []float64, tol float64) (relaxation, error)
}

// New returns a BranchAndBound configured by opts.
func New(opts ...Option) *BranchAndBound {
	return &BranchAndBound{opts: newOptions(opts...)}
}

// bbEngine holds the state of one search.
type bbEngine struct {
	// Problem and policy
	p           *problem
	m           *model.Model
	lp          func(lo, hi []float64) (relaxation, error)
	tol         float64
	feasTol     float64
	integralObj bool
	log         logr.Logger

	// Limits
	nodeLimit   int
	useDeadline bool
	deadline    time.Time
	nodes       int

	// Incumbent
	found   bool
	best    []float64
	bestObj float64

	// Termination causes; the first one set wins.
	stop      error
	err       error
	unbounded bool
}

// halted reports whether the search must unwind.
func (e *bbEngine) halted() bool { return e.stop != nil || e.err != nil || e.unbounded }

// checkLimits is called before every node.
func (e *bbEngine) checkLimits(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if e.nodeLimit > 0 && e.nodes >= e.nodeLimit {
		return ErrLimitReached
	}
	if e.useDeadline && !time.Now().Before(e.deadline) {
		return ErrLimitReached
	}

	return nil
}

// objectiveIntegral reports whether every feasible point has an integral
// objective: all objective columns integer with integral coefficients.
func (e *bbEngine) objectiveIntegral() bool {
	for j, c := range e.p.obj {
		if c == 0 {
			continue
		}
		if !e.p.integer[j] || c != math.Trunc(c) {
			return false
		}
	}

	return true
}

// bound returns the best objective any descendant of a node with LP value
// obj can reach.
func (e *bbEngine) bound(obj float64) float64 {
	if e.integralObj {
		return math.Floor(obj + e.tol)
	}

	return obj
}

// branchVar picks the most fractional integer column, lowest index on
// ties. Returns -1 when x is integral.
func (e *bbEngine) branchVar(x []float64) int {
	pick, score := -1, e.tol
	for j, v := range x {
		if !e.p.integer[j] {
			continue
		}
		f := v - math.Floor(v)
		if s := math.Min(f, 1-f); s > score {
			pick, score = j, s
		}
	}

	return pick
}

// commit rounds the integer columns of x and records it as the incumbent
// when it is feasible and strictly better.
func (e *bbEngine) commit(x []float64, source string) {
	x = append([]float64(nil), x...)
	var obj float64
	for j := range x {
		if e.p.integer[j] {
			x[j] = math.Round(x[j])
		}
		obj += e.p.obj[j] * x[j]
	}
	if e.found && obj <= e.bestObj+e.tol {
		return
	}
	if id, ok := e.m.Feasible(x, e.feasTol); !ok {
		e.log.V(logging.TRACE).Info("rounded point rejected", "source", source, "row", id.String())
		return
	}
	e.found, e.best, e.bestObj = true, x, obj
	e.log.V(logging.DEBUG).Info("new incumbent", "source", source, "objective", obj, "nodes", e.nodes)
}

// seed tries the all-lower-bound assignment and a first-fit routing plan.
func (e *bbEngine) seed() {
	e.commit(e.p.lo, "seed")
	if x := firstFit(e.m); x != nil {
		e.commit(x, "first fit")
	}
}

// relax solves the relaxation of one node. The LP runs on its own
// goroutine so that cancellation and the deadline interrupt it; an
// abandoned solve finishes in the background and its result is dropped.
func (e *bbEngine) relax(ctx context.Context, lo, hi []float64) (relaxation, error) {
	type outcome struct {
		rel relaxation
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		rel, err := e.lp(lo, hi)
		done <- outcome{rel: rel, err: err}
	}()

	var expired <-chan time.Time
	if e.useDeadline {
		timer := time.NewTimer(time.Until(e.deadline))
		defer timer.Stop()
		expired = timer.C
	}

	select {
	case o := <-done:
		return o.rel, o.err
	case <-ctx.Done():
		return relaxation{}, ctx.Err()
	case <-expired:
		return relaxation{}, ErrLimitReached
	}
}

// search solves the node bounded by lo, hi and recurses up branch first.
func (e *bbEngine) search(ctx context.Context, lo, hi []float64) {
	if e.halted() {
		return
	}
	if err := e.checkLimits(ctx); err != nil {
		e.stop = err
		return
	}
	e.nodes++

	if e.found && e.bound(e.p.rowBound(lo, hi)) <= e.bestObj+e.tol {
		return
	}
	rel, err := e.relax(ctx, lo, hi)
	if err != nil {
		if errors.Is(err, ErrLimitReached) || ctx.Err() != nil {
			e.stop = err
		} else {
			e.err = err
		}
		return
	}
	switch rel.status {
	case Infeasible:
		return
	case Unbounded:
		e.unbounded = true
		return
	}
	if e.found && e.bound(rel.obj) <= e.bestObj+e.tol {
		return
	}

	j := e.branchVar(rel.x)
	if j < 0 {
		e.commit(rel.x, "relaxation")
		return
	}
	v := rel.x[j]

	up := append([]float64(nil), lo...)
	up[j] = math.Ceil(v)
	e.search(ctx, up, hi)

	down := append([]float64(nil), hi...)
	down[j] = math.Floor(v)
	e.search(ctx, lo, down)
}

// Solve runs branch and bound on m.
//
// Contract:
//   - Infeasible and Unbounded return with a nil error.
//   - Engine failures and ctx cancellation return SolverError and an error
//     wrapping ErrSolver (and ctx.Err() when cancelled).
//   - A limit with an incumbent returns Optimal with Truncated set.
//   - Cancellation and the time limit also interrupt a running LP
//     relaxation; Solve returns without waiting for it.
//   - On Optimal, Values holds one entry per column and satisfies
//     m.Feasible within the tolerance times the largest row mass Σ|a|.
func (s *BranchAndBound) Solve(ctx context.Context, m *model.Model) (*Result, error) {
	start := time.Now()
	if m == nil {
		return &Result{Status: SolverError}, fmt.Errorf("%w: %w", ErrSolver, ErrNilModel)
	}
	p, err := newProblem(m)
	if err != nil {
		return &Result{Status: SolverError}, err
	}

	e := bbEngine{
		p:         p,
		m:         m,
		tol:       s.opts.tol,
		feasTol:   s.opts.tol * p.rowScale,
		log:       s.opts.log,
		nodeLimit: s.opts.nodeLimit,
	}
	tol := s.opts.tol
	e.lp = func(lo, hi []float64) (relaxation, error) { return p.relax(lo, hi, tol) }
	if s.lp != nil {
		e.lp = func(lo, hi []float64) (relaxation, error) { return s.lp(p, lo, hi, tol) }
	}
	e.integralObj = e.objectiveIntegral()
	if s.opts.timeLimit > 0 {
		e.useDeadline = true
		e.deadline = start.Add(s.opts.timeLimit)
	}

	e.seed()
	e.search(ctx, p.lo, p.hi)

	res := &Result{Nodes: e.nodes, Elapsed: time.Since(start)}
	err = nil
	switch {
	case e.err != nil:
		res.Status, err = SolverError, e.err
	case e.stop != nil && !errors.Is(e.stop, ErrLimitReached):
		res.Status, err = SolverError, fmt.Errorf("%w: %w", ErrSolver, e.stop)
	case e.unbounded:
		res.Status = Unbounded
	case e.stop != nil && !e.found:
		res.Status, err = SolverError, fmt.Errorf("%w: %w", ErrSolver, ErrLimitReached)
	case !e.found:
		res.Status = Infeasible
	default:
		res.Status = Optimal
		res.Truncated = e.stop != nil
		res.Values = e.best
		res.Objective = m.Objective().Eval(e.best)
	}

	e.log.V(logging.DEBUG).Info("branch and bound finished",
		"status", res.Status.String(),
		"objective", res.Objective,
		"nodes", res.Nodes,
		"truncated", res.Truncated,
		"elapsed", res.Elapsed)

	return res, err
}
