// Package solver is the adapter between an RWA model and a MILP engine.
//
// A Solver receives an immutable *model.Model and returns a Result with one
// of four terminal statuses:
//
//	Optimal      a value for every column is present in Result.Values
//	Infeasible   no assignment satisfies the constraints
//	Unbounded    the LP relaxation is unbounded
//	SolverError  the engine failed; the returned error wraps ErrSolver
//
// Infeasible and Unbounded are legitimate answers and come back with a nil
// error. They are never retried or relaxed.
//
// BranchAndBound is the in-process engine. Each node solves an LP
// relaxation with gonum's simplex (gonum.org/v1/gonum/optimize/convex/lp)
// after converting the node to standard form:
//
//  1. Implied upper bounds are derived from rows with non-negative
//     coefficients, so a zero-capacity fiber fixes its R columns at zero
//     and transmitters(i) bounds L[i][*].
//  2. Variables are shifted to their lower bound; fixed variables become
//     constants. Inequalities get slack columns, finite upper bounds that
//     no row implies get an explicit bound row.
//  3. A presolve drops linearly dependent rows (flow conservation is rank
//     deficient by construction) and reports inconsistent rows as
//     infeasibility. Empty columns are dropped or flag unboundedness.
//
// Search is depth first with most-fractional branching, up branch first.
// When every objective coefficient is integral on integer columns the node
// bound is floored before pruning. The all-lower-bound assignment seeds
// the incumbent when it is feasible, which holds for every core RWA model.
//
// Limits: the context is checked between nodes. A time or node limit that
// fires with an incumbent yields Optimal with Truncated set; without one
// the call fails with ErrLimitReached. A single LP solve is not
// interruptible.
//
// Complexity: exponential in the number of integer columns in the worst
// case; each node costs one dense simplex over the reduced standard form.
// Use it for small instances and tests; hand WriteLP output to an external
// solver for production-sized networks.
package solver
