// Package pipeline runs one RWA job end to end: load the instance, build
// the model, solve it and report the result.
//
// The stages run strictly in sequence. Only the solve may block for long;
// it receives the caller's context and is never retried. Infeasible and
// unbounded outcomes are reported, not returned as errors; solver failures
// are returned wrapped so errors.Is(err, solver.ErrSolver) holds.
//
// Every run gets a random UUID that tags its log lines and its report.
package pipeline
