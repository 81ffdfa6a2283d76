// SPDX-License-Identifier: MIT

package solver

import (
	"time"

	"github.com/go-logr/logr"
)

// Option configures a BranchAndBound solver. Option constructors panic on
// meaningless values.
type Option func(*options)

type options struct {
	timeLimit time.Duration // 0 means none
	nodeLimit int           // 0 means none
	tol       float64       // integrality and feasibility tolerance
	log       logr.Logger
}

// Defaults.
const (
	DefaultTolerance = 1e-6

	// lpTol is handed to the simplex; it is tighter than the integrality
	// tolerance so rounding noise does not trigger spurious branching.
	lpTol = 1e-10
)

// WithTimeLimit bounds wall-clock time. Panics on d < 0; 0 disables.
func WithTimeLimit(d time.Duration) Option {
	if d < 0 {
		panic("solver: WithTimeLimit(d<0)")
	}
	return func(o *options) { o.timeLimit = d }
}

// WithNodeLimit bounds the number of LP relaxations solved. Panics on
// n < 0; 0 disables.
func WithNodeLimit(n int) Option {
	if n < 0 {
		panic("solver: WithNodeLimit(n<0)")
	}
	return func(o *options) { o.nodeLimit = n }
}

// WithTolerance sets the integrality and feasibility tolerance. Panics
// unless 0 < tol < 0.5.
func WithTolerance(tol float64) Option {
	if !(tol > 0 && tol < 0.5) {
		panic("solver: WithTolerance(tol outside (0, 0.5))")
	}
	return func(o *options) { o.tol = tol }
}

// WithLogger routes search progress to log. Incumbents and the final
// summary are logged at V(logging.DEBUG).
func WithLogger(log logr.Logger) Option {
	return func(o *options) { o.log = log }
}

func newOptions(opts ...Option) options {
	o := options{tol: DefaultTolerance, log: logr.Discard()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
