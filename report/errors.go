package report

import "errors"

var (
	// ErrNoValues is returned when lightpaths are requested from a result
	// that carries no variable values.
	ErrNoValues = errors.New("report: result has no values")

	// ErrBrokenRoute is returned when the R segments of an active
	// lightpath do not form a walk from its source to its destination.
	ErrBrokenRoute = errors.New("report: route does not reach destination")

	// ErrShape is returned when the result does not match the model.
	ErrShape = errors.New("report: result does not match model")
)
