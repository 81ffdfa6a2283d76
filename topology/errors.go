package topology

import "errors"

// Sentinel errors. Callers branch with errors.Is; context (parameter name
// and index) is attached with %w at the detection site.
var (
	// ErrNoNodes indicates a node count below one.
	ErrNoNodes = errors.New("topology: node count must be >= 1")

	// ErrNoWavelengths indicates a wavelength count below one.
	ErrNoWavelengths = errors.New("topology: wavelength count must be >= 1")

	// ErrShapeMismatch indicates an array whose length disagrees with N or W.
	ErrShapeMismatch = errors.New("topology: shape mismatch")

	// ErrNegativeCapacity indicates a negative transmitter, receiver or fiber capacity.
	ErrNegativeCapacity = errors.New("topology: negative capacity")

	// ErrNodeOutOfRange indicates a node index outside [0, N).
	ErrNodeOutOfRange = errors.New("topology: node index out of range")

	// ErrWavelengthOutOfRange indicates a wavelength index outside [0, W).
	ErrWavelengthOutOfRange = errors.New("topology: wavelength index out of range")

	// ErrDuplicateFiber indicates the same directed fiber listed twice in a file.
	ErrDuplicateFiber = errors.New("topology: duplicate fiber")

	// ErrTooFewNodes indicates a constructor parameter below its minimum (e.g. Ring with n < 3).
	ErrTooFewNodes = errors.New("topology: too few nodes for layout")
)
