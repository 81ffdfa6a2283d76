package model

import "errors"

// Sentinel errors for model construction and lookups. Instance validation
// failures are returned wrapped and still match the topology sentinels.
var (
	// ErrUnknownVariable indicates a VarID outside [0, NumVars).
	ErrUnknownVariable = errors.New("model: unknown variable")

	// ErrDuplicateConstraint indicates two constraints with the same identifier.
	ErrDuplicateConstraint = errors.New("model: duplicate constraint identifier")

	// ErrInvalidExtension indicates an extension with an empty name or a
	// constraint that references unknown variables or non-finite numbers.
	ErrInvalidExtension = errors.New("model: invalid extension")
)
