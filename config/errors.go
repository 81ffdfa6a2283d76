package config

import "errors"

var (
	// ErrInvalid is returned when a loaded configuration fails validation.
	ErrInvalid = errors.New("config: invalid configuration")

	// ErrRead is returned when the configuration file cannot be read.
	ErrRead = errors.New("config: cannot read file")
)
