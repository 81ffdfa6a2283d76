// Package config loads run configuration.
//
// Sources, highest precedence first: command-line flags that were set,
// RWA_-prefixed environment variables (dots become underscores, so
// solver.node_limit is RWA_SOLVER_NODE_LIMIT), an optional YAML file and
// the defaults below. Loading is done with github.com/spf13/viper; the
// result is checked with github.com/go-playground/validator/v10 struct
// tags and rejected with ErrInvalid on the first violation.
//
// Defaults:
//
//	instance              ""        (built-in six-node reference instance)
//	self_demands          true
//	solver.time_limit     0         (none)
//	solver.node_limit     0         (none)
//	solver.tolerance      1e-6
//	output.format         text
//	output.non_zero       false
//	output.lp_file        ""
//	output.metrics_file   ""
//	log.level             info
//	log.development       false
package config
