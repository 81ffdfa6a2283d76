// Package logging builds the process logger.
//
// Library packages log through github.com/go-logr/logr and never construct
// a backend themselves. The command line builds a go.uber.org/zap logger
// with New and hands the logr view to the packages that accept one.
//
// Verbosity follows logr: V(INFO) is always on at level "info", V(DEBUG)
// needs "debug" and V(TRACE) needs "trace". zapr maps V(n) to zap level -n.
package logging
