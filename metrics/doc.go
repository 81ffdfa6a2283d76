// Package metrics exposes Prometheus instruments for model building and
// solving.
//
// A Registry owns a private prometheus.Registry; nothing is registered on
// the global default. Callers record through the Record* helpers and may
// dump the current values in the text exposition format with WriteText,
// which is how the command line implements --metrics-out.
package metrics
