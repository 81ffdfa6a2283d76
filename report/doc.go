// Package report turns a solved RWA model into a human- or machine-readable
// summary.
//
// New assembles a Report from a model and a solver.Result: the status, the
// objective, one Assignment per column in model order and the decoded
// lightpaths. A report for a non-optimal result carries only the status.
//
// Lightpaths decodes a solution into routed lightpaths by walking the R
// segments of every active (i,j,w) from i until j is reached. Self fibers
// (m == n) carry no hop and are skipped.
//
// Output formats:
//
//	WriteText  "Status: OPTIMAL", then "name = value" per column, then the
//	           routed lightpaths
//	WriteYAML  the Report encoded with gopkg.in/yaml.v3
//
// Every report has a RunID (a random UUID unless WithRunID is given) so
// text, YAML and log lines of one run can be correlated.
package report
