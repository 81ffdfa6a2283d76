// Package rwa builds and solves the mixed-integer model of the routing and
// wavelength assignment problem on an optical network.
//
// Given a network of N nodes, W wavelengths, per-node transmitter and
// receiver budgets and a per-fiber, per-wavelength capacity tensor, the
// model maximizes the number of established lightpaths. Every lightpath
// keeps one wavelength end to end and is routed over fibers that have
// capacity on that wavelength.
//
// Layout:
//
//	topology/  instance data, layouts, YAML codec, reachability
//	model/     variable arenas, constraint families, LP writer, extensions
//	solver/    in-process LP-based branch and bound
//	report/    result rendering and lightpath reconstruction
//	traffic/   request matrices per security level
//	pipeline/  load, build, solve and report as one run
//	config/    flags, environment and file configuration
//	logging/   zap-backed logr loggers
//	metrics/   Prometheus model and solver metrics
//	cmd/rwa/   command-line entry point
//
// Quick start:
//
//	in := topology.Default()
//	m, err := model.Build(in)
//	if err != nil {
//		return err
//	}
//	res, err := solver.New(solver.WithTimeLimit(time.Minute)).Solve(ctx, m)
package rwa
