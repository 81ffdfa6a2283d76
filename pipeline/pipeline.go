package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"

	"github.com/katalvlaran/rwa/config"
	"github.com/katalvlaran/rwa/logging"
	"github.com/katalvlaran/rwa/metrics"
	"github.com/katalvlaran/rwa/model"
	"github.com/katalvlaran/rwa/report"
	"github.com/katalvlaran/rwa/solver"
	"github.com/katalvlaran/rwa/topology"
)

// Deps are the collaborators of Run. Zero values are usable: a discarding
// logger, no metrics, a BranchAndBound configured from the Config and
// io.Discard as output.
type Deps struct {
	Log     logr.Logger
	Metrics *metrics.Registry
	Solver  solver.Solver
	Out     io.Writer
}

// Outcome is everything one run produced.
type Outcome struct {
	RunID  string
	Model  *model.Model
	Result *solver.Result
	Report *report.Report
}

// LoadInstance reads path, or returns the reference instance when path is
// empty.
func LoadInstance(path string) (*topology.Instance, error) {
	if path == "" {
		return topology.Default(), nil
	}
	in, err := topology.Load(path)
	if err != nil {
		return nil, fmt.Errorf("pipeline: load: %w", err)
	}

	return in, nil
}

// BuildModel loads the configured instance and builds its model.
func BuildModel(cfg *config.Config) (*model.Model, error) {
	in, err := LoadInstance(cfg.Instance)
	if err != nil {
		return nil, err
	}
	m, err := model.Build(in, model.WithSelfDemands(cfg.SelfDemands))
	if err != nil {
		return nil, fmt.Errorf("pipeline: build: %w", err)
	}

	return m, nil
}

// SolverOptions translates the solver section of a validated Config.
func SolverOptions(c config.SolverConfig, log logr.Logger) []solver.Option {
	return []solver.Option{
		solver.WithTimeLimit(c.TimeLimit),
		solver.WithNodeLimit(c.NodeLimit),
		solver.WithTolerance(c.Tolerance),
		solver.WithLogger(log),
	}
}

// Run executes load, build, solve and report for cfg.
func Run(ctx context.Context, cfg *config.Config, deps Deps) (*Outcome, error) {
	if deps.Log.GetSink() == nil {
		deps.Log = logr.Discard()
	}
	if deps.Out == nil {
		deps.Out = io.Discard
	}
	out := &Outcome{RunID: uuid.New().String()}
	log := deps.Log.WithValues("run", out.RunID)

	in, err := LoadInstance(cfg.Instance)
	if err != nil {
		return out, err
	}
	if pairs, err := in.Unroutable(); err == nil && len(pairs) > 0 {
		log.V(logging.DEBUG).Info("demands without any route", "count", len(pairs), "pairs", fmt.Sprint(pairs))
	}

	start := time.Now()
	m, err := model.Build(in, model.WithSelfDemands(cfg.SelfDemands))
	if err != nil {
		return out, fmt.Errorf("pipeline: build: %w", err)
	}
	out.Model = m
	stats := m.Stats()
	if deps.Metrics != nil {
		deps.Metrics.RecordModel(stats, time.Since(start))
	}
	log.Info("model built",
		"nodes", m.Nodes(),
		"wavelengths", m.Wavelengths(),
		"variables", m.NumVars(),
		"constraints", m.NumConstraints(),
		"nonzeros", stats.Nonzeros)

	if cfg.Output.LPFile != "" {
		if err := writeFile(cfg.Output.LPFile, m.WriteLP); err != nil {
			return out, fmt.Errorf("pipeline: write lp: %w", err)
		}
		log.Info("model written", "file", cfg.Output.LPFile)
	}

	s := deps.Solver
	if s == nil {
		s = solver.New(SolverOptions(cfg.Solver, log)...)
	}
	res, err := s.Solve(ctx, m)
	if res != nil && deps.Metrics != nil {
		deps.Metrics.RecordSolve(res)
	}
	if err != nil {
		log.Error(err, "solve failed")
		return out, fmt.Errorf("pipeline: solve: %w", err)
	}
	out.Result = res
	log.Info("solve finished",
		"status", res.Status.String(),
		"objective", res.Objective,
		"nodes", res.Nodes,
		"elapsed", res.Elapsed.String())

	opts := []report.Option{report.WithRunID(out.RunID)}
	if cfg.Output.NonZero {
		opts = append(opts, report.NonZero())
	}
	rep, err := report.New(m, res, opts...)
	if err != nil {
		return out, fmt.Errorf("pipeline: report: %w", err)
	}
	out.Report = rep
	if deps.Metrics != nil {
		deps.Metrics.RecordLightpaths(len(rep.Lightpaths))
	}

	if cfg.Output.Format == "yaml" {
		err = rep.WriteYAML(deps.Out)
	} else {
		err = rep.WriteText(deps.Out)
	}
	if err != nil {
		return out, fmt.Errorf("pipeline: write report: %w", err)
	}

	if cfg.Output.MetricsFile != "" && deps.Metrics != nil {
		if err := writeFile(cfg.Output.MetricsFile, deps.Metrics.WriteText); err != nil {
			return out, fmt.Errorf("pipeline: write metrics: %w", err)
		}
	}

	return out, nil
}

// writeFile creates path and streams write into it.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return write(f)
}
