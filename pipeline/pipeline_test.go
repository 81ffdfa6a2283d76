package pipeline_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/rwa/config"
	"github.com/katalvlaran/rwa/logging"
	"github.com/katalvlaran/rwa/metrics"
	"github.com/katalvlaran/rwa/model"
	"github.com/katalvlaran/rwa/pipeline"
	"github.com/katalvlaran/rwa/solver"
	"github.com/katalvlaran/rwa/topology"
)

type stubSolver struct {
	res *solver.Result
	err error
}

func (s stubSolver) Solve(context.Context, *model.Model) (*solver.Result, error) {
	return s.res, s.err
}

// lineConfig writes Line(2,1) to a temp file and returns a config for it.
func lineConfig(t *testing.T) *config.Config {
	t.Helper()
	in, err := topology.Line(2, 1)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "line.yaml")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, topology.Encode(f, in))
	require.NoError(t, f.Close())

	return &config.Config{
		Instance:    path,
		SelfDemands: true,
		Solver:      config.SolverConfig{Tolerance: solver.DefaultTolerance},
		Output:      config.OutputConfig{Format: "text", NonZero: true},
		Log:         config.LogConfig{Level: "info"},
	}
}

func TestRun(t *testing.T) {
	cfg := lineConfig(t)
	reg := metrics.NewRegistry()
	var out bytes.Buffer

	o, err := pipeline.Run(context.Background(), cfg, pipeline.Deps{Metrics: reg, Out: &out})
	require.NoError(t, err)
	require.NotNil(t, o.Result)
	assert.Equal(t, solver.Optimal, o.Result.Status)
	assert.InDelta(t, 2, o.Result.Objective, 1e-9)

	_, err = uuid.Parse(o.RunID)
	require.NoError(t, err)
	assert.Equal(t, o.RunID, o.Report.RunID)
	assert.Len(t, o.Report.Lightpaths, 2)

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "Status: OPTIMAL\nObjective: 2\n"), text)
	assert.Contains(t, text, "Run: "+o.RunID)
	assert.Contains(t, text, "0->1 w0: 0->1")
}

func TestRun_YAMLAndFiles(t *testing.T) {
	cfg := lineConfig(t)
	dir := t.TempDir()
	cfg.Output.Format = "yaml"
	cfg.Output.LPFile = filepath.Join(dir, "model.lp")
	cfg.Output.MetricsFile = filepath.Join(dir, "metrics.prom")
	var out bytes.Buffer

	_, err := pipeline.Run(context.Background(), cfg, pipeline.Deps{Metrics: metrics.NewRegistry(), Out: &out})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "status: OPTIMAL\n")

	lp, err := os.ReadFile(cfg.Output.LPFile)
	require.NoError(t, err)
	assert.Contains(t, string(lp), "Maximize")

	prom, err := os.ReadFile(cfg.Output.MetricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(prom), "rwa_lightpaths_routed")
}

func TestRun_DefaultInstance(t *testing.T) {
	m, err := pipeline.BuildModel(&config.Config{SelfDemands: true})
	require.NoError(t, err)
	assert.Equal(t, 4032, m.NumVars())

	in, err := pipeline.LoadInstance("")
	require.NoError(t, err)
	assert.Equal(t, topology.Default(), in)
}

func TestRun_MissingInstance(t *testing.T) {
	cfg := lineConfig(t)
	cfg.Instance = filepath.Join(t.TempDir(), "absent.yaml")

	o, err := pipeline.Run(context.Background(), cfg, pipeline.Deps{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pipeline: load")
	assert.Nil(t, o.Model)
}

func TestRun_Infeasible(t *testing.T) {
	cfg := lineConfig(t)
	var out bytes.Buffer
	s := stubSolver{res: &solver.Result{Status: solver.Infeasible, Nodes: 1}}

	o, err := pipeline.Run(context.Background(), cfg, pipeline.Deps{Solver: s, Out: &out})
	require.NoError(t, err)
	assert.Equal(t, solver.Infeasible, o.Result.Status)
	assert.Empty(t, o.Report.Variables)
	assert.True(t, strings.HasPrefix(out.String(), "Status: INFEASIBLE\n"))
}

func TestRun_SolverError(t *testing.T) {
	cfg := lineConfig(t)
	boom := errors.New("boom")
	s := stubSolver{res: &solver.Result{Status: solver.SolverError}, err: errors.Join(solver.ErrSolver, boom)}

	core, logs := observer.New(zap.InfoLevel)
	o, err := pipeline.Run(context.Background(), cfg, pipeline.Deps{
		Log:     logging.FromZap(zap.New(core)),
		Metrics: metrics.NewRegistry(),
		Solver:  s,
	})
	require.ErrorIs(t, err, solver.ErrSolver)
	require.ErrorIs(t, err, boom)
	assert.NotNil(t, o.Model)
	assert.Nil(t, o.Report)
	assert.Equal(t, 1, logs.FilterMessage("solve failed").Len())
}

func TestRun_Cancelled(t *testing.T) {
	cfg := lineConfig(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pipeline.Run(ctx, cfg, pipeline.Deps{})
	require.ErrorIs(t, err, solver.ErrSolver)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRun_LogsRunID(t *testing.T) {
	cfg := lineConfig(t)
	core, logs := observer.New(zap.InfoLevel)

	o, err := pipeline.Run(context.Background(), cfg, pipeline.Deps{Log: logging.FromZap(zap.New(core))})
	require.NoError(t, err)

	built := logs.FilterMessage("model built").All()
	require.Len(t, built, 1)
	assert.Equal(t, o.RunID, built[0].ContextMap()["run"])
	assert.Equal(t, int64(2), built[0].ContextMap()["nodes"])
}
