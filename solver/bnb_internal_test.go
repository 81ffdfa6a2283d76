package solver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/rwa/model"
	"github.com/katalvlaran/rwa/topology"
)

// mustModel builds the model of a layout constructor's result.
func mustModel(t *testing.T, layout func() (*topology.Instance, error)) *model.Model {
	t.Helper()
	in, err := layout()
	require.NoError(t, err)
	m, err := model.Build(in)
	require.NoError(t, err)

	return m
}

func TestFirstFit_Line(t *testing.T) {
	m := mustModel(t, func() (*topology.Instance, error) { return topology.Line(3, 1) })
	x := firstFit(m)
	require.NotNil(t, x)
	id, ok := m.Feasible(x, 1e-9)
	require.True(t, ok, "violates %s", id)
	assert.Equal(t, 3.0, m.Objective().Eval(x))

	// 2→0 is the only route left on the single wavelength: through node 1.
	at := func(id model.VarID, ok bool) float64 {
		require.True(t, ok)
		return x[id]
	}
	assert.Equal(t, 1.0, at(m.R(2, 0, 0, 2, 1)))
	assert.Equal(t, 1.0, at(m.R(2, 0, 0, 1, 0)))
}

func TestFirstFit_Default(t *testing.T) {
	m, err := model.Build(topology.Default())
	require.NoError(t, err)
	x := firstFit(m)
	_, ok := m.Feasible(x, 1e-9)
	require.True(t, ok)
	// Every node spends its four transmitters.
	assert.Equal(t, 24.0, m.Objective().Eval(x))
}

func TestFirstFit_NoFibers(t *testing.T) {
	assert.Nil(t, firstFit(mustModel(t, func() (*topology.Instance, error) { return topology.Empty(3, 2) })))
}

// blockingLP parks every relaxation until release is closed and signals
// entry on entered.
func blockingLP(entered chan<- struct{}, release <-chan struct{}) func(*problem, []float64, []float64, float64) (relaxation, error) {
	return func(p *problem, lo, hi []float64, tol float64) (relaxation, error) {
		select {
		case entered <- struct{}{}:
		default:
		}
		<-release
		return p.relax(lo, hi, tol)
	}
}

// FullMesh(2,1) with three transceivers: first fit routes two lightpaths
// but the row bound says six, so the root LP must run.
func openGap(t *testing.T) *model.Model {
	t.Helper()
	return mustModel(t, func() (*topology.Instance, error) {
		return topology.FullMesh(2, 1, topology.WithTransceivers(3))
	})
}

func TestSolve_CancelInterruptsRelaxation(t *testing.T) {
	defer goleak.VerifyNone(t)
	release := make(chan struct{})
	defer close(release)
	entered := make(chan struct{}, 1)

	s := New()
	s.lp = blockingLP(entered, release)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		<-entered
		cancel()
	}()

	res, err := s.Solve(ctx, openGap(t))
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, err, ErrSolver)
	assert.Equal(t, SolverError, res.Status)
	assert.Equal(t, 1, res.Nodes)
}

func TestSolve_TimeLimitInterruptsRelaxation(t *testing.T) {
	defer goleak.VerifyNone(t)
	release := make(chan struct{})
	defer close(release)

	s := New(WithTimeLimit(20 * time.Millisecond))
	s.lp = blockingLP(make(chan struct{}, 1), release)

	res, err := s.Solve(context.Background(), openGap(t))
	require.NoError(t, err)
	assert.Equal(t, Optimal, res.Status)
	assert.True(t, res.Truncated)
	assert.Equal(t, 2.0, res.Objective)
	assert.Less(t, res.Elapsed, 10*time.Second)
}
