package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rwa/model"
	"github.com/katalvlaran/rwa/report"
	"github.com/katalvlaran/rwa/solver"
	"github.com/katalvlaran/rwa/topology"
)

// transit builds Line(3,1) with a single 0→2 lightpath routed through 1.
func transit(t *testing.T) (*model.Model, *solver.Result) {
	t.Helper()
	in, err := topology.Line(3, 1)
	require.NoError(t, err)
	m, err := model.Build(in)
	require.NoError(t, err)

	values := make([]float64, m.NumVars())
	set := func(id model.VarID, ok bool) {
		require.True(t, ok)
		values[id] = 1
	}
	set(m.L(0, 2))
	set(m.X(0, 2, 0))
	set(m.R(0, 2, 0, 0, 1))
	set(m.R(0, 2, 0, 1, 2))

	return m, &solver.Result{Status: solver.Optimal, Objective: 1, Values: values, Nodes: 3}
}

func TestLightpaths(t *testing.T) {
	m, res := transit(t)
	lps, err := report.Lightpaths(m, res)
	require.NoError(t, err)
	require.Len(t, lps, 1)
	assert.Equal(t, report.Lightpath{
		Src: 0, Dst: 2, Wavelength: 0,
		Hops: []report.Hop{{From: 0, To: 1}, {From: 1, To: 2}},
	}, lps[0])
	assert.Equal(t, "0->2 w0: 0->1 1->2", lps[0].String())
}

func TestLightpaths_Broken(t *testing.T) {
	m, res := transit(t)
	r, _ := m.R(0, 2, 0, 1, 2)
	res.Values[r] = 0

	_, err := report.Lightpaths(m, res)
	require.ErrorIs(t, err, report.ErrBrokenRoute)
}

func TestLightpaths_Errors(t *testing.T) {
	m, res := transit(t)

	_, err := report.Lightpaths(m, &solver.Result{Status: solver.Infeasible})
	require.ErrorIs(t, err, report.ErrNoValues)

	_, err = report.Lightpaths(m, &solver.Result{Status: solver.Optimal, Values: res.Values[:4]})
	require.ErrorIs(t, err, report.ErrShape)
}

func TestWriteText_NonZero(t *testing.T) {
	m, res := transit(t)
	r, err := report.New(m, res, report.WithRunID("run-1"), report.NonZero())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.WriteText(&buf))
	want := strings.Join([]string{
		"Status: OPTIMAL",
		"Objective: 1",
		"Run: run-1",
		"LPs_0_2 = 1",
		"LPs_on_wl_0_2_0 = 1",
		"phy_topo_route_0_2_0_0_1 = 1",
		"phy_topo_route_0_2_0_1_2 = 1",
		"Lightpaths:",
		"  0->2 w0: 0->1 1->2",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestWriteText_AllVariables(t *testing.T) {
	m, res := transit(t)
	r, err := report.New(m, res)
	require.NoError(t, err)
	require.Len(t, r.Variables, m.NumVars())

	_, err = uuid.Parse(r.RunID)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.WriteText(&buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "Status: OPTIMAL", lines[0])
	assert.Contains(t, lines, "LPs_0_0 = 0")
}

func TestNew_NotOptimal(t *testing.T) {
	m, _ := transit(t)
	r, err := report.New(m, &solver.Result{Status: solver.Infeasible}, report.WithRunID("x"))
	require.NoError(t, err)
	assert.Empty(t, r.Variables)
	assert.Empty(t, r.Lightpaths)

	var buf bytes.Buffer
	require.NoError(t, r.WriteText(&buf))
	assert.Equal(t, "Status: INFEASIBLE\nRun: x\n", buf.String())

	_, err = report.New(m, nil)
	require.ErrorIs(t, err, report.ErrNoValues)
}

func TestWriteYAML(t *testing.T) {
	m, res := transit(t)
	r, err := report.New(m, res, report.WithRunID("run-2"), report.NonZero())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.WriteYAML(&buf))
	out := buf.String()
	assert.Contains(t, out, "run_id: run-2\n")
	assert.Contains(t, out, "status: OPTIMAL\n")
	assert.NotContains(t, out, "truncated")

	var back report.Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, *r, back)
}
