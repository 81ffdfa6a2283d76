package model_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rwa/model"
	"github.com/katalvlaran/rwa/topology"
)

func TestWriteLP_Line(t *testing.T) {
	in, err := topology.Line(2, 1)
	require.NoError(t, err)
	m := mustBuild(t, in)

	var buf bytes.Buffer
	require.NoError(t, m.WriteLP(&buf))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, `\* RWA: 2 nodes, 1 wavelengths *\`+"\nMaximize\n"))
	assert.Contains(t, out, " obj: LPs_0_0 + LPs_0_1 + LPs_1_0 + LPs_1_1\n")
	assert.Contains(t, out, "Subject To\n")
	assert.Contains(t, out, " transmitters_0: LPs_0_0 + LPs_0_1 <= 1\n")
	assert.Contains(t, out, " receivers_1: LPs_0_1 + LPs_1_1 <= 1\n")
	assert.Contains(t, out, " wavelength_split_0_1: LPs_on_wl_0_1_0 - LPs_0_1 = 0\n")
	assert.Contains(t, out, " fiber_capacity_0_0_1:")
	assert.Contains(t, out, "Generals\n  LPs_0_0 LPs_0_1 LPs_1_0 LPs_1_1\n")
	assert.Contains(t, out, "Binaries\n")
	assert.True(t, strings.HasSuffix(out, "End\n"))
	assert.NotContains(t, out, "__dummy")
	assert.NotContains(t, out, "Bounds")

	// One row per constraint.
	rows := 0
	for _, c := range m.Constraints() {
		if strings.Contains(out, " "+c.ID.Name()+":") {
			rows++
		}
	}
	assert.Equal(t, m.NumConstraints(), rows)
}

func TestWriteLP_EmptyExpressions(t *testing.T) {
	in, err := topology.Empty(1, 1)
	require.NoError(t, err)
	m := mustBuild(t, in, model.WithSelfDemands(false))
	require.Zero(t, m.NumVars())

	var buf bytes.Buffer
	require.NoError(t, m.WriteLP(&buf))
	out := buf.String()

	assert.Contains(t, out, " obj: 0 __dummy\n")
	assert.Contains(t, out, " transmitters_0: 0 __dummy <= 1\n")
	assert.Contains(t, out, "Bounds\n __dummy = 0\n")
	assert.NotContains(t, out, "Generals")
	assert.NotContains(t, out, "Binaries")
}

func TestWriteLP_Wraps(t *testing.T) {
	m := mustBuild(t, mesh(t, 3, 1))

	var buf bytes.Buffer
	require.NoError(t, m.WriteLP(&buf))
	// The 9-term objective spills onto a continuation line.
	assert.Contains(t, buf.String(), " obj: LPs_0_0 + LPs_0_1 + LPs_0_2 + LPs_1_0 + LPs_1_1 + LPs_1_2 + LPs_2_0 + LPs_2_1\n   + LPs_2_2\n")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteLP_WriterError(t *testing.T) {
	m := mustBuild(t, mesh(t, 2, 1))
	require.EqualError(t, m.WriteLP(failingWriter{}), "disk full")
}
