package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rwa/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(config.New(), "")
	require.NoError(t, err)

	assert.Empty(t, cfg.Instance)
	assert.True(t, cfg.SelfDemands)
	assert.Zero(t, cfg.Solver.TimeLimit)
	assert.Zero(t, cfg.Solver.NodeLimit)
	assert.Equal(t, 1e-6, cfg.Solver.Tolerance)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rwa.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
instance: net.yaml
self_demands: false
solver:
  time_limit: 30s
  node_limit: 500
output:
  format: yaml
  non_zero: true
log:
  level: debug
`), 0o600))

	cfg, err := config.Load(config.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "net.yaml", cfg.Instance)
	assert.False(t, cfg.SelfDemands)
	assert.Equal(t, 30*time.Second, cfg.Solver.TimeLimit)
	assert.Equal(t, 500, cfg.Solver.NodeLimit)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.True(t, cfg.Output.NonZero)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("RWA_SOLVER_NODE_LIMIT", "7")
	t.Setenv("RWA_OUTPUT_FORMAT", "yaml")
	t.Setenv("RWA_SELF_DEMANDS", "false")

	cfg, err := config.Load(config.New(), "")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Solver.NodeLimit)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.False(t, cfg.SelfDemands)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("RWA_LOG_LEVEL", "warn")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--log-level=trace", "--time-limit=2m", "--non-zero"}))

	v := config.New()
	require.NoError(t, config.BindFlags(v, fs))
	cfg, err := config.Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, "trace", cfg.Log.Level)
	assert.Equal(t, 2*time.Minute, cfg.Solver.TimeLimit)
	assert.True(t, cfg.Output.NonZero)
	assert.Equal(t, "text", cfg.Output.Format)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"RWA_OUTPUT_FORMAT":     "xml",
		"RWA_LOG_LEVEL":         "loud",
		"RWA_SOLVER_TOLERANCE":  "0.7",
		"RWA_SOLVER_NODE_LIMIT": "-1",
	}
	for env, value := range cases {
		t.Run(env, func(t *testing.T) {
			t.Setenv(env, value)
			_, err := config.Load(config.New(), "")
			require.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(config.New(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, config.ErrRead)
}
