package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/rwa/logging"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		name string
		want zapcore.Level
	}{
		{"trace", zapcore.Level(-2)},
		{"DEBUG", zapcore.DebugLevel},
		{"", zapcore.InfoLevel},
		{" info ", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
	}
	for _, tc := range cases {
		got, err := logging.ParseLevel(tc.name)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.want, got, tc.name)
	}

	_, err := logging.ParseLevel("loud")
	require.ErrorIs(t, err, logging.ErrUnknownLevel)
}

func TestNew(t *testing.T) {
	log, sync, err := logging.New("debug", true)
	require.NoError(t, err)
	assert.True(t, log.V(logging.DEBUG).Enabled())
	assert.False(t, log.V(logging.TRACE).Enabled())
	_ = sync()

	_, _, err = logging.New("nope", false)
	require.ErrorIs(t, err, logging.ErrUnknownLevel)
}

func TestFromZap_Verbosity(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := logging.FromZap(zap.New(core))

	log.Info("shown", "k", 1)
	log.V(logging.DEBUG).Info("hidden")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "shown", entry.Message)
	assert.Equal(t, int64(1), entry.ContextMap()["k"])
}
