package logging

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels for logr's V.
const (
	INFO  = 0
	DEBUG = 1
	TRACE = 2
)

// ErrUnknownLevel is returned by ParseLevel for unrecognized names.
var ErrUnknownLevel = errors.New("logging: unknown level")

// Levels lists the accepted level names, most verbose first.
var Levels = []string{"trace", "debug", "info", "warn", "error"}

// ParseLevel maps a level name to its zap level. Matching ignores case.
func ParseLevel(name string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return zapcore.Level(-TRACE), nil
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("logging: %q: %w", name, ErrUnknownLevel)
	}
}

// New builds a zap logger writing to stderr and returns its logr view and
// a flush function to call before exit. development selects zap's console
// encoder; otherwise JSON lines are written.
func New(level string, development bool) (logr.Logger, func() error, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return logr.Discard(), func() error { return nil }, err
	}

	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	zl, err := cfg.Build()
	if err != nil {
		return logr.Discard(), func() error { return nil }, fmt.Errorf("logging: build zap logger: %w", err)
	}

	return FromZap(zl), zl.Sync, nil
}

// FromZap adapts an existing zap logger.
func FromZap(zl *zap.Logger) logr.Logger {
	return zapr.NewLogger(zl)
}
