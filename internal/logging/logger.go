// Package logging builds the zap loggers used by earlyreturn.
// Every logger carries the invocation's run ID and a category name; categories
// switched off in config get a no-op logger.
package logging

import (
	"fmt"

	"earlyreturn/internal/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot      Category = "boot"      // CLI startup, config loading
	CategoryConfig    Category = "config"    // config show/init
	CategoryReverse   Category = "reverse"   // string reversal
	CategoryFactorial Category = "factorial" // factorial evaluation
	CategoryDemo      Category = "demo"      // default demo run
)

// Logger hands out per-category zap loggers.
type Logger struct {
	base  *zap.Logger
	cfg   config.LoggingConfig
	runID string
}

// New builds a Logger from cfg. verbose forces debug level.
// Output goes to stderr so stdout carries only results.
func New(cfg config.LoggingConfig, verbose bool) (*Logger, error) {
	zcfg, err := zapConfig(cfg, verbose)
	if err != nil {
		return nil, err
	}

	base, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return Wrap(base, cfg), nil
}

// Wrap attaches a fresh run ID to an existing zap logger.
func Wrap(base *zap.Logger, cfg config.LoggingConfig) *Logger {
	runID := uuid.NewString()
	return &Logger{
		base:  base.With(zap.String("run_id", runID)),
		cfg:   cfg,
		runID: runID,
	}
}

func zapConfig(cfg config.LoggingConfig, verbose bool) (zap.Config, error) {
	var zcfg zap.Config
	switch cfg.Format {
	case "json":
		zcfg = zap.NewProductionConfig()
	case "console", "":
		zcfg = zap.NewDevelopmentConfig()
		zcfg.Development = false
	default:
		return zap.Config{}, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return zap.Config{}, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	zcfg.DisableCaller = !cfg.DebugMode
	zcfg.DisableStacktrace = !cfg.DebugMode
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	return zcfg, nil
}

// For returns the logger for a category.
func (l *Logger) For(cat Category) *zap.Logger {
	if !l.cfg.IsCategoryEnabled(string(cat)) {
		return zap.NewNop()
	}
	return l.base.Named(string(cat))
}

// RunID identifies this invocation in every log line.
func (l *Logger) RunID() string {
	return l.runID
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.base.Sync()
}
