// Package logging builds the zap logger shared by the tracker and its CLI.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options controls logger construction
type Options struct {
	Verbose bool
	// OutputPaths defaults to stderr so log lines never mix with command output.
	OutputPaths []string
}

// DebugEnabled returns true if debug mode is enabled via HT_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv("HT_DEBUG") != ""
}

// Level returns the level implied by the options and HT_DEBUG
func Level(opts Options) zapcore.Level {
	if opts.Verbose || DebugEnabled() {
		return zapcore.DebugLevel
	}
	return zapcore.WarnLevel
}

// New builds a console-encoded production logger
func New(opts Options) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Level = zap.NewAtomicLevelAt(Level(opts))
	cfg.DisableStacktrace = true
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if len(opts.OutputPaths) > 0 {
		cfg.OutputPaths = opts.OutputPaths
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// OrNop returns logger, or a no-op logger when it is nil
func OrNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
