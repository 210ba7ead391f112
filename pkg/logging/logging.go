// Package logging builds the process logger. The terminal UI owns stdout and
// stderr, so logs always go to a file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures New.
type Options struct {
	// Level is a zap level name; empty means info.
	Level string
	// File is the log file path. Empty means no logging at all.
	File string
	// Verbose forces the debug level.
	Verbose bool
}

// New builds a production (JSON) logger writing to opts.File.
func New(opts Options) (*zap.Logger, error) {
	if opts.File == "" {
		return zap.NewNop(), nil
	}

	level := zapcore.InfoLevel
	if opts.Level != "" {
		l, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		level = l
	}
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0o750); err != nil {
		return nil, fmt.Errorf("logging: create dir: %w", err)
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.OutputPaths = []string{opts.File}
	config.ErrorOutputPaths = []string{opts.File}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build: %w", err)
	}

	return logger, nil
}
