// ============================================================================
// exfc - Exception Registry
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating foundation loggers from config
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	exfclog "github.com/msto63/exfc/foundation/core/log"
	"github.com/msto63/exfc/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Service name
	ServiceName string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format
	Format string // "json" or "text" (default: text)

	// Output writer (default: stderr)
	Output io.Writer

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer

	// CorrelationID is stamped on every entry when set
	CorrelationID string

	EnableCaller bool
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "warn",
		Format:      "text",
	}
}

// FromGeneral derives a logger configuration from the general config section
func FromGeneral(serviceName string, general config.GeneralConfig) LoggerConfig {
	cfg := DefaultLoggerConfig(serviceName)
	if general.LogLevel != "" {
		cfg.Level = general.LogLevel
	}
	if general.LogFormat != "" {
		cfg.Format = general.LogFormat
	}
	return cfg
}

// NewLogger creates a new foundation logger
func NewLogger(cfg LoggerConfig) *exfclog.Logger {
	level, err := exfclog.ParseLevel(cfg.Level)
	if err != nil {
		level = exfclog.DefaultLevel()
	}

	format, err := exfclog.ParseFormat(cfg.Format)
	if err != nil {
		format = exfclog.FormatText
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	logger := exfclog.NewWithConfig(exfclog.Config{
		Level:        level,
		Format:       format,
		Output:       output,
		Name:         cfg.ServiceName,
		EnableCaller: cfg.EnableCaller,
	})

	if cfg.CorrelationID != "" {
		logger = logger.WithCorrelationID(cfg.CorrelationID)
	}
	return logger
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(serviceName string) *exfclog.Logger {
	return NewLogger(DefaultLoggerConfig(serviceName))
}

// Discard returns a logger that drops everything
func Discard() *exfclog.Logger {
	return exfclog.NewWithConfig(exfclog.Config{
		Level:  exfclog.LevelFatal + 1,
		Output: io.Discard,
	})
}

// Fields converts key-value pairs to log fields. Non-string keys are skipped.
func Fields(keysAndValues ...interface{}) exfclog.Fields {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make(exfclog.Fields)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
