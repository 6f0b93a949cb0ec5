// Package logging builds the zap logger used across the server.
package logging

import (
	"go.uber.org/zap"
)

// Config holds logging configuration
type Config struct {
	Level       string `json:"level"`
	Format      string `json:"format"` // "json" or "console"
	OutputPath  string `json:"output_path"`
	Development bool   `json:"development"`
}

// New creates a structured logger. An unparsable level falls back to info.
func New(config Config) (*zap.Logger, error) {
	var zapConfig zap.Config

	if config.Development {
		zapConfig = zap.NewDevelopmentConfig()
	} else {
		zapConfig = zap.NewProductionConfig()
	}

	level, err := zap.ParseAtomicLevel(config.Level)
	if err != nil {
		level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	zapConfig.Level = level

	if config.Format == "console" {
		zapConfig.Encoding = "console"
	} else {
		zapConfig.Encoding = "json"
	}

	if config.OutputPath != "" {
		zapConfig.OutputPaths = []string{config.OutputPath}
	}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}
	return logger.With(zap.String("service", "component-creator")), nil
}

// Fallback returns a production logger for use before configuration is
// available, or a no-op logger if even that cannot be built.
func Fallback() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
