// Package config loads runtime settings from defaults, an optional YAML
// file, CCC_ environment variables and command line flags.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const (
	DefaultWorkbook  = "./bauteil-database.xlsx"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"

	// DefaultConfigFile is read when present and no --config is given.
	DefaultConfigFile = "ccc.yaml"

	// FlagConfig names the flag holding the config file path.
	FlagConfig = "config"

	envPrefix = "CCC_"
)

// Config holds the settings the server needs at startup.
type Config struct {
	Workbook  string `koanf:"workbook"`
	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`
}

// RegisterFlags adds the catalog flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("workbook", DefaultWorkbook, "path to the component workbook (.xlsx)")
	fs.String("log-level", DefaultLogLevel, "log level (debug, info, warn, error)")
	fs.String("log-format", DefaultLogFormat, "log format (console or json)")
	fs.String(FlagConfig, "", "path to a YAML config file (default ./"+DefaultConfigFile+" if present)")
}

// Load merges configuration sources.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"workbook":   DefaultWorkbook,
		"log_level":  DefaultLogLevel,
		"log_format": DefaultLogFormat,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	if path := findConfigFile(cfgFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	// 3. Environment: CCC_LOG_LEVEL -> log_level
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags, only those set explicitly
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || f.Name == FlagConfig {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if cfg.Workbook == "" {
		return nil, fmt.Errorf("workbook path must not be empty")
	}
	return &cfg, nil
}

// findConfigFile returns the explicit path, or the default file when it
// exists in the working directory.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return DefaultConfigFile
	}
	return ""
}
