// Package config provides sensorgrid configuration loaded from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "SENSORGRID"

// LogFormat is the log output format.
type LogFormat string

// Supported log formats.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// Config holds the defaults for every command. Flags override these values.
type Config struct {
	// Row is the row inspected by the count command.
	// Env: SENSORGRID_ROW (default: 2000000)
	Row int `envconfig:"ROW" default:"2000000"`

	// Bound is the side of the square searched by the locate command.
	// Env: SENSORGRID_BOUND (default: 4000000)
	Bound int `envconfig:"BOUND" default:"4000000"`

	// Multiplier encodes the located cell as x*multiplier + y.
	// Env: SENSORGRID_MULTIPLIER (default: 4000000)
	Multiplier int64 `envconfig:"MULTIPLIER" default:"4000000"`

	// Parallel is the number of workers used by the locate command.
	// Env: SENSORGRID_PARALLEL (default: 1)
	Parallel int `envconfig:"PARALLEL" default:"1"`

	// Reports is the directory reports are saved to. Empty disables saving.
	// Env: SENSORGRID_REPORTS
	Reports string `envconfig:"REPORTS"`

	// Output selects the renderer (auto, plain or styled).
	// Env: SENSORGRID_OUTPUT (default: auto)
	Output string `envconfig:"OUTPUT" default:"auto"`

	// LogLevel is the log verbosity level.
	// Env: SENSORGRID_LOG_LEVEL (default: info)
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// LogFormat is the log output format (pretty or json).
	// Env: SENSORGRID_LOG_FORMAT (default: pretty)
	LogFormat LogFormat `envconfig:"LOG_FORMAT" default:"pretty"`
}

// Default returns the configuration used when the environment sets nothing.
func Default() Config {
	return Config{
		Row:        2000000,
		Bound:      4000000,
		Multiplier: 4000000,
		Parallel:   1,
		Output:     "auto",
		LogLevel:   "info",
		LogFormat:  LogFormatPretty,
	}
}

// Load builds the configuration from, lowest precedence first, the defaults,
// the dotEnv file, the environment and the envFile. dotEnv may be missing;
// envFile, when set, must exist.
func Load(dotEnv, envFile string) (Config, error) {
	if err := LoadDotEnv(dotEnv); err != nil {
		return Config{}, err
	}

	if envFile != "" {
		if err := OverloadDotEnv(envFile); err != nil {
			return Config{}, err
		}
	}

	return FromEnv()
}

// FromEnv reads the configuration from the environment only.
func FromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("process env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the values commands cannot work with.
func (c Config) Validate() error {
	if c.Bound < 0 {
		return fmt.Errorf("bound must not be negative, got %d", c.Bound)
	}

	if c.Multiplier <= 0 {
		return fmt.Errorf("multiplier must be positive, got %d", c.Multiplier)
	}

	if c.Parallel < 1 {
		return fmt.Errorf("parallel must be at least 1, got %d", c.Parallel)
	}

	switch c.LogFormat {
	case LogFormatPretty, LogFormatJSON:
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}

	return nil
}
