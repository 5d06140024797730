// This file contains environment variable overrides for configuration.

package config

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v11"

	apperrors "github.com/agbru/scorering/internal/errors"
)

// EnvConfig mirrors the flags that can be set from the environment. A nil
// field means the variable is unset.
type EnvConfig struct {
	URL           *string        `env:"URL"`
	Source        *string        `env:"SOURCE"`
	Timeout       *time.Duration `env:"TIMEOUT"`
	FPS           *float64       `env:"FPS"`
	CountDuration *time.Duration `env:"COUNT_DURATION"`
	NoAnimation   *bool          `env:"NO_ANIMATION"`
	TUI           *bool          `env:"TUI"`
	NoColor       *bool          `env:"NO_COLOR"`
	LogFile       *string        `env:"LOG_FILE"`
	Verbose       *bool          `env:"VERBOSE"`
	MetricsAddr   *string        `env:"METRICS_ADDR"`
}

// LoadEnv decodes the SCORERING_-prefixed environment.
func LoadEnv() (EnvConfig, error) {
	var ec EnvConfig
	if err := env.ParseWithOptions(&ec, env.Options{Prefix: EnvPrefix}); err != nil {
		return EnvConfig{}, apperrors.NewConfigError("parse env: %w", err)
	}
	return ec, nil
}

// isFlagSet checks if a flag was explicitly set on the command line.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// envOverride maps one EnvConfig field to the flag(s) it stands in for.
type envOverride struct {
	flags []string
	apply func(*AppConfig, EnvConfig)
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

var envOverrides = []envOverride{
	{[]string{"url"}, func(c *AppConfig, e EnvConfig) { set(&c.URL, e.URL) }},
	{[]string{"source"}, func(c *AppConfig, e EnvConfig) { set(&c.Source, e.Source) }},
	{[]string{"timeout"}, func(c *AppConfig, e EnvConfig) { set(&c.Timeout, e.Timeout) }},
	{[]string{"fps"}, func(c *AppConfig, e EnvConfig) { set(&c.FPS, e.FPS) }},
	{[]string{"count-duration"}, func(c *AppConfig, e EnvConfig) { set(&c.CountDuration, e.CountDuration) }},
	{[]string{"no-animation"}, func(c *AppConfig, e EnvConfig) { set(&c.NoAnimation, e.NoAnimation) }},
	{[]string{"tui"}, func(c *AppConfig, e EnvConfig) { set(&c.TUI, e.TUI) }},
	{[]string{"no-color"}, func(c *AppConfig, e EnvConfig) { set(&c.NoColor, e.NoColor) }},
	{[]string{"log-file"}, func(c *AppConfig, e EnvConfig) { set(&c.LogFile, e.LogFile) }},
	{[]string{"v", "verbose"}, func(c *AppConfig, e EnvConfig) { set(&c.Verbose, e.Verbose) }},
	{[]string{"metrics-addr"}, func(c *AppConfig, e EnvConfig) { set(&c.MetricsAddr, e.MetricsAddr) }},
}

// applyEnvOverrides applies environment values for any flags that were not
// explicitly set on the command line.
//
// Supported environment variables (all prefixed with SCORERING_):
//   - URL, SOURCE, TIMEOUT, FPS, COUNT_DURATION, NO_ANIMATION, TUI,
//     NO_COLOR, LOG_FILE, VERBOSE, METRICS_ADDR
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) error {
	ec, err := LoadEnv()
	if err != nil {
		return err
	}
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		o.apply(config, ec)
	}
	return nil
}
