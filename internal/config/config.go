// Package config parses the command line and environment into an AppConfig.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net/url"
	"os"
	"time"

	"golang.org/x/term"

	apperrors "github.com/agbru/scorering/internal/errors"
	"github.com/agbru/scorering/internal/service"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "SCORERING_"

// Score sources selectable with --source.
const (
	SourceLive         = "live"
	SourceStub         = "stub"
	SourceFailing      = "failing"
	SourceLoading      = "loading"
	SourceStubDelay    = "stub-delay"
	SourceFailingDelay = "failing-delay"
)

// Sources lists every valid --source value.
var Sources = []string{SourceLive, SourceStub, SourceFailing, SourceLoading, SourceStubDelay, SourceFailingDelay}

// Defaults.
const (
	DefaultTimeout       = 10 * time.Second
	DefaultFPS           = 30
	DefaultCountDuration = time.Second
	maxFPS               = 240
)

// AppConfig holds the resolved application settings.
type AppConfig struct {
	URL           string
	Source        string
	Timeout       time.Duration
	FPS           float64
	CountDuration time.Duration
	NoAnimation   bool
	TUI           bool
	NoColor       bool
	LogFile       string
	Verbose       bool
	MetricsAddr   string
	ShowVersion   bool
}

// Animated reports whether ring and numeral changes are animated.
func (c AppConfig) Animated() bool { return !c.NoAnimation }

// FrameInterval returns the time between frames.
func (c AppConfig) FrameInterval() time.Duration {
	return time.Duration(float64(time.Second) / c.FPS)
}

// stdoutIsTerminal decides the --tui default.
var stdoutIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// ParseConfig parses args (without the program name) and applies
// environment overrides for flags not set explicitly. Priority: CLI flags >
// environment > defaults.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	config := AppConfig{}
	fs.StringVar(&config.URL, "url", service.DefaultURL, "Score endpoint used by the live source.")
	fs.StringVar(&config.Source, "source", SourceLive, "Score source: live, stub, failing, loading, stub-delay or failing-delay.")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Timeout for one score fetch.")
	fs.Float64Var(&config.FPS, "fps", DefaultFPS, "Animation frame rate.")
	fs.DurationVar(&config.CountDuration, "count-duration", DefaultCountDuration, "Time the numeral takes to count up to the score.")
	fs.BoolVar(&config.NoAnimation, "no-animation", false, "Show the final ring and score without animating.")
	fs.BoolVar(&config.TUI, "tui", stdoutIsTerminal(), "Run the interactive terminal UI (default when stdout is a terminal).")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colors.")
	fs.StringVar(&config.LogFile, "log-file", "", "Write logs to this file. In TUI mode logs are discarded when unset.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Enable debug logging.")
	fs.BoolVar(&config.Verbose, "v", false, "Shorthand for --verbose.")
	fs.StringVar(&config.MetricsAddr, "metrics-addr", "", "Serve /metrics, /healthz and /state on this address.")
	fs.BoolVar(&config.ShowVersion, "version", false, "Print the version and exit.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return AppConfig{}, err
		}
		return AppConfig{}, apperrors.ConfigError{Message: err.Error(), Err: err}
	}

	if err := applyEnvOverrides(&config, fs); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		return AppConfig{}, err
	}

	if err := config.Validate(); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		return AppConfig{}, err
	}
	return config, nil
}

// Validate checks the configuration for semantic errors.
func (c AppConfig) Validate() error {
	if c.FPS <= 0 || c.FPS > maxFPS {
		return apperrors.ValidationError{Field: "fps", Message: fmt.Sprintf("must be in (0, %d]", maxFPS)}
	}
	if c.CountDuration < 0 {
		return apperrors.ValidationError{Field: "count-duration", Message: "must not be negative"}
	}
	if c.Timeout <= 0 {
		return apperrors.ValidationError{Field: "timeout", Message: "must be positive"}
	}
	if !validSource(c.Source) {
		return apperrors.ValidationError{Field: "source", Message: fmt.Sprintf("unknown source %q", c.Source)}
	}
	if c.Source == SourceLive {
		u, err := url.Parse(c.URL)
		if err != nil {
			return apperrors.ValidationError{Field: "url", Message: "cannot parse", Err: err}
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return apperrors.ValidationError{Field: "url", Message: fmt.Sprintf("%q is not an http(s) URL", c.URL)}
		}
	}
	return nil
}

func validSource(s string) bool {
	for _, v := range Sources {
		if s == v {
			return true
		}
	}
	return false
}
