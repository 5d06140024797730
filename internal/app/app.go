// Package app wires configuration, logging, tracing, the score fetcher and
// the chosen front end (terminal UI or plain output) into one run.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/scorering/internal/cli"
	"github.com/agbru/scorering/internal/config"
	apperrors "github.com/agbru/scorering/internal/errors"
	"github.com/agbru/scorering/internal/logging"
	"github.com/agbru/scorering/internal/metrics"
	"github.com/agbru/scorering/internal/server"
	"github.com/agbru/scorering/internal/service"
	"github.com/agbru/scorering/internal/telemetry"
	"github.com/agbru/scorering/internal/tui"
	"github.com/agbru/scorering/internal/ui"
)

const (
	serviceName       = "scorering"
	telemetryShutdown = 5 * time.Second
)

// Application represents the scorering application instance.
type Application struct {
	Config    config.AppConfig
	Fetcher   service.Fetcher
	Recorder  *metrics.Recorder
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFetcher replaces the fetcher chosen by --source.
func WithFetcher(f service.Fetcher) AppOption {
	return func(a *Application) { a.Fetcher = f }
}

// WithRecorder sets the metrics recorder shared by the UI and the debug
// server.
func WithRecorder(r *metrics.Recorder) AppOption {
	return func(a *Application) { a.Recorder = r }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Recorder == nil {
		app.Recorder = metrics.NewRecorder()
	}

	programName := serviceName
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	return app, nil
}

// Run executes the application and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.ShowVersion {
		PrintVersion(out)
		return apperrors.ExitSuccess
	}

	ui.InitTheme(a.Config.NoColor)

	logger, closeLog, err := a.newLogger()
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Configuration error: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	defer closeLog()

	shutdown, err := telemetry.Setup(ctx, serviceName, Version)
	if err != nil {
		logger.Warn("tracing disabled", logging.Err(err))
	} else {
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), telemetryShutdown)
			defer cancel()
			if err := shutdown(sctx); err != nil {
				logger.Error("flush traces", err)
			}
		}()
	}

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	fetcher := a.Fetcher
	if fetcher == nil {
		fetcher = newFetcher(a.Config, logger)
	}
	logger.Info("starting",
		logging.String("source", a.Config.Source),
		logging.Bool("tui", a.Config.TUI),
		logging.Bool("animated", a.Config.Animated()),
	)

	return a.runWithServer(ctx, fetcher, logger, out)
}

// runWithServer runs the front end and, when --metrics-addr is set, the
// debug server alongside it. The server stops when the front end returns.
func (a *Application) runWithServer(ctx context.Context, fetcher service.Fetcher, logger logging.Logger, out io.Writer) int {
	uiCtx, cancelUI := context.WithCancel(ctx)
	defer cancelUI()
	g, gctx := errgroup.WithContext(uiCtx)

	code := apperrors.ExitSuccess
	g.Go(func() error {
		defer cancelUI()
		code = a.runFrontEnd(gctx, fetcher, logger, out)
		return nil
	})
	if a.Config.MetricsAddr != "" {
		srv := server.New(a.Config.MetricsAddr, a.Recorder, server.WithLogger(logger))
		g.Go(func() error { return srv.Run(gctx) })
	}

	if err := g.Wait(); err != nil {
		logger.Error("debug server failed", err, logging.String("addr", a.Config.MetricsAddr))
		fmt.Fprintf(a.ErrWriter, "debug server: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return code
}

func (a *Application) runFrontEnd(ctx context.Context, fetcher service.Fetcher, logger logging.Logger, out io.Writer) int {
	if a.Config.TUI {
		return tui.Run(ctx, fetcher, a.Config, Version,
			tui.WithLogger(logger),
			tui.WithRecorder(a.Recorder),
		)
	}
	return cli.Run(ctx, fetcher, a.Config, out,
		cli.WithLogger(logger),
		cli.WithRecorder(a.Recorder),
	)
}

// newLogger picks the log destination: --log-file when set, otherwise
// stderr in plain mode. The terminal UI owns the screen, so it logs nowhere
// without a file.
func (a *Application) newLogger() (logging.Logger, func(), error) {
	level := zerolog.InfoLevel
	if a.Config.Verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	var w io.Writer = a.ErrWriter
	closeFn := func() {}
	switch {
	case a.Config.LogFile != "":
		f, err := os.OpenFile(a.Config.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, apperrors.WrapError(err, "open log file %s", a.Config.LogFile)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	case a.Config.TUI:
		w = io.Discard
	}
	return logging.NewLogger(w, serviceName), closeFn, nil
}

// newFetcher builds the fetcher named by --source.
func newFetcher(cfg config.AppConfig, logger logging.Logger) service.Fetcher {
	switch cfg.Source {
	case config.SourceStub:
		return service.Stub()
	case config.SourceFailing:
		return service.Failing()
	case config.SourceLoading:
		return service.Never()
	case config.SourceStubDelay:
		return service.Delayed(service.Stub(), service.StubDelay)
	case config.SourceFailingDelay:
		return service.Delayed(service.Failing(), service.FailingDelay)
	default:
		return service.NewLive(cfg.URL,
			service.WithTimeout(cfg.Timeout),
			service.WithLogger(logger),
		)
	}
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
