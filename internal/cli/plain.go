// Package cli runs the score screen without a terminal UI: a spinner while
// the score loads, then the numeral counts up line by line on a wall-clock
// ticker.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/briandowns/spinner"

	"github.com/agbru/scorering/internal/animator"
	"github.com/agbru/scorering/internal/config"
	apperrors "github.com/agbru/scorering/internal/errors"
	"github.com/agbru/scorering/internal/format"
	"github.com/agbru/scorering/internal/logging"
	"github.com/agbru/scorering/internal/metrics"
	"github.com/agbru/scorering/internal/presentation"
	"github.com/agbru/scorering/internal/score"
	"github.com/agbru/scorering/internal/service"
	"github.com/agbru/scorering/internal/ticker"
	"github.com/agbru/scorering/internal/ui"
	"github.com/agbru/scorering/internal/viewmodel"
)

// eventBuffer bounds the posted work queued for the loop.
const eventBuffer = 16

// Option configures a plain run.
type Option func(*options)

type options struct {
	logger   logging.Logger
	recorder *metrics.Recorder
}

// WithLogger sets the logger shared by the view models.
func WithLogger(logger logging.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithRecorder reports fetches, states and emissions to r.
func WithRecorder(r *metrics.Recorder) Option {
	return func(o *options) { o.recorder = r }
}

// plainRun is the state owned by the loop goroutine.
type plainRun struct {
	out      io.Writer
	cfg      config.AppConfig
	logger   logging.Logger
	recorder *metrics.Recorder
	spin     Spinner

	events chan func()
	anim   *animator.NumberAnimator
	count  *presentation.NumeralCounter

	data     score.Data
	elapsed  string
	counting bool
	done     bool
	exitCode int
}

// Run fetches one score from svc and prints it to out. It returns an exit
// code: success once the final score line is printed, ExitErrorFetch if
// the fetch failed and ExitErrorCanceled if ctx ended first.
func Run(ctx context.Context, svc service.Fetcher, cfg config.AppConfig, out io.Writer, opts ...Option) int {
	o := options{logger: logging.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.recorder == nil {
		o.recorder = metrics.NewRecorder()
	}

	p := &plainRun{
		out:      out,
		cfg:      cfg,
		logger:   o.logger,
		recorder: o.recorder,
		spin:     newSpinner(spinner.WithWriter(out)),
		events:   make(chan func(), eventBuffer),
		exitCode: apperrors.ExitSuccess,
	}
	post := func(fn func()) {
		select {
		case p.events <- fn:
		case <-ctx.Done():
		}
	}

	periodic := ticker.NewPeriodic(cfg.FrameInterval(), post)
	defer periodic.Stop()
	anim, err := animator.New(periodic)
	if err != nil {
		return apperrors.ExitCodeFor(err)
	}
	anim.Subscribe(p.emitted)
	p.anim = anim
	p.count = presentation.NewNumeralCounter(anim)

	vm := viewmodel.NewScoreViewModel(
		viewmodel.WithAnimated(cfg.Animated()),
		viewmodel.WithLogger(o.logger),
	)
	var home *viewmodel.HomeViewModel
	home = viewmodel.NewHomeViewModel(svc, vm,
		viewmodel.WithContext(ctx),
		viewmodel.WithHomeLogger(o.logger),
		viewmodel.WithLauncher(func(fetch viewmodel.FetchFunc) {
			go func() {
				r := fetch(ctx)
				post(func() { home.Apply(r) })
			}()
		}),
		viewmodel.WithObserver(func(r viewmodel.Result) {
			p.elapsed = format.FormatExecutionDuration(r.Elapsed)
			p.recorder.ObserveFetch(r.Err, r.Elapsed)
		}),
	)
	vm.Subscribe(p.stateChanged)

	home.Refetch()
	return p.loop(ctx)
}

func (p *plainRun) loop(ctx context.Context) int {
	for !p.done {
		select {
		case fn := <-p.events:
			if ctx.Err() != nil {
				// work posted after cancellation, e.g. the aborted fetch
				continue
			}
			fn()
			if p.counting && !p.anim.Running() {
				p.finish()
			}
		case <-ctx.Done():
			p.spin.Stop()
			p.anim.Stop()
			if p.counting {
				fmt.Fprintln(p.out)
			}
			p.logger.Info("plain run canceled", logging.Err(ctx.Err()))
			return apperrors.ExitErrorCanceled
		}
	}
	return p.exitCode
}

func (p *plainRun) stateChanged(st viewmodel.State) {
	labels, loaded := st.Labels()
	p.recorder.ObserveState(st.Kind().String(), loaded, labels.Score(), labels.MaxScore())

	switch st.Kind() {
	case viewmodel.KindLoading:
		p.spin.UpdateSuffix(" " + presentation.LoadingText)
		p.spin.Start()

	case viewmodel.KindLoaded:
		p.spin.Stop()
		p.data = labels.Data
		t := ui.GetCurrentTheme()
		fmt.Fprintf(p.out, "%s%s%s (fetched in %s)\n", t.Bold, presentation.TitleText, t.Reset, p.elapsed)

		if !p.cfg.Animated() {
			p.count.Show(labels.Score())
			p.finish()
			return
		}
		if err := p.count.Count(labels.Score(), p.cfg.CountDuration.Seconds()); err != nil {
			p.logger.Error("configure counter", err, logging.Int("score", labels.Score()))
			p.count.Show(labels.Score())
			p.finish()
			return
		}
		p.count.StartAnimating()
		p.counting = p.anim.Running()
		if !p.counting {
			p.finish()
		}

	case viewmodel.KindFailed:
		p.spin.Stop()
		t := ui.GetCurrentTheme()
		fmt.Fprintf(p.out, "%s%s%s\n", t.Error, presentation.ErrorText, t.Reset)
		p.exitCode = apperrors.ExitErrorFetch
		p.done = true
	}
}

// emitted redraws the score line for each counted value.
func (p *plainRun) emitted(v int) {
	p.recorder.ObserveEmission()
	fmt.Fprintf(p.out, "\r%s", FormatScoreLine(v, p.data))
}

func (p *plainRun) finish() {
	p.counting = false
	fmt.Fprintf(p.out, "\r%s\n", FormatScoreLine(p.data.Score, p.data))
	p.recorder.SetFrame(p.count.Text(), nil)
	p.logger.Info("score shown", logging.Int("score", p.data.Score), logging.Int("max", p.data.MaxScore))
	p.done = true
}
