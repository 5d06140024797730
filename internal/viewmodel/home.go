package viewmodel

import (
	"context"
	"time"

	"github.com/agbru/scorering/internal/logging"
	"github.com/agbru/scorering/internal/score"
	"github.com/agbru/scorering/internal/service"
)

// Result is the outcome of one fetch.
type Result struct {
	Data    score.Data
	Err     error
	Elapsed time.Duration
}

// FetchFunc performs one fetch. It may block and may run on any goroutine.
type FetchFunc func(ctx context.Context) Result

// Launcher schedules fetch and arranges for its Result to reach Apply on
// the goroutine that owns the view models.
type Launcher func(fetch FetchFunc)

// HomeViewModel connects a Fetcher to a ScoreViewModel. Overlapping fetches
// are not deduplicated: whichever result is applied last wins.
type HomeViewModel struct {
	service service.Fetcher
	score   *ScoreViewModel
	logger  logging.Logger
	ctx     context.Context
	launch  Launcher
	observe func(Result)
}

// HomeOption configures a HomeViewModel.
type HomeOption func(*HomeViewModel)

// WithLauncher makes fetches asynchronous. Without it, FetchScore fetches
// and applies the result before returning.
func WithLauncher(l Launcher) HomeOption {
	return func(h *HomeViewModel) { h.launch = l }
}

// WithContext sets the context retries are issued under.
func WithContext(ctx context.Context) HomeOption {
	return func(h *HomeViewModel) { h.ctx = ctx }
}

// WithHomeLogger attaches a logger.
func WithHomeLogger(logger logging.Logger) HomeOption {
	return func(h *HomeViewModel) { h.logger = logger }
}

// WithObserver registers fn to see every applied Result.
func WithObserver(fn func(Result)) HomeOption {
	return func(h *HomeViewModel) { h.observe = fn }
}

// NewHomeViewModel wires svc to vm. Retrying from vm re-issues the fetch.
func NewHomeViewModel(svc service.Fetcher, vm *ScoreViewModel, opts ...HomeOption) *HomeViewModel {
	h := &HomeViewModel{
		service: svc,
		score:   vm,
		logger:  logging.Nop(),
		ctx:     context.Background(),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.launch == nil {
		h.launch = func(fetch FetchFunc) { h.Apply(fetch(h.ctx)) }
	}
	vm.OnRetry(h.Refetch)
	return h
}

// Service returns the fetcher.
func (h *HomeViewModel) Service() service.Fetcher { return h.service }

// ScoreViewModel returns the view model results are applied to.
func (h *HomeViewModel) ScoreViewModel() *ScoreViewModel { return h.score }

// FetchScore starts a fetch under ctx.
func (h *HomeViewModel) FetchScore(ctx context.Context) {
	h.launch(func(context.Context) Result { return h.Fetch(ctx) })
}

// Refetch starts a fetch under the view model's own context.
func (h *HomeViewModel) Refetch() {
	h.launch(h.Fetch)
}

// Fetch calls the service and times it. It does not touch any view state.
func (h *HomeViewModel) Fetch(ctx context.Context) Result {
	start := time.Now()
	data, err := h.service.Fetch(ctx)
	return Result{Data: data, Err: err, Elapsed: time.Since(start)}
}

// Apply maps a Result onto the score view model.
func (h *HomeViewModel) Apply(r Result) {
	if h.observe != nil {
		h.observe(r)
	}
	if r.Err != nil {
		h.logger.Error("score fetch failed", r.Err, logging.Float64("elapsed_ms", float64(r.Elapsed.Milliseconds())))
		h.score.Failed()
		return
	}
	h.logger.Info("score loaded",
		logging.Int("score", r.Data.Score),
		logging.Int("max", r.Data.MaxScore),
		logging.Float64("elapsed_ms", float64(r.Elapsed.Milliseconds())),
	)
	h.score.Loaded(r.Data)
}
