// Package tui hosts the score screen in a bubbletea program. All view model,
// ring, animator and coordinator calls happen inside Update, which makes
// the bubbletea loop the single owner of presentation state.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/scorering/internal/animator"
	"github.com/agbru/scorering/internal/config"
	apperrors "github.com/agbru/scorering/internal/errors"
	"github.com/agbru/scorering/internal/logging"
	"github.com/agbru/scorering/internal/metrics"
	"github.com/agbru/scorering/internal/presentation"
	"github.com/agbru/scorering/internal/ring"
	"github.com/agbru/scorering/internal/service"
	"github.com/agbru/scorering/internal/shape"
	"github.com/agbru/scorering/internal/sysmon"
	"github.com/agbru/scorering/internal/ticker"
	"github.com/agbru/scorering/internal/ui"
	"github.com/agbru/scorering/internal/viewmodel"
)

// Layout constants for the score screen.
const (
	headerHeight  = 1
	footerHeight  = 1
	minBodyHeight = 6
	ringStroke    = 2.0
	maxRingRadius = 24.0
	statsInterval = 500 * time.Millisecond
)

// LayoutManager holds terminal dimensions.
type LayoutManager struct {
	width  int
	height int
}

// bodyHeight returns the height left for the ring and stats panel.
func (l LayoutManager) bodyHeight() int {
	return max(l.height-headerHeight-footerHeight, minBodyHeight)
}

// session holds the presentation objects. Copies of Model share one
// session, the same way they share the bubbletea program.
type session struct {
	score    *viewmodel.ScoreViewModel
	home     *viewmodel.HomeViewModel
	ring     *ring.Ring
	driven   *ticker.Driven
	counter  *presentation.NumeralCounter
	coord    *presentation.Coordinator
	queue    *launchQueue
	recorder *metrics.Recorder

	state      viewmodel.State
	view       presentation.ViewState
	entered    []viewmodel.State
	lastAction string
}

// Option configures a Model.
type Option func(*options)

type options struct {
	logger   logging.Logger
	recorder *metrics.Recorder
}

// WithLogger sets the logger shared by the view models and coordinator.
func WithLogger(logger logging.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithRecorder reports screen activity to r.
func WithRecorder(r *metrics.Recorder) Option {
	return func(o *options) { o.recorder = r }
}

// Model is the root bubbletea model for the score screen.
type Model struct {
	header HeaderModel
	stats  StatsModel
	footer FooterModel
	keymap KeyMap

	*session
	LayoutManager

	parentCtx context.Context
	ctx       context.Context
	cancel    context.CancelFunc
	interval  time.Duration
	logger    logging.Logger
	exitCode  int
}

// NewModel wires a score screen fetching from svc.
func NewModel(parentCtx context.Context, svc service.Fetcher, cfg config.AppConfig, version string, opts ...Option) (Model, error) {
	o := options{logger: logging.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.recorder == nil {
		o.recorder = metrics.NewRecorder()
	}

	ctx, cancel := context.WithCancel(parentCtx)
	interval := cfg.FrameInterval()
	s := &session{
		ring:     ring.New(),
		driven:   ticker.NewDriven(interval),
		queue:    newLaunchQueue(ctx),
		recorder: o.recorder,
	}

	anim, err := animator.New(s.driven)
	if err != nil {
		cancel()
		return Model{}, err
	}
	anim.Subscribe(func(int) { s.recorder.ObserveEmission() })
	s.counter = presentation.NewNumeralCounter(anim)

	s.score = viewmodel.NewScoreViewModel(
		viewmodel.WithAnimated(cfg.Animated()),
		viewmodel.WithLogger(o.logger),
	)
	s.home = viewmodel.NewHomeViewModel(svc, s.score,
		viewmodel.WithLauncher(s.queue.Launch),
		viewmodel.WithContext(ctx),
		viewmodel.WithHomeLogger(o.logger),
		viewmodel.WithObserver(func(r viewmodel.Result) { s.recorder.ObserveFetch(r.Err, r.Elapsed) }),
	)
	s.coord = presentation.New(s.ring, s.counter, s.score,
		presentation.WithLogger(o.logger),
		presentation.WithPalette(ringPalette()),
		presentation.WithCountDuration(cfg.CountDuration.Seconds()),
		presentation.WithObserver(func(a presentation.Action, st ring.Strategy) {
			s.lastAction = a.String()
			s.recorder.ObserveAction(a.String(), st.Key())
		}),
	)
	s.ring.OnAnimationEnd(func(string) { s.coord.AnimationFinished() })
	s.score.Subscribe(func(st viewmodel.State) {
		s.state = st
		s.view = s.coord.StateChanged(st)
		s.entered = append(s.entered, st)
		labels, loaded := st.Labels()
		s.recorder.ObserveState(st.Kind().String(), loaded, labels.Score(), labels.MaxScore())
	})

	keymap := DefaultKeyMap()
	m := Model{
		header:    NewHeaderModel(version),
		stats:     NewStatsModel(interval),
		footer:    NewFooterModel(keymap),
		keymap:    keymap,
		session:   s,
		parentCtx: parentCtx,
		ctx:       ctx,
		cancel:    cancel,
		interval:  interval,
		logger:    o.logger,
		exitCode:  apperrors.ExitSuccess,
	}
	m.sync()
	return m, nil
}

// Init starts the first fetch and the frame, stats and context watchers.
func (m Model) Init() tea.Cmd {
	m.home.Refetch()
	return tea.Batch(
		frameCmd(m.interval),
		statsTickCmd(),
		m.queue.Drain(),
		watchContextCmd(m.ctx),
	)
}

// Update is the only place presentation state changes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutPanels()
		return m, nil

	case frameMsg:
		now := time.Time(msg)
		m.stats.ObserveFrame(now)
		m.ring.Advance(now)
		m.driven.Deliver(now)
		m.sync()
		m.recorder.SetFrame(m.counter.Text(), m.ring.Active())
		return m, tea.Batch(frameCmd(m.interval), m.queue.Drain())

	case fetchResultMsg:
		m.home.Apply(msg.Result)
		m.sync()
		return m, m.queue.Drain()

	case statsTickMsg:
		m.stats.UpdateMemory(metrics.ReadRuntime())
		m.stats.UpdateSystem(sysmon.Sample())
		return m, statsTickCmd()

	case contextCancelledMsg:
		// Quitting cancels ctx too; only an outside cancellation is an error.
		if m.parentCtx.Err() != nil {
			m.exitCode = apperrors.ExitErrorCanceled
		}
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.footer.ToggleHelp()
		return m, nil

	case key.Matches(msg, m.keymap.Retry):
		if !m.view.ShowRetry {
			return m, nil
		}
		m.score.Retry()
		m.sync()
		return m, m.queue.Drain()
	}

	return m, nil
}

// sync folds view model transitions and ring changes into the panels.
func (m *Model) sync() {
	for _, st := range m.entered {
		if st.Kind() == viewmodel.KindLoading {
			m.header.Reset()
		} else {
			m.header.SetDone()
		}
		m.footer.SetState(st.Kind())
	}
	m.entered = nil
	m.stats.SetAnimations(m.ring.Active())
	m.stats.SetLastAction(m.lastAction)
}

func (m *Model) layoutPanels() {
	m.header.SetWidth(m.width)
	m.footer.SetWidth(m.width)
	m.stats.SetWidth(m.width)
}

// View renders the whole screen.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	header := m.header.View()
	footer := m.footer.View()
	stats := m.stats.View()
	body := m.renderScore(max(m.bodyHeight()-lipgloss.Height(stats), minBodyHeight))

	return lipgloss.JoinVertical(lipgloss.Left, header, body, stats, footer)
}

// renderScore draws the ring with the numeral and caption beneath it,
// centered in a width x height area.
func (m Model) renderScore(height int) string {
	text := m.scoreText()
	ringRows := max(height-len(text)-1, 2)
	radius := min(shape.RadiusFor(m.width, ringRows, ringStroke), maxRingRadius)

	pres := m.ring.Presentation()
	lines := shape.Render(shape.Ring{
		Radius:      radius,
		StrokeWidth: ringStroke,
		Start:       pres.StrokeStart,
		End:         pres.StrokeEnd,
		Scale:       pres.Scale,
		StrokeColor: ui.ParseColor(pres.Color),
		TrackColor:  ringTrackColor,
	})
	lines = append(lines, "")
	lines = append(lines, text...)

	block := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, block)
}

func (m Model) scoreText() []string {
	switch {
	case m.view.ShowScore:
		return []string{
			numeralStyle.Render(m.counter.Text()),
			captionStyle.Render(m.view.Caption),
		}
	case m.view.ShowRetry:
		return []string{
			errorTextStyle.Render(m.view.Caption),
			captionStyle.Render("press r to retry"),
		}
	default:
		return []string{captionStyle.Render(m.view.Caption), ""}
	}
}

// Run shows the score screen on the alternate screen until the user quits
// or ctx ends, and returns the exit code.
func Run(ctx context.Context, svc service.Fetcher, cfg config.AppConfig, version string, opts ...Option) int {
	// The theme may have changed since package init.
	initTUIStyles()

	model, err := NewModel(ctx, svc, cfg, version, opts...)
	if err != nil {
		return apperrors.ExitCodeFor(err)
	}
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		model.logger.Error("tui exited", err)
		return apperrors.ExitErrorGeneric
	}

	if m, ok := finalModel.(Model); ok {
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// frameCmd schedules the next animation frame.
func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// statsTickCmd schedules the next memory sample.
func statsTickCmd() tea.Cmd {
	return tea.Tick(statsInterval, func(t time.Time) tea.Msg {
		return statsTickMsg(t)
	})
}

// watchContextCmd reports the end of the screen context.
func watchContextCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return contextCancelledMsg{Err: ctx.Err()}
	}
}
