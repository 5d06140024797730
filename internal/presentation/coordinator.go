package presentation

//go:generate mockgen -destination=mocks/presentation.go -package=mocks . RingController,Counter

import (
	"github.com/agbru/scorering/internal/logging"
	"github.com/agbru/scorering/internal/ring"
	"github.com/agbru/scorering/internal/viewmodel"
)

// RingController is the part of the ring the coordinator drives.
type RingController interface {
	Add(s ring.Strategy)
	Remove(s ring.Strategy)
	RemoveAll()
	SetPercentageComplete(p float64)
	SetStrokeColor(color string)
	Idle() bool
}

// Counter is the numeral that counts up to a loaded score.
type Counter interface {
	// Count prepares a count from zero to target over duration seconds.
	Count(target int, duration float64) error
	// Show displays value without animating.
	Show(value int)
	// Settle leaves value on screen once any count toward it has finished.
	Settle(value int)
	StartAnimating()
}

// StateSource is the view model the coordinator reads.
type StateSource interface {
	State() viewmodel.State
	PercentageComplete() float64
	Animated() bool
}

// Palette holds the ring stroke colors.
type Palette struct {
	Neutral string
	Alert   string
}

// DefaultPalette is white for normal states and red for failure.
var DefaultPalette = Palette{Neutral: "#FFFFFF", Alert: "#E5484D"}

// Screen captions.
const (
	TitleText   = "Score"
	LoadingText = "Calculating Score..."
	ErrorText   = "Failed to load score, retry?"
)

// ViewState is what the score screen shows for a state.
type ViewState struct {
	ShowLoading bool
	ShowScore   bool
	ShowRetry   bool
	Caption     string
	StrokeColor string
}

// Coordinator chooses ring animations. It remembers the state it saw at the
// previous completion so an unchanged state is never animated twice. It is
// not safe for concurrent use.
type Coordinator struct {
	ring          RingController
	counter       Counter
	source        StateSource
	logger        logging.Logger
	palette       Palette
	countDuration float64
	observe       func(Action, ring.Strategy)

	last    viewmodel.State
	hasLast bool
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithLogger attaches a logger.
func WithLogger(logger logging.Logger) Option {
	return func(c *Coordinator) { c.logger = logger }
}

// WithPalette replaces DefaultPalette.
func WithPalette(p Palette) Option {
	return func(c *Coordinator) { c.palette = p }
}

// WithCountDuration sets how long the numeral takes to count up, in
// seconds. The default is 1.
func WithCountDuration(seconds float64) Option {
	return func(c *Coordinator) { c.countDuration = seconds }
}

// WithObserver registers fn to see each decided action and every strategy
// the coordinator applies. The strategy is ring.None{} for actions that
// apply nothing.
func WithObserver(fn func(Action, ring.Strategy)) Option {
	return func(c *Coordinator) { c.observe = fn }
}

// New creates a coordinator.
func New(r RingController, counter Counter, source StateSource, opts ...Option) *Coordinator {
	c := &Coordinator{
		ring:          r,
		counter:       counter,
		source:        source,
		logger:        logging.Nop(),
		palette:       DefaultPalette,
		countDuration: 1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AnimationFinished handles one natural animation completion.
func (c *Coordinator) AnimationFinished() Action {
	cur := c.source.State()
	action := Decide(c.last, c.hasLast, cur)
	c.logger.Debug("animation finished",
		logging.String("previous", c.previousName()),
		logging.String("current", cur.String()),
		logging.String("action", action.String()),
	)

	var applied ring.Strategy = ring.None{}
	switch action {
	case ActionReapplyIndeterminate:
		applied = ring.Indeterminate{}
		c.ring.Add(applied)
	case ActionSnapLoaded:
		c.ring.SetPercentageComplete(c.source.PercentageComplete())
		c.ring.RemoveAll()
		if labels, ok := cur.Labels(); ok {
			c.counter.Settle(labels.Score())
		}
	case ActionFreshLoad:
		applied = ring.Deterministic{Percentage: c.source.PercentageComplete()}
		c.ring.Remove(ring.Indeterminate{})
		c.ring.Add(applied)
		c.counter.StartAnimating()
	case ActionHoldFailure:
		c.ring.RemoveAll()
	case ActionFreshFailure:
		applied = ring.Failure{}
		c.ring.SetPercentageComplete(c.source.PercentageComplete())
		c.ring.RemoveAll()
		c.ring.Add(applied)
	}
	if c.observe != nil {
		c.observe(action, applied)
	}

	c.last, c.hasLast = cur, true
	return action
}

// StateChanged applies the side effects of entering s and returns what the
// screen should show.
func (c *Coordinator) StateChanged(s viewmodel.State) ViewState {
	switch s.Kind() {
	case viewmodel.KindLoaded:
		labels, _ := s.Labels()
		if c.source.Animated() {
			if err := c.counter.Count(labels.Score(), c.countDuration); err != nil {
				c.logger.Error("configure counter", err, logging.Int("score", labels.Score()))
				c.counter.Show(labels.Score())
			}
		} else {
			c.counter.Show(labels.Score())
			c.ring.SetPercentageComplete(c.source.PercentageComplete())
		}
		c.ring.SetStrokeColor(c.palette.Neutral)
		c.decideIfIdle()
		return ViewState{
			ShowScore:   true,
			Caption:     labels.Caption(),
			StrokeColor: c.palette.Neutral,
		}

	case viewmodel.KindFailed:
		if !c.source.Animated() {
			c.ring.SetPercentageComplete(1)
		}
		c.ring.SetStrokeColor(c.palette.Alert)
		c.decideIfIdle()
		return ViewState{
			ShowRetry:   true,
			Caption:     ErrorText,
			StrokeColor: c.palette.Alert,
		}

	default:
		// A retry after the completion chain has ended restarts it.
		if c.source.Animated() && c.ring.Idle() {
			c.ring.Add(ring.Indeterminate{})
			if c.observe != nil {
				c.observe(ActionReapplyIndeterminate, ring.Indeterminate{})
			}
		}
		c.ring.SetStrokeColor(c.palette.Neutral)
		return ViewState{
			ShowLoading: true,
			Caption:     LoadingText,
			StrokeColor: c.palette.Neutral,
		}
	}
}

// decideIfIdle runs the completion decision for a state that arrives after
// the ring has settled, since no completion will follow it.
func (c *Coordinator) decideIfIdle() {
	if c.source.Animated() && c.ring.Idle() {
		c.AnimationFinished()
	}
}

func (c *Coordinator) previousName() string {
	if !c.hasLast {
		return "none"
	}
	return c.last.String()
}
