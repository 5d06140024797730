// Package animator drives an integer value from a minimum to a maximum over
// a configured duration, sampling it once per frame tick.
package animator

import (
	"errors"
	"math"

	apperrors "github.com/agbru/scorering/internal/errors"
	"github.com/agbru/scorering/internal/ticker"
)

// Validation sentinels returned (wrapped in apperrors.ValidationError) by
// Configure.
var (
	ErrMinValueMustBeNonNegative      = errors.New("min value must be non-negative")
	ErrMinValueMustBeLessThanMaxValue = errors.New("min value must be less than max value")
	ErrDurationMustBeNonNegative      = errors.New("duration must be non-negative")
)

// seedOffset biases the first rounded sample so repeated samples appear at
// predictable frames when the frame rate exceeds the value range.
const seedOffset = 0.499

// Config is the validated animation range and duration (seconds).
type Config struct {
	MinValue int
	MaxValue int
	Duration float64
}

// DefaultConfig is the configuration of a freshly constructed animator.
var DefaultConfig = Config{MinValue: 0, MaxValue: 1, Duration: 1}

// Validate checks the configuration rules in order and returns the first
// violation.
func (c Config) Validate() error {
	switch {
	case c.MinValue < 0:
		return apperrors.ValidationError{Field: "minValue", Message: "must be >= 0", Err: ErrMinValueMustBeNonNegative}
	case c.MinValue >= c.MaxValue:
		return apperrors.ValidationError{Field: "minValue", Message: "must be < maxValue", Err: ErrMinValueMustBeLessThanMaxValue}
	case c.Duration < 0:
		return apperrors.ValidationError{Field: "duration", Message: "must be >= 0", Err: ErrDurationMustBeNonNegative}
	}
	return nil
}

// NumberAnimator emits one integer sample per tick while running. It is not
// safe for concurrent use; the ticker must deliver ticks on the goroutine
// that owns the animator.
type NumberAnimator struct {
	ticker ticker.Ticker
	config Config

	running      bool
	frameIndex   int
	currentValue float64

	subscribers map[int]func(int)
	nextID      int
}

// Option configures a NumberAnimator.
type Option func(*NumberAnimator)

// WithConfig starts the animator with cfg instead of DefaultConfig. An
// invalid cfg makes New return its validation error.
func WithConfig(cfg Config) Option {
	return func(a *NumberAnimator) { a.config = cfg }
}

// New creates an animator driven by t.
func New(t ticker.Ticker, opts ...Option) (*NumberAnimator, error) {
	a := &NumberAnimator{
		ticker:      t,
		config:      DefaultConfig,
		subscribers: make(map[int]func(int)),
	}
	for _, opt := range opts {
		opt(a)
	}
	if err := a.config.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Configure replaces the range and duration. Either all three values are
// accepted or none are.
func (a *NumberAnimator) Configure(minValue, maxValue int, duration float64) error {
	cfg := Config{MinValue: minValue, MaxValue: maxValue, Duration: duration}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.config = cfg
	return nil
}

// Config returns the current configuration.
func (a *NumberAnimator) Config() Config { return a.config }

// MinValue returns the configured minimum.
func (a *NumberAnimator) MinValue() int { return a.config.MinValue }

// MaxValue returns the configured maximum.
func (a *NumberAnimator) MaxValue() int { return a.config.MaxValue }

// Running reports whether the animator is subscribed to its ticker.
func (a *NumberAnimator) Running() bool { return a.running }

// Subscribe registers fn to receive every emitted value. The returned
// function removes the subscription.
func (a *NumberAnimator) Subscribe(fn func(int)) (cancel func()) {
	id := a.nextID
	a.nextID++
	a.subscribers[id] = fn
	return func() { delete(a.subscribers, id) }
}

// Start resets the frame counter and value, then subscribes to the ticker.
// Calling Start while running restarts the sequence.
func (a *NumberAnimator) Start() {
	a.frameIndex = 0
	a.currentValue = float64(a.config.MinValue) + seedOffset
	a.running = true
	a.ticker.Start(a.tick)
}

// Stop unsubscribes from the ticker. It is safe to call repeatedly.
func (a *NumberAnimator) Stop() {
	if !a.running {
		return
	}
	a.running = false
	a.ticker.Stop()
}

func (a *NumberAnimator) tick(t ticker.Tick) {
	if !a.running {
		return
	}

	if t.Interval() <= 0 {
		return
	}
	fps := math.Floor(1 / t.Interval())
	totalFrames := math.Max(a.config.Duration*fps, 1)

	if float64(a.frameIndex) >= totalFrames {
		a.Stop()
		return
	}

	increment := float64(a.config.MaxValue-a.config.MinValue) / totalFrames
	newValue := a.currentValue + increment

	// A fractional frame total overshoots on the last frame.
	sample := min(roundHalfUp(newValue), a.config.MaxValue)
	a.emit(sample)

	a.frameIndex++
	a.currentValue = newValue
}

func (a *NumberAnimator) emit(v int) {
	for _, fn := range a.subscribers {
		fn(v)
	}
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
