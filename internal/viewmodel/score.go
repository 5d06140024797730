package viewmodel

import (
	"github.com/agbru/scorering/internal/logging"
	"github.com/agbru/scorering/internal/score"
)

// ScoreViewModel owns the current State and notifies subscribers of every
// transition. It is not safe for concurrent use.
type ScoreViewModel struct {
	state    State
	animated bool
	logger   logging.Logger

	subscribers map[int]func(State)
	order       []int
	nextID      int
	onRetry     func()
}

// Option configures a ScoreViewModel.
type Option func(*ScoreViewModel)

// WithAnimated selects animated (the default) or snapped presentation.
func WithAnimated(animated bool) Option {
	return func(vm *ScoreViewModel) { vm.animated = animated }
}

// WithLogger attaches a logger.
func WithLogger(logger logging.Logger) Option {
	return func(vm *ScoreViewModel) { vm.logger = logger }
}

// NewScoreViewModel creates a view model in the Loading state.
func NewScoreViewModel(opts ...Option) *ScoreViewModel {
	vm := &ScoreViewModel{
		state:       Loading(),
		animated:    true,
		logger:      logging.Nop(),
		subscribers: make(map[int]func(State)),
	}
	for _, opt := range opts {
		opt(vm)
	}
	return vm
}

// State returns the current state.
func (vm *ScoreViewModel) State() State { return vm.state }

// Animated reports whether transitions should be animated.
func (vm *ScoreViewModel) Animated() bool { return vm.animated }

// Subscribe calls fn with the current state, then again on every
// transition, in order. The returned function removes the subscription.
func (vm *ScoreViewModel) Subscribe(fn func(State)) (cancel func()) {
	id := vm.nextID
	vm.nextID++
	vm.subscribers[id] = fn
	vm.order = append(vm.order, id)
	fn(vm.state)
	return func() {
		delete(vm.subscribers, id)
		for i, v := range vm.order {
			if v == id {
				vm.order = append(vm.order[:i], vm.order[i+1:]...)
				break
			}
		}
	}
}

// Loaded moves to Loaded(data). Inconsistent ranges are logged and the
// percentage is clamped.
func (vm *ScoreViewModel) Loaded(data score.Data) {
	if !data.Consistent() {
		vm.logger.Warn("score outside its range",
			logging.Int("score", data.Score),
			logging.Int("min", data.MinScore),
			logging.Int("max", data.MaxScore),
		)
	}
	vm.set(Loaded(data))
}

// Failed moves to Failed.
func (vm *ScoreViewModel) Failed() { vm.set(Failed()) }

// OnRetry registers the function Retry calls after re-entering Loading.
func (vm *ScoreViewModel) OnRetry(fn func()) { vm.onRetry = fn }

// Retry re-enters Loading and calls the retry handler.
func (vm *ScoreViewModel) Retry() {
	vm.set(Loading())
	if vm.onRetry != nil {
		vm.onRetry()
	}
}

// PercentageComplete is 0 while loading, the clamped score fraction when
// loaded and 1 when failed.
func (vm *ScoreViewModel) PercentageComplete() float64 {
	switch vm.state.kind {
	case KindLoaded:
		return vm.state.labels.Data.Percentage()
	case KindFailed:
		return 1
	default:
		return 0
	}
}

func (vm *ScoreViewModel) set(s State) {
	vm.state = s
	for _, id := range append([]int(nil), vm.order...) {
		if fn, ok := vm.subscribers[id]; ok {
			fn(s)
		}
	}
}
