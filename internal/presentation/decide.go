// Package presentation decides which ring animation to apply in response to
// state transitions and animation completions, and derives what the score
// screen shows for each state.
package presentation

import (
	"fmt"

	"github.com/agbru/scorering/internal/viewmodel"
)

// Action is the ring operation chosen when an animation finishes.
type Action int

const (
	// ActionReapplyIndeterminate runs another loading sweep.
	ActionReapplyIndeterminate Action = iota
	// ActionSnapLoaded sets the final percentage and clears animations.
	ActionSnapLoaded
	// ActionFreshLoad swaps the loading sweep for the fill and starts the
	// counting numeral.
	ActionFreshLoad
	// ActionHoldFailure clears animations without another pulse.
	ActionHoldFailure
	// ActionFreshFailure snaps to full, clears animations and pulses once.
	ActionFreshFailure
)

var actionNames = [...]string{
	ActionReapplyIndeterminate: "reapply-indeterminate",
	ActionSnapLoaded:           "snap-loaded",
	ActionFreshLoad:            "fresh-load",
	ActionHoldFailure:          "hold-failure",
	ActionFreshFailure:         "fresh-failure",
}

func (a Action) String() string {
	if a >= 0 && int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("action(%d)", int(a))
}

type transition struct {
	current   viewmodel.Kind
	unchanged bool
}

// decisions covers every current variant paired with whether the previous
// state was equal to it.
var decisions = map[transition]Action{
	{viewmodel.KindLoading, false}: ActionReapplyIndeterminate,
	{viewmodel.KindLoading, true}:  ActionReapplyIndeterminate,
	{viewmodel.KindLoaded, true}:   ActionSnapLoaded,
	{viewmodel.KindLoaded, false}:  ActionFreshLoad,
	{viewmodel.KindFailed, true}:   ActionHoldFailure,
	{viewmodel.KindFailed, false}:  ActionFreshFailure,
}

// Decide returns the action for the pair (prev, cur). hasPrev is false
// before the first completion, which counts as a change.
func Decide(prev viewmodel.State, hasPrev bool, cur viewmodel.State) Action {
	action, ok := decisions[transition{current: cur.Kind(), unchanged: hasPrev && prev == cur}]
	if !ok {
		panic(fmt.Sprintf("presentation: no decision for state %v", cur))
	}
	return action
}
