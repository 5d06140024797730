// Package viewmodel holds the presentation state of the score screen and
// the glue that turns fetch results into state transitions.
package viewmodel

import (
	"strconv"

	"github.com/agbru/scorering/internal/score"
)

// Kind is the variant of a State.
type Kind int

const (
	KindLoading Kind = iota
	KindLoaded
	KindFailed
)

func (k Kind) String() string {
	switch k {
	case KindLoading:
		return "loading"
	case KindLoaded:
		return "loaded"
	case KindFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ScoreLabels is the text shown when a score is loaded.
type ScoreLabels struct {
	Data score.Data
}

// Score returns the fetched score.
func (l ScoreLabels) Score() int { return l.Data.Score }

// MaxScore returns the top of the score range.
func (l ScoreLabels) MaxScore() int { return l.Data.MaxScore }

// Caption returns the "out of N" line under the numeral.
func (l ScoreLabels) Caption() string { return "out of " + strconv.Itoa(l.Data.MaxScore) }

// State is Loading, Loaded or Failed. States compare equal with == when
// they share a variant and their payloads are equal.
type State struct {
	kind   Kind
	labels ScoreLabels
}

// Loading is the state before a fetch completes.
func Loading() State { return State{kind: KindLoading} }

// Loaded is the state after a successful fetch.
func Loaded(data score.Data) State { return State{kind: KindLoaded, labels: ScoreLabels{Data: data}} }

// Failed is the state after a failed fetch.
func Failed() State { return State{kind: KindFailed} }

// Kind returns the variant.
func (s State) Kind() Kind { return s.kind }

// Labels returns the loaded labels. ok is false for other variants.
func (s State) Labels() (labels ScoreLabels, ok bool) {
	return s.labels, s.kind == KindLoaded
}

func (s State) String() string {
	if s.kind == KindLoaded {
		return "loaded(" + s.labels.Data.String() + ")"
	}
	return s.kind.String()
}
