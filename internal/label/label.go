// Package label formats a live animated value as a fixed-width numeral.
package label

import (
	"fmt"
	"strconv"
)

// ValueSource is the animated value a Label observes.
type ValueSource interface {
	MinValue() int
	MaxValue() int
	Subscribe(fn func(int)) (cancel func())
	Start()
	Stop()
}

// Label keeps the zero-padded text of the most recent value. The width is
// the number of decimal digits of the source's maximum.
type Label struct {
	source ValueSource
	cancel func()
	value  int
	text   string
}

// New creates a label showing the source's minimum and follows every value
// it emits.
func New(source ValueSource) *Label {
	l := &Label{source: source}
	l.SetValue(source.MinValue())
	l.cancel = source.Subscribe(l.SetValue)
	return l
}

// Width returns the number of digits in the source's maximum value.
func (l *Label) Width() int {
	return len(strconv.Itoa(l.source.MaxValue()))
}

// SetValue formats v at the current width.
func (l *Label) SetValue(v int) {
	l.value = v
	l.text = fmt.Sprintf("%0*d", l.Width(), v)
}

// ShowExact displays v without padding. It is for values shown directly
// rather than reached by counting, whose width has nothing to do with the
// source's current maximum.
func (l *Label) ShowExact(v int) {
	l.value = v
	l.text = strconv.Itoa(v)
}

// Text returns the formatted numeral.
func (l *Label) Text() string { return l.text }

// Value returns the last value shown.
func (l *Label) Value() int { return l.value }

// StartAnimating starts the underlying source.
func (l *Label) StartAnimating() { l.source.Start() }

// StopAnimating stops the underlying source.
func (l *Label) StopAnimating() { l.source.Stop() }

// Close detaches the label from its source.
func (l *Label) Close() {
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}
