package presentation

import (
	"github.com/agbru/scorering/internal/animator"
	"github.com/agbru/scorering/internal/label"
)

// NumeralCounter is a Counter that drives a label with a NumberAnimator.
type NumeralCounter struct {
	animator *animator.NumberAnimator
	label    *label.Label
	// ready is set while the animator holds a range prepared by Count.
	ready bool
}

var _ Counter = (*NumeralCounter)(nil)

// NewNumeralCounter creates a counter over a.
func NewNumeralCounter(a *animator.NumberAnimator) *NumeralCounter {
	return &NumeralCounter{animator: a, label: label.New(a)}
}

// Count prepares a count from zero to target. Preparing the range already
// held is a no-op, so a repeated load neither restarts a running count nor
// clears the numeral. A target of zero or less has nothing to count and is
// shown directly.
func (n *NumeralCounter) Count(target int, duration float64) error {
	if target <= 0 {
		n.Show(max(target, 0))
		return nil
	}
	if n.prepared(target) {
		return nil
	}
	n.animator.Stop()
	if err := n.animator.Configure(0, target, duration); err != nil {
		n.ready = false
		return err
	}
	n.ready = true
	// A numeral still at zero takes the new width; a shown score stays.
	if n.label.Value() == 0 {
		n.label.SetValue(0)
	}
	return nil
}

// Show stops any count and displays value.
func (n *NumeralCounter) Show(value int) {
	n.animator.Stop()
	n.ready = false
	n.label.ShowExact(value)
}

// Settle leaves a running count toward value to finish and otherwise shows
// value.
func (n *NumeralCounter) Settle(value int) {
	if n.animator.Running() && n.prepared(value) {
		return
	}
	n.Show(value)
}

// StartAnimating counts the prepared range from zero. It does nothing
// without a prepared range or while a count is running.
func (n *NumeralCounter) StartAnimating() {
	if !n.ready || n.animator.Running() {
		return
	}
	n.label.SetValue(n.animator.MinValue())
	n.label.StartAnimating()
}

func (n *NumeralCounter) prepared(target int) bool {
	return n.ready && n.animator.MinValue() == 0 && n.animator.MaxValue() == target
}

// Text returns the numeral as displayed.
func (n *NumeralCounter) Text() string { return n.label.Text() }

// Value returns the number currently displayed.
func (n *NumeralCounter) Value() int { return n.label.Value() }

// Counting reports whether the animator is running.
func (n *NumeralCounter) Counting() bool { return n.animator.Running() }
