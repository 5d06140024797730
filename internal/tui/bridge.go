package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/scorering/internal/viewmodel"
)

// launchQueue bridges the home view model's Launcher to bubbletea. Fetches
// requested during Update are queued as commands; bubbletea runs them off
// the loop and delivers each Result back to Update as a fetchResultMsg.
// Because bubbletea copies the model on every Update, the queue is shared
// by pointer.
type launchQueue struct {
	ctx     context.Context
	pending []tea.Cmd
}

func newLaunchQueue(ctx context.Context) *launchQueue {
	return &launchQueue{ctx: ctx}
}

// Launch implements viewmodel.Launcher.
func (q *launchQueue) Launch(fetch viewmodel.FetchFunc) {
	ctx := q.ctx
	q.pending = append(q.pending, func() tea.Msg {
		return fetchResultMsg{Result: fetch(ctx)}
	})
}

// Drain returns the queued fetches as one command, or nil if none.
func (q *launchQueue) Drain() tea.Cmd {
	if len(q.pending) == 0 {
		return nil
	}
	cmds := q.pending
	q.pending = nil
	return tea.Batch(cmds...)
}
