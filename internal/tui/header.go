package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/scorering/internal/format"
	"github.com/agbru/scorering/internal/presentation"
)

// HeaderModel is the top bar: the screen title, the build version and a
// timer for the fetch in flight.
type HeaderModel struct {
	title   string
	now     func() time.Time
	started time.Time
	took    time.Duration
	done    bool
	width   int
}

// NewHeaderModel starts the fetch timer. A "dev" version is not shown.
func NewHeaderModel(version string) HeaderModel {
	title := presentation.TitleText
	if version != "" && version != "dev" {
		title += " " + version
	}
	return HeaderModel{title: title, now: time.Now, started: time.Now()}
}

// SetDone stops the timer. Later calls keep the first reading.
func (h *HeaderModel) SetDone() {
	if !h.done {
		h.took = h.now().Sub(h.started)
		h.done = true
	}
}

// Reset restarts the timer for a new fetch.
func (h *HeaderModel) Reset() {
	h.started = h.now()
	h.took = 0
	h.done = false
}

func (h *HeaderModel) SetWidth(w int) { h.width = w }

// Elapsed is the stopped reading, or the time since the fetch started.
func (h HeaderModel) Elapsed() time.Duration {
	if h.done {
		return h.took
	}
	return h.now().Sub(h.started)
}

func (h HeaderModel) View() string {
	label := "Fetching: "
	if h.done {
		label = "Fetched in "
	}
	row := titleStyle.Render(h.title) +
		versionStyle.Render(" | ") +
		elapsedStyle.Render(label+format.FormatExecutionDuration(h.Elapsed()))
	pad := max(h.width-2-lipgloss.Width(row), 0)
	return headerStyle.Width(h.width).Render(row + strings.Repeat(" ", pad))
}
