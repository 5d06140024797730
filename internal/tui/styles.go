package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/scorering/internal/presentation"
	"github.com/agbru/scorering/internal/ui"
)

// Styles derived from ui.GetCurrentTUITheme. initTUIStyles rebuilds them
// after the theme changes.
var (
	panelStyle   lipgloss.Style
	headerStyle  lipgloss.Style
	titleStyle   lipgloss.Style
	versionStyle lipgloss.Style
	elapsedStyle lipgloss.Style
	numeralStyle lipgloss.Style
	captionStyle lipgloss.Style

	errorTextStyle   lipgloss.Style
	metricLabelStyle lipgloss.Style
	metricValueStyle lipgloss.Style
	pacingStyle      lipgloss.Style

	statusLoadingStyle lipgloss.Style
	statusLoadedStyle  lipgloss.Style
	statusErrorStyle   lipgloss.Style

	ringTrackColor lipgloss.TerminalColor
)

func init() {
	initTUIStyles()
}

func fg(c lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

func bold(c lipgloss.TerminalColor) lipgloss.Style {
	return fg(c).Bold(true)
}

func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = fg(t.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border)
	headerStyle = bold(t.Accent).Padding(0, 1)
	titleStyle = bold(t.Accent)
	versionStyle = fg(t.Dim)
	elapsedStyle = fg(t.Accent)
	numeralStyle = bold(t.Text)
	captionStyle = fg(t.Dim)

	errorTextStyle = fg(t.Error)
	metricLabelStyle = fg(t.Dim)
	metricValueStyle = bold(t.Accent)
	pacingStyle = fg(t.Accent)

	statusLoadingStyle = bold(t.Warning)
	statusLoadedStyle = bold(t.Success)
	statusErrorStyle = bold(t.Error)

	ringTrackColor = t.RingTrack
}

// ringPalette maps the theme's ring colors onto the coordinator palette.
// Colors the theme leaves unset become "" and render uncolored.
func ringPalette() presentation.Palette {
	t := ui.GetCurrentTUITheme()
	return presentation.Palette{Neutral: ui.Hex(t.RingStroke), Alert: ui.Hex(t.RingAlert)}
}
