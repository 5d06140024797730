package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/scorering/internal/viewmodel"
)

// FooterModel renders key help and the view model state.
type FooterModel struct {
	help  help.Model
	keys  KeyMap
	state viewmodel.Kind
	width int
}

// NewFooterModel creates a footer for keys.
func NewFooterModel(keys KeyMap) FooterModel {
	return FooterModel{help: help.New(), keys: keys}
}

// SetWidth updates the available width.
func (f *FooterModel) SetWidth(w int) {
	f.width = w
	f.help.Width = w
}

// SetState records the state shown in the status badge.
func (f *FooterModel) SetState(k viewmodel.Kind) {
	f.state = k
}

// ToggleHelp switches between short and full help.
func (f *FooterModel) ToggleHelp() {
	f.help.ShowAll = !f.help.ShowAll
}

// View renders the footer.
func (f FooterModel) View() string {
	var status string
	switch f.state {
	case viewmodel.KindLoaded:
		status = statusLoadedStyle.Render("LOADED")
	case viewmodel.KindFailed:
		status = statusErrorStyle.Render("FAILED")
	default:
		status = statusLoadingStyle.Render("LOADING")
	}
	keys := f.help.View(f.keys)
	gap := max(f.width-lipgloss.Width(keys)-lipgloss.Width(status)-2, 1)
	return " " + keys + strings.Repeat(" ", gap) + status
}
