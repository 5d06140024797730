package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestDefaultKeyMap_Matches(t *testing.T) {
	km := DefaultKeyMap()
	runes := func(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		binding key.Binding
		want    bool
	}{
		{"r retries", runes("r"), km.Retry, true},
		{"enter retries", tea.KeyMsg{Type: tea.KeyEnter}, km.Retry, true},
		{"? toggles help", runes("?"), km.Help, true},
		{"q quits", runes("q"), km.Quit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, km.Quit, true},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, km.Quit, true},
		{"x does nothing", runes("x"), km.Retry, false},
		{"r does not quit", runes("r"), km.Quit, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := key.Matches(tt.msg, tt.binding); got != tt.want {
				t.Errorf("key.Matches(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMap_HelpGroups(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) != 3 {
		t.Errorf("ShortHelp() has %d bindings, want 3", len(km.ShortHelp()))
	}
	n := 0
	for _, col := range km.FullHelp() {
		for _, b := range col {
			if b.Help().Desc == "" {
				t.Errorf("binding %v has no help text", b.Keys())
			}
			n++
		}
	}
	if n != 3 {
		t.Errorf("FullHelp() has %d bindings, want 3", n)
	}
}
