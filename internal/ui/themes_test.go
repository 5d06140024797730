package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestSetTheme(t *testing.T) {
	orig := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(orig) })

	tests := []struct {
		name string
		want string
	}{
		{"dark", "dark"},
		{"light", "light"},
		{"none", "none"},
		{"orange", "dark"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetTheme(tt.name)
			if got := GetCurrentTheme().Name; got != tt.want {
				t.Errorf("SetTheme(%q) -> %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestInitTheme_NoColor(t *testing.T) {
	orig := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(orig) })

	InitTheme(true)
	if GetCurrentTheme().Name != "none" {
		t.Fatalf("InitTheme(true) left theme %q", GetCurrentTheme().Name)
	}
	if _, ok := GetCurrentTUITheme().RingStroke.(lipgloss.NoColor); !ok {
		t.Error("no-color TUI theme should not color the ring")
	}
}

func TestInitTheme_NoColorEnv(t *testing.T) {
	orig := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(orig) })

	t.Setenv("NO_COLOR", "1")
	InitTheme(false)
	if GetCurrentTheme().Name != "none" {
		t.Errorf("NO_COLOR set, theme = %q", GetCurrentTheme().Name)
	}
}

func TestHexRoundTrip(t *testing.T) {
	if got := Hex(DarkTUITheme.RingAlert); got != "#E5484D" {
		t.Errorf("Hex(RingAlert) = %q", got)
	}
	if got := Hex(lipgloss.NoColor{}); got != "" {
		t.Errorf("Hex(NoColor) = %q, want empty", got)
	}
	if _, ok := ParseColor("").(lipgloss.NoColor); !ok {
		t.Error(`ParseColor("") should be NoColor`)
	}
	if got := ParseColor("#FFFFFF"); got != lipgloss.Color("#FFFFFF") {
		t.Errorf("ParseColor = %v", got)
	}
}

func TestNoColorTheme_Empty(t *testing.T) {
	nc := NoColorTheme
	if nc.Primary != "" || nc.Error != "" || nc.Bold != "" || nc.Reset != "" {
		t.Errorf("NoColorTheme should emit nothing: %+v", nc)
	}
}
