package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the ANSI escape sequences used by plain (non-TUI) output.
type Theme struct {
	// Name identifies the theme for SetTheme.
	Name string
	// Primary colors the score bar.
	Primary string
	// Error colors failure messages.
	Error string
	Bold  string
	Reset string
}

var (
	// DarkTheme suits dark terminal backgrounds.
	DarkTheme = Theme{
		Name:    "dark",
		Primary: "\033[38;5;111m", // Soft blue
		Error:   "\033[38;5;167m", // Red
		Bold:    "\033[1m",
		Reset:   "\033[0m",
	}

	// LightTheme uses darker tones for light backgrounds.
	LightTheme = Theme{
		Name:    "light",
		Primary: "\033[38;5;25m",  // Dark blue
		Error:   "\033[38;5;124m", // Dark red
		Bold:    "\033[1m",
		Reset:   "\033[0m",
	}

	// NoColorTheme emits no escape sequences at all.
	// Used when NO_COLOR is set or --no-color is given.
	NoColorTheme = Theme{Name: "none"}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// TUITheme holds the lipgloss colors of the score screen.
type TUITheme struct {
	Text    lipgloss.TerminalColor
	Border  lipgloss.TerminalColor
	Accent  lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Warning lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Dim     lipgloss.TerminalColor

	// RingStroke and RingAlert color the ring's stroke in normal and failed
	// states. RingTrack colors the unfilled part of the circle.
	RingStroke lipgloss.TerminalColor
	RingAlert  lipgloss.TerminalColor
	RingTrack  lipgloss.TerminalColor
}

var (
	// DarkTUITheme is the default score screen palette.
	DarkTUITheme = TUITheme{
		Text:       lipgloss.Color("#E0E0E0"),
		Border:     lipgloss.Color("#3A3A3A"),
		Accent:     lipgloss.Color("#7AA2F7"),
		Success:    lipgloss.Color("#9ECE6A"),
		Warning:    lipgloss.Color("#FFB347"),
		Error:      lipgloss.Color("#E5484D"),
		Dim:        lipgloss.Color("#666666"),
		RingStroke: lipgloss.Color("#FFFFFF"),
		RingAlert:  lipgloss.Color("#E5484D"),
		RingTrack:  lipgloss.Color("#2E2E2E"),
	}

	// NoColorTUITheme renders everything in the terminal's default colors.
	NoColorTUITheme = TUITheme{
		Text:       lipgloss.NoColor{},
		Border:     lipgloss.NoColor{},
		Accent:     lipgloss.NoColor{},
		Success:    lipgloss.NoColor{},
		Warning:    lipgloss.NoColor{},
		Error:      lipgloss.NoColor{},
		Dim:        lipgloss.NoColor{},
		RingStroke: lipgloss.NoColor{},
		RingAlert:  lipgloss.NoColor{},
		RingTrack:  lipgloss.NoColor{},
	}
)

// GetCurrentTUITheme returns NoColorTUITheme when colors are disabled and
// DarkTUITheme otherwise.
func GetCurrentTUITheme() TUITheme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()

	if currentTheme.Name == NoColorTheme.Name {
		return NoColorTUITheme
	}
	return DarkTUITheme
}

// GetCurrentTheme returns the active plain-output theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme replaces the active theme. Tests use it to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme activates a theme by name: "dark", "light" or "none". Unknown
// names select dark.
func SetTheme(name string) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	switch name {
	case LightTheme.Name:
		currentTheme = LightTheme
	case NoColorTheme.Name:
		currentTheme = NoColorTheme
	default:
		currentTheme = DarkTheme
	}
}

// InitTheme disables colors when noColor is true or NO_COLOR is present in
// the environment (https://no-color.org/), and selects dark otherwise.
func InitTheme(noColor bool) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	if _, set := os.LookupEnv("NO_COLOR"); noColor || set {
		currentTheme = NoColorTheme
		return
	}
	currentTheme = DarkTheme
}

// Hex returns c as a color string, or "" when c is not a plain
// lipgloss.Color. ParseColor maps "" back to no color.
func Hex(c lipgloss.TerminalColor) string {
	if col, ok := c.(lipgloss.Color); ok {
		return string(col)
	}
	return ""
}

// ParseColor is the inverse of Hex.
func ParseColor(s string) lipgloss.TerminalColor {
	if s == "" {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(s)
}
