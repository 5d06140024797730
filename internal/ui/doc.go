// Package ui holds the color themes shared by the score screen and plain
// output: ANSI sequences for plain mode, lipgloss colors for the terminal
// UI, and the helpers that carry ring colors through the coordinator as
// strings.
package ui
