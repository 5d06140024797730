// Package format renders durations for the header timer and plain output.
package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration renders d as microseconds below a millisecond,
// whole milliseconds below a second, and otherwise as a time.Duration
// rounded to a tenth of a second so a running timer stays readable.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < 0:
		return "0µs"
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return d.Round(100 * time.Millisecond).String()
	}
}
