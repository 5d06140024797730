// Package logging hides the log backend behind a small Logger interface.
// Production code logs JSON through zerolog; tests pass Nop or a
// line-oriented standard library logger.
package logging
