package apperrors

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"
)

func TestNewConfigError(t *testing.T) {
	t.Parallel()

	_, parseErr := strconv.ParseFloat("fast", 64)
	err := NewConfigError("parse env: %w", parseErr)

	var ce ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("NewConfigError() returned %T", err)
	}
	if ce.Error() != "parse env: "+parseErr.Error() {
		t.Errorf("Error() = %q", ce.Error())
	}
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Error("ConfigError should unwrap to the parse error")
	}

	plain := NewConfigError("unknown flag %s", "--fsp")
	if errors.Unwrap(plain) != nil {
		t.Error("no %w verb means no cause")
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("bad url")
	err := ValidationError{Field: "url", Message: "cannot parse", Err: sentinel}

	if got, want := err.Error(), `validation error for "url": cannot parse`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(fmt.Errorf("config: %w", err), sentinel) {
		t.Error("ValidationError should unwrap to its cause")
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()

	if WrapError(nil, "open %s", "x.log") != nil {
		t.Error("WrapError(nil) should be nil")
	}

	base := errors.New("permission denied")
	err := WrapError(base, "open log file %s", "/var/log/x.log")
	if got, want := err.Error(), "open log file /var/log/x.log: permission denied"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, base) {
		t.Error("wrapped error should match its cause")
	}
}

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"canceled", context.Canceled, ExitErrorCanceled},
		{"wrapped canceled", fmt.Errorf("run: %w", context.Canceled), ExitErrorCanceled},
		{"config", NewConfigError("bad"), ExitErrorConfig},
		{"validation", ValidationError{Field: "fps"}, ExitErrorConfig},
		{"wrapped validation", WrapError(ValidationError{Field: "fps"}, "parse"), ExitErrorConfig},
		{"deadline", context.DeadlineExceeded, ExitErrorFetch},
		{"other", errors.New("boom"), ExitErrorGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCodeFor(tt.err); got != tt.want {
				t.Errorf("ExitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
