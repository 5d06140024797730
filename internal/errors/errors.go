package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Process exit codes.
const (
	ExitSuccess       = 0
	ExitErrorGeneric  = 1
	ExitErrorFetch    = 2   // the score could not be loaded
	ExitErrorConfig   = 4   // bad flags, environment or values
	ExitErrorCanceled = 130 // SIGINT
)

// ConfigError reports configuration that could not be read, such as an
// unknown flag or an environment variable of the wrong type.
type ConfigError struct {
	Message string
	Err     error
}

func (e ConfigError) Error() string { return e.Message }

func (e ConfigError) Unwrap() error { return e.Err }

// NewConfigError formats a ConfigError. A %w verb in format records the
// wrapped error as the cause.
func NewConfigError(format string, a ...any) error {
	err := fmt.Errorf(format, a...)
	return ConfigError{Message: err.Error(), Err: errors.Unwrap(err)}
}

// ValidationError names a configuration field whose value is out of range.
// Err, when set, is the parse error behind it.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

func (e ValidationError) Unwrap() error { return e.Err }

// WrapError prefixes err with a formatted message. It returns nil for a nil
// err.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// ExitCodeFor maps an error to the process exit code.
func ExitCodeFor(err error) int {
	var configErr ConfigError
	var validationErr ValidationError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	case errors.As(err, &configErr), errors.As(err, &validationErr):
		return ExitErrorConfig
	case errors.Is(err, context.DeadlineExceeded):
		return ExitErrorFetch
	default:
		return ExitErrorGeneric
	}
}
