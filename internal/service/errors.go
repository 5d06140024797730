package service

import (
	"errors"
	"fmt"
)

// ErrNetwork is the cause carried by NetworkError values that have no
// underlying transport error.
var ErrNetwork = errors.New("network unavailable")

// NetworkError reports that the score service could not be reached.
type NetworkError struct {
	Cause error
}

func (e NetworkError) Error() string {
	if e.Cause == nil {
		return "network error"
	}
	return fmt.Sprintf("network error: %v", e.Cause)
}

func (e NetworkError) Unwrap() error {
	if e.Cause == nil {
		return ErrNetwork
	}
	return e.Cause
}

// ServerError reports that the service answered with something other than
// a usable score.
type ServerError struct {
	Cause error
}

func (e ServerError) Error() string { return fmt.Sprintf("server error: %v", e.Cause) }

func (e ServerError) Unwrap() error { return e.Cause }

// StatusError is the cause of a ServerError for a non-2xx response.
type StatusError struct {
	StatusCode int
}

func (e StatusError) Error() string { return fmt.Sprintf("unexpected status %d", e.StatusCode) }

// DecodeError is the cause of a ServerError for a payload of the wrong shape.
type DecodeError struct {
	Field  string
	Reason string
}

func (e DecodeError) Error() string {
	if e.Field == "" {
		return "decode: " + e.Reason
	}
	return fmt.Sprintf("decode %s: %s", e.Field, e.Reason)
}
