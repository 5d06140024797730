// Package apperrors classifies failures into configuration, validation and
// fetch errors and maps each class to a process exit code. Every type
// implements Unwrap so callers can use errors.Is and errors.As on the cause.
package apperrors
