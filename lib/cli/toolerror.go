// Copyright 2026 The Tickmark Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides error types shared by tickmark's command-line
// surface: categorized errors with optional remediation hints, and a
// sentinel for exiting with a specific code.
package cli

import "fmt"

// ErrorCategory classifies command errors so callers and wrapper
// scripts can make programmatic decisions (fix input, report a bug)
// without parsing error message text.
type ErrorCategory string

const (
	// CategoryValidation indicates the caller provided invalid input:
	// unknown flags, bad flag values, unparseable config. The caller
	// should fix the input and retry.
	CategoryValidation ErrorCategory = "validation"

	// CategoryNotFound indicates a referenced resource does not exist:
	// a config file path that points nowhere. Retrying with the same
	// parameters will not help.
	CategoryNotFound ErrorCategory = "not_found"

	// CategoryInternal indicates an unexpected error: bugs, I/O
	// failures, terminal setup problems. The caller should report the
	// error rather than retry.
	CategoryInternal ErrorCategory = "internal"
)

// ToolError is a categorized error returned by command handlers. It
// wraps an inner error, preserving the full error chain for debugging
// while adding category metadata and an optional remediation hint.
// Use the category-specific constructors (Validation, NotFound,
// Internal) rather than constructing ToolError directly.
type ToolError struct {
	// Category classifies the error for programmatic handling.
	Category ErrorCategory

	// Err is the underlying error with the human-readable message.
	Err error

	// Hint suggests how to fix the problem. Printed after the error
	// message, separated by a blank line.
	Hint string
}

// Error returns the underlying error message, followed by the hint
// when one is set.
func (e *ToolError) Error() string {
	if e.Hint != "" {
		return e.Err.Error() + "\n\n" + e.Hint
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, allowing errors.Is and
// errors.As to walk the full chain through the ToolError wrapper.
func (e *ToolError) Unwrap() error { return e.Err }

// WithHint attaches a remediation hint and returns the same error for
// chaining.
func (e *ToolError) WithHint(format string, args ...any) *ToolError {
	e.Hint = fmt.Sprintf(format, args...)
	return e
}

// Validation creates a validation error: the caller provided bad input.
func Validation(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// NotFound creates a not-found error: a referenced resource does not exist.
func NotFound(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryNotFound, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error: an unexpected failure, bug, or I/O error.
func Internal(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}
