// Package parsererror holds the typed errors surfaced by the dashboard: date
// and criteria parse failures, criteria validation failures and REST request
// failures.
package parsererror

import (
	"errors"
	"fmt"
)

// ParseError reports a value that could not be parsed. Source names the
// component that attempted the parse ("filter", "criteria", "api").
type ParseError struct {
	Source string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Source, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError reports filter criteria or configuration that is
// syntactically valid but not acceptable.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// RequestError reports a failed call to the revenue API. StatusCode is zero
// when no response was received.
type RequestError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("request %s failed with status %d: %v", e.Endpoint, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("request %s failed: %v", e.Endpoint, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// Temporary reports whether retrying the request may succeed: transport
// failures, 429 and 5xx responses.
func (e *RequestError) Temporary() bool {
	return e.StatusCode == 0 || e.StatusCode == 429 || e.StatusCode >= 500
}

// IsParseError reports whether err wraps a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
