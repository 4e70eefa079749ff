// Package jsonerrors normalizes failures from storage drivers, outbound HTTP
// calls and payment providers into one client-facing shape: an HTTP status,
// a one-line description and a JSON body of the form {"error": description}.
//
// Classifiers for each upstream live in the storage, remote and payment
// subpackages. This package holds the value types and the response writer.
package jsonerrors

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
)

// Body is the serialized form of a JSONError.
type Body struct {
	Error string `json:"error"`
}

// JSONError is an immutable, normalized error.
// The body is derived from the description when the value is built.
type JSONError struct {
	kind        Kind
	status      int
	description string
	cause       error
	body        Body
}

// New creates a JSONError with the given kind, HTTP status, and description.
// If status is 0, defaults to 500. If description is empty, uses a default.
func New(kind Kind, status int, description string) *JSONError {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	if description == "" {
		description = defaultDescription(kind)
	}
	return &JSONError{
		kind:        kind,
		status:      status,
		description: description,
		body:        Body{Error: description},
	}
}

// Verbatim creates a JSONError whose description is kept exactly as given,
// including an empty one. A zero status still defaults to 500.
func Verbatim(kind Kind, status int, description string) *JSONError {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return &JSONError{
		kind:        kind,
		status:      status,
		description: description,
		body:        Body{Error: description},
	}
}

// Wrap creates a JSONError that keeps the raw failure it was classified from.
// The cause is reachable through errors.Unwrap but is never serialized.
func Wrap(kind Kind, status int, description string, cause error) *JSONError {
	e := New(kind, status, description)
	e.cause = cause
	return e
}

// FromStatus builds a JSONError directly from a status and a message.
func FromStatus(status int, description string) *JSONError {
	return New(kindForStatus(status), status, description)
}

// Describe joins an optional origin and a cause with a single space.
// An empty origin is treated as absent.
func Describe(origin, cause string) string {
	if origin == "" {
		return cause
	}
	return strings.Join([]string{origin, cause}, " ")
}

func (e *JSONError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.description
}

func (e *JSONError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Kind returns the classification of the error.
func (e *JSONError) Kind() Kind { return e.kind }

// Status returns the HTTP status code.
func (e *JSONError) Status() int { return e.status }

// Description returns the human-readable description.
func (e *JSONError) Description() string { return e.description }

// Body returns the serializable body.
func (e *JSONError) Body() Body { return e.body }

// WithStatus returns a copy of the error with a different HTTP status.
// A zero status leaves the copy unchanged.
func (e *JSONError) WithStatus(status int) *JSONError {
	if e == nil {
		return nil
	}
	c := *e
	if status != 0 {
		c.status = status
	}
	return &c
}

// WithCause returns a copy of the error wrapping cause.
func (e *JSONError) WithCause(cause error) *JSONError {
	if e == nil {
		return nil
	}
	c := *e
	c.cause = cause
	return &c
}

// MarshalJSON renders the body.
func (e *JSONError) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.body)
}

// LogValue implements slog.LogValuer.
func (e *JSONError) LogValue() slog.Value {
	if e == nil {
		return slog.GroupValue()
	}
	attrs := []slog.Attr{
		slog.String("kind", string(e.kind)),
		slog.Int("status", e.status),
		slog.String("description", e.description),
	}
	if e.cause != nil {
		attrs = append(attrs, slog.String("cause", e.cause.Error()))
	}
	return slog.GroupValue(attrs...)
}

// Is reports whether err contains a JSONError of the given kind.
func Is(err error, kind Kind) bool {
	var e *JSONError
	if errors.As(err, &e) {
		return e.kind == kind
	}
	return false
}
