package jsonerrors

import (
	"encoding/json"
	"strings"
)

// AggregateBody is the serialized form of JSONErrors.
type AggregateBody struct {
	Error  string   `json:"error"`
	Errors []string `json:"errors"`
}

// JSONErrors is an ordered collection of JSONError values reported
// under one overall status.
type JSONErrors struct {
	errs   []*JSONError
	status int
	pinned bool
}

// Join collects errs into an aggregate, skipping nil entries.
// It returns nil when no error remains.
//
// The overall status is the highest status among the members, so a single
// 5xx member makes the whole response a 5xx. Join(e) has e's status.
func Join(errs ...*JSONError) *JSONErrors {
	agg := &JSONErrors{}
	for _, e := range errs {
		if e == nil {
			continue
		}
		agg.errs = append(agg.errs, e)
		if e.status > agg.status {
			agg.status = e.status
		}
	}
	if len(agg.errs) == 0 {
		return nil
	}
	return agg
}

// Append returns a new aggregate holding the receiver's errors followed by errs.
// The receiver is left untouched. A status set with WithStatus is carried
// over as is; otherwise the highest status still wins.
func (e *JSONErrors) Append(errs ...*JSONError) *JSONErrors {
	if e == nil {
		return Join(errs...)
	}
	merged := make([]*JSONError, 0, len(e.errs)+len(errs))
	merged = append(merged, e.errs...)
	merged = append(merged, errs...)
	out := Join(merged...)
	if out == nil {
		return nil
	}
	if e.pinned {
		out.status = e.status
		out.pinned = true
	} else if out.status < e.status {
		out.status = e.status
	}
	return out
}

// WithStatus returns a copy of the aggregate reported under status.
// A zero status leaves the copy unchanged.
func (e *JSONErrors) WithStatus(status int) *JSONErrors {
	if e == nil {
		return nil
	}
	c := &JSONErrors{
		errs:   append([]*JSONError(nil), e.errs...),
		status: e.status,
		pinned: e.pinned,
	}
	if status != 0 {
		c.status = status
		c.pinned = true
	}
	return c
}

// Status returns the overall HTTP status, 0 for a nil aggregate.
func (e *JSONErrors) Status() int {
	if e == nil {
		return 0
	}
	return e.status
}

// Len returns the number of collected errors.
func (e *JSONErrors) Len() int {
	if e == nil {
		return 0
	}
	return len(e.errs)
}

// Errors returns the collected errors in insertion order.
func (e *JSONErrors) Errors() []*JSONError {
	if e == nil {
		return nil
	}
	return append([]*JSONError(nil), e.errs...)
}

// Descriptions returns each member's description in insertion order.
func (e *JSONErrors) Descriptions() []string {
	if e == nil {
		return nil
	}
	out := make([]string, 0, len(e.errs))
	for _, err := range e.errs {
		out = append(out, err.description)
	}
	return out
}

func (e *JSONErrors) Error() string {
	if e == nil {
		return "<nil>"
	}
	return strings.Join(e.Descriptions(), "\n")
}

// Unwrap exposes the members to errors.Is and errors.As.
func (e *JSONErrors) Unwrap() []error {
	if e == nil {
		return nil
	}
	out := make([]error, 0, len(e.errs))
	for _, err := range e.errs {
		out = append(out, err)
	}
	return out
}

// Body returns the combined description and the per-error list.
func (e *JSONErrors) Body() AggregateBody {
	descriptions := e.Descriptions()
	if descriptions == nil {
		descriptions = []string{}
	}
	return AggregateBody{
		Error:  strings.Join(descriptions, "\n"),
		Errors: descriptions,
	}
}

// MarshalJSON renders the aggregate body.
func (e *JSONErrors) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Body())
}
