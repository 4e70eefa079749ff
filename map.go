package jsonerrors

import (
	"context"
	"errors"
	"net"
	"net/http"
)

// StatusClientClosedRequest is the non-standard status used when the
// caller went away before the response was written.
const StatusClientClosedRequest = 499

// NotFound creates a not found error (404).
func NotFound(description string) *JSONError {
	return New(KindNotFound, http.StatusNotFound, description)
}

// UnprocessableEntity creates an unprocessable entity error (422).
func UnprocessableEntity(description string) *JSONError {
	return New(KindUnprocessableEntity, http.StatusUnprocessableEntity, description)
}

// Internal creates an internal server error (500).
func Internal(description string) *JSONError {
	return New(KindInternal, http.StatusInternalServerError, description)
}

// Timeout creates a timeout error (504).
func Timeout(description string) *JSONError {
	return New(KindTimeout, http.StatusGatewayTimeout, description)
}

// None reports a lookup that produced no value, such as a false comma-ok
// result or a nil pointer.
func None() *JSONError {
	return New(KindNotFound, http.StatusNotFound, "None")
}

// From maps arbitrary errors into a *JSONError.
// Values already normalized pass through; context errors and network
// timeouts get their own statuses; anything else becomes a 500 that keeps
// the raw error as its cause without exposing it in the description.
func From(err error) *JSONError {
	if err == nil {
		return nil
	}

	if e, agg, ok := firstNormalized(err); ok {
		switch {
		case agg == nil:
			return e
		case agg.Len() == 0:
			return nil
		case agg.Len() == 1 && agg.errs[0].status == agg.status:
			return agg.errs[0]
		case agg.Len() == 1:
			return agg.errs[0].WithStatus(agg.status)
		default:
			return New(KindInternal, agg.status, agg.Error()).WithCause(agg)
		}
	}

	// Context-driven
	if errors.Is(err, context.DeadlineExceeded) {
		return Wrap(KindTimeout, http.StatusGatewayTimeout, "", err)
	}
	if errors.Is(err, context.Canceled) {
		return Wrap(KindCanceled, StatusClientClosedRequest, "", err)
	}

	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return Wrap(KindTimeout, http.StatusGatewayTimeout, "", err)
	}

	return Wrap(KindInternal, http.StatusInternalServerError, "", err)
}

// firstNormalized walks err's chain depth-first, in the order errors.As
// does, and stops at the first *JSONError or *JSONErrors. Either result may
// be a typed nil when that is what the chain holds.
func firstNormalized(err error) (*JSONError, *JSONErrors, bool) {
	for err != nil {
		switch v := err.(type) {
		case *JSONError:
			return v, nil, true
		case *JSONErrors:
			return nil, v, true
		}
		switch u := err.(type) {
		case interface{ Unwrap() error }:
			err = u.Unwrap()
		case interface{ Unwrap() []error }:
			for _, inner := range u.Unwrap() {
				if e, agg, ok := firstNormalized(inner); ok {
					return e, agg, true
				}
			}
			return nil, nil, false
		default:
			return nil, nil, false
		}
	}
	return nil, nil, false
}
