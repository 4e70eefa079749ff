package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
)

// ErrSerialization marks a failure to encode a request or decode a response.
var ErrSerialization = errors.New("remote: serialization failure")

// Error is a failed outbound call that produced no usable response.
type Error struct {
	// StatusCode is the HTTP status obtained before the failure (0 if none).
	StatusCode int
	// Serialization is set when the payload could not be encoded or decoded.
	Serialization bool
	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return "remote call failed"
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Status returns the carried HTTP status, 0 when none was obtained.
func (e *Error) Status() int { return e.StatusCode }

// Do sends req with client, wrapping any transport failure in *Error.
// A nil client uses http.DefaultClient.
func Do(ctx context.Context, client *http.Client, req *http.Request) (*http.Response, error) {
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req.WithContext(ctx))
	if err != nil {
		return nil, &Error{Err: err}
	}
	return resp, nil
}

// DecodeJSON decodes a successful response body into v and closes it.
// Decode failures are reported as serialization errors.
func DecodeJSON(resp *http.Response, v any) error {
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &Error{Serialization: true, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// IsSerialization reports whether err is an encoding or decoding failure.
func IsSerialization(err error) bool {
	var re *Error
	if errors.As(err, &re) && re.Serialization {
		return true
	}
	if errors.Is(err, ErrSerialization) {
		return true
	}
	var (
		syntaxErr      *json.SyntaxError
		typeErr        *json.UnmarshalTypeError
		marshalerErr   *json.MarshalerError
		unsupportedErr *json.UnsupportedTypeError
	)
	return errors.As(err, &syntaxErr) ||
		errors.As(err, &typeErr) ||
		errors.As(err, &marshalerErr) ||
		errors.As(err, &unsupportedErr)
}

// IsTransport reports whether err came from the HTTP layer rather than from
// the remote service's own error handling.
func IsTransport(err error) bool {
	if err == nil {
		return false
	}
	var (
		re     *Error
		urlErr *url.Error
		netErr net.Error
	)
	return errors.As(err, &re) ||
		errors.As(err, &urlErr) ||
		errors.As(err, &netErr) ||
		IsSerialization(err)
}

type statusCarrier interface {
	Status() int
}

// carriedStatus returns the first positive status found in err's chain.
func carriedStatus(err error) (int, bool) {
	for err != nil {
		if sc, ok := err.(statusCarrier); ok && sc.Status() > 0 {
			return sc.Status(), true
		}
		err = errors.Unwrap(err)
	}
	return 0, false
}
