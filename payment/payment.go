// Package payment classifies Stripe client failures into JSON errors.
//
// Errors returned by the Stripe API itself (card declines, invalid
// parameters) are client-correctable and always map to 422. Failures of the
// underlying HTTP call are handed to the remote package. Anything else is
// logged once at debug level and reported as a generic 500.
package payment

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/stripe/stripe-go/v82"

	jsonerrors "github.com/blackwell-systems/json-errors"
	"github.com/blackwell-systems/json-errors/remote"
)

const (
	// FallbackDescription is used for a Stripe error without a message.
	FallbackDescription = "Stripe error"
	// UnknownDescription is used for failures that are neither Stripe API
	// errors nor transport failures.
	UnknownDescription = "Unknown Stripe error"
)

// Classifier converts Stripe client errors. The zero value logs to
// slog.Default().
type Classifier struct {
	logger *slog.Logger
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithLogger sets the logger receiving the diagnostic line for
// unclassifiable errors. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Classifier) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClassifier creates a Classifier.
func NewClassifier(opts ...Option) *Classifier {
	c := &Classifier{logger: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify converts err using a classifier with the default logger.
func Classify(err error) *jsonerrors.JSONError {
	return NewClassifier().Classify(err)
}

// Classify converts a Stripe client error into a JSON error. It returns nil
// for a nil error.
func (c *Classifier) Classify(err error) *jsonerrors.JSONError {
	if err == nil {
		return nil
	}

	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		// Always 422, whatever status Stripe reported.
		return jsonerrors.Wrap(jsonerrors.KindProviderRejected, http.StatusUnprocessableEntity, Describe(stripeErr), err)
	}

	if remote.IsTransport(err) {
		return remote.ClassifyError(err)
	}

	c.log().Debug("could not convert stripe error", "error", fmt.Sprintf("%+v", err))
	return jsonerrors.Wrap(jsonerrors.KindProvider, http.StatusInternalServerError, UnknownDescription, err)
}

func (c *Classifier) log() *slog.Logger {
	if c.logger == nil {
		return slog.Default()
	}
	return c.logger
}

// Describe renders a Stripe API error as "<message> (<param>)", "<message>",
// or the fallback when no message is present.
func Describe(err *stripe.Error) string {
	if err == nil || err.Msg == "" {
		return FallbackDescription
	}
	if err.Param != "" {
		return fmt.Sprintf("%s (%s)", err.Msg, err.Param)
	}
	return err.Msg
}
