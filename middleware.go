package jsonerrors

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type traceIDKey struct{}

// TraceIDFromRequest returns the request's trace ID. The X-Request-Id header
// takes precedence over an ID stored in the context.
func TraceIDFromRequest(r *http.Request) string {
	if r == nil {
		return ""
	}
	if id := r.Header.Get(HeaderTraceID); id != "" {
		return id
	}
	return TraceIDFromContext(r.Context())
}

// TraceIDFromContext returns the trace ID stored by WithTraceID, if any.
func TraceIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(traceIDKey{}).(string)
	return id
}

// WithTraceID stores a trace ID in ctx.
func WithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, id)
}

// TraceMiddleware assigns every request a trace ID, reusing an incoming
// X-Request-Id, and echoes it on the response whether or not it fails.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderTraceID)
		if id == "" {
			id = newTraceID()
		}
		w.Header().Set(HeaderTraceID, id)
		next.ServeHTTP(w, r.WithContext(WithTraceID(r.Context(), id)))
	})
}

func newTraceID() string {
	return uuid.NewString()
}
