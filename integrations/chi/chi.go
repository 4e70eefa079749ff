// Package chi provides thin adapters for using json-errors with the chi router.
//
// Chi uses standard net/http handlers, so jsonerrors.Write works directly.
package chi

import (
	"net/http"

	jsonerrors "github.com/blackwell-systems/json-errors"
)

// Trace is jsonerrors.TraceMiddleware exposed as a chi middleware.
//
// Example:
//
//	r := chi.NewRouter()
//	r.Use(chi.Trace)
func Trace(next http.Handler) http.Handler {
	return jsonerrors.TraceMiddleware(next)
}

// HandlerFunc is an http handler that reports failure by returning an error.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handler adapts fn to http.HandlerFunc, writing any returned error as a
// JSON error response. Classify the error first (storage.Classify,
// remote.Classify, ...) to get a specific status and description.
//
// Example:
//
//	r.Get("/users/{id}", chi.Handler(func(w http.ResponseWriter, r *http.Request) error {
//	    u, err := repo.Get(r.Context(), chi.URLParam(r, "id"))
//	    if err != nil {
//	        return storage.Classify(err)
//	    }
//	    return json.NewEncoder(w).Encode(u)
//	}))
func Handler(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			jsonerrors.Write(w, r, err)
		}
	}
}
