package jsonerrors

import (
	"encoding/json"
	"net/http"
)

const (
	// HeaderTraceID is the standard header name for trace/request IDs.
	HeaderTraceID = "X-Request-Id"
)

// Write renders err as a JSON error response.
//
// When the first normalized value in the chain is an aggregate it is written
// as {"error": "<joined>", "errors": [...]}. Anything else goes through From
// and is written as {"error": "<description>"}. A nil error, including a nil
// *JSONError or *JSONErrors, writes 204.
func Write(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if _, agg, ok := firstNormalized(err); ok && agg.Len() > 0 {
		writeJSON(w, r, agg.status, agg.Body())
		return
	}

	e := From(err)
	if e == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, r, e.status, e.body)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	if id := TraceIDFromRequest(r); id != "" {
		w.Header().Set(HeaderTraceID, id)
	}
	if status == 0 {
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(body)
}
