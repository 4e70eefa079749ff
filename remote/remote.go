// Package remote classifies outbound HTTP call failures into JSON errors.
package remote

import (
	"encoding/json"
	"io"
	"net/http"

	jsonerrors "github.com/blackwell-systems/json-errors"
)

// UnreadableBodyDescription is used when a failed response's body could not
// be read to completion.
const UnreadableBodyDescription = "could not read response body"

type apiError struct {
	Error *string `json:"error"`
}

// Classify handles the result of client.Do in one call.
// It returns nil for a 2xx response without error.
func Classify(resp *http.Response, err error) *jsonerrors.JSONError {
	if err != nil {
		return ClassifyError(err)
	}
	if resp == nil {
		return nil
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	return ClassifyResponse(resp)
}

// ClassifyResponse converts a completed response into a JSON error.
//
// The status is kept as is. A body shaped like {"error": "..."} contributes
// its message; any other body is used verbatim, even when empty. The body is
// read to the end and closed.
func ClassifyResponse(resp *http.Response) *jsonerrors.JSONError {
	if resp == nil {
		return nil
	}
	var raw []byte
	if resp.Body != nil {
		defer resp.Body.Close()
		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return jsonerrors.Wrap(jsonerrors.KindRemoteResponse, http.StatusInternalServerError, UnreadableBodyDescription, err)
		}
		raw = b
	}

	description := string(raw)
	var parsed apiError
	if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Error != nil {
		description = *parsed.Error
	}
	return jsonerrors.Verbatim(jsonerrors.KindRemoteResponse, resp.StatusCode, description)
}

// ClassifyError converts a transport-level failure into a JSON error.
// The status carried by the failure is used when present, 500 otherwise.
func ClassifyError(err error) *jsonerrors.JSONError {
	if err == nil {
		return nil
	}
	status, ok := carriedStatus(err)
	if !ok {
		status = http.StatusInternalServerError
	}
	if IsSerialization(err) {
		return jsonerrors.Wrap(jsonerrors.KindSerialization, status, "Serialization error", err)
	}
	return jsonerrors.Wrap(jsonerrors.KindRemoteTransport, status, "Unknown error: "+err.Error(), err)
}
