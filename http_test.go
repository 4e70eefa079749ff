package jsonerrors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteWithError(t *testing.T) {
	err := NotFound("user not found")

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/test", nil)
	r.Header.Set(HeaderTraceID, "trace123")

	Write(w, r, err)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}

	contentType := w.Header().Get("Content-Type")
	if contentType != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", contentType)
	}

	traceID := w.Header().Get(HeaderTraceID)
	if traceID != "trace123" {
		t.Errorf("expected X-Request-Id trace123, got %s", traceID)
	}

	var response map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if response["error"] != "user not found" {
		t.Errorf("expected error 'user not found', got %v", response["error"])
	}
	if len(response) != 1 {
		t.Errorf("expected only the error field, got %v", response)
	}
}

func TestWriteWithNil(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/test", nil)

	Write(w, r, nil)

	if w.Code != http.StatusNoContent {
		t.Errorf("expected status %d, got %d", http.StatusNoContent, w.Code)
	}
	if w.Body.Len() != 0 {
		t.Error("expected empty body for nil error")
	}
}

func TestWriteWithTypedNil(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/test", nil)

	var e *JSONError
	Write(w, r, e)

	if w.Code != http.StatusNoContent {
		t.Errorf("expected status %d, got %d", http.StatusNoContent, w.Code)
	}
}

func TestWriteWithGenericError(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/test", nil)

	Write(w, r, errors.New("something broke"))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}

	var response Body
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if response.Error != "Internal error" {
		t.Errorf("expected error 'Internal error', got %s", response.Error)
	}
}

func TestWriteAggregate(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/test", nil)

	Write(w, r, Join(
		UnprocessableEntity("email already exists"),
		UnprocessableEntity("user_id violates foreign key"),
	))

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected status %d, got %d", http.StatusUnprocessableEntity, w.Code)
	}

	var response AggregateBody
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if response.Error != "email already exists\nuser_id violates foreign key" {
		t.Errorf("unexpected combined error %q", response.Error)
	}
	if len(response.Errors) != 2 || response.Errors[1] != "user_id violates foreign key" {
		t.Errorf("unexpected errors list %v", response.Errors)
	}
}

func TestWriteSingleAggregate(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/test", nil)

	Write(w, r, Join(NotFound("")))

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}

	var response AggregateBody
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if len(response.Errors) != 1 || response.Errors[0] != "Not found" {
		t.Errorf("expected one entry 'Not found', got %v", response.Errors)
	}
}

func TestWriteWithTraceFromContext(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/test", nil)
	r = r.WithContext(WithTraceID(r.Context(), "context-trace-456"))

	Write(w, r, NotFound("not found"))

	traceID := w.Header().Get(HeaderTraceID)
	if traceID != "context-trace-456" {
		t.Errorf("expected X-Request-Id context-trace-456, got %s", traceID)
	}
}

func TestWriteWithoutTrace(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/test", nil)

	Write(w, r, NotFound(""))

	if _, ok := w.Header()[HeaderTraceID]; ok {
		t.Error("expected no X-Request-Id header")
	}
}

func TestWriteWithDeadlineExceeded(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/test", nil)

	Write(w, r, context.DeadlineExceeded)

	if w.Code != http.StatusGatewayTimeout {
		t.Errorf("expected status %d, got %d", http.StatusGatewayTimeout, w.Code)
	}

	var response Body
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if response.Error != "Request timed out" {
		t.Errorf("expected error 'Request timed out', got %s", response.Error)
	}
}

func TestWriteWithNilAggregate(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/test", nil)

	Write(w, r, Join(nil, nil))

	if w.Code != http.StatusNoContent {
		t.Errorf("expected status %d, got %d", http.StatusNoContent, w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("expected empty body, got %s", w.Body.String())
	}
}

func TestWriteOuterErrorWrappingAggregate(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/test", nil)

	inner := Join(NotFound(""), UnprocessableEntity("x"))
	Write(w, r, Wrap(KindNotFound, http.StatusNotFound, "outer", inner))

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}

	var response map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if response["error"] != "outer" {
		t.Errorf("expected error 'outer', got %v", response["error"])
	}
	if _, ok := response["errors"]; ok {
		t.Errorf("expected no errors list, got %v", response["errors"])
	}
}

func TestWriteAggregateWrappedByPlainError(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/test", nil)

	inner := Join(UnprocessableEntity("a"), UnprocessableEntity("b"))
	Write(w, r, fmt.Errorf("checkout: %w", inner))

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected status %d, got %d", http.StatusUnprocessableEntity, w.Code)
	}

	var response AggregateBody
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if len(response.Errors) != 2 {
		t.Errorf("expected 2 entries, got %v", response.Errors)
	}
}
