// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/tomtom215/cinematch/internal/logging"
)

func TestRequestID_GeneratesNewID(t *testing.T) {
	t.Parallel()

	var capturedID, loggingID, correlationID string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedID = GetRequestID(r.Context())
		loggingID = logging.RequestIDFromContext(r.Context())
		correlationID = logging.CorrelationIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

	responseID := rec.Header().Get(RequestIDHeader)
	if _, err := uuid.Parse(responseID); err != nil {
		t.Errorf("Response X-Request-ID is not a valid UUID: %v", err)
	}
	if capturedID != responseID {
		t.Errorf("Context ID (%s) doesn't match response header ID (%s)", capturedID, responseID)
	}
	if loggingID != responseID {
		t.Errorf("logging request ID = %q, want %q", loggingID, responseID)
	}
	if correlationID == "" {
		t.Error("Expected a correlation ID in the logging context")
	}
}

func TestRequestID_PreservesExistingID(t *testing.T) {
	t.Parallel()

	var capturedID string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedID = GetRequestID(r.Context())
	}))

	existingID := "existing-request-id-12345"
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(RequestIDHeader, existingID)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get(RequestIDHeader); got != existingID {
		t.Errorf("Expected X-Request-ID to be %s, got %s", existingID, got)
	}
	if capturedID != existingID {
		t.Errorf("Expected context ID to be %s, got %s", existingID, capturedID)
	}
}

func TestRequestID_ReplacesOversizedID(t *testing.T) {
	t.Parallel()

	handler := RequestID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(RequestIDHeader, strings.Repeat("x", maxRequestIDLength+1))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if _, err := uuid.Parse(rec.Header().Get(RequestIDHeader)); err != nil {
		t.Errorf("oversized ID was not replaced with a UUID: %v", err)
	}
}

func TestGetRequestID_Missing(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if id := GetRequestID(req.Context()); id != "" {
		t.Errorf("GetRequestID() = %q, want empty", id)
	}
}

func TestRequestID_SeedsContextLogger(t *testing.T) {
	t.Parallel()

	var seeded bool
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, seeded = logging.LoggerFromContext(r.Context())
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test", nil))

	if !seeded {
		t.Error("RequestID did not store a logger in the request context")
	}
}

func TestRequestID_KeepsUpstreamLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logging.Ctx(r.Context()).Info().Msg("inside")
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(RequestIDHeader, "upstream-id")
	req = req.WithContext(logging.ContextWithLogger(req.Context(), logging.NewTestLogger(&buf)))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	if !strings.Contains(out, `"request_id":"upstream-id"`) {
		t.Errorf("expected request_id on the upstream logger, got: %s", out)
	}
	if strings.Contains(out, `"component":"http"`) {
		t.Errorf("upstream logger was replaced: %s", out)
	}
}
