package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLogger(t *testing.T) {
	obs, logs := observer.New(zap.InfoLevel)
	mw := RequestLogger(zap.New(obs))

	req := httptest.NewRequest(http.MethodGet, "/catalog/health", nil)
	rec := httptest.NewRecorder()
	if err := mw(newTestRequestEvent(req, rec)); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["method"] != http.MethodGet {
		t.Errorf("method = %v", fields["method"])
	}
	if fields["path"] != "/catalog/health" {
		t.Errorf("path = %v", fields["path"])
	}
	if _, ok := fields["duration"]; !ok {
		t.Error("duration not logged")
	}

	id := rec.Header().Get(RequestIDHeader)
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("response request ID %q is not a UUID", id)
	}
	if fields["request_id"] != id {
		t.Errorf("logged request_id = %v, want %q", fields["request_id"], id)
	}
}

func TestRequestLogger_KeepsIncomingID(t *testing.T) {
	mw := RequestLogger(zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/catalog/filters", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	if err := mw(newTestRequestEvent(req, rec)); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}

	if got := rec.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("request ID = %q, want abc-123", got)
	}
}
