package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dantv-labs/carepilot/internal/catalog"
	"github.com/dantv-labs/carepilot/internal/draft"
	"github.com/dantv-labs/carepilot/internal/gemini"
	"github.com/dantv-labs/carepilot/internal/summary"
)

// scriptedCompleter replays payloads or errors in order and counts calls.
type scriptedCompleter struct {
	payloads []string
	errs     []error
	calls    int
}

func (f *scriptedCompleter) Complete(_ context.Context, _ string, _ gemini.SamplingConfig) (string, error) {
	i := f.calls
	f.calls++
	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	if i < len(f.payloads) {
		return f.payloads[i], nil
	}
	return "", &gemini.UpstreamError{Message: "scripted completer exhausted"}
}

func newTestServer(llm *scriptedCompleter) *Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(0,
		catalog.New(),
		draft.NewGenerator(llm, 3, logger),
		summary.New(llm, logger),
		nil, nil, 0, logger)
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(&scriptedCompleter{})

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status ok, got %q", body["status"])
	}
}

func TestStatusEndpoint(t *testing.T) {
	srv := newTestServer(&scriptedCompleter{})

	req := httptest.NewRequest("GET", "/api/v1/carepilot/status", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}

	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["service"] != "carepilot" {
		t.Errorf("expected service carepilot, got %q", body["service"])
	}
}

func TestNotFoundEndpoint(t *testing.T) {
	srv := newTestServer(&scriptedCompleter{})

	req := httptest.NewRequest("GET", "/nonexistent", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
