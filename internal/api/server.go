package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dantv-labs/carepilot/internal/catalog"
	"github.com/dantv-labs/carepilot/internal/draft"
	"github.com/dantv-labs/carepilot/internal/events"
	"github.com/dantv-labs/carepilot/internal/journal"
	"github.com/dantv-labs/carepilot/internal/summary"
)

type Server struct {
	router        *chi.Mux
	port          int
	catalog       *catalog.Catalog
	generator     *draft.Generator
	summarizer    *summary.Summarizer
	journal       *journal.Journal   // optional
	events        *events.Publisher  // optional
	fallbackDelay time.Duration
	logger        *slog.Logger
}

func NewServer(port int, cat *catalog.Catalog, gen *draft.Generator, sum *summary.Summarizer,
	jnl *journal.Journal, pub *events.Publisher, fallbackDelay time.Duration, logger *slog.Logger) *Server {

	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router:        router,
		port:          port,
		catalog:       cat,
		generator:     gen,
		summarizer:    sum,
		journal:       jnl,
		events:        pub,
		fallbackDelay: fallbackDelay,
		logger:        logger,
	}

	router.Get("/health", s.health)
	router.Get("/api/v1/carepilot/status", s.status)
	router.Post("/api/v1/responses/{kind}", s.generateResponse)
	router.Post("/api/v1/summaries/reviews", s.summarizeReviews)
	router.Post("/api/v1/summaries/emails", s.summarizeEmails)

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("API server starting", "addr", addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	body := map[string]any{
		"service": "carepilot",
		"status":  "ok",
	}
	if s.journal != nil {
		if rate, err := s.journal.FallbackRate(r.Context()); err == nil {
			body["fallback_rate"] = rate
		}
	}
	writeJSON(w, http.StatusOK, body)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// record captures the generation outcome in the audit journal and on the
// event bus. Failures are logged, never surfaced: observability must not
// break the response path.
func (s *Server) record(ctx context.Context, entry journal.Entry) {
	if s.journal != nil {
		if err := s.journal.Record(ctx, entry); err != nil {
			s.logger.Error("failed to record generation entry", "error", err)
		}
	}
	if s.events != nil {
		subject := events.SubjectDraftGenerated
		if entry.Source == journal.SourceFallback {
			subject = events.SubjectDraftFallback
		}
		if err := s.events.Publish(subject, events.DraftEvent{
			Kind:     entry.Kind,
			ItemID:   entry.ItemID,
			Tone:     entry.Tone,
			Attempts: entry.Attempts,
			Regen:    entry.Regen,
		}); err != nil {
			s.logger.Error("failed to publish draft event", "error", err)
		}
	}
}
