package api

import (
	"encoding/json"
	"net/http"

	"github.com/dantv-labs/carepilot/internal/events"
)

type emailSummaryRequest struct {
	ProductModel string `json:"productModel,omitempty"`
}

// summarizeReviews handles POST /api/v1/summaries/reviews. Summaries have
// no fallback path; an upstream failure is a 500.
func (s *Server) summarizeReviews(w http.ResponseWriter, r *http.Request) {
	rep, err := s.summarizer.SummarizeReviews(r.Context(), s.catalog.Reviews())
	if err != nil {
		s.logger.Error("review summary failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to generate summary")
		return
	}

	if s.events != nil {
		if err := s.events.Publish(events.SubjectSummaryGenerated, map[string]string{"scope": "reviews"}); err != nil {
			s.logger.Error("failed to publish summary event", "error", err)
		}
	}

	writeJSON(w, http.StatusOK, rep)
}

// summarizeEmails handles POST /api/v1/summaries/emails. An empty or absent
// body summarizes every email; productModel narrows the batch.
func (s *Server) summarizeEmails(w http.ResponseWriter, r *http.Request) {
	var req emailSummaryRequest
	// Tolerate an empty body; the filter is optional.
	_ = json.NewDecoder(r.Body).Decode(&req)

	rep, err := s.summarizer.SummarizeEmails(r.Context(), s.catalog.Emails(req.ProductModel), req.ProductModel)
	if err != nil {
		s.logger.Error("email summary failed", "error", err, "product_model", req.ProductModel)
		writeError(w, http.StatusInternalServerError, "failed to generate summary")
		return
	}

	if s.events != nil {
		if err := s.events.Publish(events.SubjectSummaryGenerated, map[string]string{
			"scope":         "emails",
			"product_model": req.ProductModel,
		}); err != nil {
			s.logger.Error("failed to publish summary event", "error", err)
		}
	}

	writeJSON(w, http.StatusOK, rep)
}
