package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dantv-labs/carepilot/internal/catalog"
	"github.com/dantv-labs/carepilot/internal/draft"
	"github.com/dantv-labs/carepilot/internal/journal"
)

type responseRequest struct {
	ItemID           string `json:"itemId"`
	Tone             string `json:"tone"`
	RequestID        string `json:"requestId,omitempty"`
	PreviousResponse string `json:"previousResponse,omitempty"`
}

// generateResponse handles POST /api/v1/responses/{kind}. Its defining
// invariant: a well-formed request for a known item always gets a 200 with a
// usable draft. Pipeline failures degrade to the template, never to a 5xx.
func (s *Server) generateResponse(w http.ResponseWriter, r *http.Request) {
	kind, err := catalog.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	var req responseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.logger.Error("unreadable request body", "kind", kind, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if req.ItemID == "" || req.Tone == "" {
		writeError(w, http.StatusBadRequest, "missing itemId or tone")
		return
	}
	tone, err := draft.ParseTone(req.Tone)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	item, ok := s.catalog.Lookup(kind, req.ItemID)
	if !ok {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}

	s.logger.Info("generating response",
		"kind", kind,
		"item_id", req.ItemID,
		"tone", tone,
		"regen", req.PreviousResponse != "",
	)

	res, attempts, err := s.generator.Generate(r.Context(), draft.Request{
		Item:          item,
		Tone:          tone,
		RequestID:     req.RequestID,
		PreviousDraft: req.PreviousResponse,
	})

	source := journal.SourceModel
	if err != nil {
		s.logger.Error("generation failed, falling back to template",
			"kind", kind,
			"item_id", req.ItemID,
			"attempts", attempts,
			"error", err,
		)
		// A small pause keeps the degraded template from looking
		// suspiciously instant next to a live model call.
		time.Sleep(s.fallbackDelay)
		res = draft.Fallback(item.Sentiment(), tone)
		source = journal.SourceFallback
	}

	s.record(r.Context(), journal.Entry{
		Kind:     string(kind),
		ItemID:   item.ID(),
		Tone:     string(tone),
		Source:   source,
		Attempts: attempts,
		Regen:    req.PreviousResponse != "",
	})

	writeJSON(w, http.StatusOK, res)
}
