package summary

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/dantv-labs/carepilot/internal/catalog"
	"github.com/dantv-labs/carepilot/internal/gemini"
)

// Completer mirrors the generation client surface the summarizer uses.
type Completer interface {
	Complete(ctx context.Context, prompt string, cfg gemini.SamplingConfig) (string, error)
}

// Batch analysis favors determinism over variety.
var samplingConfig = gemini.SamplingConfig{Temperature: 0.3, TopK: 40, TopP: 0.9}

// Report is the structured outcome of a batch analysis. All four fields are
// required; a response missing any of them is rejected.
type Report struct {
	Summary         string   `json:"summary"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Recommendations []string `json:"recommendations"`
}

type Summarizer struct {
	llm    Completer
	logger *slog.Logger
}

func New(llm Completer, logger *slog.Logger) *Summarizer {
	return &Summarizer{llm: llm, logger: logger}
}

// SummarizeReviews aggregates every review into one analyst prompt.
func (s *Summarizer) SummarizeReviews(ctx context.Context, reviews []catalog.Review) (*Report, error) {
	lines := make([]string, len(reviews))
	for i, r := range reviews {
		lines[i] = fmt.Sprintf("Review (Rating: %d/5): %s", r.Rating, r.Text)
	}

	s.logger.Info("summarizing reviews", "count", len(reviews))

	raw, err := s.llm.Complete(ctx, fmt.Sprintf(reviewSummaryPrompt, strings.Join(lines, "\n\n")), samplingConfig)
	if err != nil {
		return nil, fmt.Errorf("review summary: %w", err)
	}
	return s.parse(raw)
}

// SummarizeEmails aggregates support emails, optionally scoped to one
// product model.
func (s *Summarizer) SummarizeEmails(ctx context.Context, emails []catalog.Email, productModel string) (*Report, error) {
	lines := make([]string, len(emails))
	for i, e := range emails {
		lines[i] = fmt.Sprintf("Subject: %s | Priority: %s | Sentiment: %s\n%s",
			e.Subject, e.Priority, e.Label, e.BodyText)
	}

	productContext := "across all product models"
	if productModel != "" {
		productContext = "- " + productModel
	}

	s.logger.Info("summarizing emails", "count", len(emails), "product_model", productModel)

	raw, err := s.llm.Complete(ctx, fmt.Sprintf(emailSummaryPrompt, productContext, strings.Join(lines, "\n\n")), samplingConfig)
	if err != nil {
		return nil, fmt.Errorf("email summary: %w", err)
	}
	return s.parse(raw)
}

var fenceRe = regexp.MustCompile("```json\\s*|```")

func (s *Summarizer) parse(raw string) (*Report, error) {
	cleaned := strings.TrimSpace(fenceRe.ReplaceAllString(raw, ""))

	var rep Report
	if err := json.Unmarshal([]byte(cleaned), &rep); err != nil {
		s.logger.Error("failed to parse summary response", "error", err, "raw", raw)
		return nil, fmt.Errorf("parse summary: %w", err)
	}
	if rep.Summary == "" || rep.Strengths == nil || rep.Weaknesses == nil || rep.Recommendations == nil {
		s.logger.Error("summary response missing required fields", "raw", raw)
		return nil, fmt.Errorf("summary response missing required fields")
	}
	return &rep, nil
}
