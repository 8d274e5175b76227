package summary

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/dantv-labs/carepilot/internal/catalog"
	"github.com/dantv-labs/carepilot/internal/gemini"
)

type fakeCompleter struct {
	payload string
	err     error
	prompts []string
}

func (f *fakeCompleter) Complete(_ context.Context, prompt string, _ gemini.SamplingConfig) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.payload, f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const validReport = `{"summary":"Mostly positive.","strengths":["picture"],"weaknesses":["speakers"],"recommendations":["bundle a soundbar"]}`

func TestSummarizeReviews(t *testing.T) {
	llm := &fakeCompleter{payload: "```json\n" + validReport + "\n```"}
	s := New(llm, testLogger())

	rep, err := s.SummarizeReviews(context.Background(), catalog.New().Reviews())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.Summary != "Mostly positive." {
		t.Errorf("unexpected summary %q", rep.Summary)
	}
	if len(rep.Recommendations) != 1 {
		t.Errorf("unexpected recommendations %v", rep.Recommendations)
	}

	if len(llm.prompts) != 1 {
		t.Fatalf("expected 1 upstream call, got %d", len(llm.prompts))
	}
	if !strings.Contains(llm.prompts[0], "Review (Rating: 5/5):") {
		t.Error("prompt missing rating-annotated review lines")
	}
}

func TestSummarizeEmails_ProductContext(t *testing.T) {
	c := catalog.New()

	llm := &fakeCompleter{payload: validReport}
	s := New(llm, testLogger())

	if _, err := s.SummarizeEmails(context.Background(), c.Emails(""), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(llm.prompts[0], "across all product models") {
		t.Error("unfiltered summary should mention all product models")
	}

	if _, err := s.SummarizeEmails(context.Background(), c.Emails("TV-Model 2"), "TV-Model 2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(llm.prompts[1], "DanTV - TV-Model 2") {
		t.Error("filtered summary should scope the analyst prompt to the model")
	}
	if !strings.Contains(llm.prompts[1], "Subject: Screen went black two days after delivery") {
		t.Error("prompt missing email subject lines")
	}
}

func TestSummarize_RejectsIncompleteReport(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"invalid JSON", "```json\n{not valid}\n```"},
		{"missing summary", `{"strengths":[],"weaknesses":[],"recommendations":[]}`},
		{"missing recommendations", `{"summary":"x","strengths":[],"weaknesses":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			llm := &fakeCompleter{payload: tt.payload}
			s := New(llm, testLogger())
			if _, err := s.SummarizeReviews(context.Background(), catalog.New().Reviews()); err == nil {
				t.Error("expected error for incomplete report")
			}
		})
	}
}

func TestSummarize_UpstreamErrorWrapped(t *testing.T) {
	upstream := &gemini.UpstreamError{StatusCode: 500, Message: "boom"}
	llm := &fakeCompleter{err: upstream}
	s := New(llm, testLogger())

	_, err := s.SummarizeReviews(context.Background(), catalog.New().Reviews())
	if !errors.Is(err, upstream) {
		t.Fatalf("expected wrapped upstream error, got %v", err)
	}
}
