package draft

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/dantv-labs/carepilot/internal/catalog"
	"github.com/dantv-labs/carepilot/internal/gemini"
)

// Completer is the slice of the Gemini client the generator needs. Tests
// substitute a scripted fake.
type Completer interface {
	Complete(ctx context.Context, prompt string, cfg gemini.SamplingConfig) (string, error)
}

// Reviews want varied prose; emails and calls want tighter, more
// deterministic replies. Values carried over from the per-channel tuning of
// the production endpoints.
var sampling = map[catalog.Kind]gemini.SamplingConfig{
	catalog.KindReview: {Temperature: 1.3, TopK: 64, TopP: 0.95},
	catalog.KindEmail:  {Temperature: 0.3, TopK: 40, TopP: 0.9},
	catalog.KindCall:   {Temperature: 0.3, TopK: 40, TopP: 0.9},
}

// Request carries one generation job through the pipeline.
type Request struct {
	Item          catalog.Item
	Tone          Tone
	RequestID     string // caller-supplied variation token, optional
	PreviousDraft string // set when the caller is regenerating
}

// Generator drives prompt building, completion, extraction, and the
// regeneration guard. One upstream call is in flight at a time; retries are
// strictly sequential because the retry decision depends on the prior
// response's content.
type Generator struct {
	llm         Completer
	maxAttempts int
	logger      *slog.Logger
}

func NewGenerator(llm Completer, maxAttempts int, logger *slog.Logger) *Generator {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Generator{llm: llm, maxAttempts: maxAttempts, logger: logger}
}

// Generate runs the pipeline and returns the draft plus the number of
// upstream attempts used. Any error is terminal for the model path: the
// caller decides whether to fall back. Duplicate output triggers a retry
// with a fresh variation token; a duplicate surviving the full attempt
// budget is accepted, not an error.
func (g *Generator) Generate(ctx context.Context, req Request) (Result, int, error) {
	token := req.RequestID
	if token == "" {
		token = "primary"
	}

	for attempt := 1; ; attempt++ {
		seed := uuid.NewString()
		prompt := BuildPrompt(req.Item, req.Tone, token, seed, req.PreviousDraft)

		raw, err := g.llm.Complete(ctx, prompt, sampling[req.Item.Kind()])
		if err != nil {
			return Result{}, attempt, err
		}

		res, err := Extract(raw)
		if err != nil {
			var malformed *MalformedError
			if errors.As(err, &malformed) {
				// Format drift is worth investigating; keep the raw payload.
				g.logger.Error("model payload failed extraction",
					"kind", req.Item.Kind(),
					"item_id", req.Item.ID(),
					"raw", malformed.Raw,
				)
			}
			return Result{}, attempt, err
		}

		if req.PreviousDraft == "" || !sameDraft(res.Text, req.PreviousDraft) {
			return res, attempt, nil
		}
		if attempt >= g.maxAttempts {
			g.logger.Warn("accepting duplicate draft, attempt budget exhausted",
				"kind", req.Item.Kind(),
				"item_id", req.Item.ID(),
				"attempts", attempt,
			)
			return res, attempt, nil
		}

		g.logger.Warn("model repeated previous draft, retrying with new seed",
			"kind", req.Item.Kind(),
			"item_id", req.Item.ID(),
			"attempt", attempt,
		)
		token = uuid.NewString()
	}
}

// sameDraft compares drafts case- and surrounding-whitespace-insensitively.
// Differently worded but semantically equivalent drafts count as distinct;
// tightening this is a product decision, not a bug fix.
func sameDraft(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
