package draft

import (
	"strings"
	"testing"

	"github.com/dantv-labs/carepilot/internal/catalog"
)

const apologyClause = "We're sorry"

func TestFallback_Totality(t *testing.T) {
	sentiments := []catalog.Sentiment{
		catalog.SentimentPositive,
		catalog.SentimentNegative,
		catalog.SentimentNeutral,
	}

	for _, sentiment := range sentiments {
		for _, tone := range Tones {
			res := Fallback(sentiment, tone)
			if res.Text == "" {
				t.Errorf("Fallback(%s, %s) returned empty text", sentiment, tone)
			}
			if res.KeyConcerns == nil {
				t.Errorf("Fallback(%s, %s) returned nil keyConcerns", sentiment, tone)
			}
			if len(res.KeyConcerns) != 0 {
				t.Errorf("Fallback(%s, %s) claimed concerns it never analyzed: %v", sentiment, tone, res.KeyConcerns)
			}
		}
	}
}

func TestFallback_ApologyInvariant(t *testing.T) {
	for _, tone := range Tones {
		if res := Fallback(catalog.SentimentNegative, tone); !strings.Contains(res.Text, apologyClause) {
			t.Errorf("negative sentiment with tone %s missing apology: %q", tone, res.Text)
		}
		if res := Fallback(catalog.SentimentPositive, tone); strings.Contains(res.Text, apologyClause) {
			t.Errorf("positive sentiment with tone %s must not apologize: %q", tone, res.Text)
		}
		if res := Fallback(catalog.SentimentNeutral, tone); strings.Contains(res.Text, apologyClause) {
			t.Errorf("neutral sentiment with tone %s must not apologize: %q", tone, res.Text)
		}
	}
}

func TestFallback_ToneClosing(t *testing.T) {
	formal := Fallback(catalog.SentimentNeutral, ToneFormal)
	if !strings.Contains(formal.Text, "Kind regards, Customer Care Team.") {
		t.Errorf("formal tone missing sign-off: %q", formal.Text)
	}

	friendly := Fallback(catalog.SentimentNeutral, ToneFriendly)
	if !strings.Contains(friendly.Text, "reach out to our support team") {
		t.Errorf("non-formal tone missing open-ended close: %q", friendly.Text)
	}
	if strings.Contains(friendly.Text, "Kind regards") {
		t.Errorf("non-formal tone must not use the formal sign-off: %q", friendly.Text)
	}
}

func TestFallback_Deterministic(t *testing.T) {
	a := Fallback(catalog.SentimentNegative, ToneApologetic)
	b := Fallback(catalog.SentimentNegative, ToneApologetic)
	if a.Text != b.Text {
		t.Error("fallback must be deterministic for a (sentiment, tone) pair")
	}
}
