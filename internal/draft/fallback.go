package draft

import "github.com/dantv-labs/carepilot/internal/catalog"

// Fallback composes a deterministic templated reply for the failure edge.
// It is total: every (sentiment, tone) pair yields a non-empty text. The
// fallback never claims key concerns it did not analyze.
func Fallback(sentiment catalog.Sentiment, tone Tone) Result {
	base := "Thanks for taking the time to share your experience."

	apology := ""
	if sentiment == catalog.SentimentNegative {
		apology = " We're sorry to hear things didn't go as expected and we'd like to help make it right."
	}

	close := " Please reach out to our support team if there's anything else we can do."
	if tone == ToneFormal {
		close = " Kind regards, Customer Care Team."
	}

	return Result{
		Text:        base + apology + " We appreciate your detailed feedback and are already reviewing it with our product specialists." + close,
		KeyConcerns: []string{},
	}
}
