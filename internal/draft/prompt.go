package draft

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/dantv-labs/carepilot/internal/catalog"
)

var personaAdjectives = []string{"empathetic", "professional", "helpful", "concise", "warm"}

var channelNouns = map[catalog.Kind]string{
	catalog.KindReview: "a product review",
	catalog.KindEmail:  "an incoming customer email",
	catalog.KindCall:   "a transcribed support phone call",
}

// BuildPrompt assembles the generation prompt for one attempt. The variation
// token and seed carry no meaning; they exist only to perturb sampling so a
// retried call is unlikely to reproduce the same output. When previousDraft
// is set, the prompt demands a structurally distinct alternative.
func BuildPrompt(item catalog.Item, tone Tone, variationToken, variationSeed, previousDraft string) string {
	adjective := personaAdjectives[rand.Intn(len(personaAdjectives))]

	var sb strings.Builder
	fmt.Fprintf(&sb, "You are a %s customer-care specialist for DanTV drafting a reply to %s.\n",
		adjective, channelNouns[item.Kind()])
	sb.WriteString("If you suggest contacting customer service, use this link: dantv.customerservise.dk\n\n")

	fmt.Fprintf(&sb, "Tone required: %s\n", tone)
	sb.WriteString(item.PromptContext())
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Variation token: %s\n", variationToken)
	fmt.Fprintf(&sb, "Variation seed: %s\n", variationSeed)

	if previousDraft != "" {
		sb.WriteString("\nPrevious draft (provide a distinctly different alternative):\n")
		sb.WriteString("\"\"\"\n")
		sb.WriteString(previousDraft)
		sb.WriteString("\n\"\"\"\n")
	}

	sb.WriteString("\nCustomer message:\n\"\"\"\n")
	sb.WriteString(item.Body())
	sb.WriteString("\n\"\"\"\n\n")

	sb.WriteString("Respond as the brand using the requested tone. Address the customer's key concerns, show accountability, and offer a clear next step when relevant. Keep the response under 180 words.\n")

	if previousDraft != "" {
		sb.WriteString("\nIMPORTANT: A previous draft is provided above. You MUST generate a response that is SIGNIFICANTLY different in structure and vocabulary. Do not just swap a few words. Use a completely different opening and closing. The goal is a fresh alternative option.\n")
	}

	sb.WriteString(`
Strictly return ONLY a valid, raw JSON object (no markdown, no surrounding backticks, no comments) in this exact shape:
{
  "response": "<the drafted reply as plain text>",
  "keyConcerns": ["<concern 1>", "<concern 2>"]
}
Include 0-3 concise keyConcerns items.`)

	return sb.String()
}
