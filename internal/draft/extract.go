package draft

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Result is the canonical output of the pipeline, whether the text came from
// the model or the fallback composer. KeyConcerns is never nil.
type Result struct {
	Text        string   `json:"text"`
	KeyConcerns []string `json:"keyConcerns"`
}

// MalformedError indicates the model ignored the output-format instruction:
// empty payload, unparseable JSON, or a missing response field. Raw carries
// the offending payload for diagnosis.
type MalformedError struct {
	Reason string
	Raw    string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed model payload: %s", e.Reason)
}

var fenceRe = regexp.MustCompile("```json\\s*|```")

// Extract is the contract boundary between untrusted model output and a
// typed result. It strips markdown code fences, parses the JSON object, and
// validates the response field. keyConcerns defaults to empty when absent or
// wrong-typed.
func Extract(raw string) (Result, error) {
	cleaned := strings.TrimSpace(fenceRe.ReplaceAllString(raw, ""))
	if cleaned == "" {
		return Result{}, &MalformedError{Reason: "empty payload", Raw: raw}
	}

	var parsed struct {
		Response    string          `json:"response"`
		KeyConcerns json.RawMessage `json:"keyConcerns"`
	}
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return Result{}, &MalformedError{Reason: fmt.Sprintf("invalid JSON: %v", err), Raw: raw}
	}
	if strings.TrimSpace(parsed.Response) == "" {
		return Result{}, &MalformedError{Reason: "missing or empty response field", Raw: raw}
	}

	concerns := []string{}
	if len(parsed.KeyConcerns) > 0 {
		// Wrong-typed keyConcerns is tolerated, not fatal.
		var list []string
		if err := json.Unmarshal(parsed.KeyConcerns, &list); err == nil && list != nil {
			concerns = list
		}
	}

	return Result{Text: parsed.Response, KeyConcerns: concerns}, nil
}
