package draft

import "fmt"

// Tone is the stylistic register a reply must match. The set is closed;
// anything else is a validation error at the boundary, never coerced.
type Tone string

const (
	ToneFriendly     Tone = "Friendly"
	ToneFormal       Tone = "Formal"
	ToneApologetic   Tone = "Apologetic"
	ToneProfessional Tone = "Neutral/Professional"
)

// Tones lists every valid tone, in display order.
var Tones = []Tone{ToneFriendly, ToneFormal, ToneApologetic, ToneProfessional}

// ParseTone validates an inbound tone value.
func ParseTone(s string) (Tone, error) {
	switch Tone(s) {
	case ToneFriendly, ToneFormal, ToneApologetic, ToneProfessional:
		return Tone(s), nil
	}
	return "", fmt.Errorf("unknown tone %q", s)
}
