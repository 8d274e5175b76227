package catalog

import "fmt"

// Call is a transcribed support phone call.
type Call struct {
	RecordID        string
	CallerName      string
	ProductModel    string
	Intent          string
	DurationMinutes int
	Transcript      string
	Label           Sentiment
}

func (c Call) ID() string           { return c.RecordID }
func (c Call) Kind() Kind           { return KindCall }
func (c Call) Body() string         { return c.Transcript }
func (c Call) Sentiment() Sentiment { return c.Label }

func (c Call) PromptContext() string {
	return fmt.Sprintf("Caller Name: %s\nProduct: %s\nCall intent: %s\nDuration: %d minutes",
		c.CallerName, c.ProductModel, c.Intent, c.DurationMinutes)
}

var calls = []Call{
	{
		RecordID:        "c1",
		CallerName:      "Anne Jensen",
		ProductModel:    "TV-Model 2",
		Intent:          "Screen flicker after firmware update",
		DurationMinutes: 7,
		Label:           SentimentNegative,
		Transcript: `Agent: DanTV support, Alex speaking. How can I help today?
Customer: Hi Alex, my TV-Model 2 started flickering right after last night's firmware update. It's pretty bad.
Agent: Thanks for letting me know. Have you tried a power cycle yet?
Customer: Yes, and I swapped HDMI cables too. It still flashes every few seconds.
Agent: Understood. I'll create a case and push the rollback package while we're on the call.`,
	},
	{
		RecordID:        "c2",
		CallerName:      "Mads Nyholm",
		ProductModel:    "TV-Model 3",
		Intent:          "Audio delay over ARC",
		DurationMinutes: 11,
		Label:           SentimentNeutral,
		Transcript: `Agent: Welcome to DanTV support, this is Lea. What can I help with?
Customer: My soundbar over HDMI ARC is slightly delayed compared to the picture on TV-Model 3.
Agent: Got it. Have you tried enabling lip-sync or eARC in settings?
Customer: I see eARC on, but I'm not sure about lip-sync adjustment.
Agent: I'll walk you through it and send a checklist after the call.`,
	},
	{
		RecordID:        "c3",
		CallerName:      "Julie Kirkegaard",
		ProductModel:    "TV-Model 1",
		Intent:          "Picture preset guidance",
		DurationMinutes: 5,
		Label:           SentimentPositive,
		Transcript: `Agent: Thanks for calling DanTV, I'm Mads. What can I do for you?
Customer: I love the TV-Model 1 but want your recommended cinema preset.
Agent: Absolutely. Do you watch mostly streaming or Blu-ray?
Customer: Streaming, mostly films at night.
Agent: I'll send the cinema preset and HDR toggle steps in an email after this call.`,
	},
	{
		RecordID:        "c4",
		CallerName:      "Henrik Dalgaard",
		ProductModel:    "TV-Model 3",
		Intent:          "Wi-Fi drops during streaming",
		DurationMinutes: 14,
		Label:           SentimentNegative,
		Transcript: `Agent: DanTV support, this is Nina speaking.
Customer: My TV-Model 3 keeps dropping off Wi-Fi in the middle of films. Every other device in the house stays connected.
Agent: That sounds frustrating. Is the TV on the 2.4 or 5 GHz band?
Customer: 5 GHz, about four meters from the router.
Agent: Let's capture the network log from the service menu and I'll open an escalation with our connectivity team.`,
	},
}
