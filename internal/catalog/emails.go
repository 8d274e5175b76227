package catalog

import "fmt"

// Email is an inbound customer support email.
type Email struct {
	RecordID     string
	CustomerName string
	ProductModel string
	Priority     string
	Subject      string
	BodyText     string
	Label        Sentiment
}

func (e Email) ID() string           { return e.RecordID }
func (e Email) Kind() Kind           { return KindEmail }
func (e Email) Body() string         { return e.BodyText }
func (e Email) Sentiment() Sentiment { return e.Label }

func (e Email) PromptContext() string {
	return fmt.Sprintf("Customer Name: %s\nProduct: %s\nPriority: %s\nEmail subject: %s",
		e.CustomerName, e.ProductModel, e.Priority, e.Subject)
}

var emails = []Email{
	{
		RecordID:     "e1",
		CustomerName: "Karen Holm",
		ProductModel: "TV-Model 2",
		Priority:     "high",
		Subject:      "Screen went black two days after delivery",
		BodyText:     "Hi, I bought the TV-Model 2 last week and two days after delivery the screen suddenly went completely black. The power light is still on and I can hear sound, but there is no picture at all. I have already tried unplugging it overnight. This is really disappointing for a brand new TV. What are my options?",
		Label:        SentimentNegative,
	},
	{
		RecordID:     "e2",
		CustomerName: "Lars Oestergaard",
		ProductModel: "TV-Model 1",
		Priority:     "low",
		Subject:      "Question about wall mount compatibility",
		BodyText:     "Hello, I'm considering mounting my TV-Model 1 on the wall. Could you tell me which VESA pattern it uses and whether the original stand screws can be reused for the bracket? Thanks in advance.",
		Label:        SentimentNeutral,
	},
	{
		RecordID:     "e3",
		CustomerName: "Sofie Brandt",
		ProductModel: "TV-Model 3",
		Priority:     "medium",
		Subject:      "Apps keep logging me out",
		BodyText:     "Every couple of days the streaming apps on my TV-Model 3 log me out and I have to re-enter all my passwords with the remote, which takes forever. Is this a known bug? It started after the last software update. Otherwise I like the TV a lot.",
		Label:        SentimentNegative,
	},
	{
		RecordID:     "e4",
		CustomerName: "Mikkel Thorsen",
		ProductModel: "TV-Model 2",
		Priority:     "low",
		Subject:      "Thank you for the quick repair",
		BodyText:     "Just wanted to say thanks. My TV-Model 2 developed a backlight issue and your service center picked it up, repaired it, and returned it within a week. Great experience, and the TV looks better than ever.",
		Label:        SentimentPositive,
	},
	{
		RecordID:     "e5",
		CustomerName: "Anja Lindqvist",
		ProductModel: "TV-Model 1",
		Priority:     "high",
		Subject:      "Remote pairing fails after battery change",
		BodyText:     "After changing the batteries in my remote, it no longer pairs with my TV-Model 1. I've followed the pairing steps in the manual three times. The TV is only four months old. Please advise, as the TV is unusable without the remote.",
		Label:        SentimentNegative,
	},
	{
		RecordID:     "e6",
		CustomerName: "Peter Noergaard",
		ProductModel: "TV-Model 3",
		Priority:     "medium",
		Subject:      "Is Dolby Atmos passthrough supported?",
		BodyText:     "Hi, before I buy a new receiver I'd like to confirm whether the TV-Model 3 supports Dolby Atmos passthrough over eARC, and whether that requires a specific firmware version. My current setup only outputs stereo.",
		Label:        SentimentNeutral,
	},
}
