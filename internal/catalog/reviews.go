package catalog

import "fmt"

// Review is a public product review awaiting a brand reply.
type Review struct {
	RecordID  string
	Text      string
	Rating    int
	Label     Sentiment
}

func (r Review) ID() string           { return r.RecordID }
func (r Review) Kind() Kind           { return KindReview }
func (r Review) Body() string         { return r.Text }
func (r Review) Sentiment() Sentiment { return r.Label }

func (r Review) PromptContext() string {
	return fmt.Sprintf("Rating: %d/5", r.Rating)
}

var reviews = []Review{
	{
		RecordID: "1",
		Text:     "Absolutely love this TV! The picture quality is stunning, colors are vibrant, and the sound is crystal clear. Best purchase I've made this year. Highly recommend!",
		Rating:   5,
		Label:    SentimentPositive,
	},
	{
		RecordID: "2",
		Text:     "Terrible experience. The TV arrived with a cracked screen and customer service was unhelpful. Had to return it immediately. Very disappointed.",
		Rating:   1,
		Label:    SentimentNegative,
	},
	{
		RecordID: "3",
		Text:     "Decent TV for the price. Picture quality is okay, but the smart features are a bit slow. It does the job but nothing special.",
		Rating:   3,
		Label:    SentimentNeutral,
	},
	{
		RecordID: "4",
		Text:     "The remote control stopped working after just 2 weeks. The TV itself is fine, but this is frustrating. Should I have to buy a new remote so soon?",
		Rating:   2,
		Label:    SentimentNegative,
	},
	{
		RecordID: "5",
		Text:     "Amazing value for money! The 4K resolution is incredible, and the built-in apps work flawlessly. Setup was super easy. Couldn't be happier!",
		Rating:   5,
		Label:    SentimentPositive,
	},
	{
		RecordID: "6",
		Text:     "The TV has good picture quality, but the viewing angles are poor. If you're not sitting directly in front, the colors look washed out. Not ideal for a living room.",
		Rating:   3,
		Label:    SentimentNeutral,
	},
	{
		RecordID: "7",
		Text:     "Worst TV I've ever owned. Constant software crashes, apps freeze regularly, and the Wi-Fi connection drops constantly. Save your money and buy something else.",
		Rating:   1,
		Label:    SentimentNegative,
	},
	{
		RecordID: "8",
		Text:     "Perfect for gaming! Low input lag and smooth motion handling. The HDR looks fantastic. My friends are all jealous of this setup.",
		Rating:   5,
		Label:    SentimentPositive,
	},
	{
		RecordID: "9",
		Text:     "The sound quality is really poor. Had to buy a soundbar immediately. For the price, I expected better built-in speakers. Picture is good though.",
		Rating:   3,
		Label:    SentimentNeutral,
	},
	{
		RecordID: "10",
		Text:     "Excellent customer service when I had a question about setup. The TV itself is great - bright, clear, and the smart interface is intuitive. Very satisfied!",
		Rating:   5,
		Label:    SentimentPositive,
	},
}
