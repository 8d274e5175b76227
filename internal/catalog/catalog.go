package catalog

import "fmt"

// Sentiment is the pre-labelled disposition of a source item. It drives
// fallback template selection only; the model sees the raw text.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Kind identifies which feedback channel an item came from.
type Kind string

const (
	KindReview Kind = "review"
	KindEmail  Kind = "email"
	KindCall   Kind = "call"
)

// ParseKind validates a channel name from the request path.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindReview, KindEmail, KindCall:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown source kind %q", s)
}

// Item is the capability surface the generation pipeline needs from any
// source item. PromptContext renders the kind-specific metadata lines that
// precede the quoted body in a prompt.
type Item interface {
	ID() string
	Kind() Kind
	Body() string
	Sentiment() Sentiment
	PromptContext() string
}

// Catalog holds the static datasets and resolves inbound item references.
type Catalog struct {
	reviews map[string]Review
	emails  map[string]Email
	calls   map[string]Call
}

// New builds a catalog over the built-in datasets.
func New() *Catalog {
	c := &Catalog{
		reviews: make(map[string]Review, len(reviews)),
		emails:  make(map[string]Email, len(emails)),
		calls:   make(map[string]Call, len(calls)),
	}
	for _, r := range reviews {
		c.reviews[r.RecordID] = r
	}
	for _, e := range emails {
		c.emails[e.RecordID] = e
	}
	for _, call := range calls {
		c.calls[call.RecordID] = call
	}
	return c
}

// Lookup resolves an item id within a channel. The second return is false
// for unknown ids.
func (c *Catalog) Lookup(kind Kind, id string) (Item, bool) {
	switch kind {
	case KindReview:
		if r, ok := c.reviews[id]; ok {
			return r, true
		}
	case KindEmail:
		if e, ok := c.emails[id]; ok {
			return e, true
		}
	case KindCall:
		if call, ok := c.calls[id]; ok {
			return call, true
		}
	}
	return nil, false
}

// Reviews returns all reviews in dataset order.
func (c *Catalog) Reviews() []Review {
	return reviews
}

// Emails returns emails, optionally filtered by product model. An empty
// model returns everything.
func (c *Catalog) Emails(productModel string) []Email {
	if productModel == "" {
		return emails
	}
	var out []Email
	for _, e := range emails {
		if e.ProductModel == productModel {
			out = append(out, e)
		}
	}
	return out
}
