// Package events publishes generation outcomes on NATS so downstream
// dashboards and quality loops can watch fallback rates without polling.
package events

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

// Subjects for generation lifecycle events.
const (
	SubjectDraftGenerated   = "care.draft.generated"
	SubjectDraftFallback    = "care.draft.fallback"
	SubjectSummaryGenerated = "care.summary.generated"
)

// DraftEvent is the payload for draft lifecycle subjects.
type DraftEvent struct {
	Kind     string `json:"kind"`
	ItemID   string `json:"item_id"`
	Tone     string `json:"tone"`
	Attempts int    `json:"attempts"`
	Regen    bool   `json:"regen"`
}

type Publisher struct {
	conn   *nats.Conn
	logger *slog.Logger
}

func NewPublisher(url, token string, logger *slog.Logger) (*Publisher, error) {
	opts := []nats.Option{
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(60),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			logger.Info("nats reconnected")
		}),
	}
	if token != "" {
		opts = append(opts, nats.Token(token))
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	return &Publisher{conn: nc, logger: logger}, nil
}

func (p *Publisher) Publish(subject string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	return p.conn.Publish(subject, payload)
}

func (p *Publisher) Close() {
	p.conn.Close()
}
