// Package journal records which path each generation took. The response
// contract deliberately hides fallback degradation from callers, so this
// audit trail is the only place the distinction survives.
package journal

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Source identifies which path produced a draft.
const (
	SourceModel    = "model"
	SourceFallback = "fallback"
)

// Entry is one completed generation request.
type Entry struct {
	Kind     string
	ItemID   string
	Tone     string
	Source   string // SourceModel or SourceFallback
	Attempts int
	Regen    bool // true when the caller supplied a previous draft
}

type Journal struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, databaseURL string) (*Journal, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Journal{pool: pool}, nil
}

func (j *Journal) Close() {
	j.pool.Close()
}

// Record inserts one generation entry.
func (j *Journal) Record(ctx context.Context, e Entry) error {
	query := `
		INSERT INTO generation_log (id, kind, item_id, tone, source, attempts, regen, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())`

	_, err := j.pool.Exec(ctx, query,
		uuid.New(), e.Kind, e.ItemID, e.Tone, e.Source, e.Attempts, e.Regen)
	if err != nil {
		return fmt.Errorf("insert generation entry: %w", err)
	}
	return nil
}

// FallbackRate reports the share of requests that degraded to the fallback
// template, for the status endpoint.
func (j *Journal) FallbackRate(ctx context.Context) (float64, error) {
	query := `
		SELECT count(*) FILTER (WHERE source = 'fallback')::float / greatest(count(*), 1)
		FROM generation_log`

	var rate float64
	if err := j.pool.QueryRow(ctx, query).Scan(&rate); err != nil {
		return 0, fmt.Errorf("query fallback rate: %w", err)
	}
	return rate, nil
}
