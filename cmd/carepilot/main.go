package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dantv-labs/carepilot/internal/api"
	"github.com/dantv-labs/carepilot/internal/catalog"
	"github.com/dantv-labs/carepilot/internal/config"
	"github.com/dantv-labs/carepilot/internal/draft"
	"github.com/dantv-labs/carepilot/internal/events"
	"github.com/dantv-labs/carepilot/internal/gemini"
	"github.com/dantv-labs/carepilot/internal/journal"
	"github.com/dantv-labs/carepilot/internal/summary"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	slog.Info("carepilot starting", "port", cfg.Port)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Gemini client. A missing key is deliberately not fatal here: the
	// service still answers every request from the fallback composer, and
	// the client reports the configuration error on first use.
	if cfg.GeminiAPIKey == "" {
		slog.Warn("GEMINI_API_KEY not set; all drafts will use the fallback template")
	}
	llm := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	slog.Info("gemini client ready", "model", cfg.GeminiModel)

	cat := catalog.New()
	gen := draft.NewGenerator(llm, cfg.MaxAttempts, slog.Default())
	sum := summary.New(llm, slog.Default())

	// Generation journal (optional; carepilot works without a database,
	// just no audit trail of which drafts degraded to the template).
	var jnl *journal.Journal
	if cfg.DatabaseURL != "" {
		var err error
		jnl, err = journal.New(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer jnl.Close()
		slog.Info("generation journal ready")
	} else {
		slog.Warn("database not configured; running without generation journal")
	}

	// Event publisher (optional).
	var pub *events.Publisher
	if cfg.NatsURL != "" {
		var err error
		pub, err = events.NewPublisher(cfg.NatsURL, cfg.NatsToken, slog.Default())
		if err != nil {
			slog.Error("failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		defer pub.Close()
		slog.Info("NATS connected", "url", cfg.NatsURL)
	} else {
		slog.Warn("NATS not configured; running without event publishing")
	}

	srv := api.NewServer(cfg.Port, cat, gen, sum, jnl, pub,
		time.Duration(cfg.FallbackDelayMS)*time.Millisecond, slog.Default())
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	slog.Info("carepilot ready", "port", cfg.Port)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	slog.Info("shutting down")
	cancel()
	slog.Info("carepilot stopped")
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
