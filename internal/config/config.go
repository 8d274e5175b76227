package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port            int
	LogLevel        string
	GeminiAPIKey    string
	GeminiModel     string
	DatabaseURL     string
	NatsURL         string
	NatsToken       string
	FallbackDelayMS int
	MaxAttempts     int
}

func Load() Config {
	return Config{
		Port:            envInt("CAREPILOT_PORT", 8760),
		LogLevel:        envStr("LOG_LEVEL", "info"),
		GeminiAPIKey:    envStr("GEMINI_API_KEY", ""),
		GeminiModel:     envStr("GEMINI_MODEL", "gemini-2.0-flash"),
		DatabaseURL:     envStr("DATABASE_URL", ""),
		NatsURL:         envStr("NATS_URL", ""),
		NatsToken:       envStr("NATS_TOKEN", ""),
		FallbackDelayMS: envInt("FALLBACK_DELAY_MS", 500),
		MaxAttempts:     envInt("CAREPILOT_MAX_ATTEMPTS", 3),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
