package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Delays holds the simulated latency of each assistant call.
type Delays struct {
	Search         time.Duration
	Outfit         time.Duration
	Recommendation time.Duration
	Size           time.Duration
	PriceTrend     time.Duration
}

// Config holds environment-driven configuration.
type Config struct {
	Addr              string
	DatabaseURL       string
	RedisURL          string
	AllowReset        bool
	LogLevel          slog.Level
	RecentSearchLimit int
	Delays            Delays
}

// DefaultDelays mirrors the latency of the storefront's mocked assistant.
func DefaultDelays() Delays {
	return Delays{
		Search:         300 * time.Millisecond,
		Outfit:         500 * time.Millisecond,
		Recommendation: 800 * time.Millisecond,
		Size:           300 * time.Millisecond,
		PriceTrend:     400 * time.Millisecond,
	}
}

// Load reads a .env file when present and then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from the given lookup function.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Addr:              getenv("STOREFRONT_ADDR"),
		DatabaseURL:       getenv("DATABASE_URL"),
		RedisURL:          getenv("REDIS_URL"),
		AllowReset:        getenv("ALLOW_RESET_PRODUCTS") == "1",
		LogLevel:          slog.LevelInfo,
		RecentSearchLimit: 5,
		Delays:            DefaultDelays(),
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}

	if v := getenv("LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(strings.ToUpper(v))); err != nil {
			return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
		}
	}

	if v := getenv("RECENT_SEARCH_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("RECENT_SEARCH_LIMIT must be a positive integer, got %q", v)
		}
		cfg.RecentSearchLimit = n
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"SEARCH_DELAY", &cfg.Delays.Search},
		{"OUTFIT_DELAY", &cfg.Delays.Outfit},
		{"RECOMMENDATION_DELAY", &cfg.Delays.Recommendation},
		{"SIZE_DELAY", &cfg.Delays.Size},
		{"PRICE_TREND_DELAY", &cfg.Delays.PriceTrend},
	}
	for _, d := range durations {
		v := getenv(d.key)
		if v == "" {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil || parsed < 0 {
			return Config{}, fmt.Errorf("%s must be a non-negative duration, got %q", d.key, v)
		}
		*d.dst = parsed
	}

	return cfg, nil
}

// NewLogger returns the process logger.
func (c Config) NewLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: c.LogLevel}))
}
