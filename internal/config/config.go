// README: Config loader with env defaults for HTTP, Redis, and rate-limit settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type RateLimitConfig struct {
	Limit         int
	WindowSeconds int
}

type Config struct {
	HTTP struct {
		Addr    string
		GinMode string
		// TrustedProxies lists proxy IPs or CIDRs whose X-Forwarded-For is
		// believed. Empty means the peer address is always the client.
		TrustedProxies []string
		MaxBodyBytes   int64
	}
	Redis struct {
		Addr string
	}
	RateLimit RateLimitConfig
}

// Load reads .env from the working directory when present; real environment
// variables win over the file.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	cfg.HTTP.Addr = envOrDefault("ITINERARY_HTTP_ADDR", ":8080")
	cfg.HTTP.GinMode = envOrDefault("ITINERARY_GIN_MODE", "release")
	cfg.HTTP.TrustedProxies = envList("ITINERARY_TRUSTED_PROXIES")
	cfg.HTTP.MaxBodyBytes = int64(envOrDefaultInt("ITINERARY_MAX_BODY_BYTES", 16<<10))
	cfg.Redis.Addr = envOrDefault("ITINERARY_REDIS_ADDR", "")
	cfg.RateLimit.Limit = envOrDefaultInt("ITINERARY_RATE_LIMIT", 60)
	cfg.RateLimit.WindowSeconds = envOrDefaultInt("ITINERARY_RATE_WINDOW_SECONDS", 60)

	if cfg.HTTP.MaxBodyBytes <= 0 {
		return Config{}, fmt.Errorf("ITINERARY_MAX_BODY_BYTES must be positive, got %d", cfg.HTTP.MaxBodyBytes)
	}
	if cfg.RateLimit.Limit > 0 && cfg.RateLimit.WindowSeconds <= 0 {
		return Config{}, fmt.Errorf("ITINERARY_RATE_WINDOW_SECONDS must be positive, got %d", cfg.RateLimit.WindowSeconds)
	}
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// envList splits a comma-separated value, dropping empty items.
func envList(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
