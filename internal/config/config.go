package config

import (
	"fmt"
	"os"
	"time"
)

// Config is read once at startup from environment variables (.env in dev).
type Config struct {
	Addr          string
	DBDSN         string
	SessionSecret string
	CookieSecure  bool
	SessionTTL    time.Duration
}

func Load() (Config, error) {
	cfg := Config{
		Addr:          getenv("ADDR", ":8080"),
		DBDSN:         os.Getenv("DB_DSN"),
		SessionSecret: getenv("SESSION_SECRET", "dev-secret-change-me"),
		CookieSecure:  os.Getenv("COOKIE_SECURE") == "true",
		SessionTTL:    50 * time.Minute,
	}

	if cfg.DBDSN == "" {
		return Config{}, fmt.Errorf("DB_DSN environment variable is required")
	}

	if v := os.Getenv("SESSION_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SESSION_TTL %q: %w", v, err)
		}
		cfg.SessionTTL = d
	}

	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
