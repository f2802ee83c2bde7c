package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Defaults applied when a variable is unset
const (
	DefaultPort           = "8000"
	DefaultDatabaseURL    = "sqlite://securelog.db"
	DefaultRequestTimeout = 30 * time.Second
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "json"
)

// Config captures process level configuration
type Config struct {
	Port              string
	DatabaseURL       string
	TrustProxyHeaders bool
	RequestTimeout    time.Duration
	LogLevel          string
	LogFormat         string
}

// Addr is the listen address derived from Port
func (c Config) Addr() string {
	return ":" + c.Port
}

// Load reads the optional .env files (".env" when none are given) into the
// environment and then builds a Config from it. A missing file is fine; a
// malformed one is an error.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables
func FromEnv() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", DefaultPort),
		DatabaseURL: getEnv("DATABASE_URL", DefaultDatabaseURL),
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
	}

	if _, err := strconv.ParseUint(cfg.Port, 10, 16); err != nil {
		return Config{}, fmt.Errorf("invalid PORT %q: %w", cfg.Port, err)
	}

	if v := os.Getenv("TRUST_PROXY_HEADERS"); v != "" {
		trust, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid TRUST_PROXY_HEADERS %q: %w", v, err)
		}
		cfg.TrustProxyHeaders = trust
	}

	cfg.RequestTimeout = DefaultRequestTimeout
	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid REQUEST_TIMEOUT %q: %w", v, err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", d)
		}
		cfg.RequestTimeout = d
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
