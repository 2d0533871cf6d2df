package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

const defaultAPIBaseURL = "https://e621.net"

// Config holds bootstrap settings for the client. User-facing settings
// (autoplay, history, API keys) live in the persisted store instead.
type Config struct {
	APIBaseURL  string
	DBPath      string
	HTTPTimeout time.Duration
}

func LoadFromEnv() (Config, error) {
	cfg := Config{
		APIBaseURL: os.Getenv("E1324_API_BASE_URL"),
		DBPath:     os.Getenv("E1324_DB_PATH"),
	}

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = defaultAPIBaseURL
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "e1324.db"
	}

	cfg.HTTPTimeout = 10 * time.Second
	if raw := os.Getenv("E1324_HTTP_TIMEOUT_SECONDS"); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs < 1 {
			return Config{}, fmt.Errorf("E1324_HTTP_TIMEOUT_SECONDS must be a positive integer: %s", raw)
		}
		cfg.HTTPTimeout = time.Duration(secs) * time.Second
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.APIBaseURL == "" {
		return errors.New("APIBaseURL is required")
	}
	if c.DBPath == "" {
		return errors.New("DBPath is required")
	}
	if c.APIBaseURL[len(c.APIBaseURL)-1] == '/' {
		return fmt.Errorf("APIBaseURL must not end with '/': %s", c.APIBaseURL)
	}
	if c.HTTPTimeout <= 0 {
		return errors.New("HTTPTimeout must be positive")
	}
	return nil
}
