package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

var ErrMissingDSN = errors.New("POSTGRES_DSN is required")

type Config struct {
	PostgresDSN string
	HTTPAddr    string
	LiveAddr    string
	SharedPIN   string
	Users       []string
	Location    *time.Location
	LeetCodeURL string
	LogLevel    log.Level
}

// Load reads an optional .env file from the working directory, then the
// process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv, applying defaults for unset keys.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, def string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		PostgresDSN: getenv("POSTGRES_DSN"),
		HTTPAddr:    get("HTTP_ADDR", ":8080"),
		LiveAddr:    get("LIVE_ADDR", ":8081"),
		SharedPIN:   get("SHARED_PIN", "1234"),
		Users:       []string{get("USER1_NAME", "Gaurav"), get("USER2_NAME", "Her Name")},
		LeetCodeURL: get("LEETCODE_GRAPHQL_URL", "https://leetcode.com/graphql"),
	}

	if cfg.PostgresDSN == "" {
		return nil, ErrMissingDSN
	}

	loc, err := time.LoadLocation(get("TIMEZONE", "Local"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}
	cfg.Location = loc

	level, err := log.ParseLevel(get("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	return cfg, nil
}
