package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all client configuration.
type Config struct {
	// APIBaseURL is the Zen Space backend base, including the /api prefix.
	APIBaseURL string

	// DBPath overrides the durable store location. Empty = default XDG path.
	DBPath string

	// LogPath is the log file location. Empty = default XDG state path.
	LogPath string

	// HTTPTimeout bounds every backend request, including chat sends.
	HTTPTimeout time.Duration

	// AuthPayload is a one-shot base64url payload from the federated login
	// flow, consumed on startup and never persisted.
	AuthPayload string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		APIBaseURL:  "http://localhost:5000/api",
		HTTPTimeout: 30 * time.Second,
	}
}

// FromEnv builds a Config from environment variables, loading a local .env
// file first when one exists. Unset values fall back to defaults.
func FromEnv() Config {
	// Missing .env is the normal case.
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if u := os.Getenv("ZENSPACE_API_URL"); u != "" {
		cfg.APIBaseURL = u
	}
	if p := os.Getenv("ZENSPACE_DB"); p != "" {
		cfg.DBPath = p
	}
	if p := os.Getenv("ZENSPACE_LOG"); p != "" {
		cfg.LogPath = p
	}
	if t := os.Getenv("ZENSPACE_HTTP_TIMEOUT"); t != "" {
		if secs, err := strconv.Atoi(t); err == nil && secs > 0 {
			cfg.HTTPTimeout = time.Duration(secs) * time.Second
		}
	}
	if p := os.Getenv("ZENSPACE_AUTH_PAYLOAD"); p != "" {
		cfg.AuthPayload = p
	}

	return cfg
}

// DefaultLogPath resolves the log file path:
// 1. ZENSPACE_LOG environment variable
// 2. $XDG_STATE_HOME/zenspace/zenspace.log
// 3. ~/.local/state/zenspace/zenspace.log
func DefaultLogPath() (string, error) {
	if p := os.Getenv("ZENSPACE_LOG"); p != "" {
		return p, nil
	}

	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		stateHome = filepath.Join(home, ".local", "state")
	}

	return filepath.Join(stateHome, "zenspace", "zenspace.log"), nil
}
