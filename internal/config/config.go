// Package config loads user configuration from an optional JSONC file.
// Comments and trailing commas are allowed; a missing file yields defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"
)

// Config holds all configuration options
type Config struct {
	// DBPath is the sqlite database location; empty means the default
	// location under the XDG data directory.
	DBPath string `json:"db_path,omitempty"`

	// Backend selects the blob store: sqlite (default), redis or memory
	Backend string `json:"backend,omitempty"`

	// RedisAddr is the host:port of the redis instance when Backend is redis
	RedisAddr string `json:"redis_addr,omitempty"`

	// Theme selects a color preset: dark, light or ocean
	Theme string `json:"theme,omitempty"`

	// WeeklyGoal is the completion target shown on the dashboard
	WeeklyGoal int `json:"weekly_goal,omitempty"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Backend:    "sqlite",
		RedisAddr:  "localhost:6379",
		Theme:      "dark",
		WeeklyGoal: 10,
	}
}

// Path returns the config file location: $XDG_CONFIG_HOME/pano/config.json
// or ~/.config/pano/config.json. Empty when no home directory is known.
func Path() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "pano", "config.json")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "pano", "config.json")
	}
	return ""
}

// Load reads the config file at path, merging it over the defaults. A
// missing file is not an error. An empty path loads pure defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	parsed, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	if parsed.DBPath != "" {
		cfg.DBPath = parsed.DBPath
	}
	if parsed.Backend != "" {
		cfg.Backend = parsed.Backend
	}
	if parsed.RedisAddr != "" {
		cfg.RedisAddr = parsed.RedisAddr
	}
	if parsed.Theme != "" {
		cfg.Theme = parsed.Theme
	}
	if parsed.WeeklyGoal > 0 {
		cfg.WeeklyGoal = parsed.WeeklyGoal
	}
	return cfg, nil
}

// Parse decodes a JSONC config document
func Parse(data []byte) (Config, error) {
	// Standardize JSONC to JSON
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid JSON: %w", err)
	}
	return cfg, nil
}
