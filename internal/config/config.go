// Package config handles CLI configuration for the scholar tool.
//
// Settings come from three layers, later ones winning: built-in
// defaults, an optional scholar.yml file, and SCHOLAR_* environment
// variables (loaded from .env by the CLI via godotenv).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the default configuration filename.
const ConfigFile = "scholar.yml"

// Environment variable overrides.
const (
	EnvUserAgent = "SCHOLAR_USER_AGENT"
	EnvCacheDir  = "SCHOLAR_CACHE_DIR"
	EnvArchive   = "SCHOLAR_ARCHIVE"
)

// Config holds the extraction and storage settings.
type Config struct {
	UserAgent        string  `yaml:"user_agent"`
	RateLimitSeconds float64 `yaml:"rate_limit_seconds"`
	Retries          int     `yaml:"retries"`
	MaxPublications  int     `yaml:"max_publications"`
	CacheDir         string  `yaml:"cache_dir"`
	ArchivePath      string  `yaml:"archive_path"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		RateLimitSeconds: 2,
		Retries:          3,
		MaxPublications:  100,
		ArchivePath:      "scholar.db",
	}
}

// Load reads configuration from path, filling defaults for unset
// fields and applying environment overrides. A missing file is not an
// error: defaults plus environment apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = ConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overlays SCHOLAR_* environment variables.
func (c *Config) applyEnv() {
	if ua := os.Getenv(EnvUserAgent); ua != "" {
		c.UserAgent = ua
	}
	if dir := os.Getenv(EnvCacheDir); dir != "" {
		c.CacheDir = dir
	}
	if path := os.Getenv(EnvArchive); path != "" {
		c.ArchivePath = path
	}
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if c.RateLimitSeconds < 0 {
		return fmt.Errorf("rate_limit_seconds must be non-negative, got %s",
			strconv.FormatFloat(c.RateLimitSeconds, 'g', -1, 64))
	}
	if c.Retries <= 0 {
		return fmt.Errorf("retries must be positive, got %d", c.Retries)
	}
	if c.MaxPublications <= 0 {
		return fmt.Errorf("max_publications must be positive, got %d", c.MaxPublications)
	}
	return nil
}

// RateLimit returns the configured pacing delay as a duration.
func (c *Config) RateLimit() time.Duration {
	return time.Duration(c.RateLimitSeconds * float64(time.Second))
}

// Save writes the configuration to path as YAML.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigFile
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
