// Package config handles program configuration from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Source kinds.
const (
	SourceLocal = "local"
	SourceMinIO = "minio"
	SourceS3    = "s3"
)

// Config holds all program configuration.
type Config struct {
	Source    string
	Data      string
	Root      string
	Bucket    string
	Prefix    string
	Endpoint  string
	AccessKey string
	SecretKey string
	Secure    bool
	CacheDir  string
	CacheTTL  time.Duration
	LogLevel  slog.Level
	LogFormat string
}

// Load reads an optional .env file at envFile and then the environment,
// applying defaults. A missing envFile is not an error; variables already
// set in the environment win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", envFile, err)
		}
	}
	return FromEnv()
}

// FromEnv reads configuration from environment variables with defaults.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Source:    strings.ToLower(getEnv("CITYSEARCH_SOURCE", SourceLocal)),
		Data:      getEnv("CITYSEARCH_DATA", "data.txt"),
		Root:      getEnv("CITYSEARCH_ROOT", "."),
		Bucket:    getEnv("CITYSEARCH_BUCKET", ""),
		Prefix:    getEnv("CITYSEARCH_PREFIX", ""),
		Endpoint:  getEnv("CITYSEARCH_ENDPOINT", "localhost:9000"),
		AccessKey: getEnv("CITYSEARCH_ACCESS_KEY", ""),
		SecretKey: getEnv("CITYSEARCH_SECRET_KEY", ""),
		CacheDir:  getEnv("CITYSEARCH_CACHE_DIR", ""),
		LogFormat: strings.ToLower(getEnv("LOG_FORMAT", "text")),
	}

	secure, err := getBoolEnv("CITYSEARCH_SECURE", false)
	if err != nil {
		return nil, err
	}
	cfg.Secure = secure

	if v := os.Getenv("CITYSEARCH_CACHE_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("config: CITYSEARCH_CACHE_TTL: %w", err)
		}
		cfg.CacheTTL = ttl
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "warn"))); err != nil {
		return nil, fmt.Errorf("config: LOG_LEVEL: %w", err)
	}

	return cfg, nil
}

// Remote reports whether the source is an object store.
func (c *Config) Remote() bool {
	return c.Source == SourceMinIO || c.Source == SourceS3
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	switch c.Source {
	case SourceLocal:
	case SourceMinIO, SourceS3:
		if c.Bucket == "" {
			return fmt.Errorf("config: CITYSEARCH_BUCKET is required for source %q", c.Source)
		}
	default:
		return fmt.Errorf("config: unknown source %q", c.Source)
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("config: unknown log format %q", c.LogFormat)
	}

	if c.Data == "" {
		return errors.New("config: data name must not be empty")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("config: %s: %w", key, err)
	}
	return b, nil
}
