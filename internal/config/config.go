// Cageography - Nicolas Cage Filmography Analytics
// Copyright 2026 Felix Amado (felixamado)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/felixamado/cageography

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config is the root application configuration, loaded via Koanf v2 with
// layered sources (highest priority wins): environment variables, optional
// YAML config file, built-in defaults.
type Config struct {
	Dataset  DatasetConfig  `koanf:"dataset"`
	Database DatabaseConfig `koanf:"database"`
	Server   ServerConfig   `koanf:"server"`
	API      APIConfig      `koanf:"api"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// DatasetConfig controls CSV ingest and the filmography derivation.
type DatasetConfig struct {
	// Path is the location of the IMDb-style CSV file.
	Path string `koanf:"path" validate:"required"`

	// Actor is the cast member whose filmography is derived.
	// Matching is a case-insensitive substring test against the Cast column.
	Actor string `koanf:"actor" validate:"required"`

	// WindowYears is the trailing release window for analytics (default 30).
	WindowYears int `koanf:"window_years" validate:"gt=0"`

	// IntervalYears is the bucket width for interval aggregates (default 5).
	IntervalYears int `koanf:"interval_years" validate:"gt=0"`

	// UpcomingFromYear is the first year counted as an upcoming premiere.
	// Zero means "next calendar year".
	UpcomingFromYear int `koanf:"upcoming_from_year"`

	// TopRatedLimit is the default size of the top-rated table (default 10).
	TopRatedLimit int `koanf:"top_rated_limit" validate:"gt=0"`

	// TopGenres is how many leading genres the genre-ranking chart compares
	// (default 3).
	TopGenres int `koanf:"top_genres" validate:"gt=0"`

	// RatingBinLow / RatingBinHigh bound the rating histogram (default [2, 8)).
	RatingBinLow  int `koanf:"rating_bin_low"`
	RatingBinHigh int `koanf:"rating_bin_high"`
}

// DatabaseConfig controls the DuckDB analytics store.
type DatabaseConfig struct {
	// Path is the DuckDB database file; ":memory:" keeps the store ephemeral,
	// which suits the load-once read-only dataset.
	Path string `koanf:"path"`

	// MaxMemory is DuckDB's memory limit (e.g. "1GB").
	MaxMemory string `koanf:"max_memory"`

	// Threads is the DuckDB thread count; 0 uses runtime.NumCPU().
	Threads int `koanf:"threads"`

	// PreserveInsertionOrder keeps DuckDB's default result ordering.
	PreserveInsertionOrder bool `koanf:"preserve_insertion_order"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Host        string        `koanf:"host"`
	Port        int           `koanf:"port" validate:"gt=0,lte=65535"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"`
}

// APIConfig controls pagination and response caching.
type APIConfig struct {
	DefaultPageSize int           `koanf:"default_page_size" validate:"gt=0"`
	MaxPageSize     int           `koanf:"max_page_size" validate:"gt=0"`
	CacheTTL        time.Duration `koanf:"cache_ttl"`
}

// SecurityConfig carries ambient hardening: CORS and rate limiting.
// The service itself is unauthenticated single-user local analytics.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig controls the zerolog global logger.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load loads configuration from all sources and validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// validate is the shared validator instance for configuration structs.
var validate = validator.New()

// Validate checks the configuration for structural and semantic errors.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if c.API.DefaultPageSize > c.API.MaxPageSize {
		return fmt.Errorf("api.default_page_size (%d) exceeds api.max_page_size (%d)",
			c.API.DefaultPageSize, c.API.MaxPageSize)
	}

	if c.Dataset.RatingBinHigh <= c.Dataset.RatingBinLow {
		return fmt.Errorf("dataset.rating_bin_high (%d) must exceed dataset.rating_bin_low (%d)",
			c.Dataset.RatingBinHigh, c.Dataset.RatingBinLow)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "", "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}

	return nil
}

// IsDevelopment reports whether the server runs in development mode.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Server.Environment, "development")
}

// UpcomingHorizon resolves the first upcoming-premiere year relative to now.
func (c *Config) UpcomingHorizon(now time.Time) int {
	if c.Dataset.UpcomingFromYear > 0 {
		return c.Dataset.UpcomingFromYear
	}
	return now.Year() + 1
}
