// Cageography - Nicolas Cage Filmography Analytics
// Copyright 2026 Felix Amado (felixamado)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/felixamado/cageography

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order
// of priority. The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/cageography/config.yaml",
	"/etc/cageography/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all default values.
// Defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Path:             "imdb-movies-dataset.csv",
			Actor:            "Nicolas Cage",
			WindowYears:      30,
			IntervalYears:    5,
			UpcomingFromYear: 0, // 0 = next calendar year
			TopRatedLimit:    10,
			TopGenres:        3,
			RatingBinLow:     2,
			RatingBinHigh:    8,
		},
		Database: DatabaseConfig{
			Path:                   ":memory:",
			MaxMemory:              "1GB",
			Threads:                0, // 0 = use runtime.NumCPU()
			PreserveInsertionOrder: true,
		},
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        8464, // CAGE on a phone keypad, kind of
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		API: APIConfig{
			DefaultPageSize: 20,
			MaxPageSize:     100,
			CacheTTL:        5 * time.Minute,
		},
		Security: SecurityConfig{
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: built-in sensible defaults
//  2. Config file: optional YAML file (if present)
//  3. Environment variables: override any setting
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: environment variables (highest priority)
	envProvider := env.Provider("", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Comma-separated env values for slice fields
	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths lists config paths parsed as comma-separated slices
// when they arrive as env var strings.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for
// known slice fields. Env vars come in as strings, the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}

		// Already a slice (from YAML file)
		if _, ok := val.([]interface{}); ok {
			continue
		}
		if _, ok := val.([]string); ok {
			continue
		}

		strVal, ok := val.(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envTransformFunc maps flat environment variable names to koanf config paths.
//
// Examples:
//   - DATASET_PATH -> dataset.path
//   - DATASET_ACTOR -> dataset.actor
//   - DUCKDB_PATH -> database.path
//   - HTTP_PORT -> server.port
//
// Unmapped variables return "" and are skipped, which prevents unrelated
// environment variables from polluting the config.
func envTransformFunc(key string) string {
	key = strings.ToLower(key)

	envMappings := map[string]string{
		// Dataset mappings
		"dataset_path":       "dataset.path",
		"dataset_actor":      "dataset.actor",
		"window_years":       "dataset.window_years",
		"interval_years":     "dataset.interval_years",
		"upcoming_from_year": "dataset.upcoming_from_year",
		"top_rated_limit":    "dataset.top_rated_limit",
		"top_genres":         "dataset.top_genres",
		"rating_bin_low":     "dataset.rating_bin_low",
		"rating_bin_high":    "dataset.rating_bin_high",

		// Database mappings
		"duckdb_path":       "database.path",
		"duckdb_max_memory": "database.max_memory",
		"duckdb_threads":    "database.threads",

		// Server mappings
		"http_port":    "server.port",
		"http_host":    "server.host",
		"http_timeout": "server.timeout",
		"environment":  "server.environment",

		// API mappings
		"api_default_page_size": "api.default_page_size",
		"api_max_page_size":     "api.max_page_size",
		"api_cache_ttl":         "api.cache_ttl",

		// Security mappings
		"rate_limit_requests": "security.rate_limit_reqs",
		"rate_limit_window":   "security.rate_limit_window",
		"disable_rate_limit":  "security.rate_limit_disabled",
		"cors_origins":        "security.cors_origins",

		// Logging mappings
		"log_level":  "logging.level",
		"log_format": "logging.format",
		"log_caller": "logging.caller",
	}

	if mapped, ok := envMappings[key]; ok {
		return mapped
	}
	return ""
}

// WatchConfigFile sets up a file watcher for hot-reload capability.
// The caller is responsible for mutex protection when swapping configuration.
func WatchConfigFile(path string, callback func()) error {
	provider := file.Provider(path)
	return provider.Watch(func(event interface{}, err error) {
		if err != nil {
			return
		}
		callback()
	})
}
