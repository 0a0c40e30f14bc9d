// Cageography - Nicolas Cage Filmography Analytics
// Copyright 2026 Felix Amado (felixamado)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/felixamado/cageography

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	assert.Equal(t, "Nicolas Cage", cfg.Dataset.Actor)
	assert.Equal(t, 30, cfg.Dataset.WindowYears)
	assert.Equal(t, 5, cfg.Dataset.IntervalYears)
	assert.Equal(t, 3, cfg.Dataset.TopGenres)
	assert.Equal(t, 2, cfg.Dataset.RatingBinLow)
	assert.Equal(t, 8, cfg.Dataset.RatingBinHigh)
	assert.Equal(t, ":memory:", cfg.Database.Path)
	assert.Equal(t, 8464, cfg.Server.Port)
	assert.Equal(t, 5*time.Minute, cfg.API.CacheTTL)

	require.NoError(t, cfg.Validate())
}

func TestLoadWithKoanf_Defaults(t *testing.T) {
	cfg, err := LoadWithKoanf()
	require.NoError(t, err)

	assert.Equal(t, "Nicolas Cage", cfg.Dataset.Actor)
	assert.Equal(t, 10, cfg.Dataset.TopRatedLimit)
	assert.Equal(t, []string{"*"}, cfg.Security.CORSOrigins)
}

func TestLoadWithKoanf_EnvOverrides(t *testing.T) {
	t.Setenv("DATASET_ACTOR", "John Travolta")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadWithKoanf()
	require.NoError(t, err)

	assert.Equal(t, "John Travolta", cfg.Dataset.Actor)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Security.CORSOrigins)
}

func TestLoadWithKoanf_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
dataset:
  path: /data/movies.csv
  window_years: 40
server:
  port: 8080
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := LoadWithKoanf()
	require.NoError(t, err)

	assert.Equal(t, "/data/movies.csv", cfg.Dataset.Path)
	assert.Equal(t, 40, cfg.Dataset.WindowYears)
	assert.Equal(t, 8080, cfg.Server.Port)
	// Untouched fields keep defaults.
	assert.Equal(t, "Nicolas Cage", cfg.Dataset.Actor)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing dataset path", func(c *Config) { c.Dataset.Path = "" }},
		{"missing actor", func(c *Config) { c.Dataset.Actor = "" }},
		{"zero window", func(c *Config) { c.Dataset.WindowYears = 0 }},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }},
		{"page size inversion", func(c *Config) { c.API.DefaultPageSize = 500 }},
		{"inverted rating bins", func(c *Config) { c.Dataset.RatingBinHigh = 1 }},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestEnvTransformFunc(t *testing.T) {
	assert.Equal(t, "dataset.path", envTransformFunc("DATASET_PATH"))
	assert.Equal(t, "database.path", envTransformFunc("DUCKDB_PATH"))
	assert.Equal(t, "server.port", envTransformFunc("HTTP_PORT"))
	assert.Equal(t, "logging.level", envTransformFunc("LOG_LEVEL"))
	// Unmapped variables are skipped.
	assert.Equal(t, "", envTransformFunc("HOME"))
	assert.Equal(t, "", envTransformFunc("PATH"))
}

func TestUpcomingHorizon(t *testing.T) {
	cfg := defaultConfig()
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 2027, cfg.UpcomingHorizon(now))

	cfg.Dataset.UpcomingFromYear = 2025
	assert.Equal(t, 2025, cfg.UpcomingHorizon(now))
}
