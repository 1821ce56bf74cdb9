// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv neutralises ambient environment; empty values fall back to defaults.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvInputFormat, EnvOutputFormat, EnvOutputPath, EnvMetricsTextfile,
		EnvWorkers, EnvLogLevel, EnvLogService,
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := NewLoader("", "test").Load()
	require.NoError(t, err)

	assert.Equal(t, AppConfig{
		Version:      "test",
		InputFormat:  DefaultInputFormat,
		OutputFormat: DefaultOutputFormat,
		Workers:      DefaultWorkers,
		LogLevel:     DefaultLogLevel,
		LogService:   DefaultLogService,
	}, cfg)
	require.NoError(t, Validate(cfg))
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)

	cfg, err := NewLoader(filepath.Join("testdata", "valid.yaml"), "test").Load()
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.InputFormat)
	assert.Equal(t, "series", cfg.OutputFormat)
	assert.Equal(t, "out.csv", cfg.OutputPath)
	assert.Equal(t, "parkload.prom", cfg.MetricsTextfile)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "lot-east", cfg.LogService)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvOutputFormat, "JSON")
	t.Setenv(EnvWorkers, "2")

	loader := NewLoader(filepath.Join("testdata", "valid.yaml"), "test")
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, "json", cfg.InputFormat)
	assert.Contains(t, loader.ConsumedEnvKeys, EnvWorkers)
}

func TestLoad_InvalidEnvIntFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvWorkers, "many")

	cfg, err := NewLoader("", "test").Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultWorkers, cfg.Workers)
}

// TestLoad_UnknownKeyFails tests that strict parsing rejects unknown fields.
func TestLoad_UnknownKeyFails(t *testing.T) {
	clearEnv(t)

	_, err := NewLoader(filepath.Join("testdata", "unknown-key.yaml"), "test").Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownConfigField), "got %v", err)
}

func TestLoad_MultipleDocumentsFail(t *testing.T) {
	clearEnv(t)

	_, err := NewLoader(filepath.Join("testdata", "multi-doc.yaml"), "test").Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiple documents")
}

func TestLoad_EmptyFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := NewLoader(filepath.Join("testdata", "empty.yaml"), "test").Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultWorkers, cfg.Workers)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)

	_, err := NewLoader(filepath.Join("testdata", "absent.yaml"), "test").Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := AppConfig{
		InputFormat:  "auto",
		OutputFormat: "text",
		Workers:      4,
		LogLevel:     "info",
		LogService:   "parkload",
	}
	require.NoError(t, Validate(base))

	tests := []struct {
		name   string
		mutate func(*AppConfig)
		field  string
	}{
		{"input format", func(c *AppConfig) { c.InputFormat = "xml" }, "input.format"},
		{"output format", func(c *AppConfig) { c.OutputFormat = "chart" }, "output.format"},
		{"workers low", func(c *AppConfig) { c.Workers = 0 }, "workers"},
		{"workers high", func(c *AppConfig) { c.Workers = MaxWorkers + 1 }, "workers"},
		{"log level", func(c *AppConfig) { c.LogLevel = "verbose" }, "log.level"},
		{"log service", func(c *AppConfig) { c.LogService = " " }, "log.service"},
		{"output dir missing", func(c *AppConfig) { c.OutputPath = filepath.Join(t.TempDir(), "a", "b.txt") }, "output.path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := Validate(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}
