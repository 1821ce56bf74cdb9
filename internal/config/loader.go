// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader handles configuration loading with precedence
type Loader struct {
	configPath      string
	version         string
	ConsumedEnvKeys map[string]struct{} // Mechanical tracking of consumed keys
}

// NewLoader creates a new configuration loader
func NewLoader(configPath, version string) *Loader {
	return &Loader{
		configPath:      configPath,
		version:         version,
		ConsumedEnvKeys: make(map[string]struct{}),
	}
}

func (l *Loader) envString(key, defaultVal string) string {
	l.ConsumedEnvKeys[key] = struct{}{}
	return ParseString(key, defaultVal)
}

func (l *Loader) envInt(key string, defaultVal int) int {
	l.ConsumedEnvKeys[key] = struct{}{}
	return ParseInt(key, defaultVal)
}

// Load loads configuration with precedence: ENV > File > Defaults.
// Command line flags are applied by the caller on top of the result.
func (l *Loader) Load() (AppConfig, error) {
	cfg := defaults(l.version)

	if l.configPath != "" {
		fileCfg, err := l.loadFile(l.configPath)
		if err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
		mergeFileConfig(&cfg, fileCfg)
	}

	l.mergeEnvConfig(&cfg)

	cfg.InputFormat = strings.ToLower(strings.TrimSpace(cfg.InputFormat))
	cfg.OutputFormat = strings.ToLower(strings.TrimSpace(cfg.OutputFormat))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	return cfg, nil
}

func defaults(version string) AppConfig {
	return AppConfig{
		Version:      version,
		InputFormat:  DefaultInputFormat,
		OutputFormat: DefaultOutputFormat,
		Workers:      DefaultWorkers,
		LogLevel:     DefaultLogLevel,
		LogService:   DefaultLogService,
	}
}

func (l *Loader) loadFile(path string) (*FileConfig, error) {
	// #nosec G304 -- configuration file paths are provided by the operator via CLI/ENV
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return parseFileConfig(data)
}

func parseFileConfig(data []byte) (*FileConfig, error) {
	// Parse YAML with strict mode (unknown fields cause errors)
	var fileCfg FileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true) // Reject unknown fields

	if err := dec.Decode(&fileCfg); err != nil {
		if errors.Is(err, io.EOF) {
			return &FileConfig{}, nil
		}
		if strings.Contains(err.Error(), "field") && strings.Contains(err.Error(), "not found") {
			return nil, fmt.Errorf("strict config parse error: %w: %w", ErrUnknownConfigField, err)
		}
		return nil, fmt.Errorf("strict config parse error: %w", err)
	}

	// Strict: Ensure no multiple documents or trailing content
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config file contains multiple documents or trailing content")
	}

	return &fileCfg, nil
}

func mergeFileConfig(dst *AppConfig, src *FileConfig) {
	if src.Input.Format != "" {
		dst.InputFormat = src.Input.Format
	}
	if src.Output.Format != "" {
		dst.OutputFormat = src.Output.Format
	}
	if src.Output.Path != "" {
		dst.OutputPath = src.Output.Path
	}
	if src.Metrics.Textfile != "" {
		dst.MetricsTextfile = src.Metrics.Textfile
	}
	if src.Workers != nil {
		dst.Workers = *src.Workers
	}
	if src.Log.Level != "" {
		dst.LogLevel = src.Log.Level
	}
	if src.Log.Service != "" {
		dst.LogService = src.Log.Service
	}
}

func (l *Loader) mergeEnvConfig(cfg *AppConfig) {
	cfg.InputFormat = l.envString(EnvInputFormat, cfg.InputFormat)
	cfg.OutputFormat = l.envString(EnvOutputFormat, cfg.OutputFormat)
	cfg.OutputPath = l.envString(EnvOutputPath, cfg.OutputPath)
	cfg.MetricsTextfile = l.envString(EnvMetricsTextfile, cfg.MetricsTextfile)
	cfg.Workers = l.envInt(EnvWorkers, cfg.Workers)
	cfg.LogLevel = l.envString(EnvLogLevel, cfg.LogLevel)
	cfg.LogService = l.envString(EnvLogService, cfg.LogService)
}
