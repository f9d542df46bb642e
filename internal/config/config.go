//-------------------------------------------------------------------------
//
// FundGen Synthetic Fund Data Generator
//
// Copyright (c) 2025 - 2026, Quantrail Data, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package config handles configuration management for fundgen.
// Configuration is loaded from config files and CLI flags (no environment variables).
// CLI flags take precedence over config file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for fundgen.
type Config struct {
	// Connection is the PostgreSQL connection string for the analytical database.
	Connection string `mapstructure:"connection"`

	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// Generate holds configuration for the generate subcommand.
	Generate GenerateConfig `mapstructure:"generate"`

	// Serve holds configuration for the serve subcommand.
	Serve ServeConfig `mapstructure:"serve"`
}

// GenerateConfig holds configuration for dataset generation.
type GenerateConfig struct {
	// FundType restricts generation to funds of one type (empty = all types).
	FundType string `mapstructure:"fund_type"`

	// Reports is the list of report kinds to generate (empty = all).
	Reports []string `mapstructure:"reports"`

	// Count is the base row count per report before per-kind scaling.
	Count int `mapstructure:"count"`

	// Truncate clears each target table before inserting.
	Truncate bool `mapstructure:"truncate"`

	// Seed makes generation reproducible (0 = time-based seed).
	Seed uint64 `mapstructure:"seed"`

	// Output is a directory for CSV export (empty = no export).
	Output string `mapstructure:"output"`

	// Upload writes generated tables to the database.
	Upload bool `mapstructure:"upload"`
}

// ServeConfig holds configuration for the web form server.
type ServeConfig struct {
	// Listen is the address the HTTP server binds to.
	Listen string `mapstructure:"listen"`

	// SessionTTLMinutes is how long generated results stay downloadable.
	SessionTTLMinutes int `mapstructure:"session_ttl_minutes"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Generate: GenerateConfig{
			Count:    12,
			Truncate: true,
			Upload:   true,
		},
		Serve: ServeConfig{
			Listen:            ":8080",
			SessionTTLMinutes: 30,
		},
	}
}

// Load reads configuration from config files.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./fundgen.yaml
// 3. ~/.config/fundgen/config.yaml
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("fundgen")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "fundgen"))
	}

	// Use specific config file if provided
	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Start with defaults
	cfg := DefaultConfig()

	// Unmarshal config file values
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// ValidateGenerate checks configuration required for the generate command.
func (c *Config) ValidateGenerate() error {
	if c.Generate.Count < 1 || c.Generate.Count > 1000 {
		return fmt.Errorf("count must be between 1 and 1000")
	}
	if c.Generate.Upload && c.Connection == "" {
		return fmt.Errorf("connection string is required for upload (use --upload=false to skip)")
	}
	if !c.Generate.Upload && c.Generate.Output == "" {
		return fmt.Errorf("nothing to do: upload disabled and no output directory set")
	}
	return nil
}

// ValidateFetch checks configuration required for the fetch command.
func (c *Config) ValidateFetch() error {
	if c.Connection == "" {
		return fmt.Errorf("connection string is required")
	}
	return nil
}

// ValidateServe checks configuration required for the serve command.
func (c *Config) ValidateServe() error {
	if c.Serve.Listen == "" {
		return fmt.Errorf("listen address is required")
	}
	if c.Serve.SessionTTLMinutes < 1 {
		return fmt.Errorf("session_ttl_minutes must be at least 1")
	}
	return nil
}
