// Package config loads the interference detector's settings from layered
// YAML files and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/interference/internal/session"
)

const appName = "interference"

// Config holds all application configuration.
type Config struct {
	Log LogConfig `yaml:"log"`
	UI  UIConfig  `yaml:"ui"`

	// Sources lists the files that were applied, in order.
	Sources []string `yaml:"-"`
}

// LogConfig configures the file logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error. Default: info.
	Level string `yaml:"level"`
	// File is the log file path. Empty resolves to DefaultLogPath.
	File string `yaml:"file"`
	// Disabled turns logging off entirely.
	Disabled bool `yaml:"disabled"`
}

// UIConfig configures the terminal interface.
type UIConfig struct {
	// AllowBack enables returning to earlier questions. Default: true.
	AllowBack bool `yaml:"allow_back"`
	// DefaultRoute is preselected on the follow-up screen.
	DefaultRoute string `yaml:"default_route"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		UI: UIConfig{
			AllowBack:    true,
			DefaultRoute: string(session.DefaultRoute),
		},
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error; got %q", c.Log.Level)
	}
	if _, err := session.ParseRoute(c.UI.DefaultRoute); err != nil {
		return fmt.Errorf("ui.default_route: %w", err)
	}
	return nil
}

// Route returns the configured default follow-up route.
// Call only on a validated config.
func (c *Config) Route() session.Route {
	r, err := session.ParseRoute(c.UI.DefaultRoute)
	if err != nil {
		return session.DefaultRoute
	}
	return r
}

// ApplyFile decodes the YAML file at path on top of c. Keys absent from the
// file keep their current values.
func (c *Config) ApplyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	c.Sources = append(c.Sources, path)
	return nil
}

// SaveToFile writes c as YAML, creating parent directories.
func (c *Config) SaveToFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
