package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
)

// Load builds the configuration with layered precedence:
//  1. Defaults
//  2. User config ($XDG_CONFIG_HOME/interference/config.yaml), if present
//  3. explicitPath, if non-empty (must exist)
//  4. INTERFERENCE_* environment variables
func Load(explicitPath string) (*Config, error) {
	cfg := DefaultConfig()

	if userPath, err := UserConfigPath(); err == nil {
		if err := cfg.ApplyFile(userPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	if explicitPath != "" {
		if err := cfg.ApplyFile(explicitPath); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if cfg.Log.File == "" {
		p, err := DefaultLogPath()
		if err != nil {
			return nil, err
		}
		cfg.Log.File = p
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides values from environment variables.
func (c *Config) applyEnv() error {
	if v := os.Getenv("INTERFERENCE_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("INTERFERENCE_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	if v := os.Getenv("INTERFERENCE_ALLOW_BACK"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("INTERFERENCE_ALLOW_BACK: %w", err)
		}
		c.UI.AllowBack = b
	}
	return nil
}

// UserConfigPath resolves the user-level config file:
// $XDG_CONFIG_HOME/interference/config.yaml, else ~/.config/interference/config.yaml.
func UserConfigPath() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, appName, "config.yaml"), nil
}

// DefaultLogPath resolves the log file path:
// $XDG_STATE_HOME/interference/interference.log, else
// ~/.local/state/interference/interference.log.
func DefaultLogPath() (string, error) {
	base := os.Getenv("XDG_STATE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(base, appName, appName+".log"), nil
}
