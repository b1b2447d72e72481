// Package config handles the XDG configuration directory and the optional config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application directory name.
	AppName = "taskman"

	// ConfigFile is the config filename inside the config directory.
	ConfigFile = "config.yaml"

	// DefaultLogLevel is used when the config file does not set one.
	DefaultLogLevel = "warn"

	// DefaultLogFormat is used when the config file does not set one.
	DefaultLogFormat = "console"
)

// Config holds configuration paths and settings.
// Only settings are read from disk; task data is never persisted.
type Config struct {
	// Path is the config file that was loaded, or would have been.
	Path string `yaml:"-"`

	// Banner enables the welcome banner.
	Banner bool `yaml:"banner"`

	// LogLevel is a zerolog level name.
	LogLevel string `yaml:"log_level"`

	// LogFormat is "console" or "json".
	LogFormat string `yaml:"log_format"`

	// Debug forces debug logging. Set from the command line.
	Debug bool `yaml:"-"`

	// Quiet suppresses the banner and informational hints. Set from the command line.
	Quiet bool `yaml:"-"`
}

// Default returns a Config with built-in defaults rooted at the default directory.
func Default() *Config {
	return &Config{
		Path:      filepath.Join(DefaultConfigDir(), ConfigFile),
		Banner:    true,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// Load reads the config file at path, or the default location if path is empty.
// A missing file yields defaults; a malformed file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		cfg.Path = path
	}

	data, err := os.ReadFile(cfg.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", cfg.Path, err)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// EffectiveLogLevel returns the level to log at, honoring Debug.
func (c *Config) EffectiveLogLevel() string {
	if c.Debug {
		return "debug"
	}
	return c.LogLevel
}

// ShowBanner reports whether the welcome banner should be printed,
// ignoring terminal detection.
func (c *Config) ShowBanner() bool {
	return c.Banner && !c.Quiet
}
