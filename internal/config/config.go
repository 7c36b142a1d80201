// Package config handles autolaunchctl configuration loading from YAML
// files and environment variables.
// Configuration precedence: environment variables > config file > defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the registration description and tool settings.
type Config struct {
	App     AppConfig     `yaml:"app"`
	MacOS   MacOSConfig   `yaml:"macos"`
	Windows WindowsConfig `yaml:"windows"`
	Logging LoggingConfig `yaml:"logging"`
}

// AppConfig describes the startup entry being managed.
type AppConfig struct {
	Name   string   `yaml:"name"`
	Path   string   `yaml:"path"`
	Args   []string `yaml:"args"`
	Hidden bool     `yaml:"hidden"`
}

// MacOSConfig holds macOS-specific registration settings.
type MacOSConfig struct {
	LaunchAgent       bool     `yaml:"launch_agent"`
	BundleIdentifiers []string `yaml:"bundle_identifiers"`
	AgentExtraConfig  string   `yaml:"agent_extra_config"`
}

// WindowsConfig holds Windows-specific registration settings.
type WindowsConfig struct {
	// Mode is one of "dynamic", "current-user" or "system".
	Mode string `yaml:"mode"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Windows: WindowsConfig{Mode: "dynamic"},
		Logging: LoggingConfig{Level: "info"},
	}
}

// LoadFromBytes parses YAML configuration from a byte slice and merges with
// defaults. Environment variables take highest precedence and override
// values from the byte slice.
func LoadFromBytes(data []byte) (*Config, error) {
	cfg := DefaultConfig()

	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config data: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// Load reads configuration from a YAML file and merges with defaults.
// If path is empty or the file does not exist, only defaults and environment
// variables are used.
func Load(path string) (*Config, error) {
	if path == "" {
		return LoadFromBytes(nil)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		return LoadFromBytes(nil)
	}

	return LoadFromBytes(data)
}

// WriteConfig serializes the config to a YAML file at the given path.
// Creates parent directories if needed.
func WriteConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0640)
}

// applyEnvOverrides applies environment variable overrides to the
// configuration. Environment variables have the highest precedence.
func applyEnvOverrides(cfg *Config) {
	if name := os.Getenv("AUTOLAUNCH_APP_NAME"); name != "" {
		cfg.App.Name = name
	}
	if path := os.Getenv("AUTOLAUNCH_APP_PATH"); path != "" {
		cfg.App.Path = path
	}
	if args := os.Getenv("AUTOLAUNCH_APP_ARGS"); args != "" {
		cfg.App.Args = strings.Fields(args)
	}
	if mode := os.Getenv("AUTOLAUNCH_WINDOWS_MODE"); mode != "" {
		cfg.Windows.Mode = mode
	}
	if level := os.Getenv("AUTOLAUNCH_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
}

// Validate checks that the configuration describes a usable registration.
func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app name is required (set app.name or --name)")
	}
	if c.App.Path == "" {
		return fmt.Errorf("app path is required (set app.path or --path)")
	}
	if !filepath.IsAbs(c.App.Path) {
		return fmt.Errorf("app path must be absolute (got: %s)", c.App.Path)
	}
	switch c.Windows.Mode {
	case "dynamic", "current-user", "user", "system":
	default:
		return fmt.Errorf("invalid windows mode %q", c.Windows.Mode)
	}
	return nil
}
