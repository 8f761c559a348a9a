package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Config represents the deckbridge configuration
type Config struct {
	RendererURL string        `json:"renderer_url"`
	Theme       string        `json:"theme,omitempty"`
	LogFile     string        `json:"log_file"`
	Timeout     time.Duration `json:"-"` // Custom JSON handling below
	Interval    time.Duration `json:"-"` // Custom JSON handling below
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		RendererURL: "http://localhost:8384",
		Theme:       "",
		LogFile:     "/tmp/deckbridge.log",
		Timeout:     30 * time.Second,
		Interval:    5 * time.Second,
	}
}

// ConfigPath returns the path to the config file
// Uses ~/.config on all platforms for consistency
// Can be overridden for testing
var ConfigPath = func() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to XDG if home dir unavailable
		return filepath.Join(xdg.ConfigHome, "deckbridge", "config.json")
	}
	return filepath.Join(home, ".config", "deckbridge", "config.json")
}

// StateFilePath returns the path to the state file
// Uses platform-specific XDG data directory
// Can be overridden for testing
var StateFilePath = func() string {
	return filepath.Join(xdg.DataHome, "deckbridge", "state.json")
}

// Load reads configuration from the XDG config directory
func Load() (*Config, error) {
	configPath := ConfigPath()
	data, err := os.ReadFile(configPath)
	if err != nil {
		// Return default config if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	// Use custom struct for JSON parsing to handle durations as strings
	var raw struct {
		RendererURL string `json:"renderer_url"`
		Theme       string `json:"theme"`
		LogFile     string `json:"log_file"`
		Timeout     string `json:"timeout"`
		Interval    string `json:"interval"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg := DefaultConfig()
	if raw.RendererURL != "" {
		cfg.RendererURL = raw.RendererURL
	}
	cfg.Theme = raw.Theme
	if raw.LogFile != "" {
		cfg.LogFile = raw.LogFile
	}
	if raw.Timeout != "" {
		timeout, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout format '%s': %w", raw.Timeout, err)
		}
		cfg.Timeout = timeout
	}
	if raw.Interval != "" {
		interval, err := time.ParseDuration(raw.Interval)
		if err != nil {
			return nil, fmt.Errorf("invalid interval format '%s': %w", raw.Interval, err)
		}
		cfg.Interval = interval
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Expand paths
	if err := cfg.ExpandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	return cfg, nil
}

// Save writes configuration to the XDG config directory
func (c *Config) Save() error {
	configPath := ConfigPath()
	configDir := filepath.Dir(configPath)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Use custom struct for JSON to handle durations as strings
	raw := struct {
		RendererURL string `json:"renderer_url"`
		Theme       string `json:"theme,omitempty"`
		LogFile     string `json:"log_file"`
		Timeout     string `json:"timeout"`
		Interval    string `json:"interval"`
	}{
		RendererURL: c.RendererURL,
		Theme:       c.Theme,
		LogFile:     c.LogFile,
		Timeout:     c.Timeout.String(),
		Interval:    c.Interval.String(),
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.RendererURL == "" {
		return fmt.Errorf("renderer_url cannot be empty")
	}
	u, err := url.Parse(c.RendererURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("renderer_url '%s' is not a valid URL", c.RendererURL)
	}
	if c.LogFile == "" {
		return fmt.Errorf("log_file cannot be empty")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive")
	}
	return nil
}

// ExpandPaths expands any ~ or relative paths to absolute paths
func (c *Config) ExpandPaths() error {
	var err error

	if c.Theme != "" {
		c.Theme, err = expandPath(c.Theme)
		if err != nil {
			return fmt.Errorf("failed to expand theme: %w", err)
		}
	}

	c.LogFile, err = expandPath(c.LogFile)
	if err != nil {
		return fmt.Errorf("failed to expand log_file: %w", err)
	}

	return nil
}

// expandPath expands ~ to home directory and converts to absolute path
func expandPath(path string) (string, error) {
	if path == "" {
		return path, nil
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		path = filepath.Join(homeDir, path[1:])
	}

	// Convert to absolute path
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return absPath, nil
}
