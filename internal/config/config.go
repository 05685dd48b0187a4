package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the global ~/.netwall/config.toml.
type Config struct {
	DefaultProfile string        `toml:"default_profile"`
	LogLevel       string        `toml:"log_level"`
	Chat           ChatConfig    `toml:"chat"`
	Console        ConsoleConfig `toml:"console"`
}

// ChatConfig holds conversation store settings.
type ChatConfig struct {
	// AutoCreateChats makes a message sent to an unknown chat open a new one
	// instead of failing.
	AutoCreateChats bool `toml:"auto_create_chats"`
}

// ConsoleConfig holds console output settings.
type ConsoleConfig struct {
	JSON         bool `toml:"json"`
	RecentEvents int  `toml:"recent_events"`
}

// Default returns the configuration used when no file is present.
// Keys missing from a loaded file keep these values.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Chat: ChatConfig{
			AutoCreateChats: true,
		},
		Console: ConsoleConfig{
			RecentEvents: 32,
		},
	}
}

// Load reads config from the given path. Returns nil and error if file missing.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault is Load, falling back to Default when the file does not exist.
// Malformed files are still reported.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes config to the given path, creating parent dirs as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	encErr := toml.NewEncoder(f).Encode(cfg)
	if closeErr := f.Close(); closeErr != nil && encErr == nil {
		return closeErr
	}
	return encErr
}
