package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/common"
)

// Config represents the application configuration.
type Config struct {
	Server  ServerConfig         `toml:"server"`
	Keys    KeysConfig           `toml:"keys"`
	AI      AIConfig             `toml:"ai"`
	Storage StorageConfig        `toml:"storage"`
	Logging common.LoggingConfig `toml:"logging"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

// KeysConfig contains build-time default API keys. Keys a user saves on
// the settings page are persisted to storage and take precedence.
type KeysConfig struct {
	ChatAPIKey   string `toml:"chat_api_key"`
	VisionAPIKey string `toml:"vision_api_key"`
}

// AIConfig contains the external AI endpoints and model names.
// Base URLs are configurable so tests can point at local stubs.
type AIConfig struct {
	ChatBaseURL string `toml:"chat_base_url"`
	ChatModel   string `toml:"chat_model"`

	VisionBaseURL string `toml:"vision_base_url"`
	VisionModel   string `toml:"vision_model"`
}

// StorageConfig contains storage layer settings.
type StorageConfig struct {
	Badger BadgerConfig `toml:"badger"`
}

// BadgerConfig contains BadgerDB-specific settings.
type BadgerConfig struct {
	Path string `toml:"path"`
}

// LoadFromFiles loads configuration from multiple files with priority:
// defaults -> file1 -> file2 -> ... -> env.
// Later files override earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		err = toml.Unmarshal(data, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config.
func applyEnvOverrides(config *Config) {
	if port := os.Getenv("ANALYST_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("ANALYST_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}
	if badgerPath := os.Getenv("ANALYST_BADGER_PATH"); badgerPath != "" {
		config.Storage.Badger.Path = badgerPath
	}
	if level := os.Getenv("ANALYST_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if key := os.Getenv("PERPLEXITY_API_KEY"); key != "" {
		config.Keys.ChatAPIKey = key
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		config.Keys.VisionAPIKey = key
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config.
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}
