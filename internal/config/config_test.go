package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	if cfg.Server.Port != 4310 {
		t.Errorf("expected default port 4310, got %d", cfg.Server.Port)
	}
	if cfg.Server.Host != "localhost" {
		t.Errorf("expected default host localhost, got %s", cfg.Server.Host)
	}
	if cfg.AI.ChatModel != "sonar-pro" {
		t.Errorf("expected default chat model sonar-pro, got %s", cfg.AI.ChatModel)
	}
	if cfg.AI.VisionModel != "gemini-2.0-flash-exp" {
		t.Errorf("expected default vision model gemini-2.0-flash-exp, got %s", cfg.AI.VisionModel)
	}
	if cfg.Storage.Badger.Path != "./data/analyst" {
		t.Errorf("expected default badger path ./data/analyst, got %s", cfg.Storage.Badger.Path)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default log level info, got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFiles_NoFiles(t *testing.T) {
	cfg, err := LoadFromFiles()
	if err != nil {
		t.Fatalf("LoadFromFiles with no files should not error: %v", err)
	}
	if cfg.Server.Port != 4310 {
		t.Errorf("expected default port 4310, got %d", cfg.Server.Port)
	}
}

func TestLoadFromFiles_ValidTOML(t *testing.T) {
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "test.toml")

	content := `
[server]
port = 9090
host = "0.0.0.0"

[keys]
chat_api_key = "pplx-test"
vision_api_key = "AIza-test"

[ai]
chat_base_url = "http://localhost:9999"

[storage.badger]
path = "/tmp/test-db"

[logging]
level = "debug"
`
	if err := os.WriteFile(tomlPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFiles(tomlPath)
	if err != nil {
		t.Fatalf("LoadFromFiles failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Keys.ChatAPIKey != "pplx-test" {
		t.Errorf("expected chat key pplx-test, got %s", cfg.Keys.ChatAPIKey)
	}
	if cfg.Keys.VisionAPIKey != "AIza-test" {
		t.Errorf("expected vision key AIza-test, got %s", cfg.Keys.VisionAPIKey)
	}
	if cfg.AI.ChatBaseURL != "http://localhost:9999" {
		t.Errorf("expected chat base url override, got %s", cfg.AI.ChatBaseURL)
	}
	if cfg.AI.ChatModel != "sonar-pro" {
		t.Errorf("expected chat model to keep default, got %s", cfg.AI.ChatModel)
	}
	if cfg.Storage.Badger.Path != "/tmp/test-db" {
		t.Errorf("expected badger path /tmp/test-db, got %s", cfg.Storage.Badger.Path)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFiles_MissingFile(t *testing.T) {
	_, err := LoadFromFiles("/nonexistent/path.toml")
	if err == nil {
		t.Error("expected error for missing config file, got nil")
	}
}

func TestEnvOverrides_Keys(t *testing.T) {
	t.Setenv("PERPLEXITY_API_KEY", "pplx-env")
	t.Setenv("GEMINI_API_KEY", "AIza-env")
	t.Setenv("ANALYST_SERVER_PORT", "7777")

	cfg, err := LoadFromFiles()
	if err != nil {
		t.Fatalf("LoadFromFiles failed: %v", err)
	}

	if cfg.Keys.ChatAPIKey != "pplx-env" {
		t.Errorf("expected chat key from env, got %s", cfg.Keys.ChatAPIKey)
	}
	if cfg.Keys.VisionAPIKey != "AIza-env" {
		t.Errorf("expected vision key from env, got %s", cfg.Keys.VisionAPIKey)
	}
	if cfg.Server.Port != 7777 {
		t.Errorf("expected port 7777 from env, got %d", cfg.Server.Port)
	}
}

func TestApplyFlagOverrides(t *testing.T) {
	cfg := NewDefaultConfig()

	ApplyFlagOverrides(cfg, 8080, "0.0.0.0")
	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("expected host 0.0.0.0, got %s", cfg.Server.Host)
	}

	// Zero values leave config untouched
	ApplyFlagOverrides(cfg, 0, "")
	if cfg.Server.Port != 8080 || cfg.Server.Host != "0.0.0.0" {
		t.Error("zero-value flags should not override config")
	}
}
