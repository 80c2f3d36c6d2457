package config

import "github.com/DonaldJasper0621/Stock-News-Analyst/internal/common"

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 4310,
			Host: "localhost",
		},
		Keys: KeysConfig{},
		AI: AIConfig{
			ChatBaseURL:   "https://api.perplexity.ai",
			ChatModel:     "sonar-pro",
			VisionBaseURL: "https://generativelanguage.googleapis.com",
			VisionModel:   "gemini-2.0-flash-exp",
		},
		Storage: StorageConfig{
			Badger: BadgerConfig{
				Path: "./data/analyst",
			},
		},
		Logging: common.LoggingConfig{
			Level:    "info",
			Outputs:  []string{"console", "file"},
			FilePath: "logs/analyst.log",
		},
	}
}
