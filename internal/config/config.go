// Package config provides configuration loading for the interview service.
// Values merge in order: JSON config file, then environment variables, then
// CLI flags.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// DefaultPort is used when neither config file, env nor flag sets a port.
const DefaultPort = 8080

// Config represents the service configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or must
// be provided via environment variables or CLI flags.
type Config struct {
	Port int `json:"port,omitempty"` // HTTP listen port

	// Credentials. The Gemini key is required to serve; the others enable
	// optional features when present.
	GeminiAPIKey   string `json:"gemini_api_key,omitempty"`
	SpeechAPIKey   string `json:"speech_api_key,omitempty"`   // speech-to-text and text-to-speech
	SearchAPIKey   string `json:"search_api_key,omitempty"`   // company research
	SearchEngineID string `json:"search_engine_id,omitempty"` // Programmable Search engine id

	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv returns a Config populated from environment variables.
func FromEnv() Config {
	cfg := Config{
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		SpeechAPIKey:   os.Getenv("SPEECH_API_KEY"),
		SearchAPIKey:   os.Getenv("SEARCH_API_KEY"),
		SearchEngineID: os.Getenv("SEARCH_ENGINE_ID"),
	}
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Port = p
		}
	}
	return cfg
}

// Validate checks that the configuration has valid values. Credential
// presence is checked at server construction, not here, so a config file
// without keys still loads.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.SearchAPIKey != "" && c.SearchEngineID == "" {
		return fmt.Errorf("config error: 'search_api_key' requires 'search_engine_id'")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Used to layer a config file under environment variables.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.SpeechAPIKey == "" {
		result.SpeechAPIKey = defaults.SpeechAPIKey
	}
	if result.SearchAPIKey == "" {
		result.SearchAPIKey = defaults.SearchAPIKey
	}
	if result.SearchEngineID == "" {
		result.SearchEngineID = defaults.SearchEngineID
	}
	if result.Port == 0 {
		result.Port = DefaultPort
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
