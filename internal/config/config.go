package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ErrNotFound is returned by Load when no config file exists yet.
// The caller decides whether to prompt for a key or fall back to defaults.
var ErrNotFound = errors.New("config file not found")

const (
	appDirName            = "gemini-chat"
	defaultGeminiModel    = "gemini-2.0-flash"
	defaultOpenAIModel    = "gpt-4o-mini"
	defaultTimeoutSeconds = 60
)

// Provider names accepted in the "provider" field.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

type Config struct {
	APIKey   string `json:"api_key"`
	Model    string `json:"model,omitempty"`
	Provider string `json:"provider,omitempty"` // "gemini" (default) or "openai"
	BaseURL  string `json:"base_url,omitempty"` // endpoint override, mainly for OpenAI-compatible servers
	// History controls multi-turn context: "full" (default) sends the whole
	// conversation each turn, "latest" sends only the newest message.
	History               string `json:"history,omitempty"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds,omitempty"`
}

// Default returns a config with an empty API key and default settings.
func Default() *Config {
	return &Config{}
}

// Load reads the config file, returning ErrNotFound when it does not exist.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return &cfg, nil
}

// Save writes the config to disk, creating the directory if needed.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}

// SetAPIKey stores the key and persists the config immediately.
func (c *Config) SetAPIKey(key string) error {
	c.APIKey = key
	return c.Save()
}

// Reset deletes the config file. Missing file is not an error.
func Reset() error {
	path, err := Path()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove config file %s: %w", path, err)
	}

	return nil
}

// Path returns the per-OS config file location. GEMINI_CHAT_HOME overrides
// the directory, which also keeps tests away from the real config.
func Path() (string, error) {
	if home := os.Getenv("GEMINI_CHAT_HOME"); home != "" {
		return filepath.Join(home, "config.json"), nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, appDirName, "config.json"), nil
}

// ModelName returns the configured model, falling back to the provider default.
func (c *Config) ModelName() string {
	if c.Model != "" {
		return c.Model
	}
	if c.Provider == ProviderOpenAI {
		return defaultOpenAIModel
	}
	return defaultGeminiModel
}

// SendsHistory reports whether the full conversation is sent each turn.
func (c *Config) SendsHistory() bool {
	return c.History != "latest"
}

// RequestTimeout returns the per-request timeout, defaulting to one minute.
func (c *Config) RequestTimeout() time.Duration {
	if c.RequestTimeoutSeconds <= 0 {
		return defaultTimeoutSeconds * time.Second
	}
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// HasAPIKey reports whether a key is configured.
func (c *Config) HasAPIKey() bool {
	return c.APIKey != ""
}
