package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Setenv("GEMINI_CHAT_HOME", t.TempDir())

	cfg := &Config{APIKey: "X", Model: "gemini-2.0-flash", History: "latest"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.APIKey != "X" {
		t.Errorf("APIKey = %q, want %q", loaded.APIKey, "X")
	}
	if loaded.Model != "gemini-2.0-flash" {
		t.Errorf("Model = %q, want %q", loaded.Model, "gemini-2.0-flash")
	}
	if loaded.SendsHistory() {
		t.Error("SendsHistory() = true, want false for history=latest")
	}
}

func TestLoad_NotFound(t *testing.T) {
	t.Setenv("GEMINI_CHAT_HOME", t.TempDir())

	if _, err := Load(); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load() error = %v, want ErrNotFound", err)
	}
}

func TestReset_RemovesConfig(t *testing.T) {
	t.Setenv("GEMINI_CHAT_HOME", t.TempDir())

	cfg := &Config{APIKey: "X"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if err := Reset(); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}

	if _, err := Load(); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load() after Reset() error = %v, want ErrNotFound", err)
	}
}

func TestReset_MissingFileIsNotAnError(t *testing.T) {
	t.Setenv("GEMINI_CHAT_HOME", t.TempDir())

	if err := Reset(); err != nil {
		t.Errorf("Reset() with no config file error = %v", err)
	}
}

func TestSetAPIKey_PersistsImmediately(t *testing.T) {
	t.Setenv("GEMINI_CHAT_HOME", t.TempDir())

	cfg := Default()
	if err := cfg.SetAPIKey("secret"); err != nil {
		t.Fatalf("SetAPIKey() error = %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.APIKey != "secret" {
		t.Errorf("APIKey = %q, want %q", loaded.APIKey, "secret")
	}
}

func TestSave_FileMode(t *testing.T) {
	home := t.TempDir()
	t.Setenv("GEMINI_CHAT_HOME", home)

	cfg := &Config{APIKey: "X"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	info, err := os.Stat(filepath.Join(home, "config.json"))
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if mode := info.Mode().Perm(); mode != 0600 {
		t.Errorf("config file mode = %o, want 0600", mode)
	}
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	if got := cfg.ModelName(); got != "gemini-2.0-flash" {
		t.Errorf("ModelName() = %q, want gemini-2.0-flash", got)
	}
	if !cfg.SendsHistory() {
		t.Error("SendsHistory() = false, want true by default")
	}
	if got := cfg.RequestTimeout(); got != 60*time.Second {
		t.Errorf("RequestTimeout() = %v, want 60s", got)
	}
	if cfg.HasAPIKey() {
		t.Error("HasAPIKey() = true for empty config")
	}

	openaiCfg := &Config{Provider: ProviderOpenAI}
	if got := openaiCfg.ModelName(); got != "gpt-4o-mini" {
		t.Errorf("ModelName() for openai provider = %q, want gpt-4o-mini", got)
	}
}
