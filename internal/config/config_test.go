package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Agent.Model == "" {
		t.Error("expected a default model")
	}
	if cfg.Agent.MaxTokens != 8192 {
		t.Errorf("expected default max tokens 8192, got %d", cfg.Agent.MaxTokens)
	}
	if cfg.Agent.MaxToolTurns != 0 {
		t.Errorf("expected unbounded tool chains by default, got %d", cfg.Agent.MaxToolTurns)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "console" {
		t.Errorf("unexpected log defaults: %+v", cfg.Log)
	}
}

func TestLoadWithoutConfigFileUsesDefaults(t *testing.T) {
	// Point HOME at an empty directory so no real config file is found.
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Agent.MaxTokens != DefaultConfig().Agent.MaxTokens {
		t.Errorf("expected default max tokens, got %d", cfg.Agent.MaxTokens)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := strings.Join([]string{
		"agent:",
		"  model: claude-test-model",
		"  max_tokens: 2048",
		"  max_tool_turns: 5",
		"log:",
		"  level: debug",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Agent.Model != "claude-test-model" {
		t.Errorf("expected model from file, got %s", cfg.Agent.Model)
	}
	if cfg.Agent.MaxTokens != 2048 {
		t.Errorf("expected max tokens 2048, got %d", cfg.Agent.MaxTokens)
	}
	if cfg.Agent.MaxToolTurns != 5 {
		t.Errorf("expected max tool turns 5, got %d", cfg.Agent.MaxToolTurns)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Log.Level)
	}
	// Fields absent from the file keep their defaults.
	if cfg.Log.Format != "console" {
		t.Errorf("expected default log format, got %s", cfg.Log.Format)
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")
	if _, err := Load(path); err == nil {
		t.Error("expected error for an explicitly named missing file")
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("REMORA_MODEL", "claude-from-env")
	t.Setenv("REMORA_MAX_TOKENS", "512")
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Agent.Model != "claude-from-env" {
		t.Errorf("expected model from environment, got %s", cfg.Agent.Model)
	}
	if cfg.Agent.MaxTokens != 512 {
		t.Errorf("expected max tokens from environment, got %d", cfg.Agent.MaxTokens)
	}
	if cfg.APIKey != "sk-test" {
		t.Error("expected API key from environment")
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg := DefaultConfig()
		cfg.APIKey = "sk-test"
		return cfg
	}

	if err := base().Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}

	cfg := base()
	cfg.APIKey = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing API key")
	}

	cfg = base()
	cfg.Agent.Model = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty model")
	}

	cfg = base()
	cfg.Agent.MaxTokens = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for non-positive max tokens")
	}

	cfg = base()
	cfg.Agent.MaxToolTurns = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative max tool turns")
	}
}
