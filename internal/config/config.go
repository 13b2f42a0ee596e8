// Package config loads remora's layered configuration: built-in defaults,
// an optional YAML config file, a .env file, then environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config holds all remora settings.
type Config struct {
	Agent AgentConfig `yaml:"agent"`
	Log   LogConfig   `yaml:"log"`

	// APIKey is environment-only. It is never read from or written to
	// config files.
	APIKey string `yaml:"-" envconfig:"ANTHROPIC_API_KEY"`
}

type AgentConfig struct {
	Model     string `yaml:"model" envconfig:"REMORA_MODEL"`
	MaxTokens int    `yaml:"max_tokens" envconfig:"REMORA_MAX_TOKENS"`
	// MaxToolTurns bounds consecutive model turns within one user turn.
	// Zero leaves tool chains unbounded.
	MaxToolTurns int `yaml:"max_tool_turns" envconfig:"REMORA_MAX_TOOL_TURNS"`
}

type LogConfig struct {
	Level  string `yaml:"level" envconfig:"REMORA_LOG_LEVEL"`   // default "info"
	Format string `yaml:"format" envconfig:"REMORA_LOG_FORMAT"` // "console" or "json"
}

// DefaultConfig returns a Config populated with all default values.
func DefaultConfig() *Config {
	return &Config{
		Agent: AgentConfig{
			Model:        "claude-sonnet-4-20250514",
			MaxTokens:    8192,
			MaxToolTurns: 0,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// DefaultPath resolves the default config file location. It uses
// os.UserHomeDir() + "/.remora/config.yaml", falling back under /tmp if the
// home directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("/tmp", "remora", "config.yaml")
	}
	return filepath.Join(home, ".remora", "config.yaml")
}

// Load builds the effective configuration. path may be empty, in which case
// the default location is tried and a missing file is not an error. A .env
// file in the working directory is loaded before environment overrides are
// applied.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	explicit := path != ""
	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// Defaults only.
	default:
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("applying environment overrides: %w", err)
	}

	return cfg, nil
}

// Validate checks settings that have no usable fallback.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("ANTHROPIC_API_KEY is not set")
	}
	if c.Agent.Model == "" {
		return fmt.Errorf("agent.model must not be empty")
	}
	if c.Agent.MaxTokens <= 0 {
		return fmt.Errorf("agent.max_tokens must be positive, got %d", c.Agent.MaxTokens)
	}
	if c.Agent.MaxToolTurns < 0 {
		return fmt.Errorf("agent.max_tool_turns must not be negative, got %d", c.Agent.MaxToolTurns)
	}
	return nil
}
