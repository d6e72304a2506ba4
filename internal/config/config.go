// Package config loads the dashgen configuration file and applies
// environment overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all dashgen configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	LLM      LLMConfig      `yaml:"llm"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig configures the HTTP surface.
type ServerConfig struct {
	Addr            string `yaml:"addr"`
	ReadTimeout     string `yaml:"read_timeout"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
	// MaxBodyBytes caps the markdown payload accepted per request.
	MaxBodyBytes int64 `yaml:"max_body_bytes"`
}

// LLMConfig configures the model provider.
type LLMConfig struct {
	Provider string `yaml:"provider"` // anthropic, openai
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
	BaseURL  string `yaml:"base_url"`
	Timeout  string `yaml:"timeout"`
}

// PipelineConfig tunes generation behavior.
type PipelineConfig struct {
	StageTimeout string `yaml:"stage_timeout"`
	EmitBuffer   int    `yaml:"emit_buffer"`
	MaxTokens    int    `yaml:"max_tokens"`
	VarietyRetry bool   `yaml:"variety_retry"`
}

// LoggingConfig configures zap.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8420",
			ReadTimeout:     "30s",
			ShutdownTimeout: "10s",
			MaxBodyBytes:    1 << 20,
		},
		LLM: LLMConfig{
			Provider: "anthropic",
			Timeout:  "120s",
		},
		Pipeline: PipelineConfig{
			StageTimeout: "60s",
			EmitBuffer:   16,
			MaxTokens:    8192,
			VarietyRetry: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads path, falling back to defaults when the file does not exist.
// Environment variables override file values afterward.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("DASHGEN_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("DASHGEN_LLM_PROVIDER"); v != "" {
		c.LLM.Provider = v
	}
	if v := os.Getenv("DASHGEN_LLM_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if v := os.Getenv("DASHGEN_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	// Provider keys are never written to the config file.
	if c.LLM.APIKey == "" {
		switch c.LLM.Provider {
		case "openai":
			c.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		default:
			c.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		}
	}
}

// Validate checks the configuration for obvious problems.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	switch c.LLM.Provider {
	case "anthropic", "openai":
	default:
		return fmt.Errorf("unknown llm.provider %q", c.LLM.Provider)
	}
	if c.Pipeline.EmitBuffer < 0 {
		return fmt.Errorf("pipeline.emit_buffer must not be negative")
	}
	return nil
}

// StageTimeout parses the pipeline stage timeout with a 60s fallback.
func (c *Config) StageTimeout() time.Duration {
	return parseDuration(c.Pipeline.StageTimeout, 60*time.Second)
}

// LLMTimeout parses the provider HTTP timeout with a 120s fallback.
func (c *Config) LLMTimeout() time.Duration {
	return parseDuration(c.LLM.Timeout, 120*time.Second)
}

// ReadTimeout parses the server read timeout with a 30s fallback.
func (c *Config) ReadTimeout() time.Duration {
	return parseDuration(c.Server.ReadTimeout, 30*time.Second)
}

// ShutdownTimeout parses the graceful-shutdown bound with a 10s fallback.
func (c *Config) ShutdownTimeout() time.Duration {
	return parseDuration(c.Server.ShutdownTimeout, 10*time.Second)
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil && d > 0 {
		return d
	}
	return fallback
}
