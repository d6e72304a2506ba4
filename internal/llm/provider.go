package llm

import (
	"fmt"
	"os"
	"time"
)

// Provider names accepted in configuration.
const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
)

// ProviderConfig is the resolved provider selection.
type ProviderConfig struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
	Timeout  time.Duration
}

// NewClient constructs a Client for the configured provider.
func NewClient(cfg ProviderConfig) (Client, error) {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	switch cfg.Provider {
	case ProviderAnthropic:
		ac := DefaultAnthropicConfig(cfg.APIKey)
		if cfg.Model != "" {
			ac.Model = cfg.Model
		}
		if cfg.BaseURL != "" {
			ac.BaseURL = cfg.BaseURL
		}
		ac.Timeout = timeout
		return NewAnthropicClientWithConfig(ac), nil
	case ProviderOpenAI:
		oc := DefaultOpenAIConfig(cfg.APIKey)
		if cfg.Model != "" {
			oc.Model = cfg.Model
		}
		if cfg.BaseURL != "" {
			oc.BaseURL = cfg.BaseURL
		}
		oc.Timeout = timeout
		return NewOpenAIClientWithConfig(oc), nil
	}
	return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
}

// DetectProvider reads the environment when config names no provider.
// Priority: ANTHROPIC_API_KEY, then OPENAI_API_KEY.
func DetectProvider() (*ProviderConfig, error) {
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		return &ProviderConfig{Provider: ProviderAnthropic, APIKey: key}, nil
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return &ProviderConfig{Provider: ProviderOpenAI, APIKey: key}, nil
	}
	return nil, fmt.Errorf("no API key found in environment (ANTHROPIC_API_KEY or OPENAI_API_KEY)")
}
