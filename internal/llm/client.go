// Package llm provides the completion client used by the generation pipeline
// and the tolerant JSON extraction applied to provider output.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is the LLM collaborator: prompt in, free text out. The pipeline owns
// locating and parsing any JSON embedded in the response.
type Client interface {
	Complete(ctx context.Context, prompt string, opts ...CallOption) (string, error)
	CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string, opts ...CallOption) (string, error)
}

// CallOption adjusts one completion call.
type CallOption func(*callOpts)

type callOpts struct {
	maxTokens   int
	temperature float64
}

func defaultCallOpts() callOpts {
	// Low temperature: the callers want structured output, not prose style.
	return callOpts{maxTokens: 4096, temperature: 0.1}
}

// WithMaxTokens caps the completion length.
func WithMaxTokens(n int) CallOption {
	return func(o *callOpts) {
		if n > 0 {
			o.maxTokens = n
		}
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(t float64) CallOption {
	return func(o *callOpts) { o.temperature = t }
}

// retryAttempts is how many times a rate-limited request is retried with
// exponential backoff before giving up.
const retryAttempts = 3

// AnthropicConfig configures the Anthropic messages client.
type AnthropicConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// DefaultAnthropicConfig returns sensible defaults for apiKey.
func DefaultAnthropicConfig(apiKey string) AnthropicConfig {
	return AnthropicConfig{
		APIKey:  apiKey,
		BaseURL: "https://api.anthropic.com/v1",
		Model:   "claude-sonnet-4-20250514",
		Timeout: 120 * time.Second,
	}
}

// AnthropicClient implements Client against the Anthropic messages API.
type AnthropicClient struct {
	cfg        AnthropicConfig
	httpClient *http.Client
}

// NewAnthropicClient creates a client with default config.
func NewAnthropicClient(apiKey string) *AnthropicClient {
	return NewAnthropicClientWithConfig(DefaultAnthropicConfig(apiKey))
}

// NewAnthropicClientWithConfig creates a client with custom config.
func NewAnthropicClientWithConfig(cfg AnthropicConfig) *AnthropicClient {
	return &AnthropicClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	System      string             `json:"system,omitempty"`
	Messages    []anthropicMessage `json:"messages"`
	Temperature float64            `json:"temperature,omitempty"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Complete sends a prompt and returns the completion.
func (c *AnthropicClient) Complete(ctx context.Context, prompt string, opts ...CallOption) (string, error) {
	return c.CompleteWithSystem(ctx, "", prompt, opts...)
}

// CompleteWithSystem sends a prompt with a system message.
func (c *AnthropicClient) CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string, opts ...CallOption) (string, error) {
	if c.cfg.APIKey == "" {
		return "", &TransportError{Provider: "anthropic", Err: fmt.Errorf("API key not configured")}
	}

	o := defaultCallOpts()
	for _, opt := range opts {
		opt(&o)
	}

	reqBody := anthropicRequest{
		Model:       c.cfg.Model,
		MaxTokens:   o.maxTokens,
		System:      systemPrompt,
		Messages:    []anthropicMessage{{Role: "user", Content: userPrompt}},
		Temperature: o.temperature,
	}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	body, err := postWithRetry(ctx, c.httpClient, "anthropic", c.cfg.BaseURL+"/messages", jsonData, func(req *http.Request) {
		req.Header.Set("x-api-key", c.cfg.APIKey)
		req.Header.Set("anthropic-version", "2023-06-01")
	})
	if err != nil {
		return "", err
	}

	var resp anthropicResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", &TransportError{Provider: "anthropic", Err: fmt.Errorf("failed to parse response: %w", err)}
	}
	if resp.Error != nil {
		return "", &TransportError{Provider: "anthropic", Err: fmt.Errorf("API error: %s", resp.Error.Message)}
	}
	if len(resp.Content) == 0 {
		return "", &TransportError{Provider: "anthropic", Err: fmt.Errorf("no completion returned")}
	}

	var result strings.Builder
	for _, content := range resp.Content {
		if content.Type == "text" {
			result.WriteString(content.Text)
		}
	}
	return strings.TrimSpace(result.String()), nil
}

// OpenAIConfig configures the OpenAI-compatible chat completions client.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// DefaultOpenAIConfig returns sensible defaults for apiKey.
func DefaultOpenAIConfig(apiKey string) OpenAIConfig {
	return OpenAIConfig{
		APIKey:  apiKey,
		BaseURL: "https://api.openai.com/v1",
		Model:   "gpt-4o-mini",
		Timeout: 120 * time.Second,
	}
}

// OpenAIClient implements Client against any chat-completions-compatible API.
type OpenAIClient struct {
	cfg        OpenAIConfig
	httpClient *http.Client
}

// NewOpenAIClient creates a client with default config.
func NewOpenAIClient(apiKey string) *OpenAIClient {
	return NewOpenAIClientWithConfig(DefaultOpenAIConfig(apiKey))
}

// NewOpenAIClientWithConfig creates a client with custom config.
func NewOpenAIClientWithConfig(cfg OpenAIConfig) *OpenAIClient {
	return &OpenAIClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Complete sends a prompt and returns the completion.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string, opts ...CallOption) (string, error) {
	return c.CompleteWithSystem(ctx, "", prompt, opts...)
}

// CompleteWithSystem sends a prompt with a system message.
func (c *OpenAIClient) CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string, opts ...CallOption) (string, error) {
	if c.cfg.APIKey == "" {
		return "", &TransportError{Provider: "openai", Err: fmt.Errorf("API key not configured")}
	}

	o := defaultCallOpts()
	for _, opt := range opts {
		opt(&o)
	}

	messages := make([]chatMessage, 0, 2)
	if systemPrompt != "" {
		messages = append(messages, chatMessage{Role: "system", Content: systemPrompt})
	}
	messages = append(messages, chatMessage{Role: "user", Content: userPrompt})

	reqBody := chatRequest{
		Model:       c.cfg.Model,
		Messages:    messages,
		MaxTokens:   o.maxTokens,
		Temperature: o.temperature,
	}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	body, err := postWithRetry(ctx, c.httpClient, "openai", c.cfg.BaseURL+"/chat/completions", jsonData, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	})
	if err != nil {
		return "", err
	}

	var resp chatResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", &TransportError{Provider: "openai", Err: fmt.Errorf("failed to parse response: %w", err)}
	}
	if resp.Error != nil {
		return "", &TransportError{Provider: "openai", Err: fmt.Errorf("API error: %s", resp.Error.Message)}
	}
	if len(resp.Choices) == 0 {
		return "", &TransportError{Provider: "openai", Err: fmt.Errorf("no completion returned")}
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// postWithRetry POSTs jsonData, retrying 429s with exponential backoff.
func postWithRetry(ctx context.Context, client *http.Client, provider, url string, jsonData []byte, setAuth func(*http.Request)) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= retryAttempts; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<uint(attempt-1)) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, &TransportError{Provider: provider, Err: ctx.Err()}
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
		if err != nil {
			return nil, &TransportError{Provider: provider, Err: fmt.Errorf("failed to create request: %w", err)}
		}
		req.Header.Set("Content-Type", "application/json")
		setAuth(req)

		resp, err := client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("failed to read response: %w", err)
			continue
		}
		if resp.StatusCode == http.StatusTooManyRequests {
			lastErr = fmt.Errorf("rate limit exceeded (429)")
			continue
		}
		if resp.StatusCode != http.StatusOK {
			return nil, &TransportError{Provider: provider,
				Err: fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))}
		}
		return body, nil
	}
	return nil, &TransportError{Provider: provider, Err: fmt.Errorf("max retries exceeded: %w", lastErr)}
}
