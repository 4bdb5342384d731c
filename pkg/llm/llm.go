// Package llm streams Beat content from the Anthropic Messages API.
package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/businessdatasolutions/beat-generator/models"
)

// Client generates content from a prompt pair.
type Client interface {
	// Complete streams a completion and returns the accumulated text.
	// onDelta, when non-nil, receives each text chunk as it arrives.
	Complete(ctx context.Context, prompts models.Prompts, onDelta func(string)) (string, error)
}

const (
	DefaultBaseURL = "https://api.anthropic.com"
	DefaultModel   = "claude-sonnet-4-5-20250929"
	// Long generations can run several minutes over a stream.
	DefaultTimeout = 10 * time.Minute

	anthropicVersion = "2023-06-01"
)

// Config holds configuration for the Anthropic client.
type Config struct {
	// APIKey is the Anthropic API key (required)
	APIKey string
	// BaseURL overrides the API endpoint
	BaseURL string
	// Model to request
	Model string
	// MaxTokens for the completion
	MaxTokens int
	// Timeout covers the whole streamed request
	Timeout time.Duration
}

// AnthropicClient talks to the Anthropic Messages API with streaming enabled.
type AnthropicClient struct {
	client    *http.Client
	baseURL   string
	apiKey    string
	model     string
	maxTokens int
}

var _ Client = (*AnthropicClient)(nil)

type messagesRequest struct {
	Model     string            `json:"model"`
	Messages  []messagesMessage `json:"messages"`
	MaxTokens int               `json:"max_tokens"`
	System    string            `json:"system,omitempty"`
	Stream    bool              `json:"stream"`
}

type messagesMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// streamEvent covers the event payloads we care about. Everything else
// on the stream is skipped.
type streamEvent struct {
	Type  string `json:"type"`
	Delta struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"delta"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// NewAnthropicClient creates a streaming Anthropic client.
func NewAnthropicClient(cfg Config) (*AnthropicClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("anthropic: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 16000
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &AnthropicClient{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:   cfg.BaseURL,
		apiKey:    cfg.APIKey,
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
	}, nil
}

// ModelName returns the model being requested.
func (c *AnthropicClient) ModelName() string {
	return c.model
}

// Complete sends the prompt pair and accumulates the streamed text deltas.
func (c *AnthropicClient) Complete(ctx context.Context, prompts models.Prompts, onDelta func(string)) (string, error) {
	reqBody := messagesRequest{
		Model: c.model,
		Messages: []messagesMessage{
			{Role: "user", Content: prompts.User},
		},
		MaxTokens: c.maxTokens,
		System:    prompts.System,
		Stream:    true,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/v1/messages",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("Accept", "text/event-stream")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return "", fmt.Errorf("anthropic error (status %d)", resp.StatusCode)
		}
		return "", fmt.Errorf("anthropic error (status %d): %s", resp.StatusCode, string(body))
	}

	return c.readStream(ctx, resp.Body, onDelta)
}

func (c *AnthropicClient) readStream(ctx context.Context, body io.Reader, onDelta func(string)) (string, error) {
	var result strings.Builder

	scanner := bufio.NewScanner(body)
	// Individual deltas stay small, but message_start events carry the
	// full request metadata.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		line := scanner.Text()
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		payload := strings.TrimPrefix(line, "data: ")
		if payload == "[DONE]" {
			break
		}

		var event streamEvent
		if err := json.Unmarshal([]byte(payload), &event); err != nil {
			continue
		}

		switch event.Type {
		case "content_block_delta":
			if event.Delta.Type == "text_delta" && event.Delta.Text != "" {
				result.WriteString(event.Delta.Text)
				if onDelta != nil {
					onDelta(event.Delta.Text)
				}
			}
		case "error":
			if event.Error != nil {
				return "", fmt.Errorf("anthropic stream error: %s", event.Error.Message)
			}
			return "", fmt.Errorf("anthropic stream error")
		case "message_stop":
			return result.String(), nil
		}
	}

	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read stream: %w", err)
	}

	if result.Len() == 0 {
		return "", fmt.Errorf("anthropic: no response content returned")
	}
	return result.String(), nil
}
