package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/nachoal/nano-banana-mcp/llm"
)

const (
	defaultBaseURL = "https://openrouter.ai/api/v1"
	defaultTimeout = 120 * time.Second

	// OpenRouter asks callers to identify themselves with these headers.
	refererHeader = "https://github.com/nachoal/nano-banana-mcp"
	titleHeader   = "nano-banana-mcp"
)

// Options contains settings for creating a client
type Options struct {
	APIKey     string
	BaseURL    string
	Model      string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

// Option is a functional option for configuring the client
type Option func(*Options)

// WithAPIKey sets the API key
func WithAPIKey(key string) Option {
	return func(o *Options) {
		o.APIKey = key
	}
}

// WithBaseURL sets the base URL
func WithBaseURL(url string) Option {
	return func(o *Options) {
		o.BaseURL = url
	}
}

// WithModel sets the default model
func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// WithTimeout sets the request timeout
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		o.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(o *Options) {
		o.HTTPClient = client
	}
}

// WithLogger sets the diagnostics logger
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// Client implements the llm.Client interface for OpenRouter
type Client struct {
	options    Options
	httpClient *http.Client
}

// NewClient creates a new OpenRouter client
func NewClient(opts ...Option) (*Client, error) {
	options := Options{
		BaseURL: defaultBaseURL,
		Timeout: defaultTimeout,
		Logger:  zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(&options)
	}

	// Get API key from environment if not provided
	if options.APIKey == "" {
		options.APIKey = os.Getenv("OPENROUTER_API_KEY")
		if options.APIKey == "" {
			return nil, fmt.Errorf("OpenRouter API key not provided")
		}
	}

	httpClient := options.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.Timeout}
	}

	return &Client{
		options:    options,
		httpClient: httpClient,
	}, nil
}

// Chat sends a chat completion request to OpenRouter. One blocking
// round trip: no retries, no streaming.
func (c *Client) Chat(ctx context.Context, request *llm.ChatRequest) (*llm.ChatResponse, error) {
	if request.Model == "" {
		request.Model = c.options.Model
	}

	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	c.options.Logger.Debug().
		Str("model", request.Model).
		Int("messages", len(request.Messages)).
		Msg("sending chat completion request")

	url := strings.TrimSuffix(c.options.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error.Message != "" {
			return nil, fmt.Errorf("OpenRouter API error: %s", errResp.Error.Message)
		}
		return nil, fmt.Errorf("OpenRouter API error: status %d, body: %s", resp.StatusCode, llm.RedactDataURLs(string(respBody)))
	}

	var response llm.ChatResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	// Some upstream failures come back with HTTP 200 and an error body.
	if response.Error != nil && response.Error.Message != "" {
		return nil, fmt.Errorf("OpenRouter API error: %s", response.Error.Message)
	}

	c.options.Logger.Debug().
		Int("choices", len(response.Choices)).
		Msg("chat completion response received")

	return &response, nil
}

// setHeaders sets common headers for requests
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.options.APIKey)
	req.Header.Set("HTTP-Referer", refererHeader)
	req.Header.Set("X-Title", titleHeader)
}
