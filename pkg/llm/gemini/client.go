// Package gemini provides a Gemini text generation client built on the genai SDK.
package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"google.golang.org/genai"

	"github.com/Fawzia2025/cb-care-live/pkg/llm"
)

const (
	// DefaultModel is the default text model
	DefaultModel = "gemini-2.0-flash"

	// DefaultTimeout bounds a single generation request
	DefaultTimeout = 60 * time.Second

	// DefaultTemperature is the default temperature for generation
	DefaultTemperature = 0.7
)

// Config holds the configuration for the Gemini client
type Config struct {
	APIKey      string
	Model       string
	BaseURL     string
	Timeout     time.Duration
	Temperature float64
}

// Client is a single-turn Gemini client
type Client struct {
	client      *genai.Client
	model       string
	temperature float64
	log         *slog.Logger
}

var _ llm.Provider = (*Client)(nil)

// ClientOption configures the Client
type ClientOption func(*Client)

// WithLogger sets the logger
func WithLogger(log *slog.Logger) ClientOption {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a Gemini client authenticated with an API key
func NewClient(ctx context.Context, cfg Config, opts ...ClientOption) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	c := &Client{
		client:      client,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		log:         slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Generate sends the prompt as a single user turn. Exactly one request is
// made per call.
func (c *Client) Generate(ctx context.Context, prompt string) (*genai.GenerateContentResponse, error) {
	start := time.Now()

	resp, err := c.client.Models.GenerateContent(
		ctx,
		c.model,
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)},
		&genai.GenerateContentConfig{
			Temperature: genai.Ptr(float32(c.temperature)),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("gemini generate content: %w", err)
	}

	c.log.Debug("gemini response received",
		slog.String("model", c.model),
		slog.Int("candidates", len(resp.Candidates)),
		slog.Duration("duration", time.Since(start)),
	)

	return resp, nil
}

// IsConfigured returns true if the client can make requests
func (c *Client) IsConfigured() bool {
	return c != nil && c.client != nil
}

// Model returns the model name requests are sent to
func (c *Client) Model() string {
	return c.model
}
