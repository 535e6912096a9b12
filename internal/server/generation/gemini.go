package generation

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

// ErrEmptyCompletion is returned when a model answers with no usable text.
var ErrEmptyCompletion = errors.New("model returned empty text")

// ErrCompletionTooLong is returned when a model answers with more text than
// any platform accepts.
var ErrCompletionTooLong = errors.New("model returned text over the length limit")

// TextModel produces text for a prompt using the named model.
type TextModel interface {
	GenerateText(ctx context.Context, model, prompt string) (string, error)
}

// GeminiOption tweaks the genai client configuration.
type GeminiOption func(*genai.ClientConfig)

// WithBaseURL points the client at a different Gemini API endpoint.
func WithBaseURL(url string) GeminiOption {
	return func(c *genai.ClientConfig) {
		c.HTTPOptions.BaseURL = url
	}
}

// WithHTTPClient sets the HTTP client used for outbound calls.
func WithHTTPClient(hc *http.Client) GeminiOption {
	return func(c *genai.ClientConfig) {
		c.HTTPClient = hc
	}
}

// GeminiClient is a TextModel backed by the Google Gemini API.
type GeminiClient struct {
	client *genai.Client
}

// NewGeminiClient creates the process-wide Gemini client. It is meant to be
// built once at startup and shared.
func NewGeminiClient(ctx context.Context, apiKey string, opts ...GeminiOption) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, errors.New("Gemini API key is required")
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	for _, o := range opts {
		o(cfg)
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GeminiClient{client: client}, nil
}

// GenerateText issues a single generateContent call against model.
func (c *GeminiClient) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}

	return resp.Text(), nil
}
