// Package ai wraps the two external model endpoints the portal calls:
// a chat-completion API for briefings and audits, and a multimodal
// vision API for screenshot extraction.
package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// ChatClient produces one completion for a system+user message pair.
type ChatClient interface {
	Complete(ctx context.Context, req ChatRequest) (string, error)
}

// ChatRequest carries one two-message conversation.
type ChatRequest struct {
	APIKey      string
	System      string
	User        string
	Temperature float64
}

// PerplexityClient talks to a Perplexity-style chat-completion endpoint.
type PerplexityClient struct {
	rc    *resty.Client
	model string
}

// NewPerplexityClient creates a chat client. baseURL is configurable so
// tests can point at a local stub.
func NewPerplexityClient(baseURL, model string) *PerplexityClient {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(120 * time.Second)

	return &PerplexityClient{rc: rc, model: model}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete issues one POST /chat/completions call and returns the
// completion text. Non-2xx statuses are returned as errors; there is
// no retry or backoff.
func (c *PerplexityClient) Complete(ctx context.Context, req ChatRequest) (string, error) {
	body := chatCompletionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.User},
		},
		Temperature: req.Temperature,
	}

	var out chatCompletionResponse
	resp, err := c.rc.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+req.APIKey).
		SetBody(body).
		SetResult(&out).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("chat completion returned status %d", resp.StatusCode())
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return out.Choices[0].Message.Content, nil
}
