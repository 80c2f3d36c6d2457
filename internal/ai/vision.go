package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// VisionClient sends one or more inline images plus an instruction
// prompt to a multimodal endpoint and returns the response text.
type VisionClient interface {
	Extract(ctx context.Context, req VisionRequest) (string, error)
}

// InlineImage is one base64-encoded image payload.
type InlineImage struct {
	Data     string // base64, no data-URI prefix
	MIMEType string
}

// VisionRequest batches all images of one analysis run into a single call.
type VisionRequest struct {
	APIKey string
	Prompt string
	Images []InlineImage
}

// GeminiClient talks to a Gemini-style generateContent endpoint.
// Unlike the chat endpoint, authentication is a key query parameter.
type GeminiClient struct {
	rc    *resty.Client
	model string
}

// NewGeminiClient creates a vision client for the given base URL and model.
func NewGeminiClient(baseURL, model string) *GeminiClient {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(120 * time.Second)

	return &GeminiClient{rc: rc, model: model}
}

type geminiInlineData struct {
	Data     string `json:"data"`
	MimeType string `json:"mimeType"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Extract issues one generateContent call with the prompt followed by
// every image as an inlineData part.
func (c *GeminiClient) Extract(ctx context.Context, req VisionRequest) (string, error) {
	parts := make([]geminiPart, 0, len(req.Images)+1)
	parts = append(parts, geminiPart{Text: req.Prompt})
	for _, img := range req.Images {
		parts = append(parts, geminiPart{
			InlineData: &geminiInlineData{Data: img.Data, MimeType: img.MIMEType},
		})
	}

	var out geminiResponse
	resp, err := c.rc.R().
		SetContext(ctx).
		SetQueryParam("key", req.APIKey).
		SetBody(geminiRequest{Contents: []geminiContent{{Parts: parts}}}).
		SetResult(&out).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", c.model))
	if err != nil {
		return "", fmt.Errorf("vision request failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("vision endpoint returned status %d", resp.StatusCode())
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("vision endpoint returned no candidates")
	}

	return out.Candidates[0].Content.Parts[0].Text, nil
}
