package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGeminiClient_Extract(t *testing.T) {
	var gotKey string
	var gotBody geminiRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1beta/models/gemini-2.0-flash-exp:generateContent" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotKey = r.URL.Query().Get("key")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"[]"}]}}]}`))
	}))
	defer srv.Close()

	c := NewGeminiClient(srv.URL, "gemini-2.0-flash-exp")
	text, err := c.Extract(context.Background(), VisionRequest{
		APIKey: "AIza-test",
		Prompt: "extract positions",
		Images: []InlineImage{
			{Data: "aGVsbG8=", MIMEType: "image/jpeg"},
			{Data: "d29ybGQ=", MIMEType: "image/png"},
		},
	})
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if text != "[]" {
		t.Errorf("expected [], got %s", text)
	}
	if gotKey != "AIza-test" {
		t.Errorf("expected key query param, got %s", gotKey)
	}
	if len(gotBody.Contents) != 1 {
		t.Fatalf("expected one content, got %d", len(gotBody.Contents))
	}

	parts := gotBody.Contents[0].Parts
	if len(parts) != 3 {
		t.Fatalf("expected prompt + 2 image parts, got %d", len(parts))
	}
	if parts[0].Text != "extract positions" {
		t.Errorf("expected prompt as first part, got %q", parts[0].Text)
	}
	if parts[1].InlineData == nil || parts[1].InlineData.MimeType != "image/jpeg" {
		t.Errorf("unexpected first image part: %+v", parts[1])
	}
	if parts[2].InlineData == nil || parts[2].InlineData.Data != "d29ybGQ=" {
		t.Errorf("unexpected second image part: %+v", parts[2])
	}
}

func TestGeminiClient_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewGeminiClient(srv.URL, "gemini-2.0-flash-exp")
	_, err := c.Extract(context.Background(), VisionRequest{APIKey: "k"})
	if err == nil {
		t.Fatal("expected error for 404 response")
	}
}

func TestGeminiClient_NoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	c := NewGeminiClient(srv.URL, "gemini-2.0-flash-exp")
	_, err := c.Extract(context.Background(), VisionRequest{APIKey: "k"})
	if err == nil {
		t.Fatal("expected error for empty candidates")
	}
}
