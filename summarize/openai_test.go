package summarize

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hncast/config"
	"hncast/types"
)

func testConfig() *config.Config {
	return &config.Config{
		OpenAIKey:   "test-key",
		OpenAIModel: "test-model",
	}
}

func completionResponse(content string) map[string]interface{} {
	return map[string]interface{}{
		"id":     "cmpl-1",
		"object": "chat.completion",
		"model":  "test-model",
		"choices": []map[string]interface{}{
			{
				"index":         0,
				"finish_reason": "stop",
				"message": map[string]interface{}{
					"role":    "assistant",
					"content": content,
				},
			},
		},
	}
}

func TestOpenAISummarize(t *testing.T) {
	var gotBody struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionResponse("English summary.\n---\n中文摘要。"))
	}))
	defer srv.Close()

	cfg := testConfig()
	cfg.OpenAIBase = srv.URL

	story := types.Story{ID: "101", Title: "Story A"}
	content := &types.ExtractedContent{StoryID: "101", Body: "Body."}

	summary, err := NewOpenAI(cfg).Summarize(context.Background(), story, content)
	if err != nil {
		t.Fatalf("Summarize error: %v", err)
	}

	if summary.Primary != "English summary." || summary.Secondary != "中文摘要。" {
		t.Errorf("unexpected summary: %+v", summary)
	}

	if gotBody.Model != "test-model" {
		t.Errorf("model = %q", gotBody.Model)
	}
	if len(gotBody.Messages) != 2 || gotBody.Messages[0].Role != "system" {
		t.Fatalf("unexpected messages: %+v", gotBody.Messages)
	}
}

func TestOpenAISummarizeServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"overloaded"}}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := testConfig()
	cfg.OpenAIBase = srv.URL

	_, err := NewOpenAI(cfg).Summarize(context.Background(), types.Story{ID: "101"}, &types.ExtractedContent{Body: "x"})
	if !errors.Is(err, ErrService) {
		t.Fatalf("err = %v; want ErrService", err)
	}
}

func TestOpenAISummarizeTimeout(t *testing.T) {
	// A stalling endpoint must not block the caller past the timeout.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	cfg := testConfig()
	cfg.OpenAIBase = srv.URL
	cfg.Timeout = 50 * time.Millisecond

	start := time.Now()
	_, err := NewOpenAI(cfg).Summarize(context.Background(), types.Story{ID: "101"}, &types.ExtractedContent{Body: "x"})
	if !errors.Is(err, ErrService) {
		t.Fatalf("err = %v; want ErrService", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("call did not respect the timeout, took %v", elapsed)
	}
}

func TestOpenAISummarizeParseError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionResponse("Only English, no separator."))
	}))
	defer srv.Close()

	cfg := testConfig()
	cfg.OpenAIBase = srv.URL

	_, err := NewOpenAI(cfg).Summarize(context.Background(), types.Story{ID: "101"}, &types.ExtractedContent{Body: "x"})
	if !errors.Is(err, ErrParse) {
		t.Fatalf("err = %v; want ErrParse", err)
	}
}
