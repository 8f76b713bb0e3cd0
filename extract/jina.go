package extract

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"hncast/config"
	"hncast/types"
)

// DefaultProxyURL is the Jina reader proxy. Appending a target URL to it
// returns the page as cleaned markdown.
const DefaultProxyURL = "https://r.jina.ai"

// Jina extracts content through the r.jina.ai reader proxy. The article
// body comes from the story URL; comments come from the Hacker News
// discussion page with selectors that strip the site chrome.
type Jina struct {
	proxyURL    string
	apiKey      string
	client      *http.Client
	maxChars    int
	maxComments int
}

// NewJina creates a Jina extractor. The key is optional; without it the
// proxy applies its anonymous rate limits.
func NewJina(cfg *config.Config) *Jina {
	return &Jina{
		proxyURL:    DefaultProxyURL,
		apiKey:      cfg.JinaKey,
		client:      &http.Client{Timeout: cfg.StageTimeout(config.ExtractTimeout)},
		maxChars:    maxChars(),
		maxComments: config.MaxComments,
	}
}

func (j *Jina) Name() string {
	return EngineJina
}

// Extract fetches the article body and the discussion comments. A body
// failure fails the story; a comments failure is logged and tolerated.
func (j *Jina) Extract(ctx context.Context, story types.Story) (*types.ExtractedContent, error) {
	body, err := j.fetch(ctx, story.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: article %s: %v", ErrExtraction, story.URL, err)
	}

	var comments []string
	raw, err := j.fetch(ctx, story.HackerNewsURL, map[string]string{
		"X-Remove-Selector": ".navs",
		"X-Target-Selector": "#pagespace + tr",
	})
	if err != nil {
		log.Printf("comments fetch failed for story %s: %v", story.ID, err)
	} else {
		// Comments share the same char budget as the body so unbounded
		// discussion text never reaches the completion call.
		comments = splitComments(truncate(raw, j.maxChars), j.maxComments)
	}

	return &types.ExtractedContent{
		StoryID:  story.ID,
		Body:     truncate(body, j.maxChars),
		Comments: comments,
	}, nil
}

// fetch requests target through the proxy and returns the markdown text.
func (j *Jina) fetch(ctx context.Context, target string, extra map[string]string) (string, error) {
	proxied := fmt.Sprintf("%s/%s", j.proxyURL, target)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, proxied, nil)
	if err != nil {
		return "", err
	}

	req.Header.Set("X-Retain-Images", "none")
	if j.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+j.apiKey)
	}
	for k, v := range extra {
		req.Header.Set(k, v)
	}

	resp, err := j.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// splitComments breaks the proxied discussion page into individual
// comment texts, best-first, keeping at most max entries. Blocks shorter
// than a sentence are navigation leftovers and are dropped.
func splitComments(raw string, max int) []string {
	var comments []string
	for _, block := range strings.Split(raw, "\n\n") {
		block = strings.TrimSpace(block)
		if len(block) < 40 {
			continue
		}
		comments = append(comments, block)
		if max > 0 && len(comments) >= max {
			break
		}
	}
	return comments
}
