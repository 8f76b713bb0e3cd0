package extract

import (
	"context"
	"fmt"
	"time"

	readability "github.com/go-shiori/go-readability"

	"hncast/config"
	"hncast/types"
)

// Readability extracts the article body locally with go-readability.
// It has no access to discussion comments, so summaries from this engine
// cover the article only.
type Readability struct {
	maxChars int
	timeout  time.Duration
}

func NewReadability(cfg *config.Config) *Readability {
	return &Readability{
		maxChars: maxChars(),
		timeout:  cfg.StageTimeout(config.ExtractTimeout),
	}
}

func (r *Readability) Name() string {
	return EngineReadability
}

func (r *Readability) Extract(ctx context.Context, story types.Story) (*types.ExtractedContent, error) {
	if story.URL == "" {
		return nil, fmt.Errorf("%w: story %s has no URL", ErrExtraction, story.ID)
	}

	article, err := readability.FromURL(story.URL, r.timeout)
	if err != nil {
		return nil, fmt.Errorf("%w: readability %s: %v", ErrExtraction, story.URL, err)
	}

	return &types.ExtractedContent{
		StoryID: story.ID,
		Body:    truncate(article.TextContent, r.maxChars),
	}, nil
}
