package summarize

import (
	"context"
	"fmt"
	"time"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"

	"hncast/config"
	"hncast/types"
)

// Cohere is the alternate summarization provider.
type Cohere struct {
	client      *cohereclient.Client
	maxTokens   int
	temperature float64
	timeout     time.Duration
}

func NewCohere(cfg *config.Config) *Cohere {
	return &Cohere{
		client:      cohereclient.NewClient(cohereclient.WithToken(cfg.CohereKey)),
		maxTokens:   config.DefaultMaxTokens,
		temperature: config.Temperature,
		timeout:     cfg.StageTimeout(config.CompletionTimeout),
	}
}

func (c *Cohere) Name() string {
	return ProviderCohere
}

func (c *Cohere) Summarize(ctx context.Context, story types.Story, content *types.ExtractedContent) (*types.Summary, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Chat(ctx, &cohere.ChatRequest{
		Preamble:    cohere.String(systemPrompt),
		Message:     buildUserPrompt(story, content),
		MaxTokens:   cohere.Int(c.maxTokens),
		Temperature: cohere.Float64(c.temperature),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrService, err)
	}

	return parseBilingual(story.ID, resp.Text)
}
