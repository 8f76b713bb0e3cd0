package summarize

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"hncast/config"
	"hncast/types"
)

// OpenAI summarizes through an OpenAI-compatible chat-completion
// endpoint. The base URL, model, and key all come from configuration so
// any compatible provider can back it.
type OpenAI struct {
	client      *openai.Client
	model       string
	maxTokens   int64
	temperature float64
	timeout     time.Duration
}

func NewOpenAI(cfg *config.Config) *OpenAI {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.OpenAIKey),
		// Single attempt per call; skipped stories are not retried.
		option.WithMaxRetries(0),
		option.WithHeader("HTTP-Referer", "https://news.ycombinator.com"),
		option.WithHeader("X-Title", "HN Podcast Assistant"),
	}
	if cfg.OpenAIBase != "" {
		opts = append(opts, option.WithBaseURL(cfg.OpenAIBase))
	}

	client := openai.NewClient(opts...)
	return &OpenAI{
		client:      &client,
		model:       cfg.OpenAIModel,
		maxTokens:   config.DefaultMaxTokens,
		temperature: config.Temperature,
		timeout:     cfg.StageTimeout(config.CompletionTimeout),
	}
}

func (c *OpenAI) Name() string {
	return ProviderOpenAI
}

func (c *OpenAI) Summarize(ctx context.Context, story types.Story, content *types.ExtractedContent) (*types.Summary, error) {
	// The call blocks until the full completion arrives or the stage
	// timeout elapses; a hung endpoint must not stall a worker forever.
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(buildUserPrompt(story, content)),
		},
		MaxTokens:   openai.Int(c.maxTokens),
		Temperature: openai.Float(c.temperature),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrService, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty completion", ErrService)
	}

	return parseBilingual(story.ID, resp.Choices[0].Message.Content)
}
