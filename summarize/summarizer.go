// Package summarize produces a bilingual podcast-style summary of one
// story's extracted content through a chat-completion service.
package summarize

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hncast/config"
	"hncast/types"
)

// ErrService indicates the completion call itself failed.
var ErrService = errors.New("summary service failed")

// ErrParse indicates the completion succeeded but the response did not
// contain both language variants in the expected shape.
var ErrParse = errors.New("summary response malformed")

// systemPrompt is the fixed contract with the completion service: an
// English summary first, then a Chinese one, separated by a --- line.
const systemPrompt = `You are an editorial assistant for the Hacker News podcast, skilled in transforming articles and comments from Hacker News into engaging podcast content. Your audience primarily consists of software developers and tech enthusiasts.
【Objectives】
- Receive and read articles and comments from Hacker News.
- Provide a brief introduction to the main topic of the article, followed by a concise explanation of its key points.
- Analyze and summarize the diverse opinions in the comments section to showcase multiple perspectives.
- Communicate clearly and directly, as if having a simple and easy-to-understand conversation with a friend.
- Avoid using any symbols such as **, *, #, etc.
- Provide the content in both Chinese and English versions, with the English version first. Use --- to separate the content.`

// Summarizer turns extracted content into a bilingual summary. The call
// blocks until the full completion arrives or the context expires.
type Summarizer interface {
	Summarize(ctx context.Context, story types.Story, content *types.ExtractedContent) (*types.Summary, error)
	Name() string
}

// Provider names accepted by NewProvider.
const (
	ProviderOpenAI = "openai"
	ProviderCohere = "cohere"
)

// NewProvider selects a summarization provider by name.
func NewProvider(name string, cfg *config.Config) (Summarizer, error) {
	switch name {
	case ProviderOpenAI:
		return NewOpenAI(cfg), nil
	case ProviderCohere:
		return NewCohere(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported summary provider: %s", name)
	}
}

// buildUserPrompt assembles the completion input from the story title,
// article body, and comments, in tagged sections.
func buildUserPrompt(story types.Story, content *types.ExtractedContent) string {
	var parts []string
	if story.Title != "" {
		parts = append(parts, fmt.Sprintf("<title>\n%s\n</title>", story.Title))
	}
	if content.Body != "" {
		parts = append(parts, fmt.Sprintf("<article>\n%s\n</article>", content.Body))
	}
	if len(content.Comments) > 0 {
		parts = append(parts, fmt.Sprintf("<comments>\n%s\n</comments>", strings.Join(content.Comments, "\n\n")))
	}
	return strings.Join(parts, "\n\n---\n\n")
}

// parseBilingual splits a completion into its English and Chinese halves
// on the first standalone --- line. Both halves must be non-empty.
func parseBilingual(storyID, text string) (*types.Summary, error) {
	var parts []string
	current := []string{}
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "---" {
			parts = append(parts, strings.TrimSpace(strings.Join(current, "\n")))
			current = current[:0]
			continue
		}
		current = append(current, line)
	}
	parts = append(parts, strings.TrimSpace(strings.Join(current, "\n")))

	var nonEmpty []string
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}

	if len(nonEmpty) < 2 {
		return nil, fmt.Errorf("%w: expected two language sections, got %d", ErrParse, len(nonEmpty))
	}

	return &types.Summary{
		StoryID:   storyID,
		Primary:   nonEmpty[0],
		Secondary: strings.Join(nonEmpty[1:], "\n\n"),
	}, nil
}
