// Package extract turns a story URL into cleaned article text plus top
// comments, through either the Jina reader proxy or local readability
// parsing.
package extract

import (
	"context"
	"errors"
	"fmt"

	"hncast/config"
	"hncast/types"
)

// ErrExtraction indicates the content service failed or the URL was
// unreachable. The story is skipped for all downstream stages.
var ErrExtraction = errors.New("content extraction failed")

// Extractor produces the cleaned content for one story.
type Extractor interface {
	Extract(ctx context.Context, story types.Story) (*types.ExtractedContent, error)
	Name() string
}

// Engine names accepted by NewEngine.
const (
	EngineJina        = "jina"
	EngineReadability = "readability"
	EngineAuto        = "auto"
)

// NewEngine selects an extraction engine by name. "auto" picks Jina when
// a key is configured and falls back to readability otherwise.
func NewEngine(name string, cfg *config.Config) (Extractor, error) {
	if name == EngineAuto {
		if cfg.JinaKey != "" {
			name = EngineJina
		} else {
			name = EngineReadability
		}
	}

	switch name {
	case EngineJina:
		return NewJina(cfg), nil
	case EngineReadability:
		return NewReadability(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported extraction engine: %s", name)
	}
}

// truncate bounds text to max runes, keeping whole UTF-8 characters.
func truncate(text string, max int) string {
	if max <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}

// maxChars is the extraction budget: roughly four characters per token
// of the completion limit, matching how the body is consumed downstream.
func maxChars() int {
	return config.DefaultMaxTokens * 4
}
