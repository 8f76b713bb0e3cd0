package speech

import (
	"context"
	"fmt"
	"sync"

	"hncast/types"
)

// Mock is an in-memory synthesizer for tests. It returns deterministic
// bytes per (story, language) and can be told to fail specific pairs.
type Mock struct {
	mu       sync.Mutex
	calls    []string
	failures map[string]bool
}

func NewMock() *Mock {
	return &Mock{failures: make(map[string]bool)}
}

// FailOn makes synthesis fail for the given story and language.
func (m *Mock) FailOn(storyID, lang string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[storyID+"/"+lang] = true
}

// Calls returns the story/lang pairs synthesized so far.
func (m *Mock) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

func (m *Mock) Synthesize(ctx context.Context, storyID, text, lang string) (*types.AudioClip, error) {
	if _, ok := VoiceFor(lang); !ok {
		return nil, fmt.Errorf("%w: unsupported language tag %q", ErrSynthesis, lang)
	}

	m.mu.Lock()
	key := storyID + "/" + lang
	m.calls = append(m.calls, key)
	fail := m.failures[key]
	m.mu.Unlock()

	if fail {
		return nil, fmt.Errorf("%w: mock failure for %s", ErrSynthesis, key)
	}

	return &types.AudioClip{
		StoryID: storyID,
		Lang:    lang,
		Format:  "wav",
		Data:    []byte("RIFF" + key),
	}, nil
}
