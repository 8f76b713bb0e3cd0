// Package speech renders summary text to narrated audio via the Azure
// Cognitive Services text-to-speech REST endpoint.
package speech

import (
	"context"
	"errors"

	"hncast/types"
)

// ErrSynthesis indicates the speech service failed or the language tag
// has no voice mapping. Only the failing language's clip is dropped.
var ErrSynthesis = errors.New("speech synthesis failed")

// Synthesizer converts text in one language to a raw audio clip.
type Synthesizer interface {
	Synthesize(ctx context.Context, storyID, text, lang string) (*types.AudioClip, error)
}

// voices is the static language tag to Azure neural voice mapping.
var voices = map[string]string{
	types.LangPrimary:   "en-US-JennyNeural",
	types.LangSecondary: "zh-CN-XiaoxiaoNeural",
}

// VoiceFor returns the voice identifier for a language tag.
func VoiceFor(lang string) (string, bool) {
	v, ok := voices[lang]
	return v, ok
}

// SupportedLanguages returns the language tags with a voice mapping.
func SupportedLanguages() []string {
	langs := make([]string, 0, len(voices))
	for _, l := range types.Languages() {
		if _, ok := voices[l]; ok {
			langs = append(langs, l)
		}
	}
	return langs
}
