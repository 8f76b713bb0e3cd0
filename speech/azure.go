package speech

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"

	"hncast/config"
	"hncast/types"
)

const (
	// outputFormat selects 16-bit PCM WAV at 16 kHz.
	outputFormat = "riff-16khz-16bit-mono-pcm"

	azureEndpointFormat = "https://%s.tts.speech.microsoft.com/cognitiveservices/v1"
)

// Azure synthesizes speech through the Cognitive Services REST API.
type Azure struct {
	endpoint string
	key      string
	client   *http.Client
}

// NewAzure creates a synthesizer for the configured region, e.g. "eastus".
func NewAzure(cfg *config.Config) *Azure {
	return &Azure{
		endpoint: fmt.Sprintf(azureEndpointFormat, cfg.SpeechRegion),
		key:      cfg.SpeechKey,
		client:   &http.Client{Timeout: cfg.StageTimeout(config.SynthesisTimeout)},
	}
}

// Synthesize issues one synthesis request for the text in the given
// language, using that language's mapped voice.
func (a *Azure) Synthesize(ctx context.Context, storyID, text, lang string) (*types.AudioClip, error) {
	voice, ok := VoiceFor(lang)
	if !ok {
		return nil, fmt.Errorf("%w: unsupported language tag %q", ErrSynthesis, lang)
	}

	ssml := buildSSML(lang, voice, text)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, strings.NewReader(ssml))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSynthesis, err)
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", a.key)
	req.Header.Set("Content-Type", "application/ssml+xml")
	req.Header.Set("X-Microsoft-OutputFormat", outputFormat)
	req.Header.Set("User-Agent", "hncast")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSynthesis, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d for language %s", ErrSynthesis, resp.StatusCode, lang)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSynthesis, err)
	}

	return &types.AudioClip{
		StoryID: storyID,
		Lang:    lang,
		Format:  "wav",
		Data:    data,
	}, nil
}

// buildSSML wraps text in the minimal SSML document the endpoint expects.
func buildSSML(lang, voice, text string) string {
	var escaped bytes.Buffer
	_ = xml.EscapeText(&escaped, []byte(text)) // cannot fail on a bytes.Buffer
	return fmt.Sprintf(
		"<speak version='1.0' xml:lang='%s'><voice xml:lang='%s' name='%s'>%s</voice></speak>",
		lang, lang, voice, escaped.String(),
	)
}
