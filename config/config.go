package config

import (
	"os"
	"time"
)

// Config carries all external-service settings for one run. It is built
// once in main from the environment and passed by pointer into each
// component; nothing reads the environment after startup.
type Config struct {
	// JinaKey authenticates calls to the r.jina.ai extraction proxy.
	// When empty, the readability extraction engine is used instead.
	JinaKey string

	// OpenAIBase selects the completion endpoint (OpenAI-compatible).
	OpenAIBase string
	// OpenAIModel is the model identifier sent with each completion.
	OpenAIModel string
	// OpenAIKey authenticates completion requests.
	OpenAIKey string

	// CohereKey authenticates the alternate cohere summarizer.
	CohereKey string

	// SpeechKey authenticates Azure speech synthesis requests.
	SpeechKey string
	// SpeechRegion selects the Azure speech geographic endpoint.
	SpeechRegion string

	// Timeout, when set, overrides the per-stage call timeouts from
	// constants.go. Zero keeps the stage defaults. Set from the
	// -timeout flag, not the environment.
	Timeout time.Duration
}

// StageTimeout returns the effective timeout for one external call:
// the run-wide override when set, otherwise the stage default.
func (c *Config) StageTimeout(def time.Duration) time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return def
}

// Load reads the recognized environment variables. Missing values are
// left empty; components validate what they actually need.
func Load() *Config {
	return &Config{
		JinaKey:      os.Getenv("JINA_KEY"),
		OpenAIBase:   os.Getenv("OPENAI_BASE"),
		OpenAIModel:  GetEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIKey:    os.Getenv("OPENAI_API_KEY"),
		CohereKey:    os.Getenv("CO_API_KEY"),
		SpeechKey:    os.Getenv("AZURE_SPEECH_KEY"),
		SpeechRegion: os.Getenv("AZURE_SPEECH_REGION"),
	}
}

// GetEnvOrDefault returns the value of key, or def when unset or empty.
func GetEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
