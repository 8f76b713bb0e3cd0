package config

import "time"

// Story Selection Constants
const (
	// DefaultStoryCount is the number of front-page stories processed per run
	DefaultStoryCount = 10

	// MaxComments is the number of top comments kept per story
	MaxComments = 10

	// DefaultMaxTokens bounds the completion length; extracted text is
	// truncated to roughly four characters per token before the call
	DefaultMaxTokens = 1000
)

// HTTP Timeout Constants
const (
	// FetchTimeout applies to the front-page and RSS listing requests
	FetchTimeout = 30 * time.Second

	// ExtractTimeout applies to each content-extraction request
	ExtractTimeout = 30 * time.Second

	// CompletionTimeout applies to one summarization call
	CompletionTimeout = 120 * time.Second

	// SynthesisTimeout applies to one text-to-speech call
	SynthesisTimeout = 60 * time.Second
)

// Pipeline Constants
const (
	// DefaultWorkers limits the number of stories processed simultaneously
	DefaultWorkers = 1

	// Temperature is the sampling temperature for summarization
	Temperature = 0.7
)

// Output Constants
const (
	// OutputDirPerm is the mode for created output directories
	OutputDirPerm = 0755

	// OutputFilePerm is the mode for written metadata and audio files
	OutputFilePerm = 0644
)
