package types

import "time"

// Language tags used across the pipeline. Every story is summarized in
// both languages and narrated once per language.
const (
	LangPrimary   = "en-US"
	LangSecondary = "zh-CN"
)

// Languages returns the synthesis targets in persistence order.
func Languages() []string {
	return []string{LangPrimary, LangSecondary}
}

// Story is a single Hacker News front-page item.
type Story struct {
	ID            string `json:"id"`
	Rank          int    `json:"rank"`
	Title         string `json:"title"`
	URL           string `json:"url"`
	HackerNewsURL string `json:"hacker_news_url"`
	Points        int    `json:"points,omitempty"`
	CommentCount  int    `json:"comment_count,omitempty"`
}

// ExtractedContent is the cleaned article body plus top comments for one
// story. Comments are ordered best-first and bounded by the extractor.
type ExtractedContent struct {
	StoryID  string
	Body     string
	Comments []string
}

// Summary is the bilingual condensed text produced for one story.
type Summary struct {
	StoryID   string
	Primary   string // English
	Secondary string // Chinese
}

// AudioClip is raw synthesized narration for one language of one story.
// Data is not retained after the clip has been written to disk.
type AudioClip struct {
	StoryID string
	Lang    string
	Format  string // e.g. "wav"
	Data    []byte
}

// MetadataRecord is the on-disk JSON document combining a story with its
// summaries. Written once per story, never mutated.
type MetadataRecord struct {
	ID               string    `json:"id"`
	Rank             int       `json:"rank"`
	Title            string    `json:"title"`
	URL              string    `json:"url"`
	HackerNewsURL    string    `json:"hacker_news_url"`
	Points           int       `json:"points,omitempty"`
	CommentCount     int       `json:"comment_count,omitempty"`
	SummaryPrimary   string    `json:"summary_primary"`
	SummarySecondary string    `json:"summary_secondary"`
	GeneratedAt      time.Time `json:"generated_at"`
}

// NewMetadataRecord combines a story and its summary into the persisted form.
func NewMetadataRecord(story Story, summary *Summary) *MetadataRecord {
	return &MetadataRecord{
		ID:               story.ID,
		Rank:             story.Rank,
		Title:            story.Title,
		URL:              story.URL,
		HackerNewsURL:    story.HackerNewsURL,
		Points:           story.Points,
		CommentCount:     story.CommentCount,
		SummaryPrimary:   summary.Primary,
		SummarySecondary: summary.Secondary,
		GeneratedAt:      time.Now().UTC(),
	}
}
