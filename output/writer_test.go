package output

import (
	"os"
	"strings"
	"testing"

	"hncast/types"
)

func testRecord() *types.MetadataRecord {
	return types.NewMetadataRecord(
		types.Story{
			ID:            "101",
			Rank:          1,
			Title:         "Story A",
			URL:           "https://example.com/a",
			HackerNewsURL: "https://news.ycombinator.com/item?id=101",
			Points:        120,
			CommentCount:  55,
		},
		&types.Summary{
			StoryID:   "101",
			Primary:   "English summary.",
			Secondary: "中文摘要。",
		},
	)
}

func TestMetadataRoundTrip(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	if err != nil {
		t.Fatalf("NewWriter error: %v", err)
	}

	rec := testRecord()
	path, err := w.WriteMetadata(rec)
	if err != nil {
		t.Fatalf("WriteMetadata error: %v", err)
	}
	if path != w.MetadataPath("101") {
		t.Errorf("path = %q; want %q", path, w.MetadataPath("101"))
	}

	got, err := ReadMetadata(path)
	if err != nil {
		t.Fatalf("ReadMetadata error: %v", err)
	}

	if got.Title != rec.Title || got.URL != rec.URL {
		t.Errorf("round trip changed story fields: %+v", got)
	}
	if got.SummaryPrimary != rec.SummaryPrimary || got.SummarySecondary != rec.SummarySecondary {
		t.Errorf("round trip changed summaries: %+v", got)
	}
	if got.Points != 120 || got.CommentCount != 55 || got.Rank != 1 {
		t.Errorf("round trip changed counts: %+v", got)
	}
}

func TestWriteMetadataOverwrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	if err != nil {
		t.Fatalf("NewWriter error: %v", err)
	}

	rec := testRecord()
	if _, err := w.WriteMetadata(rec); err != nil {
		t.Fatalf("first write: %v", err)
	}

	rec.SummaryPrimary = "Updated English summary."
	if _, err := w.WriteMetadata(rec); err != nil {
		t.Fatalf("second write: %v", err)
	}

	got, err := ReadMetadata(w.MetadataPath("101"))
	if err != nil {
		t.Fatalf("ReadMetadata error: %v", err)
	}
	if got.SummaryPrimary != "Updated English summary." {
		t.Errorf("overwrite lost: %q", got.SummaryPrimary)
	}

	// Re-running leaves exactly one metadata file, no stale variants.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir error: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("got %d files; want 1", len(entries))
	}
}

func TestWriteAudio(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	if err != nil {
		t.Fatalf("NewWriter error: %v", err)
	}

	clip := &types.AudioClip{
		StoryID: "101",
		Lang:    types.LangPrimary,
		Format:  "wav",
		Data:    []byte("RIFFdata"),
	}

	path, err := w.WriteAudio(clip)
	if err != nil {
		t.Fatalf("WriteAudio error: %v", err)
	}
	if !strings.HasSuffix(path, "story_101_en-US.wav") {
		t.Errorf("path = %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if string(data) != "RIFFdata" {
		t.Errorf("data = %q", data)
	}
}

func TestDeterministicPaths(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	if err != nil {
		t.Fatalf("NewWriter error: %v", err)
	}

	if w.MetadataPath("101") != w.MetadataPath("101") {
		t.Error("metadata path not deterministic")
	}
	if w.AudioPath("101", types.LangPrimary) == w.AudioPath("101", types.LangSecondary) {
		t.Error("audio paths for different languages collide")
	}
	if w.AudioPath("101", types.LangPrimary) == w.AudioPath("102", types.LangPrimary) {
		t.Error("audio paths for different stories collide")
	}
}
