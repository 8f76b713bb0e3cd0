package pipeline

import (
	"fmt"
	"sort"
	"sync"

	"hncast/types"
)

// Stage names used in per-story failure reporting.
const (
	StageExtract   = "extract"
	StageSummarize = "summarize"
	StageWrite     = "write"
)

// StoryResult is the outcome of one story's pass through the pipeline.
// FailedStage is empty when metadata was written; AudioPaths then holds
// zero, one, or two clip files depending on synthesis outcomes.
type StoryResult struct {
	Story       types.Story
	FailedStage string
	Err         error
	AudioPaths  []string
}

// Skipped reports whether the story produced no output at all.
func (r StoryResult) Skipped() bool {
	return r.FailedStage != ""
}

// Partial reports whether metadata was written but at least one
// language's clip is missing.
func (r StoryResult) Partial() bool {
	return !r.Skipped() && len(r.AudioPaths) < len(types.Languages())
}

// Report aggregates story results across workers.
type Report struct {
	mu      sync.Mutex
	total   int
	results []StoryResult
}

func NewReport(total int) *Report {
	return &Report{total: total}
}

// Add records one story's result. Safe for concurrent use.
func (r *Report) Add(res StoryResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, res)
}

// Results returns all recorded results in rank order.
func (r *Report) Results() []StoryResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := append([]StoryResult(nil), r.results...)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Story.Rank < out[j].Story.Rank
	})
	return out
}

// Processed counts stories whose metadata was written.
func (r *Report) Processed() int {
	n := 0
	for _, res := range r.Results() {
		if !res.Skipped() {
			n++
		}
	}
	return n
}

// SkippedCount counts stories that produced no output.
func (r *Report) SkippedCount() int {
	n := 0
	for _, res := range r.Results() {
		if res.Skipped() {
			n++
		}
	}
	return n
}

// AudioPaths returns every written clip path in rank order, primary
// language first within each story.
func (r *Report) AudioPaths() []string {
	var paths []string
	for _, res := range r.Results() {
		paths = append(paths, res.AudioPaths...)
	}
	return paths
}

// Summary renders the final processed-versus-skipped line for the console.
func (r *Report) Summary() string {
	partial := 0
	for _, res := range r.Results() {
		if res.Partial() {
			partial++
		}
	}
	return fmt.Sprintf("%d/%d stories processed, %d skipped, %d with partial audio",
		r.Processed(), r.total, r.SkippedCount(), partial)
}
