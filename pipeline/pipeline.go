// Package pipeline runs the single-pass batch: list stories, then for
// each story extract, summarize, synthesize, and persist. Per-story
// failures skip the story; only a listing failure aborts the run.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"sync"

	"hncast/extract"
	"hncast/hackernews"
	"hncast/output"
	"hncast/speech"
	"hncast/summarize"
	"hncast/types"
)

// Pipeline wires the five stages together. Stories are independent; up
// to Workers of them run concurrently, and the only shared state is the
// report, which is guarded internally.
type Pipeline struct {
	Lister     hackernews.Lister
	Extractor  extract.Extractor
	Summarizer summarize.Summarizer
	Synth      speech.Synthesizer
	Writer     *output.Writer

	// Workers bounds concurrent stories. Values < 1 mean sequential.
	Workers int
}

// Run executes one pass for up to limit stories.
func (p *Pipeline) Run(ctx context.Context, limit int) (*Report, error) {
	stories, err := p.Lister.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing via %s: %w", p.Lister.Name(), err)
	}
	log.Printf("Fetched %d stories via %s", len(stories), p.Lister.Name())

	report := NewReport(len(stories))

	workers := p.Workers
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for i, story := range stories {
		wg.Add(1)
		go func(idx int, st types.Story) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			log.Printf("[%d/%d] Processing story %s: %s", idx+1, len(stories), st.ID, st.Title)
			report.Add(p.processStory(ctx, st))
		}(i, story)
	}

	wg.Wait()
	return report, nil
}

// processStory runs one story through the linear stage sequence.
// Extraction and summarization failures drop the story entirely;
// synthesis failures drop only the failing language's clip.
func (p *Pipeline) processStory(ctx context.Context, story types.Story) StoryResult {
	content, err := p.Extractor.Extract(ctx, story)
	if err != nil {
		log.Printf("story %s skipped at extract: %v", story.ID, err)
		return StoryResult{Story: story, FailedStage: StageExtract, Err: err}
	}

	summary, err := p.Summarizer.Summarize(ctx, story, content)
	if err != nil {
		log.Printf("story %s skipped at summarize: %v", story.ID, err)
		return StoryResult{Story: story, FailedStage: StageSummarize, Err: err}
	}

	// Synthesize each language independently before any file is written,
	// so an extraction-style skip never leaves partial output behind.
	texts := map[string]string{
		types.LangPrimary:   summary.Primary,
		types.LangSecondary: summary.Secondary,
	}
	var clips []*types.AudioClip
	for _, lang := range types.Languages() {
		clip, err := p.Synth.Synthesize(ctx, story.ID, texts[lang], lang)
		if err != nil {
			log.Printf("story %s: synthesis failed for %s: %v", story.ID, lang, err)
			continue
		}
		clips = append(clips, clip)
	}

	if _, err := p.Writer.WriteMetadata(types.NewMetadataRecord(story, summary)); err != nil {
		log.Printf("story %s skipped at write: %v", story.ID, err)
		return StoryResult{Story: story, FailedStage: StageWrite, Err: err}
	}

	result := StoryResult{Story: story}
	for _, clip := range clips {
		path, err := p.Writer.WriteAudio(clip)
		if err != nil {
			log.Printf("story %s: audio write failed for %s: %v", story.ID, clip.Lang, err)
			continue
		}
		result.AudioPaths = append(result.AudioPaths, path)
	}

	log.Printf("✓ story %s done (%d/%d clips)", story.ID, len(result.AudioPaths), len(types.Languages()))
	return result
}
