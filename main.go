package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"hncast/config"
	"hncast/extract"
	"hncast/output"
	"hncast/pipeline"
	"hncast/speech"
	"hncast/summarize"
	"hncast/types"
)

func main() {
	var (
		topN     = flag.Int("n", config.DefaultStoryCount, "number of top stories to process")
		outDir   = flag.String("out", "", "output directory (default ./out/<date>)")
		source   = flag.String("source", DefaultSource, "story listing source: frontpage or rss")
		engine   = flag.String("engine", extract.EngineAuto, "extraction engine: jina, readability, or auto")
		provider = flag.String("provider", summarize.ProviderOpenAI, "summary provider: openai or cohere")
		workers  = flag.Int("workers", config.DefaultWorkers, "stories processed concurrently")
		episode  = flag.Bool("episode", false, "also stitch primary-language clips into one episode file")
		timeout  = flag.Duration("timeout", 0, "per-call timeout for extraction, summarization, and synthesis (0 = stage defaults)")
	)
	flag.Parse()

	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()
	cfg := config.Load()
	cfg.Timeout = *timeout

	if cfg.SpeechKey == "" || cfg.SpeechRegion == "" {
		log.Fatal("AZURE_SPEECH_KEY and AZURE_SPEECH_REGION must be set")
	}

	lister, err := NewLister(*source)
	if err != nil {
		log.Fatalf("listing source: %v", err)
	}

	extractor, err := extract.NewEngine(*engine, cfg)
	if err != nil {
		log.Fatalf("extraction engine: %v", err)
	}

	summarizer, err := summarize.NewProvider(*provider, cfg)
	if err != nil {
		log.Fatalf("summary provider: %v", err)
	}

	dir := *outDir
	if dir == "" {
		dir = filepath.Join("out", time.Now().Format("20060102"))
	}
	writer, err := output.NewWriter(dir)
	if err != nil {
		log.Fatalf("output directory: %v", err)
	}

	p := &pipeline.Pipeline{
		Lister:     lister,
		Extractor:  extractor,
		Summarizer: summarizer,
		Synth:      speech.NewAzure(cfg),
		Writer:     writer,
		Workers:    *workers,
	}

	log.Printf("=== hncast run: top %d stories, %s/%s/%s, output %s ===",
		*topN, lister.Name(), extractor.Name(), summarizer.Name(), dir)

	report, err := p.Run(context.Background(), *topN)
	if err != nil {
		log.Printf("run failed: %v", err)
		os.Exit(1)
	}

	if *episode {
		stitchEpisode(writer, report)
	}

	fmt.Println(report.Summary())
}

// stitchEpisode concatenates every primary-language clip into a single
// episode file. Failures here don't change the exit code.
func stitchEpisode(writer *output.Writer, report *pipeline.Report) {
	var primary []string
	for _, res := range report.Results() {
		for _, path := range res.AudioPaths {
			if path == writer.AudioPath(res.Story.ID, types.LangPrimary) {
				primary = append(primary, path)
			}
		}
	}
	if len(primary) == 0 {
		log.Println("no clips to stitch into an episode")
		return
	}

	path, err := writer.StitchEpisode(primary)
	if err != nil {
		log.Printf("episode stitching failed: %v", err)
		return
	}
	log.Printf("✓ episode written to %s", path)
}
