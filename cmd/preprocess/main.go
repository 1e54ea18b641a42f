package main

import (
	"context"
	"encoding/csv"
	"flag"
	"os"
	"path/filepath"

	"github.com/civiclens/tweetsift/internal/logging"
	"github.com/civiclens/tweetsift/internal/report"
	"github.com/civiclens/tweetsift/pkg/tweetsift/config"
	"github.com/civiclens/tweetsift/pkg/tweetsift/corpus"
	"github.com/civiclens/tweetsift/pkg/tweetsift/filter"
	"github.com/civiclens/tweetsift/pkg/tweetsift/langid"
	"github.com/civiclens/tweetsift/pkg/tweetsift/ledger"
	ledgersqlite "github.com/civiclens/tweetsift/pkg/tweetsift/ledger/sqlite"
	"github.com/civiclens/tweetsift/pkg/tweetsift/normalize"
	"github.com/civiclens/tweetsift/pkg/tweetsift/tagger"
)

func main() {
	var (
		input      = flag.String("input", "", "Path to the tweet CSV (required)")
		limit      = flag.Int("limit", 0, "Load only N rows (0 = all)")
		configPath = flag.String("config", "", "Optional YAML config")
		runPrefix  = flag.String("run-prefix", "", "Artifact prefix (default: fresh ULID)")
		skipHeavy  = flag.Bool("skip-heavy", false, "Skip the topic-model normalizer")
		noColor    = flag.Bool("no-color", false, "Disable colored output")
	)
	flag.Parse()

	log := logging.NewWithTool("preprocess")
	ctx := context.Background()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
	}
	if *input != "" {
		cfg.Input = *input
	}
	if *limit > 0 {
		cfg.RowLimit = *limit
	}
	if cfg.Input == "" {
		log.Fatal("--input required")
	}

	c, err := corpus.Load(cfg.Input, cfg.RowLimit)
	if err != nil {
		log.Errorf("load corpus: %v", err)
		os.Exit(1)
	}
	log.Infof("loaded %d posts from %s", c.Len(), cfg.Input)

	var ident langid.Identifier
	switch cfg.Identifier {
	case "remote":
		ident = langid.NewRemoteService(cfg.RemoteURL)
	default:
		ident = langid.NewLinguaService()
	}

	var store ledger.Store
	if cfg.LedgerDB != "" {
		store, err = ledgersqlite.Open(ctx, cfg.LedgerDB)
		if err != nil {
			log.Fatalf("open ledger: %v", err)
		}
		defer store.Close()
	}

	pipeline, err := filter.New(filter.Options{
		Identifier:  ident,
		Ledger:      store,
		Log:         log,
		RunPrefix:   *runPrefix,
		OutputDir:   cfg.OutputDir,
		MinWords:    cfg.MinWords,
		BotQuantile: cfg.BotQuantile,
	})
	if err != nil {
		log.Fatalf("build pipeline: %v", err)
	}

	clean, results, err := pipeline.Run(ctx, c)
	if err != nil {
		log.Fatalf("pipeline: %v", err)
	}

	p := report.NewPrinter(os.Stdout, *noColor)
	for _, res := range results {
		p.Stage(res)
	}

	cleanPath := filepath.Join(cfg.OutputDir, "clean.csv")
	if err := clean.Save(cleanPath); err != nil {
		log.Fatalf("save clean corpus: %v", err)
	}
	log.Infof("wrote %d clean posts to %s", clean.Len(), cleanPath)

	ids := make([]string, clean.Len())
	texts := make([]string, clean.Len())
	for i, post := range clean.Posts() {
		ids[i] = post.PostID
		texts[i] = post.Text
	}

	light := normalize.Light(texts)
	lightPath := filepath.Join(cfg.OutputDir, "embedding_texts.csv")
	if err := writeTexts(lightPath, ids, light); err != nil {
		log.Fatalf("write embedding texts: %v", err)
	}
	log.Infof("wrote embedding-ready texts to %s", lightPath)

	if *skipHeavy {
		return
	}

	tg, err := tagger.NewProseTagger()
	if err != nil {
		log.Fatalf("load NLP pipeline: %v", err)
	}
	heavy, err := normalize.Heavy(tg, texts, cfg.HeavyBatchSize)
	if err != nil {
		log.Fatalf("heavy normalize: %v", err)
	}
	heavyPath := filepath.Join(cfg.OutputDir, "topic_texts.csv")
	if err := writeTexts(heavyPath, ids, heavy); err != nil {
		log.Fatalf("write topic texts: %v", err)
	}
	log.Infof("wrote topic-model-ready texts to %s", heavyPath)
}

// writeTexts persists (tweet_id, text) pairs in input order.
func writeTexts(path string, ids, texts []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"tweet_id", "text"}); err != nil {
		return err
	}
	for i := range ids {
		if err := w.Write([]string{ids[i], texts[i]}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
