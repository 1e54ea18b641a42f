// Package filter implements the staged row-elimination pipeline:
// language → noise → bot. Every stage takes a corpus and produces a new,
// smaller corpus; removed subsets are persisted for forensic review and
// each execution is recorded in the audit ledger.
package filter

import (
	"context"
	"fmt"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"

	"github.com/civiclens/tweetsift/pkg/tweetsift/corpus"
	"github.com/civiclens/tweetsift/pkg/tweetsift/internalerr"
	"github.com/civiclens/tweetsift/pkg/tweetsift/langid"
	"github.com/civiclens/tweetsift/pkg/tweetsift/ledger"
)

// StageResult reports what one stage did: how many rows went in, came
// out, were removed under which criterion, and where the removed subset
// was persisted.
type StageResult struct {
	Stage        string
	Criterion    string
	Input        int
	Output       int
	Removed      int
	Skipped      int
	ArtifactPath string
}

// Options configures a pipeline run.
type Options struct {
	Identifier  langid.Identifier
	Ledger      ledger.Store
	Log         *logrus.Logger
	RunPrefix   string // artifact prefix; a fresh ULID per run when empty
	OutputDir   string
	MinWords    int
	BotQuantile float64
}

// DefaultOutputDir is where removed-subset artifacts land.
const DefaultOutputDir = "data/processed"

// Pipeline runs the three stages in order against one corpus.
type Pipeline struct {
	opts Options
}

// New creates a pipeline. The identifier is required; ledger and logger
// are optional.
func New(opts Options) (*Pipeline, error) {
	if opts.Identifier == nil {
		return nil, fmt.Errorf("%w: pipeline needs a language identifier", internalerr.ErrInvalidConfig)
	}
	if opts.OutputDir == "" {
		opts.OutputDir = DefaultOutputDir
	}
	if opts.MinWords <= 0 {
		opts.MinWords = DefaultMinWords
	}
	if opts.BotQuantile <= 0 || opts.BotQuantile >= 1 {
		opts.BotQuantile = DefaultBotQuantile
	}
	if opts.Log == nil {
		opts.Log = logrus.New()
	}
	return &Pipeline{opts: opts}, nil
}

// Run executes language → noise → bot and returns the cleaned corpus
// with the per-stage results. Stage outputs are new corpora; the input
// is never mutated.
func (p *Pipeline) Run(ctx context.Context, c *corpus.Corpus) (*corpus.Corpus, []StageResult, error) {
	if c == nil || c.Len() == 0 {
		return nil, nil, internalerr.ErrNoCorpus
	}

	runID := p.opts.RunPrefix
	if runID == "" {
		runID = ulid.Make().String()
	}
	log := p.opts.Log.WithField("run_id", runID)

	var results []StageResult
	record := func(res StageResult) error {
		results = append(results, res)
		log.WithFields(logrus.Fields{
			"stage":    res.Stage,
			"input":    res.Input,
			"output":   res.Output,
			"removed":  res.Removed,
			"skipped":  res.Skipped,
			"artifact": res.ArtifactPath,
		}).Info(res.Criterion)
		if p.opts.Ledger == nil {
			return nil
		}
		return p.opts.Ledger.Append(ctx, ledger.Entry{
			RunID:        runID,
			Stage:        res.Stage,
			Criterion:    res.Criterion,
			Input:        res.Input,
			Output:       res.Output,
			Removed:      res.Removed,
			Skipped:      res.Skipped,
			ArtifactPath: res.ArtifactPath,
		})
	}

	english, res, err := Language(c, p.opts.Identifier, LanguageOptions{
		SavePrefix: runID,
		OutputDir:  p.opts.OutputDir,
	})
	if err != nil {
		return nil, results, fmt.Errorf("language stage: %w", err)
	}
	if err := record(res); err != nil {
		return nil, results, fmt.Errorf("record language stage: %w", err)
	}

	clean, res, err := Noise(english, p.opts.MinWords)
	if err != nil {
		return nil, results, fmt.Errorf("noise stage: %w", err)
	}
	if err := record(res); err != nil {
		return nil, results, fmt.Errorf("record noise stage: %w", err)
	}

	humans, res, err := Bot(clean, BotOptions{
		Quantile:   p.opts.BotQuantile,
		SavePrefix: runID,
		OutputDir:  p.opts.OutputDir,
	})
	if err != nil {
		return nil, results, fmt.Errorf("bot stage: %w", err)
	}
	if err := record(res); err != nil {
		return nil, results, fmt.Errorf("record bot stage: %w", err)
	}

	return humans, results, nil
}
