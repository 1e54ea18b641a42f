package filter

import (
	"fmt"
	"path/filepath"

	"github.com/civiclens/tweetsift/pkg/tweetsift/corpus"
	"github.com/civiclens/tweetsift/pkg/tweetsift/stats"
)

// DefaultBotQuantile marks the upper tail of the per-author post-count
// distribution treated as automated. A statistical heuristic, not a
// ground-truth label.
const DefaultBotQuantile = 0.995

// BotOptions controls the threshold and artifact persistence.
type BotOptions struct {
	Quantile   float64
	SavePrefix string // bot subset is persisted only when set
	OutputDir  string
}

// Bot splits the corpus into bot-authored and human-authored subsets.
// An author is a bot iff their post count strictly exceeds the Quantile
// quantile of the per-author count distribution, computed on this corpus
// slice. The union of the two subsets is the input and they are
// disjoint; only the human subset is returned.
func Bot(c *corpus.Corpus, opts BotOptions) (*corpus.Corpus, StageResult, error) {
	if opts.Quantile <= 0 || opts.Quantile >= 1 {
		opts.Quantile = DefaultBotQuantile
	}

	counts := stats.UserCounts(c)
	values := make([]float64, 0, len(counts))
	for _, n := range counts {
		values = append(values, float64(n))
	}
	threshold := stats.Quantile(values, opts.Quantile)

	res := StageResult{
		Stage:     "bot",
		Criterion: fmt.Sprintf("author post count > %.4g quantile (threshold %.1f)", opts.Quantile, threshold),
		Input:     c.Len(),
	}

	humans, bots := c.Split(func(p corpus.Post) bool {
		return float64(counts[p.UserID]) <= threshold
	})

	if opts.SavePrefix != "" && bots.Len() > 0 {
		path := filepath.Join(opts.OutputDir, opts.SavePrefix+"_bots_removed.csv")
		if err := bots.Save(path); err != nil {
			return nil, res, fmt.Errorf("persist bot subset: %w", err)
		}
		res.ArtifactPath = path
	}

	res.Output = humans.Len()
	res.Removed = bots.Len()
	return humans, res, nil
}
