package feasibility

import (
	"strings"

	"github.com/civiclens/tweetsift/pkg/tweetsift/corpus"
	"github.com/civiclens/tweetsift/pkg/tweetsift/internalerr"
)

// RQ2 thresholds. Topic models need a minimum of lexical material per
// document and suffer badly under near-duplicate spam.
const (
	MinMeanWords   = 8.0
	MinUniqueRatio = 0.3
)

// SemanticReport summarizes text richness for topic modeling.
type SemanticReport struct {
	Posts               int
	MeanWords           float64
	UniqueRatio         float64
	TooShort            bool
	CriticalDuplication bool
}

// Semantic computes mean whitespace-delimited word count and the ratio
// of distinct bodies to total posts. The two checks fire independently.
func Semantic(c *corpus.Corpus) (*SemanticReport, error) {
	if c == nil || c.Len() == 0 {
		return nil, internalerr.ErrNoCorpus
	}

	totalWords := 0
	distinct := make(map[string]struct{}, c.Len())
	for _, p := range c.Posts() {
		totalWords += len(strings.Fields(p.Text))
		distinct[p.Text] = struct{}{}
	}

	report := &SemanticReport{
		Posts:       c.Len(),
		MeanWords:   float64(totalWords) / float64(c.Len()),
		UniqueRatio: float64(len(distinct)) / float64(c.Len()),
	}
	report.TooShort = report.MeanWords < MinMeanWords
	report.CriticalDuplication = report.UniqueRatio < MinUniqueRatio
	return report, nil
}
