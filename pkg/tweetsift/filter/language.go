package filter

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/civiclens/tweetsift/pkg/tweetsift/corpus"
	"github.com/civiclens/tweetsift/pkg/tweetsift/langid"
)

// LanguageOptions controls persistence of the rejected subset.
type LanguageOptions struct {
	SavePrefix string // no artifact is written when empty
	OutputDir  string
}

// Language retains only posts whose top-1 classification is English.
// Newlines are normalized to spaces before classification. A post the
// identifier fails on is retained and counted as skipped: a classifier
// fault must not silently eject data.
func Language(c *corpus.Corpus, ident langid.Identifier, opts LanguageOptions) (*corpus.Corpus, StageResult, error) {
	res := StageResult{
		Stage:     "language",
		Criterion: "top-1 language is not " + langid.English,
		Input:     c.Len(),
	}

	posts := c.Posts()
	keep := make([]bool, len(posts))
	for i, p := range posts {
		text := strings.ReplaceAll(p.Text, "\n", " ")
		preds, err := ident.Predict(text)
		if err != nil {
			keep[i] = true
			res.Skipped++
			continue
		}
		keep[i] = preds[0].Lang == langid.English
	}

	english, foreign := c.SplitIndexed(func(i int, _ corpus.Post) bool { return keep[i] })

	if opts.SavePrefix != "" && foreign.Len() > 0 {
		path := filepath.Join(opts.OutputDir, opts.SavePrefix+"_foreign_removed.csv")
		if err := foreign.Save(path); err != nil {
			return nil, res, fmt.Errorf("persist foreign subset: %w", err)
		}
		res.ArtifactPath = path
	}

	res.Output = english.Len()
	res.Removed = foreign.Len()
	return english, res, nil
}
