package filter

import (
	"fmt"
	"strings"

	"github.com/civiclens/tweetsift/pkg/tweetsift/corpus"
)

// DefaultMinWords is the smallest word count a post may have after
// deduplication.
const DefaultMinWords = 4

// Noise removes exact-duplicate bodies (keeping the first occurrence in
// original order) and posts shorter than minWords whitespace-delimited
// words. Applying it to its own output removes nothing.
func Noise(c *corpus.Corpus, minWords int) (*corpus.Corpus, StageResult, error) {
	if minWords <= 0 {
		minWords = DefaultMinWords
	}
	res := StageResult{
		Stage:     "noise",
		Criterion: fmt.Sprintf("duplicate body or fewer than %d words", minWords),
		Input:     c.Len(),
	}

	seen := make(map[string]struct{}, c.Len())
	clean, _ := c.Split(func(p corpus.Post) bool {
		if _, dup := seen[p.Text]; dup {
			return false
		}
		seen[p.Text] = struct{}{}
		return len(strings.Fields(p.Text)) >= minWords
	})

	res.Output = clean.Len()
	res.Removed = res.Input - res.Output
	return clean, res, nil
}
