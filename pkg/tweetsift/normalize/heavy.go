// Package normalize holds the two task-specific text transforms applied
// after filtering: a heavy linguistic cleaning for topic modeling and a
// light surface cleaning for embedding models. Both are stateless and
// preserve input order and length.
package normalize

import (
	"fmt"
	"strings"

	"github.com/civiclens/tweetsift/pkg/tweetsift/internalerr"
	"github.com/civiclens/tweetsift/pkg/tweetsift/tagger"
)

// DefaultBatchSize bounds peak memory against the tagger. Batching is a
// throughput knob only; it never changes output content or order.
const DefaultBatchSize = 2000

// customStopwords are domain exclusions for topic modeling: campaign
// vocabulary that appears in nearly every tweet, platform artifacts, and
// generic nouns that dominate topics without distinguishing them.
var customStopwords = map[string]struct{}{
	"maga": {}, "potus": {}, "vp": {}, "campaign": {}, "candidate": {}, "poll": {},
	"vote": {}, "voting": {}, "election": {}, "2020": {},
	"amp": {}, "https": {}, "http": {}, "rt": {}, "com": {}, "org": {}, "www": {}, "html": {},
	"people": {}, "time": {}, "day": {}, "country": {}, "america": {}, "american": {}, "nation": {},
	"state": {}, "year": {}, "man": {}, "woman": {}, "world": {}, "thing": {}, "way": {}, "news": {},
}

// nameBlocklist rejects any lemma containing a candidate-name substring.
// Containment is intentionally crude and can over-reject unrelated words
// sharing the substring; kept as-is pending a decision on intent.
var nameBlocklist = []string{"trump", "biden", "harris", "pence"}

var keepPOS = map[tagger.POSTag]struct{}{
	tagger.Noun:       {},
	tagger.Verb:       {},
	tagger.Adjective:  {},
	tagger.ProperNoun: {},
}

// Heavy produces topic-model-ready texts: only content-bearing lemmas
// survive, joined lower-cased with single spaces. The tagger is a hard
// dependency; a nil tagger fails immediately with ErrModelUnavailable.
func Heavy(tg tagger.Tagger, texts []string, batchSize int) ([]string, error) {
	if tg == nil {
		return nil, fmt.Errorf("%w: heavy normalizer needs a tagger", internalerr.ErrModelUnavailable)
	}
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	out := make([]string, 0, len(texts))
	for start := 0; start < len(texts); start += batchSize {
		end := start + batchSize
		if end > len(texts) {
			end = len(texts)
		}

		analyzed, err := tg.Tag(texts[start:end])
		if err != nil {
			return nil, fmt.Errorf("heavy normalize batch at %d: %w", start, err)
		}
		for _, tokens := range analyzed {
			out = append(out, joinSurvivors(tokens))
		}
	}
	return out, nil
}

func joinSurvivors(tokens []tagger.Token) string {
	var kept []string
	for _, tok := range tokens {
		if containsBlockedName(tok.Lemma) {
			continue
		}
		if _, custom := customStopwords[tok.Lemma]; custom {
			continue
		}
		if _, ok := keepPOS[tok.POS]; !ok || tok.IsStop {
			continue
		}
		if !tok.IsAlpha || len(tok.Lemma) <= 2 {
			continue
		}
		kept = append(kept, tok.Lemma)
	}
	return strings.Join(kept, " ")
}

func containsBlockedName(lemma string) bool {
	for _, name := range nameBlocklist {
		if strings.Contains(lemma, name) {
			return true
		}
	}
	return false
}
