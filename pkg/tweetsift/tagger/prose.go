package tagger

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	prose "github.com/jdkato/prose/v2"

	"github.com/civiclens/tweetsift/pkg/tweetsift/internalerr"
)

// ProseTagger tokenizes and POS-tags with prose and lemmatizes with the
// golem English dictionary. Construction loads both models; a failure
// there is a fatal precondition for heavy normalization, reported
// immediately rather than per text.
type ProseTagger struct {
	lemmatizer *golem.Lemmatizer
}

// NewProseTagger loads the lemmatizer dictionary.
func NewProseTagger() (*ProseTagger, error) {
	lemmatizer, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("%w: load lemmatizer: %v", internalerr.ErrModelUnavailable, err)
	}
	return &ProseTagger{lemmatizer: lemmatizer}, nil
}

// Tag analyzes each text in order.
func (t *ProseTagger) Tag(texts []string) ([][]Token, error) {
	out := make([][]Token, len(texts))
	for i, text := range texts {
		if strings.TrimSpace(text) == "" {
			continue
		}
		doc, err := prose.NewDocument(text,
			prose.WithExtraction(false),
			prose.WithSegmentation(false))
		if err != nil {
			return nil, fmt.Errorf("tag text %d: %w", i, err)
		}

		tokens := doc.Tokens()
		analyzed := make([]Token, 0, len(tokens))
		for _, tok := range tokens {
			lemma := strings.ToLower(t.lemmatizer.Lemma(tok.Text))
			analyzed = append(analyzed, Token{
				Lemma:   lemma,
				POS:     mapPennTag(tok.Tag),
				IsStop:  isStopword(strings.ToLower(tok.Text)) || isStopword(lemma),
				IsAlpha: isAlpha(tok.Text),
			})
		}
		out[i] = analyzed
	}
	return out, nil
}

// mapPennTag collapses Penn Treebank tags onto the coarse classes the
// normalizer filters on.
func mapPennTag(tag string) POSTag {
	switch {
	case tag == "NNP" || tag == "NNPS":
		return ProperNoun
	case strings.HasPrefix(tag, "NN"):
		return Noun
	case strings.HasPrefix(tag, "VB"):
		return Verb
	case strings.HasPrefix(tag, "JJ"):
		return Adjective
	default:
		return Other
	}
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
