// Package tagger wraps the external tokenizer/POS/lemmatizer pipeline
// the heavy normalizer depends on. The models are opaque collaborators;
// this package only maps their output onto the coarse token view the
// normalizer filters on.
package tagger

// POSTag is the coarse part-of-speech class used by the heavy normalizer.
type POSTag string

const (
	Noun       POSTag = "NOUN"
	Verb       POSTag = "VERB"
	Adjective  POSTag = "ADJ"
	ProperNoun POSTag = "PROPN"
	Other      POSTag = "OTHER"
)

// Token is one analyzed token of a text.
type Token struct {
	Lemma   string // lower-cased lemma
	POS     POSTag
	IsStop  bool
	IsAlpha bool
}

// Tagger analyzes a batch of texts. The result has one token slice per
// input text, in input order.
type Tagger interface {
	Tag(texts []string) ([][]Token, error)
}
