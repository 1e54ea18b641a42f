package langid

import (
	"errors"
	"strings"

	"github.com/pemistahl/lingua-go"
)

// Lingua identifies languages with the embedded lingua-go models. The
// detector is expensive to build, so it is normally wrapped in a Service.
type Lingua struct {
	detector lingua.LanguageDetector
}

// NewLingua builds a detector over all spoken languages.
func NewLingua() (*Lingua, error) {
	detector := lingua.NewLanguageDetectorBuilder().
		FromAllSpokenLanguages().
		Build()
	return &Lingua{detector: detector}, nil
}

// Predict returns confidence values for every candidate language, ranked
// best first. An empty or undetectable text is an error, not a default
// classification.
func (l *Lingua) Predict(text string) ([]Prediction, error) {
	values := l.detector.ComputeLanguageConfidenceValues(text)
	if len(values) == 0 {
		return nil, errors.New("langid: no prediction for text")
	}

	preds := make([]Prediction, 0, len(values))
	for _, v := range values {
		preds = append(preds, Prediction{
			Lang:       strings.ToLower(v.Language().IsoCode639_1().String()),
			Confidence: v.Value(),
		})
	}
	return preds, nil
}

// NewLinguaService returns a lazily built, process-wide Lingua service.
func NewLinguaService() *Service {
	return NewService(func() (Identifier, error) {
		return NewLingua()
	})
}
