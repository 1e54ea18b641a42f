// Package langid provides the language-identification service used by
// the language filter. The classifier itself is an external model
// treated as opaque; this package only wraps it behind a small interface
// with explicit errors, so callers decide what a failed classification
// means instead of inheriting a silent "not English" default.
package langid

import (
	"fmt"
	"sync"

	"github.com/civiclens/tweetsift/pkg/tweetsift/internalerr"
)

// English is the label the language filter retains.
const English = "en"

// Prediction is one ranked (language, confidence) pair. Lang is a
// lowercase ISO 639-1 code.
type Prediction struct {
	Lang       string
	Confidence float64
}

// Identifier classifies one text and returns predictions ranked by
// confidence, best first.
type Identifier interface {
	Predict(text string) ([]Prediction, error)
}

// Service wraps an Identifier with lazy, memoized initialization. The
// underlying model is built at most once per process; a failed build is
// remembered and reported on every call. Stages receive the service by
// reference rather than touching package-level state.
type Service struct {
	build func() (Identifier, error)

	once  sync.Once
	ident Identifier
	err   error
}

// NewService creates a service that constructs its identifier on first
// use via build.
func NewService(build func() (Identifier, error)) *Service {
	return &Service{build: build}
}

// Predict initializes the identifier if needed and classifies text.
func (s *Service) Predict(text string) ([]Prediction, error) {
	s.once.Do(func() {
		s.ident, s.err = s.build()
	})
	if s.err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrModelUnavailable, s.err)
	}
	return s.ident.Predict(text)
}
