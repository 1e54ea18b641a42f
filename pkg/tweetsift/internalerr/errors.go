package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNoCorpus         = errors.New("no corpus loaded")
	ErrNoEdges          = errors.New("no edges extracted from sample")
	ErrEmptyGraph       = errors.New("graph has no components")
	ErrNoActiveUsers    = errors.New("no active users in sample")
	ErrModelUnavailable = errors.New("external model unavailable")
	ErrInvalidConfig    = errors.New("invalid configuration")
)
