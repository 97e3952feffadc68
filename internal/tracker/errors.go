package tracker

import "errors"

var (
	// ErrUnknownPath is returned for a (language, level) with no learning path.
	ErrUnknownPath = errors.New("unknown learning path")

	// ErrUnknownConcept is returned for a concept id not in the path.
	ErrUnknownConcept = errors.New("unknown concept")

	// ErrConceptLocked is returned when a concept's prerequisites are incomplete.
	ErrConceptLocked = errors.New("concept is locked")

	// ErrInvalidInput is returned for non-positive counters and empty ids.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotReady is returned by Graduate when requirements are unmet.
	ErrNotReady = errors.New("not ready for graduation")

	// ErrAlreadyGraduated is returned by Graduate when a certificate for the
	// path already exists.
	ErrAlreadyGraduated = errors.New("already graduated")
)
