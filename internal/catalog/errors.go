package catalog

import "errors"

var (
	// ErrUnknownQuestion is returned for a question id outside the catalog.
	// Seeing it at runtime means the ordering or answer map is corrupt.
	ErrUnknownQuestion = errors.New("unknown question")

	// ErrUnknownCategory is returned by ParseCategory for an unrecognized tag.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrInvalidAnswer is returned for a value outside the answer scale.
	ErrInvalidAnswer = errors.New("invalid answer")
)
