package gemini

import "errors"

// Error definitions for the gemini package.
var (
	// ErrNilResponse is returned when the client produced no response object.
	ErrNilResponse = errors.New("nil response from Gemini")

	// ErrNoCandidates is returned when the response holds no candidates.
	ErrNoCandidates = errors.New("no content generated")

	// ErrEmptyContent is returned when the first candidate carries no text.
	ErrEmptyContent = errors.New("empty content in response")

	// ErrContentBlocked is returned when the prompt or the candidate was
	// stopped by safety filters.
	ErrContentBlocked = errors.New("content blocked by safety filters")
)
