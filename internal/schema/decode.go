package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Decode errors. Every failure returned by Decode wraps one of these.
var (
	// ErrEmptyResponse is returned when the model produced no text at all.
	ErrEmptyResponse = errors.New("response is empty")

	// ErrMalformedJSON is returned when the text is not a JSON document.
	ErrMalformedJSON = errors.New("response is not valid JSON")

	// ErrSchemaMismatch is returned when the JSON does not satisfy the schema.
	ErrSchemaMismatch = errors.New("response does not match schema")
)

// Decode turns raw model output into out, which must be a pointer to the
// operation's result type. The text is trimmed, unwrapped from a Markdown
// code fence if the model added one, parsed, and validated against s
// before it is unmarshalled.
func Decode(raw string, s *Schema, out interface{}) error {
	text := Clean(raw)
	if text == "" {
		return &ValidationError{Err: ErrEmptyResponse}
	}

	var probe interface{}
	if err := json.Unmarshal([]byte(text), &probe); err != nil {
		return &ValidationError{
			Err:        ErrMalformedJSON,
			Violations: []Violation{{Field: "(root)", Description: err.Error()}},
		}
	}

	if err := s.Validate([]byte(text)); err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(text), out); err != nil {
		return &ValidationError{
			Err:        ErrSchemaMismatch,
			Violations: []Violation{{Field: "(root)", Description: fmt.Sprintf("decode into %T: %v", out, err)}},
		}
	}
	return nil
}

// Clean trims whitespace and strips a surrounding ``` or ```json fence.
func Clean(raw string) string {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, "```") || !strings.HasSuffix(text, "```") || len(text) < 6 {
		return text
	}
	body := strings.TrimSuffix(strings.TrimPrefix(text, "```"), "```")
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		lang := strings.TrimSpace(body[:nl])
		if lang == "" || strings.EqualFold(lang, "json") {
			body = body[nl+1:]
		}
	}
	return strings.TrimSpace(body)
}
