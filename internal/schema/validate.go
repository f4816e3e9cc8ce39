package schema

import (
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// Violation is one reason a document failed validation.
type Violation struct {
	Field       string
	Description string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Description)
}

// JSONSchema renders the tree as a JSON Schema document.
func (s *Schema) JSONSchema() map[string]interface{} {
	if s == nil {
		return map[string]interface{}{}
	}
	doc := map[string]interface{}{"type": string(s.Type)}
	if s.Description != "" {
		doc["description"] = s.Description
	}
	if len(s.Enum) > 0 {
		values := make([]interface{}, len(s.Enum))
		for i, v := range s.Enum {
			values[i] = v
		}
		doc["enum"] = values
	}
	if s.Minimum != nil {
		doc["minimum"] = *s.Minimum
	}
	if s.Maximum != nil {
		doc["maximum"] = *s.Maximum
	}
	switch s.Type {
	case TypeArray:
		if s.Items != nil {
			doc["items"] = s.Items.JSONSchema()
		}
		if s.MinItems != nil {
			doc["minItems"] = *s.MinItems
		}
	case TypeObject:
		props := make(map[string]interface{}, len(s.Properties))
		for name, child := range s.Properties {
			props[name] = child.JSONSchema()
		}
		doc["properties"] = props
		if len(s.Required) > 0 {
			required := make([]interface{}, len(s.Required))
			for i, r := range s.Required {
				required[i] = r
			}
			doc["required"] = required
		}
	}
	return doc
}

var compiled sync.Map // *Schema -> *gojsonschema.Schema

func (s *Schema) compile() (*gojsonschema.Schema, error) {
	if cached, ok := compiled.Load(s); ok {
		return cached.(*gojsonschema.Schema), nil
	}
	js, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(s.JSONSchema()))
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	actual, _ := compiled.LoadOrStore(s, js)
	return actual.(*gojsonschema.Schema), nil
}

// Validate checks a raw JSON document against the schema. It returns a
// *ValidationError listing every violation, or nil when the document
// conforms.
func (s *Schema) Validate(document []byte) error {
	js, err := s.compile()
	if err != nil {
		return err
	}
	result, err := js.Validate(gojsonschema.NewBytesLoader(document))
	if err != nil {
		return &ValidationError{Err: ErrMalformedJSON, Violations: []Violation{{Field: "(root)", Description: err.Error()}}}
	}
	if result.Valid() {
		return nil
	}
	violations := make([]Violation, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		violations = append(violations, Violation{Field: re.Field(), Description: re.Description()})
	}
	return &ValidationError{Err: ErrSchemaMismatch, Violations: violations}
}

// ValidationError reports why a response could not be accepted.
type ValidationError struct {
	Err        error
	Violations []Violation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return e.Err.Error()
	}
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return fmt.Sprintf("%v: %s", e.Err, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Fields lists the paths of the violating fields, without duplicates.
func (e *ValidationError) Fields() []string {
	seen := make(map[string]bool, len(e.Violations))
	out := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		if !seen[v.Field] {
			seen[v.Field] = true
			out = append(out, v.Field)
		}
	}
	return out
}
