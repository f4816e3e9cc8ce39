package gemini

import (
	"google.golang.org/genai"

	"github.com/phrazzld/creatortune-gateway/internal/schema"
)

var schemaTypes = map[schema.Type]genai.Type{
	schema.TypeObject:  genai.TypeObject,
	schema.TypeArray:   genai.TypeArray,
	schema.TypeString:  genai.TypeString,
	schema.TypeInteger: genai.TypeInteger,
	schema.TypeNumber:  genai.TypeNumber,
	schema.TypeBoolean: genai.TypeBoolean,
}

// ConvertSchema maps an output shape onto the response constraint Gemini
// accepts. Object members keep their declaration order through
// PropertyOrdering. A nil schema converts to nil.
func ConvertSchema(s *schema.Schema) *genai.Schema {
	if s == nil {
		return nil
	}

	out := &genai.Schema{
		Type:        schemaTypes[s.Type],
		Description: s.Description,
	}
	if len(s.Enum) > 0 {
		out.Enum = append([]string(nil), s.Enum...)
	}
	if s.Minimum != nil {
		out.Minimum = genai.Ptr(*s.Minimum)
	}
	if s.Maximum != nil {
		out.Maximum = genai.Ptr(*s.Maximum)
	}

	switch s.Type {
	case schema.TypeArray:
		out.Items = ConvertSchema(s.Items)
		if s.MinItems != nil {
			out.MinItems = genai.Ptr(*s.MinItems)
		}
	case schema.TypeObject:
		fields := s.Fields()
		out.Properties = make(map[string]*genai.Schema, len(fields))
		out.PropertyOrdering = fields
		for _, name := range fields {
			out.Properties[name] = ConvertSchema(s.Properties[name])
		}
		if len(s.Required) > 0 {
			out.Required = append([]string(nil), s.Required...)
		}
	}
	return out
}
