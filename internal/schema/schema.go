// Package schema describes the JSON shapes the remote model is asked to
// return. A Schema tree is walked at runtime for two purposes: it is converted
// into the model's response-shape constraint, and it validates the decoded
// response locally before any typed result is produced.
package schema

import "sort"

// Type is the JSON type of a schema node.
type Type string

// Supported node types.
const (
	TypeObject  Type = "object"
	TypeArray   Type = "array"
	TypeString  Type = "string"
	TypeInteger Type = "integer"
	TypeNumber  Type = "number"
	TypeBoolean Type = "boolean"
)

// Schema is one node of an output shape.
type Schema struct {
	Type        Type
	Description string

	// Enum restricts a string node to a fixed set of values.
	Enum []string

	// Minimum and Maximum bound a numeric node, inclusive.
	Minimum *float64
	Maximum *float64

	// Items describes the elements of an array node. MinItems is the
	// smallest accepted length.
	Items    *Schema
	MinItems *int64

	// Properties, Order and Required describe an object node. Order keeps
	// the declaration order so prompts and the remote constraint list
	// fields the way they were written.
	Properties map[string]*Schema
	Order      []string
	Required   []string
}

// Property is a named member of an object node.
type Property struct {
	Name     string
	Schema   *Schema
	Optional bool
}

// Field declares a required object member.
func Field(name string, s *Schema) Property {
	return Property{Name: name, Schema: s}
}

// OptionalField declares an object member the model may omit.
func OptionalField(name string, s *Schema) Property {
	return Property{Name: name, Schema: s, Optional: true}
}

// Object builds an object node from its members.
func Object(props ...Property) *Schema {
	s := &Schema{
		Type:       TypeObject,
		Properties: make(map[string]*Schema, len(props)),
		Order:      make([]string, 0, len(props)),
	}
	for _, p := range props {
		s.Properties[p.Name] = p.Schema
		s.Order = append(s.Order, p.Name)
		if !p.Optional {
			s.Required = append(s.Required, p.Name)
		}
	}
	return s
}

// Array builds an array node.
func Array(items *Schema) *Schema {
	return &Schema{Type: TypeArray, Items: items}
}

// StringArray is shorthand for an array of plain strings.
func StringArray(description string) *Schema {
	return &Schema{Type: TypeArray, Description: description, Items: &Schema{Type: TypeString}}
}

// String builds a string node.
func String(description string) *Schema {
	return &Schema{Type: TypeString, Description: description}
}

// Integer builds an integer node.
func Integer(description string) *Schema {
	return &Schema{Type: TypeInteger, Description: description}
}

// Number builds a number node.
func Number(description string) *Schema {
	return &Schema{Type: TypeNumber, Description: description}
}

// Boolean builds a boolean node.
func Boolean(description string) *Schema {
	return &Schema{Type: TypeBoolean, Description: description}
}

// Enum builds a string node restricted to values.
func Enum(description string, values ...string) *Schema {
	return &Schema{Type: TypeString, Description: description, Enum: values}
}

// Describe sets the node description and returns the node.
func (s *Schema) Describe(description string) *Schema {
	s.Description = description
	return s
}

// Between bounds a numeric node to [lo, hi] and returns the node.
func (s *Schema) Between(lo, hi float64) *Schema {
	s.Minimum = &lo
	s.Maximum = &hi
	return s
}

// AtLeast requires an array node to hold at least n items and returns the
// node.
func (s *Schema) AtLeast(n int64) *Schema {
	s.MinItems = &n
	return s
}

// Clamp moves v into the node's numeric bounds.
func (s *Schema) Clamp(v float64) float64 {
	if s.Minimum != nil && v < *s.Minimum {
		v = *s.Minimum
	}
	if s.Maximum != nil && v > *s.Maximum {
		v = *s.Maximum
	}
	return v
}

// Fields returns the object member names in declaration order. Members added
// to Properties without an Order entry are appended alphabetically.
func (s *Schema) Fields() []string {
	if s == nil || s.Type != TypeObject {
		return nil
	}
	out := make([]string, 0, len(s.Properties))
	seen := make(map[string]bool, len(s.Properties))
	for _, name := range s.Order {
		if _, ok := s.Properties[name]; ok && !seen[name] {
			out = append(out, name)
			seen[name] = true
		}
	}
	var rest []string
	for name := range s.Properties {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

// IsRequired reports whether name is a required member of an object node.
func (s *Schema) IsRequired(name string) bool {
	for _, r := range s.Required {
		if r == name {
			return true
		}
	}
	return false
}

// Walk visits every node depth first. Paths use dots for object members and
// "[]" for array items, e.g. "calendar[].format.type".
func (s *Schema) Walk(fn func(path string, node *Schema)) {
	s.walk("", fn)
}

func (s *Schema) walk(path string, fn func(string, *Schema)) {
	if s == nil {
		return
	}
	fn(path, s)
	switch s.Type {
	case TypeObject:
		for _, name := range s.Fields() {
			child := name
			if path != "" {
				child = path + "." + name
			}
			s.Properties[name].walk(child, fn)
		}
	case TypeArray:
		s.Items.walk(path+"[]", fn)
	}
}
