package testutils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phrazzld/creatortune-gateway/internal/schema"
)

// SampleDocument builds the smallest value that satisfies s. Numbers are
// clamped into their bounds and arrays hold MinItems elements. Enumerations
// take their last allowed value so tests can tell them from defaults.
func SampleDocument(s *schema.Schema) interface{} {
	switch s.Type {
	case schema.TypeObject:
		out := make(map[string]interface{}, len(s.Properties))
		for _, name := range s.Fields() {
			out[name] = SampleDocument(s.Properties[name])
		}
		return out
	case schema.TypeArray:
		n := 1
		if s.MinItems != nil && *s.MinItems > 1 {
			n = int(*s.MinItems)
		}
		items := make([]interface{}, n)
		for i := range items {
			items[i] = SampleDocument(s.Items)
		}
		return items
	case schema.TypeInteger:
		return int(s.Clamp(7))
	case schema.TypeNumber:
		return s.Clamp(7.5)
	case schema.TypeBoolean:
		return true
	default:
		if len(s.Enum) > 0 {
			return s.Enum[len(s.Enum)-1]
		}
		return "text"
	}
}

// SampleJSON renders SampleDocument(s) as a response body.
func SampleJSON(t testing.TB, s *schema.Schema) string {
	t.Helper()
	raw, err := json.Marshal(SampleDocument(s))
	require.NoError(t, err)
	return string(raw)
}

// SampleJSONWith renders a sample for s after applying edit to the decoded
// document, for tests that need specific values.
func SampleJSONWith(t testing.TB, s *schema.Schema, edit func(doc map[string]interface{})) string {
	t.Helper()
	doc, ok := SampleDocument(s).(map[string]interface{})
	require.True(t, ok, "schema root must be an object")
	edit(doc)
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	return string(raw)
}
