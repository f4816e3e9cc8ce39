package operation

import (
	"fmt"
	"strings"

	"github.com/phrazzld/creatortune-gateway/internal/schema"
)

// promptWriter assembles instruction text section by section. Every prompt
// ends with finish, which restates the required top-level fields so the
// instruction and the response constraint never drift apart.
type promptWriter struct {
	b strings.Builder
}

func newPrompt(role string) *promptWriter {
	p := &promptWriter{}
	p.para("%s", role)
	return p
}

// para writes a paragraph followed by a blank line.
func (p *promptWriter) para(format string, args ...interface{}) *promptWriter {
	fmt.Fprintf(&p.b, format, args...)
	p.b.WriteString("\n\n")
	return p
}

// data writes a labelled, quoted input value.
func (p *promptWriter) data(label, value string) *promptWriter {
	fmt.Fprintf(&p.b, "%s: %q\n", label, value)
	return p
}

// block writes a multi-line input value between separators.
func (p *promptWriter) block(label, value string) *promptWriter {
	fmt.Fprintf(&p.b, "%s:\n---\n%s\n---\n\n", label, value)
	return p
}

// rule separates a run of data lines from what follows.
func (p *promptWriter) rule() *promptWriter {
	p.b.WriteString("---\n\n")
	return p
}

// steps writes a numbered list.
func (p *promptWriter) steps(title string, items ...string) *promptWriter {
	if title != "" {
		p.b.WriteString(title)
		p.b.WriteString("\n")
	}
	for i, item := range items {
		fmt.Fprintf(&p.b, "%d. %s\n", i+1, item)
	}
	p.b.WriteString("\n")
	return p
}

func (p *promptWriter) finish(s *schema.Schema) string {
	fmt.Fprintf(&p.b,
		"Respond ONLY with a single JSON object that follows the provided schema. It must contain every one of these fields: %s.",
		strings.Join(s.Required, ", "))
	return strings.TrimSpace(p.b.String())
}
