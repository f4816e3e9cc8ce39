package generation

import (
	"github.com/phrazzld/creatortune-gateway/internal/schema"
)

// Part is one ordered piece of request content: either text or an inline
// image, never both.
type Part struct {
	Text  string
	Image *Image
}

// TextPart wraps prompt text.
func TextPart(text string) Part {
	return Part{Text: text}
}

// ImagePart wraps an attachment.
func ImagePart(img Image) Part {
	return Part{Image: &img}
}

// IsImage reports whether the part carries an attachment.
func (p Part) IsImage() bool {
	return p.Image != nil
}

// Envelope is the complete request for one call. It is built per call and
// owned by that call only.
type Envelope struct {
	Parts             []Part
	Schema            *schema.Schema
	SystemInstruction string
}

// Prompt returns the concatenated text parts. It is used for logging and
// tests; the remote call always sees the individual parts in order.
func (e *Envelope) Prompt() string {
	var out string
	for _, p := range e.Parts {
		if p.IsImage() {
			continue
		}
		if out != "" {
			out += "\n"
		}
		out += p.Text
	}
	return out
}

// Images returns the attachments in request order.
func (e *Envelope) Images() []Image {
	var out []Image
	for _, p := range e.Parts {
		if p.IsImage() {
			out = append(out, *p.Image)
		}
	}
	return out
}

// Slot labels one side of a two-image comparison. The remote model only
// distinguishes attachments by their position, so slots decide the order.
type Slot int

const (
	SlotA Slot = iota
	SlotB
)

// Label returns the letter used in prompts and result field names.
func (s Slot) Label() string {
	if s == SlotB {
		return "B"
	}
	return "A"
}

// SlottedImage binds an attachment to its slot.
type SlottedImage struct {
	Slot  Slot
	Image Image
}

// NewEnvelope lays out a single-prompt request: the prompt text followed by
// any images in the given order.
func NewEnvelope(prompt string, s *schema.Schema, images ...Image) *Envelope {
	parts := make([]Part, 0, len(images)+1)
	parts = append(parts, TextPart(prompt))
	for _, img := range images {
		parts = append(parts, ImagePart(img))
	}
	return &Envelope{Parts: parts, Schema: s}
}

// NewComparisonEnvelope lays out a two-image request as
// [intro + "Option A:", imageA, "Option B:", imageB, prompt]. The order is
// derived from the slots, so callers cannot swap sides by passing the
// attachments in a different order.
func NewComparisonEnvelope(intro, prompt string, s *schema.Schema, first, second SlottedImage) *Envelope {
	a, b := first, second
	if a.Slot == SlotB && b.Slot == SlotA {
		a, b = b, a
	}
	return &Envelope{
		Parts: []Part{
			TextPart(intro + " Option " + a.Slot.Label() + ":"),
			ImagePart(a.Image),
			TextPart("Option " + b.Slot.Label() + ":"),
			ImagePart(b.Image),
			TextPart(prompt),
		},
		Schema: s,
	}
}
