package operation

import (
	"github.com/phrazzld/creatortune-gateway/internal/schema"
)

// ShiftStyle is the direction a creator wants to move their positioning.
type ShiftStyle string

const (
	ShiftEdgy         ShiftStyle = "More Edgy & Controversial"
	ShiftEducational  ShiftStyle = "More Educational & In-Depth"
	ShiftEntertaining ShiftStyle = "More Entertaining & Humorous"
	ShiftProfessional ShiftStyle = "More Polished & Professional"
)

func (s ShiftStyle) Valid() bool {
	switch s {
	case ShiftEdgy, ShiftEducational, ShiftEntertaining, ShiftProfessional:
		return true
	}
	return false
}

type PositionShiftInput struct {
	textOnly
	CurrentPositioning string     `json:"currentPositioning" validate:"notblank"`
	DesiredShift       ShiftStyle `json:"desiredShift" validate:"known"`
}

type PositionShiftResult struct {
	NewTitleTone             string   `json:"newTitleTone"`
	ThumbnailStyleSuggestion string   `json:"thumbnailStyleSuggestion"`
	VideoHookExamples        []string `json:"videoHookExamples"`
}

var positionShiftSchema = schema.Object(
	schema.Field("newTitleTone", schema.String("The tone to adopt for titles.")),
	schema.Field("thumbnailStyleSuggestion", schema.String("How to change colors, fonts and imagery.")),
	schema.Field("videoHookExamples", schema.StringArray("Three hooks that reflect the new positioning.")),
)

var positionShiftSpec = Spec{
	Kind:           KindPositionShift,
	Title:          "Position Shift Simulator",
	Schema:         positionShiftSchema,
	Modality:       TextOnly,
	Localized:      true,
	FailureMessage: "Failed to generate position shift simulation. Please try again.",
	newRequest:     func() Request { return &PositionShiftInput{} },
	newResult:      func() interface{} { return &PositionShiftResult{} },
}

func (*PositionShiftInput) Kind() Kind                    { return KindPositionShift }
func (*PositionShiftInput) result() *PositionShiftResult { return nil }

func (in *PositionShiftInput) Validate() error {
	return check(in, "Please generate a positioning report before simulating a shift.",
		tagMessage{tag: "known", message: "Please choose how you want to shift your positioning."})
}

func (in *PositionShiftInput) BuildPrompt() string {
	return newPrompt("You are a YouTube rebranding strategist. A creator wants to shift their channel's positioning.").
		data("Current Positioning Summary", in.CurrentPositioning).
		data("Desired Shift", "Become "+string(in.DesiredShift)).
		rule().
		steps("Write a mini-plan for the shift with:",
			"**newTitleTone**: the tone their titles should adopt.",
			"**thumbnailStyleSuggestion**: specific advice on colors, fonts and imagery.",
			"**videoHookExamples**: three distinct hooks that reflect the new positioning.",
		).
		finish(positionShiftSchema)
}
