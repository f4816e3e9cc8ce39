package operation

import (
	"github.com/phrazzld/creatortune-gateway/internal/schema"
)

// ScriptTone is the voice a script is written in.
type ScriptTone string

const (
	ToneProfessional ScriptTone = "Professional"
	ToneCasualWitty  ScriptTone = "Casual & Witty"
	ToneGenZ         ScriptTone = "Gen Z"
	ToneKidFriendly  ScriptTone = "Kid-Friendly"
	ToneStoryteller  ScriptTone = "Storyteller"
)

func (t ScriptTone) Valid() bool {
	switch t {
	case ToneProfessional, ToneCasualWitty, ToneGenZ, ToneKidFriendly, ToneStoryteller:
		return true
	}
	return false
}

// PlatformFormat is the video format a script targets.
type PlatformFormat string

const (
	FormatLongForm PlatformFormat = "YouTube Long-form"
	FormatShort    PlatformFormat = "YouTube Short / Reel"
)

func (f PlatformFormat) Valid() bool {
	return f == FormatLongForm || f == FormatShort
}

type ScriptInput struct {
	textOnly
	Topic    string         `json:"topic" validate:"notblank"`
	Audience string         `json:"audience" validate:"notblank"`
	Tone     ScriptTone     `json:"tone" validate:"known"`
	Platform PlatformFormat `json:"platform" validate:"known"`
}

type ScriptViralTrigger struct {
	Technique string `json:"technique,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

type ScriptSection struct {
	SectionTitle   string              `json:"section_title"`
	Emotion        string              `json:"emotion"`
	Text           string              `json:"text"`
	PacingFeedback string              `json:"pacing_feedback,omitempty"`
	ViralTrigger   *ScriptViralTrigger `json:"viral_trigger,omitempty"`
}

type OptimizedCTA struct {
	Style     string `json:"style"`
	Placement string `json:"placement"`
	Text      string `json:"text"`
}

type ScriptResult struct {
	ScriptSections       []ScriptSection `json:"script_sections"`
	OptimizedCTA         OptimizedCTA    `json:"optimized_cta"`
	VoiceOverAnnotations string          `json:"voice_over_annotations"`
}

var scriptSchema = schema.Object(
	schema.Field("script_sections", schema.Array(schema.Object(
		schema.Field("section_title", schema.String("Section name, such as Hook, Intro or Outro.")),
		schema.Field("emotion", schema.Enum("Dominant emotion of the section.",
			"Neutral", "Humor", "Tension", "Inspiration", "Excitement", "Sadness", "Curiosity")),
		schema.Field("text", schema.String("The section's script text.")),
		schema.OptionalField("pacing_feedback", schema.String("A delivery tip, such as pause after this line.")),
		schema.OptionalField("viral_trigger", schema.Object(
			schema.OptionalField("technique", schema.String("Technique used, such as Curiosity Gap.")),
			schema.OptionalField("reason", schema.String("Why the technique works here.")),
		)),
	))),
	schema.Field("optimized_cta", schema.Object(
		schema.Field("style", schema.String("")),
		schema.Field("placement", schema.String("")),
		schema.Field("text", schema.String("")),
	)),
	schema.Field("voice_over_annotations", schema.String("The full script as one block with delivery annotations.")),
)

var scriptGenerationSpec = Spec{
	Kind:           KindScriptGeneration,
	Title:          "Script Generator",
	Schema:         scriptSchema,
	Modality:       TextOnly,
	Localized:      true,
	FailureMessage: "Failed to generate advanced script. Please check your inputs and try again.",
	newRequest: func() Request {
		return &ScriptInput{Tone: ToneProfessional, Platform: FormatLongForm}
	},
	newResult: func() interface{} { return &ScriptResult{} },
}

func (*ScriptInput) Kind() Kind             { return KindScriptGeneration }
func (*ScriptInput) result() *ScriptResult { return nil }

func (in *ScriptInput) Validate() error {
	return check(in, "Please provide both a video topic and a target audience.",
		tagMessage{tag: "known", message: "Please choose a supported tone and platform format."})
}

func (in *ScriptInput) BuildPrompt() string {
	return newPrompt("You are an expert YouTube scriptwriter who understands emotional pacing and viral mechanics. Write a complete, high-retention script package for the brief below.").
		data("Video Topic", in.Topic).
		data("Target Audience", in.Audience).
		data("Desired Tone", string(in.Tone)).
		data("Platform Format", string(in.Platform)).
		rule().
		steps("The package must include:",
			"**script_sections**: the script split into logical sections such as Hook, Intro, Point 1, Climax and Outro. Each has a section_title, the text and its dominant emotion, plus an optional pacing_feedback tip and an optional viral_trigger naming the technique and the reason it works.",
			"**optimized_cta**: a strong call to action with its style, placement and text.",
			"**voice_over_annotations**: the whole script as one block with cues like (pause) or (emphasize) for recording.",
		).
		finish(scriptSchema)
}
