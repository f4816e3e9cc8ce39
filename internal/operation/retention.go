package operation

import (
	"strings"

	"github.com/phrazzld/creatortune-gateway/internal/schema"
)

// AudiencePersona is the viewer group a script is measured against.
type AudiencePersona string

const (
	PersonaBeginners     AudiencePersona = "Beginners"
	PersonaProfessionals AudiencePersona = "Professionals"
	PersonaCreators      AudiencePersona = "Creators"
	PersonaGeneral       AudiencePersona = "General Audience"
	PersonaGenZ          AudiencePersona = "Gen Z"
	PersonaMillennials   AudiencePersona = "Millennials"
)

func (p AudiencePersona) Valid() bool {
	switch p {
	case PersonaBeginners, PersonaProfessionals, PersonaCreators, PersonaGeneral, PersonaGenZ, PersonaMillennials:
		return true
	}
	return false
}

// MaxCompetitorURLs caps the competitor videos compared in one analysis.
const MaxCompetitorURLs = 2

type RetentionInput struct {
	textOnly
	Script         string          `json:"script" validate:"notblank"`
	TargetAudience AudiencePersona `json:"targetAudience" validate:"known"`

	// CompetitorURLs is optional. Blank entries are ignored.
	CompetitorURLs []string `json:"competitorUrls,omitempty"`
}

type competitorSet struct {
	URLs []string `validate:"max=2,dive,youtube_url"`
}

type PerformanceSummary struct {
	HookRetention     string `json:"hookRetention"`
	MidWatchRetention string `json:"midWatchRetention"`
	FinalCTARetention string `json:"finalCtaRetention"`
}

type AttentionPoint struct {
	Timestamp string  `json:"timestamp"`
	Emotion   string  `json:"emotion"`
	Score     float64 `json:"score"`
}

type AttentionCurve struct {
	Points  []AttentionPoint `json:"points"`
	Summary string           `json:"summary"`
}

type RetentionSegment struct {
	Timestamp     string `json:"timestamp"`
	RetentionRisk string `json:"retentionRisk"`
	DropOffCause  string `json:"dropOffCause"`
	SegmentText   string `json:"segmentText"`
}

type RetentionBoostTip struct {
	Timestamp  string `json:"timestamp"`
	Suggestion string `json:"suggestion"`
	Reason     string `json:"reason"`
}

type RetentionComparison struct {
	Intro string `json:"intro"`
	Mid   string `json:"mid"`
	End   string `json:"end"`
}

type CompetitorRetention struct {
	VideoURL              string              `json:"videoUrl"`
	Comparison            RetentionComparison `json:"comparison"`
	StructuralSuggestions []string            `json:"structuralSuggestions"`
}

type PersonaMatch struct {
	MatchScore float64 `json:"matchScore"`
	Feedback   string  `json:"feedback"`
}

type RetentionResult struct {
	RetentionPredictionScore int                   `json:"retentionPredictionScore"`
	PerformanceSummary       PerformanceSummary    `json:"performanceSummary"`
	AttentionCurve           AttentionCurve        `json:"attentionCurve"`
	RetentionTimeline        []RetentionSegment    `json:"retentionTimeline"`
	RetentionBoostTips       []RetentionBoostTip   `json:"retentionBoostTips"`
	CompetitorAnalysis       []CompetitorRetention `json:"competitorAnalysis,omitempty"`
	AudiencePersonaMatch     PersonaMatch          `json:"audiencePersonaMatch"`
	OverallSummary           string                `json:"overallSummary"`
}

var ratings = []string{"Good", "Average", "Poor"}

var retentionSchema = schema.Object(
	schema.Field("retentionPredictionScore", schema.Integer("Predicted retention from 0 to 100.").Between(0, 100)),
	schema.Field("performanceSummary", schema.Object(
		schema.Field("hookRetention", schema.Enum("First 15 seconds.", ratings...)),
		schema.Field("midWatchRetention", schema.Enum("Middle section.", ratings...)),
		schema.Field("finalCtaRetention", schema.Enum("Last 30 seconds.", ratings...)),
	)),
	schema.Field("attentionCurve", schema.Object(
		schema.Field("points", schema.Array(schema.Object(
			schema.Field("timestamp", schema.String("")),
			schema.Field("emotion", schema.Enum("Viewer state at this point.",
				"Excitement", "Curiosity", "Humor", "Tension", "Informative", "Neutral")),
			schema.Field("score", schema.Number("Attention from 0 to 100.").Between(0, 100)),
		)).Describe("5 to 7 points.")),
		schema.Field("summary", schema.String("Plain-English read of the engagement pattern.")),
	)),
	schema.Field("retentionTimeline", schema.Array(schema.Object(
		schema.Field("timestamp", schema.String("Timestamp range.")),
		schema.Field("retentionRisk", schema.Enum("Drop-off risk.", levels...)),
		schema.Field("dropOffCause", schema.String("")),
		schema.Field("segmentText", schema.String("The script text at risk.")),
	)).AtLeast(1)),
	schema.Field("retentionBoostTips", schema.Array(schema.Object(
		schema.Field("timestamp", schema.String("")),
		schema.Field("suggestion", schema.String("")),
		schema.Field("reason", schema.String("")),
	))),
	schema.OptionalField("competitorAnalysis", schema.Array(schema.Object(
		schema.Field("videoUrl", schema.String("")),
		schema.Field("comparison", schema.Object(
			schema.Field("intro", schema.String("")),
			schema.Field("mid", schema.String("")),
			schema.Field("end", schema.String("")),
		)),
		schema.Field("structuralSuggestions", schema.StringArray("")),
	)).Describe("Only when competitor videos were supplied.")),
	schema.Field("audiencePersonaMatch", schema.Object(
		schema.Field("matchScore", schema.Number("Fit with the persona, 0 to 100.").Between(0, 100)),
		schema.Field("feedback", schema.String("")),
	)),
	schema.Field("overallSummary", schema.String("Strengths and key improvements.")),
)

var retentionAnalysisSpec = Spec{
	Kind:           KindRetentionAnalysis,
	Title:          "Retention Analyzer",
	Schema:         retentionSchema,
	Modality:       TextOnly,
	Localized:      true,
	FailureMessage: "Failed to generate retention analysis. Please check your script and try again.",
	newRequest:     func() Request { return &RetentionInput{TargetAudience: PersonaGeneral} },
	newResult:      func() interface{} { return &RetentionResult{} },
}

func (*RetentionInput) Kind() Kind                { return KindRetentionAnalysis }
func (*RetentionInput) result() *RetentionResult { return nil }

// Competitors returns the non-blank competitor URLs.
func (in *RetentionInput) Competitors() []string {
	return nonBlank(in.CompetitorURLs)
}

func (in *RetentionInput) Validate() error {
	if err := check(in, "Please paste your video script to be analyzed.",
		tagMessage{tag: "known", message: "Please choose a target audience persona."}); err != nil {
		return err
	}
	return check(competitorSet{URLs: in.Competitors()}, "Please enter valid YouTube video URLs for up to 2 competitors.")
}

func (in *RetentionInput) BuildPrompt() string {
	p := newPrompt("You are an expert YouTube video editor and audience retention strategist. Analyze the script below for moments where viewers are likely to drop off and build a complete improvement plan.").
		para("Analyze the script for this target audience: %q.", string(in.TargetAudience)).
		block("Script", in.Script)

	if urls := in.Competitors(); len(urls) > 0 {
		lines := make([]string, len(urls))
		for i, u := range urls {
			lines[i] = "- " + u
		}
		p.para("Competitor videos to analyze (simulate if you cannot access them):\n%s", strings.Join(lines, "\n")).
			para("Your analysis MUST include the 'competitorAnalysis' section. For each competitor, compare intro, mid and end retention and give structural suggestions based on what works in their videos.")
	} else {
		p.para("No competitor URLs were provided, so omit the 'competitorAnalysis' field from your response.")
	}

	return p.steps("The analysis must cover:",
		"**retentionPredictionScore**: an overall predicted score from 0 to 100.",
		"**performanceSummary**: Good, Average or Poor for hookRetention (first 15s), midWatchRetention and finalCtaRetention (last 30s).",
		"**attentionCurve**: 5 to 7 points with emotion and score, plus a plain-English summary with advice on hook structure and pacing.",
		"**retentionTimeline**: likely drop-off zones with a timestamp range, retentionRisk (Low, Medium or High), the dropOffCause and the segmentText.",
		"**retentionBoostTips**: for the 3 weakest zones, a concrete suggestion and the reason it works.",
		"**audiencePersonaMatch**: a matchScore and feedback on fit with the persona.",
		"**overallSummary**: the script's strengths and key improvements.",
	).
		finish(retentionSchema)
}
