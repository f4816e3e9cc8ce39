package operation

import (
	"github.com/phrazzld/creatortune-gateway/internal/generation"
	"github.com/phrazzld/creatortune-gateway/internal/schema"
)

// ABTestIntro opens a comparison request, ahead of the first image.
const ABTestIntro = "Analyze this A/B Test."

// ABOption is one title and thumbnail combination under test.
type ABOption struct {
	Title     string     `json:"title" validate:"notblank"`
	Thumbnail ImageInput `json:"thumbnail"`
}

type ABTestInput struct {
	OptionA        ABOption `json:"optionA"`
	OptionB        ABOption `json:"optionB"`
	TargetAudience string   `json:"targetAudience" validate:"notblank"`
}

type CTRPrediction struct {
	Percentage float64 `json:"percentage"`
}

type TitleSuggestions struct {
	ShortVersion string `json:"shortVersion"`
	LongVersion  string `json:"longVersion"`
}

type ABOptionAnalysis struct {
	CTRPrediction          CTRPrediction    `json:"ctrPrediction"`
	PsychologicalTriggers  []string         `json:"psychologicalTriggers"`
	AttentionHeatmap       string           `json:"attentionHeatmap"`
	AudienceFitScore       float64          `json:"audienceFitScore"`
	TitleSuggestions       TitleSuggestions `json:"titleSuggestions"`
	FormattingImprovements []string         `json:"formattingImprovements"`
}

type ViralVideoReference struct {
	Title              string `json:"title"`
	Stats              string `json:"stats"`
	ReasonForRelevance string `json:"reasonForRelevance"`
}

type ABTestResult struct {
	Winner               string                `json:"winner"`
	OverallReasoning     string                `json:"overallReasoning"`
	OptionA              ABOptionAnalysis      `json:"optionA"`
	OptionB              ABOptionAnalysis      `json:"optionB"`
	ViralVideoReferences []ViralVideoReference `json:"viralVideoReferences"`
}

// Option returns the analysis reported for slot.
func (r *ABTestResult) Option(slot generation.Slot) ABOptionAnalysis {
	if slot == generation.SlotB {
		return r.OptionB
	}
	return r.OptionA
}

func abOptionSchema(label string) *schema.Schema {
	return schema.Object(
		schema.Field("ctrPrediction", schema.Object(
			schema.Field("percentage", schema.Number("Estimated click-through rate in percent.").Between(0, 100)),
		)),
		schema.Field("psychologicalTriggers", schema.StringArray("Triggers used, such as Curiosity, Urgency or Authority.")),
		schema.Field("attentionHeatmap", schema.String("Base64 transparent PNG marking attention hotspots, red for high and yellow for medium.")),
		schema.Field("audienceFitScore", schema.Number("Fit with the target audience, 0 to 100.").Between(0, 100)),
		schema.Field("titleSuggestions", schema.Object(
			schema.Field("shortVersion", schema.String("")),
			schema.Field("longVersion", schema.String("")),
		)),
		schema.Field("formattingImprovements", schema.StringArray("Title formatting fixes.")),
	).Describe("Analysis of Option " + label + ", the image that follows the text \"Option " + label + ":\".")
}

var abTestSchema = schema.Object(
	schema.Field("winner", schema.Enum("The stronger option.", "A", "B", "Neither")),
	schema.Field("overallReasoning", schema.String("Why the winner was chosen.")),
	schema.Field("optionA", abOptionSchema(generation.SlotA.Label())),
	schema.Field("optionB", abOptionSchema(generation.SlotB.Label())),
	schema.Field("viralVideoReferences", schema.Array(schema.Object(
		schema.Field("title", schema.String("A similar successful video.")),
		schema.Field("stats", schema.String("Its performance stats.")),
		schema.Field("reasonForRelevance", schema.String("Why it is relevant.")),
	))),
)

var abTestSpec = Spec{
	Kind:           KindABTest,
	Title:          "A/B Tester",
	Schema:         abTestSchema,
	Modality:       ImagePair,
	Localized:      true,
	FailureMessage: "Failed to get A/B test analysis from AI. Please check your inputs and try again.",
	newRequest:     func() Request { return &ABTestInput{} },
	newResult:      func() interface{} { return &ABTestResult{} },
}

func (*ABTestInput) request()              {}
func (*ABTestInput) Kind() Kind            { return KindABTest }
func (*ABTestInput) result() *ABTestResult { return nil }

func (in *ABTestInput) Validate() error {
	if err := check(in, "Please provide titles, thumbnails, and a target audience for both options."); err != nil {
		return err
	}
	if _, err := in.OptionA.Thumbnail.attach(); err != nil {
		return err
	}
	_, err := in.OptionB.Thumbnail.attach()
	return err
}

func (in *ABTestInput) BuildPrompt() string {
	return newPrompt("You are an expert A/B tester and YouTube growth strategist with deep knowledge of visual psychology and audience behavior. You are given two title and thumbnail combinations, Option A and Option B, and a description of the target audience. Analyze both exhaustively and declare a winner.").
		data("Target Audience", in.TargetAudience).
		data("Option A Title", in.OptionA.Title).
		data("Option B Title", in.OptionB.Title).
		rule().
		para("The image after the text \"Option A:\" is Option A's thumbnail and the image after \"Option B:\" is Option B's. Report each image's analysis under its own option.").
		steps("For each option, optionA and optionB, provide:",
			"**ctrPrediction**: the estimated click-through rate percentage.",
			"**psychologicalTriggers**: the triggers used, such as Curiosity, Urgency or Authority.",
			"**attentionHeatmap**: a valid base64 string for a transparent PNG showing attention hotspots, red for high and yellow for medium.",
			"**audienceFitScore**: 0 to 100 for resonance with the target audience.",
			"**titleSuggestions**: a short and a long variation of the title.",
			"**formattingImprovements**: actionable title formatting suggestions.",
		).
		steps("Then provide the overall verdict:",
			"**winner**: A, B or Neither.",
			"**overallReasoning**: a summary of the choice.",
			"**viralVideoReferences**: 2 to 3 similar successful videos from the niche with their stats.",
		).
		finish(abTestSchema)
}

// Layout places each thumbnail directly after its option label, so the
// response's optionA always describes OptionA's image.
func (in *ABTestInput) Layout(prompt string, s *schema.Schema) (*generation.Envelope, error) {
	imgA, err := in.OptionA.Thumbnail.attach()
	if err != nil {
		return nil, err
	}
	imgB, err := in.OptionB.Thumbnail.attach()
	if err != nil {
		return nil, err
	}
	return generation.NewComparisonEnvelope(ABTestIntro, prompt, s,
		generation.SlottedImage{Slot: generation.SlotA, Image: imgA},
		generation.SlottedImage{Slot: generation.SlotB, Image: imgB},
	), nil
}
