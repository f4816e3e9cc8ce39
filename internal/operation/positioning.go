package operation

import (
	"github.com/phrazzld/creatortune-gateway/internal/schema"
)

type PositioningInput struct {
	textOnly
	Niche              string `json:"niche" validate:"notblank"`
	Tone               string `json:"tone" validate:"notblank"`
	About              string `json:"about" validate:"notblank"`
	Titles             string `json:"titles" validate:"notblank"`
	SampleComments     string `json:"sampleComments" validate:"notblank"`
	VisualsDescription string `json:"visualsDescription" validate:"notblank"`
}

type AudiencePerception struct {
	Intended    string `json:"intended"`
	Actual      string `json:"actual"`
	GapAnalysis string `json:"gapAnalysis"`
}

type MapPoint struct {
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

type PositioningMap struct {
	XAxisLabel   string     `json:"xAxisLabel"`
	YAxisLabel   string     `json:"yAxisLabel"`
	UserPosition MapPoint   `json:"userPosition"`
	Competitors  []MapPoint `json:"competitors"`
}

type ContentGap struct {
	Angle        string `json:"angle"`
	Reason       string `json:"reason"`
	ExampleTitle string `json:"exampleTitle"`
}

type BrandArchetype struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Strategy    string   `json:"strategy"`
	References  []string `json:"references"`
}

type VisualDifferentiation struct {
	Score       float64  `json:"score"`
	Feedback    string   `json:"feedback"`
	Suggestions []string `json:"suggestions"`
}

type HeatmapCell struct {
	Angle       string  `json:"angle"`
	Density     float64 `json:"density"`
	Opportunity string  `json:"opportunity"`
}

type ActionItem struct {
	Day    float64 `json:"day"`
	Task   string  `json:"task"`
	Reason string  `json:"reason"`
}

type PositioningResult struct {
	AudiencePerception    AudiencePerception    `json:"audiencePerception"`
	PositioningMap        PositioningMap        `json:"positioningMap"`
	ContentGaps           []ContentGap          `json:"contentGaps"`
	BrandArchetypes       []BrandArchetype      `json:"brandArchetypes"`
	VisualDifferentiation VisualDifferentiation `json:"visualDifferentiation"`
	CompetitiveHeatmap    []HeatmapCell         `json:"competitiveHeatmap"`
	ActionPlan            []ActionItem          `json:"actionPlan"`
}

func mapPointSchema() *schema.Schema {
	return schema.Object(
		schema.Field("name", schema.String("")),
		schema.Field("x", schema.Number("Position on the X axis, -100 to 100.").Between(-100, 100)),
		schema.Field("y", schema.Number("Position on the Y axis, -100 to 100.").Between(-100, 100)),
	)
}

var positioningSchema = schema.Object(
	schema.Field("audiencePerception", schema.Object(
		schema.Field("intended", schema.String("How the creator wants to be seen.")),
		schema.Field("actual", schema.String("How the audience actually sees the channel.")),
		schema.Field("gapAnalysis", schema.String("The gap between the two.")),
	)),
	schema.Field("positioningMap", schema.Object(
		schema.Field("xAxisLabel", schema.String("For example Entertainment vs Education.")),
		schema.Field("yAxisLabel", schema.String("For example Beginner vs Expert.")),
		schema.Field("userPosition", mapPointSchema()),
		schema.Field("competitors", schema.Array(mapPointSchema()).Describe("5 to 10 plausible competitors.")),
	)),
	schema.Field("contentGaps", schema.Array(schema.Object(
		schema.Field("angle", schema.String("An underserved content angle.")),
		schema.Field("reason", schema.String("")),
		schema.Field("exampleTitle", schema.String("")),
	))),
	schema.Field("brandArchetypes", schema.Array(schema.Object(
		schema.Field("name", schema.String("Blended archetype, such as The Rebel + The Sage.")),
		schema.Field("description", schema.String("")),
		schema.Field("strategy", schema.String("")),
		schema.Field("references", schema.StringArray("Real-world references.")),
	))),
	schema.Field("visualDifferentiation", schema.Object(
		schema.Field("score", schema.Number("How much the visuals stand out, 0 to 100.").Between(0, 100)),
		schema.Field("feedback", schema.String("")),
		schema.Field("suggestions", schema.StringArray("")),
	)),
	schema.Field("competitiveHeatmap", schema.Array(schema.Object(
		schema.Field("angle", schema.String("A content angle in the niche.")),
		schema.Field("density", schema.Number("Competitive density, 0 to 100.").Between(0, 100)),
		schema.Field("opportunity", schema.Enum("Opportunity for the creator.", levels...)),
	))),
	schema.Field("actionPlan", schema.Array(schema.Object(
		schema.Field("day", schema.Number("Day number, 1 to 7.").Between(1, 7)),
		schema.Field("task", schema.String("One concrete task.")),
		schema.Field("reason", schema.String("")),
	))),
)

var positioningAuditSpec = Spec{
	Kind:           KindPositioningAudit,
	Title:          "Positioning Map",
	Schema:         positioningSchema,
	Modality:       TextOnly,
	Localized:      true,
	FailureMessage: "Failed to generate advanced positioning report. Please check your inputs and try again.",
	newRequest:     func() Request { return &PositioningInput{} },
	newResult:      func() interface{} { return &PositioningResult{} },
}

func (*PositioningInput) Kind() Kind                  { return KindPositioningAudit }
func (*PositioningInput) result() *PositioningResult { return nil }

func (in *PositioningInput) Validate() error {
	return check(in, "Please fill in all fields for a complete positioning report.")
}

func (in *PositioningInput) BuildPrompt() string {
	return newPrompt("You are an expert YouTube brand strategist and market analyst. Use the channel information below to build an advanced, multi-layered positioning report.").
		data("Niche", in.Niche).
		data("Intended Tone", in.Tone).
		data("About Section", in.About).
		data("Example Titles", in.Titles).
		data("Sample Audience Comments", in.SampleComments).
		data("Description of Visuals (Thumbnails, Colors, Fonts)", in.VisualsDescription).
		rule().
		steps("Using all of it, the report must include:",
			"**audiencePerception**: the gap between the intended perception (tone, about section) and the actual one (comments, titles).",
			"**positioningMap**: a 2x2 map with labelled X and Y axes, the channel's position (x and y from -100 to 100) and 5 to 10 plausible competitors.",
			"**contentGaps**: 3 to 5 underserved angles, each with a reason and an example title.",
			"**brandArchetypes**: 2 to 3 blended archetypes with description, strategy and real-world references.",
			"**visualDifferentiation**: a 0 to 100 score with feedback on how the visuals stand out.",
			"**competitiveHeatmap**: 8 to 12 angles with competitive density (0 to 100) and opportunity (Low, Medium or High).",
			"**actionPlan**: a 7-day plan with one concrete task per day and a short reason.",
		).
		finish(positioningSchema)
}
