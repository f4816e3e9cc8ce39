package operation

import (
	"github.com/phrazzld/creatortune-gateway/internal/schema"
)

// AudienceInput is the channel copy the audience profile is inferred from.
type AudienceInput struct {
	textOnly

	// Titles are semicolon separated.
	Titles string `json:"titles" validate:"notblank"`

	// Descriptions are separated by lines of "---".
	Descriptions string `json:"descriptions" validate:"notblank"`
	About        string `json:"about" validate:"notblank"`
}

type ViewerSummary struct {
	Age     string `json:"age"`
	Gender  string `json:"gender"`
	Country string `json:"country"`
}

type Psychographics struct {
	PersonalityTraits []string `json:"personalityTraits"`
	Values            []string `json:"values"`
	PainPoints        []string `json:"painPoints"`
	Motivations       []string `json:"motivations"`
}

type SentimentAndEmotion struct {
	EmotionalTriggers []string `json:"emotionalTriggers"`
	ToneAlignment     string   `json:"toneAlignment"`
}

type CommunityHotspot struct {
	Platform  string `json:"platform"`
	Community string `json:"community"`
	Reason    string `json:"reason"`
}

type BehavioralPredictions struct {
	ActiveHours       string   `json:"activeHours"`
	CTAResponsiveness string   `json:"ctaResponsiveness"`
	PreferredFormats  []string `json:"preferredFormats"`
}

type ViewerArchetype struct {
	Name       string   `json:"name"`
	Age        int      `json:"age"`
	Profession string   `json:"profession"`
	Interests  []string `json:"interests"`
	Motivation string   `json:"motivation"`
}

type AudienceOverlap struct {
	ChannelName  string   `json:"channelName"`
	Similarities []string `json:"similarities"`
	Differences  []string `json:"differences"`
}

type AudienceResult struct {
	ViewerSummary             ViewerSummary         `json:"viewerSummary"`
	ContentResonanceScore     int                   `json:"contentResonanceScore"`
	Psychographics            Psychographics        `json:"psychographics"`
	SentimentAndEmotion       SentimentAndEmotion   `json:"sentimentAndEmotion"`
	CommunityHotspots         []CommunityHotspot    `json:"communityHotspots"`
	BehavioralPredictions     BehavioralPredictions `json:"behavioralPredictions"`
	ViewerArchetypes          []ViewerArchetype     `json:"viewerArchetypes"`
	CompetitorAudienceOverlap []AudienceOverlap     `json:"competitorAudienceOverlap"`
	EngagementTips            []string              `json:"engagementTips"`
}

var audienceSchema = schema.Object(
	schema.Field("viewerSummary", schema.Object(
		schema.Field("age", schema.String("Typical age range.")),
		schema.Field("gender", schema.String("Gender split.")),
		schema.Field("country", schema.String("Main countries.")),
	)),
	schema.Field("contentResonanceScore", schema.Integer("How well the content fits the audience, 0 to 100.").Between(0, 100)),
	schema.Field("psychographics", schema.Object(
		schema.Field("personalityTraits", schema.StringArray("")),
		schema.Field("values", schema.StringArray("")),
		schema.Field("painPoints", schema.StringArray("")),
		schema.Field("motivations", schema.StringArray("")),
	)),
	schema.Field("sentimentAndEmotion", schema.Object(
		schema.Field("emotionalTriggers", schema.StringArray("Emotions that move this audience.")),
		schema.Field("toneAlignment", schema.String("How well the channel's tone matches them.")),
	)),
	schema.Field("communityHotspots", schema.Array(schema.Object(
		schema.Field("platform", schema.String("Platform, such as Reddit or Discord.")),
		schema.Field("community", schema.String("The specific community.")),
		schema.Field("reason", schema.String("Why the audience gathers there.")),
	))),
	schema.Field("behavioralPredictions", schema.Object(
		schema.Field("activeHours", schema.String("When the audience is most active.")),
		schema.Field("ctaResponsiveness", schema.String("How they respond to calls to action.")),
		schema.Field("preferredFormats", schema.StringArray("Formats they prefer.")),
	)),
	schema.Field("viewerArchetypes", schema.Array(schema.Object(
		schema.Field("name", schema.String("Persona name.")),
		schema.Field("age", schema.Integer("Persona age.")),
		schema.Field("profession", schema.String("Persona profession.")),
		schema.Field("interests", schema.StringArray("Persona interests.")),
		schema.Field("motivation", schema.String("Why the persona watches.")),
	))),
	schema.Field("competitorAudienceOverlap", schema.Array(schema.Object(
		schema.Field("channelName", schema.String("Competitor channel.")),
		schema.Field("similarities", schema.StringArray("Shared audience traits.")),
		schema.Field("differences", schema.StringArray("Where the audiences differ.")),
	))),
	schema.Field("engagementTips", schema.StringArray("Actionable tips to engage this audience.")),
)

var audienceAnalysisSpec = Spec{
	Kind:           KindAudienceAnalysis,
	Title:          "Audience Analyzer",
	Schema:         audienceSchema,
	Modality:       TextOnly,
	Localized:      true,
	FailureMessage: "Failed to get audience analysis from AI. Please check your inputs and try again.",
	newRequest:     func() Request { return &AudienceInput{} },
	newResult:      func() interface{} { return &AudienceResult{} },
}

func (*AudienceInput) Kind() Kind               { return KindAudienceAnalysis }
func (*AudienceInput) result() *AudienceResult { return nil }

func (in *AudienceInput) Validate() error {
	return check(in, "Please fill in all fields with your channel data.")
}

func (in *AudienceInput) BuildPrompt() string {
	return newPrompt("You are an AI YouTube audience and psychographic analyst. Build a deeply detailed target audience profile from the channel data below for a creator who wants to grow fast.").
		block("Video Titles (semicolon-separated)", in.Titles).
		block("Video Descriptions (separated by '---')", in.Descriptions).
		block("Channel About Section", in.About).
		steps("The profile must include:",
			"**viewerSummary**: age, gender and country.",
			"**contentResonanceScore**: 0 to 100 for how well the content fits the audience.",
			"**psychographics**: personality traits, values, pain points and motivations.",
			"**sentimentAndEmotion**: emotional triggers and tone alignment.",
			"**communityHotspots**: 3 to 4 online communities where this audience is active.",
			"**behavioralPredictions**: active hours, CTA responsiveness and preferred formats.",
			"**viewerArchetypes**: 3 fictional personas with name, age, profession, interests and motivation.",
			"**competitorAudienceOverlap**: similarities and differences with 2 to 3 likely competitor channels.",
			"**engagementTips**: 3 clear, actionable tips.",
		).
		finish(audienceSchema)
}
