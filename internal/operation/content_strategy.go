package operation

import (
	"github.com/phrazzld/creatortune-gateway/internal/schema"
)

// ContentStrategyInput asks for trend-aware video ideas for a channel.
type ContentStrategyInput struct {
	textOnly
	ChannelURL string `json:"channelUrl" validate:"notblank,youtube_url"`
}

type Niche struct {
	Core string `json:"core"`
	Sub  string `json:"sub"`
}

type TrendSignal struct {
	Trend  string `json:"trend"`
	Source string `json:"source"`
}

type CompetitorGap struct {
	Competitor  string `json:"competitor"`
	Analysis    string `json:"analysis"`
	Opportunity string `json:"opportunity"`
}

type PredictedComment struct {
	Username string `json:"username"`
	Comment  string `json:"comment"`
}

type ViralTrigger struct {
	Trigger     string `json:"trigger"`
	Explanation string `json:"explanation"`
}

type InspirationVideo struct {
	Title string `json:"title"`
	Views string `json:"views"`
}

type VideoIdea struct {
	Idea              string             `json:"idea"`
	FormatTag         string             `json:"formatTag"`
	Reason            string             `json:"reason"`
	Hook              string             `json:"hook"`
	SuggestedTitle    string             `json:"suggestedTitle"`
	ThumbnailConcept  string             `json:"thumbnailConcept"`
	ViralScore        int                `json:"viralScore"`
	ViralScoreReason  string             `json:"viralScoreReason"`
	PredictedComments []PredictedComment `json:"predictedComments"`
	ViralTriggers     []ViralTrigger     `json:"viralTriggers"`
	TrendScore        int                `json:"trendScore"`
	BestDayToPost     string             `json:"bestDayToPost"`
	ContentType       string             `json:"contentType"`
	RelevanceLifespan string             `json:"relevanceLifespan"`
	CreativeTwist     string             `json:"creativeTwist"`
	InspirationVideos []InspirationVideo `json:"inspirationVideos"`
}

type ContentStrategyResult struct {
	Niche              Niche           `json:"niche"`
	Themes             []string        `json:"themes"`
	TrendAnalysis      []TrendSignal   `json:"trendAnalysis"`
	CompetitorAnalysis []CompetitorGap `json:"competitorAnalysis"`
	VideoIdeas         []VideoIdea     `json:"videoIdeas"`
}

var contentStrategySchema = schema.Object(
	schema.Field("niche", schema.Object(
		schema.Field("core", schema.String("The core niche.")),
		schema.Field("sub", schema.String("The sub-niche.")),
	)),
	schema.Field("themes", schema.StringArray("Recurring content themes.")),
	schema.Field("trendAnalysis", schema.Array(schema.Object(
		schema.Field("trend", schema.String("A trending topic in the niche.")),
		schema.Field("source", schema.String("Where the trend was spotted, such as Google Trends or Reddit.")),
	))),
	schema.Field("competitorAnalysis", schema.Array(schema.Object(
		schema.Field("competitor", schema.String("Competitor channel name.")),
		schema.Field("analysis", schema.String("What the competitor does well.")),
		schema.Field("opportunity", schema.String("A gap the creator can fill.")),
	))),
	schema.Field("videoIdeas", schema.Array(schema.Object(
		schema.Field("idea", schema.String("The video idea.")),
		schema.Field("formatTag", schema.String("Format label, such as Tutorial or Challenge.")),
		schema.Field("reason", schema.String("Why the idea fits the channel.")),
		schema.Field("hook", schema.String("Opening line for the video.")),
		schema.Field("suggestedTitle", schema.String("A clickable title.")),
		schema.Field("thumbnailConcept", schema.String("Thumbnail design concept.")),
		schema.Field("viralScore", schema.Integer("Viral potential from 0 to 100.").Between(0, 100)),
		schema.Field("viralScoreReason", schema.String("Why the idea earned its viral score.")),
		schema.Field("predictedComments", schema.Array(schema.Object(
			schema.Field("username", schema.String("A plausible commenter name.")),
			schema.Field("comment", schema.String("The predicted comment.")),
		))),
		schema.Field("viralTriggers", schema.Array(schema.Object(
			schema.Field("trigger", schema.String("Psychological trigger, such as curiosity or FOMO.")),
			schema.Field("explanation", schema.String("How the trigger works in this idea.")),
		))),
		schema.Field("trendScore", schema.Integer("Trend alignment from 0 to 100.").Between(0, 100)),
		schema.Field("bestDayToPost", schema.String("The best day to publish.")),
		schema.Field("contentType", schema.Enum("Whether the idea is evergreen or rides a trend.", "Evergreen", "Trending")),
		schema.Field("relevanceLifespan", schema.String("How long the idea stays relevant.")),
		schema.Field("creativeTwist", schema.String("One twist that makes the idea stand out.")),
		schema.Field("inspirationVideos", schema.Array(schema.Object(
			schema.Field("title", schema.String("Title of a top video in this space.")),
			schema.Field("views", schema.String("Its view count.")),
		))),
	))),
)

var contentStrategySpec = Spec{
	Kind:           KindContentStrategy,
	Title:          "Content Strategy",
	Schema:         contentStrategySchema,
	Modality:       TextOnly,
	Localized:      true,
	FailureMessage: "Failed to get content strategy from AI. Please check the channel URL and try again.",
	newRequest:     func() Request { return &ContentStrategyInput{} },
	newResult:      func() interface{} { return &ContentStrategyResult{} },
}

func (*ContentStrategyInput) Kind() Kind                      { return KindContentStrategy }
func (*ContentStrategyInput) result() *ContentStrategyResult { return nil }

func (in *ContentStrategyInput) Validate() error {
	return check(in, "Please enter a valid YouTube channel URL.",
		tagMessage{tag: "notblank", message: "Please enter a YouTube channel URL."})
}

func (in *ContentStrategyInput) BuildPrompt() string {
	return newPrompt("You are a world-class YouTube strategist and trend analyst. Build an advanced, actionable content strategy for the channel below.").
		para("You cannot open external websites. Infer the channel's subject from its name and URL and produce a realistic, insightful analysis.").
		steps("The strategy must include:",
			"**niche** and **themes**: the core niche, the sub-niche and the recurring themes.",
			"**trendAnalysis**: 1 to 2 current trending topics in the niche with the source they would come from.",
			"**competitorAnalysis**: 3 top competitor channels, each with a content gap or opportunity.",
			"**videoIdeas**: 3 to 5 ideas. Each needs idea, formatTag, reason, hook, suggestedTitle, thumbnailConcept, viralScore, viralScoreReason, predictedComments, viralTriggers, trendScore (0 to 100), bestDayToPost, contentType (Evergreen or Trending) with its relevanceLifespan, creativeTwist and 1 to 2 inspirationVideos with view counts.",
		).
		data("YouTube Channel URL", in.ChannelURL).
		rule().
		finish(contentStrategySchema)
}
