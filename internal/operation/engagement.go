package operation

import (
	"github.com/phrazzld/creatortune-gateway/internal/schema"
)

// ChannelSize is a subscriber bracket.
type ChannelSize string

const (
	SizeUnder1K   ChannelSize = "0-1k"
	Size1KTo10K   ChannelSize = "1k-10k"
	Size10KTo100K ChannelSize = "10k-100k"
	SizeOver100K  ChannelSize = "100k+"
)

func (c ChannelSize) Valid() bool {
	switch c {
	case SizeUnder1K, Size1KTo10K, Size10KTo100K, SizeOver100K:
		return true
	}
	return false
}

type EngagementInput struct {
	textOnly
	TitlesAndDescriptions string      `json:"titlesAndDescriptions" validate:"notblank"`
	ChannelSize           ChannelSize `json:"channelSize" validate:"known"`
}

type CTASet struct {
	Format string   `json:"format"`
	CTAs   []string `json:"ctas"`
}

type TimeStampedBoost struct {
	Timestamp string `json:"timestamp"`
	Hack      string `json:"hack"`
	Reason    string `json:"reason"`
}

type CommunityTabHack struct {
	Type   string `json:"type"`
	Idea   string `json:"idea"`
	Reason string `json:"reason"`
}

type FunnelStage struct {
	Stage   string   `json:"stage"`
	Goal    string   `json:"goal"`
	Tactics []string `json:"tactics"`
}

type EngagementResult struct {
	EngagementBoostProjection float64            `json:"engagementBoostProjection"`
	CTAGenerator              []CTASet           `json:"ctaGenerator"`
	CommentTriggers           []string           `json:"commentTriggers"`
	TimeStampedBoosts         []TimeStampedBoost `json:"timeStampedBoosts"`
	CommunityTabHacks         []CommunityTabHack `json:"communityTabHacks"`
	EngagementFunnel          []FunnelStage      `json:"engagementFunnel"`
	RetentionTips             []string           `json:"retentionTips"`
}

var engagementSchema = schema.Object(
	schema.Field("engagementBoostProjection", schema.Number("Estimated engagement increase in percent if every hack is applied.")),
	schema.Field("ctaGenerator", schema.Array(schema.Object(
		schema.Field("format", schema.Enum("Video format.", "YouTube Short", "Long-form Video", "Live Stream")),
		schema.Field("ctas", schema.StringArray("3 calls to action for the format.")),
	))),
	schema.Field("commentTriggers", schema.StringArray("Question prompts that spark comments.")),
	schema.Field("timeStampedBoosts", schema.Array(schema.Object(
		schema.Field("timestamp", schema.String("Moment in the video, such as First 10s.")),
		schema.Field("hack", schema.String("What to do at that moment.")),
		schema.Field("reason", schema.String("Why it works there.")),
	))),
	schema.Field("communityTabHacks", schema.Array(schema.Object(
		schema.Field("type", schema.Enum("Post type.", "Poll", "Image Teaser", "Question", "Behind The Scenes", "Meme")),
		schema.Field("idea", schema.String("The post idea.")),
		schema.Field("reason", schema.String("Why it drives engagement.")),
	))),
	schema.Field("engagementFunnel", schema.Array(schema.Object(
		schema.Field("stage", schema.Enum("Funnel stage.", "Watcher", "Commenter", "Subscriber", "Sharer")),
		schema.Field("goal", schema.String("What the stage should achieve.")),
		schema.Field("tactics", schema.StringArray("Tactics that move viewers onward.")),
	))),
	schema.Field("retentionTips", schema.StringArray("General tips for holding attention.")),
)

var engagementHacksSpec = Spec{
	Kind:           KindEngagementHacks,
	Title:          "Engagement Hacks",
	Schema:         engagementSchema,
	Modality:       TextOnly,
	Localized:      true,
	FailureMessage: "Failed to generate engagement hacks. Please check your inputs and try again.",
	newRequest:     func() Request { return &EngagementInput{ChannelSize: Size1KTo10K} },
	newResult:      func() interface{} { return &EngagementResult{} },
}

func (*EngagementInput) Kind() Kind                 { return KindEngagementHacks }
func (*EngagementInput) result() *EngagementResult { return nil }

func (in *EngagementInput) Validate() error {
	return check(in, "Please provide some video titles and descriptions.",
		tagMessage{tag: "known", message: "Please choose a channel size."})
}

func (in *EngagementInput) BuildPrompt() string {
	return newPrompt("You are an AI YouTube engagement growth consultant. Study the channel's content style and size and deliver an advanced, multi-layered engagement blueprint.").
		para("Channel data:\n- Size: %s subscribers\n- Recent Video Titles & Descriptions: %s", in.ChannelSize, in.TitlesAndDescriptions).
		para("Infer the channel's niche, tone and audience behavior from this data, then produce:").
		steps("",
			"**engagementBoostProjection**: the estimated percentage increase in engagement if every hack is applied.",
			"**ctaGenerator**: 3 niche-specific, high-converting CTAs for each of YouTube Short, Long-form Video and Live Stream.",
			"**commentTriggers**: 3 to 4 question prompts that spark comments.",
			"**timeStampedBoosts**: 3 to 4 moments in a video, such as the first 10 seconds or 70 percent watch time, with a hack and the reason.",
			"**communityTabHacks**: 4 to 5 community post ideas with type, idea and reasoning.",
			"**engagementFunnel**: the Watcher, Commenter, Subscriber and Sharer stages, each with a goal and tactics.",
			"**retentionTips**: 3 to 5 tips for holding viewer attention.",
		).
		para("Keep every piece of advice practical and specific to the channel's inferred niche and size.").
		finish(engagementSchema)
}
