package operation

import (
	"github.com/phrazzld/creatortune-gateway/internal/schema"
)

// AuditInput asks for a full channel audit inferred from the channel URL.
type AuditInput struct {
	textOnly
	ChannelURL string `json:"channelUrl" validate:"notblank,youtube_url"`
}

type TitleAnalysis struct {
	Title      string   `json:"title"`
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
	Suggestion string   `json:"suggestion"`
}

type ThumbnailReview struct {
	VideoTitle       string   `json:"video_title"`
	ReadabilityScore int      `json:"readability_score"`
	EmotionalImpact  string   `json:"emotional_impact"`
	ContrastFeedback string   `json:"contrast_feedback"`
	Suggestions      []string `json:"suggestions"`
}

type PotentialVideo struct {
	Title              string `json:"title"`
	ReasonForPotential string `json:"reason_for_potential"`
	GrowthStrategy     string `json:"growth_strategy"`
}

type CalendarIdea struct {
	Day              string `json:"day"`
	Idea             string `json:"idea"`
	SuggestedTitle   string `json:"suggested_title"`
	ThumbnailConcept string `json:"thumbnail_concept"`
}

// AuditResult is the channel audit report.
type AuditResult struct {
	OverallScore    int               `json:"overall_score"`
	TitleAnalysis   []TitleAnalysis   `json:"title_analysis"`
	ThumbnailReview []ThumbnailReview `json:"thumbnail_review"`
	NicheFocus      string            `json:"niche_focus"`
	PotentialVideos []PotentialVideo  `json:"potential_videos"`
	ContentCalendar []CalendarIdea    `json:"content_calendar"`
}

var auditSchema = schema.Object(
	schema.Field("overall_score", schema.Integer("Overall channel score from 1 to 100 covering clarity, consistency, titles and thumbnails.").Between(1, 100)),
	schema.Field("title_analysis", schema.Array(schema.Object(
		schema.Field("title", schema.String("The original video title.")),
		schema.Field("strengths", schema.StringArray("What works in the title, such as a strong hook.")),
		schema.Field("weaknesses", schema.StringArray("What holds the title back, such as vagueness.")),
		schema.Field("suggestion", schema.String("An improved version of the title.")),
	)).Describe("Analysis of up to 3 recent titles.")),
	schema.Field("thumbnail_review", schema.Array(schema.Object(
		schema.Field("video_title", schema.String("Title of the video the thumbnail belongs to.")),
		schema.Field("readability_score", schema.Integer("Text readability from 1 to 10.").Between(1, 10)),
		schema.Field("emotional_impact", schema.String("The emotion the thumbnail creates.")),
		schema.Field("contrast_feedback", schema.String("Feedback on contrast and visual hierarchy.")),
		schema.Field("suggestions", schema.StringArray("Actionable improvements.")),
	)).Describe("Review of up to 3 recent thumbnails.")),
	schema.Field("niche_focus", schema.String("How clearly the content fits a niche and how to sharpen it.")),
	schema.Field("potential_videos", schema.Array(schema.Object(
		schema.Field("title", schema.String("Title of the video with untapped potential.")),
		schema.Field("reason_for_potential", schema.String("Why the video could perform better.")),
		schema.Field("growth_strategy", schema.String("How to boost the video.")),
	)).Describe("2 to 3 existing videos with growth potential.")),
	schema.Field("content_calendar", schema.Array(schema.Object(
		schema.Field("day", schema.String("Suggested upload day.")),
		schema.Field("idea", schema.String("The core video idea.")),
		schema.Field("suggested_title", schema.String("A clickable title.")),
		schema.Field("thumbnail_concept", schema.String("A thumbnail design concept.")),
	)).Describe("A weekly plan of 3 to 5 upcoming videos.")),
)

var auditSpec = Spec{
	Kind:           KindYouTubeAudit,
	Title:          "Channel Audit",
	Schema:         auditSchema,
	Modality:       TextOnly,
	Localized:      true,
	FailureMessage: "Failed to get audit from AI. Please check the channel URL and try again.",
	newRequest:     func() Request { return &AuditInput{} },
	newResult:      func() interface{} { return &AuditResult{} },
}

func (*AuditInput) Kind() Kind           { return KindYouTubeAudit }
func (*AuditInput) result() *AuditResult { return nil }

func (in *AuditInput) Validate() error {
	return check(in, "Please enter a valid YouTube channel URL.",
		tagMessage{tag: "notblank", message: "Please enter a YouTube channel URL."})
}

func (in *AuditInput) BuildPrompt() string {
	return newPrompt("You are a world-class YouTube channel growth strategist. Perform an advanced, multi-level audit of the channel below.").
		para("You cannot open external websites. Infer the channel's topic from its name and URL and produce a realistic, deep and actionable audit. Keep the tone friendly but professional for beginner and mid-level creators.").
		steps("The audit must include:",
			"**overall_score**: a score from 1 to 100 for content clarity, consistency, titles and thumbnails.",
			"**title_analysis**: 2 to 3 likely recent titles with emotional triggers, hooks, weaknesses and an improved title.",
			"**thumbnail_review**: 2 to 3 likely thumbnails checked for readability, contrast and emotional impact.",
			"**niche_focus**: how clear the niche is and how to improve it.",
			"**potential_videos**: 2 to 3 existing videos with untapped growth potential and why.",
			"**content_calendar**: a weekly plan of 3 to 5 ideas with titles and thumbnail concepts.",
		).
		data("YouTube Channel URL", in.ChannelURL).
		rule().
		finish(auditSchema)
}
