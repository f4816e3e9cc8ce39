package operation

import (
	"strings"

	"github.com/phrazzld/creatortune-gateway/internal/schema"
)

type BrandingInput struct {
	textOnly
	Name              string `json:"name" validate:"notblank"`
	Handle            string `json:"handle" validate:"notblank"`
	PFPDescription    string `json:"pfpDescription" validate:"notblank"`
	BannerDescription string `json:"bannerDescription" validate:"notblank"`
	AboutSection      string `json:"aboutSection" validate:"notblank"`
	VideoTitles       string `json:"videoTitles" validate:"notblank"`
}

type BrandingResult struct {
	Rating      float64  `json:"rating"`
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
	Suggestions []string `json:"suggestions"`
}

var brandingSchema = schema.Object(
	schema.Field("rating", schema.Number("Branding consistency and appeal out of 10.").Between(0, 10)),
	schema.Field("strengths", schema.StringArray("Exactly 3 strengths.")),
	schema.Field("weaknesses", schema.StringArray("Exactly 3 weak points or mismatches.")),
	schema.Field("suggestions", schema.StringArray("Exactly 3 actionable suggestions.")),
)

var brandingReviewSpec = Spec{
	Kind:           KindBrandingReview,
	Title:          "Branding Review",
	Schema:         brandingSchema,
	Modality:       TextOnly,
	Localized:      true,
	FailureMessage: "Failed to generate branding review. Please check your inputs and try again.",
	newRequest:     func() Request { return &BrandingInput{} },
	newResult:      func() interface{} { return &BrandingResult{} },
}

func (*BrandingInput) Kind() Kind               { return KindBrandingReview }
func (*BrandingInput) result() *BrandingResult { return nil }

func (in *BrandingInput) Validate() error {
	return check(in, "Please fill in all fields to get a complete branding review.")
}

func (in *BrandingInput) BuildPrompt() string {
	handle := "@" + strings.TrimPrefix(strings.TrimSpace(in.Handle), "@")

	return newPrompt("You are an expert YouTube brand strategist. Review and rate the overall branding of the channel described below.").
		data("Channel Name", in.Name).
		data("Channel Handle", handle).
		data("Profile Picture Description", in.PFPDescription).
		data("Channel Banner Description", in.BannerDescription).
		data("About Section", in.AboutSection).
		data("Example Video Titles", in.VideoTitles).
		rule().
		steps("The review must include:",
			"**rating**: consistency and appeal of the branding out of 10.",
			"**strengths**: exactly 3.",
			"**weaknesses**: exactly 3 weak points or mismatches.",
			"**suggestions**: exactly 3 specific, beginner-friendly improvements.",
		).
		finish(brandingSchema)
}
