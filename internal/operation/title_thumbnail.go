package operation

import (
	"github.com/phrazzld/creatortune-gateway/internal/generation"
	"github.com/phrazzld/creatortune-gateway/internal/schema"
)

// ImageInput is an uploaded image as the browser supplies it: a data URL and
// the mime type tracked separately.
type ImageInput struct {
	DataURL  string `json:"dataUrl" validate:"notblank"`
	MIMEType string `json:"mimeType" validate:"notblank"`
}

// attach decodes the upload, mapping failures onto user-facing input errors.
func (img ImageInput) attach() (generation.Image, error) {
	parsed, err := generation.ParseImage(img.DataURL, img.MIMEType)
	if err != nil {
		return generation.Image{}, generation.NewInputError(generation.ImageErrorMessage(err), err)
	}
	return parsed, nil
}

// TitleThumbnailInput pairs a title with its thumbnail for a CTR review.
type TitleThumbnailInput struct {
	Title     string     `json:"title" validate:"notblank"`
	Thumbnail ImageInput `json:"thumbnail"`
}

type ThumbnailSuggestions struct {
	EmotionUse      string `json:"emotion_use"`
	Clutter         string `json:"clutter"`
	TextReadability string `json:"text_readability"`
	ColorAdvice     string `json:"color_advice"`
	TitleMatch      string `json:"title_match"`
	CTRPrediction   string `json:"ctr_prediction"`
}

type TitleThumbnailResult struct {
	CTRRating            float64              `json:"ctrRating"`
	Analysis             string               `json:"analysis"`
	SuggestedTitle       string               `json:"suggestedTitle"`
	ThumbnailSuggestions ThumbnailSuggestions `json:"thumbnailSuggestions"`
}

var levels = []string{"Low", "Medium", "High"}

var titleThumbnailSchema = schema.Object(
	schema.Field("ctrRating", schema.Number("Click-through potential from 1 to 10.").Between(1, 10)),
	schema.Field("analysis", schema.String("Reasoning behind the rating.")),
	schema.Field("suggestedTitle", schema.String("A more clickable title on the same topic.")),
	schema.Field("thumbnailSuggestions", schema.Object(
		schema.Field("emotion_use", schema.String("How the thumbnail uses emotion and how to improve it.")),
		schema.Field("clutter", schema.String("Visual clutter and what to remove.")),
		schema.Field("text_readability", schema.String("Font choice, size and placement on mobile.")),
		schema.Field("color_advice", schema.String("High-converting color combinations for the topic.")),
		schema.Field("title_match", schema.String("How well the image matches the title's promise.")),
		schema.Field("ctr_prediction", schema.Enum("Predicted CTR category.", levels...)),
	).Describe("In-depth thumbnail suggestions.")),
)

var titleThumbnailSpec = Spec{
	Kind:           KindTitleThumbnail,
	Title:          "Title & Thumbnail Optimizer",
	Schema:         titleThumbnailSchema,
	Modality:       SingleImage,
	Localized:      true,
	FailureMessage: "Failed to get thumbnail audit from AI. Please check your inputs and try again.",
	newRequest:     func() Request { return &TitleThumbnailInput{} },
	newResult:      func() interface{} { return &TitleThumbnailResult{} },
}

func (*TitleThumbnailInput) request()                       {}
func (*TitleThumbnailInput) Kind() Kind                     { return KindTitleThumbnail }
func (*TitleThumbnailInput) result() *TitleThumbnailResult { return nil }

func (in *TitleThumbnailInput) Validate() error {
	if err := check(in, "Please provide both a title and a thumbnail image."); err != nil {
		return err
	}
	_, err := in.Thumbnail.attach()
	return err
}

func (in *TitleThumbnailInput) BuildPrompt() string {
	return newPrompt("You are a world-class YouTube growth consultant who specializes in click-through rate. A creator has shared a video title and the thumbnail attached to this message.").
		data("Video title", in.Title).
		rule().
		steps("Analyze the title and thumbnail together and produce:",
			"**ctrRating**: a score from 1 (very poor) to 10 (perfect) for the combination's click-through potential.",
			"**analysis**: one insightful paragraph covering clarity, emotional hook, curiosity gap, visual hierarchy, branding and text readability.",
			"**suggestedTitle**: a stronger, search-friendly title that keeps the original topic.",
			"**thumbnailSuggestions**: emotion_use, clutter, text_readability, color_advice, title_match and a ctr_prediction of Low, Medium or High.",
		).
		finish(titleThumbnailSchema)
}

func (in *TitleThumbnailInput) Layout(prompt string, s *schema.Schema) (*generation.Envelope, error) {
	img, err := in.Thumbnail.attach()
	if err != nil {
		return nil, err
	}
	return generation.NewEnvelope(prompt, s, img), nil
}
