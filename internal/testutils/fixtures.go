package testutils

import (
	"bytes"
	"encoding/base64"

	"github.com/phrazzld/creatortune-gateway/internal/operation"
)

// PNGImage wraps payload as an uploaded PNG. The bytes need not be a real
// PNG; only the size and mime type are checked before the call.
func PNGImage(payload string) operation.ImageInput {
	return operation.ImageInput{
		DataURL:  "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte(payload)),
		MIMEType: "image/png",
	}
}

// ImageOfSize returns an uploaded PNG whose decoded payload is exactly n
// bytes.
func ImageOfSize(n int) operation.ImageInput {
	return PNGImage(string(bytes.Repeat([]byte{'x'}, n)))
}

// ValidRequests returns a fresh acceptable input for every operation.
func ValidRequests() map[operation.Kind]operation.Request {
	return map[operation.Kind]operation.Request{
		operation.KindYouTubeAudit: &operation.AuditInput{
			ChannelURL: "https://www.youtube.com/@ThriftyHomestead",
		},
		operation.KindTitleThumbnail: &operation.TitleThumbnailInput{
			Title:     "I Tried Living on $1 a Day",
			Thumbnail: PNGImage("thumbnail"),
		},
		operation.KindContentStrategy: &operation.ContentStrategyInput{
			ChannelURL: "https://youtube.com/c/BudgetBuilds",
		},
		operation.KindAudienceAnalysis: &operation.AudienceInput{
			Titles:       "Budget PC; Best GPU",
			Descriptions: "We build a PC\n---\nWe test GPUs",
			About:        "PC builds on a budget",
		},
		operation.KindContentCalendar: &operation.CalendarInput{
			Niche:        "Home cooking",
			TopTitles:    "5 Minute Pasta",
			StrategyType: operation.StrategyLocal,
		},
		operation.KindBrandingReview: &operation.BrandingInput{
			Name:              "Pixel Pantry",
			Handle:            "pixelpantry",
			PFPDescription:    "Cartoon chef",
			BannerDescription: "Orange kitchen",
			AboutSection:      "Quick recipes",
			VideoTitles:       "5 Minute Pasta",
		},
		operation.KindEngagementHacks: &operation.EngagementInput{
			TitlesAndDescriptions: "5 Minute Pasta - fast dinner",
			ChannelSize:           operation.Size10KTo100K,
		},
		operation.KindScriptGeneration: &operation.ScriptInput{
			Topic:    "Sourdough basics",
			Audience: "New bakers",
			Tone:     operation.ToneStoryteller,
			Platform: operation.FormatShort,
		},
		operation.KindScriptRewrite: &operation.RewriteInput{
			Text: "Today we bake bread.",
			Tone: operation.ToneCasualWitty,
		},
		operation.KindABTest: &operation.ABTestInput{
			OptionA:        operation.ABOption{Title: "Option one", Thumbnail: PNGImage("image-a")},
			OptionB:        operation.ABOption{Title: "Option two", Thumbnail: PNGImage("image-b")},
			TargetAudience: "Home bakers",
		},
		operation.KindPositioningAudit: &operation.PositioningInput{
			Niche:              "Baking",
			Tone:               "Warm",
			About:              "Bread for everyone",
			Titles:             "Sourdough 101",
			SampleComments:     "So calming",
			VisualsDescription: "Pastel colors",
		},
		operation.KindPositionShift: &operation.PositionShiftInput{
			CurrentPositioning: "Calm educational baker",
			DesiredShift:       operation.ShiftEntertaining,
		},
		operation.KindAboutSection: &operation.AboutInput{
			AboutText: "Welcome to my channel about bread.",
		},
		operation.KindRetentionAnalysis: &operation.RetentionInput{
			Script:         "Hook. Body. Outro.",
			TargetAudience: operation.PersonaBeginners,
		},
		operation.KindChatbot: &operation.ChatInput{
			Query:    "Is it free?",
			Language: operation.ChatHinglish,
		},
	}
}
