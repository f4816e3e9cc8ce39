package operation

import (
	"github.com/phrazzld/creatortune-gateway/internal/schema"
)

type AboutInput struct {
	textOnly
	AboutText string `json:"aboutText" validate:"notblank"`
}

type AboutResult struct {
	ToneAnalysis                  string   `json:"toneAnalysis"`
	ClarityAndBrandingSuggestions []string `json:"clarityAndBrandingSuggestions"`
	AlignmentWithNiche            string   `json:"alignmentWithNiche"`
	MissingElements               []string `json:"missingElements"`
	OptimizedVersion              string   `json:"optimizedVersion"`
}

var aboutSchema = schema.Object(
	schema.Field("toneAnalysis", schema.String("Analysis of the text's tone.")),
	schema.Field("clarityAndBrandingSuggestions", schema.StringArray("Fixes for clarity, grammar and branding.")),
	schema.Field("alignmentWithNiche", schema.String("How well the text fits the probable niche.")),
	schema.Field("missingElements", schema.StringArray("Missing pieces such as CTAs, contact info or social links.")),
	schema.Field("optimizedVersion", schema.String("A rewritten, improved version.")),
)

var aboutSectionSpec = Spec{
	Kind:           KindAboutSection,
	Title:          "About Section Analyzer",
	Schema:         aboutSchema,
	Modality:       TextOnly,
	Localized:      true,
	FailureMessage: "Failed to get 'About' section analysis from AI. Please check your input and try again.",
	newRequest:     func() Request { return &AboutInput{} },
	newResult:      func() interface{} { return &AboutResult{} },
}

func (*AboutInput) Kind() Kind            { return KindAboutSection }
func (*AboutInput) result() *AboutResult { return nil }

func (in *AboutInput) Validate() error {
	return check(in, `Please paste your "About" section text.`)
}

func (in *AboutInput) BuildPrompt() string {
	return newPrompt("You are an expert YouTube channel strategist who specializes in branding and communication. Analyze the channel's \"About\" section below.").
		block("About section", in.AboutText).
		steps("The analysis must include:",
			"**toneAnalysis**: a detailed read of the tone.",
			"**clarityAndBrandingSuggestions**: actionable fixes for clarity, grammar and branding.",
			"**alignmentWithNiche**: how well it matches the probable channel niche.",
			"**missingElements**: key omissions such as CTAs, contact info or social links.",
			"**optimizedVersion**: a rewritten, improved version of the text.",
		).
		finish(aboutSchema)
}
