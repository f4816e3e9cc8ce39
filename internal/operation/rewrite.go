package operation

import (
	"github.com/phrazzld/creatortune-gateway/internal/schema"
)

// RewriteInput is a selected script segment to rephrase three ways.
type RewriteInput struct {
	textOnly
	Text string     `json:"text" validate:"notblank"`
	Tone ScriptTone `json:"tone" validate:"known"`
}

type RewriteResult struct {
	Shorter          string `json:"shorter"`
	MoreProfessional string `json:"more_professional"`
	Funnier          string `json:"funnier"`
}

var rewriteSchema = schema.Object(
	schema.Field("shorter", schema.String("A more concise version.")),
	schema.Field("more_professional", schema.String("A more formal, professional version.")),
	schema.Field("funnier", schema.String("A wittier version that still fits the tone.")),
)

var scriptRewriteSpec = Spec{
	Kind:           KindScriptRewrite,
	Title:          "Script Rewrite",
	Schema:         rewriteSchema,
	Modality:       TextOnly,
	Localized:      true,
	FailureMessage: "Failed to rewrite text. Please try again.",
	newRequest:     func() Request { return &RewriteInput{Tone: ToneProfessional} },
	newResult:      func() interface{} { return &RewriteResult{} },
}

func (*RewriteInput) Kind() Kind              { return KindScriptRewrite }
func (*RewriteInput) result() *RewriteResult { return nil }

func (in *RewriteInput) Validate() error {
	return check(in, "Please select some text to rewrite.",
		tagMessage{tag: "known", message: "Please choose a supported tone."})
}

func (in *RewriteInput) BuildPrompt() string {
	return newPrompt("You are an expert copy editor. A creator selected a passage from a script and wants it rewritten in a few different ways.").
		para("The overall tone of the script is %q.", string(in.Tone)).
		data("Original Text", in.Text).
		rule().
		steps("Provide three variations:",
			"**shorter**: a more concise version.",
			"**more_professional**: a more formal and professional version.",
			"**funnier**: a wittier version that still fits the overall tone.",
		).
		finish(rewriteSchema)
}
