package operation

import (
	"strings"

	"github.com/phrazzld/creatortune-gateway/internal/generation"
	"github.com/phrazzld/creatortune-gateway/internal/schema"
)

// ChatLanguage is the language the assistant replies in. It is independent
// of the result language used by the other operations.
type ChatLanguage string

const (
	ChatHinglish ChatLanguage = "hinglish"
	ChatEnglish  ChatLanguage = "english"
)

func (c ChatLanguage) Valid() bool {
	return c == ChatHinglish || c == ChatEnglish
}

func (c ChatLanguage) instruction() string {
	if c == ChatHinglish {
		return "Your primary language is Hinglish (a mix of casual Hindi and English). Use Roman script for Hindi words (e.g., 'Kaise ho?'). Be friendly and encouraging, like a 'buddy'."
	}
	return "Your primary language is professional but friendly English. Be clear and concise."
}

// ChatTurn is one earlier exchange the caller wants the assistant to see.
type ChatTurn struct {
	Role string `json:"role" validate:"oneof=user assistant"`
	Text string `json:"text" validate:"notblank"`
}

// MaxChatHistory bounds the turns threaded into one prompt.
const MaxChatHistory = 10

type ChatInput struct {
	Query    string       `json:"query" validate:"notblank"`
	Language ChatLanguage `json:"language" validate:"known"`
	History  []ChatTurn   `json:"history,omitempty" validate:"max=10,dive"`
}

type ChatResult struct {
	Reply            string   `json:"reply"`
	SuggestedReplies []string `json:"suggestedReplies"`
}

var chatSchema = schema.Object(
	schema.Field("reply", schema.String("The answer to the user's query.")),
	schema.Field("suggestedReplies", schema.StringArray("2 to 3 short follow-up replies the user could send.")),
)

const knowledgeBase = `You are 'CreatorTune Buddy', a helpful AI assistant for the CreatorTune website.
%s

You know every CreatorTune feature:
- Channel Audit: a quick overall score and analysis of a YouTube channel.
- Title & Thumbnail Optimizer: a CTR score and suggestions for a title and thumbnail pair.
- Content Strategy/Ideas: viral video ideas with deep analysis.
- Audience Analyzer: a detailed profile of a channel's target audience.
- Content Calendar: a week of content with ideas and posting times.
- Branding Review: checks branding consistency.
- Engagement Hacks: ways to boost comments, likes and shares.
- Script Generator: full video scripts.
- A/B Tester: compares two thumbnails and titles.
- Retention Analyzer: finds the boring parts of a script before filming.
- Positioning Map: helps find a unique niche.
- 'About' Section Analyzer: improves the channel's About page.
- Thumbnail Library: downloadable thumbnail templates.

General FAQs:
- The tool is free while in testing. Most features need no login.
- It is safe and never asks to connect a YouTube account.
- Reports can be downloaded as PDF or JSON from each tool's page.
- To reach a human, use the contact form.

Your tasks:
1. Understand the user's query, which may be in English, Hindi or Hinglish.
2. Put a helpful, concise answer from this knowledge in reply.
3. ALWAYS include 2 to 3 short, relevant suggestedReplies to guide the conversation.
4. If you do not know the answer, say so politely and suggest talking to a human.`

var chatbotSpec = Spec{
	Kind:           KindChatbot,
	Title:          "CreatorTune Buddy",
	Schema:         chatSchema,
	Modality:       TextOnly,
	Localized:      false,
	FailureMessage: "Sorry, I'm having a little trouble thinking right now. Please try again in a moment.",
	newRequest:     func() Request { return &ChatInput{Language: ChatEnglish} },
	newResult:      func() interface{} { return &ChatResult{} },
}

func (*ChatInput) request()            {}
func (*ChatInput) Kind() Kind          { return KindChatbot }
func (*ChatInput) result() *ChatResult { return nil }

func (in *ChatInput) Validate() error {
	return check(in, "Please type a question for CreatorTune Buddy.",
		tagMessage{tag: "known", message: "Please choose Hinglish or English for the chat."})
}

// SystemInstruction is the assistant persona for the chosen reply language.
func (in *ChatInput) SystemInstruction() string {
	return strings.Replace(knowledgeBase, "%s", in.Language.instruction(), 1)
}

func (in *ChatInput) BuildPrompt() string {
	p := &promptWriter{}
	if len(in.History) > 0 {
		p.b.WriteString("Conversation so far:\n")
		for _, turn := range in.History {
			label := "User"
			if turn.Role == "assistant" {
				label = "Buddy"
			}
			p.b.WriteString(label + ": " + strings.TrimSpace(turn.Text) + "\n")
		}
		p.b.WriteString("\n")
	}
	p.para(`User's query: "%s"`, in.Query)
	return p.finish(chatSchema)
}

func (in *ChatInput) Layout(prompt string, s *schema.Schema) (*generation.Envelope, error) {
	env := generation.NewEnvelope(prompt, s)
	env.SystemInstruction = in.SystemInstruction()
	return env, nil
}
