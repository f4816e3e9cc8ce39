package operation

import (
	"strings"

	"github.com/phrazzld/creatortune-gateway/internal/schema"
)

// StrategyType picks between a broad and an India-focused calendar.
type StrategyType string

const (
	StrategyGlobal StrategyType = "Global"
	StrategyLocal  StrategyType = "Local (India-based)"
)

func (s StrategyType) Valid() bool {
	return s == StrategyGlobal || s == StrategyLocal
}

// DefaultAudienceBehavior is used when the creator leaves audience behavior
// empty.
const DefaultAudienceBehavior = "Assume a general audience pattern: higher engagement on evenings and weekends."

// CalendarInput asks for a personalized 7-day calendar.
type CalendarInput struct {
	textOnly
	Niche            string       `json:"niche" validate:"notblank"`
	TopTitles        string       `json:"topTitles" validate:"notblank"`
	AudienceBehavior string       `json:"audienceBehavior"`
	StrategyType     StrategyType `json:"strategyType" validate:"known"`
}

type CalendarFormat struct {
	Type      string `json:"type"`
	Reasoning string `json:"reasoning"`
}

type PredictedOutcomes struct {
	Reach            string `json:"reach"`
	Engagement       string `json:"engagement"`
	SubscriberImpact string `json:"subscriberImpact"`
}

type CalendarDay struct {
	Day               string            `json:"day"`
	Objective         string            `json:"objective"`
	PublishTime       string            `json:"publishTime"`
	Format            CalendarFormat    `json:"format"`
	Idea              string            `json:"idea"`
	Hooks             []string          `json:"hooks"`
	PredictedOutcomes PredictedOutcomes `json:"predictedOutcomes"`
	Title             string            `json:"title"`
}

type CalendarResult struct {
	StrategyType StrategyType  `json:"strategyType"`
	Calendar     []CalendarDay `json:"calendar"`
}

var calendarSchema = schema.Object(
	schema.Field("strategyType", schema.Enum("The strategy the calendar follows.", string(StrategyGlobal), string(StrategyLocal))),
	schema.Field("calendar", schema.Array(schema.Object(
		schema.Field("day", schema.String("Day of the week.")),
		schema.Field("objective", schema.Enum("The goal of the day's content.",
			"Grow Subscribers", "Build Trust", "Boost Views", "Drive Comments", "Engage Community")),
		schema.Field("publishTime", schema.String("Best time to publish, with time zone.")),
		schema.Field("format", schema.Object(
			schema.Field("type", schema.Enum("Content format.",
				"Long-form Video", "YouTube Short", "Live Stream", "Community Post", "Poll")),
			schema.Field("reasoning", schema.String("Why the format suits the objective.")),
		)),
		schema.Field("idea", schema.String("The content idea.")),
		schema.Field("hooks", schema.StringArray("1 to 2 opening hooks.")),
		schema.Field("predictedOutcomes", schema.Object(
			schema.Field("reach", schema.String("")),
			schema.Field("engagement", schema.String("")),
			schema.Field("subscriberImpact", schema.String("")),
		)),
		schema.Field("title", schema.String("Optimized title for the piece.")),
	)).Describe("Exactly 7 days.")),
)

var contentCalendarSpec = Spec{
	Kind:           KindContentCalendar,
	Title:          "Content Calendar",
	Schema:         calendarSchema,
	Modality:       TextOnly,
	Localized:      true,
	FailureMessage: "Failed to generate content calendar. Please check your inputs and try again.",
	newRequest:     func() Request { return &CalendarInput{StrategyType: StrategyGlobal} },
	newResult:      func() interface{} { return &CalendarResult{} },
}

func (*CalendarInput) Kind() Kind               { return KindContentCalendar }
func (*CalendarInput) result() *CalendarResult { return nil }

func (in *CalendarInput) Validate() error {
	return check(in, "Please fill in both the niche and top titles.",
		tagMessage{tag: "known", message: "Please choose a Global or Local (India-based) strategy."})
}

func (in *CalendarInput) BuildPrompt() string {
	behavior := strings.TrimSpace(in.AudienceBehavior)
	if behavior == "" {
		behavior = DefaultAudienceBehavior
	}

	return newPrompt("Act as an expert YouTube growth strategist and data analyst. Using the channel's niche, top titles, audience behavior and strategy type, create an advanced 7-day personalized content calendar.").
		data("Channel Niche", in.Niche).
		data("Top Video Titles (for context)", in.TopTitles).
		data("Audience Behavior & Activity", behavior).
		data("Strategy Type", string(in.StrategyType)).
		rule().
		steps("For each of the 7 days provide:",
			"an **objective**: Grow Subscribers, Build Trust, Boost Views, Drive Comments or Engage Community.",
			"a **publishTime**: a general time such as 4:00 PM EST for Global, or a specific IST time that respects local trends for Local (India-based).",
			"a **format** (Long-form Video, YouTube Short, Live Stream, Community Post or Poll) with the reasoning for that day's objective.",
			"the **idea** and 1 to 2 viral **hooks**.",
			"**predictedOutcomes** for reach, engagement and subscriberImpact.",
			"an optimized **title**.",
		).
		para("For Local (India-based), weave in culturally relevant themes, Hinglish or local events where they fit. For Global, keep themes broad. Echo the chosen strategy in strategyType.").
		finish(calendarSchema)
}
