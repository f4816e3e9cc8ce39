// Package operation is the registry of everything the gateway can generate.
// Each operation is a tagged variant: a Kind, a typed input that validates
// itself and builds its prompt, a typed result, and a Spec carrying the
// output schema and the failure message users see.
package operation

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/phrazzld/creatortune-gateway/internal/generation"
	"github.com/phrazzld/creatortune-gateway/internal/schema"
)

// Kind identifies an operation. It is stable across releases and is used
// for routing, logging and metrics.
type Kind string

const (
	KindYouTubeAudit      Kind = "youtube_audit"
	KindTitleThumbnail    Kind = "title_thumbnail"
	KindContentStrategy   Kind = "content_strategy"
	KindAudienceAnalysis  Kind = "audience_analysis"
	KindContentCalendar   Kind = "content_calendar"
	KindBrandingReview    Kind = "branding_review"
	KindEngagementHacks   Kind = "engagement_hacks"
	KindScriptGeneration  Kind = "script_generation"
	KindScriptRewrite     Kind = "script_rewrite"
	KindABTest            Kind = "ab_test"
	KindPositioningAudit  Kind = "positioning_audit"
	KindPositionShift     Kind = "position_shift"
	KindAboutSection      Kind = "about_section"
	KindRetentionAnalysis Kind = "retention_analysis"
	KindChatbot           Kind = "chatbot"
)

// Modality is the number of images an operation sends alongside its text.
type Modality int

const (
	TextOnly Modality = iota
	SingleImage
	ImagePair
)

func (m Modality) String() string {
	switch m {
	case SingleImage:
		return "single_image"
	case ImagePair:
		return "image_pair"
	default:
		return "text"
	}
}

// Images returns how many attachments the modality carries.
func (m Modality) Images() int {
	return int(m)
}

// Request is implemented by every operation input. The set is closed: only
// this package can add variants.
type Request interface {
	// Kind names the operation the input belongs to.
	Kind() Kind

	// Validate checks the input before anything else happens. Failures are
	// *generation.Error values of KindInput.
	Validate() error

	// BuildPrompt renders the instruction text. It never fails for an input
	// that passed Validate.
	BuildPrompt() string

	// Layout assembles the envelope around an already localized prompt,
	// attaching any images in their required order.
	Layout(prompt string, s *schema.Schema) (*generation.Envelope, error)

	request()
}

// Typed pairs an input with its result type so callers get a compile-time
// checked result from the gateway.
type Typed[R any] interface {
	Request
	result() *R
}

// Spec is the static description of one operation.
type Spec struct {
	Kind Kind

	// Title is a human-readable name for logs and listings.
	Title string

	Schema   *schema.Schema
	Modality Modality

	// Localized reports whether the translation instruction applies. The
	// chatbot carries its own reply language instead.
	Localized bool

	// FailureMessage is shown for transport and validation failures.
	FailureMessage string

	newRequest func() Request
	newResult  func() interface{}
}

// NewRequest returns a pointer to a zero input, ready for JSON decoding.
func (s Spec) NewRequest() Request {
	return s.newRequest()
}

// NewResult returns a pointer to a zero result value.
func (s Spec) NewResult() interface{} {
	return s.newResult()
}

var registry = mustBuildRegistry(
	auditSpec,
	titleThumbnailSpec,
	contentStrategySpec,
	audienceAnalysisSpec,
	contentCalendarSpec,
	brandingReviewSpec,
	engagementHacksSpec,
	scriptGenerationSpec,
	scriptRewriteSpec,
	abTestSpec,
	positioningAuditSpec,
	positionShiftSpec,
	aboutSectionSpec,
	retentionAnalysisSpec,
	chatbotSpec,
)

func mustBuildRegistry(specs ...Spec) map[Kind]Spec {
	out := make(map[Kind]Spec, len(specs))
	for _, s := range specs {
		if _, dup := out[s.Kind]; dup {
			panic(fmt.Sprintf("operation %q registered twice", s.Kind))
		}
		if s.Schema == nil || s.Schema.Type != schema.TypeObject || len(s.Schema.Required) == 0 {
			panic(fmt.Sprintf("operation %q must declare an object schema with required fields", s.Kind))
		}
		if s.newRequest == nil || s.newResult == nil || s.FailureMessage == "" {
			panic(fmt.Sprintf("operation %q is incomplete", s.Kind))
		}
		out[s.Kind] = s
	}
	return out
}

// Lookup returns the spec for kind.
func Lookup(kind Kind) (Spec, bool) {
	s, ok := registry[kind]
	return s, ok
}

// Kinds lists every registered operation in a stable order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// NewRequest returns a zero input for kind.
func NewRequest(kind Kind) (Request, error) {
	spec, ok := Lookup(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return spec.NewRequest(), nil
}

// ErrUnknownKind is returned for names that are not registered.
var ErrUnknownKind = errors.New("unknown operation")

// DecodeRequest builds the typed input for kind from a JSON document.
func DecodeRequest(kind Kind, raw json.RawMessage) (Request, error) {
	req, err := NewRequest(kind)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return req, nil
	}
	if err := json.Unmarshal(raw, req); err != nil {
		return nil, generation.NewInputError("The request could not be read. Please check your inputs and try again.", err)
	}
	return req, nil
}

// textOnly supplies Layout for operations without attachments.
type textOnly struct{}

func (textOnly) request() {}

func (textOnly) Layout(prompt string, s *schema.Schema) (*generation.Envelope, error) {
	return generation.NewEnvelope(prompt, s), nil
}
