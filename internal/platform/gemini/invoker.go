package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/phrazzld/creatortune-gateway/internal/generation"
)

// responseMIMEType asks the model for a bare JSON document.
const responseMIMEType = "application/json"

// ContentGenerator is the part of the genai client the Invoker uses.
// *genai.Models satisfies it.
type ContentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// Invoker sends one envelope per call to a Gemini model. It implements
// generation.Invoker.
type Invoker struct {
	models ContentGenerator
	model  string
	logger *zap.Logger
}

// NewInvoker binds models to the named model.
func NewInvoker(models ContentGenerator, model string, logger *zap.Logger) *Invoker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Invoker{models: models, model: model, logger: logger}
}

// Invoke issues exactly one GenerateContent request for env and returns the
// first candidate's text. Failed, blocked and empty responses are returned
// as errors; the caller decides how to report them.
func (i *Invoker) Invoke(ctx context.Context, env *generation.Envelope) (string, error) {
	if env == nil {
		return "", errors.New("gemini: nil envelope")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	contents := []*genai.Content{genai.NewContentFromParts(toParts(env.Parts), genai.RoleUser)}
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: responseMIMEType,
		ResponseSchema:   ConvertSchema(env.Schema),
	}
	if env.SystemInstruction != "" {
		cfg.SystemInstruction = genai.NewContentFromText(env.SystemInstruction, genai.RoleUser)
	}

	start := time.Now()
	resp, err := i.models.GenerateContent(ctx, i.model, contents, cfg)
	elapsed := time.Since(start)
	if err != nil {
		i.logger.Warn("gemini call failed",
			zap.String("model", i.model),
			zap.Duration("elapsed", elapsed),
			zap.Error(err))
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		i.logger.Warn("gemini returned no usable content",
			zap.String("model", i.model),
			zap.Duration("elapsed", elapsed),
			zap.Error(err))
		return "", err
	}

	i.logger.Debug("gemini call succeeded",
		zap.String("model", i.model),
		zap.Duration("elapsed", elapsed),
		zap.Int("response_length", len(text)))
	return text, nil
}

func toParts(parts []generation.Part) []*genai.Part {
	out := make([]*genai.Part, 0, len(parts))
	for _, p := range parts {
		if p.IsImage() {
			out = append(out, genai.NewPartFromBytes(p.Image.Data, p.Image.MIMEType))
			continue
		}
		out = append(out, genai.NewPartFromText(p.Text))
	}
	return out
}

var blockedFinishes = map[genai.FinishReason]bool{
	genai.FinishReasonSafety:            true,
	genai.FinishReasonBlocklist:         true,
	genai.FinishReasonProhibitedContent: true,
	genai.FinishReasonSPII:              true,
	genai.FinishReasonImageSafety:       true,
}

// responseText extracts the text of the first candidate, skipping thought
// parts.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", ErrNilResponse
	}
	if fb := resp.PromptFeedback; fb != nil && fb.BlockReason != "" && fb.BlockReason != genai.BlockedReasonUnspecified {
		return "", fmt.Errorf("%w: prompt blocked (%s) %s", ErrContentBlocked, fb.BlockReason, fb.BlockReasonMessage)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return "", ErrNoCandidates
	}

	candidate := resp.Candidates[0]
	if blockedFinishes[candidate.FinishReason] {
		return "", fmt.Errorf("%w: finish reason %s", ErrContentBlocked, candidate.FinishReason)
	}
	if candidate.Content == nil {
		return "", ErrEmptyContent
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		b.WriteString(part.Text)
	}
	if strings.TrimSpace(b.String()) == "" {
		return "", ErrEmptyContent
	}
	return b.String(), nil
}
