// Package gateway runs structured generation operations end to end.
//
// A call flows through a fixed pipeline: the operation is looked up and its
// input validated, the prompt is built and localized, the envelope is laid
// out with any images, a connected Invoker makes exactly one remote call,
// and the raw text is decoded against the operation's schema. Every failure
// along the way is reported as a *generation.Error of one of four kinds, so
// callers never have to inspect transport or parser errors.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/phrazzld/creatortune-gateway/internal/generation"
	"github.com/phrazzld/creatortune-gateway/internal/localization"
	"github.com/phrazzld/creatortune-gateway/internal/metrics"
	"github.com/phrazzld/creatortune-gateway/internal/operation"
	"github.com/phrazzld/creatortune-gateway/internal/platform/logger"
	"github.com/phrazzld/creatortune-gateway/internal/redact"
	"github.com/phrazzld/creatortune-gateway/internal/schema"
)

// Input error messages raised by the gateway itself. Operation inputs carry
// their own messages.
const (
	MsgUnknownOperation    = "This tool is not available. Please choose another one."
	MsgUnsupportedLanguage = "Please choose a supported language."
	MsgMissingInput        = "Please fill in the required fields and try again."
)

// Gateway executes operations against a remote model. It holds no per-call
// state and is safe for concurrent use.
type Gateway struct {
	connector generation.Connector
	logger    *zap.Logger
	metrics   *metrics.Metrics
}

// Option customizes a Gateway.
type Option func(*Gateway)

// WithLogger sets the fallback logger used when a call's context carries
// none.
func WithLogger(l *zap.Logger) Option {
	return func(g *Gateway) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithMetrics records every call on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(g *Gateway) {
		g.metrics = m
	}
}

// New creates a gateway that obtains its Invoker from connector on every
// call.
func New(connector generation.Connector, opts ...Option) *Gateway {
	g := &Gateway{
		connector: connector,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Execute runs req and returns a pointer to the operation's result type.
// lang is a language code; empty means English.
func (g *Gateway) Execute(ctx context.Context, req operation.Request, lang string) (interface{}, error) {
	start := time.Now()
	kind := operation.Kind("")
	if req != nil {
		kind = req.Kind()
	}

	result, err := g.execute(ctx, req, lang)

	log := logger.FromContextOrDefault(ctx, g.logger).With(
		zap.String("operation", string(kind)),
		zap.String("language", lang),
		zap.Duration("elapsed", time.Since(start)),
	)
	outcome := metrics.OutcomeSuccess
	if err != nil {
		outcome = string(generation.KindOf(err))
		fields := []zap.Field{zap.String("error_kind", outcome), redact.ErrorField(err)}
		var verr *schema.ValidationError
		if errors.As(err, &verr) {
			fields = append(fields, zap.Strings("violations", verr.Fields()))
		}
		if generation.KindOf(err) == generation.KindInput {
			log.Info("operation rejected", fields...)
		} else {
			log.Error("operation failed", fields...)
		}
	} else {
		log.Info("operation completed")
	}
	g.metrics.ObserveCall(string(kind), outcome, time.Since(start))

	return result, err
}

func (g *Gateway) execute(ctx context.Context, req operation.Request, lang string) (interface{}, error) {
	if req == nil {
		return nil, generation.NewInputError(MsgMissingInput, errors.New("nil request"))
	}

	spec, ok := operation.Lookup(req.Kind())
	if !ok {
		return nil, withOp(generation.NewInputError(MsgUnknownOperation, operation.ErrUnknownKind), req.Kind())
	}

	language, err := localization.Parse(lang)
	if err != nil {
		return nil, withOp(generation.NewInputError(MsgUnsupportedLanguage, err), spec.Kind)
	}

	if err := req.Validate(); err != nil {
		return nil, withOp(asKind(err, generation.KindInput, MsgMissingInput), spec.Kind)
	}

	prompt := req.BuildPrompt()
	if spec.Localized {
		prompt = localization.Append(prompt, language)
	}

	env, err := req.Layout(prompt, spec.Schema)
	if err != nil {
		return nil, withOp(asKind(err, generation.KindInput, MsgMissingInput), spec.Kind)
	}

	invoker, err := g.connector.Connect(ctx)
	if err != nil {
		return nil, withOp(asKind(err, generation.KindConfiguration, generation.MissingCredentialMessage), spec.Kind)
	}

	g.metrics.RemoteCall(string(spec.Kind))
	raw, err := invoker.Invoke(ctx, env)
	if err != nil {
		return nil, withOp(generation.NewTransportError(spec.FailureMessage, err), spec.Kind)
	}

	out := spec.NewResult()
	if err := schema.Decode(raw, spec.Schema, out); err != nil {
		return nil, withOp(generation.NewValidationError(spec.FailureMessage, err), spec.Kind)
	}
	return out, nil
}

// Run executes req and returns its typed result.
func Run[R any](ctx context.Context, g *Gateway, req operation.Typed[R], lang string) (*R, error) {
	out, err := g.Execute(ctx, req, lang)
	if err != nil {
		return nil, err
	}
	return typedResult[R](req.Kind(), out)
}

// typedResult asserts out to *R. A mismatch means the registry and the
// request disagree and is reported as a validation error.
func typedResult[R any](kind operation.Kind, out interface{}) (*R, error) {
	if result, ok := out.(*R); ok {
		return result, nil
	}
	message := MsgUnknownOperation
	if spec, ok := operation.Lookup(kind); ok {
		message = spec.FailureMessage
	}
	cause := fmt.Errorf("%s produced %T, want *%T", kind, out, *new(R))
	return nil, withOp(generation.NewValidationError(message, cause), kind)
}

// asKind keeps a gateway error of the expected kind and wraps anything else.
func asKind(err error, kind generation.ErrorKind, message string) *generation.Error {
	var gerr *generation.Error
	if errors.As(err, &gerr) && gerr.Kind == kind {
		return gerr
	}
	return &generation.Error{Kind: kind, Message: message, Err: err}
}

// withOp returns a copy of err naming the operation. Connectors may hand out
// a shared error value, so it is never modified in place.
func withOp(err *generation.Error, kind operation.Kind) *generation.Error {
	out := *err
	if out.Op == "" {
		out.Op = string(kind)
	}
	return &out
}
