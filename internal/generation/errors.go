package generation

import (
	"errors"
	"fmt"
)

// ErrorKind is the closed set of failure categories a caller of the gateway
// can observe.
type ErrorKind string

const (
	// KindConfiguration means the credential is missing or unset.
	KindConfiguration ErrorKind = "ConfigurationError"

	// KindInput means a domain input failed a pre-call validation rule.
	// No network call was made.
	KindInput ErrorKind = "InputError"

	// KindTransport means the outbound call failed, was blocked, or
	// returned nothing usable.
	KindTransport ErrorKind = "TransportError"

	// KindValidation means the response was not JSON or did not match the
	// declared schema.
	KindValidation ErrorKind = "ValidationError"
)

// Sentinels for errors.Is matching against an *Error of the same kind.
var (
	ErrConfiguration = errors.New("gateway configuration error")
	ErrInput         = errors.New("invalid operation input")
	ErrTransport     = errors.New("remote generation call failed")
	ErrValidation    = errors.New("invalid response from language model")
)

// MissingCredentialMessage is surfaced verbatim so an operator can fix the
// deployment.
const MissingCredentialMessage = "API Key is not configured. Please set the CREATORTUNE_LLM_GEMINI_API_KEY environment variable in your .env file."

// Error is the only error type that crosses the gateway boundary.
type Error struct {
	Kind ErrorKind

	// Message is stable and safe to show to end users.
	Message string

	// Op names the operation that failed, when known.
	Op string

	// Err is the internal cause. It is kept for logging and never rendered
	// to users.
	Err error
}

func (e *Error) Error() string {
	var prefix string
	if e.Op != "" {
		prefix = e.Op + ": "
	}
	if e.Err != nil {
		return fmt.Sprintf("%s%s: %s (%v)", prefix, e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s%s: %s", prefix, e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error's kind.
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindConfiguration:
		return ErrConfiguration
	case KindInput:
		return ErrInput
	case KindTransport:
		return ErrTransport
	case KindValidation:
		return ErrValidation
	default:
		return nil
	}
}

// NewConfigurationError reports a missing or placeholder credential.
func NewConfigurationError(cause error) *Error {
	return &Error{Kind: KindConfiguration, Message: MissingCredentialMessage, Err: cause}
}

// NewInputError reports a rejected input with a user-facing message.
func NewInputError(message string, cause error) *Error {
	return &Error{Kind: KindInput, Message: message, Err: cause}
}

// NewTransportError reports a failed outbound call.
func NewTransportError(message string, cause error) *Error {
	return &Error{Kind: KindTransport, Message: message, Err: cause}
}

// NewValidationError reports an unusable response.
func NewValidationError(message string, cause error) *Error {
	return &Error{Kind: KindValidation, Message: message, Err: cause}
}

// KindOf returns the kind of a gateway error, or "" for anything else.
func KindOf(err error) ErrorKind {
	var gerr *Error
	if errors.As(err, &gerr) {
		return gerr.Kind
	}
	return ""
}
