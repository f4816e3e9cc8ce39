package generation

import "context"

// Invoker performs the single outbound call for an envelope and returns the
// model's raw text. Implementations must not retry.
type Invoker interface {
	// Invoke sends the envelope's parts with its schema as the response
	// constraint.
	//
	// Parameters:
	//   - ctx: Context for the call, honored for cancellation
	//   - env: The fully built request
	//
	// Returns:
	//   - The raw response text, untrimmed
	//   - An error if the call failed or produced no text
	Invoke(ctx context.Context, env *Envelope) (string, error)
}

// Connector hands out an Invoker bound to a validated credential. It fails
// with a *Error of KindConfiguration when no usable credential exists, and
// does so on every call until one is configured.
type Connector interface {
	Connect(ctx context.Context) (Invoker, error)
}
