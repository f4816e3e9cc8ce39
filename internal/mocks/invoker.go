package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/creatortune-gateway/internal/generation"
)

// MockInvoker implements generation.Invoker for testing.
type MockInvoker struct {
	// InvokeFn allows test cases to mock the Invoke behavior
	InvokeFn func(ctx context.Context, env *generation.Envelope) (string, error)

	// Default response values
	Response string
	Err      error

	mu        sync.Mutex
	envelopes []*generation.Envelope
}

// Invoke implements the generation.Invoker interface
func (m *MockInvoker) Invoke(ctx context.Context, env *generation.Envelope) (string, error) {
	m.mu.Lock()
	m.envelopes = append(m.envelopes, env)
	m.mu.Unlock()

	if m.InvokeFn != nil {
		return m.InvokeFn(ctx, env)
	}
	return m.Response, m.Err
}

// Calls returns how many times Invoke was called.
func (m *MockInvoker) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.envelopes)
}

// Envelopes returns the envelopes passed to Invoke, in call order.
func (m *MockInvoker) Envelopes() []*generation.Envelope {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*generation.Envelope(nil), m.envelopes...)
}

// LastEnvelope returns the most recent envelope, or nil.
func (m *MockInvoker) LastEnvelope() *generation.Envelope {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.envelopes) == 0 {
		return nil
	}
	return m.envelopes[len(m.envelopes)-1]
}

// Reset resets the call tracking state
func (m *MockInvoker) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.envelopes = nil
}

// MockConnector implements generation.Connector for testing.
type MockConnector struct {
	// ConnectFn allows test cases to mock the Connect behavior
	ConnectFn func(ctx context.Context) (generation.Invoker, error)

	// Invoker is returned when Err is nil.
	Invoker generation.Invoker
	Err     error

	mu    sync.Mutex
	calls int
}

// Connect implements the generation.Connector interface
func (m *MockConnector) Connect(ctx context.Context) (generation.Invoker, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.ConnectFn != nil {
		return m.ConnectFn(ctx)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Invoker, nil
}

// Calls returns how many times Connect was called.
func (m *MockConnector) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// NewMockConnector wires a connector to an invoker that returns response.
func NewMockConnector(response string) (*MockConnector, *MockInvoker) {
	inv := &MockInvoker{Response: response}
	return &MockConnector{Invoker: inv}, inv
}

// MockConnectorWithoutCredential fails every Connect with a configuration
// error.
func MockConnectorWithoutCredential() *MockConnector {
	return &MockConnector{Err: generation.NewConfigurationError(nil)}
}
