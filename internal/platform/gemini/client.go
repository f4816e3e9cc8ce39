package gemini

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/phrazzld/creatortune-gateway/internal/config"
	"github.com/phrazzld/creatortune-gateway/internal/generation"
)

// placeholderKey is what a misconfigured frontend build substitutes for an
// unset variable.
const placeholderKey = "undefined"

// HasCredential reports whether key is usable as a Gemini API key.
func HasCredential(key string) bool {
	key = strings.TrimSpace(key)
	return key != "" && key != placeholderKey
}

// ClientFactory guards the API credential and builds the shared genai
// client. It implements generation.Connector and is safe for concurrent use.
type ClientFactory struct {
	config     config.LLMConfig
	httpClient *http.Client
	logger     *zap.Logger

	mu     sync.Mutex
	client *genai.Client
}

// Option customizes a ClientFactory.
type Option func(*ClientFactory)

// WithHTTPClient sets the HTTP client the genai client sends requests with.
func WithHTTPClient(c *http.Client) Option {
	return func(f *ClientFactory) {
		f.httpClient = c
	}
}

// WithLogger sets the logger handed to every Invoker.
func WithLogger(l *zap.Logger) Option {
	return func(f *ClientFactory) {
		if l != nil {
			f.logger = l
		}
	}
}

// NewClientFactory creates a factory for cfg. No client is built and the
// credential is not checked until the first call to Client or Connect, so a
// server can start without a key.
func NewClientFactory(cfg config.LLMConfig, opts ...Option) *ClientFactory {
	f := &ClientFactory{
		config: cfg,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Client returns the shared genai client, building it on first use. It fails
// with a configuration error on every call while the credential is missing.
func (f *ClientFactory) Client(ctx context.Context) (*genai.Client, error) {
	if !HasCredential(f.config.GeminiAPIKey) {
		return nil, generation.NewConfigurationError(nil)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.client != nil {
		return f.client, nil
	}

	clientConfig := &genai.ClientConfig{
		APIKey:     strings.TrimSpace(f.config.GeminiAPIKey),
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: f.httpClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    f.config.BaseURL,
			APIVersion: f.config.APIVersion,
		},
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, generation.NewConfigurationError(fmt.Errorf("failed to create Gemini client: %w", err))
	}

	f.logger.Info("gemini client initialized", zap.String("model", f.config.ModelName))
	f.client = client
	return client, nil
}

// Connect implements generation.Connector.
func (f *ClientFactory) Connect(ctx context.Context) (generation.Invoker, error) {
	client, err := f.Client(ctx)
	if err != nil {
		return nil, err
	}
	return NewInvoker(client.Models, f.config.ModelName, f.logger), nil
}
