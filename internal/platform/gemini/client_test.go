package gemini_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/phrazzld/creatortune-gateway/internal/config"
	"github.com/phrazzld/creatortune-gateway/internal/generation"
	"github.com/phrazzld/creatortune-gateway/internal/platform/gemini"
	"github.com/phrazzld/creatortune-gateway/internal/schema"
)

// geminiStub serves generateContent requests and records what it received.
type geminiStub struct {
	server   *httptest.Server
	requests atomic.Int32

	mu      sync.Mutex
	apiKey  string
	path    string
	payload map[string]interface{}
}

func newGeminiStub(t *testing.T, status int, body string) *geminiStub {
	t.Helper()
	stub := &geminiStub{}
	stub.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stub.requests.Add(1)

		raw, _ := io.ReadAll(r.Body)
		var payload map[string]interface{}
		_ = json.Unmarshal(raw, &payload)

		stub.mu.Lock()
		stub.apiKey = r.Header.Get("x-goog-api-key")
		stub.path = r.URL.Path
		stub.payload = payload
		stub.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(stub.server.Close)
	return stub
}

func (s *geminiStub) config(key string) config.LLMConfig {
	return config.LLMConfig{
		GeminiAPIKey: key,
		ModelName:    "gemini-2.5-flash",
		BaseURL:      s.server.URL + "/",
		APIVersion:   "v1beta",
	}
}

const okBody = `{
  "candidates": [{
    "content": {"role": "model", "parts": [{"text": "{\"reply\": \"Namaste!\"}"}]},
    "finishReason": "STOP"
  }]
}`

func replySchema() *schema.Schema {
	return schema.Object(schema.Field("reply", schema.String("")))
}

func TestConnectRejectsMissingCredential(t *testing.T) {
	stub := newGeminiStub(t, http.StatusOK, okBody)

	for _, key := range []string{"", "   ", "undefined", " undefined "} {
		factory := gemini.NewClientFactory(stub.config(key))

		for i := 0; i < 2; i++ {
			inv, err := factory.Connect(context.Background())

			require.Error(t, err, "key %q", key)
			assert.Nil(t, inv)
			assert.True(t, errors.Is(err, generation.ErrConfiguration))
			assert.Equal(t, generation.MissingCredentialMessage, err.(*generation.Error).Message)
		}
	}

	assert.Zero(t, stub.requests.Load(), "no request may leave the process without a credential")
}

func TestHasCredential(t *testing.T) {
	assert.True(t, gemini.HasCredential("AIzaSyExample"))
	assert.False(t, gemini.HasCredential(""))
	assert.False(t, gemini.HasCredential("\t"))
	assert.False(t, gemini.HasCredential("undefined"))
}

func TestClientIsBuiltOnce(t *testing.T) {
	stub := newGeminiStub(t, http.StatusOK, okBody)
	factory := gemini.NewClientFactory(stub.config("test-key"))

	first, err := factory.Client(context.Background())
	require.NoError(t, err)
	second, err := factory.Client(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestInvokeAgainstServer(t *testing.T) {
	stub := newGeminiStub(t, http.StatusOK, okBody)
	factory := gemini.NewClientFactory(stub.config("test-key"),
		gemini.WithHTTPClient(stub.server.Client()),
		gemini.WithLogger(zaptest.NewLogger(t)))

	inv, err := factory.Connect(context.Background())
	require.NoError(t, err)

	env := generation.NewEnvelope("Say hello", replySchema())
	env.SystemInstruction = "Be brief."

	text, err := inv.Invoke(context.Background(), env)

	require.NoError(t, err)
	assert.JSONEq(t, `{"reply": "Namaste!"}`, text)
	assert.Equal(t, int32(1), stub.requests.Load())

	stub.mu.Lock()
	defer stub.mu.Unlock()
	assert.Equal(t, "test-key", stub.apiKey)
	assert.True(t, strings.HasSuffix(stub.path, "models/gemini-2.5-flash:generateContent"), stub.path)

	encoded, err := json.Marshal(stub.payload)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), "Say hello")
	assert.Contains(t, string(encoded), "Be brief.")
	assert.Contains(t, string(encoded), "application/json")
	assert.Contains(t, string(encoded), `"propertyOrdering":["reply"]`)
}

func TestInvokeServerErrorIsNotRetried(t *testing.T) {
	stub := newGeminiStub(t, http.StatusInternalServerError,
		`{"error": {"code": 500, "message": "backend unavailable", "status": "INTERNAL"}}`)
	factory := gemini.NewClientFactory(stub.config("test-key"), gemini.WithHTTPClient(stub.server.Client()))

	inv, err := factory.Connect(context.Background())
	require.NoError(t, err)

	text, err := inv.Invoke(context.Background(), generation.NewEnvelope("Say hello", replySchema()))

	require.Error(t, err)
	assert.Empty(t, text)
	assert.Contains(t, err.Error(), "backend unavailable")
	assert.Equal(t, int32(1), stub.requests.Load())
}

func TestInvokeBlockedPrompt(t *testing.T) {
	stub := newGeminiStub(t, http.StatusOK, `{"promptFeedback": {"blockReason": "SAFETY"}}`)
	factory := gemini.NewClientFactory(stub.config("test-key"), gemini.WithHTTPClient(stub.server.Client()))

	inv, err := factory.Connect(context.Background())
	require.NoError(t, err)

	_, err = inv.Invoke(context.Background(), generation.NewEnvelope("Say hello", replySchema()))

	assert.ErrorIs(t, err, gemini.ErrContentBlocked)
}
