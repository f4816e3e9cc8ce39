package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/creatortune-gateway/internal/api/shared"
)

// CreateTestServer creates a httptest server with the given handler and
// closes it when the test completes.
func CreateTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

// RequestOption configures an HTTP request.
type RequestOption func(*http.Request)

// WithHeader adds a header to the request.
func WithHeader(key, value string) RequestOption {
	return func(req *http.Request) {
		req.Header.Set(key, value)
	}
}

// ExecuteRequest sends an HTTP request to the given server. The response
// body is closed when the test completes.
func ExecuteRequest(
	t *testing.T,
	server *httptest.Server,
	method string,
	path string,
	body io.Reader,
	options ...RequestOption,
) (*http.Response, error) {
	t.Helper()

	req, err := http.NewRequest(method, server.URL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for _, option := range options {
		option(req)
	}
	if body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := server.Client().Do(req)
	if err == nil && resp != nil {
		t.Cleanup(func() {
			if err := resp.Body.Close(); err != nil {
				t.Logf("Failed to close response body: %v", err)
			}
		})
	}
	return resp, err
}

// ExecuteJSONRequest sends payload encoded as JSON.
func ExecuteJSONRequest(
	t *testing.T,
	server *httptest.Server,
	method string,
	path string,
	payload interface{},
	options ...RequestOption,
) (*http.Response, error) {
	t.Helper()

	raw, err := json.Marshal(payload)
	require.NoError(t, err, "Failed to marshal request payload")
	return ExecuteRequest(t, server, method, path, bytes.NewReader(raw), options...)
}

// AssertJSONResponse checks the status code and decodes the body into
// result when result is non-nil.
func AssertJSONResponse(t *testing.T, resp *http.Response, expectedStatus int, result interface{}) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")
	require.Equal(t, expectedStatus, resp.StatusCode, "unexpected status, body: %s", string(body))

	if result == nil || expectedStatus == http.StatusNoContent {
		return
	}
	require.NoError(t, json.Unmarshal(body, result), "Failed to parse JSON response: %s", string(body))
}

// AssertErrorResponse checks that a response carries an error with the
// expected status code and message fragment, and returns the decoded body.
func AssertErrorResponse(
	t *testing.T,
	resp *http.Response,
	expectedStatus int,
	expectedErrorMsgPart string,
) shared.ErrorResponse {
	t.Helper()

	var errResp shared.ErrorResponse
	AssertJSONResponse(t, resp, expectedStatus, &errResp)

	if expectedErrorMsgPart != "" {
		assert.Contains(t, errResp.Error, expectedErrorMsgPart,
			"Error message should contain '%s' but got '%s'", expectedErrorMsgPart, errResp.Error)
	}
	return errResp
}
