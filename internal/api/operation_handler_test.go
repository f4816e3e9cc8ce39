package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/creatortune-gateway/internal/api"
	"github.com/phrazzld/creatortune-gateway/internal/api/shared"
	"github.com/phrazzld/creatortune-gateway/internal/generation"
	"github.com/phrazzld/creatortune-gateway/internal/history"
	"github.com/phrazzld/creatortune-gateway/internal/mocks"
	"github.com/phrazzld/creatortune-gateway/internal/operation"
	"github.com/phrazzld/creatortune-gateway/internal/testutils"
)

const channelURL = "https://www.youtube.com/@ThriftyHomestead"

func auditResponse(t *testing.T) string {
	t.Helper()
	spec, ok := operation.Lookup(operation.KindYouTubeAudit)
	require.True(t, ok)
	return testutils.SampleJSONWith(t, spec.Schema, func(doc map[string]interface{}) {
		doc["overall_score"] = 71
	})
}

func operationBody(language string, input interface{}) map[string]interface{} {
	return map[string]interface{}{"language": language, "input": input}
}

type auditEnvelope struct {
	Kind      operation.Kind        `json:"kind"`
	Result    operation.AuditResult `json:"result"`
	HistoryID string                `json:"history_id"`
}

func TestRunOperationAuditSavesHistory(t *testing.T) {
	connector, invoker := mocks.NewMockConnector(auditResponse(t))
	store := &mocks.MockHistoryStore{}
	server := setupTestServer(t, connector, store)

	resp, err := testutils.ExecuteJSONRequest(t, server, http.MethodPost, "/api/operations/youtube_audit",
		operationBody("hi", map[string]string{"channelUrl": channelURL}))
	require.NoError(t, err)

	var body auditEnvelope
	testutils.AssertJSONResponse(t, resp, http.StatusOK, &body)
	assert.Equal(t, operation.KindYouTubeAudit, body.Kind)
	assert.Equal(t, 71, body.Result.OverallScore)
	assert.NotEmpty(t, body.HistoryID)
	assert.NotEmpty(t, resp.Header.Get(shared.TraceIDHeader))
	assert.Equal(t, 1, invoker.Calls())

	items, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, body.HistoryID, items[0].ID)
	assert.Equal(t, channelURL, items[0].URL)

	var saved operation.AuditResult
	require.NoError(t, json.Unmarshal(items[0].Data, &saved))
	assert.Equal(t, 71, saved.OverallScore)
}

func TestRunOperationOtherKindsSkipHistory(t *testing.T) {
	spec, _ := operation.Lookup(operation.KindAboutSection)
	connector, _ := mocks.NewMockConnector(testutils.SampleJSON(t, spec.Schema))
	store := &mocks.MockHistoryStore{}
	server := setupTestServer(t, connector, store)

	resp, err := testutils.ExecuteJSONRequest(t, server, http.MethodPost, "/api/operations/about_section",
		operationBody("", map[string]string{"aboutText": "Bread, every week."}))
	require.NoError(t, err)

	var body map[string]interface{}
	testutils.AssertJSONResponse(t, resp, http.StatusOK, &body)
	assert.Equal(t, "about_section", body["kind"])
	assert.NotContains(t, body, "history_id")
	assert.Zero(t, store.SaveCalls())
}

func TestRunOperationHistoryFailureStillSucceeds(t *testing.T) {
	connector, _ := mocks.NewMockConnector(auditResponse(t))
	store := &mocks.MockHistoryStore{
		SaveFn: func(context.Context, string, json.RawMessage) (history.Item, error) {
			return history.Item{}, errors.New("redis: connection refused")
		},
	}
	server := setupTestServer(t, connector, store)

	resp, err := testutils.ExecuteJSONRequest(t, server, http.MethodPost, "/api/operations/youtube_audit",
		operationBody("", map[string]string{"channelUrl": channelURL}))
	require.NoError(t, err)

	var body auditEnvelope
	testutils.AssertJSONResponse(t, resp, http.StatusOK, &body)
	assert.Empty(t, body.HistoryID)
	assert.Equal(t, 1, store.SaveCalls())
}

func TestRunOperationWithoutHistory(t *testing.T) {
	connector, _ := mocks.NewMockConnector(auditResponse(t))
	server := setupTestServer(t, connector, nil)

	resp, err := testutils.ExecuteJSONRequest(t, server, http.MethodPost, "/api/operations/youtube_audit",
		operationBody("", map[string]string{"channelUrl": channelURL}))
	require.NoError(t, err)

	var body auditEnvelope
	testutils.AssertJSONResponse(t, resp, http.StatusOK, &body)
	assert.Empty(t, body.HistoryID)
}

func TestRunOperationErrors(t *testing.T) {
	auditSpec, _ := operation.Lookup(operation.KindYouTubeAudit)

	tests := []struct {
		name       string
		connector  func() *mocks.MockConnector
		path       string
		body       string
		wantStatus int
		wantKind   string
		wantMsg    string
		wantCalls  int
	}{
		{
			name:       "unknown operation",
			path:       "/api/operations/viral_predictor",
			body:       `{"input":{}}`,
			wantStatus: http.StatusNotFound,
			wantMsg:    "Operation not found",
		},
		{
			name:       "malformed JSON",
			body:       `{"input": {`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid request format",
		},
		{
			name:       "unknown body field",
			body:       `{"input": {"channelUrl": "` + channelURL + `"}, "lang": "hi"}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid request format",
		},
		{
			name:       "missing input",
			body:       `{"language": "hi"}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "input is required",
		},
		{
			name:       "input of the wrong shape",
			body:       `{"input": {"channelUrl": 42}}`,
			wantStatus: http.StatusBadRequest,
			wantKind:   string(generation.KindInput),
		},
		{
			name:       "invalid channel URL",
			body:       `{"input": {"channelUrl": "https://vimeo.com/creator"}}`,
			wantStatus: http.StatusBadRequest,
			wantKind:   string(generation.KindInput),
		},
		{
			name:       "unsupported language",
			body:       `{"language": "de", "input": {"channelUrl": "` + channelURL + `"}}`,
			wantStatus: http.StatusBadRequest,
			wantKind:   string(generation.KindInput),
			wantMsg:    "Please choose a supported language.",
		},
		{
			name:       "missing credential",
			connector:  mocks.MockConnectorWithoutCredential,
			body:       `{"input": {"channelUrl": "` + channelURL + `"}}`,
			wantStatus: http.StatusServiceUnavailable,
			wantKind:   string(generation.KindConfiguration),
			wantMsg:    generation.MissingCredentialMessage,
		},
		{
			name: "remote failure",
			connector: func() *mocks.MockConnector {
				return &mocks.MockConnector{Invoker: &mocks.MockInvoker{Err: errors.New("dial tcp: i/o timeout")}}
			},
			body:       `{"input": {"channelUrl": "` + channelURL + `"}}`,
			wantStatus: http.StatusBadGateway,
			wantKind:   string(generation.KindTransport),
			wantMsg:    auditSpec.FailureMessage,
			wantCalls:  1,
		},
		{
			name: "response not JSON",
			connector: func() *mocks.MockConnector {
				c, _ := mocks.NewMockConnector("Here is your audit!")
				return c
			},
			body:       `{"input": {"channelUrl": "` + channelURL + `"}}`,
			wantStatus: http.StatusBadGateway,
			wantKind:   string(generation.KindValidation),
			wantMsg:    auditSpec.FailureMessage,
			wantCalls:  1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			connector, _ := mocks.NewMockConnector(auditResponse(t))
			if tc.connector != nil {
				connector = tc.connector()
			}
			store := &mocks.MockHistoryStore{}
			server := setupTestServer(t, connector, store)

			path := tc.path
			if path == "" {
				path = "/api/operations/youtube_audit"
			}
			resp, err := testutils.ExecuteRequest(t, server, http.MethodPost, path, strings.NewReader(tc.body))
			require.NoError(t, err)

			errResp := testutils.AssertErrorResponse(t, resp, tc.wantStatus, tc.wantMsg)
			assert.Equal(t, tc.wantKind, errResp.Kind)
			assert.Equal(t, resp.Header.Get(shared.TraceIDHeader), errResp.TraceID)
			assert.NotContains(t, errResp.Error, "i/o timeout")
			assert.Zero(t, store.SaveCalls())
			if inv, ok := connector.Invoker.(*mocks.MockInvoker); ok {
				assert.Equal(t, tc.wantCalls, inv.Calls())
			}
		})
	}
}

func TestRunOperationRejectsOversizedBody(t *testing.T) {
	connector, invoker := mocks.NewMockConnector(`{}`)
	server := setupTestServer(t, connector, nil)

	huge := strings.Repeat("A", shared.MaxRequestBytes+1)
	body := `{"input": {"title": "Big", "thumbnail": {"dataUrl": "data:image/png;base64,` + huge + `", "mimeType": "image/png"}}}`

	resp, err := testutils.ExecuteRequest(t, server, http.MethodPost, "/api/operations/title_thumbnail", strings.NewReader(body))
	require.NoError(t, err)

	testutils.AssertErrorResponse(t, resp, http.StatusRequestEntityTooLarge, "Request is too large")
	assert.Zero(t, invoker.Calls())
}

func TestListOperations(t *testing.T) {
	connector, _ := mocks.NewMockConnector(`{}`)
	server := setupTestServer(t, connector, nil)

	resp, err := testutils.ExecuteRequest(t, server, http.MethodGet, "/api/operations", nil)
	require.NoError(t, err)

	var infos []api.OperationInfo
	testutils.AssertJSONResponse(t, resp, http.StatusOK, &infos)
	require.Len(t, infos, len(operation.Kinds()))

	byKind := make(map[operation.Kind]api.OperationInfo, len(infos))
	for _, info := range infos {
		byKind[info.Kind] = info
	}
	assert.Equal(t, "image_pair", byKind[operation.KindABTest].Modality)
	assert.Equal(t, 2, byKind[operation.KindABTest].Images)
	assert.Equal(t, "single_image", byKind[operation.KindTitleThumbnail].Modality)
	assert.Equal(t, "text", byKind[operation.KindScriptGeneration].Modality)
	assert.False(t, byKind[operation.KindChatbot].Localized)
	assert.True(t, byKind[operation.KindYouTubeAudit].Localized)
	assert.NotEmpty(t, byKind[operation.KindRetentionAnalysis].Title)
}

func TestHealth(t *testing.T) {
	connector, _ := mocks.NewMockConnector(`{}`)
	server := setupTestServer(t, connector, nil)

	resp, err := testutils.ExecuteRequest(t, server, http.MethodGet, "/health", nil)
	require.NoError(t, err)

	var health api.HealthResponse
	testutils.AssertJSONResponse(t, resp, http.StatusOK, &health)
	assert.Equal(t, "ok", health.Status)
	assert.True(t, health.CredentialConfigured)
	assert.False(t, health.HistoryEnabled)
}
