package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/creatortune-gateway/internal/api"
	"github.com/phrazzld/creatortune-gateway/internal/history"
	"github.com/phrazzld/creatortune-gateway/internal/mocks"
	"github.com/phrazzld/creatortune-gateway/internal/testutils"
)

func TestListHistoryNewestFirst(t *testing.T) {
	connector, _ := mocks.NewMockConnector(`{}`)
	store := &mocks.MockHistoryStore{}
	_, err := store.Save(context.Background(), "https://www.youtube.com/@older", json.RawMessage(`{"overall_score":40}`))
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	_, err = store.Save(context.Background(), "https://www.youtube.com/@newer", json.RawMessage(`{"overall_score":90}`))
	require.NoError(t, err)
	server := setupTestServer(t, connector, store)

	resp, err := testutils.ExecuteRequest(t, server, http.MethodGet, "/api/history", nil)
	require.NoError(t, err)

	var body api.HistoryResponse
	testutils.AssertJSONResponse(t, resp, http.StatusOK, &body)
	require.Len(t, body.Items, 2)
	assert.Equal(t, "https://www.youtube.com/@newer", body.Items[0].URL)
	assert.JSONEq(t, `{"overall_score":90}`, string(body.Items[0].Data))
	assert.Equal(t, "https://www.youtube.com/@older", body.Items[1].URL)
}

func TestListHistoryEmpty(t *testing.T) {
	connector, _ := mocks.NewMockConnector(`{}`)
	server := setupTestServer(t, connector, &mocks.MockHistoryStore{})

	resp, err := testutils.ExecuteRequest(t, server, http.MethodGet, "/api/history", nil)
	require.NoError(t, err)

	var body map[string]json.RawMessage
	testutils.AssertJSONResponse(t, resp, http.StatusOK, &body)
	assert.JSONEq(t, `[]`, string(body["items"]))
}

func TestClearHistory(t *testing.T) {
	connector, _ := mocks.NewMockConnector(`{}`)
	store := &mocks.MockHistoryStore{}
	_, err := store.Save(context.Background(), "https://www.youtube.com/@alpha", json.RawMessage(`{}`))
	require.NoError(t, err)
	server := setupTestServer(t, connector, store)

	resp, err := testutils.ExecuteRequest(t, server, http.MethodDelete, "/api/history", nil)
	require.NoError(t, err)
	testutils.AssertJSONResponse(t, resp, http.StatusNoContent, nil)

	items, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestHistoryDisabled(t *testing.T) {
	connector, _ := mocks.NewMockConnector(`{}`)
	server := setupTestServer(t, connector, nil)

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		resp, err := testutils.ExecuteRequest(t, server, method, "/api/history", nil)
		require.NoError(t, err)
		testutils.AssertErrorResponse(t, resp, http.StatusNotFound, "History is not enabled")
	}
}

func TestHistoryStoreFailure(t *testing.T) {
	connector, _ := mocks.NewMockConnector(`{}`)
	store := &mocks.MockHistoryStore{
		ListFn: func(context.Context) ([]history.Item, error) {
			return nil, errors.New("redis: connection refused at 10.0.0.7:6379")
		},
	}
	server := setupTestServer(t, connector, store)

	resp, err := testutils.ExecuteRequest(t, server, http.MethodGet, "/api/history", nil)
	require.NoError(t, err)

	errResp := testutils.AssertErrorResponse(t, resp, http.StatusInternalServerError, "An unexpected error occurred")
	assert.NotContains(t, errResp.Error, "10.0.0.7")
}
