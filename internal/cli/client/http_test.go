package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIClient_SendsAPIKeyHeader(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-KEY")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	api := NewAPIClientWithConfig("secret-key", srv.URL)

	raw, err := api.Get("/stats/acme")
	require.NoError(t, err)
	assert.Equal(t, "secret-key", gotKey)
	assert.JSONEq(t, `{"success":true}`, string(raw))
}

func TestAPIClient_PostMarshalsBody(t *testing.T) {
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	api := NewAPIClientWithConfig("secret-key", srv.URL)

	_, err := api.Post("/episodes", map[string]string{"tenant_id": "acme"})
	require.NoError(t, err)
	assert.Equal(t, "acme", gotBody["tenant_id"])
}

func TestAPIClient_ErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"tenant_id is required","code":"VALIDATION_ERROR"}`))
	}))
	defer srv.Close()

	api := NewAPIClientWithConfig("secret-key", srv.URL)

	_, err := api.Post("/search", map[string]string{})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "tenant_id is required", apiErr.Message)
	assert.Equal(t, "VALIDATION_ERROR", apiErr.Code)
}

func TestAPIClient_NonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream proxy exploded"))
	}))
	defer srv.Close()

	api := NewAPIClientWithConfig("secret-key", srv.URL)

	_, err := api.Get("/health")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "upstream proxy exploded")
}

func TestNewAPIClientWithCmd_EnvFallback(t *testing.T) {
	t.Setenv(envAPIKey, "env-key")
	t.Setenv(envAPIURL, "http://example.test:9999")

	api, err := NewAPIClientWithCmd(nil)
	require.NoError(t, err)
	assert.Equal(t, "env-key", api.apiKey)
	assert.Equal(t, "http://example.test:9999", api.baseURL)
}

func TestNewAPIClientWithCmd_MissingKey(t *testing.T) {
	t.Setenv(envAPIKey, "")

	_, err := NewAPIClientWithCmd(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), envAPIKey)
}
