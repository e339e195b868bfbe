//go:build e2e

package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/recallgate/graphmem/internal/api/handlers"
	"github.com/recallgate/graphmem/internal/graph"
	"github.com/recallgate/graphmem/internal/server"
	"github.com/recallgate/graphmem/internal/tenant"
	"github.com/recallgate/graphmem/internal/testutil"
)

const testAPIKey = "e2e-gateway-key"

// E2ETestEnv holds all resources needed for E2E tests
type E2ETestEnv struct {
	T          *testing.T
	Ctx        context.Context
	Neo4jC     *testutil.Neo4jContainer
	Graph      graph.Client
	Server     *httptest.Server
	HTTPClient *http.Client
	HasOpenAI  bool
}

// SetupE2EEnv starts a Neo4j container, opens the graph engine against it,
// and serves the full router over httptest.
func SetupE2EEnv(t *testing.T) *E2ETestEnv {
	ctx := context.Background()

	neo4jC := testutil.NewNeo4jContainer(ctx, t)

	openAIKey := os.Getenv("OPENAI_API_KEY")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	graphClient, err := graph.Open(ctx, graph.Options{
		BoltURI:      neo4jC.BoltURI(),
		User:         neo4jC.User,
		Password:     neo4jC.Password,
		Database:     "neo4j",
		OpenAIAPIKey: openAIKey,
		Logger:       logger,
	})
	if err != nil {
		neo4jC.Terminate(ctx)
		t.Fatalf("failed to open graph engine: %v", err)
	}

	handler := handlers.New(graphClient, tenant.NewScoper("tenant_"), neo4jC.Endpoint(), logger)
	router := server.NewRouter(server.RouterConfig{
		APIKey:  testAPIKey,
		Handler: handler,
		Logger:  logger,
	})

	srv := httptest.NewServer(router)

	return &E2ETestEnv{
		T:          t,
		Ctx:        ctx,
		Neo4jC:     neo4jC,
		Graph:      graphClient,
		Server:     srv,
		HTTPClient: &http.Client{Timeout: 120 * time.Second},
		HasOpenAI:  openAIKey != "",
	}
}

// Cleanup releases all resources
func (e *E2ETestEnv) Cleanup() {
	if e.Server != nil {
		e.Server.Close()
	}
	if e.Graph != nil {
		closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		e.Graph.Close(closeCtx)
		cancel()
	}
	if e.Neo4jC != nil {
		e.Neo4jC.Terminate(e.Ctx)
	}
}

// RequireOpenAI skips the test when no OPENAI_API_KEY is configured. Episode
// ingestion and search need the engine's LLM and embedder clients.
func (e *E2ETestEnv) RequireOpenAI() {
	if !e.HasOpenAI {
		e.T.Skip("OPENAI_API_KEY not set; skipping ingestion round trip")
	}
}

// Do performs a request against the test server with the given API key.
func (e *E2ETestEnv) Do(method, path, apiKey string, body interface{}) (int, json.RawMessage, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, e.Server.URL+path, reqBody)
	if err != nil {
		return 0, nil, err
	}
	if apiKey != "" {
		req.Header.Set("X-API-KEY", apiKey)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.HTTPClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}

	return resp.StatusCode, json.RawMessage(respBody), nil
}

func (e *E2ETestEnv) Get(path, apiKey string) (int, json.RawMessage, error) {
	return e.Do(http.MethodGet, path, apiKey, nil)
}

func (e *E2ETestEnv) Post(path, apiKey string, body interface{}) (int, json.RawMessage, error) {
	return e.Do(http.MethodPost, path, apiKey, body)
}

func (e *E2ETestEnv) Delete(path, apiKey string) (int, json.RawMessage, error) {
	return e.Do(http.MethodDelete, path, apiKey, nil)
}
