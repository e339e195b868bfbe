package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	"github.com/recallgate/graphmem/internal/graph"
	"github.com/recallgate/graphmem/internal/tenant"
)

type MockGraphService struct {
	mock.Mock
}

func (m *MockGraphService) AddEpisode(ctx context.Context, input graph.AddEpisodeInput) (*graph.AddEpisodeResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*graph.AddEpisodeResult), args.Error(1)
}

func (m *MockGraphService) Search(ctx context.Context, input graph.SearchInput) ([]graph.SearchHit, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]graph.SearchHit), args.Error(1)
}

func (m *MockGraphService) ListEntities(ctx context.Context, groupID string) ([]graph.Entity, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]graph.Entity), args.Error(1)
}

func (m *MockGraphService) Stats(ctx context.Context, groupID string) (*graph.TenantStats, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*graph.TenantStats), args.Error(1)
}

func (m *MockGraphService) DeleteGroup(ctx context.Context, groupID string) error {
	args := m.Called(ctx, groupID)
	return args.Error(0)
}

func newTestHandler(svc GraphService) *Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(svc, tenant.NewScoper("tenant_"), "localhost:7687", logger)
}

func requestWithTenantParam(method, target, tenantID string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("tenant_id", tenantID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// handlerNotReady builds a handler whose graph engine never came up.
func handlerNotReady(t *testing.T) *Handler {
	t.Helper()
	return newTestHandler(nil)
}
