package handlers

import (
	"context"
	"log/slog"

	"github.com/recallgate/graphmem/internal/graph"
	"github.com/recallgate/graphmem/internal/tenant"
)

// GraphService is the slice of the graph client the handlers need.
type GraphService interface {
	AddEpisode(ctx context.Context, input graph.AddEpisodeInput) (*graph.AddEpisodeResult, error)
	Search(ctx context.Context, input graph.SearchInput) ([]graph.SearchHit, error)
	ListEntities(ctx context.Context, groupID string) ([]graph.Entity, error)
	Stats(ctx context.Context, groupID string) (*graph.TenantStats, error)
	DeleteGroup(ctx context.Context, groupID string) error
}

// Handler serves the gateway's HTTP endpoints. The graph service may be nil
// when the engine failed to come up; every data endpoint answers 503 in that
// state while health keeps reporting.
type Handler struct {
	graph         GraphService
	scoper        *tenant.Scoper
	neo4jEndpoint string
	logger        *slog.Logger
}

func New(graphSvc GraphService, scoper *tenant.Scoper, neo4jEndpoint string, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{graph: graphSvc, scoper: scoper, neo4jEndpoint: neo4jEndpoint, logger: logger}
}

func (h *Handler) graphReady() bool {
	return h.graph != nil
}
