package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/recallgate/graphmem/internal/api"
	"github.com/recallgate/graphmem/internal/domain"
)

type StatsResponse struct {
	Success       bool   `json:"success"`
	TenantID      string `json:"tenant_id"`
	GroupID       string `json:"group_id"`
	EpisodesCount int64  `json:"episodes_count"`
	EntitiesCount int64  `json:"entities_count"`
	NodesCount    int64  `json:"nodes_count"`
	EdgesCount    int64  `json:"edges_count"`
}

// Stats reports per-tenant graph counts.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	if !h.graphReady() {
		api.HandleError(w, domain.ErrGraphUnavailable)
		return
	}

	tenantID := chi.URLParam(r, "tenant_id")
	if tenantID == "" {
		api.HandleError(w, domain.ErrMissingTenantID)
		return
	}

	groupID := h.scoper.Scope(tenantID)

	stats, err := h.graph.Stats(r.Context(), groupID)
	if err != nil {
		api.HandleError(w, err)
		return
	}

	api.JSON(w, http.StatusOK, StatsResponse{
		Success:       true,
		TenantID:      tenantID,
		GroupID:       groupID,
		EpisodesCount: stats.EpisodeCount,
		EntitiesCount: stats.EntityCount,
		NodesCount:    stats.NodeCount,
		EdgesCount:    stats.EdgeCount,
	})
}
