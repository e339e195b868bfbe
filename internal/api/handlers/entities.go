package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/recallgate/graphmem/internal/api"
	"github.com/recallgate/graphmem/internal/domain"
	"github.com/recallgate/graphmem/internal/graph"
)

type EntitiesResponse struct {
	Success       bool           `json:"success"`
	GroupID       string         `json:"group_id"`
	EntitiesCount int            `json:"entities_count"`
	Entities      []graph.Entity `json:"entities"`
}

// ListEntities returns the semantic entities extracted from a tenant's
// episodes.
func (h *Handler) ListEntities(w http.ResponseWriter, r *http.Request) {
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

	entities, err := h.graph.ListEntities(r.Context(), groupID)
	if err != nil {
		api.HandleError(w, err)
		return
	}
	if entities == nil {
		entities = []graph.Entity{}
	}

	api.JSON(w, http.StatusOK, EntitiesResponse{
		Success:       true,
		GroupID:       groupID,
		EntitiesCount: len(entities),
		Entities:      entities,
	})
}
