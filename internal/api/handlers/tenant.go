package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/recallgate/graphmem/internal/api"
	"github.com/recallgate/graphmem/internal/domain"
)

type DeleteTenantResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	GroupID string `json:"group_id"`
}

// DeleteTenant irreversibly clears all graph data for one tenant. The caller
// must pass confirm=true; the guard is checked before anything else so a
// half-configured request never reaches the engine.
func (h *Handler) DeleteTenant(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("confirm") != "true" {
		api.HandleError(w, domain.ErrDeleteNotConfirmed)
		return
	}

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

	if err := h.graph.DeleteGroup(r.Context(), groupID); err != nil {
		api.HandleError(w, err)
		return
	}

	h.logger.Warn("tenant data deleted", "tenant_id", tenantID, "group_id", groupID)

	api.JSON(w, http.StatusOK, DeleteTenantResponse{
		Success: true,
		Message: fmt.Sprintf("All data deleted for tenant %s", tenantID),
		GroupID: groupID,
	})
}
