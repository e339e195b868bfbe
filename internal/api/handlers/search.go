package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/recallgate/graphmem/internal/api"
	"github.com/recallgate/graphmem/internal/domain"
	"github.com/recallgate/graphmem/internal/graph"
)

const defaultSearchLimit = 10

type SearchRequest struct {
	TenantID     string `json:"tenant_id"`
	Query        string `json:"query"`
	Limit        *int   `json:"limit"`
	IncludeEdges *bool  `json:"include_edges"`
}

type SearchResponse struct {
	Success      bool              `json:"success"`
	Query        string            `json:"query"`
	GroupID      string            `json:"group_id"`
	ResultsCount int               `json:"results_count"`
	Results      []graph.SearchHit `json:"results"`
}

// Search runs a hybrid search over the tenant's graph. An empty graph is a
// valid answer, not an error.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	if !h.graphReady() {
		api.HandleError(w, domain.ErrGraphUnavailable)
		return
	}

	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.TenantID == "" {
		api.HandleError(w, domain.ErrMissingTenantID)
		return
	}
	if req.Query == "" {
		api.HandleError(w, domain.ErrMissingQuery)
		return
	}

	limit := defaultSearchLimit
	if req.Limit != nil {
		if *req.Limit <= 0 {
			api.HandleError(w, domain.ErrInvalidLimit)
			return
		}
		limit = *req.Limit
	}

	includeEdges := true
	if req.IncludeEdges != nil {
		includeEdges = *req.IncludeEdges
	}

	groupID := h.scoper.Scope(req.TenantID)

	hits, err := h.graph.Search(r.Context(), graph.SearchInput{
		GroupID:      groupID,
		Query:        req.Query,
		Limit:        limit,
		IncludeEdges: includeEdges,
	})
	if err != nil {
		api.HandleError(w, err)
		return
	}

	h.logger.Info("search completed", "tenant_id", req.TenantID, "results", len(hits))

	api.JSON(w, http.StatusOK, SearchResponse{
		Success:      true,
		Query:        req.Query,
		GroupID:      groupID,
		ResultsCount: len(hits),
		Results:      hits,
	})
}
