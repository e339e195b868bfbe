package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/recallgate/graphmem/internal/api"
	"github.com/recallgate/graphmem/internal/domain"
	"github.com/recallgate/graphmem/internal/graph"
)

type AddEpisodeRequest struct {
	TenantID          string                 `json:"tenant_id"`
	Content           string                 `json:"content"`
	Source            string                 `json:"source"`
	SourceDescription string                 `json:"source_description"`
	ReferenceTime     string                 `json:"reference_time"`
	Metadata          map[string]interface{} `json:"metadata"`
}

type AddEpisodeResponse struct {
	Success      bool   `json:"success"`
	GroupID      string `json:"group_id"`
	EpisodeID    string `json:"episode_id"`
	NodesCreated int    `json:"nodes_created"`
	EdgesCreated int    `json:"edges_created"`
}

// AddEpisode ingests one episode into the tenant's graph. Extraction runs
// synchronously in the engine, so this call can take several seconds.
func (h *Handler) AddEpisode(w http.ResponseWriter, r *http.Request) {
	if !h.graphReady() {
		api.HandleError(w, domain.ErrGraphUnavailable)
		return
	}

	var req AddEpisodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.TenantID == "" {
		api.HandleError(w, domain.ErrMissingTenantID)
		return
	}
	if req.Content == "" {
		api.HandleError(w, domain.ErrMissingContent)
		return
	}

	source, err := graph.ParseSourceKind(req.Source)
	if err != nil {
		api.HandleError(w, err)
		return
	}

	reference := time.Now().UTC()
	if req.ReferenceTime != "" {
		parsed, err := time.Parse(time.RFC3339, req.ReferenceTime)
		if err != nil {
			api.HandleError(w, domain.ErrInvalidReferenceTime)
			return
		}
		reference = parsed.UTC()
	}

	groupID := h.scoper.Scope(req.TenantID)

	result, err := h.graph.AddEpisode(r.Context(), graph.AddEpisodeInput{
		GroupID:     groupID,
		Content:     req.Content,
		Source:      source,
		Description: req.SourceDescription,
		Reference:   reference,
		Metadata:    req.Metadata,
	})
	if err != nil {
		api.HandleError(w, err)
		return
	}

	h.logger.Info("episode added", "tenant_id", req.TenantID, "episode_id", result.EpisodeID)

	api.JSON(w, http.StatusOK, AddEpisodeResponse{
		Success:      true,
		GroupID:      groupID,
		EpisodeID:    result.EpisodeID,
		NodesCreated: result.NodesCreated,
		EdgesCreated: result.EdgesCreated,
	})
}
