package handlers

import (
	"net/http"

	"github.com/recallgate/graphmem/internal/api"
)

type HealthResponse struct {
	Status string `json:"status"`
	Graph  string `json:"graph"`
	Neo4j  string `json:"neo4j"`
}

// Health reports liveness. A missing graph engine degrades the report but
// never the status code: orchestrators probing this endpoint must not see the
// process as dead while the engine is down.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status: "healthy",
		Graph:  "connected",
		Neo4j:  h.neo4jEndpoint,
	}
	if !h.graphReady() {
		resp.Status = "degraded"
		resp.Graph = "disconnected"
	}

	api.JSON(w, http.StatusOK, resp)
}
