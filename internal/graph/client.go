// Package graph is the boundary between the HTTP gateway and the external
// knowledge-graph engine. It owns the façade's view of the engine: a narrow
// client interface, the request/result shapes crossing the boundary, and the
// rule that optional fields on engine results resolve to nils here, never to
// errors further up.
package graph

import (
	"context"
	"time"

	"github.com/recallgate/graphmem/internal/domain"
)

// SourceKind enumerates the recognized episode source kinds. Anything else is
// rejected before the engine is ever invoked.
type SourceKind string

const (
	SourceMessage SourceKind = "message"
	SourceText    SourceKind = "text"
	SourceJSON    SourceKind = "json"
)

// ParseSourceKind validates a caller-supplied source string.
func ParseSourceKind(s string) (SourceKind, error) {
	switch SourceKind(s) {
	case SourceMessage, SourceText, SourceJSON:
		return SourceKind(s), nil
	}
	return "", domain.ErrInvalidSourceKind
}

// AddEpisodeInput carries one episode submission, already validated and
// scoped to a group key.
type AddEpisodeInput struct {
	GroupID     string
	Content     string
	Source      SourceKind
	Description string
	Reference   time.Time
	Metadata    map[string]interface{}
}

// AddEpisodeResult reports what the engine created for one episode.
type AddEpisodeResult struct {
	EpisodeID    string
	NodesCreated int
	EdgesCreated int
}

// SearchInput carries one hybrid-search request scoped to a group key.
type SearchInput struct {
	GroupID      string
	Query        string
	Limit        int
	IncludeEdges bool
}

// SearchHit is one search result. Score and CreatedAt are optional on the
// engine side; absent values are nil.
type SearchHit struct {
	UUID      string     `json:"uuid"`
	Content   string     `json:"content"`
	Score     *float64   `json:"score"`
	CreatedAt *time.Time `json:"created_at"`
}

// Entity is one semantic entity extracted from a tenant's episodes. Type and
// Summary are optional on the engine side.
type Entity struct {
	Name    string  `json:"name"`
	Type    *string `json:"type"`
	Summary *string `json:"summary"`
}

// TenantStats aggregates per-group counts from the engine.
type TenantStats struct {
	EpisodeCount int64
	EntityCount  int64
	NodeCount    int64
	EdgeCount    int64
}

// Client is the gateway's view of the knowledge-graph engine. All operations
// may block on network I/O; all are scoped by a caller-supplied group key.
// Implementations must be safe for concurrent use: the gateway shares one
// instance across all request handlers without additional locking.
type Client interface {
	AddEpisode(ctx context.Context, input AddEpisodeInput) (*AddEpisodeResult, error)
	Search(ctx context.Context, input SearchInput) ([]SearchHit, error)
	ListEntities(ctx context.Context, groupID string) ([]Entity, error)
	Stats(ctx context.Context, groupID string) (*TenantStats, error)
	DeleteGroup(ctx context.Context, groupID string) error
	Close(ctx context.Context) error
}
