package graph

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/soundprediction/predicato"
	"github.com/soundprediction/predicato/pkg/driver"
	"github.com/soundprediction/predicato/pkg/embedder"
	llm "github.com/soundprediction/predicato/pkg/nlp"
	"github.com/soundprediction/predicato/pkg/types"

	"github.com/recallgate/graphmem/internal/domain"
)

// engine is the slice of the predicato client the adapter calls.
type engine interface {
	AddEpisode(ctx context.Context, episode types.Episode, options *predicato.AddEpisodeOptions) (*types.AddEpisodeResults, error)
	Search(ctx context.Context, query string, config *types.SearchConfig) (*types.SearchResults, error)
	ClearGraph(ctx context.Context, groupID string) error
	Close(ctx context.Context) error
}

// store is the slice of the graph driver used for entity listing and stats,
// which the engine does not expose directly.
type store interface {
	GetEntityNodesByGroup(ctx context.Context, groupID string) ([]*types.Node, error)
	GetStats(ctx context.Context, groupID string) (*driver.GraphStats, error)
}

// Predicato adapts a predicato client to the gateway's Client interface.
// One instance lives for the whole process; the engine's own concurrency
// contract covers shared use by all request handlers.
type Predicato struct {
	engine engine
	store  store
	logger *slog.Logger
}

var _ Client = (*Predicato)(nil)

// Options configures Open.
type Options struct {
	BoltURI  string
	User     string
	Password string
	Database string

	// OpenAIAPIKey is optional. Without it the engine is built with nil
	// LLM/embedder clients: ingestion fails upstream and search degrades to
	// lexical ranking.
	OpenAIAPIKey  string
	LLMModel      string
	EmbedderModel string

	Logger *slog.Logger
}

// Open builds the Neo4j driver, the LLM/embedder clients, and the predicato
// engine, then runs the one-time idempotent index preparation. Any failure
// aborts startup; nothing is retried.
func Open(ctx context.Context, opts Options) (*Predicato, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	drv, err := driver.NewNeo4jDriver(opts.BoltURI, opts.User, opts.Password, opts.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create neo4j driver: %w", err)
	}

	var llmClient llm.Client
	var embedderClient embedder.Client
	if opts.OpenAIAPIKey != "" {
		baseLLM, err := llm.NewOpenAIClient(opts.OpenAIAPIKey, llm.Config{Model: opts.LLMModel})
		if err != nil {
			_ = drv.Close()
			return nil, fmt.Errorf("failed to create llm client: %w", err)
		}
		llmClient, err = llm.NewRetryClient(baseLLM, llm.DefaultRetryConfig())
		if err != nil {
			_ = drv.Close()
			return nil, fmt.Errorf("failed to create llm client: %w", err)
		}
		embedderClient = embedder.NewOpenAIEmbedder(opts.OpenAIAPIKey, embedder.Config{Model: opts.EmbedderModel})
	}

	client, err := predicato.NewClient(drv, llmClient, embedderClient, &predicato.Config{TimeZone: time.UTC}, logger)
	if err != nil {
		_ = drv.Close()
		return nil, fmt.Errorf("failed to create graph engine client: %w", err)
	}

	if err := client.CreateIndices(ctx); err != nil {
		_ = client.Close(ctx)
		return nil, fmt.Errorf("failed to prepare graph indices: %w", err)
	}

	return &Predicato{
		engine: client,
		store:  client.GetDriver(),
		logger: logger,
	}, nil
}

func (p *Predicato) AddEpisode(ctx context.Context, input AddEpisodeInput) (*AddEpisodeResult, error) {
	name := input.Description
	if name == "" {
		name = "conversation"
	}

	episode := types.Episode{
		ID:        uuid.NewString(),
		Name:      name,
		Content:   input.Content,
		Source:    string(input.Source),
		Reference: input.Reference,
		CreatedAt: time.Now().UTC(),
		GroupID:   input.GroupID,
		Metadata:  input.Metadata,
	}

	res, err := p.engine.AddEpisode(ctx, episode, nil)
	if err != nil {
		return nil, domain.Upstream(err)
	}

	out := &AddEpisodeResult{EpisodeID: episode.ID}
	if res != nil {
		if res.Episode != nil {
			out.EpisodeID = res.Episode.Uuid
		}
		out.NodesCreated = len(res.Nodes)
		out.EdgesCreated = len(res.Edges)
	}
	return out, nil
}

func (p *Predicato) Search(ctx context.Context, input SearchInput) ([]SearchHit, error) {
	cfg := &types.SearchConfig{
		Limit:        input.Limit,
		IncludeEdges: input.IncludeEdges,
		Filters: &types.SearchFilters{
			GroupIDs: []string{input.GroupID},
		},
	}

	res, err := p.engine.Search(ctx, input.Query, cfg)
	if err != nil {
		return nil, domain.Upstream(err)
	}

	hits := []SearchHit{}
	if res == nil {
		return hits, nil
	}
	for _, n := range res.Nodes {
		if n == nil {
			continue
		}
		hits = append(hits, nodeHit(n))
	}
	if input.IncludeEdges {
		for _, e := range res.Edges {
			if e == nil {
				continue
			}
			hits = append(hits, edgeHit(e))
		}
	}
	return hits, nil
}

func (p *Predicato) ListEntities(ctx context.Context, groupID string) ([]Entity, error) {
	nodes, err := p.store.GetEntityNodesByGroup(ctx, groupID)
	if err != nil {
		return nil, domain.Upstream(err)
	}

	entities := make([]Entity, 0, len(nodes))
	for _, n := range nodes {
		if n == nil {
			continue
		}
		entities = append(entities, Entity{
			Name:    n.Name,
			Type:    optionalString(n.EntityType),
			Summary: optionalString(n.Summary),
		})
	}
	return entities, nil
}

func (p *Predicato) Stats(ctx context.Context, groupID string) (*TenantStats, error) {
	stats, err := p.store.GetStats(ctx, groupID)
	if err != nil {
		return nil, domain.Upstream(err)
	}

	out := &TenantStats{}
	if stats != nil {
		out.NodeCount = stats.NodeCount
		out.EdgeCount = stats.EdgeCount
		if stats.NodesByType != nil {
			out.EpisodeCount = stats.NodesByType["Episodic"]
			out.EntityCount = stats.NodesByType["Entity"]
		}
	}
	return out, nil
}

func (p *Predicato) DeleteGroup(ctx context.Context, groupID string) error {
	if err := p.engine.ClearGraph(ctx, groupID); err != nil {
		return domain.Upstream(err)
	}
	return nil
}

func (p *Predicato) Close(ctx context.Context) error {
	return p.engine.Close(ctx)
}

// nodeHit maps an engine node onto the gateway hit shape. Fields the engine
// may omit resolve to nil here, never to an error.
func nodeHit(n *types.Node) SearchHit {
	return SearchHit{
		UUID:      n.Uuid,
		Content:   nodeContent(n),
		Score:     metadataScore(n.Metadata),
		CreatedAt: optionalTime(n.CreatedAt),
	}
}

func edgeHit(e *types.Edge) SearchHit {
	return SearchHit{
		UUID:      e.Uuid,
		Content:   e.Fact,
		Score:     metadataScore(e.Metadata),
		CreatedAt: optionalTime(e.CreatedAt),
	}
}

func nodeContent(n *types.Node) string {
	if n.Content != "" {
		return n.Content
	}
	if n.Summary != "" {
		return n.Summary
	}
	return n.Name
}

func metadataScore(meta map[string]interface{}) *float64 {
	if meta == nil {
		return nil
	}
	switch v := meta["score"].(type) {
	case float64:
		return &v
	case float32:
		f := float64(v)
		return &f
	}
	return nil
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
