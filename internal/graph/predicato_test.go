package graph

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/soundprediction/predicato"
	"github.com/soundprediction/predicato/pkg/driver"
	"github.com/soundprediction/predicato/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/recallgate/graphmem/internal/domain"
)

type MockEngine struct {
	mock.Mock
}

func (m *MockEngine) AddEpisode(ctx context.Context, episode types.Episode, options *predicato.AddEpisodeOptions) (*types.AddEpisodeResults, error) {
	args := m.Called(ctx, episode, options)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.AddEpisodeResults), args.Error(1)
}

func (m *MockEngine) Search(ctx context.Context, query string, config *types.SearchConfig) (*types.SearchResults, error) {
	args := m.Called(ctx, query, config)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.SearchResults), args.Error(1)
}

func (m *MockEngine) ClearGraph(ctx context.Context, groupID string) error {
	args := m.Called(ctx, groupID)
	return args.Error(0)
}

func (m *MockEngine) Close(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockStore struct {
	mock.Mock
}

func (m *MockStore) GetEntityNodesByGroup(ctx context.Context, groupID string) ([]*types.Node, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.Node), args.Error(1)
}

func (m *MockStore) GetStats(ctx context.Context, groupID string) (*driver.GraphStats, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.GraphStats), args.Error(1)
}

func newTestClient(eng *MockEngine, st *MockStore) *Predicato {
	return &Predicato{engine: eng, store: st}
}

func TestParseSourceKind(t *testing.T) {
	for _, valid := range []string{"message", "text", "json"} {
		kind, err := ParseSourceKind(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, string(kind))
	}

	for _, invalid := range []string{"", "carrier-pigeon", "Message", "MESSAGE", "conversation"} {
		_, err := ParseSourceKind(invalid)
		assert.ErrorIs(t, err, domain.ErrInvalidSourceKind, "source %q should be rejected", invalid)
	}
}

func TestPredicato_AddEpisode_MapsResult(t *testing.T) {
	eng := new(MockEngine)
	ref := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	eng.On("AddEpisode", mock.Anything, mock.MatchedBy(func(ep types.Episode) bool {
		return ep.GroupID == "tenant_acme" &&
			ep.Content == "hello" &&
			ep.Source == "message" &&
			ep.Reference.Equal(ref) &&
			ep.ID != ""
	}), (*predicato.AddEpisodeOptions)(nil)).Return(&types.AddEpisodeResults{
		Episode: &types.Node{Uuid: "ep-uuid-1"},
		Nodes:   []*types.Node{{Uuid: "n1"}, {Uuid: "n2"}},
		Edges:   []*types.Edge{{BaseEdge: types.BaseEdge{Uuid: "e1"}}},
	}, nil)

	client := newTestClient(eng, nil)
	res, err := client.AddEpisode(context.Background(), AddEpisodeInput{
		GroupID:   "tenant_acme",
		Content:   "hello",
		Source:    SourceMessage,
		Reference: ref,
	})
	require.NoError(t, err)

	assert.Equal(t, "ep-uuid-1", res.EpisodeID)
	assert.Equal(t, 2, res.NodesCreated)
	assert.Equal(t, 1, res.EdgesCreated)
	eng.AssertExpectations(t)
}

func TestPredicato_AddEpisode_DefaultsName(t *testing.T) {
	eng := new(MockEngine)
	eng.On("AddEpisode", mock.Anything, mock.MatchedBy(func(ep types.Episode) bool {
		return ep.Name == "conversation"
	}), mock.Anything).Return(&types.AddEpisodeResults{}, nil)

	client := newTestClient(eng, nil)
	res, err := client.AddEpisode(context.Background(), AddEpisodeInput{
		GroupID: "tenant_acme",
		Content: "hi",
		Source:  SourceText,
	})
	require.NoError(t, err)

	// Engine returned no episode node; the generated ID stands in.
	assert.NotEmpty(t, res.EpisodeID)
	assert.Equal(t, 0, res.NodesCreated)
	assert.Equal(t, 0, res.EdgesCreated)
}

func TestPredicato_AddEpisode_UpstreamError(t *testing.T) {
	eng := new(MockEngine)
	eng.On("AddEpisode", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

	client := newTestClient(eng, nil)
	_, err := client.AddEpisode(context.Background(), AddEpisodeInput{
		GroupID: "tenant_acme",
		Content: "hi",
		Source:  SourceMessage,
	})
	require.Error(t, err)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrCodeUpstream, domainErr.Code)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestPredicato_Search_ScopesToGroup(t *testing.T) {
	eng := new(MockEngine)
	eng.On("Search", mock.Anything, "coffee", mock.MatchedBy(func(cfg *types.SearchConfig) bool {
		return cfg.Limit == 10 &&
			cfg.Filters != nil &&
			len(cfg.Filters.GroupIDs) == 1 &&
			cfg.Filters.GroupIDs[0] == "tenant_acme"
	})).Return(&types.SearchResults{}, nil)

	client := newTestClient(eng, nil)
	hits, err := client.Search(context.Background(), SearchInput{
		GroupID: "tenant_acme",
		Query:   "coffee",
		Limit:   10,
	})
	require.NoError(t, err)

	assert.NotNil(t, hits)
	assert.Empty(t, hits)
	eng.AssertExpectations(t)
}

func TestPredicato_Search_MapsOptionalFields(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	eng := new(MockEngine)
	eng.On("Search", mock.Anything, mock.Anything, mock.Anything).Return(&types.SearchResults{
		Nodes: []*types.Node{
			{
				Uuid:      "n1",
				Name:      "Alice",
				Summary:   "a customer",
				CreatedAt: created,
				Metadata:  map[string]interface{}{"score": 0.91},
			},
			{
				Uuid:    "n2",
				Name:    "Bob",
				Content: "Bob asked about pricing",
				// No created_at, no score: both map to nil, not an error.
			},
		},
		Edges: []*types.Edge{
			{
				BaseEdge: types.BaseEdge{Uuid: "e1", CreatedAt: created},
				Fact:     "Alice works with Bob",
			},
		},
	}, nil)

	client := newTestClient(eng, nil)
	hits, err := client.Search(context.Background(), SearchInput{
		GroupID:      "tenant_acme",
		Query:        "alice",
		Limit:        10,
		IncludeEdges: true,
	})
	require.NoError(t, err)
	require.Len(t, hits, 3)

	assert.Equal(t, "n1", hits[0].UUID)
	assert.Equal(t, "a customer", hits[0].Content)
	require.NotNil(t, hits[0].Score)
	assert.InDelta(t, 0.91, *hits[0].Score, 1e-9)
	require.NotNil(t, hits[0].CreatedAt)
	assert.True(t, hits[0].CreatedAt.Equal(created))

	assert.Equal(t, "Bob asked about pricing", hits[1].Content)
	assert.Nil(t, hits[1].Score)
	assert.Nil(t, hits[1].CreatedAt)

	assert.Equal(t, "Alice works with Bob", hits[2].Content)
}

func TestPredicato_Search_ExcludesEdges(t *testing.T) {
	eng := new(MockEngine)
	eng.On("Search", mock.Anything, mock.Anything, mock.Anything).Return(&types.SearchResults{
		Nodes: []*types.Node{{Uuid: "n1", Name: "Alice"}},
		Edges: []*types.Edge{{BaseEdge: types.BaseEdge{Uuid: "e1"}, Fact: "fact"}},
	}, nil)

	client := newTestClient(eng, nil)
	hits, err := client.Search(context.Background(), SearchInput{
		GroupID: "tenant_acme",
		Query:   "alice",
		Limit:   5,
	})
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "n1", hits[0].UUID)
}

func TestPredicato_ListEntities(t *testing.T) {
	st := new(MockStore)
	st.On("GetEntityNodesByGroup", mock.Anything, "tenant_acme").Return([]*types.Node{
		{Uuid: "n1", Name: "Alice", EntityType: "Person", Summary: "a customer"},
		{Uuid: "n2", Name: "Initech"},
	}, nil)

	client := newTestClient(nil, st)
	entities, err := client.ListEntities(context.Background(), "tenant_acme")
	require.NoError(t, err)
	require.Len(t, entities, 2)

	assert.Equal(t, "Alice", entities[0].Name)
	require.NotNil(t, entities[0].Type)
	assert.Equal(t, "Person", *entities[0].Type)
	require.NotNil(t, entities[0].Summary)

	assert.Equal(t, "Initech", entities[1].Name)
	assert.Nil(t, entities[1].Type)
	assert.Nil(t, entities[1].Summary)
	st.AssertExpectations(t)
}

func TestPredicato_Stats(t *testing.T) {
	st := new(MockStore)
	st.On("GetStats", mock.Anything, "tenant_acme").Return(&driver.GraphStats{
		NodeCount: 12,
		EdgeCount: 30,
		NodesByType: map[string]int64{
			"Episodic": 4,
			"Entity":   7,
		},
	}, nil)

	client := newTestClient(nil, st)
	stats, err := client.Stats(context.Background(), "tenant_acme")
	require.NoError(t, err)

	assert.Equal(t, int64(4), stats.EpisodeCount)
	assert.Equal(t, int64(7), stats.EntityCount)
	assert.Equal(t, int64(12), stats.NodeCount)
	assert.Equal(t, int64(30), stats.EdgeCount)
}

func TestPredicato_DeleteGroup(t *testing.T) {
	eng := new(MockEngine)
	eng.On("ClearGraph", mock.Anything, "tenant_doomed").Return(nil).Once()

	client := newTestClient(eng, nil)
	require.NoError(t, client.DeleteGroup(context.Background(), "tenant_doomed"))
	eng.AssertExpectations(t)
}

func TestPredicato_DeleteGroup_UpstreamError(t *testing.T) {
	eng := new(MockEngine)
	eng.On("ClearGraph", mock.Anything, mock.Anything).Return(errors.New("db down"))

	client := newTestClient(eng, nil)
	err := client.DeleteGroup(context.Background(), "tenant_doomed")

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrCodeUpstream, domainErr.Code)
}
