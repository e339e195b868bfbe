package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_WithEnvVars(t *testing.T) {
	os.Setenv("GRAPHMEM_API_KEY", "secret")
	os.Setenv("GRAPHMEM_PORT", "9090")
	os.Setenv("GRAPHMEM_DEBUG", "true")
	os.Setenv("GRAPHMEM_NEO4J_HOST", "graph.internal")
	os.Setenv("GRAPHMEM_NEO4J_PORT", "7688")
	os.Setenv("GRAPHMEM_NEO4J_PASSWORD", "hunter2")
	os.Setenv("GRAPHMEM_TENANT_PREFIX", "acme_")
	os.Setenv("GRAPHMEM_OPENAI_API_KEY", "sk-test")
	defer func() {
		os.Unsetenv("GRAPHMEM_API_KEY")
		os.Unsetenv("GRAPHMEM_PORT")
		os.Unsetenv("GRAPHMEM_DEBUG")
		os.Unsetenv("GRAPHMEM_NEO4J_HOST")
		os.Unsetenv("GRAPHMEM_NEO4J_PORT")
		os.Unsetenv("GRAPHMEM_NEO4J_PASSWORD")
		os.Unsetenv("GRAPHMEM_TENANT_PREFIX")
		os.Unsetenv("GRAPHMEM_OPENAI_API_KEY")
	}()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "graph.internal", cfg.Neo4jHost)
	assert.Equal(t, 7688, cfg.Neo4jPort)
	assert.Equal(t, "hunter2", cfg.Neo4jPassword)
	assert.Equal(t, "acme_", cfg.TenantPrefix)
	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
}

func TestLoad_Defaults(t *testing.T) {
	os.Setenv("GRAPHMEM_API_KEY", "secret")
	defer os.Unsetenv("GRAPHMEM_API_KEY")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "localhost", cfg.Neo4jHost)
	assert.Equal(t, 7687, cfg.Neo4jPort)
	assert.Equal(t, "neo4j", cfg.Neo4jUser)
	assert.Equal(t, "neo4j", cfg.Neo4jDatabase)
	assert.Equal(t, "tenant_", cfg.TenantPrefix)
	assert.Equal(t, "gpt-4o-mini", cfg.LLMModel)
	assert.Equal(t, "text-embedding-3-small", cfg.EmbedderModel)
}

func TestLoad_RequiredAPIKey(t *testing.T) {
	os.Unsetenv("GRAPHMEM_API_KEY")

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "API_KEY")
}

func TestBoltURI(t *testing.T) {
	cfg := &Config{Neo4jHost: "db.test", Neo4jPort: 7687}
	assert.Equal(t, "bolt://db.test:7687", cfg.BoltURI())
	assert.Equal(t, "db.test:7687", cfg.Neo4jEndpoint())
}

func TestHasOpenAI(t *testing.T) {
	cfg := &Config{OpenAIAPIKey: "sk-test"}
	assert.True(t, cfg.HasOpenAI())

	cfg.OpenAIAPIKey = ""
	assert.False(t, cfg.HasOpenAI())
}
