package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	Debug       bool   `envconfig:"DEBUG" default:"false"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"`

	SentryDSN        string  `envconfig:"SENTRY_DSN"`
	SentryTracesRate float64 `envconfig:"SENTRY_TRACES_SAMPLE_RATE" default:"1.0"`

	Neo4jHost     string `envconfig:"NEO4J_HOST" default:"localhost"`
	Neo4jPort     int    `envconfig:"NEO4J_PORT" default:"7687"`
	Neo4jUser     string `envconfig:"NEO4J_USER" default:"neo4j"`
	Neo4jPassword string `envconfig:"NEO4J_PASSWORD"`
	Neo4jDatabase string `envconfig:"NEO4J_DATABASE" default:"neo4j"`

	// APIKey is the shared secret every authenticated request must present
	// in the X-API-KEY header.
	APIKey string `envconfig:"API_KEY" required:"true"`

	// TenantPrefix is prepended to tenant IDs to form the engine group key.
	TenantPrefix string `envconfig:"TENANT_PREFIX" default:"tenant_"`

	OpenAIAPIKey  string `envconfig:"OPENAI_API_KEY"`
	LLMModel      string `envconfig:"LLM_MODEL" default:"gpt-4o-mini"`
	EmbedderModel string `envconfig:"EMBEDDER_MODEL" default:"text-embedding-3-small"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("GRAPHMEM", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

// BoltURI returns the bolt connection URI for the configured Neo4j instance.
func (c *Config) BoltURI() string {
	return fmt.Sprintf("bolt://%s:%d", c.Neo4jHost, c.Neo4jPort)
}

// Neo4jEndpoint is the host:port string reported by the health endpoint.
func (c *Config) Neo4jEndpoint() string {
	return fmt.Sprintf("%s:%d", c.Neo4jHost, c.Neo4jPort)
}

func (c *Config) HasOpenAI() bool {
	return c.OpenAIAPIKey != ""
}
