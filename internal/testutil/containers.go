package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Neo4jContainer represents a Neo4j container for testing
type Neo4jContainer struct {
	Container testcontainers.Container
	Host      string
	Port      string
	User      string
	Password  string
}

// NewNeo4jContainer creates and starts a Neo4j container
func NewNeo4jContainer(ctx context.Context, t *testing.T) *Neo4jContainer {
	req := testcontainers.ContainerRequest{
		Image:        "neo4j:5.26",
		ExposedPorts: []string{"7687/tcp"},
		Env: map[string]string{
			"NEO4J_AUTH": "neo4j/graphmemtest",
		},
		WaitingFor: wait.ForAll(
			wait.ForLog("Started."),
			wait.ForListeningPort("7687/tcp"),
		).WithStartupTimeout(120 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("failed to create neo4j container: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %v", err)
	}

	port, err := container.MappedPort(ctx, "7687")
	if err != nil {
		t.Fatalf("failed to get container port: %v", err)
	}

	return &Neo4jContainer{
		Container: container,
		Host:      host,
		Port:      port.Port(),
		User:      "neo4j",
		Password:  "graphmemtest",
	}
}

// BoltURI returns the bolt connection URI for the container
func (nc *Neo4jContainer) BoltURI() string {
	return fmt.Sprintf("bolt://%s:%s", nc.Host, nc.Port)
}

// Endpoint returns the host:port string for the container
func (nc *Neo4jContainer) Endpoint() string {
	return fmt.Sprintf("%s:%s", nc.Host, nc.Port)
}

// Terminate stops and removes the container
func (nc *Neo4jContainer) Terminate(ctx context.Context) error {
	return testcontainers.TerminateContainer(nc.Container)
}
