package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/recallgate/graphmem/internal/cli/client"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "graphmem",
		Short: "Graphmem CLI - temporal knowledge-graph memory for AI agents",
		Long: `Graphmem CLI provides commands against the graphmem API gateway.

Environment variables:
  GRAPHMEM_API_KEY   API key for authentication (required)
  GRAPHMEM_API_URL   API base URL (default: http://localhost:8080)`,
		Version: version,
	}

	rootCmd.PersistentFlags().Bool("output", false, "Output as JSON")
	rootCmd.PersistentFlags().String("api-key", "", "API key for authentication (overrides env)")
	rootCmd.PersistentFlags().String("api-url", "", "API base URL (overrides env)")

	rootCmd.AddCommand(client.HealthCmd())
	rootCmd.AddCommand(client.AddCmd())
	rootCmd.AddCommand(client.SearchCmd())
	rootCmd.AddCommand(client.EntitiesCmd())
	rootCmd.AddCommand(client.StatsCmd())
	rootCmd.AddCommand(client.DeleteTenantCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
