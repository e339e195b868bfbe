package client

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// HealthResponse represents the health API response.
type HealthResponse struct {
	Status string `json:"status"`
	Graph  string `json:"graph"`
	Neo4j  string `json:"neo4j"`
}

// HealthCmd creates the health command.
func HealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check gateway health",
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("output")

			api, err := NewAPIClientWithCmd(cmd)
			if err != nil {
				// Health is unauthenticated; fall back to just the URL.
				api = NewAPIClientWithConfig("", apiURLFromCmd(cmd))
			}

			raw, err := api.Get("/health")
			if err != nil {
				return fmt.Errorf("health check failed: %w", err)
			}

			var resp HealthResponse
			if err := json.Unmarshal(raw, &resp); err != nil {
				return fmt.Errorf("failed to parse health response: %w", err)
			}

			if outputJSON {
				output, _ := json.MarshalIndent(resp, "", "  ")
				fmt.Println(string(output))
				return nil
			}

			fmt.Printf("status: %s\n", resp.Status)
			fmt.Printf("graph:  %s\n", resp.Graph)
			fmt.Printf("neo4j:  %s\n", resp.Neo4j)
			return nil
		},
	}
}

func apiURLFromCmd(cmd *cobra.Command) string {
	if cmd != nil {
		if flagURL, err := cmd.Flags().GetString("api-url"); err == nil && flagURL != "" {
			return flagURL
		}
	}
	if url := getenvAPIURL(); url != "" {
		return url
	}
	return defaultAPIURL
}
