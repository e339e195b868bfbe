package client

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// StatsResponse represents the stats API response.
type StatsResponse struct {
	Success       bool   `json:"success"`
	TenantID      string `json:"tenant_id"`
	GroupID       string `json:"group_id"`
	EpisodesCount int64  `json:"episodes_count"`
	EntitiesCount int64  `json:"entities_count"`
	NodesCount    int64  `json:"nodes_count"`
	EdgesCount    int64  `json:"edges_count"`
}

// StatsCmd creates the stats command.
func StatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <tenant-id>",
		Short: "Show a tenant's graph statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("output")

			api, err := NewAPIClientWithCmd(cmd)
			if err != nil {
				return err
			}

			raw, err := api.Get("/stats/" + args[0])
			if err != nil {
				return fmt.Errorf("stats failed: %w", err)
			}

			var resp StatsResponse
			if err := json.Unmarshal(raw, &resp); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			if outputJSON {
				output, _ := json.MarshalIndent(resp, "", "  ")
				fmt.Println(string(output))
				return nil
			}

			fmt.Printf("tenant:   %s (group %s)\n", resp.TenantID, resp.GroupID)
			fmt.Printf("episodes: %d\n", resp.EpisodesCount)
			fmt.Printf("entities: %d\n", resp.EntitiesCount)
			fmt.Printf("nodes:    %d\n", resp.NodesCount)
			fmt.Printf("edges:    %d\n", resp.EdgesCount)
			return nil
		},
	}
}
