package client

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// AddEpisodeRequest represents the episode ingestion API request.
type AddEpisodeRequest struct {
	TenantID          string `json:"tenant_id"`
	Content           string `json:"content"`
	Source            string `json:"source"`
	SourceDescription string `json:"source_description,omitempty"`
	ReferenceTime     string `json:"reference_time,omitempty"`
}

// AddEpisodeResponse represents the episode ingestion API response.
type AddEpisodeResponse struct {
	Success      bool   `json:"success"`
	GroupID      string `json:"group_id"`
	EpisodeID    string `json:"episode_id"`
	NodesCreated int    `json:"nodes_created"`
	EdgesCreated int    `json:"edges_created"`
}

// AddCmd creates the add command.
func AddCmd() *cobra.Command {
	var (
		tenantID      string
		source        string
		description   string
		referenceTime string
	)

	cmd := &cobra.Command{
		Use:   "add <content>",
		Short: "Add an episode to a tenant's knowledge graph",
		Long:  "Ingests one episode. Entity and relationship extraction runs server-side and can take a while.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("output")

			api, err := NewAPIClientWithCmd(cmd)
			if err != nil {
				return err
			}

			req := AddEpisodeRequest{
				TenantID:          tenantID,
				Content:           args[0],
				Source:            source,
				SourceDescription: description,
				ReferenceTime:     referenceTime,
			}

			raw, err := api.Post("/episodes", req)
			if err != nil {
				return fmt.Errorf("add episode failed: %w", err)
			}

			var resp AddEpisodeResponse
			if err := json.Unmarshal(raw, &resp); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			if outputJSON {
				output, _ := json.MarshalIndent(resp, "", "  ")
				fmt.Println(string(output))
				return nil
			}

			fmt.Printf("episode %s added (group %s)\n", resp.EpisodeID, resp.GroupID)
			fmt.Printf("nodes created: %d, edges created: %d\n", resp.NodesCreated, resp.EdgesCreated)
			return nil
		},
	}

	cmd.Flags().StringVarP(&tenantID, "tenant", "t", "", "Tenant ID (required)")
	cmd.Flags().StringVarP(&source, "source", "s", "message", "Source kind: message, text or json")
	cmd.Flags().StringVar(&description, "description", "", "Source description")
	cmd.Flags().StringVar(&referenceTime, "reference-time", "", "Episode reference time (RFC3339, default now)")
	_ = cmd.MarkFlagRequired("tenant")

	return cmd
}
