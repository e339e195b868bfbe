package client

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// Entity represents a single extracted entity.
type Entity struct {
	Name    string  `json:"name"`
	Type    *string `json:"type"`
	Summary *string `json:"summary"`
}

// EntitiesResponse represents the entities API response.
type EntitiesResponse struct {
	Success       bool     `json:"success"`
	GroupID       string   `json:"group_id"`
	EntitiesCount int      `json:"entities_count"`
	Entities      []Entity `json:"entities"`
}

// EntitiesCmd creates the entities command.
func EntitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "entities <tenant-id>",
		Short: "List a tenant's extracted entities",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("output")

			api, err := NewAPIClientWithCmd(cmd)
			if err != nil {
				return err
			}

			raw, err := api.Get("/entities/" + args[0])
			if err != nil {
				return fmt.Errorf("list entities failed: %w", err)
			}

			var resp EntitiesResponse
			if err := json.Unmarshal(raw, &resp); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			if outputJSON {
				output, _ := json.MarshalIndent(resp, "", "  ")
				fmt.Println(string(output))
				return nil
			}

			if resp.EntitiesCount == 0 {
				fmt.Println("No entities found.")
				return nil
			}

			fmt.Printf("%d entities (group %s):\n", resp.EntitiesCount, resp.GroupID)
			for _, entity := range resp.Entities {
				line := "- " + entity.Name
				if entity.Type != nil {
					line += " [" + *entity.Type + "]"
				}
				fmt.Println(line)
				if entity.Summary != nil && *entity.Summary != "" {
					fmt.Printf("  %s\n", *entity.Summary)
				}
			}
			return nil
		},
	}
}
