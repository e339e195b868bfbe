package client

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// SearchRequest represents the search API request.
type SearchRequest struct {
	TenantID     string `json:"tenant_id"`
	Query        string `json:"query"`
	Limit        int    `json:"limit,omitempty"`
	IncludeEdges *bool  `json:"include_edges,omitempty"`
}

// SearchResult represents a single search hit.
type SearchResult struct {
	UUID      string   `json:"uuid"`
	Content   string   `json:"content"`
	Score     *float64 `json:"score"`
	CreatedAt *string  `json:"created_at"`
}

// SearchResponse represents the search API response.
type SearchResponse struct {
	Success      bool           `json:"success"`
	Query        string         `json:"query"`
	GroupID      string         `json:"group_id"`
	ResultsCount int            `json:"results_count"`
	Results      []SearchResult `json:"results"`
}

// SearchCmd creates the search command.
func SearchCmd() *cobra.Command {
	var (
		tenantID string
		limit    int
		noEdges  bool
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search a tenant's knowledge graph",
		Long:  "Runs a hybrid search (semantic similarity, BM25 and graph traversal) scoped to one tenant.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("output")

			api, err := NewAPIClientWithCmd(cmd)
			if err != nil {
				return err
			}

			req := SearchRequest{
				TenantID: tenantID,
				Query:    args[0],
				Limit:    limit,
			}
			if noEdges {
				includeEdges := false
				req.IncludeEdges = &includeEdges
			}

			raw, err := api.Post("/search", req)
			if err != nil {
				return fmt.Errorf("search failed: %w", err)
			}

			var resp SearchResponse
			if err := json.Unmarshal(raw, &resp); err != nil {
				return fmt.Errorf("failed to parse search results: %w", err)
			}

			if outputJSON {
				output, _ := json.MarshalIndent(resp, "", "  ")
				fmt.Println(string(output))
				return nil
			}

			if resp.ResultsCount == 0 {
				fmt.Println("No results found.")
				return nil
			}

			fmt.Printf("Found %d results:\n\n", resp.ResultsCount)
			for i, result := range resp.Results {
				if result.Score != nil {
					fmt.Printf("%d. (%.2f) %s\n", i+1, *result.Score, result.Content)
				} else {
					fmt.Printf("%d. %s\n", i+1, result.Content)
				}
				fmt.Printf("   UUID: %s\n", result.UUID)
				if i < len(resp.Results)-1 {
					fmt.Println(strings.Repeat("-", 40))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&tenantID, "tenant", "t", "", "Tenant ID (required)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of results")
	cmd.Flags().BoolVar(&noEdges, "no-edges", false, "Exclude relationship facts from results")
	_ = cmd.MarkFlagRequired("tenant")

	return cmd
}
