package client

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// DeleteTenantResponse represents the delete-tenant API response.
type DeleteTenantResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	GroupID string `json:"group_id"`
}

// DeleteTenantCmd creates the delete-tenant command.
func DeleteTenantCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete-tenant <tenant-id>",
		Short: "Delete all graph data for a tenant",
		Long:  "Irreversibly deletes every episode, entity and relationship for the tenant.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tenantID := args[0]
			outputJSON, _ := cmd.Flags().GetBool("output")

			if !yes {
				fmt.Printf("This will permanently delete all data for tenant %q. Type the tenant ID to confirm: ", tenantID)
				reader := bufio.NewReader(os.Stdin)
				line, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("failed to read confirmation: %w", err)
				}
				if strings.TrimSpace(line) != tenantID {
					return fmt.Errorf("confirmation did not match, aborting")
				}
			}

			api, err := NewAPIClientWithCmd(cmd)
			if err != nil {
				return err
			}

			raw, err := api.Delete("/tenant/" + tenantID + "?confirm=true")
			if err != nil {
				return fmt.Errorf("delete tenant failed: %w", err)
			}

			var resp DeleteTenantResponse
			if err := json.Unmarshal(raw, &resp); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			if outputJSON {
				output, _ := json.MarshalIndent(resp, "", "  ")
				fmt.Println(string(output))
				return nil
			}

			fmt.Println(resp.Message)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the interactive confirmation")

	return cmd
}
