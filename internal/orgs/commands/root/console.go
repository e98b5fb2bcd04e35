package root

import (
	"github.com/spf13/cobra"

	"github.com/orghub/orgs-cli/internal/orgs/cmdsetup"
	"github.com/orghub/orgs-cli/internal/orgs/console"
)

// consoleCmd launches the interactive console.
// Usage: `orgs console`
var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Open the interactive organization console",
	Long: `Open a full-screen console for managing organizations.

Set the backend URL and bearer token in the connection fields, then use the
list to load, create, and delete organizations. Nothing is persisted; the
session ends when the console exits.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		deps := cmdsetup.Setup(cmd)
		return console.Run(deps.APIClient, deps.Session)
	},
}
