package root

import (
	"github.com/spf13/cobra"

	"github.com/orghub/orgs-cli/internal/orgs/cmdsetup"
	"github.com/orghub/orgs-cli/internal/pkg/logger"
	"github.com/orghub/orgs-cli/internal/pkg/tea/style"
)

func init() {
	// Enable case-insensitive commands
	cobra.EnableCaseInsensitive = true

	// Register groups
	rootCmd.AddGroup(&cobra.Group{ID: "org", Title: "Organization Commands:"})
	rootCmd.AddGroup(&cobra.Group{ID: "member", Title: "Member Commands:"})

	// Register base commands
	rootCmd.AddCommand(consoleCmd, versionCmd)

	// Register subcommands
	rootCmd.AddCommand(organizationCmd())
	rootCmd.AddCommand(memberCmd())

	// Session flags shared by every command: the base URL and token live in
	// memory for the duration of the process only.
	cmdsetup.AddSessionFlags(rootCmd)

	// Add --debug flag
	logger.AddLogFlag(rootCmd)
}

// rootCmd represents the base command
// Usage: `orgs`
var rootCmd = &cobra.Command{
	Use:   "orgs",
	Short: "An administration console for backend organizations",
	Long:  style.CLIHeader("Organization Console", "Create, inspect, and delete organizations on an agent-server backend"),
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		logger.SetDebugMode(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Errors(err)
	}
	// print log stack
	logger.PrintLogs()
}
