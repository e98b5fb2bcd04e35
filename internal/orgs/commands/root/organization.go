package root

import (
	"github.com/spf13/cobra"

	"github.com/orghub/orgs-cli/internal/orgs/cmdsetup"
	"github.com/orghub/orgs-cli/internal/orgs/models"
)

// organizationCmd builds the `orgs organization` command tree.
// Usage: `orgs organization [list|get|create|delete]`
func organizationCmd() *cobra.Command {
	orgCmd := &cobra.Command{
		Use:     "organization",
		Aliases: []string{"org"},
		Short:   "Manage your organizations",
		GroupID: "org",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the organizations you belong to",
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps := cmdsetup.Setup(cmd)
			return deps.OrganizationHandler.List(cmd.Context())
		},
	}

	getCmd := &cobra.Command{
		Use:   "get <org-id>",
		Short: "Show one organization with its members",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps := cmdsetup.Setup(cmd)
			return deps.OrganizationHandler.Get(cmd.Context(), args[0])
		},
	}

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new organization",
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps := cmdsetup.Setup(cmd)
			name, _ := cmd.Flags().GetString("name")
			_, err := deps.OrganizationHandler.Create(cmd.Context(), models.CreateOrganizationFlags{
				Name: name,
			})
			return err
		},
	}
	createCmd.Flags().String("name", "", "The name of the organization")

	deleteCmd := &cobra.Command{
		Use:   "delete <org-id>",
		Short: "Delete an organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps := cmdsetup.Setup(cmd)
			yes, _ := cmd.Flags().GetBool("yes")
			return deps.OrganizationHandler.Delete(cmd.Context(), args[0], models.DeleteOrganizationFlags{
				Yes: yes,
			})
		},
	}
	deleteCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")

	orgCmd.AddCommand(listCmd, getCmd, createCmd, deleteCmd)
	return orgCmd
}
