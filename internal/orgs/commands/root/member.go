package root

import (
	"github.com/spf13/cobra"

	"github.com/orghub/orgs-cli/internal/orgs/cmdsetup"
	"github.com/orghub/orgs-cli/internal/orgs/models"
)

// memberCmd builds the `orgs member` command tree.
// Usage: `orgs member [list|add|update|remove]`
func memberCmd() *cobra.Command {
	baseCmd := &cobra.Command{
		Use:     "member",
		Short:   "Manage organization membership",
		GroupID: "member",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	listCmd := &cobra.Command{
		Use:   "list <org-id>",
		Short: "List the members of an organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps := cmdsetup.Setup(cmd)
			return deps.MemberHandler.List(cmd.Context(), args[0])
		},
	}

	addCmd := &cobra.Command{
		Use:   "add <org-id> <user-id>",
		Short: "Add a user to an organization",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps := cmdsetup.Setup(cmd)
			role, _ := cmd.Flags().GetString("role")
			_, err := deps.MemberHandler.Add(cmd.Context(), args[0], args[1], models.AddMemberFlags{
				Role: role,
			})
			return err
		},
	}
	addCmd.Flags().String("role", string(models.RoleStaff), "Role for the user (admin or staff)")

	updateCmd := &cobra.Command{
		Use:   "update <org-id> <user-id>",
		Short: "Change a member's role",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps := cmdsetup.Setup(cmd)
			role, _ := cmd.Flags().GetString("role")
			_, err := deps.MemberHandler.Update(cmd.Context(), args[0], args[1], models.UpdateMemberFlags{
				Role: role,
			})
			return err
		},
	}
	updateCmd.Flags().String("role", "", "New role for the member (admin or staff)")
	_ = updateCmd.MarkFlagRequired("role")

	removeCmd := &cobra.Command{
		Use:   "remove <org-id> <user-id>",
		Short: "Remove a member from an organization",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps := cmdsetup.Setup(cmd)
			yes, _ := cmd.Flags().GetBool("yes")
			return deps.MemberHandler.Remove(cmd.Context(), args[0], args[1], models.RemoveMemberFlags{
				Yes: yes,
			})
		},
	}
	removeCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")

	baseCmd.AddCommand(listCmd, addCmd, updateCmd, removeCmd)
	return baseCmd
}
