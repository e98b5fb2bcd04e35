package organization

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/orghub/orgs-cli/internal/orgs/models"
	"github.com/orghub/orgs-cli/internal/pkg/printer"
)

// Get fetches one organization and prints its details and member listing.
func (h *Handler) Get(ctx context.Context, orgID string) error {
	if err := h.session.RequireToken(); err != nil {
		printer.Errorln("No authentication token set. Pass one with --token.")
		return err
	}

	org, err := h.apiClient.GetOrganizationByID(ctx, orgID)
	if err != nil {
		return eris.Wrap(err, "Get: Failed to get organization")
	}

	printer.NewLine(1)
	printer.Headerln("  Organization Details  ")
	printer.Infof("Name:       %s\n", org.Name)
	printer.Infof("ID:         %s\n", org.OrgID)
	printer.Infof("Created by: %s\n", org.CreatedBy)
	printer.Infof("Created at: %s\n", org.CreatedAt)

	showMembersByRole(org.Members)
	return nil
}

// showMembersByRole prints members grouped by role in a fixed display order.
func showMembersByRole(members []models.OrganizationMember) {
	if len(members) == 0 {
		return
	}

	membersByRole := make(map[models.Role][]models.OrganizationMember)
	for _, member := range members {
		role := member.Role
		if _, ok := models.RolesMap[role]; !ok {
			role = models.RoleNone
		}
		membersByRole[role] = append(membersByRole[role], member)
	}

	roleOrder := []models.Role{
		models.RoleAdmin,
		models.RoleStaff,
		models.RoleNone,
	}

	for _, role := range roleOrder {
		membersInRole, exists := membersByRole[role]
		if !exists {
			continue
		}

		printer.NewLine(1)
		printer.Headerf("  %s  ", role)
		printer.NewLine(1)
		for _, member := range membersInRole {
			printer.Infof("%s (invited by %s)", member.UserID, member.InvitedBy)
			printer.NewLine(1)
		}
	}
}
