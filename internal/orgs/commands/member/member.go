package member

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/orghub/orgs-cli/internal/orgs/models"
	"github.com/orghub/orgs-cli/internal/pkg/printer"
)

var ErrInvalidRole = eris.New("role must be one of: admin, staff")

// List prints the members of an organization grouped by role.
func (h *Handler) List(ctx context.Context, orgID string) error {
	if err := h.session.RequireToken(); err != nil {
		printer.Errorln("No authentication token set. Pass one with --token.")
		return err
	}

	members, err := h.apiClient.GetOrganizationMembers(ctx, orgID)
	if err != nil {
		return eris.Wrap(err, "List: Failed to get organization members")
	}

	if len(members) == 0 {
		printer.Infof("No members found for organization: %s\n", orgID)
		return nil
	}

	membersByRole := make(map[models.Role][]models.OrganizationMember)
	for _, m := range members {
		role := m.Role
		if _, ok := models.RolesMap[role]; !ok {
			role = models.RoleNone
		}
		membersByRole[role] = append(membersByRole[role], m)
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
		for _, m := range membersInRole {
			printer.Infof("%s (invited by %s)", m.UserID, m.InvitedBy)
			printer.NewLine(1)
		}
	}

	return nil
}

// Add adds a user to an organization. The role is validated locally so an
// unknown role never reaches the network.
func (h *Handler) Add(
	ctx context.Context,
	orgID, userID string,
	flags models.AddMemberFlags,
) (models.OrganizationMember, error) {
	if err := h.session.RequireToken(); err != nil {
		printer.Errorln("No authentication token set. Pass one with --token.")
		return models.OrganizationMember{}, err
	}

	role := flags.Role
	if role == "" {
		role = string(models.RoleStaff)
	}
	if _, ok := models.RolesMap[models.Role(role)]; !ok {
		printer.Errorf("Invalid role: %s\n", role)
		return models.OrganizationMember{}, ErrInvalidRole
	}

	added, err := h.apiClient.AddOrganizationMember(ctx, orgID, userID, role)
	if err != nil {
		return models.OrganizationMember{}, eris.Wrap(err, "Add: Failed to add organization member")
	}

	printer.Successf("Added %s to organization %s as %s\n", added.UserID, added.OrgID, added.Role)
	return added, nil
}

// Update changes a member's role within an organization.
func (h *Handler) Update(
	ctx context.Context,
	orgID, memberID string,
	flags models.UpdateMemberFlags,
) (models.OrganizationMember, error) {
	if err := h.session.RequireToken(); err != nil {
		printer.Errorln("No authentication token set. Pass one with --token.")
		return models.OrganizationMember{}, err
	}

	if _, ok := models.RolesMap[models.Role(flags.Role)]; !ok {
		printer.Errorf("Invalid role: %s\n", flags.Role)
		return models.OrganizationMember{}, ErrInvalidRole
	}

	updated, err := h.apiClient.UpdateOrganizationMember(ctx, orgID, memberID, flags.Role)
	if err != nil {
		return models.OrganizationMember{}, eris.Wrap(err, "Update: Failed to update organization member")
	}

	printer.Successf("Updated role for %s: %s\n", updated.UserID, updated.Role)
	return updated, nil
}

// Remove removes a user from an organization after confirmation. Declining
// aborts with no network call.
func (h *Handler) Remove(
	ctx context.Context,
	orgID, memberID string,
	flags models.RemoveMemberFlags,
) error {
	if err := h.session.RequireToken(); err != nil {
		printer.Errorln("No authentication token set. Pass one with --token.")
		return err
	}

	if !flags.Yes {
		confirmed, err := h.inputService.Confirm(ctx,
			"Remove "+memberID+" from organization "+orgID+"? (y/n)", "n")
		if err != nil {
			return eris.Wrap(err, "Failed to read confirmation")
		}
		if !confirmed {
			printer.Infoln("Removal aborted.")
			return nil
		}
	}

	if err := h.apiClient.RemoveOrganizationMember(ctx, orgID, memberID); err != nil {
		return eris.Wrap(err, "Remove: Failed to remove organization member")
	}

	printer.Successf("Removed %s from organization %s\n", memberID, orgID)
	return nil
}
