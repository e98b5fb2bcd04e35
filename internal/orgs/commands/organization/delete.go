package organization

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/orghub/orgs-cli/internal/orgs/models"
	"github.com/orghub/orgs-cli/internal/pkg/printer"
)

// Delete removes an organization after an explicit confirmation. Declining
// the confirmation aborts with no network call and no error.
func (h *Handler) Delete(
	ctx context.Context,
	orgID string,
	flags models.DeleteOrganizationFlags,
) error {
	if err := h.session.RequireToken(); err != nil {
		printer.Errorln("No authentication token set. Pass one with --token.")
		return err
	}

	if !flags.Yes {
		printer.NewLine(1)
		printer.Notificationln("Deleting an organization cannot be undone.")
		confirmed, err := h.inputService.Confirm(ctx, "Delete organization "+orgID+"? (y/n)", "n")
		if err != nil {
			return eris.Wrap(err, "Failed to read confirmation")
		}
		if !confirmed {
			printer.Infoln("Deletion aborted.")
			return nil
		}
	}

	if err := h.apiClient.DeleteOrganization(ctx, orgID); err != nil {
		return eris.Wrap(err, "Delete: Failed to delete organization")
	}

	printer.Successf("Organization %s deleted\n", orgID)
	return nil
}
