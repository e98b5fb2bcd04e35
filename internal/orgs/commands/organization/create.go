package organization

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/orghub/orgs-cli/internal/orgs/models"
	"github.com/orghub/orgs-cli/internal/pkg/printer"
)

var ErrOrganizationNameRequired = eris.New("organization name is required")

// Create creates a new organization. When the name flag is empty the operator
// is prompted for one; an empty name never reaches the network.
func (h *Handler) Create(
	ctx context.Context,
	flags models.CreateOrganizationFlags,
) (models.Organization, error) {
	if err := h.session.RequireToken(); err != nil {
		printer.Errorln("No authentication token set. Pass one with --token.")
		return models.Organization{}, err
	}

	orgName := flags.Name
	if orgName == "" {
		printer.NewLine(1)
		printer.Headerln("  Create New Organization  ")

		var err error
		orgName, err = h.inputService.Prompt(ctx, "Enter organization name", "")
		if err != nil {
			return models.Organization{}, eris.Wrap(err, "Failed to read organization name")
		}
	}

	if orgName == "" {
		printer.Errorln("Organization name is required")
		return models.Organization{}, ErrOrganizationNameRequired
	}

	org, err := h.apiClient.CreateOrganization(ctx, orgName)
	if err != nil {
		return models.Organization{}, eris.Wrap(err, "Create: Failed to create organization")
	}

	// The backend makes the creator an admin member; mirror that on the
	// returned record when the response left the field empty. This is a local
	// annotation, not server truth.
	if org.Role == "" {
		org.Role = models.RoleAdmin
	}

	printer.NewLine(1)
	printer.Successf("Organization '%s' created with ID %s\n", org.Name, org.OrgID)
	printer.Infof("Your role: %s\n", org.Role)
	return org, nil
}
