package organization

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/orghub/orgs-cli/internal/pkg/printer"
)

// List fetches and prints the organizations the operator belongs to.
func (h *Handler) List(ctx context.Context) error {
	if err := h.session.RequireToken(); err != nil {
		printer.Errorln("No authentication token set. Pass one with --token.")
		return err
	}

	orgs, err := h.apiClient.GetOrganizations(ctx)
	if err != nil {
		return eris.Wrap(err, "List: Failed to get organizations")
	}

	if len(orgs) == 0 {
		h.PrintNoOrganizations()
		return nil
	}

	printer.NewLine(1)
	printer.Headerln("  Organizations  ")
	for _, org := range orgs {
		printer.Infof("  %s (%s)", org.Name, org.OrgID)
		if org.Role != "" {
			printer.Infof(" [%s]", org.Role)
		}
		printer.NewLine(1)
	}
	return nil
}
