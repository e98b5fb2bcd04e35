package organization

import (
	"github.com/orghub/orgs-cli/internal/pkg/printer"
)

func (h *Handler) PrintNoOrganizations() {
	printer.NewLine(1)
	printer.Headerln("   No Organizations Found   ")
	printer.Info("Use ")
	printer.Notification("'orgs organization create'")
	printer.Infoln(" to create one.")
}
