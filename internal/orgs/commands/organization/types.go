package organization

import (
	"github.com/orghub/orgs-cli/internal/orgs/clients/api"
	"github.com/orghub/orgs-cli/internal/orgs/interfaces"
	"github.com/orghub/orgs-cli/internal/orgs/services/input"
	"github.com/orghub/orgs-cli/internal/orgs/services/session"
)

// Interface guard.
var _ interfaces.OrganizationHandler = (*Handler)(nil)

type Handler struct {
	apiClient    api.ClientInterface
	inputService input.ServiceInterface
	session      session.ServiceInterface
}

func NewHandler(
	apiClient api.ClientInterface,
	inputService input.ServiceInterface,
	sessionService session.ServiceInterface,
) interfaces.OrganizationHandler {
	return &Handler{
		apiClient:    apiClient,
		inputService: inputService,
		session:      sessionService,
	}
}
