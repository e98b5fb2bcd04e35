package interfaces

import (
	"context"

	"github.com/orghub/orgs-cli/internal/orgs/models"
)

type OrganizationHandler interface {
	List(ctx context.Context) error
	Get(ctx context.Context, orgID string) error
	Create(
		ctx context.Context,
		flags models.CreateOrganizationFlags,
	) (models.Organization, error)
	Delete(
		ctx context.Context,
		orgID string,
		flags models.DeleteOrganizationFlags,
	) error

	// Utils
	PrintNoOrganizations()
}
