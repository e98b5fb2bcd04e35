package interfaces

import (
	"context"

	"github.com/orghub/orgs-cli/internal/orgs/models"
)

type MemberHandler interface {
	List(ctx context.Context, orgID string) error
	Add(
		ctx context.Context,
		orgID, userID string,
		flags models.AddMemberFlags,
	) (models.OrganizationMember, error)
	Update(
		ctx context.Context,
		orgID, memberID string,
		flags models.UpdateMemberFlags,
	) (models.OrganizationMember, error)
	Remove(
		ctx context.Context,
		orgID, memberID string,
		flags models.RemoveMemberFlags,
	) error
}
