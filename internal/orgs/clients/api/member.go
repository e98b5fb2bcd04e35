package api

import (
	"context"
	"fmt"

	"github.com/rotisserie/eris"

	"github.com/orghub/orgs-cli/internal/orgs/models"
)

var (
	ErrNoUserID = eris.New("user ID is required")
	ErrNoRole   = eris.New("member role is required")
)

// ========================================
// Membership Management Methods
// ========================================

// GetOrganizationMembers retrieves the member list of an organization.
func (c *Client) GetOrganizationMembers(ctx context.Context, orgID string) ([]models.OrganizationMember, error) {
	if c.Token == "" {
		return nil, ErrNoToken
	}
	if orgID == "" {
		return nil, ErrNoOrganizationID
	}

	endpoint := fmt.Sprintf("/organizations/%s/members", orgID)
	body, err := c.sendRequest(ctx, get, endpoint, nil)
	if err != nil {
		return nil, eris.Wrap(err, "Failed to get organization members")
	}

	return parseResponse[[]models.OrganizationMember](body)
}

// AddOrganizationMember adds a user to an organization with the given role.
func (c *Client) AddOrganizationMember(
	ctx context.Context,
	orgID, userID, role string,
) (models.OrganizationMember, error) {
	if c.Token == "" {
		return models.OrganizationMember{}, ErrNoToken
	}
	if orgID == "" {
		return models.OrganizationMember{}, ErrNoOrganizationID
	}
	if userID == "" {
		return models.OrganizationMember{}, ErrNoUserID
	}
	if role == "" {
		return models.OrganizationMember{}, ErrNoRole
	}

	payload := map[string]string{
		"user_id": userID,
		"role":    role,
	}

	endpoint := fmt.Sprintf("/organizations/%s/members", orgID)
	body, err := c.sendRequest(ctx, post, endpoint, payload)
	if err != nil {
		return models.OrganizationMember{}, eris.Wrap(err, "Failed to add organization member")
	}

	return parseResponse[models.OrganizationMember](body)
}

// UpdateOrganizationMember changes a member's role.
func (c *Client) UpdateOrganizationMember(
	ctx context.Context,
	orgID, memberID, role string,
) (models.OrganizationMember, error) {
	if c.Token == "" {
		return models.OrganizationMember{}, ErrNoToken
	}
	if orgID == "" {
		return models.OrganizationMember{}, ErrNoOrganizationID
	}
	if memberID == "" {
		return models.OrganizationMember{}, ErrNoUserID
	}
	if role == "" {
		return models.OrganizationMember{}, ErrNoRole
	}

	payload := map[string]string{
		"role": role,
	}

	endpoint := fmt.Sprintf("/organizations/%s/members/%s", orgID, memberID)
	body, err := c.sendRequest(ctx, patch, endpoint, payload)
	if err != nil {
		return models.OrganizationMember{}, eris.Wrap(err, "Failed to update organization member")
	}

	return parseResponse[models.OrganizationMember](body)
}

// RemoveOrganizationMember removes a user from an organization.
func (c *Client) RemoveOrganizationMember(ctx context.Context, orgID, memberID string) error {
	if c.Token == "" {
		return ErrNoToken
	}
	if orgID == "" {
		return ErrNoOrganizationID
	}
	if memberID == "" {
		return ErrNoUserID
	}

	endpoint := fmt.Sprintf("/organizations/%s/members/%s", orgID, memberID)
	_, err := c.sendRequest(ctx, del, endpoint, nil)
	if err != nil {
		return eris.Wrap(err, "Failed to remove organization member")
	}

	return nil
}
