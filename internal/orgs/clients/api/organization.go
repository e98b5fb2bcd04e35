package api

import (
	"context"
	"fmt"

	"github.com/rotisserie/eris"

	"github.com/orghub/orgs-cli/internal/orgs/models"
)

var (
	ErrNoToken            = eris.New("authentication token is required")
	ErrNoOrganizationID   = eris.New("organization ID is required")
	ErrNoOrganizationName = eris.New("organization name is required")
)

// ========================================
// Organization Management Methods
// ========================================

// GetOrganizations retrieves the list of organizations the operator belongs to.
func (c *Client) GetOrganizations(ctx context.Context) ([]models.Organization, error) {
	if c.Token == "" {
		return nil, ErrNoToken
	}

	body, err := c.sendRequest(ctx, get, "/organizations", nil)
	if err != nil {
		return nil, eris.Wrap(err, "Failed to get organizations")
	}

	return parseResponse[[]models.Organization](body)
}

// GetOrganizationByID retrieves a specific organization, including its members.
func (c *Client) GetOrganizationByID(ctx context.Context, orgID string) (models.Organization, error) {
	if c.Token == "" {
		return models.Organization{}, ErrNoToken
	}
	if orgID == "" {
		return models.Organization{}, ErrNoOrganizationID
	}

	endpoint := fmt.Sprintf("/organizations/%s", orgID)
	body, err := c.sendRequest(ctx, get, endpoint, nil)
	if err != nil {
		return models.Organization{}, eris.Wrap(err, "Failed to get organization by ID")
	}

	return parseResponse[models.Organization](body)
}

// CreateOrganization creates a new organization. The backend makes the caller
// an admin member of the new record.
func (c *Client) CreateOrganization(ctx context.Context, name string) (models.Organization, error) {
	if c.Token == "" {
		return models.Organization{}, ErrNoToken
	}
	if name == "" {
		return models.Organization{}, ErrNoOrganizationName
	}

	payload := map[string]string{
		"name": name,
	}

	body, err := c.sendRequest(ctx, post, "/organizations", payload)
	if err != nil {
		return models.Organization{}, eris.Wrap(err, "Failed to create organization")
	}

	return parseResponse[models.Organization](body)
}

// DeleteOrganization deletes an organization by ID.
func (c *Client) DeleteOrganization(ctx context.Context, orgID string) error {
	if c.Token == "" {
		return ErrNoToken
	}
	if orgID == "" {
		return ErrNoOrganizationID
	}

	endpoint := fmt.Sprintf("/organizations/%s", orgID)
	_, err := c.sendRequest(ctx, del, endpoint, nil)
	if err != nil {
		return eris.Wrap(err, "Failed to delete organization")
	}

	return nil
}
