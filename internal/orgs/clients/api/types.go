package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/orghub/orgs-cli/internal/orgs/models"
)

// Interface implementation check.
var _ ClientInterface = &Client{}

// Client implements the HTTP API client with bearer-token authentication.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient HTTPClientInterface
}

// ClientInterface defines the contract for making API calls.
// This interface focuses on business operations rather than low-level HTTP details.
type ClientInterface interface {
	GetOrganizations(ctx context.Context) ([]models.Organization, error)
	GetOrganizationByID(ctx context.Context, orgID string) (models.Organization, error)
	CreateOrganization(ctx context.Context, name string) (models.Organization, error)
	DeleteOrganization(ctx context.Context, orgID string) error
	GetOrganizationMembers(ctx context.Context, orgID string) ([]models.OrganizationMember, error)
	AddOrganizationMember(ctx context.Context, orgID, userID, role string) (models.OrganizationMember, error)
	UpdateOrganizationMember(ctx context.Context, orgID, memberID, role string) (models.OrganizationMember, error)
	RemoveOrganizationMember(ctx context.Context, orgID, memberID string) error

	// Utility methods
	SetAuthToken(token string)
	SetBaseURL(baseURL string)
}

// HTTPClientInterface allows for mocking the underlying HTTP client.
type HTTPClientInterface interface {
	Do(req *http.Request) (*http.Response, error)
}

// StatusError is a non-2xx response from the backend. Message is extracted
// from the JSON error body on a best-effort basis; Status is always set so
// the operator can see the HTTP status code even when the body was unusable.
type StatusError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return e.Status
	}
	return fmt.Sprintf("%s: %s", e.Status, e.Message)
}
