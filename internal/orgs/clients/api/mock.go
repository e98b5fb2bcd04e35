package api

import (
	"context"
	"net/http"

	"github.com/stretchr/testify/mock"

	"github.com/orghub/orgs-cli/internal/orgs/models"
)

// Ensure MockClient implements the interface.
var _ ClientInterface = (*MockClient)(nil)

// MockClient is a mock implementation of ClientInterface.
type MockClient struct {
	mock.Mock
}

// GetOrganizations mocks getting organizations.
func (m *MockClient) GetOrganizations(ctx context.Context) ([]models.Organization, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Organization), args.Error(1)
}

// GetOrganizationByID mocks getting an organization by ID.
func (m *MockClient) GetOrganizationByID(ctx context.Context, orgID string) (models.Organization, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).(models.Organization), args.Error(1)
}

// CreateOrganization mocks creating an organization.
func (m *MockClient) CreateOrganization(ctx context.Context, name string) (models.Organization, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(models.Organization), args.Error(1)
}

// DeleteOrganization mocks deleting an organization.
func (m *MockClient) DeleteOrganization(ctx context.Context, orgID string) error {
	args := m.Called(ctx, orgID)
	return args.Error(0)
}

// GetOrganizationMembers mocks getting organization members.
func (m *MockClient) GetOrganizationMembers(ctx context.Context, orgID string) ([]models.OrganizationMember, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).([]models.OrganizationMember), args.Error(1)
}

// AddOrganizationMember mocks adding a member to an organization.
func (m *MockClient) AddOrganizationMember(
	ctx context.Context,
	orgID, userID, role string,
) (models.OrganizationMember, error) {
	args := m.Called(ctx, orgID, userID, role)
	return args.Get(0).(models.OrganizationMember), args.Error(1)
}

// UpdateOrganizationMember mocks updating a member's role.
func (m *MockClient) UpdateOrganizationMember(
	ctx context.Context,
	orgID, memberID, role string,
) (models.OrganizationMember, error) {
	args := m.Called(ctx, orgID, memberID, role)
	return args.Get(0).(models.OrganizationMember), args.Error(1)
}

// RemoveOrganizationMember mocks removing a member from an organization.
func (m *MockClient) RemoveOrganizationMember(ctx context.Context, orgID, memberID string) error {
	args := m.Called(ctx, orgID, memberID)
	return args.Error(0)
}

// SetAuthToken mocks setting the auth token.
func (m *MockClient) SetAuthToken(token string) {
	m.Called(token)
}

// SetBaseURL mocks setting the base URL.
func (m *MockClient) SetBaseURL(baseURL string) {
	m.Called(baseURL)
}

// MockHTTPClient is a mock implementation of HTTPClientInterface for testing.
type MockHTTPClient struct {
	mock.Mock
}

// Do mocks the HTTP client's Do method.
func (m *MockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	resp, _ := args.Get(0).(*http.Response)
	return resp, args.Error(1)
}
