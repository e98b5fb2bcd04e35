package organization_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/orghub/orgs-cli/internal/orgs/clients/api"
	"github.com/orghub/orgs-cli/internal/orgs/commands/organization"
	"github.com/orghub/orgs-cli/internal/orgs/interfaces"
	"github.com/orghub/orgs-cli/internal/orgs/models"
	"github.com/orghub/orgs-cli/internal/orgs/services/input"
	"github.com/orghub/orgs-cli/internal/orgs/services/session"
)

// OrganizationTestSuite defines the test suite for the organization package.
type OrganizationTestSuite struct {
	suite.Suite
}

// Helper method to create fresh mocks and handler for each test.
func (s *OrganizationTestSuite) createTestHandler() (
	interfaces.OrganizationHandler, *input.MockService, *api.MockClient, *session.Service) {
	mockInputService := &input.MockService{}
	mockAPIClient := &api.MockClient{}
	sessionService := session.NewService("", "test-token")

	handler := organization.NewHandler(
		mockAPIClient,
		mockInputService,
		sessionService,
	)

	return handler, mockInputService, mockAPIClient, sessionService
}

// Test fixtures.
func (s *OrganizationTestSuite) createTestOrganization() models.Organization {
	return models.Organization{
		OrgID:     "org-123",
		Name:      "Test Organization",
		CreatedBy: "user-1",
		Role:      models.RoleAdmin,
	}
}

// TestOrganizationSuite runs the test suite.
func TestOrganizationSuite(t *testing.T) {
	suite.Run(t, new(OrganizationTestSuite))
}

func (s *OrganizationTestSuite) TestHandler_List_Success() {
	s.T().Parallel()

	handler, _, mockAPIClient, _ := s.createTestHandler()
	ctx := context.Background()

	mockAPIClient.On("GetOrganizations", ctx).
		Return([]models.Organization{s.createTestOrganization()}, nil)

	err := handler.List(ctx)

	s.Require().NoError(err)
	mockAPIClient.AssertExpectations(s.T())
}

func (s *OrganizationTestSuite) TestHandler_List_Empty() {
	s.T().Parallel()

	handler, _, mockAPIClient, _ := s.createTestHandler()
	ctx := context.Background()

	mockAPIClient.On("GetOrganizations", ctx).
		Return([]models.Organization{}, nil)

	err := handler.List(ctx)

	s.Require().NoError(err)
	mockAPIClient.AssertExpectations(s.T())
}

func (s *OrganizationTestSuite) TestHandler_List_NoToken() {
	s.T().Parallel()

	mockInputService := &input.MockService{}
	mockAPIClient := &api.MockClient{}
	sessionService := session.NewService("", "")
	handler := organization.NewHandler(mockAPIClient, mockInputService, sessionService)

	err := handler.List(context.Background())

	s.Require().ErrorIs(err, session.ErrNoToken)
	mockAPIClient.AssertNotCalled(s.T(), "GetOrganizations", mock.Anything)
}

func (s *OrganizationTestSuite) TestHandler_List_APIError() {
	s.T().Parallel()

	handler, _, mockAPIClient, _ := s.createTestHandler()
	ctx := context.Background()

	mockAPIClient.On("GetOrganizations", ctx).
		Return([]models.Organization(nil), errors.New("backend unreachable"))

	err := handler.List(ctx)

	s.Require().Error(err)
	s.Contains(err.Error(), "backend unreachable")
	mockAPIClient.AssertExpectations(s.T())
}

func (s *OrganizationTestSuite) TestHandler_Get_Success() {
	s.T().Parallel()

	handler, _, mockAPIClient, _ := s.createTestHandler()
	ctx := context.Background()
	testOrg := s.createTestOrganization()
	testOrg.Members = []models.OrganizationMember{
		{OrgID: "org-123", UserID: "user-1", Role: models.RoleAdmin},
		{OrgID: "org-123", UserID: "user-2", Role: models.RoleStaff, InvitedBy: "user-1"},
	}

	mockAPIClient.On("GetOrganizationByID", ctx, "org-123").Return(testOrg, nil)

	err := handler.Get(ctx, "org-123")

	s.Require().NoError(err)
	mockAPIClient.AssertExpectations(s.T())
}

func (s *OrganizationTestSuite) TestHandler_Create_Success() {
	s.T().Parallel()

	handler, mockInputService, mockAPIClient, _ := s.createTestHandler()
	ctx := context.Background()
	testOrg := s.createTestOrganization()
	flags := models.CreateOrganizationFlags{
		Name: "Test Organization",
	}

	mockAPIClient.On("CreateOrganization", ctx, "Test Organization").
		Return(testOrg, nil)

	result, err := handler.Create(ctx, flags)

	s.Require().NoError(err)
	s.Equal(testOrg, result)
	// With a name flag there is nothing to prompt for.
	mockInputService.AssertNotCalled(s.T(), "Prompt", mock.Anything, mock.Anything, mock.Anything)
	mockAPIClient.AssertExpectations(s.T())
}

func (s *OrganizationTestSuite) TestHandler_Create_PromptsForName() {
	s.T().Parallel()

	handler, mockInputService, mockAPIClient, _ := s.createTestHandler()
	ctx := context.Background()
	testOrg := s.createTestOrganization()

	mockInputService.On("Prompt", ctx, "Enter organization name", "").
		Return("Test Organization", nil)
	mockAPIClient.On("CreateOrganization", ctx, "Test Organization").
		Return(testOrg, nil)

	result, err := handler.Create(ctx, models.CreateOrganizationFlags{})

	s.Require().NoError(err)
	s.Equal("org-123", result.OrgID)
	mockInputService.AssertExpectations(s.T())
	mockAPIClient.AssertExpectations(s.T())
}

func (s *OrganizationTestSuite) TestHandler_Create_EmptyName() {
	s.T().Parallel()

	handler, mockInputService, mockAPIClient, _ := s.createTestHandler()
	ctx := context.Background()

	mockInputService.On("Prompt", ctx, "Enter organization name", "").
		Return("", nil)

	_, err := handler.Create(ctx, models.CreateOrganizationFlags{})

	s.Require().ErrorIs(err, organization.ErrOrganizationNameRequired)
	// An empty name never reaches the network.
	mockAPIClient.AssertNotCalled(s.T(), "CreateOrganization", mock.Anything, mock.Anything)
}

func (s *OrganizationTestSuite) TestHandler_Create_DefaultsRoleToAdmin() {
	s.T().Parallel()

	handler, _, mockAPIClient, _ := s.createTestHandler()
	ctx := context.Background()
	created := models.Organization{OrgID: "org-123", Name: "Test Organization"}

	mockAPIClient.On("CreateOrganization", ctx, "Test Organization").
		Return(created, nil)

	result, err := handler.Create(ctx, models.CreateOrganizationFlags{Name: "Test Organization"})

	s.Require().NoError(err)
	s.Equal(models.RoleAdmin, result.Role)
	mockAPIClient.AssertExpectations(s.T())
}

func (s *OrganizationTestSuite) TestHandler_Delete_Confirmed() {
	s.T().Parallel()

	handler, mockInputService, mockAPIClient, _ := s.createTestHandler()
	ctx := context.Background()

	mockInputService.On("Confirm", ctx, "Delete organization org-123? (y/n)", "n").
		Return(true, nil)
	mockAPIClient.On("DeleteOrganization", ctx, "org-123").Return(nil)

	err := handler.Delete(ctx, "org-123", models.DeleteOrganizationFlags{})

	s.Require().NoError(err)
	mockInputService.AssertExpectations(s.T())
	mockAPIClient.AssertExpectations(s.T())
}

func (s *OrganizationTestSuite) TestHandler_Delete_Declined() {
	s.T().Parallel()

	handler, mockInputService, mockAPIClient, _ := s.createTestHandler()
	ctx := context.Background()

	mockInputService.On("Confirm", ctx, "Delete organization org-123? (y/n)", "n").
		Return(false, nil)

	err := handler.Delete(ctx, "org-123", models.DeleteOrganizationFlags{})

	// Declining is not an error and makes no network call.
	s.Require().NoError(err)
	mockInputService.AssertExpectations(s.T())
	mockAPIClient.AssertNotCalled(s.T(), "DeleteOrganization", mock.Anything, mock.Anything)
}

func (s *OrganizationTestSuite) TestHandler_Delete_YesFlagSkipsConfirm() {
	s.T().Parallel()

	handler, mockInputService, mockAPIClient, _ := s.createTestHandler()
	ctx := context.Background()

	mockAPIClient.On("DeleteOrganization", ctx, "org-123").Return(nil)

	err := handler.Delete(ctx, "org-123", models.DeleteOrganizationFlags{Yes: true})

	s.Require().NoError(err)
	mockInputService.AssertNotCalled(s.T(), "Confirm", mock.Anything, mock.Anything, mock.Anything)
	mockAPIClient.AssertExpectations(s.T())
}

func (s *OrganizationTestSuite) TestHandler_Delete_APIError() {
	s.T().Parallel()

	handler, _, mockAPIClient, _ := s.createTestHandler()
	ctx := context.Background()

	mockAPIClient.On("DeleteOrganization", ctx, "org-123").
		Return(errors.New("403 Forbidden: Admin role required"))

	err := handler.Delete(ctx, "org-123", models.DeleteOrganizationFlags{Yes: true})

	s.Require().Error(err)
	s.Contains(err.Error(), "403")
	mockAPIClient.AssertExpectations(s.T())
}
