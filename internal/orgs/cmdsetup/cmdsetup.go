// Package cmdsetup wires command dependencies from the root flags. Every
// command invocation builds a fresh session and API client; nothing carries
// over between runs because session parameters are memory-only.
package cmdsetup

import (
	"github.com/spf13/cobra"

	"github.com/orghub/orgs-cli/internal/orgs/clients/api"
	"github.com/orghub/orgs-cli/internal/orgs/commands/member"
	"github.com/orghub/orgs-cli/internal/orgs/commands/organization"
	"github.com/orghub/orgs-cli/internal/orgs/interfaces"
	"github.com/orghub/orgs-cli/internal/orgs/services/input"
	"github.com/orghub/orgs-cli/internal/orgs/services/session"
	"github.com/orghub/orgs-cli/internal/pkg/printer"
	"github.com/orghub/orgs-cli/internal/pkg/tea/style"
)

const (
	FlagBaseURL = "base-url"
	FlagToken   = "token"
)

type Dependencies struct {
	Session             session.ServiceInterface
	APIClient           api.ClientInterface
	Input               input.ServiceInterface
	OrganizationHandler interfaces.OrganizationHandler
	MemberHandler       interfaces.MemberHandler
}

// AddSessionFlags registers the connection flags on the root command.
func AddSessionFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String(FlagBaseURL, session.DefaultBaseURL, "Backend base URL")
	cmd.PersistentFlags().String(FlagToken, "", "Bearer token for the backend (kept in memory only)")
}

// Setup builds the dependency graph for a command from its flags.
func Setup(cmd *cobra.Command) Dependencies {
	baseURL, _ := cmd.Flags().GetString(FlagBaseURL)
	token, _ := cmd.Flags().GetString(FlagToken)

	sessionService := session.NewService(baseURL, token)
	apiClient := api.NewClient(sessionService.BaseURL())
	apiClient.SetAuthToken(sessionService.Token())
	inputService := input.NewService()

	style.ContextPrint("Console", "2", "backend", sessionService.BaseURL())
	printer.NewLine(1)

	return Dependencies{
		Session:             sessionService,
		APIClient:           apiClient,
		Input:               inputService,
		OrganizationHandler: organization.NewHandler(apiClient, inputService, sessionService),
		MemberHandler:       member.NewHandler(apiClient, inputService, sessionService),
	}
}
