package console

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/orghub/orgs-cli/internal/orgs/clients/api"
	"github.com/orghub/orgs-cli/internal/orgs/models"
	"github.com/orghub/orgs-cli/internal/orgs/services/session"
)

// orgsListedMsg is sent when the organization list request finishes.
type orgsListedMsg struct {
	orgs []models.Organization
	err  error
}

// orgCreatedMsg is sent when the create request finishes.
type orgCreatedMsg struct {
	org models.Organization
	err error
}

// orgDeletedMsg is sent when the delete request finishes.
type orgDeletedMsg struct {
	orgID string
	err   error
}

type statusKind int

const (
	statusNone statusKind = iota
	statusSuccess
	statusError
)

// status is the transient banner shown under the list. Every operation
// overwrites it; starting the next operation clears it.
type status struct {
	kind statusKind
	text string
}

type focusArea int

const (
	focusBaseURL focusArea = iota
	focusToken
	focusName
	focusList

	focusCount
)

// Model is the single-page console: connection inputs, a create form, the
// organization list, and a status banner, all backed by one API client.
type Model struct {
	client  api.ClientInterface
	session session.ServiceInterface

	baseURLInput textinput.Model
	tokenInput   textinput.Model
	nameInput    textinput.Model
	spin         spinner.Model

	focus  focusArea
	orgs   []models.Organization
	cursor int

	// busy serializes operations: while a request is in flight every key
	// that would start another one is ignored. It is a plain flag, not a
	// queue, and is always cleared when the in-flight request finishes.
	busy   bool
	status status

	// confirming blocks everything behind the delete confirmation; only an
	// explicit 'y' proceeds, anything else declines with no side effect.
	confirming   bool
	deleteTarget models.Organization

	// hadToken guards the reactive auto-load so it fires once per
	// empty-to-non-empty token transition, not on every keystroke.
	hadToken bool

	width  int
	height int
}

// NewModel builds the console from the current session parameters. A token
// supplied up front triggers an initial list load.
func NewModel(client api.ClientInterface, sessionService session.ServiceInterface) Model {
	baseURLInput := textinput.New()
	baseURLInput.Placeholder = session.DefaultBaseURL
	baseURLInput.CharLimit = 200
	baseURLInput.Width = 48
	baseURLInput.SetValue(sessionService.BaseURL())

	tokenInput := textinput.New()
	tokenInput.Placeholder = "paste bearer token"
	tokenInput.EchoMode = textinput.EchoPassword
	tokenInput.CharLimit = 512
	tokenInput.Width = 48
	tokenInput.SetValue(sessionService.Token())

	nameInput := textinput.New()
	nameInput.Placeholder = "new organization name"
	nameInput.CharLimit = 120
	nameInput.Width = 48

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	m := Model{
		client:       client,
		session:      sessionService,
		baseURLInput: baseURLInput,
		tokenInput:   tokenInput,
		nameInput:    nameInput,
		spin:         spin,
		focus:        focusBaseURL,
		hadToken:     sessionService.Token() != "",
	}

	if m.hadToken {
		m.busy = true
		m.focus = focusList
	}
	m.applyFocus()

	return m
}

// Init starts the cursor blink and, when a token is already present, the
// initial list load.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.spin.Tick}
	if m.busy {
		cmds = append(cmds, m.listOrgsCmd())
	}
	return tea.Batch(cmds...)
}

// applyFocus moves terminal focus to the input matching m.focus.
func (m *Model) applyFocus() {
	m.baseURLInput.Blur()
	m.tokenInput.Blur()
	m.nameInput.Blur()

	switch m.focus {
	case focusBaseURL:
		m.baseURLInput.Focus()
	case focusToken:
		m.tokenInput.Focus()
	case focusName:
		m.nameInput.Focus()
	case focusList, focusCount:
	}
}

// Organizations returns the currently displayed list.
func (m Model) Organizations() []models.Organization {
	return m.orgs
}
