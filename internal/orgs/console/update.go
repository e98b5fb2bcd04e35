package console

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/orghub/orgs-cli/internal/orgs/models"
)

// Update handles messages and updates the console state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case orgsListedMsg:
		return m.handleListed(msg)

	case orgCreatedMsg:
		return m.handleCreated(msg)

	case orgDeletedMsg:
		return m.handleDeleted(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

//nolint:cyclop // key routing reads better as a single switch
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.confirming {
		return m.handleConfirmKey(msg)
	}

	switch msg.String() {
	case "tab":
		m.focus = (m.focus + 1) % focusCount
		m.applyFocus()
		return m, nil
	case "shift+tab":
		m.focus = (m.focus + focusCount - 1) % focusCount
		m.applyFocus()
		return m, nil
	case "esc":
		m.focus = focusList
		m.applyFocus()
		return m, nil
	}

	if m.focus == focusList {
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.orgs)-1 {
				m.cursor++
			}
		case "r":
			return m.startList()
		case "d":
			return m.beginDelete()
		}
		return m, nil
	}

	if msg.String() == "enter" {
		if m.focus == focusName {
			return m.submitCreate()
		}
		// Enter on a connection input moves on to the next field.
		m.focus++
		m.applyFocus()
		return m, nil
	}

	return m.updateFocusedInput(msg)
}

// handleConfirmKey resolves the blocking delete confirmation. Only an
// explicit 'y' proceeds; any other key declines and nothing is sent.
func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	target := m.deleteTarget
	m.confirming = false
	m.deleteTarget = models.Organization{}

	if msg.String() == "y" || msg.String() == "Y" {
		m.status = status{}
		m.busy = true
		return m, tea.Batch(m.spin.Tick, m.deleteOrgCmd(target.OrgID))
	}

	return m, nil
}

// updateFocusedInput routes a message to the focused text input and keeps the
// session and client in sync with edited connection parameters.
func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.focus {
	case focusBaseURL:
		prev := m.baseURLInput.Value()
		m.baseURLInput, cmd = m.baseURLInput.Update(msg)
		if v := m.baseURLInput.Value(); v != prev {
			m.session.SetBaseURL(v)
			m.client.SetBaseURL(m.session.BaseURL())
		}

	case focusToken:
		prev := m.tokenInput.Value()
		m.tokenInput, cmd = m.tokenInput.Update(msg)
		if v := m.tokenInput.Value(); v != prev {
			m.session.SetToken(v)
			m.client.SetAuthToken(m.session.Token())

			if m.session.Token() == "" {
				m.hadToken = false
			} else if !m.hadToken {
				// Reactive refresh, once per empty-to-non-empty transition.
				m.hadToken = true
				if !m.busy {
					m.status = status{}
					m.busy = true
					return m, tea.Batch(cmd, m.spin.Tick, m.listOrgsCmd())
				}
			}
		}

	case focusName:
		m.nameInput, cmd = m.nameInput.Update(msg)

	case focusList, focusCount:
	}

	return m, cmd
}

// ------------------------------------------------------------------------------------------------
// Operation starters: each clears the status banner, validates locally, and
// only then issues a request. The busy flag keeps submissions serialized.
// ------------------------------------------------------------------------------------------------

func (m Model) startList() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	if err := m.session.RequireToken(); err != nil {
		m.status = status{kind: statusError, text: "Authentication token is required"}
		return m, nil
	}

	m.status = status{}
	m.busy = true
	return m, tea.Batch(m.spin.Tick, m.listOrgsCmd())
}

func (m Model) submitCreate() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	name := m.nameInput.Value()
	if name == "" {
		m.status = status{kind: statusError, text: "Organization name is required"}
		return m, nil
	}
	if err := m.session.RequireToken(); err != nil {
		m.status = status{kind: statusError, text: "Authentication token is required"}
		return m, nil
	}

	m.status = status{}
	m.busy = true
	return m, tea.Batch(m.spin.Tick, m.createOrgCmd(name))
}

func (m Model) beginDelete() (tea.Model, tea.Cmd) {
	if m.busy || len(m.orgs) == 0 {
		return m, nil
	}
	if err := m.session.RequireToken(); err != nil {
		m.status = status{kind: statusError, text: "Authentication token is required"}
		return m, nil
	}

	m.confirming = true
	m.deleteTarget = m.orgs[m.cursor]
	return m, nil
}

// ------------------------------------------------------------------------------------------------
// Result handlers: the busy flag is cleared on every path, success or not.
// ------------------------------------------------------------------------------------------------

func (m Model) handleListed(msg orgsListedMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		m.status = status{kind: statusError, text: msg.err.Error()}
		return m, nil
	}

	// The whole list is replaced by the latest server response.
	m.orgs = msg.orgs
	if m.cursor >= len(m.orgs) {
		m.cursor = 0
	}
	m.status = status{kind: statusSuccess, text: fmt.Sprintf("Loaded %d organizations", len(m.orgs))}
	return m, nil
}

func (m Model) handleCreated(msg orgCreatedMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		m.status = status{kind: statusError, text: msg.err.Error()}
		return m, nil
	}

	org := msg.org
	if org.Role == "" {
		// Local annotation: the backend makes the creator an admin, but the
		// create response does not echo the role back.
		org.Role = models.RoleAdmin
	}

	// Keep entries unique by org_id, then prepend the new record.
	kept := make([]models.Organization, 0, len(m.orgs)+1)
	kept = append(kept, org)
	for _, existing := range m.orgs {
		if existing.OrgID != org.OrgID {
			kept = append(kept, existing)
		}
	}
	m.orgs = kept
	m.cursor = 0
	m.nameInput.Reset()
	m.status = status{kind: statusSuccess, text: fmt.Sprintf("Created organization %q", org.Name)}
	return m, nil
}

func (m Model) handleDeleted(msg orgDeletedMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		// The entry stays in the list; deletion was not confirmed by the server.
		m.status = status{kind: statusError, text: msg.err.Error()}
		return m, nil
	}

	kept := make([]models.Organization, 0, len(m.orgs))
	for _, org := range m.orgs {
		if org.OrgID != msg.orgID {
			kept = append(kept, org)
		}
	}
	m.orgs = kept
	if m.cursor >= len(m.orgs) && m.cursor > 0 {
		m.cursor = len(m.orgs) - 1
	}
	m.status = status{kind: statusSuccess, text: fmt.Sprintf("Deleted organization %s", msg.orgID)}
	return m, nil
}

// ------------------------------------------------------------------------------------------------
// Request commands. No cancellation, no timeout, no retry: a failed call is
// reported once and waits for the operator to repeat it.
// ------------------------------------------------------------------------------------------------

func (m Model) listOrgsCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		orgs, err := client.GetOrganizations(context.Background())
		return orgsListedMsg{orgs: orgs, err: err}
	}
}

func (m Model) createOrgCmd(name string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		org, err := client.CreateOrganization(context.Background(), name)
		return orgCreatedMsg{org: org, err: err}
	}
}

func (m Model) deleteOrgCmd(orgID string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		err := client.DeleteOrganization(context.Background(), orgID)
		return orgDeletedMsg{orgID: orgID, err: err}
	}
}
