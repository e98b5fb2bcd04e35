package console

import (
	"fmt"
	"strings"
)

// View renders the whole console page.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Organization Console"))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Base URL"))
	b.WriteString(m.baseURLInput.View())
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Token"))
	b.WriteString(m.tokenInput.View())
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("New org"))
	b.WriteString(m.nameInput.View())
	b.WriteString("\n\n")

	b.WriteString(m.viewList())
	b.WriteString("\n")
	b.WriteString(m.viewStatus())
	b.WriteString("\n")
	b.WriteString(m.viewFooter())

	return b.String()
}

func (m Model) viewList() string {
	if len(m.orgs) == 0 {
		return helpStyle.Render("No organizations loaded.")
	}

	var b strings.Builder
	for i, org := range m.orgs {
		row := fmt.Sprintf("%s (%s)", org.Name, org.OrgID)
		if org.Role != "" {
			row += fmt.Sprintf(" [%s]", org.Role)
		}

		if m.focus == focusList && i == m.cursor {
			b.WriteString(selectedRowStyle.Render("> " + row))
		} else {
			b.WriteString("  " + row)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) viewStatus() string {
	if m.confirming {
		return confirmStyle.Render(
			fmt.Sprintf("Delete %q (%s)? This cannot be undone. [y/N]",
				m.deleteTarget.Name, m.deleteTarget.OrgID))
	}
	if m.busy {
		return m.spin.View() + " working..."
	}

	switch m.status.kind {
	case statusSuccess:
		return successStyle.Render(m.status.text)
	case statusError:
		return errorStyle.Render(m.status.text)
	case statusNone:
	}
	return ""
}

func (m Model) viewFooter() string {
	return helpStyle.Render("tab: next field • enter: create • r: refresh • d: delete • q: quit")
}
