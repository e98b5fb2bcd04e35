package style

import "github.com/charmbracelet/lipgloss"

//nolint:gochecknoglobals // read only, initialize once.
var cliHeaderStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#874BFD")).
	Padding(0, 2).
	Bold(true).
	Italic(true).
	Align(lipgloss.Center).
	Width(40)

func CLIHeader(title string, description string) string {
	return cliHeaderStyle.Render(title) + "\n" + description
}
