package console

import "github.com/charmbracelet/lipgloss"

//nolint:gochecknoglobals // read only, initialize styles once.
var (
	titleStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(0, 2).
			Bold(true).
			Align(lipgloss.Center)

	labelStyle = lipgloss.NewStyle().Bold(true).Width(10)

	selectedRowStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))

	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	confirmStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("178"))

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)
