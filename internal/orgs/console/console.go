package console

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rotisserie/eris"
	"golang.org/x/term"

	"github.com/orghub/orgs-cli/internal/orgs/clients/api"
	"github.com/orghub/orgs-cli/internal/orgs/services/session"
)

// Run starts the interactive console and blocks until the operator quits.
func Run(client api.ClientInterface, sessionService session.ServiceInterface) error {
	program := NewTeaProgram(NewModel(client, sessionService), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return eris.Wrap(err, "Failed to run console")
	}
	return nil
}

// NewTeaProgram will create a BubbleTea program that automatically sets the no input option
// if you are not on a TTY, so you can run the debugger. Call it just as you would call tea.NewProgram().
func NewTeaProgram(model tea.Model, opts ...tea.ProgramOption) *tea.Program {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		opts = append(opts, tea.WithInput(nil))
	}
	return tea.NewProgram(model, opts...)
}
