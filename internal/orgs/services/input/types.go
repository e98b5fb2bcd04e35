package input

import (
	"context"
	"io"
)

var _ ServiceInterface = (*Service)(nil)

// Service reads operator input from the terminal. Input and Output may be
// replaced for tests; nil means os.Stdin/printer output.
type Service struct {
	Input  io.Reader
	Output io.Writer
}

type ServiceInterface interface {
	// Prompt displays a prompt and returns user input.
	Prompt(ctx context.Context, prompt, defaultValue string) (string, error)
	// Confirm asks for y/n confirmation with a default.
	Confirm(ctx context.Context, prompt, defaultValue string) (bool, error)
}
