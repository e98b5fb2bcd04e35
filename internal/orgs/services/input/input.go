package input

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/orghub/orgs-cli/internal/pkg/printer"
)

var ErrInputCanceled = eris.New("input canceled")

// NewService creates a new input service with standard stdin/stdout.
func NewService() *Service {
	return &Service{}
}

// NewTestService creates a new input service for testing with custom input/output.
func NewTestService(input io.Reader, output io.Writer) *Service {
	return &Service{
		Input:  input,
		Output: output,
	}
}

// Prompt displays a prompt and returns user input.
func (s *Service) Prompt(ctx context.Context, prompt, defaultValue string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
		if prompt != "" {
			s.printf("%s", prompt)
		}
		if defaultValue != "" {
			s.printf(" [%s]: ", defaultValue)
		} else {
			s.printf(": ")
		}

		input, err := s.readLine()
		if err != nil {
			return "", eris.Wrap(err, "failed to read input")
		}

		input = strings.TrimSpace(input)
		if input == "" && defaultValue != "" {
			return defaultValue, nil
		}
		return input, nil
	}
}

// Confirm asks for y/n confirmation with default.
func (s *Service) Confirm(ctx context.Context, prompt, defaultValue string) (bool, error) {
	for {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		default:
			input, err := s.Prompt(ctx, prompt, defaultValue)
			if err != nil {
				return false, err
			}

			switch strings.ToLower(input) {
			case "y", "yes":
				return true, nil
			case "n", "no":
				return false, nil
			case "q", "quit":
				return false, ErrInputCanceled
			default:
				s.println("Invalid input. Please enter 'y' or 'n'")
				continue
			}
		}
	}
}

// Helper methods for I/O operations

func (s *Service) readLine() (string, error) {
	input := s.Input
	if input == nil {
		input = os.Stdin
	}

	reader := bufio.NewReader(input)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return line, nil
}

func (s *Service) printf(format string, args ...interface{}) {
	if s.Output == nil {
		printer.Info(fmt.Sprintf(format, args...))
		return
	}
	fmt.Fprintf(s.Output, format, args...)
}

func (s *Service) println(text string) {
	if s.Output == nil {
		printer.Infoln(text)
		return
	}
	fmt.Fprintln(s.Output, text)
}
