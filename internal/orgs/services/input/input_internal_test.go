package input

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewService(t *testing.T) {
	t.Parallel()
	svc := NewService()
	require.NotNil(t, svc)
	require.Nil(t, svc.Input)  // Should be nil to use os.Stdin
	require.Nil(t, svc.Output) // Should be nil to use the printer
}

func TestNewTestService(t *testing.T) {
	t.Parallel()
	input := strings.NewReader("test input")
	output := &bytes.Buffer{}

	svc := NewTestService(input, output)
	require.Equal(t, input, svc.Input)
	require.Equal(t, output, svc.Output)
}

func TestPrompt(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		prompt       string
		defaultValue string
		input        string
		expected     string
	}{
		{
			name:     "simple prompt with input",
			prompt:   "Enter name",
			input:    "Acme\n",
			expected: "Acme",
		},
		{
			name:         "prompt with default value used",
			prompt:       "Enter name",
			defaultValue: "DefaultName",
			input:        "\n",
			expected:     "DefaultName",
		},
		{
			name:     "prompt with whitespace input",
			prompt:   "Enter value",
			input:    "  test value  \n",
			expected: "test value",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			input := strings.NewReader(tt.input)
			output := &bytes.Buffer{}
			svc := NewTestService(input, output)

			result, err := svc.Prompt(context.Background(), tt.prompt, tt.defaultValue)

			require.NoError(t, err)
			require.Equal(t, tt.expected, result)
		})
	}
}

func TestPromptWithContextCancellation(t *testing.T) {
	t.Parallel()
	input := strings.NewReader("test\n")
	output := &bytes.Buffer{}
	svc := NewTestService(input, output)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	_, err := svc.Prompt(ctx, "Test prompt", "")
	require.Error(t, err)
	require.Equal(t, context.Canceled, err)
}

func TestConfirm(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		defaultValue string
		inputs       []string // Multiple inputs to test retry logic
		expected     bool
		shouldError  bool
	}{
		{
			name:     "confirm with y",
			inputs:   []string{"y\n"},
			expected: true,
		},
		{
			name:     "confirm with yes",
			inputs:   []string{"yes\n"},
			expected: true,
		},
		{
			name:     "confirm with Y (uppercase)",
			inputs:   []string{"Y\n"},
			expected: true,
		},
		{
			name:     "confirm with n",
			inputs:   []string{"n\n"},
			expected: false,
		},
		{
			name:     "confirm with no",
			inputs:   []string{"no\n"},
			expected: false,
		},
		{
			name:         "confirm with default no",
			defaultValue: "n",
			inputs:       []string{"\n"},
			expected:     false,
		},
		{
			name:     "invalid input retries until valid",
			inputs:   []string{"maybe\n", "y\n"},
			expected: true,
		},
		{
			name:        "quit cancels",
			inputs:      []string{"q\n"},
			shouldError: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			input := strings.NewReader(strings.Join(tt.inputs, ""))
			output := &bytes.Buffer{}
			svc := NewTestService(input, output)

			result, err := svc.Confirm(context.Background(), "Continue?", tt.defaultValue)

			if tt.shouldError {
				require.Error(t, err)
				require.Equal(t, ErrInputCanceled, err)
			} else {
				require.NoError(t, err)
				require.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestConfirmWithContextCancellation(t *testing.T) {
	t.Parallel()
	input := strings.NewReader("y\n")
	output := &bytes.Buffer{}
	svc := NewTestService(input, output)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	_, err := svc.Confirm(ctx, "Continue?", "")
	require.Error(t, err)
	require.Equal(t, context.Canceled, err)
}

func TestPromptOutputFormatting(t *testing.T) {
	t.Parallel()
	input := strings.NewReader("test input\n")
	output := &bytes.Buffer{}
	svc := NewTestService(input, output)

	result, err := svc.Prompt(context.Background(), "Enter value", "default")

	require.NoError(t, err)
	require.Equal(t, "test input", result)

	// Check that prompt was written to output
	outputStr := output.String()
	assert.Contains(t, outputStr, "Enter value")
	assert.Contains(t, outputStr, "[default]")
}

func TestServiceImplementsInterface(t *testing.T) {
	t.Parallel()
	var _ ServiceInterface = (*Service)(nil)

	svc := NewService()
	assert.NotNil(t, svc)
}
