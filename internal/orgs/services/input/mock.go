package input

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Interface guard.
var _ ServiceInterface = (*MockService)(nil)

type MockService struct {
	mock.Mock
}

func (m *MockService) Prompt(ctx context.Context, prompt, defaultValue string) (string, error) {
	args := m.Called(ctx, prompt, defaultValue)
	return args.String(0), args.Error(1)
}

func (m *MockService) Confirm(ctx context.Context, prompt, defaultValue string) (bool, error) {
	args := m.Called(ctx, prompt, defaultValue)
	return args.Bool(0), args.Error(1)
}
