package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orghub/orgs-cli/internal/orgs/services/session"
)

func TestNewServiceDefaults(t *testing.T) {
	t.Parallel()
	svc := session.NewService("", "")

	assert.Equal(t, session.DefaultBaseURL, svc.BaseURL())
	assert.Empty(t, svc.Token())
	assert.Empty(t, svc.AuthHeader())
}

func TestSetBaseURL(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		baseURL  string
		expected string
	}{
		{
			name:     "explicit URL",
			baseURL:  "https://api.example.com",
			expected: "https://api.example.com",
		},
		{
			name:     "trailing slash trimmed",
			baseURL:  "https://api.example.com/",
			expected: "https://api.example.com",
		},
		{
			name:     "empty falls back to default",
			baseURL:  "",
			expected: session.DefaultBaseURL,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := session.NewService(tt.baseURL, "")
			assert.Equal(t, tt.expected, svc.BaseURL())
		})
	}
}

func TestSetToken(t *testing.T) {
	t.Parallel()
	svc := session.NewService("", "  secret-token  ")

	// Surrounding whitespace is never part of a credential.
	assert.Equal(t, "secret-token", svc.Token())
}

func TestAuthHeaderDerivation(t *testing.T) {
	t.Parallel()
	svc := session.NewService("", "")

	assert.Empty(t, svc.AuthHeader())

	svc.SetToken("abc123")
	assert.Equal(t, "Bearer abc123", svc.AuthHeader())

	// Header follows the token on every change.
	svc.SetToken("rotated")
	assert.Equal(t, "Bearer rotated", svc.AuthHeader())

	svc.SetToken("")
	assert.Empty(t, svc.AuthHeader())
}

func TestRequireToken(t *testing.T) {
	t.Parallel()
	svc := session.NewService("", "")

	err := svc.RequireToken()
	require.ErrorIs(t, err, session.ErrNoToken)

	svc.SetToken("abc123")
	require.NoError(t, svc.RequireToken())
}
