package session

import (
	"strings"

	"github.com/rotisserie/eris"
)

// DefaultBaseURL points at a locally running backend.
const DefaultBaseURL = "http://localhost:8000"

var ErrNoToken = eris.New("authentication token is required")

// NewService creates a session with the given connection parameters. An empty
// baseURL falls back to the local default; the token may be empty until the
// operator supplies one.
func NewService(baseURL, token string) *Service {
	s := &Service{}
	s.SetBaseURL(baseURL)
	s.SetToken(token)
	return s
}

func (s *Service) BaseURL() string {
	return s.baseURL
}

func (s *Service) SetBaseURL(baseURL string) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	s.baseURL = strings.TrimRight(baseURL, "/")
}

func (s *Service) Token() string {
	return s.token
}

func (s *Service) SetToken(token string) {
	s.token = strings.TrimSpace(token)
}

// AuthHeader is a pure derivation of the token; it is recomputed on demand
// rather than cached so it can never go stale after SetToken.
func (s *Service) AuthHeader() string {
	if s.token == "" {
		return ""
	}
	return "Bearer " + s.token
}

func (s *Service) RequireToken() error {
	if s.token == "" {
		return ErrNoToken
	}
	return nil
}
