package session

var _ ServiceInterface = (*Service)(nil)

// Service holds the operator's connection parameters for the lifetime of the
// process. Nothing here is ever written to disk: the token is a secret and
// the whole session is lost on exit, matching the backend's expectation that
// credentials are issued out of band.
type Service struct {
	baseURL string
	token   string
}

type ServiceInterface interface {
	// BaseURL returns the backend base URL, normalized without a trailing slash.
	BaseURL() string
	// SetBaseURL replaces the backend base URL.
	SetBaseURL(baseURL string)
	// Token returns the bearer token, empty when the operator has not supplied one.
	Token() string
	// SetToken replaces the bearer token.
	SetToken(token string)
	// AuthHeader returns the derived Authorization header value, empty without a token.
	AuthHeader() string
	// RequireToken returns ErrNoToken when no token is set.
	RequireToken() error
}
