package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/tidwall/gjson"

	"github.com/orghub/orgs-cli/internal/pkg/logger"
)

const (
	get   = http.MethodGet
	post  = http.MethodPost
	patch = http.MethodPatch
	del   = http.MethodDelete
)

// NewClient creates a new API client with the given base URL.
// The underlying transport is used as-is: requests are not retried and carry
// no client-side timeout, so a failed operation requires a manual repeat.
func NewClient(baseURL string) ClientInterface {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{},
	}
}

// SetAuthToken updates the client's authentication credentials.
func (c *Client) SetAuthToken(token string) {
	c.Token = token
}

// SetBaseURL repoints the client at a different backend.
func (c *Client) SetBaseURL(baseURL string) {
	c.BaseURL = strings.TrimRight(baseURL, "/")
}

// sendRequest sends an HTTP request with the auth token and returns the
// response body.
func (c *Client) sendRequest(ctx context.Context, method, endpoint string, body interface{}) ([]byte, error) {
	req, err := c.prepareRequest(ctx, method, endpoint, body)
	if err != nil {
		return nil, err
	}

	return c.doRequest(req)
}

// prepareRequest creates an HTTP request with proper headers and authentication.
func (c *Client) prepareRequest(ctx context.Context, method, endpoint string, body interface{}) (*http.Request, error) {
	var bodyReader io.Reader

	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, eris.Wrap(err, "Failed to marshal request body")
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	url := c.BaseURL + endpoint

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, eris.Wrap(err, "Failed to create request")
	}

	// Add authentication if available
	if c.Token != "" {
		req.Header.Add("Authorization", "Bearer "+c.Token)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	// Set content type for requests with body
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// doRequest executes a single HTTP request.
func (c *Client) doRequest(req *http.Request) ([]byte, error) {
	logger.Debugf("%s %s", req.Method, req.URL)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Message:    extractErrorMessage(body),
		}
	}

	return io.ReadAll(resp.Body)
}

// extractErrorMessage pulls a human-readable message out of a JSON error
// body. The backend uses a "detail" field; "message" is accepted for
// compatibility. Unparseable bodies fall back to their raw text, and an empty
// body yields an empty message so the HTTP status text stands alone.
func extractErrorMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	if message := gjson.GetBytes(body, "detail").String(); message != "" {
		return message
	}
	if message := gjson.GetBytes(body, "message").String(); message != "" {
		return message
	}

	return strings.TrimSpace(string(body))
}

// parseResponse is a generic helper that unmarshals a response body.
func parseResponse[T any](body []byte) (T, error) {
	var data T
	if err := json.Unmarshal(body, &data); err != nil {
		return *new(T), eris.Wrap(err, "Failed to parse response")
	}

	return data, nil
}
