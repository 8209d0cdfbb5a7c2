package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"court_booking/internal/model"

	"github.com/sirupsen/logrus"
)

// ErrAccessDenied is returned when the server answers 401 or 403. It is
// surfaced identically whether the denial was detected locally or by the
// server.
var ErrAccessDenied = errors.New("access denied")

const excerptLimit = 100

// ProtocolError reports a response body that was not parseable JSON. The
// excerpt is bounded so diagnostics never dump an arbitrarily large body.
type ProtocolError struct {
	Excerpt string
	Err     error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("response is not JSON: %s", e.Excerpt)
}

func (e *ProtocolError) Unwrap() error { return e.Err }

// decodeJSON parses a raw body into v, wrapping failures in a
// ProtocolError carrying a bounded excerpt.
func decodeJSON(body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		excerpt := body
		if len(excerpt) > excerptLimit {
			excerpt = excerpt[:excerptLimit]
		}
		return &ProtocolError{Excerpt: string(excerpt), Err: err}
	}
	return nil
}

// Client is a typed HTTP client for the booking API. The bearer token is
// injected at construction from the session; the client holds no other
// credential state.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        *logrus.Entry
}

// NewClient creates a Client for the given base URL and bearer token. A nil
// httpClient falls back to http.DefaultClient; callers wanting bounded
// latency set a timeout on the client they pass in.
func NewClient(baseURL, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: httpClient,
		log:        logrus.WithField("component", "api_client"),
	}
}

// do issues a request with the bearer token attached and returns the status
// code and the raw body. Admin reads bypass any cache so the view always
// reflects current state.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response from %s: %w", path, err)
	}
	return resp.StatusCode, respBody, nil
}

// Login exchanges credentials for a session. It is the only client call
// made without a token.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	payload, err := json.Marshal(model.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("failed to encode login request: %w", err)
	}

	status, body, err := c.do(ctx, http.MethodPost, "/api/auth/login", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	if status == http.StatusUnauthorized {
		return nil, errors.New("invalid email or password")
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("login failed with status %d", status)
	}

	var resp struct {
		Token string     `json:"token"`
		User  model.User `json:"user"`
	}
	if err := decodeJSON(body, &resp); err != nil {
		return nil, err
	}

	return &Session{
		Token: resp.Token,
		Claim: Claim{
			ID:    resp.User.ID,
			Name:  resp.User.Name,
			Email: resp.User.Email,
			Role:  resp.User.Role,
		},
	}, nil
}

// Ping probes the admin-only liveness endpoint. Any non-2xx answer is a
// denial.
func (c *Client) Ping(ctx context.Context) error {
	status, _, err := c.do(ctx, http.MethodGet, "/api/admin/ping", nil)
	if err != nil {
		return err
	}
	if status < 200 || status > 299 {
		return ErrAccessDenied
	}
	return nil
}

// ListUsers fetches the admin user list
func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
	status, body, err := c.do(ctx, http.MethodGet, "/api/admin/users", nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return nil, ErrAccessDenied
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("user list request failed with status %d", status)
	}

	var resp struct {
		Users []model.User `json:"users"`
	}
	if err := decodeJSON(body, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

// ListBookings fetches the admin booking list
func (c *Client) ListBookings(ctx context.Context) ([]model.Booking, error) {
	status, body, err := c.do(ctx, http.MethodGet, "/api/admin/bookings", nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return nil, ErrAccessDenied
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("booking list request failed with status %d", status)
	}

	var resp struct {
		Bookings []model.Booking `json:"bookings"`
	}
	if err := decodeJSON(body, &resp); err != nil {
		return nil, err
	}
	return resp.Bookings, nil
}

// DeleteUser issues one authorized delete and returns the server's
// acknowledgment message. A body that is not JSON is a ProtocolError, never
// silently treated as success or failure.
func (c *Client) DeleteUser(ctx context.Context, id string) (string, error) {
	status, body, err := c.do(ctx, http.MethodDelete, "/api/admin/users/"+id, nil)
	if err != nil {
		return "", err
	}

	var resp struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := decodeJSON(body, &resp); err != nil {
		return "", err
	}

	if status < 200 || status > 299 {
		if resp.Error != "" {
			return "", errors.New(resp.Error)
		}
		return "", fmt.Errorf("delete failed with status %d", status)
	}

	c.log.WithField("user_id", id).Debug("user deleted")
	return resp.Message, nil
}
