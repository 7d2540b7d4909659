// Package client is a typed client for the DOME HR API. It owns the session
// the way the web front end does: one stored token plus role, attached to
// every call, and dropped as soon as the server answers 401 or 403.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"
)

// ErrNoSession is returned when an authenticated call is made before Login.
var ErrNoSession = errors.New("client: no active session")

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

// SessionUser is the identity the login response carries.
type SessionUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	IDRoles  int    `json:"id_roles"`
}

// Session is the client's stored login state.
type Session struct {
	Token string
	User  SessionUser
}

// Role returns the session's role id, or 0 when logged out.
func (s *Session) Role() int {
	if s == nil {
		return 0
	}
	return s.User.IDRoles
}

// Client talks to the DOME HR API.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu      sync.RWMutex
	session *Session
}

type Option func(*Client)

// WithHTTPClient swaps the underlying HTTP client, mostly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session returns a copy of the current session, or nil when logged out.
func (c *Client) Session() *Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session == nil {
		return nil
	}
	s := *c.session
	return &s
}

func (c *Client) setSession(s *Session) {
	c.mu.Lock()
	c.session = s
	c.mu.Unlock()
}

// clearSession drops the stored login state. Called on explicit logout and
// on any 401/403 answer.
func (c *Client) clearSession() {
	c.setSession(nil)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}

// Login authenticates and stores the session.
func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/login", nil, loginRequest{Username: username, Password: password}, &resp, false); err != nil {
		return nil, err
	}

	session := &Session{Token: resp.Token, User: resp.User}
	c.setSession(session)

	s := *session
	return &s, nil
}

// Logout tells the server and clears the session either way.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/logout", nil, nil, nil, true)
	c.clearSession()
	if errors.Is(err, ErrNoSession) {
		return nil
	}
	return err
}

// do runs one request. Authenticated calls fail fast without a session, and
// a 401 or 403 answer clears the session before the error is returned.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}, authed bool) error {
	var token string
	if authed {
		c.mu.RLock()
		if c.session == nil {
			c.mu.RUnlock()
			return ErrNoSession
		}
		token = c.session.Token
		c.mu.RUnlock()
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		c.clearSession()
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseAPIError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func parseAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		apiErr.Message = body.Message
	}
	return apiErr
}
