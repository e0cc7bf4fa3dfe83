// Package skillswap is the single egress point for all SkillSwap backend
// calls. It attaches the stored bearer token to every outgoing request and
// reacts to authentication failures uniformly, so callers never re-implement
// either policy.
package skillswap

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/skillswap-platform/skillswap/pkg/session"
)

// Navigator receives the forced navigation to the login entry point after an
// authentication failure. In a browser this is a location change; the CLI
// prints a prompt. Triggering it is idempotent from the client's point of
// view: concurrent 401s each fire it once.
type Navigator interface {
	ToLogin()
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func()

func (f NavigatorFunc) ToLogin() { f() }

// Client wraps one *http.Client whose transport injects the bearer token.
// Responses are inspected centrally: a 401 clears both stored tokens, fires
// the navigator, and still rejects the caller's pending operation with the
// original failure.
type Client struct {
	baseURL    string
	httpClient *http.Client
	storage    session.TokenStorage
	navigator  Navigator
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Its transport is still
// wrapped with the auth decorator.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithNavigator sets the hook invoked when a 401 forces navigation to login.
func WithNavigator(n Navigator) Option {
	return func(c *Client) { c.navigator = n }
}

// New builds a client for the API at baseURL, reading tokens from storage.
func New(baseURL string, storage session.TokenStorage, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		storage:    storage,
		navigator:  NavigatorFunc(func() {}),
	}
	for _, opt := range opts {
		opt(c)
	}

	base := c.httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	c.httpClient.Transport = &authTransport{base: base, storage: storage}

	return c
}

// authTransport attaches the bearer credential immediately before dispatch.
// The token is re-read from storage on every request; when absent the request
// goes out unauthenticated and server-side authorization applies.
type authTransport struct {
	base    http.RoundTripper
	storage session.TokenStorage
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if token := t.storage.Get(session.AccessTokenKey); token != "" {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return t.base.RoundTrip(req)
}

// doJSON sends a JSON request and decodes the response into result when
// non-nil.
func (c *Client) doJSON(ctx context.Context, method, path string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.send(req, result)
}

// send dispatches the request and applies the inbound policy: a 401, no
// matter which endpoint produced it, tears down the session, fires the login
// navigation, and is then propagated to the caller unchanged. Other failures
// are propagated without side effects. Nothing is retried.
func (c *Client) send(req *http.Request, result any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.storage.Clear()
		c.navigator.ToLogin()
		return apiError(resp)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apiError(resp)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// apiError builds the caller-facing error from a non-2xx response, preferring
// the server's structured error field.
func apiError(resp *http.Response) *APIError {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err == nil && body.Error != "" {
		return &APIError{Status: resp.StatusCode, Message: body.Error}
	}
	return &APIError{Status: resp.StatusCode, Message: "request failed"}
}
