// Package hrclient is the Go client for the HRMIS API. Its distinguishing
// behavior is session recovery: when a request bounces with 401, the client
// refreshes the access token exactly once for the whole client, replays the
// rejected request with the new token, and signs the session out when the
// refresh itself is rejected.
package hrclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Moon-89/HRMIS/pkg/logger"
)

const defaultTimeout = 10 * time.Second

// Config holds client configuration
type Config struct {
	// BaseURL is the API root, e.g. http://localhost:4000. Required.
	BaseURL string
	// Timeout bounds each HTTP attempt. Zero means 10s.
	Timeout time.Duration
}

// Option customizes a Client
type Option func(*Client)

// WithCredentialStore persists the session across processes
func WithCredentialStore(store CredentialStore) Option {
	return func(c *Client) { c.store = store }
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithSessionExpiredHandler registers a callback fired once when the session
// dies: refresh was attempted and rejected. It is not fired on Logout.
func WithSessionExpiredHandler(fn func()) Option {
	return func(c *Client) { c.onSessionExpired = fn }
}

// WithLogger replaces the client's logger
func WithLogger(log *logger.Logger) Option {
	return func(c *Client) { c.log = log }
}

// Client talks to the HRMIS API on behalf of one signed-in account
type Client struct {
	baseURL string
	http    *http.Client
	store   CredentialStore
	session *SessionStore
	log     *logger.Logger

	onSessionExpired func()

	mu          sync.Mutex
	refreshing  bool
	waiters     []chan refreshResult
	sessionDead bool
}

type refreshResult struct {
	token string
	err   error
}

// New creates a Client
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("hrclient: base URL is required")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		log: logger.Get(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.store == nil {
		c.store = NewMemoryCredentialStore()
	}
	c.session = NewSessionStore(c.store)

	return c, nil
}

// Token returns the current access token, "" when signed out
func (c *Client) Token() string {
	return c.session.Token()
}

// CurrentUser returns the locally cached user snapshot, nil when signed out
func (c *Client) CurrentUser() *User {
	return c.session.User()
}

// isAuthPath reports whether a 401 from this path must never trigger a
// refresh. A rejected login is a wrong password, not a stale session.
func isAuthPath(path string) bool {
	switch path {
	case "/auth/login", "/auth/register", "/auth/refresh":
		return true
	}
	return false
}

// do runs one API call through the recovery pipeline: send, and on a 401
// from a non-auth endpoint, refresh once and replay once.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("hrclient: encode request: %w", err)
		}
	}

	err := c.send(ctx, method, path, query, payload, out)
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusUnauthorized || isAuthPath(path) {
		return err
	}

	// A 401 with no session at all is not recoverable; there is nothing to
	// refresh and no session to expire.
	if c.session.Token() == "" {
		return fmt.Errorf("%w: %s", ErrUnauthenticated, apiErr.Message)
	}

	c.log.Debug("request rejected, refreshing session",
		zap.String("method", method),
		zap.String("path", path),
	)

	if _, err := c.awaitRefresh(ctx); err != nil {
		return err
	}

	// Exactly one replay. A second 401 means the fresh token is not the
	// problem, and retrying again could loop forever.
	err = c.send(ctx, method, path, query, payload, out)
	if err == nil {
		return nil
	}
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: %s", ErrUnauthenticated, apiErr.Message)
	}
	return err
}

// send performs a single HTTP attempt, attaching whatever token the session
// holds at call time.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, payload []byte, out interface{}) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return fmt.Errorf("hrclient: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetworkFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("hrclient: decode response: %w", err)
		}
		return nil
	}

	var body struct {
		Message string `json:"message"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return &APIError{StatusCode: resp.StatusCode, Message: body.Message}
}

// awaitRefresh coordinates the single-flight refresh. The first caller runs
// it; everyone arriving while it is in flight parks on a buffered channel and
// receives the shared outcome in arrival order.
func (c *Client) awaitRefresh(ctx context.Context) (string, error) {
	c.mu.Lock()
	if c.refreshing {
		ch := make(chan refreshResult, 1)
		c.waiters = append(c.waiters, ch)
		c.mu.Unlock()

		select {
		case r := <-ch:
			return r.token, r.err
		case <-ctx.Done():
			// The buffered channel still absorbs the result later.
			return "", ctx.Err()
		}
	}
	c.refreshing = true
	c.mu.Unlock()

	token, err := c.refreshSession(ctx)

	c.mu.Lock()
	c.refreshing = false
	waiters := c.waiters
	c.waiters = nil
	c.mu.Unlock()

	for _, ch := range waiters {
		ch <- refreshResult{token: token, err: err}
	}

	if err != nil {
		c.expireSession()
	}
	return token, err
}

// refreshSession exchanges the current access token for a fresh one. The
// token itself is the refresh credential; the server checks its signature
// and that the user still holds a live session.
func (c *Client) refreshSession(ctx context.Context) (string, error) {
	if c.session.Token() == "" {
		return "", ErrSessionExpired
	}

	var resp authResponse
	if err := c.send(ctx, http.MethodPost, "/auth/refresh", nil, nil, &resp); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			c.log.Info("session refresh rejected", zap.Int("status", apiErr.StatusCode))
			return "", fmt.Errorf("%w: %s", ErrSessionExpired, apiErr.Message)
		}
		// The refresh never reached a verdict. Without a usable token the
		// session cannot continue either way.
		c.log.Warn("session refresh failed", zap.Error(err))
		return "", fmt.Errorf("%w: %w", ErrSessionExpired, err)
	}

	c.installSession(resp.AccessToken, &resp.User)
	c.log.Debug("session refreshed")
	return resp.AccessToken, nil
}

// installSession stores a new token/user pair and re-arms the expiry handler
func (c *Client) installSession(token string, user *User) {
	c.mu.Lock()
	c.sessionDead = false
	c.mu.Unlock()

	if err := c.session.SetSession(token, user); err != nil {
		// Persistence is best effort; the in-memory session is already live.
		c.log.Warn("failed to persist session", zap.Error(err))
	}
}

// expireSession tears the session down and fires the handler at most once
// per session.
func (c *Client) expireSession() {
	c.mu.Lock()
	if c.sessionDead {
		c.mu.Unlock()
		return
	}
	c.sessionDead = true
	c.mu.Unlock()

	if err := c.session.Clear(); err != nil {
		c.log.Warn("failed to clear credentials", zap.Error(err))
	}
	if c.onSessionExpired != nil {
		c.onSessionExpired()
	}
}
