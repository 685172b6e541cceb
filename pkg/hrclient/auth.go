package hrclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates with email and password and installs the session
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", nil, loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && (apiErr.StatusCode == http.StatusBadRequest || apiErr.StatusCode == http.StatusUnauthorized) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidCredentials, apiErr.Message)
		}
		return nil, err
	}

	c.installSession(resp.AccessToken, &resp.User)
	c.log.Debug("signed in", zap.String("email", resp.User.Email))

	user := resp.User
	return &user, nil
}

// Register creates an account. The server signs the new account in
// immediately, so a returned token is installed like a login.
func (c *Client) Register(ctx context.Context, name, email, password string) (*User, error) {
	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/auth/register", nil, registerRequest{Name: name, Email: email, Password: password}, &resp)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && (apiErr.StatusCode == http.StatusBadRequest || apiErr.StatusCode == http.StatusConflict) {
			return nil, fmt.Errorf("%w: %s", ErrRegistrationFailed, apiErr.Message)
		}
		return nil, err
	}

	if resp.AccessToken != "" {
		c.installSession(resp.AccessToken, &resp.User)
	}

	user := resp.User
	return &user, nil
}

// Logout signs out. The server call is best effort; local credentials are
// dropped no matter what it answers, and the session-expired handler does
// not fire for a voluntary sign-out.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.send(ctx, http.MethodPost, "/auth/logout", nil, nil, nil); err != nil {
		c.log.Debug("logout request failed", zap.Error(err))
	}

	c.mu.Lock()
	c.sessionDead = false
	c.mu.Unlock()

	return c.session.Clear()
}

// Resume revalidates a persisted session on startup. It returns
// ErrUnauthenticated when nothing was persisted; an expired token goes
// through the ordinary refresh path before giving up. A session that cannot
// be validated is discarded, not left around stale.
func (c *Client) Resume(ctx context.Context) (*User, error) {
	if c.session.Token() == "" {
		return nil, ErrUnauthenticated
	}

	var user User
	if err := c.do(ctx, http.MethodGet, "/users/profile", nil, nil, &user); err != nil {
		// A rejected refresh already cleared the session through the expiry
		// cascade; this covers every other failure. Clear is idempotent, and
		// an unverifiable session at startup is not an expiry event.
		if clearErr := c.session.Clear(); clearErr != nil {
			c.log.Warn("failed to clear credentials", zap.Error(clearErr))
		}
		return nil, err
	}

	if err := c.session.SetUser(&user); err != nil {
		c.log.Warn("failed to persist user snapshot", zap.Error(err))
	}

	c.mu.Lock()
	c.sessionDead = false
	c.mu.Unlock()

	return &user, nil
}
