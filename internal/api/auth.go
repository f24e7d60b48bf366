package api

import (
	"context"

	"github.com/andesvia/boleteria/internal/model"
)

// Login exchanges credentials for an access token.  Token storage is
// the caller's concern (see internal/session); the client itself
// stays stateless.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body := map[string]string{"username": username, "password": password}
	var resp struct {
		AuthToken string `json:"auth_token"`
	}
	if err := c.post(ctx, "/token/login/", body, &resp); err != nil {
		return "", err
	}
	return resp.AuthToken, nil
}

// Me returns the authenticated seller's account.
func (c *Client) Me(ctx context.Context) (model.User, error) {
	var u model.User
	if err := c.get(ctx, "/users/me/", nil, &u); err != nil {
		return model.User{}, err
	}
	return u, nil
}

// Logout asks the backend to invalidate the current token.  Callers
// treat this as best effort: local session teardown proceeds whether
// or not the backend acknowledged.
func (c *Client) Logout(ctx context.Context) error {
	return c.post(ctx, "/token/logout/", nil, nil)
}
