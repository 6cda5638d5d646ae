package apiclient

import (
	"context"
	"net/http"
)

// LoginRequest is the credentials payload for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest is the payload for POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// TokenResponse is the backend's answer to a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var resp TokenResponse
	body := LoginRequest{Username: username, Password: password}
	if err := c.do(ctx, c.authBaseURL, http.MethodPost, "/auth/login", nil, body, &resp); err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

// Register creates a new staff account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.do(ctx, c.authBaseURL, http.MethodPost, "/auth/register", nil, req, nil)
}
