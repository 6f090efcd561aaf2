package rest

import (
	"context"

	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/domain"
)

// AuthService wraps the remote authentication endpoint.
type AuthService struct {
	c *Client
}

// NewAuthService creates an AuthService on the shared client.
func NewAuthService(c *Client) *AuthService {
	return &AuthService{c: c}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult carries the opaque bearer token the remote API issued and the
// authenticated user record.
type LoginResult struct {
	Token   string      `json:"token"`
	Usuario domain.User `json:"usuario"`
}

// Login exchanges credentials for a bearer token and user record.
func (s *AuthService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var out LoginResult
	err := s.c.sendJSON(ctx, "POST", "/auth/login", loginRequest{Email: email, Password: password}, &out)
	return out, err
}
