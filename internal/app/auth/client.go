package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/apostle2t/jobboard/pkg/errs"
	"github.com/apostle2t/jobboard/pkg/httpclient"
)

// TokenStore persists the session token across restarts.
type TokenStore interface {
	SaveToken(token string) error
	ClearToken() error
}

type Client interface {
	// Login authenticates and persists the returned bearer token.
	Login(ctx context.Context, in LoginRequest) (string, error)
	Register(ctx context.Context, in RegisterRequest) (RegisteredUser, error)
	// Logout drops the stored token; purely local, no upstream call.
	Logout() error
}

type client struct {
	http   *httpclient.Client
	tokens TokenStore
}

func New(http *httpclient.Client, tokens TokenStore) Client {
	return &client{http: http, tokens: tokens}
}

func (c *client) Login(ctx context.Context, in LoginRequest) (string, error) {
	if strings.TrimSpace(in.Email) == "" || strings.TrimSpace(in.Password) == "" {
		return "", fmt.Errorf("%w: email and password are required", errs.ErrInvalidInput)
	}

	var body loginBody
	header, err := c.http.DoJSONHeader(ctx, http.MethodPost, "/auth/login", nil, in, &body)
	if err != nil {
		return "", fmt.Errorf("auth.Login: %w", err)
	}

	// the token arrives in the Authorization header, with the body as
	// fallback for backends that return it there
	token := strings.TrimPrefix(header.Get("Authorization"), "Bearer ")
	token = strings.TrimSpace(token)
	if token == "" {
		token = strings.TrimSpace(body.Token)
	}
	if token == "" {
		return "", fmt.Errorf("%w: login response carried no token", errs.ErrUpstream)
	}

	if err := c.tokens.SaveToken(token); err != nil {
		return "", fmt.Errorf("persist token: %w", err)
	}
	return token, nil
}

func (c *client) Register(ctx context.Context, in RegisterRequest) (RegisteredUser, error) {
	if strings.TrimSpace(in.Email) == "" || strings.TrimSpace(in.Password) == "" {
		return RegisteredUser{}, fmt.Errorf("%w: email and password are required", errs.ErrInvalidInput)
	}

	var out RegisteredUser
	if err := c.http.DoJSON(ctx, http.MethodPost, "/auth/register", nil, in, &out); err != nil {
		return RegisteredUser{}, fmt.Errorf("auth.Register: %w", err)
	}
	return out, nil
}

func (c *client) Logout() error {
	return c.tokens.ClearToken()
}
