package auth_port

import (
	"context"

	"safeqr/domain"
)

//go:generate mockgen -source=auth_port.go -destination=../../mocks/mock_auth_port.go -package=mocks

// AuthPort defines the interface for the external identity provider
type AuthPort interface {
	// AuthorizeURL builds the provider URL the browser is redirected to,
	// carrying state for callback verification.
	AuthorizeURL(state string) string

	// ExchangeCode trades an authorization code for a provider session.
	ExchangeCode(ctx context.Context, code string) (*domain.Session, error)

	// GetUser resolves the profile behind a provider access token.
	GetUser(ctx context.Context, accessToken string) (*domain.UserContext, error)

	// SignOut revokes the provider session for the given access token.
	SignOut(ctx context.Context, accessToken string) error
}
