package auth_gateway

import (
	"context"

	"safeqr/domain"
	"safeqr/driver/auth"
	"safeqr/utils/errors"
)

// AuthGateway implements the AuthPort interface over the provider client
type AuthGateway struct {
	client auth.ProviderClient
}

// NewAuthGateway creates a new gateway instance
func NewAuthGateway(client auth.ProviderClient) *AuthGateway {
	return &AuthGateway{client: client}
}

// AuthorizeURL builds the provider URL the browser is redirected to
func (g *AuthGateway) AuthorizeURL(state string) string {
	return g.client.AuthorizeURL(state)
}

// ExchangeCode trades an authorization code for a provider session. Exchange
// failures surface as auth errors: the code was bad, not the provider.
func (g *AuthGateway) ExchangeCode(ctx context.Context, code string) (*domain.Session, error) {
	session, err := g.client.ExchangeCode(ctx, code)
	if err != nil {
		return nil, errors.NewAuthContextError(
			"authorization code rejected",
			"gateway",
			"AuthGateway",
			"exchange_code",
			err,
			nil,
		)
	}
	return session, nil
}

// GetUser resolves the profile behind a provider access token
func (g *AuthGateway) GetUser(ctx context.Context, accessToken string) (*domain.UserContext, error) {
	user, err := g.client.GetUser(ctx, accessToken)
	if err != nil {
		return nil, errors.NewAuthContextError(
			"access token rejected",
			"gateway",
			"AuthGateway",
			"get_user",
			err,
			nil,
		)
	}
	return user, nil
}

// SignOut revokes the provider session. Revocation failure is reported as an
// external API error; the local cookie is cleared regardless.
func (g *AuthGateway) SignOut(ctx context.Context, accessToken string) error {
	if err := g.client.SignOut(ctx, accessToken); err != nil {
		return errors.NewExternalAPIContextError(
			"provider sign out failed",
			"gateway",
			"AuthGateway",
			"sign_out",
			err,
			nil,
		)
	}
	return nil
}
