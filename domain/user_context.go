package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UserContext represents the authenticated user for the current request.
// It is populated by the auth middleware from the session cookie.
type UserContext struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	SessionID string    `json:"session_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsValid checks that the context carries a real user and has not expired.
func (uc *UserContext) IsValid() bool {
	return uc.UserID != uuid.Nil &&
		uc.Email != "" &&
		uc.ExpiresAt.After(time.Now())
}

// Session converts the request context back into the session shape returned
// by the session endpoint.
func (uc *UserContext) Session() *Session {
	return &Session{
		UserID:    uc.UserID,
		Email:     uc.Email,
		Name:      uc.Name,
		AvatarURL: uc.AvatarURL,
		ExpiresAt: uc.ExpiresAt,
	}
}

type contextKey string

const UserContextKey contextKey = "user_context"

// GetUserFromContext returns the authenticated user, or an error when the
// request is anonymous or the stored context is stale.
func GetUserFromContext(ctx context.Context) (*UserContext, error) {
	user, ok := ctx.Value(UserContextKey).(*UserContext)
	if !ok || user == nil {
		return nil, fmt.Errorf("user context not found")
	}
	if !user.IsValid() {
		return nil, fmt.Errorf("invalid user context")
	}
	return user, nil
}

// UserFromContextOrNil is the optional-auth variant: anonymous requests get
// nil instead of an error.
func UserFromContextOrNil(ctx context.Context) *UserContext {
	user, err := GetUserFromContext(ctx)
	if err != nil {
		return nil
	}
	return user
}

func SetUserContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, UserContextKey, user)
}
