package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session is the authenticated session as seen by this backend. It mirrors
// what the identity provider returned at sign-in plus the cookie expiry we
// assigned.
type Session struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`

	// AccessToken is the provider token backing this session. It never
	// leaves the server; sign-out uses it to revoke the provider session.
	AccessToken string `json:"-"`
}

// SessionEventKind tags a session lifecycle notification.
type SessionEventKind string

const (
	SessionSignedIn       SessionEventKind = "signed_in"
	SessionSignedOut      SessionEventKind = "signed_out"
	SessionTokenRefreshed SessionEventKind = "token_refreshed"
)

// SessionEvent is delivered to subscribers when the session state changes.
// Session is nil for signed-out events.
type SessionEvent struct {
	Kind    SessionEventKind
	Session *Session
}
