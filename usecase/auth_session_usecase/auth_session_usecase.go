package auth_session_usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"safeqr/domain"
	"safeqr/port/auth_port"
	"safeqr/utils/errors"
	"safeqr/utils/logger"
)

// AuthSessionUsecaseInterface defines the interface for session management
type AuthSessionUsecaseInterface interface {
	StartLogin() (redirectURL string, state string, err error)
	HandleCallback(ctx context.Context, code string) (token string, session *domain.Session, err error)
	ParseSessionToken(token string) (*domain.UserContext, error)
	CurrentSession(ctx context.Context) (*domain.Session, error)
	Logout(ctx context.Context) error
	Events() *SessionEventHub
}

// sessionClaims is the JWT payload of the session cookie. The provider
// access token rides along server-side only; the cookie is HttpOnly so it
// never reaches page scripts.
type sessionClaims struct {
	Email       string `json:"email"`
	Name        string `json:"name,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	AccessToken string `json:"pat,omitempty"`
	jwt.RegisteredClaims
}

// AuthSessionUsecase owns the session lifecycle: provider redirect, callback
// exchange, stateless JWT session cookies, and sign-out.
type AuthSessionUsecase struct {
	authPort   auth_port.AuthPort
	secret     []byte
	sessionTTL time.Duration
	hub        *SessionEventHub
	now        func() time.Time
}

// NewAuthSessionUsecase creates a new AuthSessionUsecase
func NewAuthSessionUsecase(authPort auth_port.AuthPort, sessionSecret string, sessionTTL time.Duration) *AuthSessionUsecase {
	return &AuthSessionUsecase{
		authPort:   authPort,
		secret:     []byte(sessionSecret),
		sessionTTL: sessionTTL,
		hub:        NewSessionEventHub(),
		now:        time.Now,
	}
}

// Events exposes the session lifecycle hub
func (u *AuthSessionUsecase) Events() *SessionEventHub {
	return u.hub
}

// StartLogin returns the provider redirect URL and the state value the
// callback must echo back
func (u *AuthSessionUsecase) StartLogin() (string, string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", "", errors.NewUnknownContextError(
			"failed to generate login state",
			"usecase",
			"AuthSessionUsecase",
			"start_login",
			err,
			nil,
		)
	}
	state := hex.EncodeToString(buf)
	return u.authPort.AuthorizeURL(state), state, nil
}

// HandleCallback exchanges the authorization code and mints the session
// token the cookie will carry
func (u *AuthSessionUsecase) HandleCallback(ctx context.Context, code string) (string, *domain.Session, error) {
	if code == "" {
		return "", nil, errors.NewValidationContextError(
			"authorization code is required",
			"usecase",
			"AuthSessionUsecase",
			"handle_callback",
			nil,
		)
	}

	session, err := u.authPort.ExchangeCode(ctx, code)
	if err != nil {
		return "", nil, err
	}

	token, err := u.mintToken(session)
	if err != nil {
		return "", nil, err
	}

	u.hub.Publish(domain.SessionEvent{Kind: domain.SessionSignedIn, Session: session})
	logger.SafeInfoContext(ctx, "user signed in", "user_id", session.UserID.String())

	return token, session, nil
}

// ParseSessionToken validates a session cookie value and rebuilds the
// request's user context from it
func (u *AuthSessionUsecase) ParseSessionToken(token string) (*domain.UserContext, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return u.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, errors.NewAuthContextError(
			"invalid session token",
			"usecase",
			"AuthSessionUsecase",
			"parse_token",
			err,
			nil,
		)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.NewAuthContextError(
			"invalid session subject",
			"usecase",
			"AuthSessionUsecase",
			"parse_token",
			err,
			nil,
		)
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return &domain.UserContext{
		UserID:    userID,
		Email:     claims.Email,
		Name:      claims.Name,
		AvatarURL: claims.AvatarURL,
		SessionID: claims.AccessToken,
		ExpiresAt: expiresAt,
	}, nil
}

// CurrentSession reports the session backing the current request
func (u *AuthSessionUsecase) CurrentSession(ctx context.Context) (*domain.Session, error) {
	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return nil, errors.NewAuthContextError(
			"no active session",
			"usecase",
			"AuthSessionUsecase",
			"current_session",
			err,
			nil,
		)
	}
	return user.Session(), nil
}

// Logout revokes the provider session behind the current request and emits
// the signed-out event. Provider revocation failure is logged but does not
// block logout: the cookie is gone either way.
func (u *AuthSessionUsecase) Logout(ctx context.Context) error {
	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return errors.NewAuthContextError(
			"no active session",
			"usecase",
			"AuthSessionUsecase",
			"logout",
			err,
			nil,
		)
	}

	if user.SessionID != "" {
		if err := u.authPort.SignOut(ctx, user.SessionID); err != nil {
			logger.SafeWarnContext(ctx, "provider sign out failed",
				"user_id", user.UserID.String(), "error", err)
		}
	}

	u.hub.Publish(domain.SessionEvent{Kind: domain.SessionSignedOut})
	logger.SafeInfoContext(ctx, "user signed out", "user_id", user.UserID.String())
	return nil
}

func (u *AuthSessionUsecase) mintToken(session *domain.Session) (string, error) {
	now := u.now()
	claims := sessionClaims{
		Email:       session.Email,
		Name:        session.Name,
		AvatarURL:   session.AvatarURL,
		AccessToken: session.AccessToken,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   session.UserID.String(),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
	if err != nil {
		return "", errors.NewUnknownContextError(
			"failed to sign session token",
			"usecase",
			"AuthSessionUsecase",
			"mint_token",
			err,
			nil,
		)
	}
	return token, nil
}
