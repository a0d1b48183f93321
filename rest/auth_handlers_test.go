package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safeqr/domain"
	"safeqr/usecase/auth_session_usecase"
	"safeqr/utils/errors"
)

type stubAuthUsecase struct {
	redirectURL string
	state       string
	startErr    error

	token       string
	session     *domain.Session
	callbackErr error
	gotCode     string

	logoutErr  error
	sessionErr error

	hub *auth_session_usecase.SessionEventHub
}

func (s *stubAuthUsecase) StartLogin() (string, string, error) {
	return s.redirectURL, s.state, s.startErr
}

func (s *stubAuthUsecase) HandleCallback(ctx context.Context, code string) (string, *domain.Session, error) {
	s.gotCode = code
	if s.callbackErr != nil {
		return "", nil, s.callbackErr
	}
	return s.token, s.session, nil
}

func (s *stubAuthUsecase) ParseSessionToken(token string) (*domain.UserContext, error) {
	return nil, errors.NewAuthContextError("invalid session token", "usecase", "stub", "parse", nil, nil)
}

func (s *stubAuthUsecase) CurrentSession(ctx context.Context) (*domain.Session, error) {
	if s.sessionErr != nil {
		return nil, s.sessionErr
	}
	return s.session, nil
}

func (s *stubAuthUsecase) Logout(ctx context.Context) error {
	return s.logoutErr
}

func (s *stubAuthUsecase) Events() *auth_session_usecase.SessionEventHub {
	if s.hub == nil {
		s.hub = auth_session_usecase.NewSessionEventHub()
	}
	return s.hub
}

func newAuthHandlers(stub *stubAuthUsecase) *authHandlers {
	return &authHandlers{
		usecase:    stub,
		cookieName: "safeqr_session",
		sessionTTL: time.Hour,
	}
}

func authRequest(method, target string, cookies ...*http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func responseCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func TestHandleLogin(t *testing.T) {
	stub := &stubAuthUsecase{
		redirectURL: "https://auth.example.com/authorize?state=abc123",
		state:       "abc123",
	}
	h := newAuthHandlers(stub)

	c, rec := authRequest(http.MethodGet, "/v1/auth/login")
	require.NoError(t, h.handleLogin(c))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, stub.redirectURL, rec.Header().Get(echo.HeaderLocation))

	stateCookie := responseCookie(rec, "safeqr_session_state")
	require.NotNil(t, stateCookie)
	assert.Equal(t, "abc123", stateCookie.Value)
	assert.True(t, stateCookie.HttpOnly)
}

func TestHandleCallback_Success(t *testing.T) {
	stub := &stubAuthUsecase{
		token: "signed-jwt",
		session: &domain.Session{
			UserID:    uuid.New(),
			Email:     "user@example.com",
			ExpiresAt: time.Now().Add(2 * time.Hour),
		},
	}
	h := newAuthHandlers(stub)

	c, rec := authRequest(http.MethodGet, "/auth/callback?code=code-abc&state=abc123",
		&http.Cookie{Name: "safeqr_session_state", Value: "abc123"})
	require.NoError(t, h.handleCallback(c))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	assert.Equal(t, "code-abc", stub.gotCode)

	sessionCookie := responseCookie(rec, "safeqr_session")
	require.NotNil(t, sessionCookie)
	assert.Equal(t, "signed-jwt", sessionCookie.Value)
	assert.True(t, sessionCookie.HttpOnly)
	assert.Positive(t, sessionCookie.MaxAge)

	stateCookie := responseCookie(rec, "safeqr_session_state")
	require.NotNil(t, stateCookie, "state cookie should be cleared")
	assert.Negative(t, stateCookie.MaxAge)
}

func TestHandleCallback_ProviderError(t *testing.T) {
	stub := &stubAuthUsecase{}
	h := newAuthHandlers(stub)

	c, rec := authRequest(http.MethodGet, "/auth/callback?error_description=access+denied")
	require.NoError(t, h.handleCallback(c))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/?auth_error=access+denied", rec.Header().Get(echo.HeaderLocation))
	assert.Empty(t, stub.gotCode)
}

func TestHandleCallback_NoCode(t *testing.T) {
	h := newAuthHandlers(&stubAuthUsecase{})

	c, rec := authRequest(http.MethodGet, "/auth/callback")
	require.NoError(t, h.handleCallback(c))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
}

func TestHandleCallback_StateMismatch(t *testing.T) {
	stub := &stubAuthUsecase{}
	h := newAuthHandlers(stub)

	c, rec := authRequest(http.MethodGet, "/auth/callback?code=code-abc&state=tampered",
		&http.Cookie{Name: "safeqr_session_state", Value: "abc123"})
	require.NoError(t, h.handleCallback(c))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderLocation), "auth_error=")
	assert.Empty(t, stub.gotCode, "code must not be exchanged on state mismatch")
}

func TestHandleCallback_ExchangeFailure(t *testing.T) {
	stub := &stubAuthUsecase{
		callbackErr: errors.NewAuthContextError(
			"authorization code rejected", "gateway", "AuthGateway", "exchange_code", nil, nil),
	}
	h := newAuthHandlers(stub)

	c, rec := authRequest(http.MethodGet, "/auth/callback?code=bad&state=abc123",
		&http.Cookie{Name: "safeqr_session_state", Value: "abc123"})
	require.NoError(t, h.handleCallback(c))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderLocation), "auth_error=")
	assert.Nil(t, responseCookie(rec, "safeqr_session"))
}

func TestHandleLogout(t *testing.T) {
	h := newAuthHandlers(&stubAuthUsecase{})

	c, rec := authRequest(http.MethodPost, "/v1/auth/logout",
		&http.Cookie{Name: "safeqr_session", Value: "signed-jwt"})
	require.NoError(t, h.handleLogout(c))

	assert.Equal(t, http.StatusNoContent, rec.Code)

	cleared := responseCookie(rec, "safeqr_session")
	require.NotNil(t, cleared)
	assert.Negative(t, cleared.MaxAge)
	assert.Empty(t, cleared.Value)
}

func TestHandleLogout_Anonymous(t *testing.T) {
	h := newAuthHandlers(&stubAuthUsecase{
		logoutErr: errors.NewAuthContextError(
			"no active session", "usecase", "AuthSessionUsecase", "logout", nil, nil),
	})

	c, rec := authRequest(http.MethodPost, "/v1/auth/logout")
	require.NoError(t, h.handleLogout(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleSession(t *testing.T) {
	session := &domain.Session{
		UserID:    uuid.New(),
		Email:     "user@example.com",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	h := newAuthHandlers(&stubAuthUsecase{session: session})

	c, rec := authRequest(http.MethodGet, "/v1/auth/session")
	require.NoError(t, h.handleSession(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "user@example.com")
}

func TestHandleSession_Anonymous(t *testing.T) {
	h := newAuthHandlers(&stubAuthUsecase{
		sessionErr: errors.NewAuthContextError(
			"no active session", "usecase", "AuthSessionUsecase", "current_session", nil, nil),
	})

	c, rec := authRequest(http.MethodGet, "/v1/auth/session")
	require.NoError(t, h.handleSession(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
