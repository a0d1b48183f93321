// Package middleware provides HTTP middleware components for the SafeQR
// backend. It includes session authentication, request tracing, logging, and
// DoS protection for the Echo web framework.
package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"safeqr/domain"
	"safeqr/utils/errors"
	"safeqr/utils/logger"
)

// SessionTokenParser validates a session cookie value and rebuilds the user
// context it encodes.
type SessionTokenParser interface {
	ParseSessionToken(token string) (*domain.UserContext, error)
}

// AuthMiddleware authenticates requests from the session cookie
type AuthMiddleware struct {
	parser     SessionTokenParser
	cookieName string
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(parser SessionTokenParser, cookieName string) *AuthMiddleware {
	return &AuthMiddleware{
		parser:     parser,
		cookieName: cookieName,
	}
}

// OptionalAuth populates the user context when a valid session cookie is
// present. Anonymous requests and stale cookies pass through untouched.
func (m *AuthMiddleware) OptionalAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if user := m.userFromCookie(c); user != nil {
				ctx := domain.SetUserContext(c.Request().Context(), user)
				c.SetRequest(c.Request().WithContext(ctx))
			}
			return next(c)
		}
	}
}

// RequireAuth rejects requests without a valid session cookie
func (m *AuthMiddleware) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := m.userFromCookie(c)
			if user == nil {
				appErr := errors.NewAuthContextError(
					"authentication required",
					"middleware",
					"AuthMiddleware",
					"require_auth",
					nil,
					nil,
				)
				return c.JSON(http.StatusUnauthorized, appErr.ToHTTPResponse())
			}

			ctx := domain.SetUserContext(c.Request().Context(), user)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

func (m *AuthMiddleware) userFromCookie(c echo.Context) *domain.UserContext {
	cookie, err := c.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	user, err := m.parser.ParseSessionToken(cookie.Value)
	if err != nil {
		logger.SafeWarnContext(c.Request().Context(), "session cookie rejected", "error", err)
		return nil
	}
	if !user.IsValid() {
		return nil
	}
	return user
}
