package rest

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"

	"safeqr/config"
	"safeqr/usecase/auth_session_usecase"
	"safeqr/utils/logger"
)

const stateCookieSuffix = "_state"

type authHandlers struct {
	usecase    auth_session_usecase.AuthSessionUsecaseInterface
	cookieName string
	sessionTTL time.Duration
}

func registerAuthRoutes(e *echo.Echo, v1 *echo.Group, usecase auth_session_usecase.AuthSessionUsecaseInterface, cfg config.AuthConfig) {
	h := &authHandlers{
		usecase:    usecase,
		cookieName: cfg.SessionCookieName,
		sessionTTL: cfg.SessionTTL,
	}

	v1.GET("/auth/login", h.handleLogin)
	v1.POST("/auth/logout", h.handleLogout)
	v1.GET("/auth/session", h.handleSession)
	v1.GET("/auth/events", h.handleEvents)

	// The provider redirects back outside the /v1 prefix
	e.GET("/auth/callback", h.handleCallback)
}

func (h *authHandlers) handleLogin(c echo.Context) error {
	redirectURL, state, err := h.usecase.StartLogin()
	if err != nil {
		return handleError(c, err, "auth_login")
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName + stateCookieSuffix,
		Value:    state,
		Path:     "/",
		MaxAge:   int((10 * time.Minute).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.Redirect(http.StatusFound, redirectURL)
}

func (h *authHandlers) handleCallback(c echo.Context) error {
	if errDescription := c.QueryParam("error_description"); errDescription != "" {
		logger.SafeWarnContext(c.Request().Context(), "provider returned auth error",
			"error_description", errDescription)
		return c.Redirect(http.StatusFound, "/?auth_error="+url.QueryEscape(errDescription))
	}

	code := c.QueryParam("code")
	if code == "" {
		return c.Redirect(http.StatusFound, "/")
	}

	if !h.stateMatches(c) {
		logger.SafeWarnContext(c.Request().Context(), "auth callback state mismatch")
		return c.Redirect(http.StatusFound, "/?auth_error="+url.QueryEscape("invalid state"))
	}
	h.clearCookie(c, h.cookieName+stateCookieSuffix)

	token, session, err := h.usecase.HandleCallback(c.Request().Context(), code)
	if err != nil {
		logger.SafeErrorContext(c.Request().Context(), "auth code exchange failed", "error", err)
		return c.Redirect(http.StatusFound, "/?auth_error="+url.QueryEscape("sign-in failed"))
	}

	maxAge := int(h.sessionTTL.Seconds())
	if remaining := time.Until(session.ExpiresAt); remaining > 0 && remaining < h.sessionTTL {
		maxAge = int(remaining.Seconds())
	}
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.Redirect(http.StatusFound, "/")
}

func (h *authHandlers) handleLogout(c echo.Context) error {
	if err := h.usecase.Logout(c.Request().Context()); err != nil {
		return handleError(c, err, "auth_logout")
	}

	h.clearCookie(c, h.cookieName)
	return c.NoContent(http.StatusNoContent)
}

func (h *authHandlers) handleSession(c echo.Context) error {
	session, err := h.usecase.CurrentSession(c.Request().Context())
	if err != nil {
		return handleError(c, err, "auth_session")
	}

	return c.JSON(http.StatusOK, session)
}

// handleEvents streams session lifecycle events as SSE. The stream carries
// only event kinds; session payloads stay server-side.
func (h *authHandlers) handleEvents(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, "text/event-stream")
	c.Response().Header().Set("Cache-Control", "no-cache")
	c.Response().Header().Set("Connection", "keep-alive")
	c.Response().WriteHeader(http.StatusOK)

	flusher, canFlush := c.Response().Writer.(http.Flusher)
	if !canFlush {
		return c.String(http.StatusInternalServerError, "Streaming not supported")
	}

	events, unsubscribe := h.usecase.Events().Subscribe()
	defer unsubscribe()

	heartbeat := time.NewTicker(10 * time.Second)
	defer heartbeat.Stop()

	for {
		select {
		case event, open := <-events:
			if !open {
				return nil
			}
			payload, err := json.Marshal(map[string]string{"kind": string(event.Kind)})
			if err != nil {
				continue
			}
			if _, err := c.Response().Write([]byte("data: " + string(payload) + "\n\n")); err != nil {
				return nil
			}
			flusher.Flush()

		case <-heartbeat.C:
			if _, err := c.Response().Write([]byte(": heartbeat\n\n")); err != nil {
				return nil
			}
			flusher.Flush()

		case <-c.Request().Context().Done():
			return nil
		}
	}
}

func (h *authHandlers) stateMatches(c echo.Context) bool {
	state := c.QueryParam("state")
	if state == "" {
		return false
	}
	cookie, err := c.Cookie(h.cookieName + stateCookieSuffix)
	if err != nil {
		return false
	}
	return cookie.Value == state
}

func (h *authHandlers) clearCookie(c echo.Context, name string) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
