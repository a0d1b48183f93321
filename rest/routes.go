package rest

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"safeqr/config"
	"safeqr/di"
	middleware_custom "safeqr/middleware"
)

func RegisterRoutes(e *echo.Echo, container *di.ApplicationComponents, cfg *config.Config) {
	// 1. Request ID first so every later log line carries it
	e.Use(middleware_custom.RequestIDMiddleware())

	// 2. Recovery
	e.Use(middleware.Recover())

	// 3. Security headers
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		HSTSMaxAge:            31536000,
		ContentSecurityPolicy: "default-src 'self'",
	}))

	// 4. CORS; credentials allowed because auth rides in a cookie
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173", "https://safeqr.app"},
		AllowMethods:     []string{echo.GET, echo.POST, echo.DELETE, echo.OPTIONS},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, "Cache-Control", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// 5. DoS protection ahead of everything that does real work
	e.Use(middleware_custom.DOSProtectionMiddleware(
		cfg.RateLimit.DOSProtection,
		[]string{"/v1/health", "/metrics"},
	))

	// 6. Request timeout; event streams hold connections open
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: cfg.Server.ReadTimeout,
		Skipper: func(c echo.Context) bool {
			return strings.Contains(c.Path(), "/events")
		},
	}))

	// 7. Logging
	e.Use(middleware_custom.LoggingMiddleware())

	// 8. Compression last; PNG bodies and event streams skip it
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
		Skipper: func(c echo.Context) bool {
			return strings.Contains(c.Path(), "/health") ||
				strings.Contains(c.Path(), "/events") ||
				c.Path() == "/v1/qr"
		},
	}))

	authMiddleware := middleware_custom.NewAuthMiddleware(
		container.AuthSessionUsecase, cfg.Auth.SessionCookieName)

	v1 := e.Group("/v1", authMiddleware.OptionalAuth())

	v1.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	registerMetadataRoutes(v1, container.FetchMetadataUsecase)
	registerQRRoutes(v1, container.GenerateQRUsecase)
	registerAuthRoutes(e, v1, container.AuthSessionUsecase, cfg.Auth)

	authed := e.Group("/v1", authMiddleware.RequireAuth())
	registerHistoryRoutes(authed, container.FetchHistoryUsecase, container.DeleteHistoryUsecase)
}
