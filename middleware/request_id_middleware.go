package middleware

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"safeqr/utils/logger"
)

const requestIDHeader = "X-Request-ID"

// RequestIDMiddleware tags every request with an ID, reusing the caller's
// X-Request-ID header when present. The ID is echoed on the response and
// stored in the request context for the logger.
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(requestIDHeader)
			if id == "" {
				id = uuid.New().String()
			}

			c.Response().Header().Set(requestIDHeader, id)

			ctx := context.WithValue(c.Request().Context(), logger.RequestIDKey, id)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
