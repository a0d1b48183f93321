package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"safeqr/utils/logger"
)

func LoggingMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			req := c.Request()

			// Skip logging for health check endpoint to reduce noise
			if req.URL.Path == "/v1/health" {
				return next(c)
			}
			ctx := req.Context()

			logger.SafeInfoContext(ctx, "request started",
				"method", req.Method,
				"path", req.URL.Path,
				"remote_addr", c.RealIP(),
				"user_agent", req.UserAgent(),
			)

			err := next(c)

			duration := time.Since(start)
			res := c.Response()

			logAttrs := []any{
				"method", req.Method,
				"path", req.URL.Path,
				"status", res.Status,
				"duration_ms", duration.Milliseconds(),
				"response_size", res.Size,
			}
			switch {
			case res.Status >= 500:
				logger.SafeErrorContext(ctx, "request completed", logAttrs...)
			case res.Status >= 400:
				logger.SafeWarnContext(ctx, "request completed", logAttrs...)
			default:
				logger.SafeInfoContext(ctx, "request completed", logAttrs...)
			}

			if err != nil {
				logger.SafeErrorContext(ctx, "request error",
					"method", req.Method,
					"path", req.URL.Path,
					"error", err,
					"duration_ms", duration.Milliseconds(),
				)
			}

			return err
		}
	}
}
