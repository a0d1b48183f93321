package rest

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"safeqr/utils/errors"
	"safeqr/utils/logger"
)

// handleError converts errors to HTTP responses, enriching them with request
// context first so the log line carries the full failure path.
func handleError(c echo.Context, err error, operation string) error {
	var enrichedErr *errors.AppContextError

	if appContextErr, ok := err.(*errors.AppContextError); ok {
		enrichedErr = errors.EnrichWithContext(
			appContextErr,
			"rest",
			"RESTHandler",
			operation,
			map[string]interface{}{
				"path":        c.Request().URL.Path,
				"method":      c.Request().Method,
				"remote_addr": c.RealIP(),
				"request_id":  c.Response().Header().Get("X-Request-ID"),
			},
		)
	} else {
		enrichedErr = errors.NewUnknownContextError(
			"internal server error",
			"rest",
			"RESTHandler",
			operation,
			err,
			map[string]interface{}{
				"path":        c.Request().URL.Path,
				"method":      c.Request().Method,
				"remote_addr": c.RealIP(),
				"request_id":  c.Response().Header().Get("X-Request-ID"),
			},
		)
	}

	logger.SafeErrorContext(c.Request().Context(), "REST handler error",
		"error", enrichedErr.Error(),
		"error_code", enrichedErr.Code,
		"layer", enrichedErr.Layer,
		"component", enrichedErr.Component,
		"operation", enrichedErr.Operation,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	if enrichedErr.Code == errors.CodeRateLimit {
		if retryAfter, ok := retryAfterSeconds(enrichedErr); ok {
			c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))
		}
	}

	return c.JSON(enrichedErr.HTTPStatusCode(), enrichedErr.ToHTTPResponse())
}

// handleValidationError responds 400 for request-shape problems caught before
// any usecase runs
func handleValidationError(c echo.Context, message, field string, value interface{}) error {
	validationErr := errors.NewValidationContextError(
		message,
		"rest",
		"RESTHandler",
		"validate_input",
		map[string]interface{}{
			"field":       field,
			"value":       value,
			"path":        c.Request().URL.Path,
			"method":      c.Request().Method,
			"remote_addr": c.RealIP(),
		},
	)

	logger.SafeWarnContext(c.Request().Context(), "REST validation error",
		"error", validationErr.Error(),
		"field", field,
		"path", c.Request().URL.Path,
	)
	return c.JSON(validationErr.HTTPStatusCode(), validationErr.ToHTTPResponse())
}

func retryAfterSeconds(err *errors.AppContextError) (int, bool) {
	raw, ok := err.Context["retry_after"]
	if !ok {
		return 0, false
	}
	switch v := raw.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	}
	return 0, false
}
