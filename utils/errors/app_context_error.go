// Package errors provides structured error handling for the SafeQR backend.
// Errors carry a machine-readable code plus the clean-architecture layer,
// component and operation they originated from, so every failure can be
// logged and mapped to an HTTP status without string matching.
package errors

import (
	"fmt"
	"net/http"
)

// Error code constants for categorizing application errors.
const (
	CodeValidation  = "VALIDATION_ERROR"
	CodeRateLimit   = "RATE_LIMIT_ERROR"
	CodeExternalAPI = "EXTERNAL_API_ERROR"
	CodeTimeout     = "TIMEOUT_ERROR"
	CodeDatabase    = "DATABASE_ERROR"
	CodeAuth        = "AUTH_ERROR"
	CodeUnknown     = "UNKNOWN_ERROR"
)

// AppContextError represents an error with rich context information.
type AppContextError struct {
	Code      string                 `json:"code"`
	Message   string                 `json:"message"`
	Layer     string                 `json:"layer,omitempty"`     // rest, usecase, gateway, driver
	Component string                 `json:"component,omitempty"` // specific component/service name
	Operation string                 `json:"operation,omitempty"` // specific operation/method name
	Cause     error                  `json:"-"`                   // underlying error (not serialized)
	Context   map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface.
func (e *AppContextError) Error() string {
	var prefix string
	if e.Layer != "" && e.Component != "" && e.Operation != "" {
		prefix = fmt.Sprintf("[%s:%s:%s] ", e.Layer, e.Component, e.Operation)
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s%s: %s (caused by: %v)", prefix, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s%s: %s", prefix, e.Code, e.Message)
}

// Unwrap returns the underlying error for error chain unwrapping.
func (e *AppContextError) Unwrap() error {
	return e.Cause
}

// HTTPStatusCode maps error codes to HTTP status codes.
func (e *AppContextError) HTTPStatusCode() int {
	switch e.Code {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeRateLimit:
		return http.StatusTooManyRequests
	case CodeExternalAPI:
		return http.StatusBadGateway
	case CodeTimeout:
		return http.StatusGatewayTimeout
	case CodeAuth:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// IsRetryable reports whether the failure is transient from the caller's
// point of view.
func (e *AppContextError) IsRetryable() bool {
	switch e.Code {
	case CodeRateLimit, CodeTimeout, CodeExternalAPI:
		return true
	default:
		return false
	}
}

// HTTPResponse is the error payload sent to clients.
type HTTPResponse struct {
	Error   string                 `json:"error"`
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// clientContextKeys are the context entries safe to echo back to callers.
var clientContextKeys = []string{"retry_after", "status_code", "field"}

// ToHTTPResponse converts an AppContextError to an HTTP error payload.
// Layer/component/operation and request internals stay server-side; clients
// get code, message, and the few actionable context entries.
func (e *AppContextError) ToHTTPResponse() HTTPResponse {
	var clientContext map[string]interface{}
	for _, key := range clientContextKeys {
		if value, ok := e.Context[key]; ok {
			if clientContext == nil {
				clientContext = make(map[string]interface{})
			}
			clientContext[key] = value
		}
	}

	return HTTPResponse{
		Error:   "error",
		Code:    e.Code,
		Message: e.Message,
		Context: clientContext,
	}
}

// NewAppContextError creates a new AppContextError with full context.
func NewAppContextError(code, message, layer, component, operation string, cause error, context map[string]interface{}) *AppContextError {
	if context == nil {
		context = make(map[string]interface{})
	}
	return &AppContextError{
		Code:      code,
		Message:   message,
		Layer:     layer,
		Component: component,
		Operation: operation,
		Cause:     cause,
		Context:   context,
	}
}

// EnrichWithContext creates a new AppContextError by stamping an existing one
// with the caller's layer/component/operation and extra context.
func EnrichWithContext(err *AppContextError, layer, component, operation string, additional map[string]interface{}) *AppContextError {
	merged := make(map[string]interface{})
	for k, v := range err.Context {
		merged[k] = v
	}
	for k, v := range additional {
		merged[k] = v
	}
	return &AppContextError{
		Code:      err.Code,
		Message:   err.Message,
		Layer:     layer,
		Component: component,
		Operation: operation,
		Cause:     err.Cause,
		Context:   merged,
	}
}

// NewValidationContextError creates a validation error with context.
func NewValidationContextError(message, layer, component, operation string, context map[string]interface{}) *AppContextError {
	return NewAppContextError(CodeValidation, message, layer, component, operation, nil, context)
}

// NewRateLimitContextError creates a rate limit error with context.
func NewRateLimitContextError(message, layer, component, operation string, cause error, context map[string]interface{}) *AppContextError {
	return NewAppContextError(CodeRateLimit, message, layer, component, operation, cause, context)
}

// NewExternalAPIContextError creates an external API error with context.
func NewExternalAPIContextError(message, layer, component, operation string, cause error, context map[string]interface{}) *AppContextError {
	return NewAppContextError(CodeExternalAPI, message, layer, component, operation, cause, context)
}

// NewTimeoutContextError creates a timeout error with context.
func NewTimeoutContextError(message, layer, component, operation string, cause error, context map[string]interface{}) *AppContextError {
	return NewAppContextError(CodeTimeout, message, layer, component, operation, cause, context)
}

// NewDatabaseContextError creates a database error with context.
func NewDatabaseContextError(message, layer, component, operation string, cause error, context map[string]interface{}) *AppContextError {
	return NewAppContextError(CodeDatabase, message, layer, component, operation, cause, context)
}

// NewAuthContextError creates an authentication error with context.
func NewAuthContextError(message, layer, component, operation string, cause error, context map[string]interface{}) *AppContextError {
	return NewAppContextError(CodeAuth, message, layer, component, operation, cause, context)
}

// NewUnknownContextError creates an unclassified error with context.
func NewUnknownContextError(message, layer, component, operation string, cause error, context map[string]interface{}) *AppContextError {
	return NewAppContextError(CodeUnknown, message, layer, component, operation, cause, context)
}
