package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorKind classifies failures so clients can branch on a stable code.
type ErrorKind string

const (
	KindValidation    ErrorKind = "validation_error"
	KindNotFound      ErrorKind = "not_found"
	KindAuthorization ErrorKind = "authorization_error"
	KindConflict      ErrorKind = "conflict"
	KindInternal      ErrorKind = "internal_error"
)

// KindUnauthenticated is only produced by the auth middleware.
const KindUnauthenticated ErrorKind = "unauthenticated"

// AppError is the error type surfaced by the service layer.
type AppError struct {
	Kind    ErrorKind
	Message string
	// Fields carries field-level detail for validation errors.
	Fields map[string]string
	Err    error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

func NewValidationError(message string, fields map[string]string) *AppError {
	return &AppError{Kind: KindValidation, Message: message, Fields: fields}
}

// NewFieldError is a validation error about a single field.
func NewFieldError(field, problem string) *AppError {
	return NewValidationError("invalid input", map[string]string{field: problem})
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func NewAuthorizationError(message string) *AppError {
	return &AppError{Kind: KindAuthorization, Message: message}
}

func NewConflictError(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

// NewInternalError wraps an infrastructure failure. The cause is logged,
// never sent to clients.
func NewInternalError(message string, err error) *AppError {
	return &AppError{Kind: KindInternal, Message: message, Err: err}
}

// KindOf returns the kind of err, treating unknown errors as internal.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func statusFor(kind ErrorKind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindAuthorization:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Code    ErrorKind         `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// RespondError renders err with the status and code of its kind. Internal
// errors are logged and replaced by a generic message.
func RespondError(c *gin.Context, logger *zap.Logger, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) || appErr.Kind == KindInternal {
		logger.Error("request failed", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
			Code:    KindInternal,
			Message: "Internal Server Error",
		})
		return
	}
	logger.Debug("request rejected", zap.String("kind", string(appErr.Kind)), zap.String("message", appErr.Message))
	c.AbortWithStatusJSON(statusFor(appErr.Kind), ErrorResponse{
		Code:    appErr.Kind,
		Message: appErr.Message,
		Fields:  appErr.Fields,
	})
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Unhandled panic", zap.Any("error", err))

				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Code:    KindInternal,
					Message: "Internal Server Error",
				})
			}
		}()
		c.Next()
	}
}
