package utils

import (
	"errors"
	"net/http"

	"bookingschedule/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Error kinds. Every failure surfaced to a caller wraps exactly one of them.
var (
	ErrAuthentication      = errors.New("authentication error")
	ErrValidation          = errors.New("validation error")
	ErrNotFound            = errors.New("not found")
	ErrForbidden           = errors.New("forbidden")
	ErrMerchantUnavailable = errors.New("merchant unavailable")
)

// AppError is a caller-facing failure with a human readable message.
type AppError struct {
	Kind    error
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Kind
}

// NewAppError builds an AppError of the given kind.
func NewAppError(kind error, message string) error {
	return &AppError{Kind: kind, Message: message}
}

// StatusFor maps an error to the HTTP status it is reported with.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrMerchantUnavailable):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err))

				c.AbortWithStatusJSON(http.StatusInternalServerError, models.Response{
					Status:  models.StatusFailure,
					Message: "Internal Server Error",
				})
			}
		}()
		c.Next()
	}
}

// JSONError sends the failure envelope for err. Messages of unclassified
// errors are not exposed to the client.
func JSONError(c *gin.Context, err error) {
	status := StatusFor(err)
	message := err.Error()
	var appErr *AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}
	if status == http.StatusInternalServerError {
		GetLogger().Error("Request failed", zap.String("path", c.FullPath()), zap.Error(err))
		message = "Internal Server Error"
	} else {
		GetLogger().Warn(message, zap.String("path", c.FullPath()), zap.Int("status", status))
	}
	c.AbortWithStatusJSON(status, models.Response{Status: models.StatusFailure, Message: message})
}
