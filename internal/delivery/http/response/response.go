package response

import (
	"net/http"
	"time"

	domainerrors "indocafe/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Data      any       `json:"data"`
	Code      string    `json:"code,omitempty"` // Machine-readable error code, only on failures
	Timestamp time.Time `json:"timestamp"`
}

// now is replaced in tests.
var now = time.Now

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Envelope{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: now().UTC(),
	})
}

// Error returns an error response. Data is always null.
func Error(c echo.Context, statusCode int, errorCode string, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Envelope{
		Success:   false,
		Message:   message,
		Data:      nil,
		Code:      errorCode,
		Timestamp: now().UTC(),
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message)
}

// BindingError returns a binding error response
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "INVALID_INPUT", message)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message)
}

// Forbidden returns a 403 error
func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message)
}

// AppError renders a domain error. Details are only exposed for client errors other than
// authentication and authorization failures.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	status := appErr.HTTPCode()
	message := appErr.Message()
	if status < http.StatusInternalServerError &&
		status != http.StatusUnauthorized &&
		status != http.StatusForbidden &&
		appErr.Details() != "" {
		message = message + ": " + appErr.Details()
	}

	return Error(c, status, appErr.ErrorCode(), message)
}

// HandleAppError handles application errors, converting domain errors to appropriate HTTP responses.
// Anything else is passed on to the HTTP error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return AppError(c, appErr)
	}

	return errors.WithStack(err)
}
