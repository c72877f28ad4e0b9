// Package response renders the JSON bodies shared by every handler.
package response

import (
	"net/http"

	deliverycontext "petverse/internal/delivery/context"
	domainerrors "petverse/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Success   bool       `json:"success"`
	Code      string     `json:"code"`    // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message   string     `json:"message"` // User-friendly error message
	Error     *ErrorInfo `json:"error"`
	RequestID string     `json:"requestId,omitempty"`
}

// ErrorInfo repeats the code next to the error context
type ErrorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details,omitempty"` // Only for 4xx errors
}

// StatusResponse is the body of mutations that return nothing else
type StatusResponse struct {
	Success bool `json:"success"`
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// OK returns {"success": true}
func OK(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Success: true})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= 500 || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = ""
	}

	return write(c, statusCode, errorCode, message, details)
}

func write(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Code:    errorCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
		RequestID: deliverycontext.GetRequestID(c),
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string, details string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, details)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, domainerrors.ErrUnauthorized.ErrorCode(), message, "")
}

// Forbidden returns a 403 error
func Forbidden(c echo.Context, message string) error {
	return Error(c, http.StatusForbidden, domainerrors.ErrForbidden.ErrorCode(), message, "")
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, "")
}

// AppError renders an application error. An unrecorded order keeps its details so
// support can match the gateway order.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	if appErr.ErrorCode() == domainerrors.ErrOrderNotRecorded.ErrorCode() {
		return write(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
}

// HandleAppError renders application errors and hands anything else to the HTTP error handler
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return AppError(c, appErr)
	}

	return errors.WithStack(err)
}
