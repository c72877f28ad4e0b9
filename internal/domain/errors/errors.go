// Package errors is the checkout error taxonomy. Every AppError knows the HTTP
// status and business code it is rendered with.
package errors

import (
	"net/http"

	"petverse/internal/errors"
)

// AppError is an error the HTTP layer can render as the error envelope.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	// Message is safe to show to the buyer.
	Message() string
	// Details is context for the caller. It is hidden on 5xx, 401 and 403 responses.
	Details() string
}

// BaseError is an AppError identified by its business code.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

func define(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{httpCode: httpCode, errorCode: errorCode, message: message}
}

func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// WithDetails returns a copy carrying details. errors.Is still matches the original.
func (e *BaseError) WithDetails(details string) *BaseError {
	clone := *e
	clone.details = details

	return &clone
}

// WrapMessage adds context and a stack trace for logging.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Is compares business codes.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// Input
var ErrValidationFailed = define(http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed")

// Orders
var (
	ErrOrderNotFound           = define(http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found")
	ErrInvalidStatusTransition = define(http.StatusConflict, "INVALID_STATUS_TRANSITION", "Order cannot move to the requested status")
	ErrPaymentConflict         = define(http.StatusConflict, "PAYMENT_CONFLICT", "Order was already settled by a different payment")
	// ErrOrderNotRecorded is left for support to reconcile; its details name the gateway order.
	ErrOrderNotRecorded = define(http.StatusInternalServerError, "ORDER_NOT_RECORDED", "Payment may have been taken but the order was not recorded")
)

// Address book
var (
	ErrAddressNotFound     = define(http.StatusNotFound, "ADDRESS_NOT_FOUND", "Address not found")
	ErrAddressBookConflict = define(http.StatusConflict, "ADDRESS_BOOK_CONFLICT", "Address book was modified concurrently, please retry")
	ErrAddressLimitReached = define(http.StatusConflict, "ADDRESS_LIMIT_REACHED", "Maximum number of addresses reached")
)

// Payment gateway
var (
	ErrConfiguration      = define(http.StatusInternalServerError, "CONFIGURATION_ERROR", "Payment service is not configured")
	ErrGatewayRejected    = define(http.StatusBadGateway, "GATEWAY_REJECTED", "Payment gateway rejected the request")
	ErrGatewayUnavailable = define(http.StatusBadGateway, "GATEWAY_UNAVAILABLE", "Payment gateway is unavailable, please try again")
	ErrSignatureMismatch  = define(http.StatusBadRequest, "SIGNATURE_MISMATCH", "Payment signature could not be verified")
)

// Access and fallbacks
var (
	ErrUnauthorized  = define(http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
	ErrForbidden     = define(http.StatusForbidden, "FORBIDDEN", "Access denied")
	ErrInternalError = define(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
)

// StoreUnavailableError is a failed read or write against the order or address store.
type StoreUnavailableError struct {
	err     error
	details string
}

func NewStoreUnavailableError(err error, details string) AppError {
	return &StoreUnavailableError{err: err, details: details}
}

func (e *StoreUnavailableError) Error() string {
	return "store unavailable: " + e.details + ": " + e.err.Error()
}

func (e *StoreUnavailableError) Unwrap() error     { return e.err }
func (e *StoreUnavailableError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *StoreUnavailableError) ErrorCode() string { return "STORE_UNAVAILABLE" }
func (e *StoreUnavailableError) Message() string   { return "Order store is unavailable" }
func (e *StoreUnavailableError) Details() string   { return e.details }
