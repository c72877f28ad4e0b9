// Package context carries the request id, the acting operator and the
// request-scoped logger from the deliveries down to the usecases.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyActor     ContextKey = "actor"
	KeyLogger    ContextKey = "logger"

	// HeaderXRequestID is echoed on every response and forwarded on published order events.
	HeaderXRequestID = echo.HeaderXRequestID
)

// GetRequestID extracts the request ID from echo.Context, or "" outside a request.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok {
		return id
	}

	return ""
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns "" for work that did not start from a request or an event.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

// WithRequest returns a context carrying the request ID and a logger tagged with it.
func WithRequest(ctx context.Context, requestID string, logger *slog.Logger) context.Context {
	ctx = context.WithValue(ctx, KeyRequestID, requestID)

	return context.WithValue(ctx, KeyLogger, logger.With(slog.String("request_id", requestID)))
}

// WithActor records the authenticated operator. Everything logged further down
// the request, such as admin order transitions, names the operator.
func WithActor(ctx context.Context, subject string, fallback *slog.Logger) context.Context {
	logger := GetLoggerOrDefault(ctx, fallback)
	ctx = context.WithValue(ctx, KeyActor, subject)
	if logger == nil {
		return ctx
	}

	return context.WithValue(ctx, KeyLogger, logger.With(slog.String("actor", subject)))
}

// GetActor returns the operator recorded by WithActor.
func GetActor(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(KeyActor).(string)

	return subject, ok && subject != ""
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback when there is none.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
