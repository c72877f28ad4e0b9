package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"petverse/config"
	deliverycontext "petverse/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// healthPath is probed by the load balancer every few seconds; it is logged at debug.
const healthPath = "/health"

// LoggerMiddleware writes one access log line per request.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{logger: logger, debug: cfg.Env.Debug}
}

func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			// Render now so the logged status is the one the client gets.
			c.Error(err)
		}

		req := c.Request()
		status := c.Response().Status
		attrs := []slog.Attr{
			slog.String("request_id", deliverycontext.GetRequestID(c)),
			slog.String("method", req.Method),
			slog.String("uri", req.URL.Path),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.String("remote_ip", c.RealIP()),
		}
		if m.debug {
			attrs = append(attrs, slog.String("user_agent", req.UserAgent()), slog.String("query", req.URL.RawQuery))
		}
		if err != nil {
			attrs = append(attrs, slog.Any("error", err))
		}

		m.logger.LogAttrs(req.Context(), accessLevel(req.URL.Path, status), "HTTP Request", attrs...)

		return nil
	}
}

func accessLevel(path string, status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	case path == healthPath:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
