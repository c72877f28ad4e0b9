package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"petverse/config"
	"petverse/internal/errors"

	"go.uber.org/fx"
)

const redacted = "[REDACTED]"

// sensitiveKeys never reach the log output with their value: payment
// signatures and credentials, and the buyer's contact details.
var sensitiveKeys = map[string]struct{}{
	"signature":     {},
	"authorization": {},
	"key_secret":    {},
	"phone":         {},
	"email":         {},
}

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

// New builds the process logger from env.log, writing to stdout.
func New(params Params) (*slog.Logger, error) {
	return newLogger(os.Stdout, params.Config)
}

func newLogger(w io.Writer, cfg *config.Config) (*slog.Logger, error) {
	level, err := parseLogLevel(cfg.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level, ReplaceAttr: redact}
	var handler slog.Handler = slog.NewJSONHandler(w, opts)
	if cfg.Env.Log.Pretty {
		handler = slog.NewTextHandler(w, opts)
	}

	var attrs []any
	if cfg.Env.ServiceName != "" {
		attrs = append(attrs, slog.String("service", cfg.Env.ServiceName))
	}
	if cfg.Env.Env != "" {
		attrs = append(attrs, slog.String("env", cfg.Env.Env))
	}

	return slog.New(handler).With(attrs...), nil
}

func redact(_ []string, attr slog.Attr) slog.Attr {
	if _, ok := sensitiveKeys[strings.ToLower(attr.Key)]; ok {
		return slog.String(attr.Key, redacted)
	}

	return attr
}

// parseLogLevel accepts debug, info, warn and error in any case. Empty means info.
func parseLogLevel(raw string) (slog.Level, error) {
	level := slog.LevelInfo
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return level, nil
	}
	switch strings.ToLower(raw) {
	case "debug", "info", "warn", "error":
	default:
		return level, errors.Errorf("unknown log level: %s", raw)
	}
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return level, errors.Wrapf(err, "unknown log level: %s", raw)
	}

	return level, nil
}
