// Package notification delivers buyer notifications about their orders.
package notification

import (
	"context"
	"log/slog"

	"petverse/config"
	"petverse/internal/domain/service"

	"go.uber.org/fx"
)

// NotifierParams holds dependencies for OrderNotifier, injected by Fx
type NotifierParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewOrderNotifier returns the Firebase notifier when credentials are configured, else the log notifier.
func NewOrderNotifier(params NotifierParams) (service.OrderNotifier, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, notifications are only logged")

		return NewLogNotifier(params.Logger), nil
	}

	return NewFirebaseNotifier(params.Ctx, cfg.CredentialsPath, params.Logger)
}
