// Package worker delivers order events to the notification usecase, either from
// Pub/Sub push requests or from a Kafka consumer group.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"petverse/config"
	"petverse/internal/delivery"
	"petverse/internal/delivery/middleware"
	"petverse/internal/delivery/worker/handler"
	"petverse/internal/domain/lifecycle"
	"petverse/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// pushBodyLimit caps a push envelope; order events are a few hundred bytes.
const pushBodyLimit = "64K"

// pushServer receives order events from a Pub/Sub push subscription.
type pushServer struct {
	addr   string
	logger *slog.Logger
	echo   *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer listens on worker.port and shuts down with the application.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &pushServer{
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(params.Cfg.Worker.Port)),
		logger: params.Logger,
		echo:   NewEcho(params.Cfg, params.Logger, params.PushHandler),
	}
	params.Lc.Append(fx.Hook{OnStop: srv.stop})

	return srv, nil
}

// NewEcho registers GET /health and POST /push behind recover, request id and access log middleware.
func NewEcho(cfg *config.Config, logger *slog.Logger, pushHandler *handler.PushHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(logger).Process,
		middleware.NewLoggerMiddleware(logger, cfg).Handle,
	)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "source": "pubsub-push"})
	})
	e.POST("/push", pushHandler.HandlePush, echomiddleware.BodyLimit(pushBodyLimit))

	return e
}

func (s *pushServer) Serve(_ context.Context) error {
	s.logger.Info("Order worker accepting pushed events", slog.String("addr", s.addr))
	if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "order worker server stopped")
	}

	return nil
}

func (s *pushServer) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Order worker draining pushed events")

	return errors.WithStack(s.echo.Shutdown(ctx))
}
