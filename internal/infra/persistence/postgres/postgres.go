package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"petverse/config"
	"petverse/internal/domain/lifecycle"
	"petverse/internal/errors"
	"petverse/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolCheckInterval = 5 * time.Second
	// checkout requests wait on the pool longer than this are reported as warnings
	poolSlowWait = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the order database. The orders, address_books and addresses tables
// are migrated when the application starts and the pool is closed on stop.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres connection settings are missing")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open order database")
	}
	// Multi-row writes go through the TransactionManager; single statements need no implicit transaction.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to reach order database pool")
	}

	watcher := &poolWatcher{logger: params.Logger, db: sqlDB}
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping order database")
			}
			if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
				return errors.Wrap(err, "failed to migrate order tables")
			}
			watcher.start()

			return nil
		},
		OnStop: func(_ context.Context) error {
			watcher.stop()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

// poolWatcher logs when checkout requests had to queue for a connection.
type poolWatcher struct {
	logger *slog.Logger
	db     *sql.DB
	cancel context.CancelFunc
	done   chan struct{}
}

func (w *poolWatcher) start() {
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.done = make(chan struct{})

	go func() {
		defer close(w.done)
		w.run(ctx)
	}()
}

func (w *poolWatcher) stop() {
	if w.cancel == nil {
		return
	}
	w.cancel()
	<-w.done
}

func (w *poolWatcher) run(ctx context.Context) {
	ticker := time.NewTicker(poolCheckInterval)
	defer ticker.Stop()

	last := w.db.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := w.db.Stats()
			w.report(ctx, last, now)
			last = now
		}
	}
}

func (w *poolWatcher) report(ctx context.Context, last, now sql.DBStats) {
	waits := now.WaitCount - last.WaitCount
	if waits <= 0 {
		return
	}
	waited := now.WaitDuration - last.WaitDuration

	level := slog.LevelDebug
	if waited >= poolSlowWait {
		level = slog.LevelWarn
	}
	w.logger.LogAttrs(ctx, level, "Order database pool saturated",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("in_use", now.InUse),
		slog.Int("idle", now.Idle),
		slog.Int("max_open", now.MaxOpenConnections),
	)
}
