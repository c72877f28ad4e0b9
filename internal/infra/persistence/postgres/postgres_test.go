package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"petverse/config"
	deliverycontext "petverse/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}

	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)

	entry := map[string]any{}
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))

	return entry
}

func TestConstraintErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		unique     bool
		contention bool
	}{
		{name: "nil", err: nil},
		{name: "gorm duplicated key", err: gorm.ErrDuplicatedKey, unique: true},
		{
			name:   "unique violation",
			err:    errors.New(`ERROR: duplicate key value violates unique constraint "idx_orders_gateway_order_id" (SQLSTATE 23505)`),
			unique: true,
		},
		{name: "lock timeout", err: errors.New("ERROR: canceling statement due to lock timeout (SQLSTATE 55P03)"), contention: true},
		{name: "serialization", err: errors.New("ERROR: could not serialize access (SQLSTATE 40001)"), contention: true},
		{name: "connection refused", err: errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, isUniqueConstraintViolation(tt.err))
			assert.Equal(t, tt.contention, isContention(tt.err))
		})
	}
}

func TestGormSlogLogger_Trace(t *testing.T) {
	query := func() (string, int64) { return "SELECT * FROM orders", 1 }

	t.Run("failed query carries the request id", func(t *testing.T) {
		base, buf := bufferLogger()
		l := newGormSlogLogger(base, &config.Config{})
		ctx := deliverycontext.WithRequest(context.Background(), "req-1", base)

		l.Trace(ctx, time.Now(), query, errors.New("boom"))

		entry := lastEntry(t, buf)
		assert.Equal(t, "ERROR", entry["level"])
		assert.Equal(t, "Order store query failed", entry["msg"])
		assert.Equal(t, "req-1", entry["request_id"])
		assert.Equal(t, "boom", entry["error"])
	})

	t.Run("missing row is not logged", func(t *testing.T) {
		base, buf := bufferLogger()
		l := newGormSlogLogger(base, &config.Config{})

		l.Trace(context.Background(), time.Now(), query, gorm.ErrRecordNotFound)

		assert.Zero(t, buf.Len())
	})

	t.Run("slow query warns", func(t *testing.T) {
		base, buf := bufferLogger()
		l := newGormSlogLogger(base, &config.Config{})

		l.Trace(context.Background(), time.Now().Add(-time.Second), query, nil)

		entry := lastEntry(t, buf)
		assert.Equal(t, "WARN", entry["level"])
		assert.Equal(t, "SELECT * FROM orders", entry["sql"])
	})

	t.Run("fast query only in debug", func(t *testing.T) {
		base, buf := bufferLogger()
		cfg := &config.Config{}
		newGormSlogLogger(base, cfg).Trace(context.Background(), time.Now(), query, nil)
		assert.Zero(t, buf.Len())

		cfg.Env.Debug = true
		newGormSlogLogger(base, cfg).Trace(context.Background(), time.Now(), query, nil)
		assert.Equal(t, "Order store query", lastEntry(t, buf)["msg"])
	})

	t.Run("silent mode", func(t *testing.T) {
		base, buf := bufferLogger()
		l := newGormSlogLogger(base, &config.Config{}).LogMode(logger.Silent)

		l.Trace(context.Background(), time.Now(), query, errors.New("boom"))

		assert.Zero(t, buf.Len())
	})
}

func TestPoolWatcher_Report(t *testing.T) {
	base, buf := bufferLogger()
	w := &poolWatcher{logger: base}

	w.report(context.Background(), sql.DBStats{WaitCount: 3}, sql.DBStats{WaitCount: 3})
	assert.Zero(t, buf.Len())

	w.report(context.Background(),
		sql.DBStats{WaitCount: 3, WaitDuration: time.Millisecond},
		sql.DBStats{WaitCount: 5, WaitDuration: 101 * time.Millisecond, InUse: 10, MaxOpenConnections: 10},
	)
	entry := lastEntry(t, buf)
	assert.Equal(t, "WARN", entry["level"])
	assert.EqualValues(t, 2, entry["waits"])
	assert.EqualValues(t, 10, entry["in_use"])
}
