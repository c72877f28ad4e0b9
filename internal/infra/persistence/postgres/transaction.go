package postgres

import (
	"context"
	"fmt"
	"time"

	"petverse/internal/domain/repository"
	"petverse/internal/errors"

	"gorm.io/gorm"
)

// bookLockTimeout bounds how long a transaction waits on another session's
// address book lock before failing with SQLSTATE 55P03.
const bookLockTimeout = 3 * time.Second

type txRepositories struct {
	tx *gorm.DB
}

func (r txRepositories) NewAddressRepository() repository.AddressRepository {
	return NewAddressRepository(r.tx)
}

func (r txRepositories) NewOrderRepository() repository.OrderRepository {
	return NewOrderRepository(r.tx)
}

type transactionManager struct {
	db          *gorm.DB
	lockTimeout time.Duration
}

// NewTransactionManager runs units of work inside a PostgreSQL transaction.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &transactionManager{db: db, lockTimeout: bookLockTimeout}
}

// Execute commits when fn returns nil and rolls back on an error or a panic.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if tm.lockTimeout > 0 {
			stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", tm.lockTimeout.Milliseconds())
			if err := tx.Exec(stmt).Error; err != nil {
				return errors.Wrap(err, "failed to set lock timeout")
			}
		}

		return fn(txRepositories{tx: tx})
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}
