package postgres

import (
	"strings"

	"petverse/internal/errors"

	"gorm.io/gorm"
)

// SQLSTATE codes the order and address repositories react to.
const (
	sqlStateUniqueViolation = "23505" // second order for one gateway order id, or a racing book insert
	sqlStateLockTimeout     = "55P03" // another session holds the address book row
	sqlStateSerialization   = "40001"
)

// hasSQLState matches on the driver message, which carries "(SQLSTATE xxxxx)".
func hasSQLState(err error, codes ...string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, code := range codes {
		if strings.Contains(msg, code) {
			return true
		}
	}

	return false
}

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return hasSQLState(err, sqlStateUniqueViolation) ||
		(err != nil && strings.Contains(strings.ToLower(err.Error()), "duplicate key"))
}

// isContention reports lock or serialization failures caused by a concurrent writer.
func isContention(err error) bool {
	return hasSQLState(err, sqlStateLockTimeout, sqlStateSerialization)
}
