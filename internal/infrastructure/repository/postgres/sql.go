package postgres

import (
	"errors"

	"github.com/lib/pq"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

func isUniqueViolation(err error) bool {
	return hasPQCode(err, pqUniqueViolation)
}

func isForeignKeyViolation(err error) bool {
	return hasPQCode(err, pqForeignKeyViolation)
}

func hasPQCode(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == code
}
