package dbx

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error class 23: integrity constraint violations.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// IsUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation. Concurrent inserts racing on the same key surface here, so the
// service layer treats this as an expected conflict, not a crash.
func IsUniqueViolation(err error) bool {
	return isPgErrorCode(err, pgUniqueViolation)
}

// IsForeignKeyViolation reports whether err is a foreign-key violation,
// e.g. a content row referencing a user that no longer exists.
func IsForeignKeyViolation(err error) bool {
	return isPgErrorCode(err, pgForeignKeyViolation)
}

// IsCheckViolation reports whether err is a CHECK-constraint violation,
// e.g. a mood score outside the 1..10 range reaching the database.
func IsCheckViolation(err error) bool {
	return isPgErrorCode(err, pgCheckViolation)
}

func isPgErrorCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
