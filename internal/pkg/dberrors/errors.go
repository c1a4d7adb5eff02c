package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique
// violation (23505) for a specific named constraint. Repositories use this to
// surface duplicate record calls and legal ids as conflicts instead of raw
// store errors.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == constraintName
}

// IsInvalidEnumError checks if the error is a PostgreSQL invalid input value
// for an enum (22P02), which is how an out-of-taxonomy grade code is rejected
// at write time.
func IsInvalidEnumError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "22P02"
}
