package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrRoomUnavailable is returned when the compare-and-set hold on a room
// finds it already booked.
var ErrRoomUnavailable = errors.New("room is not available")

// IsUniqueViolation reports whether err is a unique-constraint violation
// from either backend (Postgres code 23505, SQLite message match).
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
