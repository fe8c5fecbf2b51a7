package helper

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// pgSQLErr matches both pgx and lib/pq error types without importing either.
type pgSQLErr interface {
	SQLState() string
	Error() string
}

// IsDuplicateKey reports whether err is a Postgres unique violation (SQLSTATE 23505).
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		return pgErr.SQLState() == "23505"
	}
	// string fallback for wrapped drivers
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "sqlstate 23505") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}

// IsForeignKeyViolation reports a Postgres FK violation (SQLSTATE 23503).
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		return pgErr.SQLState() == "23503"
	}
	return strings.Contains(strings.ToLower(err.Error()), "sqlstate 23503")
}

// MapPGError maps a store error to an HTTP status + message. dupMessage names
// the colliding key for the caller; constraint violations never surface as 500.
func MapPGError(err error, dupMessage string) (int, string) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return 404, "record not found"
	case IsDuplicateKey(err):
		if strings.TrimSpace(dupMessage) == "" {
			dupMessage = "duplicate record (unique constraint)"
		}
		return 400, dupMessage
	case IsForeignKeyViolation(err):
		return 400, "referenced record not found (foreign key)"
	default:
		return 500, err.Error()
	}
}
