package db

import (
	"errors"

	"github.com/lib/pq"
)

// PostgreSQL SQLSTATE codes of class 23 (integrity constraint violation).
const (
	NotNullViolation    = "23502"
	ForeignKeyViolation = "23503"
	UniqueViolation     = "23505"
	CheckViolation      = "23514"
)

func pqCode(err error) (string, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), true
	}
	return "", false
}

func IsUniqueViolation(err error) bool {
	code, ok := pqCode(err)
	return ok && code == UniqueViolation
}

// IsIntegrityViolation reports whether err carries any class 23 error.
func IsIntegrityViolation(err error) bool {
	code, ok := pqCode(err)
	return ok && len(code) == 5 && code[:2] == "23"
}
