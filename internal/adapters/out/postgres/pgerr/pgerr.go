// Package pgerr translates driver and gorm errors into the errs kinds the core understands.
package pgerr

import (
	"errors"

	"storefront/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	checkViolation      = "23514"
)

// IsUniqueViolation reports whether err carries PostgreSQL's unique_violation code.
func IsUniqueViolation(err error) bool {
	return hasCode(err, uniqueViolation)
}

// IsForeignKeyViolation reports whether err carries PostgreSQL's foreign_key_violation code.
func IsForeignKeyViolation(err error) bool {
	return hasCode(err, foreignKeyViolation)
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

// Translate maps err for a write on param:
//   - unique, foreign key and check violations become errs.ValueIsInvalidError
//   - gorm.ErrRecordNotFound becomes errs.ObjectNotFoundError
//
// Anything else is returned unchanged.
func Translate(err error, param string, id any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(param, id)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation, foreignKeyViolation, checkViolation:
			return errs.NewValueIsInvalidErrorWithCause(param, errors.New(pgErr.Message))
		}
	}
	return err
}
