package postgres

import (
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// pgErrorCode returns the SQLSTATE of a PostgreSQL error anywhere in err's chain.
func pgErrorCode(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, true
	}

	return "", false
}

// constraintName returns the violated constraint of a PostgreSQL error, if any.
func constraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}

	return ""
}

func isUniqueConstraintViolation(err error) bool {
	// GORM translates driver errors when TranslateError is on.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	code, ok := pgErrorCode(err)

	return ok && code == pgerrcode.UniqueViolation
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	code, ok := pgErrorCode(err)

	return ok && code == pgerrcode.ForeignKeyViolation
}

func isNotNullConstraintViolation(err error) bool {
	code, ok := pgErrorCode(err)

	return ok && code == pgerrcode.NotNullViolation
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	code, ok := pgErrorCode(err)

	return ok && code == pgerrcode.CheckViolation
}
