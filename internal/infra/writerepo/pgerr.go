package writerepo

import (
	"errors"

	"parkspot/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
	pgErrCodeLockNotAvailable    = "55P03"
)

func kindForPgError(err error) infra.RepositoryErrorKind {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return infra.KindDBFailure
	}

	switch pgErr.Code {
	case pgErrCodeUniqueViolation:
		return infra.KindDuplicateKey
	case pgErrCodeForeignKeyViolation:
		return infra.KindForeignKeyViolated
	case pgErrCodeLockNotAvailable:
		return infra.KindLockTimeout
	default:
		return infra.KindDBFailure
	}
}
