package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fastygo/taskboard/internal/storage"
)

// SQLSTATE codes of the integrity constraint violation class.
const (
	codeNotNullViolation    = "23502"
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeCheckViolation      = "23514"
)

// Classifier translates Postgres SQLSTATE codes into storage violations.
var Classifier storage.Classifier = storage.ClassifierFunc(classify)

func classify(err error) storage.Violation {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return storage.ViolationNone
	}
	switch pgErr.Code {
	case codeUniqueViolation:
		return storage.ViolationUnique
	case codeForeignKeyViolation:
		return storage.ViolationForeignKey
	case codeNotNullViolation:
		return storage.ViolationNotNull
	case codeCheckViolation:
		return storage.ViolationCheck
	default:
		return storage.ViolationNone
	}
}

func translate(err error) error {
	var pgErr *pgconn.PgError
	constraint := ""
	if errors.As(err, &pgErr) {
		constraint = pgErr.ConstraintName
	}
	return storage.Wrap(Classifier, err, constraint)
}
