package sqlite

import (
	"errors"
	"strings"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/fastygo/taskboard/internal/storage"
)

// Classifier translates SQLite extended result codes into storage violations.
var Classifier storage.Classifier = storage.ClassifierFunc(classify)

func classify(err error) storage.Violation {
	var sqlErr *sqlite.Error
	if !errors.As(err, &sqlErr) {
		return storage.ViolationNone
	}
	switch sqlErr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return storage.ViolationUnique
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return storage.ViolationForeignKey
	case sqlite3.SQLITE_CONSTRAINT_NOTNULL:
		return storage.ViolationNotNull
	case sqlite3.SQLITE_CONSTRAINT_CHECK:
		return storage.ViolationCheck
	}

	// Connections opened without extended result codes only report the
	// primary SQLITE_CONSTRAINT code; fall back to the engine's message.
	if sqlErr.Code()&0xff != sqlite3.SQLITE_CONSTRAINT {
		return storage.ViolationNone
	}
	msg := sqlErr.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return storage.ViolationUnique
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return storage.ViolationForeignKey
	case strings.Contains(msg, "NOT NULL constraint failed"):
		return storage.ViolationNotNull
	case strings.Contains(msg, "CHECK constraint failed"):
		return storage.ViolationCheck
	default:
		return storage.ViolationNone
	}
}

func translate(err error) error {
	return storage.Wrap(Classifier, err, "")
}
