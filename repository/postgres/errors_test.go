package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/fastygo/taskboard/internal/storage"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want storage.Violation
	}{
		{"unique", &pgconn.PgError{Code: "23505"}, storage.ViolationUnique},
		{"foreign key", &pgconn.PgError{Code: "23503"}, storage.ViolationForeignKey},
		{"not null", &pgconn.PgError{Code: "23502"}, storage.ViolationNotNull},
		{"check", &pgconn.PgError{Code: "23514"}, storage.ViolationCheck},
		{"syntax", &pgconn.PgError{Code: "42601"}, storage.ViolationNone},
		{"wrapped", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), storage.ViolationUnique},
		{"plain", errors.New("conn reset"), storage.ViolationNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classifier.Classify(tt.err))
		})
	}
}

func TestTranslateKeepsConstraintName(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503", ConstraintName: "tasks_user_id_fkey"}

	err := translate(pgErr)

	var cErr *storage.ConstraintError
	if assert.ErrorAs(t, err, &cErr) {
		assert.Equal(t, storage.ViolationForeignKey, cErr.Violation)
		assert.Equal(t, "tasks_user_id_fkey", cErr.Constraint)
	}
	assert.ErrorIs(t, err, pgErr)
}
