package storage

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifierFuncIgnoresNil(t *testing.T) {
	calls := 0
	c := ClassifierFunc(func(error) Violation {
		calls++
		return ViolationUnique
	})

	assert.Equal(t, ViolationNone, c.Classify(nil))
	assert.Equal(t, ViolationUnique, c.Classify(errors.New("dup")))
	assert.Equal(t, 1, calls)
}

func TestViolationOf(t *testing.T) {
	cause := errors.New("insert or update on table violates foreign key constraint")
	err := fmt.Errorf("create task: %w", &ConstraintError{
		Violation:  ViolationForeignKey,
		Constraint: "tasks_user_id_fkey",
		Err:        cause,
	})

	assert.Equal(t, ViolationForeignKey, ViolationOf(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, ViolationNone, ViolationOf(cause))
	assert.Equal(t, ViolationNone, ViolationOf(nil))
}

func TestConstraintErrorMessage(t *testing.T) {
	err := &ConstraintError{Violation: ViolationUnique, Constraint: "users_email_key", Err: errors.New("dup")}
	assert.Equal(t, "unique violation on users_email_key: dup", err.Error())

	err = &ConstraintError{Violation: ViolationNotNull, Err: errors.New("null")}
	assert.Equal(t, "not_null violation: null", err.Error())
}

func TestViolationString(t *testing.T) {
	assert.Equal(t, "none", ViolationNone.String())
	assert.Equal(t, "unique", ViolationUnique.String())
	assert.Equal(t, "foreign_key", ViolationForeignKey.String())
	assert.Equal(t, "check", ViolationCheck.String())
	assert.Equal(t, "none", Violation(42).String())
}

func TestWrap(t *testing.T) {
	unique := ClassifierFunc(func(error) Violation { return ViolationUnique })
	none := ClassifierFunc(func(error) Violation { return ViolationNone })
	cause := errors.New("boom")

	assert.NoError(t, Wrap(unique, nil, ""))
	assert.Same(t, cause, Wrap(none, cause, ""))
	assert.Same(t, cause, Wrap(nil, cause, ""))

	wrapped := Wrap(unique, cause, "users_email_key")
	assert.Equal(t, ViolationUnique, ViolationOf(wrapped))
	assert.ErrorIs(t, wrapped, cause)
}
