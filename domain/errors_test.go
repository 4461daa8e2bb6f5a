package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithCauseKeepsSentinelIdentity(t *testing.T) {
	cause := errors.New("duplicate key value violates unique constraint")
	err := ErrDuplicateEmail.WithCause(cause)

	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrUserNotFound)
	assert.Equal(t, "Email already exists: duplicate key value violates unique constraint", err.Error())
}

func TestSentinelsWithSameMessageStayDistinct(t *testing.T) {
	err := ErrReferencedUserMissing.WithCause(errors.New("fk"))

	assert.ErrorIs(t, err, ErrReferencedUserMissing)
	assert.NotErrorIs(t, err, ErrUserNotFound)
	assert.True(t, IsDomainError(err, ErrCodeNotFound))
}

func TestIsDomainErrorThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("create user: %w", ErrDuplicateEmail)

	require.True(t, IsDomainError(wrapped, ErrCodeConflict))
	assert.False(t, IsDomainError(wrapped, ErrCodeNotFound))
	assert.False(t, IsDomainError(errors.New("plain"), ErrCodeInternal))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "Task not found", Message(ErrTaskNotFound, "fallback"))
	assert.Equal(t, "name is required", Message(Invalid("name is required"), "fallback"))
	assert.Equal(t, "fallback", Message(errors.New("boom"), "fallback"))
}
