package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/taskboard/domain"
)

type stubUsers struct {
	createCalls int
	createErr   error
	deleted     bool
	deleteErr   error
	users       []domain.User
}

func (s *stubUsers) Create(_ context.Context, name, email string) (*domain.User, error) {
	s.createCalls++
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &domain.User{ID: int64(s.createCalls), Name: name, Email: email}, nil
}

func (s *stubUsers) GetByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			u := u
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubUsers) List(context.Context) ([]domain.User, error) {
	return s.users, nil
}

func (s *stubUsers) Delete(context.Context, int64) (bool, error) {
	return s.deleted, s.deleteErr
}

func TestCreateUserRequiresNameAndEmail(t *testing.T) {
	tests := []struct {
		name, userName, email string
	}{
		{"missing name", "", "a@x.com"},
		{"missing email", "Alice", ""},
		{"missing both", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubUsers{}
			uc := New(repo, nil)

			_, err := uc.CreateUser(context.Background(), tt.userName, tt.email)

			require.Error(t, err)
			assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
			assert.Equal(t, "Name and email are required", domain.Message(err, ""))
			assert.Zero(t, repo.createCalls)
		})
	}
}

func TestCreateUser(t *testing.T) {
	repo := &stubUsers{}
	uc := New(repo, nil)

	created, err := uc.CreateUser(context.Background(), "Alice", "alice@x.com")

	require.NoError(t, err)
	assert.Equal(t, "Alice", created.Name)
	assert.Equal(t, 1, repo.createCalls)
}

func TestCreateUserPassesConflictThrough(t *testing.T) {
	repo := &stubUsers{createErr: domain.ErrDuplicateEmail.WithCause(errors.New("23505"))}
	uc := New(repo, nil)

	_, err := uc.CreateUser(context.Background(), "Alice", "alice@x.com")

	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeConflict))
}

func TestGetUserNotFound(t *testing.T) {
	uc := New(&stubUsers{}, nil)

	_, err := uc.GetUser(context.Background(), 5)

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestDeleteUser(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		uc := New(&stubUsers{deleted: true}, nil)
		assert.NoError(t, uc.DeleteUser(context.Background(), 1))
	})

	t.Run("absent", func(t *testing.T) {
		uc := New(&stubUsers{deleted: false}, nil)
		assert.ErrorIs(t, uc.DeleteUser(context.Background(), 1), domain.ErrUserNotFound)
	})

	t.Run("storage failure", func(t *testing.T) {
		boom := errors.New("connection refused")
		uc := New(&stubUsers{deleteErr: boom}, nil)

		err := uc.DeleteUser(context.Background(), 1)

		assert.ErrorIs(t, err, boom)
		assert.False(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
	})
}
